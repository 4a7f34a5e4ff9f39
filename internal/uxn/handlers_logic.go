package uxn

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

func equHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		a, err := w.popShort()
		if err != nil {
			return err
		}
		b, err := w.popShort()
		if err != nil {
			return err
		}
		return w.push(boolByte(b == a))
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(boolByte(b == a))
}

func neqHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		a, err := w.popShort()
		if err != nil {
			return err
		}
		b, err := w.popShort()
		if err != nil {
			return err
		}
		return w.push(boolByte(b != a))
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(boolByte(b != a))
}

func gthHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		a, err := w.popShort()
		if err != nil {
			return err
		}
		b, err := w.popShort()
		if err != nil {
			return err
		}
		return w.push(boolByte(b > a))
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(boolByte(b > a))
}

func lthHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		a, err := w.popShort()
		if err != nil {
			return err
		}
		b, err := w.popShort()
		if err != nil {
			return err
		}
		return w.push(boolByte(b < a))
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(boolByte(b < a))
}
