package uxn

func addHandler(cpu *CPU, keep, short, ret bool) error {
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
		return w.pushShort(a + b)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(a + b)
}

func subHandler(cpu *CPU, keep, short, ret bool) error {
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
		return w.pushShort(b - a)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(b - a)
}

func mulHandler(cpu *CPU, keep, short, ret bool) error {
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
		return w.pushShort(b * a)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(b * a)
}

func divHandler(cpu *CPU, keep, short, ret bool) error {
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
		if a == 0 {
			return ErrDivideByZero
		}
		return w.pushShort(b / a)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	if a == 0 {
		return ErrDivideByZero
	}
	return w.push(b / a)
}
