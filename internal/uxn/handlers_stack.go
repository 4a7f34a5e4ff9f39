package uxn

// litHandler implements BRK-with-mode-bits-set and the LIT pseudo-op: read
// one byte (two if short) from RAM at PC, advancing PC, and push them.
func litHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	a, err := w.readNextByte()
	if err != nil {
		return err
	}
	if err := w.push(a); err != nil {
		return err
	}
	if !short {
		return nil
	}
	b, err := w.readNextByte()
	if err != nil {
		return err
	}
	return w.push(b)
}

func incHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		v, err := w.popShort()
		if err != nil {
			return err
		}
		return w.pushShort(v + 1)
	}
	v, err := w.pop()
	if err != nil {
		return err
	}
	return w.push(v + 1)
}

func popHandler(cpu *CPU, keep, short, ret bool) error {
	if keep {
		return nil
	}
	w := newOpWrapper(cpu, false, ret)
	if _, err := w.pop(); err != nil {
		return err
	}
	if short {
		if _, err := w.pop(); err != nil {
			return err
		}
	}
	return nil
}

func dupHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		lo, err := w.pop()
		if err != nil {
			return err
		}
		hi, err := w.pop()
		if err != nil {
			return err
		}
		if err := w.push(hi); err != nil {
			return err
		}
		if err := w.push(lo); err != nil {
			return err
		}
		if err := w.push(hi); err != nil {
			return err
		}
		return w.push(lo)
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	if err := w.push(b); err != nil {
		return err
	}
	return w.push(b)
}

func nipHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		lo, err := w.pop()
		if err != nil {
			return err
		}
		hi, err := w.pop()
		if err != nil {
			return err
		}
		if _, err := w.pop(); err != nil {
			return err
		}
		if _, err := w.pop(); err != nil {
			return err
		}
		if err := w.push(hi); err != nil {
			return err
		}
		return w.push(lo)
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	if _, err := w.pop(); err != nil {
		return err
	}
	return w.push(b)
}

func swpHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		aLo, err := w.pop()
		if err != nil {
			return err
		}
		aHi, err := w.pop()
		if err != nil {
			return err
		}
		bLo, err := w.pop()
		if err != nil {
			return err
		}
		bHi, err := w.pop()
		if err != nil {
			return err
		}
		if err := w.push(aHi); err != nil {
			return err
		}
		if err := w.push(aLo); err != nil {
			return err
		}
		if err := w.push(bHi); err != nil {
			return err
		}
		return w.push(bLo)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	if err := w.push(a); err != nil {
		return err
	}
	return w.push(b)
}

func ovrHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		aLo, err := w.pop()
		if err != nil {
			return err
		}
		aHi, err := w.pop()
		if err != nil {
			return err
		}
		bLo, err := w.pop()
		if err != nil {
			return err
		}
		bHi, err := w.pop()
		if err != nil {
			return err
		}
		if err := w.push(bHi); err != nil {
			return err
		}
		if err := w.push(bLo); err != nil {
			return err
		}
		if err := w.push(aHi); err != nil {
			return err
		}
		if err := w.push(aLo); err != nil {
			return err
		}
		if err := w.push(bHi); err != nil {
			return err
		}
		return w.push(bLo)
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	if err := w.push(b); err != nil {
		return err
	}
	if err := w.push(a); err != nil {
		return err
	}
	return w.push(b)
}

func rotHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		cLo, err := w.pop()
		if err != nil {
			return err
		}
		cHi, err := w.pop()
		if err != nil {
			return err
		}
		bLo, err := w.pop()
		if err != nil {
			return err
		}
		bHi, err := w.pop()
		if err != nil {
			return err
		}
		aLo, err := w.pop()
		if err != nil {
			return err
		}
		aHi, err := w.pop()
		if err != nil {
			return err
		}
		if err := w.push(bHi); err != nil {
			return err
		}
		if err := w.push(bLo); err != nil {
			return err
		}
		if err := w.push(cHi); err != nil {
			return err
		}
		if err := w.push(cLo); err != nil {
			return err
		}
		if err := w.push(aHi); err != nil {
			return err
		}
		return w.push(aLo)
	}
	c, err := w.pop()
	if err != nil {
		return err
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	a, err := w.pop()
	if err != nil {
		return err
	}
	if err := w.push(b); err != nil {
		return err
	}
	if err := w.push(c); err != nil {
		return err
	}
	return w.push(a)
}
