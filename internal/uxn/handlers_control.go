package uxn

// doSignedJump treats offset as an 8-bit two's-complement PC-relative
// displacement, bounds-checks the result back into [0, 0xffff], and sets PC.
// It returns the PC as it was before the jump.
func doSignedJump(cpu *CPU, offset int8) (uint16, error) {
	pc, _ := cpu.GetPC()
	target := int32(pc) + int32(offset)
	if target < 0 || target > 0xffff {
		return 0, ErrOutOfRangeMemoryAddress
	}
	cpu.SetPC(uint16(target))
	return pc, nil
}

func jmpHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		dst, err := w.popShort()
		if err != nil {
			return err
		}
		w.setPC(dst)
		return nil
	}
	d, err := w.pop()
	if err != nil {
		return err
	}
	_, err = doSignedJump(cpu, int8(d))
	return err
}

func jcnHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		dst, err := w.popShort()
		if err != nil {
			return err
		}
		cond, err := w.pop()
		if err != nil {
			return err
		}
		if cond != 0 {
			w.setPC(dst)
		}
		return nil
	}
	d, err := w.pop()
	if err != nil {
		return err
	}
	cond, err := w.pop()
	if err != nil {
		return err
	}
	if cond == 0 {
		return nil
	}
	_, err = doSignedJump(cpu, int8(d))
	return err
}

func jsrHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	if short {
		dst, err := w.popShort()
		if err != nil {
			return err
		}
		if err := w.pushOtherShort(w.pc()); err != nil {
			return err
		}
		w.setPC(dst)
		return nil
	}
	d, err := w.pop()
	if err != nil {
		return err
	}
	prevPC, err := doSignedJump(cpu, int8(d))
	if err != nil {
		return err
	}
	return w.pushOtherShort(prevPC)
}

func sthHandler(cpu *CPU, keep, short, ret bool) error {
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
		if err := w.pushOther(hi); err != nil {
			return err
		}
		return w.pushOther(lo)
	}
	b, err := w.pop()
	if err != nil {
		return err
	}
	return w.pushOther(b)
}
