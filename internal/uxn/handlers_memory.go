package uxn

func ldzHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addrByte, err := w.pop()
	if err != nil {
		return err
	}
	addr := uint16(addrByte)
	if short {
		hi := w.readRAM(addr)
		lo := w.readRAM(addr + 1)
		if err := w.push(hi); err != nil {
			return err
		}
		return w.push(lo)
	}
	return w.push(w.readRAM(addr))
}

func stzHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addrByte, err := w.pop()
	if err != nil {
		return err
	}
	addr := uint16(addrByte)
	if short {
		lo, err := w.pop()
		if err != nil {
			return err
		}
		hi, err := w.pop()
		if err != nil {
			return err
		}
		w.writeRAM(addr, hi)
		w.writeRAM(addr+1, lo)
		return nil
	}
	v, err := w.pop()
	if err != nil {
		return err
	}
	w.writeRAM(addr, v)
	return nil
}

// getRelativeAddress pops an 8-bit signed offset and resolves it against the
// current PC, bounds-checking into [0, 0xffff].
func getRelativeAddress(w *opWrapper) (uint16, error) {
	addrByte, err := w.pop()
	if err != nil {
		return 0, err
	}
	target := int32(w.pc()) + int32(int8(addrByte))
	if target < 0 || target > 0xffff {
		return 0, ErrOutOfRangeMemoryAddress
	}
	return uint16(target), nil
}

func ldrHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addr, err := getRelativeAddress(w)
	if err != nil {
		return err
	}
	if short {
		if addr == 0xffff {
			return ErrOutOfRangeMemoryAddress
		}
		hi := w.readRAM(addr)
		lo := w.readRAM(addr + 1)
		if err := w.push(hi); err != nil {
			return err
		}
		return w.push(lo)
	}
	return w.push(w.readRAM(addr))
}

func strHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addr, err := getRelativeAddress(w)
	if err != nil {
		return err
	}
	if short {
		lo, err := w.pop()
		if err != nil {
			return err
		}
		hi, err := w.pop()
		if err != nil {
			return err
		}
		if addr == 0xffff {
			return ErrOutOfRangeMemoryAddress
		}
		w.writeRAM(addr, hi)
		w.writeRAM(addr+1, lo)
		return nil
	}
	v, err := w.pop()
	if err != nil {
		return err
	}
	w.writeRAM(addr, v)
	return nil
}

func ldaHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	lo, err := w.pop()
	if err != nil {
		return err
	}
	hi, err := w.pop()
	if err != nil {
		return err
	}
	addr := uint16(hi)<<8 | uint16(lo)
	if err := w.push(w.readRAM(addr)); err != nil {
		return err
	}
	if !short {
		return nil
	}
	if addr == 0xffff {
		return ErrOutOfRangeMemoryAddress
	}
	return w.push(w.readRAM(addr + 1))
}

func staHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	lo, err := w.pop()
	if err != nil {
		return err
	}
	hi, err := w.pop()
	if err != nil {
		return err
	}
	addr := uint16(hi)<<8 | uint16(lo)
	if short {
		vLo, err := w.pop()
		if err != nil {
			return err
		}
		vHi, err := w.pop()
		if err != nil {
			return err
		}
		w.writeRAM(addr, vHi)
		if addr == 0xffff {
			return ErrOutOfRangeMemoryAddress
		}
		w.writeRAM(addr+1, vLo)
		return nil
	}
	v, err := w.pop()
	if err != nil {
		return err
	}
	w.writeRAM(addr, v)
	return nil
}

func deiHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addr, err := w.pop()
	if err != nil {
		return err
	}
	if short {
		hi, err := w.readDevice(addr)
		if err != nil {
			return err
		}
		if addr == 0xff {
			return ErrUnrecognisedDevice
		}
		lo, err := w.readDevice(addr + 1)
		if err != nil {
			return err
		}
		if err := w.push(hi); err != nil {
			return err
		}
		return w.push(lo)
	}
	v, err := w.readDevice(addr)
	if err != nil {
		return err
	}
	return w.push(v)
}

func deoHandler(cpu *CPU, keep, short, ret bool) error {
	w := newOpWrapper(cpu, keep, ret)
	addr, err := w.pop()
	if err != nil {
		return err
	}
	if short {
		lo, err := w.pop()
		if err != nil {
			return err
		}
		hi, err := w.pop()
		if err != nil {
			return err
		}
		w.writeDevice(addr, hi)
		w.writeDevice(addr+1, lo)
		return nil
	}
	v, err := w.pop()
	if err != nil {
		return err
	}
	w.writeDevice(addr, v)
	return nil
}
