package uxn

import "github.com/uxngo/uxngo/internal/device"

// romMaxLen is the largest ROM the 64 KiB address space can hold once the
// zero page below romLoadAddr is left untouched; a ROM of this length fills
// memory up to 0xffff.
const romMaxLen = 0xff00

// romLoadAddr is where a ROM's first byte lands; addresses below it (the
// zero page) stay zero-initialized.
const romLoadAddr = 0x100

// RAM is the CPU's 64 KiB linear address space. It is never resized.
type RAM struct {
	data [65536]byte
}

// ReadByte returns the byte at addr. Every uint16 address is always in
// range, so this never fails.
func (r *RAM) ReadByte(addr uint16) byte {
	return r.data[addr]
}

// WriteByte stores val at addr.
func (r *RAM) WriteByte(addr uint16, val byte) {
	r.data[addr] = val
}

// LoadROM copies rom into memory starting at 0x100, truncating anything
// past 0xff00 bytes.
func (r *RAM) LoadROM(rom []byte) {
	if len(rom) > romMaxLen {
		rom = rom[:romMaxLen]
	}
	copy(r.data[romLoadAddr:], rom)
}

// Read implements device.RAM: a bounded read returning a fresh copy of n
// bytes starting at addr, or ErrAddressOutOfBounds if the range overruns
// the address space.
func (r *RAM) Read(addr uint16, n uint16) ([]byte, error) {
	end := uint32(addr) + uint32(n)
	if end > 0x10000 {
		return nil, device.ErrAddressOutOfBounds
	}
	out := make([]byte, n)
	copy(out, r.data[addr:end])
	return out, nil
}

// Write implements device.RAM: a bounded write of data starting at addr.
func (r *RAM) Write(addr uint16, data []byte) error {
	end := uint32(addr) + uint32(len(data))
	if end > 0x10000 {
		return device.ErrAddressOutOfBounds
	}
	copy(r.data[addr:end], data)
	return nil
}
