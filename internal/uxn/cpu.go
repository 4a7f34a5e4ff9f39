package uxn

import (
	"fmt"
	"io"

	"github.com/uxngo/uxngo/internal/device"
)

// RunStatus reports how a Run call came to an end. A non-nil error from Run
// means the machine faulted; RunStatus is only meaningful when err is nil.
type RunStatus int

const (
	// StatusHalt means the CPU hit a zero byte or walked the PC past 0xffff.
	StatusHalt RunStatus = iota
	// StatusTerminate means the System device's termination flag was set.
	StatusTerminate
)

func (s RunStatus) String() string {
	switch s {
	case StatusHalt:
		return "Halt"
	case StatusTerminate:
		return "Terminate"
	default:
		return "Unknown"
	}
}

// InitVector is the entry point the host invokes on program start.
const InitVector = 0x100

// CPU is the Uxn interpreter: RAM, the two stacks, the program counter, the
// 16-slot device bus and the System device's own registers.
type CPU struct {
	ram     RAM
	working Stack
	ret     Stack

	pc      uint16
	pcValid bool

	terminate bool

	bus          [16]device.Device
	systemColors [6]byte

	// Debug is the sink System port 0xE dumps stack contents to. If nil,
	// dumps are discarded.
	Debug io.Writer
}

// NewCPU returns a freshly initialized CPU with zeroed RAM and stacks.
func NewCPU() *CPU {
	return &CPU{}
}

// LoadROM copies rom into RAM at 0x100, truncating past 0xff00 bytes.
func (c *CPU) LoadROM(rom []byte) {
	c.ram.LoadROM(rom)
}

// RAM exposes the CPU's memory for device wiring that needs direct access
// outside of a handler (e.g. feeding console bytes in before invoking a
// vector).
func (c *CPU) RAM() *RAM {
	return &c.ram
}

// AttachDevice registers d at the given slot index (1..15; slot 0 is the
// reserved System placeholder and cannot be attached to).
func (c *CPU) AttachDevice(index byte, d device.Device) {
	if index == 0 {
		panic("uxn: slot 0 is reserved for the System device")
	}
	c.bus[index&0xf] = d
}

// GetPC returns the current program counter. ok is false once the sentinel
// out-of-range state has been reached.
func (c *CPU) GetPC() (uint16, bool) {
	return c.pc, c.pcValid
}

// SetPC sets the program counter to a concrete address.
func (c *CPU) SetPC(addr uint16) {
	c.pc = addr
	c.pcValid = true
}

// readNextByteFromRAM fetches the byte at PC and advances it, following the
// sentinel rule: incrementing past 0xffff invalidates the PC for any future
// fetch.
func (c *CPU) readNextByteFromRAM() (byte, error) {
	if !c.pcValid {
		return 0, ErrOutOfRangeMemoryAddress
	}
	b := c.ram.ReadByte(c.pc)
	if c.pc == 0xffff {
		c.pcValid = false
	} else {
		c.pc++
	}
	return b, nil
}

// Run sets PC to entry and executes until Halt, Terminate, or a fault.
func (c *CPU) Run(entry uint16) (RunStatus, error) {
	c.SetPC(entry)
	for {
		instr, err := c.readNextByteFromRAM()
		if err != nil {
			// PC ran off the end of the address space: this is a clean
			// Halt, not a fault.
			return StatusHalt, nil
		}
		if instr == 0 {
			return StatusHalt, nil
		}

		decoded := decodeOpcode(instr)
		handler := opTable[decoded.code]
		if err := handler(c, decoded.keep, decoded.short, decoded.ret); err != nil {
			return 0, err
		}
		if c.terminate {
			return StatusTerminate, nil
		}
	}
}

// readDevice routes a DEI read through the bus, special-casing the System
// slot (device index 0).
func (c *CPU) readDevice(addr byte) (byte, error) {
	idx := addr >> 4
	port := addr & 0xf
	if idx == 0 {
		return c.systemRead(port), nil
	}
	d := c.bus[idx]
	if d == nil {
		return 0, ErrUnrecognisedDevice
	}
	return d.Read(port), nil
}

// writeDevice routes a DEO write through the bus. A write to an absent slot
// is silently dropped, per the bus contract.
func (c *CPU) writeDevice(addr byte, val byte) {
	idx := addr >> 4
	port := addr & 0xf
	if idx == 0 {
		c.systemWrite(port, val)
		return
	}
	d := c.bus[idx]
	if d == nil {
		return
	}
	d.Write(port, val, &c.ram)
}

// systemRead implements the System device's port map directly against CPU
// state, since its registers (stack indices, termination) are not ordinary
// device state.
func (c *CPU) systemRead(port byte) byte {
	switch port {
	case 0x2:
		return c.working.Index()
	case 0x3:
		return c.ret.Index()
	case 0x8, 0x9, 0xa, 0xb, 0xc, 0xd:
		return c.systemColors[port-0x8]
	default:
		return 0
	}
}

func (c *CPU) systemWrite(port byte, val byte) {
	switch port {
	case 0x2:
		c.working.SetIndex(val)
	case 0x3:
		c.ret.SetIndex(val)
	case 0x8, 0x9, 0xa, 0xb, 0xc, 0xd:
		c.systemColors[port-0x8] = val
	case 0xe:
		c.dumpDebug()
	case 0xf:
		c.terminate = true
	}
}

func (c *CPU) dumpDebug() {
	if c.Debug == nil {
		return
	}
	fmt.Fprintf(c.Debug, "<wst> %s\n", hexDump(c.working.Bytes()))
	fmt.Fprintf(c.Debug, "<rst> %s\n", hexDump(c.ret.Bytes()))
}

func hexDump(bs []byte) string {
	out := make([]byte, 0, len(bs)*3)
	for i, b := range bs {
		if i > 0 {
			out = append(out, ' ')
		}
		out = append(out, fmt.Sprintf("%02x", b)...)
	}
	return string(out)
}

// SystemPalette returns the six raw system-palette bytes written to ports
// 0x8..0xd, for the screen device's nibble-expansion resolution.
func (c *CPU) SystemPalette() [6]byte {
	return c.systemColors
}
