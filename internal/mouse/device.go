// Package mouse implements the Uxn mouse device: cursor position, a
// three-button click state, and scroll distance, all exposed as big-endian
// port pairs.
package mouse

import "github.com/uxngo/uxngo/internal/device"

// Button is one of the three mouse buttons.
type Button byte

const (
	ButtonLeft Button = 1 << iota
	ButtonMiddle
	ButtonRight
)

// Device is the Uxn mouse device.
type Device struct {
	vector     [2]byte
	cursorPos  [2][2]byte
	scroll     [2][2]byte
	clickState byte
}

// New builds an idle mouse device.
func New() *Device {
	return &Device{}
}

// Vector returns the mouse's input vector address.
func (d *Device) Vector() uint16 {
	return uint16(d.vector[0])<<8 | uint16(d.vector[1])
}

// NotifyCursorPosition records the cursor's current x, y coordinates.
func (d *Device) NotifyCursorPosition(x, y uint16) {
	d.cursorPos[0] = [2]byte{byte(x >> 8), byte(x)}
	d.cursorPos[1] = [2]byte{byte(y >> 8), byte(y)}
}

// NotifyButtonDown sets a button's bit in the click state.
func (d *Device) NotifyButtonDown(b Button) {
	d.clickState |= byte(b)
}

// NotifyButtonUp clears a button's bit in the click state.
func (d *Device) NotifyButtonUp(b Button) {
	d.clickState &^= byte(b)
}

// NotifyScroll records the most recent scroll distance.
func (d *Device) NotifyScroll(x, y int16) {
	d.scroll[0] = [2]byte{byte(uint16(x) >> 8), byte(x)}
	d.scroll[1] = [2]byte{byte(uint16(y) >> 8), byte(y)}
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	switch port {
	case 0x0:
		return d.vector[0]
	case 0x1:
		return d.vector[1]
	case 0x2:
		return d.cursorPos[0][0]
	case 0x3:
		return d.cursorPos[0][1]
	case 0x4:
		return d.cursorPos[1][0]
	case 0x5:
		return d.cursorPos[1][1]
	case 0x6:
		return d.clickState
	case 0xa:
		return d.scroll[0][0]
	case 0xb:
		return d.scroll[0][1]
	case 0xc:
		return d.scroll[1][0]
	case 0xd:
		return d.scroll[1][1]
	default:
		return 0
	}
}

// Write implements device.Device.
func (d *Device) Write(port byte, val byte, _ device.RAM) {
	switch port {
	case 0x0:
		d.vector[0] = val
	case 0x1:
		d.vector[1] = val
	}
}
