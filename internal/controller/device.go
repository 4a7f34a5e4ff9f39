// Package controller implements the Uxn controller device: an eight-button
// pad plus a single last-pressed-key byte, suitable for driving from
// keyboard events.
package controller

import "github.com/uxngo/uxngo/internal/device"

// Button is one of the eight controller buttons.
type Button byte

// Button bit codes, matching the device's port 0x2 layout.
const (
	ButtonA Button = 1 << iota
	ButtonB
	ButtonSelect
	ButtonStart
	ButtonUp
	ButtonDown
	ButtonLeft
	ButtonRight
)

// Device is the Uxn controller device.
type Device struct {
	vector      [2]byte
	buttonState byte
	key         byte
}

// New builds an idle controller device.
func New() *Device {
	return &Device{}
}

// Vector returns the controller's input vector address.
func (d *Device) Vector() uint16 {
	return uint16(d.vector[0])<<8 | uint16(d.vector[1])
}

// NotifyKeyPress records the most recently pressed ASCII key.
func (d *Device) NotifyKeyPress(key byte) {
	d.key = key
}

// NotifyButtonDown sets a button's bit, reporting whether the state changed.
func (d *Device) NotifyButtonDown(b Button) bool {
	before := d.buttonState
	d.buttonState |= byte(b)
	return before != d.buttonState
}

// NotifyButtonUp clears a button's bit.
func (d *Device) NotifyButtonUp(b Button) {
	d.buttonState &^= byte(b)
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	switch port {
	case 0x0:
		return d.vector[0]
	case 0x1:
		return d.vector[1]
	case 0x2:
		return d.buttonState
	case 0x3:
		return d.key
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
