// Package console implements the Uxn console device: a byte-at-a-time stdin
// feed paired with stdout/stderr output ports.
package console

import (
	"io"

	"github.com/uxngo/uxngo/internal/device"
)

// Device is the Uxn console device.
type Device struct {
	vector        [2]byte
	receivedInput byte

	stdout io.Writer
	stderr io.Writer
}

// New builds a console device writing program output to stdout and stderr.
func New(stdout, stderr io.Writer) *Device {
	return &Device{stdout: stdout, stderr: stderr}
}

// Vector returns the console's input vector address.
func (d *Device) Vector() uint16 {
	return uint16(d.vector[0])<<8 | uint16(d.vector[1])
}

// ProvideInput makes a single byte of input available through port 0x2,
// ahead of the caller triggering the console vector.
func (d *Device) ProvideInput(b byte) {
	d.receivedInput = b
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	switch port {
	case 0x0:
		return d.vector[0]
	case 0x1:
		return d.vector[1]
	case 0x2:
		return d.receivedInput
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
	case 0x8:
		d.stdout.Write([]byte{val})
	case 0x9:
		d.stderr.Write([]byte{val})
	}
}
