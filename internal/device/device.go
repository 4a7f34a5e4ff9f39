// Package device declares the narrow contracts a port device uses to talk to
// the bus and to host RAM, independent of the CPU that owns them.
package device

import "errors"

// ErrAddressOutOfBounds is returned by RAM when a bounded read or write would
// run past the end of the 64 KiB address space.
var ErrAddressOutOfBounds = errors.New("device: ram access out of bounds")

// RAM is the bounded, borrowed view of host memory handed to a device for
// the duration of a single port write. Devices must not retain it.
type RAM interface {
	Read(addr uint16, n uint16) ([]byte, error)
	Write(addr uint16, data []byte) error
}

// Device is a single 16-port slot on the bus.
type Device interface {
	Read(port byte) byte
	Write(port byte, val byte, ram RAM)
}
