// Package datetime implements the Uxn datetime device, exposing the host's
// current local time across a fixed set of read-only ports.
package datetime

import (
	"time"

	"github.com/uxngo/uxngo/internal/device"
)

// Device is the Uxn datetime device.
type Device struct {
	nowFn func() time.Time
}

// New builds a datetime device backed by the host's local clock.
func New() *Device {
	return &Device{nowFn: time.Now}
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	now := d.nowFn()

	switch port {
	case 0x0:
		return byte(uint16(now.Year()) >> 8)
	case 0x1:
		return byte(uint16(now.Year()))
	case 0x2:
		return byte(now.Month() - 1)
	case 0x3:
		return byte(now.Day())
	case 0x4:
		return byte(now.Hour())
	case 0x5:
		return byte(now.Minute())
	case 0x6:
		return byte(now.Second())
	case 0x7:
		return byte(now.Weekday())
	case 0x8:
		return byte(uint16(now.YearDay()-1) >> 8)
	case 0x9:
		return byte(uint16(now.YearDay() - 1))
	case 0xa:
		// daylight-saving-time status is not determined; always report -1.
		return 0xff
	default:
		return 0
	}
}

// Write implements device.Device. The datetime device exposes no writable
// ports.
func (d *Device) Write(port byte, val byte, _ device.RAM) {}
