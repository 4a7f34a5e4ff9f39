package datetime

import (
	"testing"
	"time"
)

func TestDatetimePorts(t *testing.T) {
	d := New()
	fixed := time.Date(1986, time.September, 16, 17, 8, 20, 0, time.UTC)
	d.nowFn = func() time.Time { return fixed }

	year := uint16(d.Read(0x0))<<8 | uint16(d.Read(0x1))
	if year != 1986 {
		t.Errorf("year = %d, want 1986", year)
	}
	if got := d.Read(0x2); got != 8 {
		t.Errorf("month0 = %d, want 8", got)
	}
	if got := d.Read(0x3); got != 16 {
		t.Errorf("day = %d, want 16", got)
	}
	if got := d.Read(0x4); got != 17 {
		t.Errorf("hour = %d, want 17", got)
	}
	if got := d.Read(0x5); got != 8 {
		t.Errorf("minute = %d, want 8", got)
	}
	if got := d.Read(0x6); got != 20 {
		t.Errorf("second = %d, want 20", got)
	}
	if got := d.Read(0x7); got != 2 {
		t.Errorf("weekday = %d, want 2 (Tuesday, days since Sunday)", got)
	}

	yearDay := uint16(d.Read(0x8))<<8 | uint16(d.Read(0x9))
	if yearDay != 258 {
		t.Errorf("year day = %d, want 258", yearDay)
	}

	if got := d.Read(0xa); got != 0xff {
		t.Errorf("dst = %#x, want 0xff (unknown)", got)
	}
}
