package mouse

import "testing"

func TestSetGetVector(t *testing.T) {
	d := New()

	d.Write(0x0, 0xab, nil)
	d.Write(0x1, 0xcd, nil)

	if d.Vector() != 0xabcd {
		t.Errorf("vector = %#x, want 0xabcd", d.Vector())
	}
}

func TestCursorPosition(t *testing.T) {
	d := New()
	d.NotifyCursorPosition(123, 65535)

	if got := d.Read(0x2); got != 0x00 {
		t.Errorf("x hi = %#x, want 0x00", got)
	}
	if got := d.Read(0x3); got != 0x7b {
		t.Errorf("x lo = %#x, want 0x7b", got)
	}
	if got := d.Read(0x4); got != 0xff {
		t.Errorf("y hi = %#x, want 0xff", got)
	}
	if got := d.Read(0x5); got != 0xff {
		t.Errorf("y lo = %#x, want 0xff", got)
	}
}

func TestClickState(t *testing.T) {
	d := New()
	d.NotifyButtonDown(ButtonLeft)
	d.NotifyButtonDown(ButtonRight)

	if got := d.Read(0x6); got != (1 | (1 << 2)) {
		t.Errorf("click state = %#x, want 0x05", got)
	}

	d.NotifyButtonUp(ButtonRight)
	if got := d.Read(0x6); got != 1 {
		t.Errorf("click state = %#x, want 0x01", got)
	}
}

func TestScroll(t *testing.T) {
	d := New()
	d.NotifyScroll(2, -1)

	if got := d.Read(0xa); got != 0x00 {
		t.Errorf("scroll x hi = %#x, want 0x00", got)
	}
	if got := d.Read(0xb); got != 0x02 {
		t.Errorf("scroll x lo = %#x, want 0x02", got)
	}
	if got := d.Read(0xc); got != 0xff {
		t.Errorf("scroll y hi = %#x, want 0xff", got)
	}
	if got := d.Read(0xd); got != 0xff {
		t.Errorf("scroll y lo = %#x, want 0xff", got)
	}
}
