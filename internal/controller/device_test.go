package controller

import "testing"

func TestSetGetVector(t *testing.T) {
	d := New()

	if d.Vector() != 0 {
		t.Fatalf("initial vector = %#x, want 0", d.Vector())
	}

	d.Write(0x0, 0xab, nil)
	d.Write(0x1, 0xcd, nil)

	if d.Vector() != 0xabcd {
		t.Errorf("vector = %#x, want 0xabcd", d.Vector())
	}
}

// S6 — controller press.
func TestButtonPressState(t *testing.T) {
	d := New()

	changed := d.NotifyButtonDown(ButtonStart)
	if !changed {
		t.Error("expected state change on first press")
	}
	if got := d.Read(0x2); got != 0x08 {
		t.Fatalf("button state = %#x, want 0x08", got)
	}

	changed = d.NotifyButtonDown(ButtonUp)
	if !changed {
		t.Error("expected state change on second press")
	}
	if got := d.Read(0x2); got != 0x18 {
		t.Fatalf("button state = %#x, want 0x18", got)
	}

	changed = d.NotifyButtonDown(ButtonUp)
	if changed {
		t.Error("expected no state change when already pressed")
	}

	d.NotifyButtonUp(ButtonUp)
	if got := d.Read(0x2); got != 0x08 {
		t.Errorf("button state after release = %#x, want 0x08", got)
	}
}

func TestKeyPress(t *testing.T) {
	d := New()

	d.NotifyKeyPress('h')
	if got := d.Read(0x3); got != 'h' {
		t.Errorf("key = %q, want 'h'", got)
	}
	d.NotifyKeyPress('e')
	if got := d.Read(0x3); got != 'e' {
		t.Errorf("key = %q, want 'e'", got)
	}
}
