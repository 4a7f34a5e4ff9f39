package console

import (
	"bytes"
	"testing"
)

func TestSetGetVector(t *testing.T) {
	d := New(&bytes.Buffer{}, &bytes.Buffer{})

	if d.Vector() != 0 {
		t.Fatalf("initial vector = %#x, want 0", d.Vector())
	}

	d.Write(0x0, 0xab, nil)
	d.Write(0x1, 0xcd, nil)

	if d.Vector() != 0xabcd {
		t.Errorf("vector = %#x, want 0xabcd", d.Vector())
	}
	if d.Read(0x0) != 0xab || d.Read(0x1) != 0xcd {
		t.Errorf("vector bytes = %#x %#x, want 0xab 0xcd", d.Read(0x0), d.Read(0x1))
	}
}

func TestProvideInput(t *testing.T) {
	d := New(&bytes.Buffer{}, &bytes.Buffer{})

	if d.Read(0x2) != 0 {
		t.Fatalf("initial input = %#x, want 0", d.Read(0x2))
	}

	d.ProvideInput(0x8a)
	if d.Read(0x2) != 0x8a {
		t.Errorf("input = %#x, want 0x8a", d.Read(0x2))
	}
	// reading again without new input returns the same byte.
	if d.Read(0x2) != 0x8a {
		t.Errorf("repeated read = %#x, want 0x8a", d.Read(0x2))
	}
}

func TestWriteStdoutStderr(t *testing.T) {
	var stdout, stderr bytes.Buffer
	d := New(&stdout, &stderr)

	d.Write(0x8, 0x01, nil)
	d.Write(0x8, 0x02, nil)
	d.Write(0x9, 0x04, nil)
	d.Write(0x8, 0x03, nil)
	d.Write(0x9, 0x05, nil)
	d.Write(0x9, 0x06, nil)

	if !bytes.Equal(stdout.Bytes(), []byte{0x01, 0x02, 0x03}) {
		t.Errorf("stdout = %v, want [1 2 3]", stdout.Bytes())
	}
	if !bytes.Equal(stderr.Bytes(), []byte{0x04, 0x05, 0x06}) {
		t.Errorf("stderr = %v, want [4 5 6]", stderr.Bytes())
	}
}
