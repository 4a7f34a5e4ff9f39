package file

import (
	"os"
	"testing"

	"github.com/uxngo/uxngo/internal/device"
)

type fakeRAM struct {
	data [65536]byte
}

func (r *fakeRAM) Read(addr uint16, n uint16) ([]byte, error) {
	out := make([]byte, n)
	for i := range out {
		out[i] = r.data[int(addr)+i]
	}
	return out, nil
}

func (r *fakeRAM) Write(addr uint16, data []byte) error {
	for i, b := range data {
		r.data[int(addr)+i] = b
	}
	return nil
}

var _ device.RAM = (*fakeRAM)(nil)

func writeFileName(ram *fakeRAM, addr uint16, name string) {
	copy(ram.data[addr:], name)
	ram.data[int(addr)+len(name)] = 0
}

// S5 — file read then EOF.
func TestReadFromFileThenEOF(t *testing.T) {
	tmp, err := os.CreateTemp(t.TempDir(), "uxnfile-*")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := tmp.WriteString("file contents 1234"); err != nil {
		t.Fatal(err)
	}
	tmp.Close()

	ram := &fakeRAM{}
	const nameAddr = 0x1000
	writeFileName(ram, nameAddr, tmp.Name())

	d := New()
	d.Write(0x8, byte(nameAddr>>8), ram)
	d.Write(0x9, byte(nameAddr&0xff), ram)

	d.fetchLength = [2]byte{0, 15}
	d.targetAddress = [2]byte{0xcc, 0xdd}

	d.Write(0xc, 0xcc, ram)
	d.Write(0xd, 0xdd, ram)
	if d.success != 15 {
		t.Fatalf("first read success = %d, want 15", d.success)
	}
	if string(ram.data[0xccdd:0xccdd+15]) != "file contents 1" {
		t.Errorf("first read RAM contents = %q", ram.data[0xccdd:0xccdd+15])
	}

	d.Write(0xc, 0xcc, ram)
	d.Write(0xd, 0xdd, ram)
	if d.success != 3 {
		t.Fatalf("second read success = %d, want 3", d.success)
	}

	d.Write(0xc, 0xcc, ram)
	d.Write(0xd, 0xdd, ram)
	if d.success != 0 {
		t.Fatalf("third read success = %d, want 0", d.success)
	}
}

func TestWriteThenReadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/roundtrip.txt"

	ram := &fakeRAM{}
	const nameAddr = 0x2000
	writeFileName(ram, nameAddr, path)
	const writeAddr = 0x3000
	copy(ram.data[writeAddr:], "hello")

	d := New()
	d.Write(0x8, byte(nameAddr>>8), ram)
	d.Write(0x9, byte(nameAddr&0xff), ram)
	d.fetchLength = [2]byte{0, 5}
	d.writeTargetAddress = [2]byte{byte(writeAddr >> 8), byte(writeAddr & 0xff)}

	d.Write(0xe, d.writeTargetAddress[0], ram)
	d.Write(0xf, d.writeTargetAddress[1], ram)
	if d.success != 5 {
		t.Fatalf("write success = %d, want 5", d.success)
	}

	contents, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(contents) != "hello" {
		t.Errorf("file contents = %q, want %q", contents, "hello")
	}
}

func TestDeleteFromFS(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/to-delete.txt"
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	ram := &fakeRAM{}
	const nameAddr = 0x4000
	writeFileName(ram, nameAddr, path)

	d := New()
	d.Write(0x8, byte(nameAddr>>8), ram)
	d.Write(0x9, byte(nameAddr&0xff), ram)
	d.Write(0x6, 0x01, ram)

	if d.success != 1 {
		t.Fatalf("delete success = %d, want 1", d.success)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected file to be deleted")
	}
}

func TestStatFromFS(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/stat-me.txt"
	if err := os.WriteFile(path, []byte("0123456789"), 0644); err != nil {
		t.Fatal(err)
	}

	ram := &fakeRAM{}
	const nameAddr = 0x5000
	writeFileName(ram, nameAddr, path)

	d := New()
	d.Write(0x8, byte(nameAddr>>8), ram)
	d.Write(0x9, byte(nameAddr&0xff), ram)
	d.fetchLength = [2]byte{0, 0xff}
	const statAddr = 0x6000
	d.Write(0x4, byte(statAddr>>8), ram)
	d.Write(0x5, byte(statAddr&0xff), ram)

	if d.success == 0 {
		t.Fatal("expected non-zero success for stat")
	}
	want := "000a stat-me.txt\n"
	got := string(ram.data[statAddr : int(statAddr)+int(d.success)])
	if got != want {
		t.Errorf("stat entry = %q, want %q", got, want)
	}
}
