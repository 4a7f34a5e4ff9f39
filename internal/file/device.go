// Package file implements the Uxn file device: a port-triggered facade over
// the host filesystem exposing open/read/write/stat/delete through a
// bounded RAM-streaming interface.
package file

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/uxngo/uxngo/internal/device"
)

type subjectKind int

const (
	subjectNone subjectKind = iota
	subjectFile
	subjectDirectory
)

// dirEntry is one pending directory-listing line, already formatted.
type dirEntry struct {
	line []byte
}

// Device is the Uxn file device.
type Device struct {
	fileNameAddress    [2]byte
	fileName           string
	success            uint16
	fetchLength        [2]byte
	targetAddress      [2]byte
	statTargetAddress  [2]byte
	writeTargetAddress [2]byte
	appendFlag         byte

	kind    subjectKind
	file    *os.File
	dirNext int
	dir     []dirEntry
}

// New builds an idle file device with no open subject.
func New() *Device {
	return &Device{}
}

func beUint16(b [2]byte) uint16 { return uint16(b[0])<<8 | uint16(b[1]) }

func produceDirEntryString(name string, info os.FileInfo) string {
	var length string
	switch {
	case info.IsDir():
		length = "----"
	case info.Size() <= 0xffff:
		length = fmt.Sprintf("%04x", info.Size())
	default:
		length = "????"
	}
	return fmt.Sprintf("%s %s\n", length, name)
}

func (d *Device) closeSubject() {
	if d.file != nil {
		d.file.Close()
		d.file = nil
	}
	d.dir = nil
	d.dirNext = 0
	d.kind = subjectNone
}

func (d *Device) openSubject() {
	d.closeSubject()

	info, err := os.Stat(d.fileName)
	if err != nil {
		return
	}

	if info.IsDir() {
		entries, err := os.ReadDir(d.fileName)
		if err != nil {
			return
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })
		list := make([]dirEntry, 0, len(entries))
		for _, e := range entries {
			ei, err := e.Info()
			if err != nil {
				continue
			}
			list = append(list, dirEntry{line: []byte(produceDirEntryString(e.Name(), ei))})
		}
		d.kind = subjectDirectory
		d.dir = list
		return
	}

	f, err := os.Open(d.fileName)
	if err != nil {
		return
	}
	d.kind = subjectFile
	d.file = f
}

func (d *Device) refreshFileName(ram device.RAM) {
	addr := beUint16(d.fileNameAddress)
	var name []byte
	for {
		b, err := ram.Read(addr, 1)
		if err != nil {
			break
		}
		if b[0] == 0 {
			break
		}
		name = append(name, b[0])
		addr++
	}
	d.closeSubject()
	d.fileName = string(name)
	d.success = 0
}

func (d *Device) readFromDir(ram device.RAM) {
	limit := int(beUint16(d.fetchLength))

	var buf []byte
	for d.dirNext < len(d.dir) {
		entry := d.dir[d.dirNext]
		if len(buf)+len(entry.line) > limit {
			break
		}
		buf = append(buf, entry.line...)
		d.dirNext++
	}

	if err := ram.Write(beUint16(d.targetAddress), buf); err != nil {
		d.success = 0
		return
	}
	d.success = uint16(len(buf))
}

func (d *Device) readFromFile(ram device.RAM) {
	n := int(beUint16(d.fetchLength))
	buf := make([]byte, n)
	read, err := d.file.Read(buf)
	if err != nil && err != io.EOF {
		d.success = 0
		return
	}
	if err := ram.Write(beUint16(d.targetAddress), buf[:read]); err != nil {
		d.success = 0
		return
	}
	d.success = uint16(read)
}

func (d *Device) readFromFS(ram device.RAM) {
	if d.kind == subjectNone {
		d.openSubject()
	}

	switch d.kind {
	case subjectNone:
		d.success = 0
	case subjectFile:
		d.readFromFile(ram)
	case subjectDirectory:
		d.readFromDir(ram)
	}
}

func (d *Device) writeToFS(ram device.RAM) {
	flags := os.O_WRONLY | os.O_CREATE
	if d.appendFlag == 0x1 {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(d.fileName, flags, 0644)
	if err != nil {
		d.success = 0
		return
	}
	defer f.Close()

	data, err := ram.Read(beUint16(d.writeTargetAddress), beUint16(d.fetchLength))
	if err != nil {
		d.success = 0
		return
	}

	n, err := f.Write(data)
	if err != nil {
		d.success = 0
		return
	}
	d.success = uint16(n)
}

func (d *Device) statFromFSInto(ram device.RAM) {
	info, err := os.Stat(d.fileName)
	if err != nil {
		d.success = 0
		return
	}
	output := []byte(produceDirEntryString(filepath.Base(d.fileName), info))
	if len(output) > int(beUint16(d.fetchLength)) {
		d.success = 0
		return
	}
	if err := ram.Write(beUint16(d.statTargetAddress), output); err != nil {
		d.success = 0
		return
	}
	d.success = uint16(len(output))
}

func (d *Device) deleteFromFS() {
	if err := os.Remove(d.fileName); err != nil {
		d.success = 0
		return
	}
	d.success = 1
}

// Read implements device.Device.
func (d *Device) Read(port byte) byte {
	switch port {
	case 0x2:
		return byte(d.success >> 8)
	case 0x3:
		return byte(d.success)
	default:
		return 0
	}
}

// Write implements device.Device.
func (d *Device) Write(port byte, val byte, ram device.RAM) {
	switch port {
	case 0x4:
		d.statTargetAddress[0] = val
	case 0x5:
		d.statTargetAddress[1] = val
		d.statFromFSInto(ram)
	case 0x6:
		d.deleteFromFS()
	case 0x7:
		d.appendFlag = val
	case 0x8:
		d.fileNameAddress[0] = val
	case 0x9:
		d.fileNameAddress[1] = val
		d.refreshFileName(ram)
	case 0xa:
		d.fetchLength[0] = val
	case 0xb:
		d.fetchLength[1] = val
	case 0xc:
		d.targetAddress[0] = val
	case 0xd:
		d.targetAddress[1] = val
		d.readFromFS(ram)
	case 0xe:
		d.writeTargetAddress[0] = val
	case 0xf:
		d.writeTargetAddress[1] = val
		d.writeToFS(ram)
	}
}
