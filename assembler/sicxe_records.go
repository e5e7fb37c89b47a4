// sicxe_records.go - Object record writer

/*
 ██▓ ███▄    █ ▄▄▄█████▓ █    ██  ██▓▄▄▄█████▓ ██▓ ▒█████   ███▄    █    ▓█████  ███▄    █   ▄████  ██▓ ███▄    █ ▓█████
▓██▒ ██ ▀█   █ ▓  ██▒ ▓▒ ██  ▓██▒▓██▒▓  ██▒ ▓▒▓██▒▒██▒  ██▒ ██ ▀█   █    ▓█   ▀  ██ ▀█   █  ██▒ ▀█▒▓██▒ ██ ▀█   █ ▓█   ▀
▒██▒▓██  ▀█ ██▒▒ ▓██░ ▒░▓██  ▒██░▒██▒▒ ▓██░ ▒░▒██▒▒██░  ██▒▓██  ▀█ ██▒   ▒███   ▓██  ▀█ ██▒▒██░▄▄▄░▒██▒▓██  ▀█ ██▒▒███
░██░▓██▒  ▐▌██▒░ ▓██▓ ░ ▓▓█  ░██░░██░░ ▓██▓ ░ ░██░▒██   ██░▓██▒  ▐▌██▒   ▒▓█  ▄ ▓██▒  ▐▌██▒░▓█  ██▓░██░▓██▒  ▐▌██▒▒▓█  ▄
░██░▒██░   ▓██░  ▒██▒ ░ ▒▒█████▓ ░██░  ▒██▒ ░ ░██░░ ████▓▒░▒██░   ▓██░   ░▒████▒▒██░   ▓██░░▒▓███▀▒░██░▒██░   ▓██░░▒████▒
░▓  ░ ▒░   ▒ ▒   ▒ ░░   ░▒▓▒ ▒ ▒ ░▓    ▒ ░░   ░▓  ░ ▒░▒░▒░ ░ ▒░   ▒ ▒    ░░ ▒░ ░░ ▒░   ▒ ▒  ░▒   ▒ ░▓  ░ ▒░   ▒ ▒ ░░ ▒░ ░
 ▒ ░░ ░░   ░ ▒░    ░    ░░▒░ ░ ░  ▒ ░    ░     ▒ ░  ░ ▒ ▒░ ░ ░░   ░ ▒░    ░ ░  ░░ ░░   ░ ▒░  ░   ░  ▒ ░░ ░░   ░ ▒░ ░ ░  ░
 ▒ ░   ░   ░ ░   ░       ░░░ ░ ░  ▒ ░  ░       ▒ ░░ ░ ░ ▒     ░   ░ ░       ░      ░   ░ ░ ░ ░   ░  ▒ ░   ░   ░ ░    ░
 ░           ░             ░      ░            ░      ░ ░           ░       ░  ░         ░       ░  ░           ░    ░  ░

SIC/XE Object Records
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"fmt"
	"io"
	"strings"

	"github.com/golang/glog"
)

// Object record layout.
const (
	MaxRecordBytes = 30
	ProgramNameLen = 6
	// modificationLength is the number of half-bytes an M record patches:
	// the 20-bit address field of a Format4 instruction.
	modificationLength = 5
)

// Entry is one encoded value in a text record.
type Entry struct {
	Width int
	Value uint64
}

// TextRecord is the text record currently being filled.
type TextRecord struct {
	Start   uint32
	Entries []Entry
	Size    int
}

// ObjectWriter accumulates encoded values into text records and writes
// header, text, modification and end records.
type ObjectWriter struct {
	w    io.Writer
	name string
	rec  TextRecord
	mods []uint32

	flushes int
}

// NewObjectWriter writes object records to w.
func NewObjectWriter(w io.Writer) *ObjectWriter {
	return &ObjectWriter{w: w}
}

// programName pads or truncates name to the six header columns.
func programName(name string) string {
	if len(name) > ProgramNameLen {
		name = name[:ProgramNameLen]
	}
	return fmt.Sprintf("%-6s", name)
}

// Header writes the H record and opens the first text record at start.
func (o *ObjectWriter) Header(name string, start, size uint32) error {
	o.name = programName(name)
	o.rec = TextRecord{Start: start}
	_, err := fmt.Fprintf(o.w, "H%s%06X%06X\n", o.name, start, size)
	return err
}

// Fits reports whether width more bytes fit in the open text record.
func (o *ObjectWriter) Fits(width int) bool {
	return o.rec.Size+width <= MaxRecordBytes
}

// Record returns the open text record.
func (o *ObjectWriter) Record() TextRecord {
	return o.rec
}

// Flushes returns how many text records have been written.
func (o *ObjectWriter) Flushes() int {
	return o.flushes
}

// Add appends an entry to the open record. The caller must Flush first
// when the entry does not fit.
func (o *ObjectWriter) Add(width int, value uint64) error {
	if width <= 0 || !o.Fits(width) {
		return fmt.Errorf("%w: %d + %d bytes", ErrRecordFull, o.rec.Size, width)
	}
	o.rec.Entries = append(o.rec.Entries, Entry{Width: width, Value: value})
	o.rec.Size += width
	return nil
}

// Flush writes the open text record, if it holds anything, and starts a
// new one at next.
func (o *ObjectWriter) Flush(next uint32) error {
	if o.rec.Size > 0 {
		if _, err := io.WriteString(o.w, formatText(o.rec)); err != nil {
			return err
		}
		o.flushes++
		glog.V(3).Infof("text record %06X: %d bytes", o.rec.Start, o.rec.Size)
	}
	o.rec = TextRecord{Start: next}
	return nil
}

// Modification queues an M record for the address field at addr.
func (o *ObjectWriter) Modification(addr uint32) {
	o.mods = append(o.mods, addr)
}

// End writes the queued modification records and the E record.
func (o *ObjectWriter) End(entry uint32) error {
	for _, addr := range o.mods {
		if _, err := fmt.Fprintf(o.w, "M%06X%02X+%s\n", addr, modificationLength, strings.TrimRight(o.name, " ")); err != nil {
			return err
		}
	}
	o.mods = nil
	_, err := fmt.Fprintf(o.w, "E%06X\n", entry)
	return err
}

func formatText(rec TextRecord) string {
	s := fmt.Sprintf("T%06X%02X", rec.Start, rec.Size)
	for _, e := range rec.Entries {
		s += fmt.Sprintf("%0*X", e.Width*2, e.Value)
	}
	return s + "\n"
}
