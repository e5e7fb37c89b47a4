// sicxe_opcodes.go - Instruction catalog

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

SIC/XE Instruction Catalog
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"sort"
	"strings"
)

// Format is the SIC/XE instruction format. Format4 is never stored in the
// catalog; it is derived from a Format3 entry and the extension marker.
type Format int

const (
	Format1 Format = 1
	Format2 Format = 2
	Format3 Format = 3
	Format4 Format = 4
)

// Len returns the encoded length of an instruction in bytes.
func (f Format) Len() uint32 {
	return uint32(f)
}

// ExtendedMarker requests the 4-byte encoding of a Format3 mnemonic.
const ExtendedMarker = '+'

// Opcode is one entry of the instruction catalog.
type Opcode struct {
	Mnemonic string
	Format   Format
	Value    byte
}

// ---------------------------------------------------------------------
// Opcode catalog
// ---------------------------------------------------------------------

// opcodeTable must stay in strict ascending order by mnemonic: lookups
// binary search it.
var opcodeTable = [...]Opcode{
	{"ADD", Format3, 0x18}, {"ADDR", Format2, 0x90}, {"AND", Format3, 0x40}, {"CLEAR", Format2, 0xB4},
	{"COMP", Format3, 0x28}, {"COMPR", Format2, 0xA0}, {"DIV", Format3, 0x24}, {"DIVR", Format2, 0x9C},
	{"FIX", Format1, 0xC4}, {"HIO", Format1, 0xF4}, {"J", Format3, 0x3C}, {"JEQ", Format3, 0x30},
	{"JGT", Format3, 0x34}, {"JLT", Format3, 0x38}, {"JSUB", Format3, 0x48}, {"LDA", Format3, 0x00},
	{"LDB", Format3, 0x68}, {"LDCH", Format3, 0x50}, {"LDL", Format3, 0x08}, {"LDS", Format3, 0x6C},
	{"LDT", Format3, 0x74}, {"LDX", Format3, 0x04}, {"LPS", Format3, 0xD0}, {"MUL", Format3, 0x20},
	{"MULR", Format2, 0x98}, {"OR", Format3, 0x44}, {"RD", Format3, 0xD8}, {"RMO", Format2, 0xAC},
	{"RSUB", Format3, 0x4C}, {"SHIFTL", Format2, 0xA4}, {"SHIFTR", Format2, 0xA8}, {"SIO", Format1, 0xF0},
	{"SSK", Format3, 0xEC}, {"STA", Format3, 0x0C}, {"STB", Format3, 0x78}, {"STCH", Format3, 0x54},
	{"STI", Format3, 0xD4}, {"STL", Format3, 0x14}, {"STS", Format3, 0x7C}, {"STSW", Format3, 0xE8},
	{"STT", Format3, 0x84}, {"STX", Format3, 0x10}, {"SUB", Format3, 0x1C}, {"SUBR", Format2, 0x94},
	{"SVC", Format2, 0xB0}, {"TD", Format3, 0xE0}, {"TIO", Format1, 0xF8}, {"TIX", Format3, 0x2C},
	{"TIXR", Format2, 0xB8}, {"WD", Format3, 0xDC},
}

// opcodesByValue is the reverse index used by the disassembler.
var opcodesByValue = func() map[byte]Opcode {
	m := make(map[byte]Opcode, len(opcodeTable))
	for _, op := range opcodeTable {
		m[op.Value] = op
	}
	return m
}()

// Opcodes returns a copy of the catalog in mnemonic order.
func Opcodes() []Opcode {
	out := make([]Opcode, len(opcodeTable))
	copy(out, opcodeTable[:])
	return out
}

func searchOpcodes(name string) (Opcode, bool) {
	i := sort.Search(len(opcodeTable), func(i int) bool {
		return opcodeTable[i].Mnemonic >= name
	})
	if i < len(opcodeTable) && opcodeTable[i].Mnemonic == name {
		return opcodeTable[i], true
	}
	return Opcode{}, false
}

// IsExtended reports whether a mnemonic carries the extension marker.
func IsExtended(mnemonic string) bool {
	return len(mnemonic) > 0 && mnemonic[0] == ExtendedMarker
}

// lookup resolves a possibly extended mnemonic to its catalog entry and
// effective format.
func lookup(mnemonic string) (Opcode, Format, error) {
	name := strings.TrimPrefix(mnemonic, string(ExtendedMarker))
	op, ok := searchOpcodes(name)
	if !ok {
		return Opcode{}, 0, errToken(ErrNotFound, mnemonic)
	}
	if !IsExtended(mnemonic) {
		return op, op.Format, nil
	}
	if op.Format != Format3 {
		return Opcode{}, 0, errToken(ErrIllegalOpcodeFormat, mnemonic)
	}
	return op, Format4, nil
}

// LookupFormat returns the instruction format of mnemonic, promoting
// Format3 to Format4 when the extension marker is present.
func LookupFormat(mnemonic string) (Format, error) {
	_, f, err := lookup(mnemonic)
	return f, err
}

// LookupValue returns the base opcode value of mnemonic.
func LookupValue(mnemonic string) (byte, error) {
	op, _, err := lookup(mnemonic)
	return op.Value, err
}

// IsOpcode reports whether s names a catalog entry, with or without the
// extension marker. It does not validate the extension.
func IsOpcode(s string) bool {
	_, ok := searchOpcodes(strings.TrimPrefix(s, string(ExtendedMarker)))
	return ok
}

// LookupOpcode finds the catalog entry whose base value is v.
func LookupOpcode(v byte) (Opcode, bool) {
	op, ok := opcodesByValue[v]
	return op, ok
}
