// sicxe_dis.go - SIC/XE Disassembler

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

SIC/XE Disassembler
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------
// DecodedInstruction holds the decoded fields of a single instruction
// ---------------------------------------------------------------------

type DecodedInstruction struct {
	PC     uint32
	Raw    []byte
	Known  bool
	Opcode Opcode
	Format Format
	Flags  Flags
	R1, R2 byte
	// Field is the raw displacement (Format3) or address (Format4).
	Field uint32
}

// Len returns the number of bytes the instruction occupies.
func (d DecodedInstruction) Len() int {
	return len(d.Raw)
}

// Decode decodes the instruction at the start of data. Bytes that do not
// form a known instruction decode as a single unknown byte.
func Decode(data []byte, pc uint32) DecodedInstruction {
	d := DecodedInstruction{PC: pc}
	if len(data) == 0 {
		return d
	}
	unknown := func() DecodedInstruction {
		return DecodedInstruction{PC: pc, Raw: data[:1]}
	}

	if op, ok := LookupOpcode(data[0]); ok && op.Format != Format3 {
		n := int(op.Format.Len())
		if len(data) < n {
			return unknown()
		}
		d.Known, d.Opcode, d.Format, d.Raw = true, op, op.Format, data[:n]
		if op.Format == Format2 {
			d.R1, d.R2 = data[1]>>4, data[1]&0x0F
		}
		return d
	}

	op, ok := LookupOpcode(data[0] & 0xFC)
	if !ok || op.Format != Format3 || len(data) < 3 {
		return unknown()
	}
	d.Flags = Flags(data[0]&0x03)<<4 | Flags(data[1]>>4)
	d.Known, d.Opcode, d.Format = true, op, Format3
	if d.Flags&FlagE != 0 {
		if len(data) < 4 {
			return unknown()
		}
		d.Format = Format4
		d.Raw = data[:4]
		d.Field = uint32(data[1]&0x0F)<<16 | uint32(data[2])<<8 | uint32(data[3])
		return d
	}
	d.Raw = data[:3]
	d.Field = uint32(data[1]&0x0F)<<8 | uint32(data[2])
	return d
}

// Target returns the effective address of a PC-relative or absolute
// memory operand. ok is false for immediate values, base-relative
// operands and non-memory formats.
func (d DecodedInstruction) Target() (addr uint32, ok bool) {
	if d.Format != Format3 && d.Format != Format4 {
		return 0, false
	}
	switch {
	case d.Flags&(FlagN|FlagI) == FlagI && d.Flags&(FlagP|FlagB) == 0:
		return 0, false
	case d.Flags&FlagB != 0:
		return 0, false
	case d.Flags&FlagP != 0:
		disp := int64(d.Field)
		if disp >= displacementModulus/2 {
			disp -= displacementModulus
		}
		return uint32(int64(d.PC) + int64(d.Len()) + disp), true
	}
	return d.Field, true
}

var registerNames = map[byte]string{0: "A", 1: "X", 2: "L", 3: "B", 4: "S", 5: "T"}

func regName(r byte) string {
	if name, ok := registerNames[r]; ok {
		return name
	}
	return fmt.Sprintf("R%d", r)
}

// ---------------------------------------------------------------------
// FormatInstruction formats a single decoded instruction.
// Returns (hex bytes, mnemonic+operands).
// ---------------------------------------------------------------------

func FormatInstruction(d DecodedInstruction) (string, string) {
	hexBytes := make([]string, len(d.Raw))
	for i, b := range d.Raw {
		hexBytes[i] = fmt.Sprintf("%02X", b)
	}
	code := strings.Join(hexBytes, " ")

	if !d.Known {
		return code, fmt.Sprintf("BYTE    X'%s'", strings.Join(hexBytes, ""))
	}

	mnemonic := d.Opcode.Mnemonic
	switch d.Format {
	case Format1:
		return code, mnemonic
	case Format2:
		switch mnemonic {
		case "SVC":
			return code, fmt.Sprintf("%-8s%d", mnemonic, d.R1)
		case "SHIFTL", "SHIFTR":
			return code, fmt.Sprintf("%-8s%s,%d", mnemonic, regName(d.R1), d.R2+1)
		case "CLEAR", "TIXR":
			return code, fmt.Sprintf("%-8s%s", mnemonic, regName(d.R1))
		}
		return code, fmt.Sprintf("%-8s%s,%s", mnemonic, regName(d.R1), regName(d.R2))
	case Format4:
		mnemonic = string(ExtendedMarker) + mnemonic
	}

	if d.Opcode.Mnemonic == "RSUB" {
		return code, mnemonic
	}

	var operand string
	switch d.Flags & (FlagN | FlagI) {
	case FlagI:
		operand = "#"
	case FlagN:
		operand = "@"
	}
	if addr, ok := d.Target(); ok {
		operand += fmt.Sprintf("%X", addr)
	} else if d.Flags&FlagB != 0 {
		operand += fmt.Sprintf("%d(B)", d.Field)
	} else {
		operand += fmt.Sprintf("%d", d.Field)
	}
	if d.Flags&FlagX != 0 {
		operand += IndexSuffix
	}
	return code, fmt.Sprintf("%-8s%-12s; %s", mnemonic, operand, d.Flags)
}

// ---------------------------------------------------------------------
// Disassemble walks every text record of an object file.
// ---------------------------------------------------------------------

func Disassemble(obj *ObjectFile) []string {
	var lines []string
	for _, block := range obj.Text {
		offset := 0
		for offset < len(block.Data) {
			pc := block.Start + uint32(offset)
			d := Decode(block.Data[offset:], pc)
			code, asm := FormatInstruction(d)
			lines = append(lines, fmt.Sprintf("$%06X: %-12s    %s", pc, code, asm))
			offset += d.Len()
		}
	}
	return lines
}
