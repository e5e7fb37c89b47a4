// sicxe_directives.go - Assembler directives

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

SIC/XE Assembler Directives
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"strconv"
	"strings"
)

// Directive identifies an assembler directive keyword.
type Directive int

const (
	DirNone Directive = iota
	DirStart
	DirBase
	DirEnd
	DirByte
	DirResb
	DirResw
)

var directiveNames = map[string]Directive{
	"START": DirStart,
	"BASE":  DirBase,
	"END":   DirEnd,
	"BYTE":  DirByte,
	"RESB":  DirResb,
	"RESW":  DirResw,
}

func (d Directive) String() string {
	for name, v := range directiveNames {
		if v == d {
			return name
		}
	}
	return "NONE"
}

// ClassifyDirective returns the directive named by keyword, or DirNone.
func ClassifyDirective(keyword string) Directive {
	return directiveNames[keyword]
}

// IsDirective reports whether s is a directive keyword.
func IsDirective(s string) bool {
	return ClassifyDirective(s) != DirNone
}

// WordSize is the size of a SIC/XE word in bytes.
const WordSize = 3

// maxCharLiteral bounds C'...' literals to what one encoded value holds.
const maxCharLiteral = 8

// StartAddress parses the hexadecimal operand of a START directive.
func StartAddress(operand string) (uint32, error) {
	if operand == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(operand, 16, 32)
	if err != nil {
		return 0, errToken(ErrIllegalOperand, operand)
	}
	return uint32(v), nil
}

// Footprint returns how many bytes of memory directive d occupies. A
// reservation larger than the whole of memory is ErrOutOfMemory.
func Footprint(d Directive, operand string) (uint32, error) {
	switch d {
	case DirStart, DirBase, DirEnd:
		return 0, nil
	case DirResb, DirResw:
		n, err := strconv.ParseUint(operand, 10, 64)
		if err != nil {
			return 0, errToken(ErrIllegalOperand, operand)
		}
		if n > MemoryLimit {
			return 0, errToken(ErrOutOfMemory, operand)
		}
		if d == DirResw {
			n *= WordSize
		}
		if n > MemoryLimit {
			return 0, errToken(ErrOutOfMemory, operand)
		}
		return uint32(n), nil
	case DirByte:
		lit, err := ParseByteLiteral(operand)
		if err != nil {
			return 0, err
		}
		return lit.Width, nil
	}
	return 0, errToken(ErrIllegalOpcodeDirective, operand)
}

// ByteLiteral is the decoded operand of a BYTE directive. Value holds the
// whole literal as one integer, Width its size in bytes.
type ByteLiteral struct {
	Width uint32
	Value uint64
}

// ParseByteLiteral decodes X'HH' and C'...' operands. A hex literal must
// be exactly one byte. A character literal folds its character codes into
// one big-endian value, so C'AB' is 0x4142.
func ParseByteLiteral(operand string) (ByteLiteral, error) {
	if len(operand) < 3 || operand[1] != '\'' || !strings.HasSuffix(operand, "'") {
		return ByteLiteral{}, errToken(ErrIllegalOperand, operand)
	}
	body := operand[2 : len(operand)-1]
	switch operand[0] {
	case 'X':
		if len(body) != 2 {
			return ByteLiteral{}, errToken(ErrOutOfRangeByte, operand)
		}
		v, err := strconv.ParseUint(body, 16, 8)
		if err != nil {
			return ByteLiteral{}, errToken(ErrIllegalOperand, operand)
		}
		return ByteLiteral{Width: 1, Value: v}, nil
	case 'C':
		if len(body) == 0 || len(body) > maxCharLiteral {
			return ByteLiteral{}, errToken(ErrOutOfRangeByte, operand)
		}
		var v uint64
		for i := 0; i < len(body); i++ {
			v = v<<8 | uint64(body[i])
		}
		return ByteLiteral{Width: uint32(len(body)), Value: v}, nil
	}
	return ByteLiteral{}, errToken(ErrIllegalOperand, operand)
}
