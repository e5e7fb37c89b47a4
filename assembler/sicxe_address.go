// sicxe_address.go - Addressing modes and instruction encoding

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

SIC/XE Instruction Encoder
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"strconv"
	"strings"
)

// Flags is the nixbpe bit set of a Format3/Format4 instruction, kept at
// the bit positions the hardware expects.
type Flags uint8

const (
	FlagE Flags = 0x01
	FlagP Flags = 0x02
	FlagB Flags = 0x04
	FlagX Flags = 0x08
	FlagI Flags = 0x10
	FlagN Flags = 0x20
)

// String renders the flags as six bits in nixbpe order.
func (f Flags) String() string {
	var sb strings.Builder
	for bit := FlagN; bit != 0; bit >>= 1 {
		if f&bit != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Operand markers.
const (
	ImmediateMarker = '#'
	IndirectMarker  = '@'
	IndexSuffix     = ",X"
)

// Displacement windows. The bounds are inclusive.
const (
	PCMinDisplacement   = -2048
	PCMaxDisplacement   = 2048
	BaseMaxDisplacement = 4096
	displacementModulus = 4096

	format3FieldMax = 0xFFF
	format4FieldMax = 0xFFFFF
)

// AddressState is the location counter state both passes thread through
// every statement.
type AddressState struct {
	Start     uint32
	Current   uint32
	Base      uint32
	Increment uint32
}

var registerCodes = map[string]uint64{
	"A": 0,
	"X": 1,
	"L": 2,
	"B": 3,
	"S": 4,
	"T": 5,
}

// Encoded is a packed instruction word and how it was derived.
type Encoded struct {
	Word   uint64
	Format Format
	Flags  Flags
	// Relocatable is set when the address field holds an absolute symbol
	// address that a loader would need to relocate.
	Relocatable bool
}

// Encode packs the instruction in stmt. format is the effective format
// returned by LookupFormat for stmt.Operation, st the address state at the
// start of the statement.
func Encode(stmt Statement, format Format, st AddressState, symbols *SymbolTable) (Encoded, error) {
	value, err := LookupValue(stmt.Operation)
	if err != nil {
		return Encoded{}, err
	}
	op := uint64(value)

	switch format {
	case Format1:
		return Encoded{Word: op, Format: format}, nil
	case Format2:
		regs, err := encodeRegisters(strings.TrimPrefix(stmt.Operation, string(ExtendedMarker)), stmt.Operand)
		if err != nil {
			return Encoded{}, err
		}
		return Encoded{Word: op<<8 | regs, Format: format}, nil
	case Format3, Format4:
		return encodeMemory(op, stmt, format, st, symbols)
	}
	return Encoded{}, errToken(ErrIllegalOpcodeFormat, stmt.Operation)
}

// encodeRegisters builds the r1/r2 byte of a Format2 instruction.
func encodeRegisters(mnemonic, operand string) (uint64, error) {
	parts := strings.SplitN(operand, ",", 2)
	first := strings.TrimSpace(parts[0])
	second := ""
	if len(parts) == 2 {
		second = strings.TrimSpace(parts[1])
	}

	if mnemonic == "SVC" {
		n, err := registerNumber(first, 0, 15)
		if err != nil {
			return 0, err
		}
		return n << 4, nil
	}

	r1, ok := registerCodes[first]
	if !ok {
		return 0, errToken(ErrIllegalRegister, operand)
	}
	var r2 uint64
	switch {
	case mnemonic == "SHIFTL" || mnemonic == "SHIFTR":
		n, err := registerNumber(second, 1, 16)
		if err != nil {
			return 0, err
		}
		r2 = n - 1
	case second != "":
		r2, ok = registerCodes[second]
		if !ok {
			return 0, errToken(ErrIllegalRegister, operand)
		}
	}
	return r1<<4 | r2, nil
}

func registerNumber(s string, lo, hi uint64) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 8)
	if err != nil || n < lo || n > hi {
		return 0, errToken(ErrIllegalOperand, s)
	}
	return n, nil
}

// addressingFlags derives n/i/x from the operand markers and returns the
// operand with the markers removed.
func addressingFlags(operand string) (Flags, string) {
	var flags Flags
	switch {
	case strings.HasPrefix(operand, string(ImmediateMarker)):
		flags |= FlagI
		operand = operand[1:]
	case strings.HasPrefix(operand, string(IndirectMarker)):
		flags |= FlagN
		operand = operand[1:]
	default:
		flags |= FlagN | FlagI
	}
	if strings.HasSuffix(operand, IndexSuffix) {
		flags |= FlagX
		operand = strings.TrimSuffix(operand, IndexSuffix)
	}
	return flags, operand
}

func isNumeric(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func pack(op uint64, flags Flags, field uint64, format Format) uint64 {
	if format == Format4 {
		return op<<24 | uint64(flags)<<20 | field
	}
	return op<<16 | uint64(flags)<<12 | field
}

func encodeMemory(op uint64, stmt Statement, format Format, st AddressState, symbols *SymbolTable) (Encoded, error) {
	if strings.TrimPrefix(stmt.Operation, string(ExtendedMarker)) == "RSUB" {
		return Encoded{Word: pack(op, 0, 0, format), Format: format}, nil
	}

	flags, target := addressingFlags(stmt.Operand)
	if format == Format4 {
		flags |= FlagE
	}

	if isNumeric(target) {
		var disp uint64
		if target != "" {
			v, err := strconv.ParseUint(target, 10, 32)
			if err != nil {
				return Encoded{}, errToken(ErrAddressOutOfRange, stmt.Operand)
			}
			disp = v
		}
		limit := uint64(format3FieldMax)
		if format == Format4 {
			limit = format4FieldMax
		}
		if disp > limit {
			return Encoded{}, errToken(ErrAddressOutOfRange, stmt.Operand)
		}
		return Encoded{Word: pack(op, flags, disp, format), Format: format, Flags: flags}, nil
	}

	addr, err := symbols.Address(target)
	if err != nil {
		return Encoded{}, err
	}

	if format == Format4 {
		return Encoded{
			Word:        pack(op, flags, uint64(addr), format),
			Format:      format,
			Flags:       flags,
			Relocatable: true,
		}, nil
	}

	disp := int64(addr) - int64(st.Current+format.Len())
	if disp >= PCMinDisplacement && disp <= PCMaxDisplacement {
		flags |= FlagP
	} else {
		disp = int64(addr) - int64(st.Base)
		if disp < 0 || disp > BaseMaxDisplacement {
			return Encoded{}, errToken(ErrAddressOutOfRange, stmt.Operation+" "+stmt.Operand)
		}
		flags |= FlagB
	}
	// At the inclusive upper bounds the displacement does not fit twelve
	// bits: base+4096 carries into the e bit and PC+2048 reads back as -2048.
	if disp < 0 {
		disp += displacementModulus
	}
	return Encoded{Word: pack(op, flags, uint64(disp), format), Format: format, Flags: flags}, nil
}
