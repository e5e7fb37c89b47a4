// sicxe_directives_test.go - Assembler directives tests

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

SIC/XE Assembler Directives Tests
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"errors"
	"testing"
)

func TestClassifyDirective(t *testing.T) {
	tests := map[string]Directive{
		"START": DirStart,
		"BASE":  DirBase,
		"END":   DirEnd,
		"BYTE":  DirByte,
		"RESB":  DirResb,
		"RESW":  DirResw,
		"WORD":  DirNone,
		"LDA":   DirNone,
		"start": DirNone,
		"":      DirNone,
	}
	for keyword, want := range tests {
		if got := ClassifyDirective(keyword); got != want {
			t.Errorf("ClassifyDirective(%q) = %v, want %v", keyword, got, want)
		}
	}
}

func TestParseByteLiteral(t *testing.T) {
	tests := []struct {
		operand   string
		wantWidth uint32
		wantValue uint64
		wantErr   error
	}{
		{"C'AB'", 2, 0x4142, nil},
		{"C'EOF'", 3, 0x454F46, nil},
		{"C'Z'", 1, 0x5A, nil},
		{"C'ABCDEFGH'", 8, 0x4142434445464748, nil},
		{"X'1F'", 1, 0x1F, nil},
		{"X'F1'", 1, 0xF1, nil},
		{"X'05'", 1, 0x05, nil},
		{"X'1F2'", 0, 0, ErrOutOfRangeByte},
		{"X'1'", 0, 0, ErrOutOfRangeByte},
		{"X''", 0, 0, ErrOutOfRangeByte},
		{"X'001F'", 0, 0, ErrOutOfRangeByte},
		{"C''", 0, 0, ErrOutOfRangeByte},
		{"C'ABCDEFGHI'", 0, 0, ErrOutOfRangeByte},
		{"X'G1'", 0, 0, ErrIllegalOperand},
		{"X'1F", 0, 0, ErrIllegalOperand},
		{"Y'1F'", 0, 0, ErrIllegalOperand},
		{"12", 0, 0, ErrIllegalOperand},
		{"", 0, 0, ErrIllegalOperand},
	}
	for _, tt := range tests {
		t.Run(tt.operand, func(t *testing.T) {
			lit, err := ParseByteLiteral(tt.operand)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("ParseByteLiteral(%q) error = %v, want %v", tt.operand, err, tt.wantErr)
			}
			if lit.Width != tt.wantWidth || lit.Value != tt.wantValue {
				t.Errorf("ParseByteLiteral(%q) = {%d, %X}, want {%d, %X}",
					tt.operand, lit.Width, lit.Value, tt.wantWidth, tt.wantValue)
			}
		})
	}
}

func TestFootprint(t *testing.T) {
	tests := []struct {
		dir     Directive
		operand string
		want    uint32
		wantErr error
	}{
		{DirStart, "1000", 0, nil},
		{DirBase, "LENGTH", 0, nil},
		{DirEnd, "FIRST", 0, nil},
		{DirResb, "4096", 4096, nil},
		{DirResw, "1", 3, nil},
		{DirResw, "10", 30, nil},
		{DirByte, "C'AB'", 2, nil},
		{DirByte, "X'1F'", 1, nil},
		{DirByte, "X'1F2'", 0, ErrOutOfRangeByte},
		{DirResb, "ten", 0, ErrIllegalOperand},
		{DirResw, "-1", 0, ErrIllegalOperand},
		{DirResb, "1048576", 0x100000, nil},
		{DirResb, "1048577", 0, ErrOutOfMemory},
		{DirResw, "349525", 0xFFFFF, nil},
		{DirResw, "349526", 0, ErrOutOfMemory},
		{DirResw, "1431655766", 0, ErrOutOfMemory},
		{DirResb, "4294967296", 0, ErrOutOfMemory},
		{DirResb, "99999999999999999999", 0, ErrIllegalOperand},
		{DirNone, "", 0, ErrIllegalOpcodeDirective},
	}
	for _, tt := range tests {
		got, err := Footprint(tt.dir, tt.operand)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Footprint(%v, %q) error = %v, want %v", tt.dir, tt.operand, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("Footprint(%v, %q) = %d, want %d", tt.dir, tt.operand, got, tt.want)
		}
	}
}

func TestStartAddress(t *testing.T) {
	tests := map[string]uint32{
		"1000":  0x1000,
		"0":     0,
		"":      0,
		"FFFFF": 0xFFFFF,
		"a0":    0xA0,
	}
	for operand, want := range tests {
		got, err := StartAddress(operand)
		if err != nil {
			t.Errorf("StartAddress(%q) returned error: %v", operand, err)
			continue
		}
		if got != want {
			t.Errorf("StartAddress(%q) = %X, want %X", operand, got, want)
		}
	}
	if _, err := StartAddress("XYZ"); !errors.Is(err, ErrIllegalOperand) {
		t.Errorf("StartAddress(\"XYZ\") error = %v, want ErrIllegalOperand", err)
	}
}
