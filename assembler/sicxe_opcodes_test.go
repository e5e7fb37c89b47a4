// sicxe_opcodes_test.go - Instruction catalog tests

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

SIC/XE Instruction Catalog Tests
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"errors"
	"testing"
)

func TestOpcodeTableSorted(t *testing.T) {
	for i := 1; i < len(opcodeTable); i++ {
		if opcodeTable[i-1].Mnemonic >= opcodeTable[i].Mnemonic {
			t.Fatalf("opcode table out of order at %d: %q >= %q",
				i, opcodeTable[i-1].Mnemonic, opcodeTable[i].Mnemonic)
		}
	}
}

func TestLookupFormat(t *testing.T) {
	tests := []struct {
		mnemonic string
		want     Format
		wantErr  error
	}{
		{"ADD", Format3, nil},
		{"WD", Format3, nil},
		{"FIX", Format1, nil},
		{"CLEAR", Format2, nil},
		{"+LDA", Format4, nil},
		{"+JSUB", Format4, nil},
		{"+CLEAR", 0, ErrIllegalOpcodeFormat},
		{"+FIX", 0, ErrIllegalOpcodeFormat},
		{"LOAD", 0, ErrNotFound},
		{"", 0, ErrNotFound},
		{"+", 0, ErrNotFound},
		{"lda", 0, ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.mnemonic, func(t *testing.T) {
			got, err := LookupFormat(tt.mnemonic)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("LookupFormat(%q) error = %v, want %v", tt.mnemonic, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("LookupFormat(%q) = %d, want %d", tt.mnemonic, got, tt.want)
			}
		})
	}
}

func TestLookupValue(t *testing.T) {
	tests := map[string]byte{
		"LDA":    0x00,
		"+LDA":   0x00,
		"RSUB":   0x4C,
		"TIXR":   0xB8,
		"SHIFTL": 0xA4,
		"+JSUB":  0x48,
	}
	for mnemonic, want := range tests {
		got, err := LookupValue(mnemonic)
		if err != nil {
			t.Errorf("LookupValue(%q) returned error: %v", mnemonic, err)
			continue
		}
		if got != want {
			t.Errorf("LookupValue(%q) = %02X, want %02X", mnemonic, got, want)
		}
	}
	if _, err := LookupValue("NOPE"); !errors.Is(err, ErrNotFound) {
		t.Errorf("LookupValue(\"NOPE\") error = %v, want ErrNotFound", err)
	}
}

func TestEveryCatalogEntryResolves(t *testing.T) {
	for _, op := range Opcodes() {
		f, err := LookupFormat(op.Mnemonic)
		if err != nil || f != op.Format {
			t.Errorf("LookupFormat(%q) = %d, %v; want %d", op.Mnemonic, f, err, op.Format)
		}
		back, ok := LookupOpcode(op.Value)
		if !ok || back.Mnemonic != op.Mnemonic {
			t.Errorf("LookupOpcode(%02X) = %q, want %q", op.Value, back.Mnemonic, op.Mnemonic)
		}
	}
}

func TestIsOpcode(t *testing.T) {
	for _, s := range []string{"LDA", "+LDA", "+CLEAR", "TIO"} {
		if !IsOpcode(s) {
			t.Errorf("IsOpcode(%q) = false, want true", s)
		}
	}
	for _, s := range []string{"", "START", "FIRST", "++LDA"} {
		if IsOpcode(s) {
			t.Errorf("IsOpcode(%q) = true, want false", s)
		}
	}
}

func TestOpcodesReturnsCopy(t *testing.T) {
	ops := Opcodes()
	ops[0].Mnemonic = "ZZZ"
	if opcodeTable[0].Mnemonic != "ADD" {
		t.Fatalf("Opcodes() exposed the catalog: first entry is now %q", opcodeTable[0].Mnemonic)
	}
}
