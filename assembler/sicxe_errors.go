// sicxe_errors.go - Assembly error kinds

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

SIC/XE Assembler Errors
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"errors"
	"fmt"
)

// Error kinds. Every one of them is fatal: assembly stops at the first
// statement that produces one.
var (
	ErrMissingInput           = errors.New("missing command line input")
	ErrFileNotFound           = errors.New("source file not found")
	ErrBlankRecord            = errors.New("blank or control record")
	ErrIllegalSymbol          = errors.New("label is a reserved word")
	ErrIllegalOpcodeDirective = errors.New("illegal opcode or directive")
	ErrOutOfRangeByte         = errors.New("BYTE literal out of range")
	ErrIllegalOpcodeFormat    = errors.New("illegal extended format for opcode")
	ErrOutOfMemory            = errors.New("program exceeds addressable memory")
	ErrAddressOutOfRange      = errors.New("address out of range for PC or base relative addressing")
	ErrNotFound               = errors.New("opcode not found")
	ErrUndefinedSymbol        = errors.New("undefined symbol")
	ErrDuplicateSymbol        = errors.New("duplicate symbol")
	ErrIllegalOperand         = errors.New("illegal operand")
	ErrIllegalRegister        = errors.New("illegal register")
	ErrMisplacedStart         = errors.New("START must be the first statement")
	ErrRecordFull             = errors.New("text record capacity exceeded")
	ErrMalformedRecord        = errors.New("malformed object record")
	ErrOutputIsSource         = errors.New("output file would overwrite the source")
	ErrDuplicateOutput        = errors.New("two sources share an output file")
)

// StatementError ties an error kind to the source line that raised it.
type StatementError struct {
	Pass  int
	Line  int
	Token string
	Err   error
}

func (e *StatementError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("pass %d, line %d: %v", e.Pass, e.Line, e.Err)
	}
	return fmt.Sprintf("pass %d, line %d: %v: %s", e.Pass, e.Line, e.Err, e.Token)
}

func (e *StatementError) Unwrap() error {
	return e.Err
}

// tokenError attaches the offending token to an error kind without a line
// number. The pass drivers lift it into a StatementError.
type tokenError struct {
	token string
	err   error
}

func (e *tokenError) Error() string {
	return fmt.Sprintf("%v: %s", e.err, e.token)
}

func (e *tokenError) Unwrap() error {
	return e.err
}

func errToken(err error, token string) error {
	return &tokenError{token: token, err: err}
}

// atLine wraps err with its pass and line. An already positioned error is
// returned unchanged.
func atLine(pass, line int, err error) error {
	var se *StatementError
	if errors.As(err, &se) {
		return err
	}
	var te *tokenError
	if errors.As(err, &te) {
		return &StatementError{Pass: pass, Line: line, Token: te.token, Err: te.err}
	}
	return &StatementError{Pass: pass, Line: line, Err: err}
}
