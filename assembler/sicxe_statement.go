// sicxe_statement.go - Fixed column source statements

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

SIC/XE Source Statements
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import "strings"

// Source line layout. Fields are positional: the label occupies the first
// column slot, the operation the second and the operand the rest.
const (
	MaxLineLength   = 59
	OperationColumn = 8
	OperandColumn   = 16
	CommentMarker   = '#'
)

// Statement is one source line split into its three fields.
type Statement struct {
	Label     string
	Operation string
	Operand   string
}

// LineKind classifies a raw source line before it is split.
type LineKind int

const (
	LineStatement LineKind = iota
	LineComment
	LineBlank
)

// ClassifyLine inspects the first character of a raw line. Anything below
// a space (including an empty line) is a blank record.
func ClassifyLine(line string) LineKind {
	if line == "" || line[0] < ' ' {
		return LineBlank
	}
	if line[0] == CommentMarker {
		return LineComment
	}
	return LineStatement
}

// ParseStatement splits a raw line at the fixed column boundaries. Lines
// longer than MaxLineLength are truncated first.
func ParseStatement(line string) Statement {
	line = strings.TrimRight(line, "\r\n")
	if len(line) > MaxLineLength {
		line = line[:MaxLineLength]
	}
	return Statement{
		Label:     field(line, 0, OperationColumn),
		Operation: field(line, OperationColumn, OperandColumn),
		Operand:   field(line, OperandColumn, len(line)),
	}
}

func field(line string, from, to int) string {
	if from >= len(line) {
		return ""
	}
	if to > len(line) {
		to = len(line)
	}
	return strings.TrimRight(line[from:to], " \t\r")
}
