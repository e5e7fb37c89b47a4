package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/intuitionamiga/sicasm/assembler"
)

// symbolCellWidth is the width of one "NAME     0x1000" cell and its separator.
const symbolCellWidth = 21

// layout controls how the symbol table is laid out on the console.
type layout struct {
	columns int
}

// detectLayout uses as many symbol columns as fit in the terminal width.
// Output that is not a terminal gets one symbol per line.
func detectLayout(w io.Writer) layout {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return layout{columns: 1}
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width < symbolCellWidth {
		return layout{columns: 1}
	}
	return layout{columns: width / symbolCellWidth}
}

// printReport writes the symbol table and the address summary of one
// assembled file.
func printReport(w io.Writer, res *assembler.Result, l layout) {
	prog := res.Program
	fmt.Fprintf(w, "%s\n\nSymbol Table:\n", res.Source)

	syms := prog.Symbols.Symbols()
	cols := l.columns
	if cols < 1 {
		cols = 1
	}
	for i := 0; i < len(syms); i += cols {
		var row []string
		for _, s := range syms[i:min(i+cols, len(syms))] {
			row = append(row, fmt.Sprintf("%-8s 0x%-9X", s.Name, s.Address))
		}
		fmt.Fprintln(w, strings.TrimRight(strings.Join(row, " "), " "))
	}

	fmt.Fprintf(w, "\nStarting Address: 0x%X\nEnding Address: 0x%X\nProgram Size (bytes): %d\n",
		prog.Start, prog.End, prog.Size())
	fmt.Fprintf(w, "Listing: %s\nObject:  %s\n\n", res.ListingPath, res.ObjectPath)
}
