// sicxe_pass2.go - Pass 2: code generation

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

SIC/XE Assembler Pass 2
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"context"
	"io"
	"strconv"

	"github.com/golang/glog"
)

// generator is the Pass 2 state machine. It re-derives every address from
// the source instead of reusing Pass 1's location counter.
type generator struct {
	prog  *Program
	obj   *ObjectWriter
	lst   *ListingWriter
	opts  Options
	begun bool
	ended bool
}

// begin writes the header record. A program without START is headed at
// address zero.
func (g *generator) begin(name string, start uint32) error {
	g.begun = true
	return g.obj.Header(name, start, g.prog.Size())
}

// finish closes the object file: last text record, modification records
// and the end record pointing at the program start.
func (g *generator) finish(st AddressState) error {
	g.ended = true
	if !g.begun {
		if err := g.begin(g.prog.Name, st.Start); err != nil {
			return err
		}
	}
	if err := g.obj.Flush(st.Current); err != nil {
		return err
	}
	return g.obj.End(st.Start)
}

// emit appends one encoded value to the object code, flushing first when
// the text record cannot hold it, and lists it.
func (g *generator) emit(st AddressState, stmt Statement, width int, value uint64) error {
	if !g.obj.Fits(width) {
		if err := g.obj.Flush(st.Current); err != nil {
			return err
		}
	}
	if err := g.obj.Add(width, value); err != nil {
		return errToken(err, stmt.Operand)
	}
	return g.lst.Code(st.Current, stmt, width, value)
}

func (g *generator) step(st AddressState, line string) (AddressState, error) {
	switch ClassifyLine(line) {
	case LineBlank:
		return st, ErrBlankRecord
	case LineComment:
		return st, nil
	}
	stmt := ParseStatement(line)

	dir := ClassifyDirective(stmt.Operation)
	if dir == DirStart {
		start, err := StartAddress(stmt.Operand)
		if err != nil {
			return st, err
		}
		st.Start, st.Current = start, start
		if err := g.begin(stmt.Label, start); err != nil {
			return st, err
		}
		return st, g.lst.Line(st.Current, stmt)
	}
	if !g.begun {
		if err := g.begin(g.prog.Name, st.Start); err != nil {
			return st, err
		}
	}

	switch dir {
	case DirBase:
		base, err := baseAddress(stmt.Operand, g.prog.Symbols)
		if err != nil {
			return st, err
		}
		st.Base = base
		return st, g.lst.Line(st.Current, stmt)

	case DirEnd:
		if err := g.lst.Line(st.Current, stmt); err != nil {
			return st, err
		}
		return st, g.finish(st)

	case DirResb, DirResw:
		n, err := Footprint(dir, stmt.Operand)
		if err != nil {
			return st, err
		}
		if err := checkMemory(st.Current, n); err != nil {
			return st, err
		}
		if err := g.lst.Line(st.Current, stmt); err != nil {
			return st, err
		}
		st.Increment = n
		st.Current += n
		return st, g.obj.Flush(st.Current)

	case DirByte:
		lit, err := ParseByteLiteral(stmt.Operand)
		if err != nil {
			return st, err
		}
		if err := g.emit(st, stmt, int(lit.Width), lit.Value); err != nil {
			return st, err
		}
		st.Increment = lit.Width
		st.Current += lit.Width
		return st, nil
	}

	if !IsOpcode(stmt.Operation) {
		return st, errToken(ErrIllegalOpcodeDirective, stmt.Operation)
	}
	format, err := LookupFormat(stmt.Operation)
	if err != nil {
		return st, err
	}
	enc, err := Encode(stmt, format, st, g.prog.Symbols)
	if err != nil {
		return st, err
	}
	if err := g.emit(st, stmt, int(format.Len()), enc.Word); err != nil {
		return st, err
	}
	if enc.Relocatable && g.opts.ModificationRecords {
		g.obj.Modification(st.Current + 1)
	}
	glog.V(2).Infof("pass 2: %06X %-8s %-8s %-10s %s %0*X", st.Current, stmt.Label, stmt.Operation, stmt.Operand, enc.Flags, int(format.Len())*2, enc.Word)
	st.Increment = format.Len()
	st.Current += st.Increment
	return st, nil
}

// baseAddress resolves the operand of a BASE directive, either a symbol or
// a decimal address.
func baseAddress(operand string, symbols *SymbolTable) (uint32, error) {
	if operand != "" && isNumeric(operand) {
		v, err := strconv.ParseUint(operand, 10, 32)
		if err != nil {
			return 0, errToken(ErrIllegalOperand, operand)
		}
		return uint32(v), nil
	}
	return symbols.Address(operand)
}

// Pass2 re-reads the source, writing the listing to lst and the object
// records to obj. prog must come from Pass1 over the same source.
func (a *Assembler) Pass2(ctx context.Context, r io.Reader, prog *Program, lst, obj io.Writer) error {
	glog.V(1).Infof("beginning pass 2")
	g := &generator{
		prog: prog,
		obj:  NewObjectWriter(obj),
		lst:  NewListingWriter(lst),
		opts: a.opts,
	}
	var st AddressState

	err := scanSource(ctx, r, func(num int, line string) (bool, error) {
		next, err := g.step(st, line)
		if err != nil {
			return false, atLine(2, num, err)
		}
		st = next
		return g.ended, nil
	})
	if err != nil {
		return err
	}
	if !g.ended {
		if err := g.finish(st); err != nil {
			return err
		}
	}
	glog.V(1).Infof("pass 2 complete: %d text records, %d listing lines", g.obj.Flushes(), g.lst.Lines())
	return nil
}
