// sicxe_pass1.go - Pass 1: address allocation

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

SIC/XE Assembler Pass 1
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/golang/glog"
)

// MemoryLimit is the first address outside SIC/XE memory.
const MemoryLimit = 0x100000

// checkMemory reports ErrOutOfMemory when n bytes at current would run
// past the end of memory.
func checkMemory(current, n uint32) error {
	if end := uint64(current) + uint64(n); end > MemoryLimit {
		return errToken(ErrOutOfMemory, fmt.Sprintf("0x%X", end))
	}
	return nil
}

// Program is what Pass 1 learns about a source file.
type Program struct {
	Name    string
	Start   uint32
	End     uint32
	Symbols *SymbolTable
}

// Size returns the program length in bytes.
func (p *Program) Size() uint32 {
	return p.End - p.Start
}

// scanSource feeds every physical line of r to fn with its 1-based line
// number until fn asks to stop, fails, or ctx is cancelled.
func scanSource(ctx context.Context, r io.Reader, fn func(num int, line string) (bool, error)) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	num := 0
	for sc.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		num++
		stop, err := fn(num, sc.Text())
		if err != nil {
			return err
		}
		if stop {
			return nil
		}
	}
	return sc.Err()
}

// allocator is the Pass 1 state machine.
type allocator struct {
	symbols *SymbolTable
	name    string
	// operative is set once a non-comment statement has been seen.
	operative bool
}

// step processes one source line and returns the advanced address state.
// done reports that END was reached.
func (al *allocator) step(st AddressState, line string) (next AddressState, done bool, err error) {
	if st.Current >= MemoryLimit {
		return st, false, errToken(ErrOutOfMemory, fmt.Sprintf("0x%X", st.Current))
	}

	switch ClassifyLine(line) {
	case LineBlank:
		return st, false, ErrBlankRecord
	case LineComment:
		return st, false, nil
	}

	stmt := ParseStatement(line)
	if IsDirective(stmt.Label) || IsOpcode(stmt.Label) {
		return st, false, errToken(ErrIllegalSymbol, stmt.Label)
	}

	first := !al.operative
	al.operative = true

	if dir := ClassifyDirective(stmt.Operation); dir != DirNone {
		if dir == DirStart {
			if !first {
				return st, false, errToken(ErrMisplacedStart, stmt.Operation)
			}
			start, err := StartAddress(stmt.Operand)
			if err != nil {
				return st, false, err
			}
			al.name = stmt.Label
			st.Start, st.Current = start, start
			return st, false, nil
		}
		st.Increment, err = Footprint(dir, stmt.Operand)
		if err != nil {
			return st, false, err
		}
		done = dir == DirEnd
	} else if IsOpcode(stmt.Operation) {
		format, err := LookupFormat(stmt.Operation)
		if err != nil {
			return st, false, err
		}
		st.Increment = format.Len()
	} else {
		return st, false, errToken(ErrIllegalOpcodeDirective, stmt.Operation)
	}
	if err := checkMemory(st.Current, st.Increment); err != nil {
		return st, false, err
	}

	if stmt.Label != "" {
		if err := al.symbols.Insert(stmt.Label, st.Current); err != nil {
			return st, false, err
		}
	}
	glog.V(2).Infof("pass 1: %06X %-8s %-8s %s (+%d)", st.Current, stmt.Label, stmt.Operation, stmt.Operand, st.Increment)
	st.Current += st.Increment
	return st, done, nil
}

// Pass1 walks the source, assigns addresses to every label and computes
// the program bounds.
func (a *Assembler) Pass1(ctx context.Context, r io.Reader) (*Program, error) {
	glog.V(1).Infof("beginning pass 1")
	al := &allocator{symbols: NewSymbolTable()}
	var st AddressState

	err := scanSource(ctx, r, func(num int, line string) (bool, error) {
		next, done, err := al.step(st, line)
		if err != nil {
			return false, atLine(1, num, err)
		}
		st = next
		return done, nil
	})
	if err != nil {
		return nil, err
	}
	if st.Current > MemoryLimit {
		return nil, fmt.Errorf("pass 1: %w: 0x%X", ErrOutOfMemory, st.Current)
	}

	prog := &Program{
		Name:    al.name,
		Start:   st.Start,
		End:     st.Current,
		Symbols: al.symbols,
	}
	if glog.V(3) {
		glog.Infof("symbol table:\n%s", dumper.Sprint(prog.Symbols.Symbols()))
	}
	glog.V(1).Infof("pass 1 complete: start %06X end %06X size %d", prog.Start, prog.End, prog.Size())
	return prog, nil
}
