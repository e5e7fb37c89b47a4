// sicxe_assemble.go - Assembler driver

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

SIC/XE Two-Pass Assembler
(c) 2024 - 2026 Zayn Otley
https://github.com/IntuitionAmiga/IntuitionEngine
License: GPLv3 or later
*/

package assembler

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang/glog"
	"github.com/k0kubun/pp/v3"
)

// Output file extensions.
const (
	ListingExt = ".lst"
	ObjectExt  = ".obj"
)

// dumper renders debug structures into log lines, without color codes.
var dumper = func() *pp.PrettyPrinter {
	p := pp.New()
	p.SetColoringEnabled(false)
	return p
}()

// Options configures an Assembler.
type Options struct {
	// ModificationRecords emits an M record for every Format4 instruction
	// whose address field holds a symbol address.
	ModificationRecords bool
	// OutputDir, when set, receives the listing and object files instead
	// of the source file's directory.
	OutputDir string
}

// Assembler is a two-pass SIC/XE assembler.
type Assembler struct {
	opts Options
}

// NewAssembler creates an assembler with the given options.
func NewAssembler(opts Options) *Assembler {
	return &Assembler{opts: opts}
}

// Assemble runs both passes over src, writing the listing to lst and the
// object records to obj.
func (a *Assembler) Assemble(ctx context.Context, src []byte, lst, obj io.Writer) (*Program, error) {
	prog, err := a.Pass1(ctx, bytes.NewReader(src))
	if err != nil {
		return nil, err
	}
	if err := a.Pass2(ctx, bytes.NewReader(src), prog, lst, obj); err != nil {
		return nil, err
	}
	return prog, nil
}

// Result describes one assembled source file.
type Result struct {
	Source      string
	ListingPath string
	ObjectPath  string
	Program     *Program
}

// OutputPaths derives the listing and object file names for source by
// replacing its extension. dir, when not empty, replaces its directory.
func OutputPaths(source, dir string) (lst, obj string) {
	stem := strings.TrimSuffix(source, filepath.Ext(source))
	if dir != "" {
		stem = filepath.Join(dir, filepath.Base(stem))
	}
	return stem + ListingExt, stem + ObjectExt
}

// samePath reports whether two paths name the same file, comparing their
// cleaned absolute forms.
func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}

// CheckOutputs fails with ErrDuplicateOutput when two of sources would
// write the same listing or object file under opts.
func CheckOutputs(sources []string, opts Options) error {
	seen := make(map[string]string)
	for _, src := range sources {
		lst, obj := OutputPaths(src, opts.OutputDir)
		for _, out := range []string{lst, obj} {
			key, err := filepath.Abs(out)
			if err != nil {
				key = filepath.Clean(out)
			}
			if prev, ok := seen[key]; ok {
				return fmt.Errorf("%w: %s and %s both write %s", ErrDuplicateOutput, prev, src, out)
			}
			seen[key] = src
		}
	}
	return nil
}

func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}
	return f, err
}

// AssembleFile assembles the source file at path. The file is read once
// per pass; the listing and object files are only created once Pass 1 has
// succeeded and are removed again if Pass 2 fails.
func (a *Assembler) AssembleFile(ctx context.Context, path string) (*Result, error) {
	if path == "" {
		return nil, ErrMissingInput
	}

	lstPath, objPath := OutputPaths(path, a.opts.OutputDir)
	for _, out := range []string{lstPath, objPath} {
		if samePath(out, path) {
			return nil, fmt.Errorf("%w: %s", ErrOutputIsSource, path)
		}
	}

	src, err := openSource(path)
	if err != nil {
		return nil, err
	}
	prog, err := a.Pass1(ctx, src)
	src.Close()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	res := &Result{Source: path, ListingPath: lstPath, ObjectPath: objPath, Program: prog}
	if err := a.writeOutputs(ctx, res); err != nil {
		os.Remove(res.ListingPath)
		os.Remove(res.ObjectPath)
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	glog.V(1).Infof("%s: wrote %s and %s", path, res.ListingPath, res.ObjectPath)
	return res, nil
}

func (a *Assembler) writeOutputs(ctx context.Context, res *Result) error {
	src, err := openSource(res.Source)
	if err != nil {
		return err
	}
	defer src.Close()

	lstFile, err := os.Create(res.ListingPath)
	if err != nil {
		return err
	}
	defer lstFile.Close()
	objFile, err := os.Create(res.ObjectPath)
	if err != nil {
		return err
	}
	defer objFile.Close()

	lst := bufio.NewWriter(lstFile)
	obj := bufio.NewWriter(objFile)
	if err := a.Pass2(ctx, src, res.Program, lst, obj); err != nil {
		return err
	}
	if err := lst.Flush(); err != nil {
		return err
	}
	if err := obj.Flush(); err != nil {
		return err
	}
	if err := lstFile.Close(); err != nil {
		return err
	}
	return objFile.Close()
}
