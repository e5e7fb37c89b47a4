package main

import (
	"fmt"
	"io"
	"os"

	"github.com/k0kubun/pp/v3"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/intuitionamiga/sicasm/assembler"
)

func readObjectFile(path string) (*assembler.ObjectFile, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	obj, err := assembler.ReadObject(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return obj, nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func newObjdumpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "objdump file.obj",
		Short: "Pretty-print the records of an object file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObjectFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printer := pp.New()
			printer.SetOutput(out)
			printer.SetColoringEnabled(isTerminal(out))
			printer.Println(obj)
			return nil
		},
	}
}

func newDisCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dis file.obj",
		Short: "Disassemble the text records of an object file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObjectFile(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "; %s start $%06X size $%06X entry $%06X\n", obj.Name, obj.Start, obj.Size, obj.Entry)
			for _, line := range assembler.Disassemble(obj) {
				fmt.Fprintln(out, line)
			}
			return nil
		},
	}
}

func newOpcodesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "opcodes",
		Short: "List the instruction catalog",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for _, op := range assembler.Opcodes() {
				fmt.Fprintf(out, "%-8s format %d  %02X\n", op.Mnemonic, op.Format, op.Value)
			}
		},
	}
}
