package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"
	"github.com/spf13/cobra"

	"github.com/intuitionamiga/sicasm/assembler"
)

type rootFlags struct {
	quiet     bool
	modRecord bool
	outDir    string
}

func newRootCmd() *cobra.Command {
	var f rootFlags
	cmd := &cobra.Command{
		Use:   "sicasm [flags] source.asm...",
		Short: "Two-pass SIC/XE assembler",
		Long: `sicasm assembles SIC/XE source files into object programs.

For every source file a listing (.lst) and an object file (.obj) are
written next to it, or into --outdir. Several files are assembled
independently and in parallel; the first error stops the run.

Examples:
  sicasm prog.asm
  sicasm --modrecords --outdir build prog.asm lib.asm
  sicasm dis prog.obj`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return assembler.ErrMissingInput
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := assembler.Options{
				ModificationRecords: f.modRecord,
				OutputDir:           f.outDir,
			}
			results, err := assembleAll(cmd.Context(), args, opts)
			if err != nil {
				return err
			}
			if f.quiet {
				return nil
			}
			out := cmd.OutOrStdout()
			layout := detectLayout(out)
			for _, res := range results {
				printReport(out, res, layout)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&f.quiet, "quiet", "q", false, "do not print the symbol table and address summary")
	cmd.Flags().BoolVar(&f.modRecord, "modrecords", false, "emit M records for extended instructions with symbolic addresses")
	cmd.Flags().StringVarP(&f.outDir, "outdir", "o", "", "directory for the .lst and .obj files")
	cmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)

	cmd.AddCommand(newObjdumpCmd(), newDisCmd(), newOpcodesCmd())
	return cmd
}

func main() {
	// glog reads its settings from the standard flag set; cobra parses
	// them, so mark the set parsed to keep glog from complaining.
	flag.Set("logtostderr", "true")
	flag.CommandLine.Parse(nil)
	defer glog.Flush()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		glog.Flush()
		fmt.Fprintf(os.Stderr, "sicasm: %v\n", err)
		os.Exit(1)
	}
}
