package main

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/intuitionamiga/sicasm/assembler"
)

// assembleAll assembles every source independently. Results keep the
// order of paths; the first failure cancels the remaining assemblies.
// Sources that would share an output file are refused up front.
func assembleAll(ctx context.Context, paths []string, opts assembler.Options) ([]*assembler.Result, error) {
	if err := assembler.CheckOutputs(paths, opts); err != nil {
		return nil, err
	}
	results := make([]*assembler.Result, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, path := range paths {
		g.Go(func() error {
			res, err := assembler.NewAssembler(opts).AssembleFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
