package main

import (
	"bytes"
	"context"
	"io"

	"golang.org/x/sync/errgroup"
)

// runEach evaluates every named file in its own session, concurrently.
// Outputs are written in argument order once all sessions are done, up to
// and including the first session that failed. The first failure cancels any
// sessions still running, and is the error returned.
func runEach(ctx context.Context, out io.Writer, paths []string, opts ...Option) error {
	outs := make([]bytes.Buffer, len(paths))
	errs := make([]error, len(paths))

	eg, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		i, path := i, path
		eg.Go(func() error {
			errs[i] = runFiles(ctx, &outs[i], []string{path}, opts...)
			return errs[i]
		})
	}
	err := eg.Wait()

	for i := range outs {
		if _, werr := outs[i].WriteTo(out); err == nil {
			err = werr
		}
		if errs[i] != nil {
			break
		}
	}
	return err
}
