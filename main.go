package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jcorbin/minforth/internal/logio"
)

func main() {
	ctx := context.Background()
	log := logio.NewLogger(os.Stderr)

	var (
		expr        string
		timeout     time.Duration
		trace       bool
		each        bool
		interactive bool
		maxDepth    int
	)
	flag.StringVar(&expr, "e", "", "evaluate an expression and print its result")
	flag.DurationVar(&timeout, "timeout", 0, "specify a time limit")
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&each, "each", false, "evaluate each file argument independently and concurrently")
	flag.BoolVar(&interactive, "i", false, "start an interactive session after loading any file arguments")
	flag.IntVar(&maxDepth, "max-depth", defaultMaxDepth, "limit word call nesting; 0 for no limit")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "Usage: %v [options] [file ...]\n", os.Args[0])
		fmt.Fprintf(out, "       %v -e expr\n", os.Args[0])
		fmt.Fprintf(out, "       %v -each file ...\n", os.Args[0])
		fmt.Fprintf(out, "\nFiles run in order through one session; with no files, or with -i,\n")
		fmt.Fprintf(out, "an interactive session starts after any files have run.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if err := checkFlags(expr, each, interactive, flag.Args()); err != nil {
		fmt.Fprintf(flag.CommandLine.Output(), "%v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	var opts = []Option{
		WithMaxDepth(maxDepth),
	}
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}

	if timeout != 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	var err error
	switch args := flag.Args(); {
	case expr != "":
		err = evalExpr(os.Stdout, expr, opts...)
	case interactive || len(args) == 0:
		err = runREPL(ctx, os.Stdout, log, args, opts...)
	case each:
		err = runEach(ctx, os.Stdout, args, opts...)
	default:
		err = runFiles(ctx, os.Stdout, args, opts...)
	}
	log.ErrorIf(err)
	os.Exit(log.ExitCode())
}

// checkFlags rejects combinations of modes that cannot all be honored.
func checkFlags(expr string, each, interactive bool, args []string) error {
	switch {
	case expr != "" && len(args) > 0:
		return errors.New("-e does not take file arguments")
	case expr != "" && each:
		return errors.New("-e may not be combined with -each")
	case expr != "" && interactive:
		return errors.New("-e may not be combined with -i")
	case each && interactive:
		return errors.New("-each may not be combined with -i")
	case each && len(args) == 0:
		return errors.New("-each needs file arguments")
	}
	return nil
}

// evalExpr evaluates a single inline expression, printing any result.
func evalExpr(out io.Writer, expr string, opts ...Option) error {
	s := New(Options(opts...), WithOutput(out))
	err := s.printLine(expr)
	if err == nil && s.Compiling() {
		err = ErrUnexpectedEOF
	}
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

// runFiles evaluates the named files in order through a single session.
func runFiles(ctx context.Context, out io.Writer, paths []string, opts ...Option) (rerr error) {
	s := New(Options(opts...), WithOutput(out))
	defer func() {
		if cerr := s.Close(); rerr == nil {
			rerr = cerr
		}
	}()
	if err := openInputs(s, paths); err != nil {
		return err
	}
	return s.Run(ctx)
}

func openInputs(s *Session, paths []string) error {
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		WithInput(f).apply(s)
	}
	return nil
}
