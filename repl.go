package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/jcorbin/minforth/internal/logio"
	"github.com/jcorbin/minforth/internal/panicerr"
	"github.com/peterh/liner"
)

const (
	historyFile = ".minforth_history"
	promptMain  = "> "
	promptCont  = "... "
)

// lineReader is the part of liner.State that the REPL loop uses.
type lineReader interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// runREPL loads any named files, and then reads lines interactively, all
// through one session. Unlike file evaluation, errors are logged and the
// session carries on in whatever state the error left it.
func runREPL(ctx context.Context, out io.Writer, log *logio.Logger, paths []string, opts ...Option) (rerr error) {
	s := New(Options(opts...), WithOutput(out))
	defer func() {
		if cerr := s.Close(); rerr == nil {
			rerr = cerr
		}
	}()

	if len(paths) > 0 {
		if err := openInputs(s, paths); err != nil {
			return err
		}
		if err := s.Run(ctx); err != nil {
			return err
		}
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, historyFile)
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	return s.repl(ctx, ln, log.Leveledf("ERROR"))
}

func (s *Session) repl(ctx context.Context, ln lineReader, errorf func(mess string, args ...interface{})) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		prompt := promptMain
		if s.Compiling() {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		} else if errors.Is(err, io.EOF) {
			_, err = fmt.Fprintln(s.out)
			if ferr := s.out.Flush(); err == nil {
				err = ferr
			}
			return err
		} else if err != nil {
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		ln.AppendHistory(line)

		if strings.HasPrefix(line, `\`) {
			if quit := s.replCommand(line, errorf); quit {
				return s.out.Flush()
			}
		} else if err := s.replLine(line); panicerr.IsPanic(err) {
			errorf("%+v", err)
		} else if err != nil {
			errorf("%v", err)
		}
		if err := s.out.Flush(); err != nil {
			return err
		}
	}
}

// replLine evaluates one line, recovering any panic so that the session
// may carry on.
func (s *Session) replLine(line string) error {
	return panicerr.Recover("eval", func() error {
		return s.printLine(line)
	})
}

// replCommand handles backslash commands, which are never valid source.
func (s *Session) replCommand(line string, errorf func(mess string, args ...interface{})) (quit bool) {
	switch cmd := strings.Fields(line)[0]; cmd {
	case `\quit`:
		return true
	case `\dump`:
		evalDumper{ev: &s.Evaluator, out: s.out}.dump()
	case `\words`:
		fmt.Fprintln(s.out, strings.Join(s.Words(), " "))
	default:
		errorf(`unknown command %q; try \dump \words or \quit`, cmd)
	}
	return false
}
