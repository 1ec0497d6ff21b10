package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jcorbin/minforth/internal/fileinput"
	"github.com/jcorbin/minforth/internal/flushio"
	"github.com/jcorbin/minforth/internal/panicerr"
)

// Session runs lines of source through one Evaluator, writing one line of
// output for each source line that produces a result. Since the evaluator is
// shared, words defined on one line (or in one input) may be used by any
// later line.
type Session struct {
	Evaluator
	fileinput.Input
	out flushio.WriteFlusher
}

// New creates a new session; see the With* functions for options.
func New(opts ...Option) *Session {
	var s Session
	Options(defaults...).apply(&s)
	Options(opts...).apply(&s)
	return &s
}

// Run evaluates every line of input, stopping at the first error, which is
// returned as a LocationError. Input that ends while a definition is still
// open fails with ErrUnexpectedEOF. Context cancellation is checked between
// lines.
func (s *Session) Run(ctx context.Context) error {
	err := panicerr.Recover("Session", func() error {
		return s.run(ctx)
	})
	if ferr := s.out.Flush(); err == nil {
		err = ferr
	}
	return err
}

func (s *Session) run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return err
		}

		s.logf("#", "%v", line)
		if err := s.printLine(line.Text); err != nil {
			return LocationError{Location: line.Location, Text: line.Text, Err: err}
		}
	}

	if s.Compiling() {
		return LocationError{Location: s.Last.Location, Text: s.Last.Text, Err: ErrUnexpectedEOF}
	}
	return nil
}

// EvalLine tokenizes and evaluates one line of source text.
func (s *Session) EvalLine(line string) (Token, bool, error) {
	toks, err := Tokenize(strings.TrimSpace(line))
	if err != nil {
		return Token{}, false, err
	}
	return s.EvalAll(toks)
}

func (s *Session) printLine(line string) error {
	res, ok, err := s.EvalLine(line)
	if err == nil && ok {
		_, err = fmt.Fprintln(s.out, res)
	}
	return err
}

// Close closes any remaining input.
func (s *Session) Close() error {
	return s.Input.Close()
}
