package main

import (
	"io"
	"io/ioutil"

	"github.com/jcorbin/minforth/internal/flushio"
)

// Option configures a Session.
type Option interface{ apply(s *Session) }

// EvalOption configures an Evaluator, either directly through NewEvaluator,
// or as part of a Session.
type EvalOption interface {
	Option
	applyEval(ev *Evaluator)
}

// Options combines any number of options into one, applied in order.
func Options(opts ...Option) Option {
	var res options
	for _, opt := range opts {
		switch impl := opt.(type) {
		case nil:
		case options:
			res = append(res, impl...)
		default:
			res = append(res, impl)
		}
	}
	if len(res) == 1 {
		return res[0]
	}
	return res
}

type options []Option

func (opts options) apply(s *Session) {
	for _, opt := range opts {
		opt.apply(s)
	}
}

var defaults = []Option{
	withOutput(ioutil.Discard),
	withMaxDepth(defaultMaxDepth),
}

// WithInput queues a source of lines; sources are read in the order given,
// all feeding the same evaluator.
func WithInput(r io.Reader) Option { return inputOption{r} }

// WithOutput sets where results are written, replacing any prior output.
func WithOutput(w io.Writer) Option { return withOutput(w) }

// WithTee additionally copies results into w.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging through the given printf-style function.
func WithLogf(logfn func(mess string, args ...interface{})) EvalOption { return withLogfn(logfn) }

// WithMaxDepth limits how deeply word calls may nest; 0 means no limit.
func WithMaxDepth(depth int) EvalOption { return withMaxDepth(depth) }

type inputOption struct{ io.Reader }
type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type withLogfn func(mess string, args ...interface{})
type withMaxDepth int

func withOutput(w io.Writer) outputOption { return outputOption{w} }

func (i inputOption) apply(s *Session) {
	s.Queue = append(s.Queue, i.Reader)
}

func (o outputOption) apply(s *Session) {
	if s.out != nil {
		s.out.Flush()
	}
	s.out = flushio.NewWriteFlusher(o.Writer)
}

func (o teeOption) apply(s *Session) {
	s.out = flushio.Tee(s.out, flushio.NewWriteFlusher(o.Writer))
}

func (logfn withLogfn) apply(s *Session)        { logfn.applyEval(&s.Evaluator) }
func (logfn withLogfn) applyEval(ev *Evaluator) { ev.logfn = logfn }

func (depth withMaxDepth) apply(s *Session)        { depth.applyEval(&s.Evaluator) }
func (depth withMaxDepth) applyEval(ev *Evaluator) { ev.maxDepth = int(depth) }
