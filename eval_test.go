package main

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jcorbin/minforth/internal/logio"
	"github.com/stretchr/testify/assert"
)

type evalTestCases []evalTestCase

func (evts evalTestCases) run(t *testing.T) {
	{
		var exclusive []evalTestCase
		for _, evt := range evts {
			if evt.exclusive {
				exclusive = append(exclusive, evt)
			}
		}
		if len(exclusive) > 0 {
			evts = exclusive
		}
	}
	for _, evt := range evts {
		t.Run(evt.name, evt.run)
	}
}

func evalTest(name string) (evt evalTestCase) {
	evt.name = name
	return evt
}

type evalTestCase struct {
	name    string
	opts    []EvalOption
	setup   []func(ev *Evaluator)
	ops     [][]Token
	expect  []func(t *testing.T, ev *Evaluator, res evalResult)
	wantErr error

	exclusive bool
}

type evalResult struct {
	tok Token
	ok  bool
}

func (evt evalTestCase) apply(wraps ...func(evalTestCase) evalTestCase) evalTestCase {
	for _, wrap := range wraps {
		evt = wrap(evt)
	}
	return evt
}

func (evt evalTestCase) exclusiveTest() evalTestCase {
	evt.exclusive = true
	return evt
}

func (evt evalTestCase) withOptions(opts ...EvalOption) evalTestCase {
	evt.opts = append(evt.opts, opts...)
	return evt
}

func (evt evalTestCase) withStack(values ...int) evalTestCase {
	evt.setup = append(evt.setup, func(ev *Evaluator) {
		for _, value := range values {
			ev.push(Number(value))
		}
	})
	return evt
}

func (evt evalTestCase) withStackTokens(toks ...Token) evalTestCase {
	evt.setup = append(evt.setup, func(ev *Evaluator) {
		ev.stack = append(ev.stack, toks...)
	})
	return evt
}

func (evt evalTestCase) withWord(name string, body ...Token) evalTestCase {
	evt.setup = append(evt.setup, func(ev *Evaluator) {
		ev.dict.define(name, body)
	})
	return evt
}

func (evt evalTestCase) withDefinition(toks ...Token) evalTestCase {
	evt.setup = append(evt.setup, func(ev *Evaluator) {
		ev.mode = Compile
		ev.definition = append(ev.definition, toks...)
	})
	return evt
}

// do adds one call to EvalAll.
func (evt evalTestCase) do(toks ...Token) evalTestCase {
	evt.ops = append(evt.ops, toks)
	return evt
}

// doLines adds one call to EvalAll per line of source.
func (evt evalTestCase) doLines(lines ...string) evalTestCase {
	for _, line := range lines {
		evt.ops = append(evt.ops, mustTokenize(line))
	}
	return evt
}

func (evt evalTestCase) expectError(err error) evalTestCase {
	evt.wantErr = err
	return evt
}

func (evt evalTestCase) expectResult(tok Token) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		if assert.True(t, res.ok, "expected a result") {
			assert.Equal(t, tok, res.tok, "expected result %#v", tok)
		}
	})
	return evt
}

func (evt evalTestCase) expectNoResult() evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		assert.False(t, res.ok, "expected no result, got %#v", res.tok)
	})
	return evt
}

func (evt evalTestCase) expectStack(values ...int) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		toks := make([]Token, len(values))
		for i, value := range values {
			toks[i] = Number(value)
		}
		assert.Equal(t, toks, append([]Token{}, ev.Stack()...), "expected stack values")
	})
	return evt
}

func (evt evalTestCase) expectStackTokens(toks ...Token) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		if toks == nil {
			toks = []Token{}
		}
		assert.Equal(t, toks, append([]Token{}, ev.stack...), "expected stack tokens")
	})
	return evt
}

func (evt evalTestCase) expectMode(mode Mode) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		assert.Equal(t, mode, ev.Mode(), "expected evaluator mode")
	})
	return evt
}

func (evt evalTestCase) expectDepth(depth int) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		assert.Equal(t, depth, ev.depth, "expected nesting depth")
	})
	return evt
}

func (evt evalTestCase) expectDefinition(toks ...Token) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		if toks == nil {
			toks = []Token{}
		}
		assert.Equal(t, toks, append([]Token{}, ev.definition...), "expected definition buffer")
	})
	return evt
}

func (evt evalTestCase) expectWord(name string, body ...Token) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		got, defined := ev.dict.lookup(name)
		if assert.True(t, defined, "expected word %q to be defined", name) {
			if body == nil {
				body = []Token{}
			}
			assert.Equal(t, body, append([]Token{}, got...), "expected word %q body", name)
		}
	})
	return evt
}

func (evt evalTestCase) expectNoWord(name string) evalTestCase {
	evt.expect = append(evt.expect, func(t *testing.T, ev *Evaluator, res evalResult) {
		_, defined := ev.dict.lookup(name)
		assert.False(t, defined, "expected word %q to be undefined", name)
	})
	return evt
}

func (evt evalTestCase) run(t *testing.T) {
	ev := evt.build(t)

	defer func() {
		if t.Failed() {
			evt.dumpToTest(t, ev)
		}
	}()

	var (
		res evalResult
		err error
	)
	for _, toks := range evt.ops {
		if res.tok, res.ok, err = ev.EvalAll(toks); err != nil {
			break
		}
	}

	if evt.wantErr != nil {
		assert.True(t, errors.Is(err, evt.wantErr), "expected error: %v\ngot: %+v", evt.wantErr, err)
	} else {
		assert.NoError(t, err, "unexpected eval error")
	}

	if !t.Failed() {
		for _, expect := range evt.expect {
			expect(t, ev, res)
		}
	}
}

func (evt evalTestCase) build(t *testing.T) *Evaluator {
	opts := append([]EvalOption{WithLogf(t.Logf)}, evt.opts...)
	ev := NewEvaluator(opts...)
	for _, setup := range evt.setup {
		setup(ev)
	}
	return ev
}

func (evt evalTestCase) dumpToTest(t *testing.T, ev *Evaluator) {
	lw := logio.Writer{Logf: t.Logf}
	defer lw.Close()
	evalDumper{ev: ev, out: &lw}.dump()
}

//// utilities

func mustTokenize(line string) []Token {
	toks, err := Tokenize(line)
	if err != nil {
		panic(fmt.Sprintf("invalid test source %q: %v", line, err))
	}
	return toks
}
