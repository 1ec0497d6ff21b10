package main

import (
	"fmt"
)

// Mode is the evaluator state: interpreting tokens as they arrive, or
// compiling them into a pending definition.
type Mode uint8

// Evaluator modes.
const (
	Interpret Mode = iota
	Compile
)

func (mode Mode) String() string {
	switch mode {
	case Interpret:
		return "interpret"
	case Compile:
		return "compile"
	}
	return fmt.Sprintf("Mode(%d)", uint8(mode))
}

const defaultMaxDepth = 1024

// Evaluator is the stack machine. The zero value is ready to use, in
// interpret mode with an empty stack and dictionary, and no nesting limit.
//
// An Evaluator is not safe for concurrent use; independent programs should
// each use their own Evaluator.
type Evaluator struct {
	logging

	mode Mode

	// The stack holds tokens, not ints, so that a mis-constructed stack
	// surfaces as ErrInvalidOperand rather than being silently coerced.
	// The last element is the top.
	stack []Token

	// definition buffers tokens while compiling; its first token names the
	// word being defined.
	definition []Token

	dict Dictionary

	// Word replay is ordinary Go recursion, so depth is bounded by maxDepth
	// (when non-zero) to turn runaway self reference into an error.
	depth    int
	maxDepth int
}

// NewEvaluator creates a new evaluator, with a default word nesting limit.
func NewEvaluator(opts ...EvalOption) *Evaluator {
	ev := &Evaluator{maxDepth: defaultMaxDepth}
	for _, opt := range opts {
		if opt != nil {
			opt.applyEval(ev)
		}
	}
	return ev
}

// Mode returns the current evaluator mode.
func (ev *Evaluator) Mode() Mode { return ev.mode }

// Compiling returns true while a definition is open.
func (ev *Evaluator) Compiling() bool { return ev.mode == Compile }

// Stack returns a copy of the operand stack, bottom first.
func (ev *Evaluator) Stack() []Token { return append([]Token(nil), ev.stack...) }

// Words returns the names of all defined words, sorted.
func (ev *Evaluator) Words() []string { return ev.dict.Words() }

// EvalAll evaluates each token in order, stopping at the first error.
// The returned result is the last one produced by any token (i.e. the value
// popped by the last Period evaluated, directly or within a word); ok is
// false if no result was produced.
//
// Errors are not rolled back: anything popped before the failing operation
// stays popped, but the evaluator remains usable.
func (ev *Evaluator) EvalAll(toks []Token) (Token, bool, error) {
	var result Token
	var ok bool
	for _, tok := range toks {
		res, resOK, err := ev.Eval(tok)
		if err != nil {
			return Token{}, false, err
		}
		if resOK {
			result, ok = res, true
		}
	}
	return result, ok, nil
}

// Eval evaluates a single token according to the current mode.
// Returns a result token, and true, only when tok produced one.
func (ev *Evaluator) Eval(tok Token) (Token, bool, error) {
	if ev.mode == Compile {
		return Token{}, false, ev.compile(tok)
	}
	return ev.interpret(tok)
}

func (ev *Evaluator) interpret(tok Token) (Token, bool, error) {
	ev.logf(">", "%v -- s:%v", tok, ev.stack)

	switch tok.Kind {
	case KindNumber:
		ev.push(tok)

	case KindOperator:
		return Token{}, false, ev.binaryOp(tok.Op)

	case KindPeriod:
		res, err := ev.pop()
		if err != nil {
			return Token{}, false, err
		}
		ev.logf("<", "%v", res)
		return res, true, nil

	case KindColon:
		ev.mode = Compile

	case KindSemicolon:
		return Token{}, false, ErrUnexpectedSemicolon

	case KindWord:
		return ev.call(tok.Name)

	default:
		return Token{}, false, fmt.Errorf("%w: %#v", ErrInvalidToken, tok)
	}
	return Token{}, false, nil
}

// call replays the body of a defined word through EvalAll; words are
// resolved when called, never when defined.
func (ev *Evaluator) call(name string) (Token, bool, error) {
	body, defined := ev.dict.lookup(name)
	if !defined {
		return Token{}, false, NoDefinitionError{name}
	}
	if ev.maxDepth > 0 && ev.depth >= ev.maxDepth {
		return Token{}, false, fmt.Errorf("%w: calling %q at depth %v", ErrNestingDepth, name, ev.depth)
	}

	ev.depth++
	defer func() { ev.depth-- }()
	if ev.logfn != nil {
		defer ev.withLogPrefix("\t")()
	}
	return ev.EvalAll(body)
}

func (ev *Evaluator) compile(tok Token) error {
	ev.logf(":", "%v -- d:%v", tok, ev.definition)

	switch tok.Kind {
	case KindColon:
		return ErrUnexpectedColon
	case KindSemicolon:
		return ev.define()
	}
	ev.definition = append(ev.definition, tok)
	return nil
}

// define closes the open definition, returning to interpret mode whether or
// not the definition was valid.
func (ev *Evaluator) define() error {
	def := ev.definition
	ev.definition = ev.definition[:0]
	ev.mode = Interpret

	if len(def) == 0 || def[0].Kind != KindWord {
		return fmt.Errorf("%w: %q", ErrInvalidDefinition, formatDefinition(def))
	}

	name, body := def[0].Name, def[1:]
	ev.logf(";", "define %v %v", name, body)
	ev.dict.define(name, body)
	return nil
}

func (ev *Evaluator) push(tok Token) {
	ev.stack = append(ev.stack, tok)
}

func (ev *Evaluator) pop() (tok Token, err error) {
	i := len(ev.stack) - 1
	if i < 0 {
		return Token{}, ErrStackUnderflow
	}
	tok, ev.stack = ev.stack[i], ev.stack[:i]
	return tok, nil
}
