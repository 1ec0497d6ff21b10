package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jcorbin/minforth/internal/fileinput"
	"github.com/jcorbin/minforth/internal/runeio"
)

// Lexical errors.
var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// Evaluation errors.
var (
	ErrStackUnderflow      = errors.New("stack underflow")
	ErrInvalidOperand      = errors.New("invalid operand")
	ErrNotANumber          = errors.New("not a number")
	ErrUnexpectedSemicolon = errors.New("unexpected semicolon")
	ErrUnexpectedColon     = errors.New("unexpected colon")
	ErrInvalidDefinition   = errors.New("invalid definition")
	ErrNoDefinition        = errors.New("no definition")
	ErrDivisionByZero      = errors.New("division by zero")
	ErrNestingDepth        = errors.New("word nesting too deep")
)

// InvalidTokenError reports a source substring that is not any kind of token.
type InvalidTokenError struct{ Text string }

func (err InvalidTokenError) Error() string {
	return fmt.Sprintf("%v: %v", ErrInvalidToken, runeio.Printable(err.Text))
}

// Is matches ErrInvalidToken.
func (err InvalidTokenError) Is(target error) bool { return target == ErrInvalidToken }

// NoDefinitionError reports a word that is not in the dictionary.
type NoDefinitionError struct{ Name string }

func (err NoDefinitionError) Error() string {
	return fmt.Sprintf("%v for word %q", ErrNoDefinition, err.Name)
}

// Is matches ErrNoDefinition.
func (err NoDefinitionError) Is(target error) bool { return target == ErrNoDefinition }

// LocationError attaches a source location, and the text of the line found
// there, to an error. The %+v form additionally quotes the line.
type LocationError struct {
	fileinput.Location
	Text string
	Err  error
}

func (err LocationError) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Err) }
func (err LocationError) Unwrap() error { return err.Err }

// Format prints the error, and under %+v, the offending line beneath it.
func (err LocationError) Format(f fmt.State, c rune) {
	switch {
	case c == 'v' && f.Flag('+'):
		fmt.Fprintf(f, "%v: %+v", err.Location, err.Err)
		if text := strings.TrimSpace(err.Text); text != "" {
			fmt.Fprintf(f, "\n\t%v", runeio.Printable(text))
		}
	case c == 'q':
		fmt.Fprintf(f, "%q", err.Error())
	default:
		fmt.Fprint(f, err.Error())
	}
}
