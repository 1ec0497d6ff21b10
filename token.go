package main

import (
	"fmt"
	"strconv"
)

// TokenKind discriminates the closed set of lexical units.
type TokenKind uint8

// Token kinds; the zero TokenKind marks an invalid, unset, Token.
const (
	KindInvalid TokenKind = iota
	KindNumber
	KindOperator
	KindWord
	KindColon
	KindSemicolon
	KindPeriod
)

var kindNames = [...]string{
	KindInvalid:   "invalid",
	KindNumber:    "number",
	KindOperator:  "operator",
	KindWord:      "word",
	KindColon:     "colon",
	KindSemicolon: "semicolon",
	KindPeriod:    "period",
}

func (kind TokenKind) String() string {
	if int(kind) < len(kindNames) {
		return kindNames[kind]
	}
	return fmt.Sprintf("TokenKind(%d)", uint8(kind))
}

// OperatorKind names one of the binary arithmetic operators.
type OperatorKind uint8

// Operator kinds.
const (
	Add OperatorKind = iota + 1
	Subtract
	Divide
	Multiply
)

var opSymbols = [...]string{
	Add:      "+",
	Subtract: "-",
	Divide:   "/",
	Multiply: "*",
}

func (op OperatorKind) String() string {
	if op > 0 && int(op) < len(opSymbols) {
		return opSymbols[op]
	}
	return fmt.Sprintf("OperatorKind(%d)", uint8(op))
}

// Token is an immutable lexical unit. Tokens are comparable, two tokens are
// equal exactly when they have the same kind and payload. Only the field
// named by Kind is meaningful.
type Token struct {
	Kind TokenKind
	Num  int
	Op   OperatorKind
	Name string
}

// Control tokens.
var (
	Colon     = Token{Kind: KindColon}
	Semicolon = Token{Kind: KindSemicolon}
	Period    = Token{Kind: KindPeriod}
)

// Number constructs a number token.
func Number(n int) Token { return Token{Kind: KindNumber, Num: n} }

// Operator constructs an operator token.
func Operator(op OperatorKind) Token { return Token{Kind: KindOperator, Op: op} }

// Word constructs a word token.
func Word(name string) Token { return Token{Kind: KindWord, Name: name} }

// Int returns the value of a number token, or ErrNotANumber.
func (tok Token) Int() (int, error) {
	if tok.Kind != KindNumber {
		return 0, fmt.Errorf("%w: %v %v", ErrNotANumber, tok.Kind, tok)
	}
	return tok.Num, nil
}

// String renders the token in its source form, so that tokenizing it again
// yields an equal token.
func (tok Token) String() string {
	switch tok.Kind {
	case KindNumber:
		return strconv.Itoa(tok.Num)
	case KindOperator:
		return tok.Op.String()
	case KindWord:
		return tok.Name
	case KindColon:
		return ":"
	case KindSemicolon:
		return ";"
	case KindPeriod:
		return "."
	}
	return fmt.Sprintf("<%v>", tok.Kind)
}

// GoString renders the token as a constructor call.
func (tok Token) GoString() string {
	switch tok.Kind {
	case KindNumber:
		return fmt.Sprintf("Number(%d)", tok.Num)
	case KindOperator:
		return fmt.Sprintf("Operator(%q)", tok.Op.String())
	case KindWord:
		return fmt.Sprintf("Word(%q)", tok.Name)
	case KindColon:
		return "Colon"
	case KindSemicolon:
		return "Semicolon"
	case KindPeriod:
		return "Period"
	}
	return fmt.Sprintf("Token{Kind: %v}", tok.Kind)
}
