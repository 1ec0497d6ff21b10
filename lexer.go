package main

import (
	"strconv"
	"strings"
)

// Tokenize splits line on runs of whitespace, and classifies each resulting
// word in order, stopping at the first one that is not a valid token.
// A blank line produces no tokens and no error.
func Tokenize(line string) ([]Token, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, nil
	}
	toks := make([]Token, 0, len(fields))
	for _, field := range fields {
		tok, err := lexToken(field)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	return toks, nil
}

// lexToken classifies a single whitespace-free substring; integers take
// priority, so "-1" is a number while "-" is an operator.
func lexToken(s string) (Token, error) {
	if n, err := strconv.ParseInt(s, 10, strconv.IntSize); err == nil {
		return Number(int(n)), nil
	}

	switch s {
	case "+":
		return Operator(Add), nil
	case "-":
		return Operator(Subtract), nil
	case "/":
		return Operator(Divide), nil
	case "*":
		return Operator(Multiply), nil
	case ".":
		return Period, nil
	case ":":
		return Colon, nil
	case ";":
		return Semicolon, nil
	}

	if isWord(s) {
		return Word(s), nil
	}
	return Token{}, InvalidTokenError{s}
}

func isWord(s string) bool {
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case 'a' <= c && c <= 'z':
		case 'A' <= c && c <= 'Z':
		case '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return len(s) > 0
}
