package main

import (
	"fmt"
	"io"
	"strings"
)

type evalDumper struct {
	ev  *Evaluator
	out io.Writer
}

func (dump evalDumper) dump() {
	fmt.Fprintf(dump.out, "# Evaluator Dump\n")
	fmt.Fprintf(dump.out, "  mode: %v\n", dump.ev.mode)
	fmt.Fprintf(dump.out, "  depth: %v/%v\n", dump.ev.depth, dump.ev.maxDepth)
	fmt.Fprintf(dump.out, "  stack: %v\n", dump.ev.stack)
	if dump.ev.mode == Compile {
		fmt.Fprintf(dump.out, "  definition: %v\n", dump.ev.definition)
	}
	dump.dumpWords()
}

func (dump evalDumper) dumpWords() {
	names := dump.ev.dict.Words()
	if len(names) == 0 {
		return
	}
	fmt.Fprintf(dump.out, "# Dictionary\n")
	for _, name := range names {
		body, _ := dump.ev.dict.lookup(name)
		def := make([]Token, 0, len(body)+1)
		def = append(def, Word(name))
		def = append(def, body...)
		fmt.Fprintf(dump.out, "  %v\n", formatDefinition(def))
	}
}

// formatDefinition renders a definition buffer back into source form, e.g.
// ": name 1 + ;".
func formatDefinition(def []Token) string {
	var sb strings.Builder
	sb.WriteString(":")
	for _, tok := range def {
		sb.WriteByte(' ')
		sb.WriteString(tok.String())
	}
	sb.WriteString(" ;")
	return sb.String()
}
