package main

import "sort"

// Dictionary maps word names to their definition bodies. Names are case
// sensitive. The zero value is an empty dictionary.
type Dictionary struct {
	words map[string][]Token
}

// define stores a copy of body under name, replacing any prior definition.
func (dict *Dictionary) define(name string, body []Token) {
	if dict.words == nil {
		dict.words = make(map[string][]Token)
	}
	dict.words[name] = append([]Token(nil), body...)
}

// lookup returns the body defined under name; callers must not modify it.
func (dict Dictionary) lookup(name string) ([]Token, bool) {
	body, defined := dict.words[name]
	return body, defined
}

// Len returns the number of defined words.
func (dict Dictionary) Len() int { return len(dict.words) }

// Words returns all defined names in sorted order.
func (dict Dictionary) Words() []string {
	names := make([]string, 0, len(dict.words))
	for name := range dict.words {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
