package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Dictionary(t *testing.T) {
	var dict Dictionary
	assert.Equal(t, 0, dict.Len())
	assert.Equal(t, []string{}, dict.Words())

	_, defined := dict.lookup("foo")
	assert.False(t, defined, "expected empty dictionary")

	body := []Token{Number(100), Operator(Add)}
	dict.define("foo", body)
	body[0] = Number(1)

	got, defined := dict.lookup("foo")
	assert.True(t, defined)
	assert.Equal(t, []Token{Number(100), Operator(Add)}, got, "expected define to copy the body")

	dict.define("bar", nil)
	dict.define("Foo", []Token{Word("foo")})
	dict.define("foo", []Token{Number(2)})

	got, _ = dict.lookup("foo")
	assert.Equal(t, []Token{Number(2)}, got, "expected redefinition to replace")
	got, defined = dict.lookup("bar")
	assert.True(t, defined, "expected empty body to be defined")
	assert.Empty(t, got)

	assert.Equal(t, 3, dict.Len())
	assert.Equal(t, []string{"Foo", "bar", "foo"}, dict.Words())
}
