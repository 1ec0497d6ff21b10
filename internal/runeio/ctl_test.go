package runeio_test

import (
	"testing"

	"github.com/jcorbin/minforth/internal/runeio"
	"github.com/stretchr/testify/assert"
)

func Test_CaretForm(t *testing.T) {
	for _, tc := range []struct {
		r      rune
		expect string
	}{
		{0x00, "^@"},
		{0x03, "^C"},
		{0x1b, "^["},
		{0x7f, "^?"},
		{0x9b, "^[["},
		{'a', ""},
		{' ', ""},
		{'é', ""},
	} {
		assert.Equal(t, tc.expect, runeio.CaretForm(tc.r), "expected caret form of %U", tc.r)
	}
}

func Test_Printable(t *testing.T) {
	assert.Equal(t, "foo", runeio.Printable("foo"))
	assert.Equal(t, "^[[Afoo", runeio.Printable("\x1b[Afoo"))
	assert.Equal(t, "a^@b^?", runeio.Printable("a\x00b\x7f"))
	assert.Equal(t, "héllo", runeio.Printable("héllo"))
}
