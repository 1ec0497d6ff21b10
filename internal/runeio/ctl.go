package runeio

import "strings"

// CaretForm computes the ^-escaped printable form of a control rune: C0
// controls and DEL like ^@ ^C ^?, C1 controls in their 7-bit escape form
// like ^[[ for CSI. Returns "" for any other rune.
func CaretForm(r rune) string {
	if r < 0x20 || r == 0x7f {
		return "^" + string(r^0x40)
	} else if 0x80 <= r && r <= 0x9f {
		return "^[" + string(r^0xc0)
	}
	return ""
}

// Printable replaces every control rune in s with its CaretForm, so that
// arbitrary user input may be echoed back onto a terminal.
func Printable(s string) string {
	i := strings.IndexFunc(s, isControl)
	if i < 0 {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 8)
	sb.WriteString(s[:i])
	for _, r := range s[i:] {
		if caret := CaretForm(r); caret != "" {
			sb.WriteString(caret)
		} else {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func isControl(r rune) bool { return CaretForm(r) != "" }
