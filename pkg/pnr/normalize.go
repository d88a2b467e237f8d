package pnr

import "strings"

// Normalize collapses every run of ASCII spaces into a single space.
// Tabs and newlines are left alone.
func Normalize(text string) string {
	if !strings.Contains(text, "  ") {
		return text
	}

	var buf strings.Builder
	buf.Grow(len(text))
	prevSpace := false
	for i := 0; i < len(text); i++ {
		c := text[i]
		if c == ' ' {
			if prevSpace {
				continue
			}
			prevSpace = true
		} else {
			prevSpace = false
		}
		buf.WriteByte(c)
	}

	return buf.String()
}
