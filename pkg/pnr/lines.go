package pnr

import "strings"

// SplitLines splits text on newlines, trims every line and drops blank ones.
func SplitLines(text string) ([]string, error) {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	if len(lines) == 0 {
		return nil, ErrEmptyInput
	}
	return lines, nil
}
