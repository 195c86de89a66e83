package dsv2md

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Parse trims surrounding whitespace from text, splits it into lines and
// splits each line into cells on every literal occurrence of delimiter.
// Empty or all-whitespace text yields no rows.
func Parse(text, delimiter string) ([][]string, error) {
	if delimiter == "" {
		return nil, ErrEmptyDelimiter
	}
	lines := splitLines(trimSpace(text))
	rows := make([][]string, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, strings.Split(line, delimiter))
	}
	return rows, nil
}

// isSpace is unicode.IsSpace plus the ASCII information separators
// U+001C through U+001F.
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

func trimSpace(s string) string {
	return strings.TrimFunc(s, isSpace)
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// splitLines splits s on universal newline boundaries. "\r\n" is a single
// boundary and a trailing boundary does not produce an empty final line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}
