package dsv2md

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplitLines(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  []string
	}{
		"empty":            {input: "", want: nil},
		"single":           {input: "a", want: []string{"a"}},
		"trailing newline": {input: "a\n", want: []string{"a"}},
		"lf":               {input: "a\nb", want: []string{"a", "b"}},
		"crlf":             {input: "a\r\nb", want: []string{"a", "b"}},
		"cr":               {input: "a\rb", want: []string{"a", "b"}},
		"lf cr":            {input: "a\n\rb", want: []string{"a", "", "b"}},
		"vertical tab":     {input: "a\vb\fc", want: []string{"a", "b", "c"}},
		"unicode":          {input: "a\u2028b\u2029c\u0085d", want: []string{"a", "b", "c", "d"}},
		"separators":       {input: "a\x1cb\x1dc\x1ed", want: []string{"a", "b", "c", "d"}},
		"unit separator":   {input: "a\x1fb", want: []string{"a\x1fb"}},
		"blank line":       {input: "a\n\nb", want: []string{"a", "", "b"}},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, splitLines(tc.input))
		})
	}
}

func TestTrimSpace(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "a b", trimSpace(" \t\n a b \r\n"))
	assert.Equal(t, "a", trimSpace("\x1c\x1fa\x1e\u00a0 "))
	assert.Empty(t, trimSpace("\u2028 \u3000"))
}

func TestPadCell(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ab  ", padCell("ab", 4, charCount))
	assert.Equal(t, "abcde", padCell("abcde", 3, charCount))
	assert.Equal(t, "é  ", padCell("é", 3, charCount))
	assert.Equal(t, "你 ", padCell("你", 3, displayWidth))
	assert.Equal(t, "你  ", padCell("你", 3, charCount))
}

func TestFormatSeparator(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "| --- | --- |", formatSeparator(2, nil))
	assert.Equal(t, "| ---- | ------ |", formatSeparator(2, []int{4, 6}))
	assert.Equal(t, "| --- |", formatSeparator(1, []int{}))
}

func TestComputeWidthsDisplay(t *testing.T) {
	t.Parallel()
	table := Normalize([][]string{{"你好", "ok"}, {"😀", "x"}})
	assert.Equal(t, []int{4, 3}, computeWidths(table, true, displayWidth))
	assert.Equal(t, []int{3, 3}, computeWidths(table, true, charCount))
}

func TestOptionsDefaults(t *testing.T) {
	t.Parallel()
	var opts Options
	assert.NotNil(t, opts.logger())
	assert.Equal(t, 2, opts.measure()("你好"))
	opts.DisplayWidth = true
	assert.Equal(t, 4, opts.measure()("你好"))
}
