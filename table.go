package dsv2md

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
)

// minWidth is the narrowest column pretty output produces, enough for the
// "---" of a separator cell.
const minWidth = 3

// Table is a rectangular set of rows. Every row has exactly Cols cells.
type Table struct {
	Rows [][]string
	Cols int
}

// Normalize pads every row with empty cells up to the length of the longest
// row. The input rows are not modified.
func Normalize(rows [][]string) Table {
	cols := colCount(rows)
	padded := make([][]string, len(rows))
	for i, row := range rows {
		r := make([]string, cols)
		copy(r, row)
		padded[i] = r
	}
	return Table{Rows: padded, Cols: cols}
}

func colCount(rows [][]string) int {
	n := 0
	for _, row := range rows {
		if len(row) > n {
			n = len(row)
		}
	}
	return n
}

// Widths returns the pretty-output width of every column of t: the character
// length of its longest trimmed and escaped cell, never less than three.
//
// The header flag does not change the result. Header cells are measured like
// any other row.
func Widths(t Table, header bool) []int {
	return computeWidths(t, header, charCount)
}

type measureFunc func(string) int

func charCount(s string) int { return utf8.RuneCountInString(s) }

func displayWidth(s string) int { return runewidth.StringWidth(s) }

func computeWidths(t Table, _ bool, measure measureFunc) []int {
	widths := make([]int, t.Cols)
	for i := range widths {
		widths[i] = minWidth
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if w := measure(cleanCell(cell)); i < t.Cols && w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

// padCell left-aligns s in a field of width, measured by measure.
func padCell(s string, width int, measure measureFunc) string {
	pad := width - measure(s)
	if pad <= 0 {
		return s
	}
	return s + strings.Repeat(" ", pad)
}
