package dsv2md

import "strings"

// Escape replaces every "|" in cell with "\|" so it cannot end a Markdown
// table cell.
func Escape(cell string) string {
	return strings.ReplaceAll(cell, "|", `\|`)
}

func cleanCell(cell string) string {
	return Escape(trimSpace(cell))
}

// Render returns the Markdown lines for t in output order, without line
// terminators.
//
// With header the first row becomes the header line; otherwise a header of
// empty cells is emitted and every row is a body row. When widths is non-nil
// each cell is padded to its column width and separator dashes span the full
// width; otherwise cells are unpadded and separators are "---".
func Render(t Table, header bool, widths []int) []string {
	return render(t, header, widths, charCount)
}

func render(t Table, header bool, widths []int, measure measureFunc) []string {
	if len(t.Rows) == 0 {
		return nil
	}
	lines := make([]string, 0, len(t.Rows)+2)
	body := t.Rows
	if header {
		lines = append(lines, formatRow(t.Rows[0], widths, measure))
		body = t.Rows[1:]
	} else {
		lines = append(lines, formatRow(make([]string, t.Cols), widths, measure))
	}
	lines = append(lines, formatSeparator(t.Cols, widths))
	for _, row := range body {
		lines = append(lines, formatRow(row, widths, measure))
	}
	return lines
}

func formatRow(cells []string, widths []int, measure measureFunc) string {
	padded := make([]string, len(cells))
	for i, cell := range cells {
		cell = cleanCell(cell)
		if i < len(widths) {
			cell = padCell(cell, widths[i], measure)
		}
		padded[i] = cell
	}
	return "| " + strings.Join(padded, " | ") + " |"
}

func formatSeparator(cols int, widths []int) string {
	sep := make([]string, cols)
	for i := range sep {
		width := minWidth
		if i < len(widths) {
			width = widths[i]
		}
		sep[i] = strings.Repeat("-", width)
	}
	return "| " + strings.Join(sep, " | ") + " |"
}
