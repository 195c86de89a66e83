// Package dsv2md converts delimiter-separated text into GitHub-flavored
// Markdown tables.
//
// The conversion is a linear pipeline of pure functions, each usable on its
// own:
//
//   - [Detect] picks tab or comma for input without an explicit delimiter
//   - [Parse] splits text into rows of cells on a literal delimiter
//   - [Normalize] pads ragged rows into a rectangular [Table]
//   - [Widths] computes per-column widths for pretty output
//   - [Render] produces the Markdown lines
//
// [Convert] and [Marshal] run the whole pipeline according to [Options]:
//
//	err := dsv2md.Convert(os.Stdout, os.Stdin, dsv2md.Options{Header: true})
//
// # Delimiters
//
// Any non-empty string is a valid delimiter, including multi-character ones
// such as "::". Splitting is literal: quoting is not recognized, so a
// delimiter cannot appear inside a field value.
//
// # Pretty Output
//
// With [Options.Pretty] every column is padded to the width of its widest
// cell, with a floor of three so the separator row always holds "---".
// Widths count characters. Set [Options.DisplayWidth] to count terminal
// display columns instead, which aligns East Asian wide characters and emoji.
//
// # Escaping
//
// Cells are trimmed and every "|" becomes "\|". No other Markdown is escaped.
//
// # Errors
//
//   - [ErrEmptyDelimiter] — [Parse] was given an empty delimiter
//   - [ErrRead] — the input reader failed
//   - [ErrWrite] — the output writer failed
package dsv2md
