package dsv2md

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrEmptyDelimiter = errors.New("empty delimiter")
	ErrRead           = errors.New("read input")
	ErrWrite          = errors.New("write output")
)

// Options controls a conversion.
type Options struct {
	// Header treats the first row as the table header. Without it a blank
	// header row is emitted and every row becomes a body row.
	Header bool

	// Delimiter splits lines into cells. Empty means auto-detect with [Detect].
	Delimiter string

	// Pretty pads every column to a common width.
	Pretty bool

	// DisplayWidth measures cells in terminal columns rather than characters.
	// Only meaningful with Pretty.
	DisplayWidth bool

	// Logger receives debug events. Nil discards them.
	Logger *slog.Logger
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.New(slog.DiscardHandler)
}

func (o Options) measure() measureFunc {
	if o.DisplayWidth {
		return displayWidth
	}
	return charCount
}

// Convert reads all of r, renders it as a Markdown table and writes the
// lines to w. Input that is empty or only whitespace produces no output.
func Convert(w io.Writer, r io.Reader, opts Options) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrRead, err)
	}
	lines, err := convert(string(data), opts)
	if err != nil {
		return err
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	return nil
}

// Marshal converts text and returns the rendered table, one newline-terminated
// line per row. It returns nil for empty input.
func Marshal(text string, opts Options) ([]byte, error) {
	lines, err := convert(text, opts)
	if err != nil || len(lines) == 0 {
		return nil, err
	}
	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return []byte(sb.String()), nil
}

func convert(text string, opts Options) ([]string, error) {
	log := opts.logger()
	if trimSpace(text) == "" {
		log.Debug("empty input, nothing to render")
		return nil, nil
	}

	delim := opts.Delimiter
	if delim == "" {
		delim = Detect(text)
		log.Debug("detected delimiter", "delimiter", delim)
	} else {
		log.Debug("using delimiter", "delimiter", delim)
	}

	rows, err := Parse(text, delim)
	if err != nil {
		return nil, err
	}
	table := Normalize(rows)
	log.Debug("parsed table", "rows", len(table.Rows), "cols", table.Cols)
	if len(table.Rows) == 0 {
		return nil, nil
	}

	measure := opts.measure()
	var widths []int
	if opts.Pretty {
		widths = computeWidths(table, opts.Header, measure)
		log.Debug("computed column widths", "widths", widths)
	}
	return render(table, opts.Header, widths, measure), nil
}
