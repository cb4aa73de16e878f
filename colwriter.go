package colwriter

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for programmatic error handling.
var (
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrUnknownOption = errors.New("unknown option")
	ErrEmptyBuffer   = errors.New("nothing to render")
)

// Alignment controls how a field is placed within its padded column.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

var alignmentNames = map[Alignment]string{
	AlignLeft:   "left",
	AlignCenter: "center",
	AlignRight:  "right",
}

// String returns the alignment name.
func (a Alignment) String() string {
	if s, ok := alignmentNames[a]; ok {
		return s
	}
	return fmt.Sprintf("Alignment(%d)", int(a))
}

// Valid reports whether a is one of the defined alignments.
func (a Alignment) Valid() bool {
	_, ok := alignmentNames[a]
	return ok
}

// ParseAlignment parses "left", "center" or "right", or their one-letter
// forms "l", "c" and "r". Matching is case-insensitive.
func ParseAlignment(s string) (Alignment, error) {
	switch strings.ToLower(s) {
	case "l", "left":
		return AlignLeft, nil
	case "c", "center":
		return AlignCenter, nil
	case "r", "right":
		return AlignRight, nil
	}
	return 0, fmt.Errorf("%w: alignment %q", ErrInvalidConfig, s)
}

const (
	defaultPadding   = 1
	defaultPadChar   = " "
	defaultDelimiter = "\t"
)

// Writer buffers delimited text and renders it as aligned columns.
//
// Text written with [Writer.Write], [Writer.WriteString] and
// [Writer.WriteLine] is held unsplit until the next flush, which happens when
// a row is appended or the buffer is rendered. A Writer is not safe for
// concurrent use.
type Writer struct {
	pending []string
	rows    [][]string

	padding   Setting[int]
	alignment Setting[Alignment]
	padChar   Setting[string]
	delimiter string
}

// New returns a Writer with the default configuration (padding 1, left
// alignment, space padding, tab delimiter) with opts applied in order.
func New(opts ...Option) (*Writer, error) {
	w := &Writer{
		padding:   Uniform(defaultPadding),
		alignment: Uniform(AlignLeft),
		padChar:   Uniform(defaultPadChar),
		delimiter: defaultDelimiter,
	}
	for _, opt := range opts {
		if err := opt(w); err != nil {
			return nil, err
		}
	}
	return w, nil
}

// Write appends p to the pending text. It never fails.
func (w *Writer) Write(p []byte) (int, error) {
	w.pending = append(w.pending, string(p))
	return len(p), nil
}

// WriteString appends s to the pending text. It never fails.
func (w *Writer) WriteString(s string) (int, error) {
	w.pending = append(w.pending, s)
	return len(s), nil
}

// WriteRow flushes pending text and appends fields as a single row.
func (w *Writer) WriteRow(fields ...string) {
	w.flush()
	row := make([]string, len(fields))
	copy(row, fields)
	w.rows = append(w.rows, row)
}

// WriteLine writes text so that it starts and ends on a row boundary.
// Newlines inside text still produce separate rows.
func (w *Writer) WriteLine(text string) {
	w.flush()
	w.pending = append(w.pending, text)
	w.flush()
}

// Clear discards all buffered rows and pending text. Configuration is kept.
func (w *Writer) Clear() {
	w.pending = nil
	w.rows = nil
}

// Len returns the number of buffered rows, flushing pending text first.
func (w *Writer) Len() int {
	w.flush()
	return len(w.rows)
}

// Rows flushes pending text and returns a copy of the buffered rows.
func (w *Writer) Rows() [][]string {
	w.flush()
	out := make([][]string, len(w.rows))
	for i, row := range w.rows {
		out[i] = append([]string(nil), row...)
	}
	return out
}

func (w *Writer) flush() {
	if len(w.pending) == 0 {
		return
	}
	text := strings.Join(w.pending, "")
	w.pending = nil
	for _, line := range strings.Split(text, "\n") {
		w.rows = append(w.rows, strings.Split(line, w.delimiter))
	}
}
