package colwriter

import (
	"io"
	"strings"
	"unicode/utf8"
)

// Render flushes pending text and returns the buffered rows formatted as
// aligned columns. Rows are joined with newlines and the result has no
// trailing newline. It returns [ErrEmptyBuffer] when there are no rows.
// Rendering does not consume the buffer and may be repeated.
func (w *Writer) Render() (string, error) {
	w.flush()
	if len(w.rows) == 0 {
		return "", ErrEmptyBuffer
	}

	numCols := colCount(w.rows)
	widths := computeWidths(numCols, w.rows)
	padding := w.padding.resolve(numCols, defaultPadding)
	aligns := w.alignment.resolve(numCols, AlignLeft)
	padChars := w.padChar.resolve(numCols, defaultPadChar)

	var sb strings.Builder
	for r, row := range w.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for i, field := range row {
			gap := widths[i] - utf8.RuneCountInString(field) + padding[i]
			sb.WriteString(alignField(field, gap, padChars[i], aligns[i]))
		}
	}
	return sb.String(), nil
}

// String renders the buffer, returning "" when it is empty.
func (w *Writer) String() string {
	s, _ := w.Render()
	return s
}

// WriteTo renders the buffer and writes the result to dst.
func (w *Writer) WriteTo(dst io.Writer) (int64, error) {
	s, err := w.Render()
	if err != nil {
		return 0, err
	}
	n, err := io.WriteString(dst, s)
	return int64(n), err
}

// Format renders text in one step with a Writer configured by opts.
func Format(text string, opts ...Option) (string, error) {
	w, err := New(opts...)
	if err != nil {
		return "", err
	}
	_, _ = w.WriteString(text)
	return w.Render()
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

func computeWidths(numCols int, rows [][]string) []int {
	widths := make([]int, numCols)
	for _, row := range rows {
		for i, field := range row {
			if n := utf8.RuneCountInString(field); n > widths[i] {
				widths[i] = n
			}
		}
	}
	return widths
}

// alignField places s within gap copies of fill. Centered fields get the
// smaller half of the gap before them.
func alignField(s string, gap int, fill string, align Alignment) string {
	if gap <= 0 {
		return s
	}
	switch align {
	case AlignRight:
		return strings.Repeat(fill, gap) + s
	case AlignCenter:
		left := gap / 2
		return strings.Repeat(fill, left) + s + strings.Repeat(fill, gap-left)
	default:
		return s + strings.Repeat(fill, gap)
	}
}
