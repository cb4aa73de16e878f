package colwriter

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"iter"
)

// WriteRows appends every row yielded by seq, in order.
func (w *Writer) WriteRows(seq iter.Seq[[]string]) {
	for row := range seq {
		w.WriteRow(row...)
	}
}

// WriteRowsChan appends rows received from ch until it is closed.
// It is a thin wrapper around [Writer.WriteRows].
func (w *Writer) WriteRowsChan(ch <-chan []string) {
	w.WriteRows(chanToIter(ch))
}

func chanToIter[T any](ch <-chan T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for item := range ch {
			if !yield(item) {
				return
			}
		}
	}
}

// ReadCSV appends each CSV record read from r as a row. Records may have
// differing field counts. A zero comma means ','.
func (w *Writer) ReadCSV(r io.Reader, comma rune) error {
	cr := csv.NewReader(r)
	if comma != 0 {
		cr.Comma = comma
	}
	cr.FieldsPerRecord = -1
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read csv: %w", err)
		}
		w.WriteRow(record...)
	}
}
