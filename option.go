package colwriter

import (
	"fmt"
	"unicode/utf8"
)

// Option configures a [Writer] at construction.
type Option func(*Writer) error

// WithPadding pads every column with n fill characters.
func WithPadding(n int) Option {
	return func(w *Writer) error { return w.SetPadding(Uniform(n)) }
}

// WithColumnPadding sets padding per column. Columns beyond ns get 1.
func WithColumnPadding(ns ...int) Option {
	return func(w *Writer) error { return w.SetPadding(PerColumn(ns...)) }
}

// WithAlignment aligns every column the same way.
func WithAlignment(a Alignment) Option {
	return func(w *Writer) error { return w.SetAlignment(Uniform(a)) }
}

// WithColumnAlignment sets alignment per column. Columns beyond as are
// left-aligned.
func WithColumnAlignment(as ...Alignment) Option {
	return func(w *Writer) error { return w.SetAlignment(PerColumn(as...)) }
}

// WithPadChar fills padding in every column with c.
func WithPadChar(c string) Option {
	return func(w *Writer) error { return w.SetPadChar(Uniform(c)) }
}

// WithColumnPadChar sets the fill character per column. Columns beyond cs
// are filled with spaces.
func WithColumnPadChar(cs ...string) Option {
	return func(w *Writer) error { return w.SetPadChar(PerColumn(cs...)) }
}

// WithDelimiter sets the string that separates fields in written text.
func WithDelimiter(d string) Option {
	return func(w *Writer) error { return w.SetDelimiter(d) }
}

// WithConfig applies every key of cfg. See [Config].
func WithConfig(cfg Config) Option {
	return func(w *Writer) error { return cfg.apply(w) }
}

// Padding returns the padding setting.
func (w *Writer) Padding() Setting[int] { return w.padding }

// Alignment returns the alignment setting.
func (w *Writer) Alignment() Setting[Alignment] { return w.alignment }

// PadChar returns the fill character setting.
func (w *Writer) PadChar() Setting[string] { return w.padChar }

// Delimiter returns the field delimiter.
func (w *Writer) Delimiter() string { return w.delimiter }

// SetPadding replaces the padding setting. Negative values are rejected and
// leave the current setting in place.
func (w *Writer) SetPadding(s Setting[int]) error {
	err := s.each(func(n int) error {
		if n < 0 {
			return fmt.Errorf("%w: padding %d is negative", ErrInvalidConfig, n)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.padding = s
	return nil
}

// SetAlignment replaces the alignment setting.
func (w *Writer) SetAlignment(s Setting[Alignment]) error {
	err := s.each(func(a Alignment) error {
		if !a.Valid() {
			return fmt.Errorf("%w: alignment %s", ErrInvalidConfig, a)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.alignment = s
	return nil
}

// SetPadChar replaces the fill character setting. Each entry must be a single
// character or empty; an empty fill character makes padding zero-width.
func (w *Writer) SetPadChar(s Setting[string]) error {
	err := s.each(func(c string) error {
		if utf8.RuneCountInString(c) > 1 {
			return fmt.Errorf("%w: pad char %q is longer than one character", ErrInvalidConfig, c)
		}
		return nil
	})
	if err != nil {
		return err
	}
	w.padChar = s
	return nil
}

// SetDelimiter replaces the field delimiter. It must not be empty.
func (w *Writer) SetDelimiter(d string) error {
	if d == "" {
		return fmt.Errorf("%w: delimiter is empty", ErrInvalidConfig)
	}
	w.delimiter = d
	return nil
}
