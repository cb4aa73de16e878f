// Package colwriter buffers delimiter-separated text and renders it as
// aligned, padded columns, in the manner of a tab-stop formatter.
//
// Text is written with [Writer.Write], [Writer.WriteString] or
// [Writer.WriteLine] and split into rows on newlines and into fields on the
// delimiter (tab by default). Pre-split rows can be mixed in with
// [Writer.WriteRow]; write order is preserved. Nothing is formatted until
// [Writer.Render] is called:
//
//	w, _ := colwriter.New()
//	w.WriteString("a\tb\tc\naa\tbb\tcc")
//	out, _ := w.Render()
//	// a  b  c
//	// aa bb cc
//
// # Column Layout
//
// Each column is as wide as its longest field, measured in characters
// (runes, not display cells). Every field is then followed, preceded or
// surrounded by fill characters so that it occupies its column width plus
// the column's padding. The padding itself is the only separator between
// columns. Rows shorter than the widest row simply end early.
//
// # Settings
//
// Padding, alignment and the fill character are each a [Setting]: either
// [Uniform] across all columns or [PerColumn]. Per-column settings shorter
// than the row fall back to the defaults (padding 1, [AlignLeft], space):
//
//	w, err := colwriter.New(
//		colwriter.WithColumnPadding(0, 1, 2),
//		colwriter.WithColumnAlignment(colwriter.AlignLeft, colwriter.AlignCenter, colwriter.AlignRight),
//		colwriter.WithDelimiter("|"),
//	)
//
// Every setter validates eagerly and returns an error instead of storing an
// invalid value.
//
// # Configuration Files
//
// A [Config] is a plain option map. [LoadConfig] decodes one from YAML or
// TOML, and [WithConfig] applies it:
//
//	padding: [0, 1, 2]
//	alignment: right
//	padchar: "."
//
// # Errors
//
// The package exports sentinel errors for programmatic handling:
//
//   - [ErrInvalidConfig] — a setting was given an invalid value
//   - [ErrUnknownOption] — a [Config] contains an unrecognized key
//   - [ErrEmptyBuffer] — render was called with no rows buffered
package colwriter
