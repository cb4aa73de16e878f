package colwriter

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"reflect"
	"slices"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config is an option map, typically decoded from a YAML or TOML document.
//
// Recognized keys:
//
//   - "padding": integer, or list of integers
//   - "alignment": "left"/"center"/"right" (or "l"/"c"/"r"), or a list of them
//   - "padchar" (alias "pad_char"): one-character string, or a list of them
//   - "delimiter" (alias "tabchar"): non-empty string
//
// Any other key is rejected with [ErrUnknownOption].
type Config map[string]any

// ConfigKind identifies a configuration document syntax.
type ConfigKind string

const (
	YAML ConfigKind = "yaml"
	TOML ConfigKind = "toml"
)

// ConfigKindFromPath picks a ConfigKind from a file extension.
func ConfigKindFromPath(path string) (ConfigKind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	}
	return "", fmt.Errorf("%w: unrecognized config file extension %q", ErrInvalidConfig, path)
}

// LoadConfig decodes a configuration document. Keys are validated when the
// Config is applied, not here.
func LoadConfig(r io.Reader, kind ConfigKind) (Config, error) {
	m := map[string]any{}
	switch kind {
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&m); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: yaml: %w", ErrInvalidConfig, err)
		}
	case TOML:
		if err := toml.NewDecoder(r).Decode(&m); err != nil {
			return nil, fmt.Errorf("%w: toml: %w", ErrInvalidConfig, err)
		}
	default:
		return nil, fmt.Errorf("%w: unsupported config kind %q", ErrInvalidConfig, kind)
	}
	return Config(m), nil
}

var configKeys = map[string]func(*Writer, any) error{
	"padding":   applyPadding,
	"alignment": applyAlignment,
	"padchar":   applyPadChar,
	"pad_char":  applyPadChar,
	"delimiter": applyDelimiter,
	"tabchar":   applyDelimiter,
}

func (c Config) apply(w *Writer) error {
	keys := make([]string, 0, len(c))
	for k := range c {
		if _, ok := configKeys[k]; !ok {
			return fmt.Errorf("%w: %w: %q", ErrInvalidConfig, ErrUnknownOption, k)
		}
		keys = append(keys, k)
	}
	// Sorted so that failures are reported deterministically.
	slices.Sort(keys)
	for _, k := range keys {
		if err := configKeys[k](w, c[k]); err != nil {
			return err
		}
	}
	return nil
}

func applyPadding(w *Writer, v any) error {
	s, err := settingOf(v, "padding", toInt)
	if err != nil {
		return err
	}
	return w.SetPadding(s)
}

func applyAlignment(w *Writer, v any) error {
	s, err := settingOf(v, "alignment", func(x any) (Alignment, bool) {
		switch a := x.(type) {
		case Alignment:
			return a, true
		case string:
			parsed, err := ParseAlignment(a)
			return parsed, err == nil
		}
		return 0, false
	})
	if err != nil {
		return err
	}
	return w.SetAlignment(s)
}

func applyPadChar(w *Writer, v any) error {
	s, err := settingOf(v, "padchar", func(x any) (string, bool) {
		c, ok := x.(string)
		return c, ok
	})
	if err != nil {
		return err
	}
	return w.SetPadChar(s)
}

func applyDelimiter(w *Writer, v any) error {
	d, ok := v.(string)
	if !ok {
		return fmt.Errorf("%w: delimiter must be a string, got %T", ErrInvalidConfig, v)
	}
	return w.SetDelimiter(d)
}

// settingOf converts a scalar into a uniform setting and a list into a
// per-column one.
func settingOf[T any](v any, key string, conv func(any) (T, bool)) (Setting[T], error) {
	if s, ok := v.(Setting[T]); ok {
		return s, nil
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		vals := make([]T, rv.Len())
		for i := range vals {
			elem := rv.Index(i).Interface()
			x, ok := conv(elem)
			if !ok {
				return Setting[T]{}, fmt.Errorf("%w: %s[%d]: invalid value %v (%T)", ErrInvalidConfig, key, i, elem, elem)
			}
			vals[i] = x
		}
		return PerColumn(vals...), nil
	}
	x, ok := conv(v)
	if !ok {
		return Setting[T]{}, fmt.Errorf("%w: %s: invalid value %v (%T)", ErrInvalidConfig, key, v, v)
	}
	return Uniform(x), nil
}

func toInt(x any) (int, bool) {
	rv := reflect.ValueOf(x)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return int(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return int(rv.Uint()), true
	}
	return 0, false
}
