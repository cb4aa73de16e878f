package colwriter

// Setting is a per-column configuration value: either one value applied to
// every column, or an ordered list with one value per column.
type Setting[T any] struct {
	values  []T
	uniform bool
}

// Uniform returns a Setting that applies v to every column.
func Uniform[T any](v T) Setting[T] {
	return Setting[T]{values: []T{v}, uniform: true}
}

// PerColumn returns a Setting with one value per column. Columns beyond the
// list use the package default for that setting.
func PerColumn[T any](vs ...T) Setting[T] {
	values := make([]T, len(vs))
	copy(values, vs)
	return Setting[T]{values: values}
}

// IsUniform reports whether the setting applies one value to every column.
func (s Setting[T]) IsUniform() bool { return s.uniform }

// Value returns the uniform value. ok is false for per-column settings.
func (s Setting[T]) Value() (v T, ok bool) {
	if !s.uniform {
		return v, false
	}
	return s.values[0], true
}

// Values returns a copy of the configured values. A uniform setting returns
// a single-element slice.
func (s Setting[T]) Values() []T {
	out := make([]T, len(s.values))
	copy(out, s.values)
	return out
}

// resolve expands the setting to exactly n values, filling columns the
// setting does not cover with def.
func (s Setting[T]) resolve(n int, def T) []T {
	out := make([]T, n)
	if s.uniform {
		for i := range out {
			out[i] = s.values[0]
		}
		return out
	}
	copied := copy(out, s.values)
	for i := copied; i < n; i++ {
		out[i] = def
	}
	return out
}

func (s Setting[T]) each(fn func(T) error) error {
	for _, v := range s.values {
		if err := fn(v); err != nil {
			return err
		}
	}
	return nil
}
