package tree

import "reflect"

// EnsureList coerces a value into a uniform []any view so downstream code
// can iterate without caring whether it was handed a scalar or a sequence.
//
// A []any is returned unchanged. Any other slice or array kind has its
// elements boxed into a new []any. Everything else, strings and nil
// included, is treated as a scalar and repeated length times.
func EnsureList(v any, length int) []any {
	if seq, ok := v.([]any); ok {
		return seq
	}

	if boxed, ok := boxSequence(v); ok {
		return boxed
	}

	out := make([]any, length)
	for i := range out {
		out[i] = v
	}

	return out
}

// boxSequence converts a typed slice or array (e.g. []int, [3]string) into
// a []any view. Strings are scalars here, not rune sequences.
func boxSequence(v any) ([]any, bool) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return nil, false
	}

	switch rv.Kind() {
	default:
		return nil, false
	case reflect.Slice, reflect.Array:
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}

		return out, true
	}
}

// IsSequence reports whether v is a sequence for the purposes of path
// declarations and value normalization: a slice or array of any kind,
// with strings counting as scalars.
func IsSequence(v any) bool {
	if _, ok := v.([]any); ok {
		return true
	}

	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return false
	}

	return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
}
