package common

// First returns the first element of the slice and true, or the zero value
// and false if empty.
func First[S ~[]E, E any](s S) (E, bool) {
	return At(s, 0)
}

// Last returns the final element of the slice and true, or the zero value
// and false if empty.
func Last[S ~[]E, E any](s S) (E, bool) {
	return At(s, len(s)-1)
}

// At returns the element at index i and true, or the zero value and false
// when i is out of range.
func At[S ~[]E, E any](s S, i int) (E, bool) {
	if i < 0 || i >= len(s) {
		var zero E
		return zero, false
	}

	return s[i], true
}

// IsSingle returns true if the slice has exactly one element.
func IsSingle[S ~[]E, E any](s S) bool {
	return len(s) == 1
}
