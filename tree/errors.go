package tree

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyPath is returned when a path with no components is resolved.
	ErrEmptyPath = errors.New("path has no components")

	// ErrNotMapping is returned when a path component resolves to a value
	// that is not a nested mapping and therefore cannot be indexed further.
	ErrNotMapping = errors.New("value is not a mapping")
)

// MissingKeyError reports a path whose final or intermediate key is absent
// from its resolved parent mapping.
type MissingKeyError struct {
	// Path is the full path that was being resolved.
	Path Path
	// Key is the component that was not found.
	Key string
}

func (e *MissingKeyError) Error() string {
	return fmt.Sprintf("key %q of path %s not found", e.Key, e.Path)
}
