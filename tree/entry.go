package tree

import "fmt"

// GetEntry resolves path against m by sequential key indexing and returns
// the value at the final key.
//
// An empty path returns ErrEmptyPath. A missing intermediate or final key
// returns a *MissingKeyError. An intermediate value that is not a mapping
// returns an error wrapping ErrNotMapping.
func GetEntry(path Path, m map[string]any) (any, error) {
	parent, err := resolveParent(path, m)
	if err != nil {
		return nil, err
	}

	last := path[len(path)-1]

	v, ok := parent[last]
	if !ok {
		return nil, &MissingKeyError{Path: path, Key: last}
	}

	return v, nil
}

// SetEntry writes Unwrap(value) at path inside m, mutating m in place.
// The boolean result reports whether the write happened.
//
// All but the last key resolve exactly as in GetEntry, and failures there
// are errors regardless of mode. When the final key already exists it is
// overwritten. When it is absent, ModeStrict returns a *MissingKeyError
// while ModeModerate leaves m untouched and returns (false, nil); the
// caller decides how to surface the skip.
func SetEntry(value any, path Path, m map[string]any, mode Mode) (bool, error) {
	parent, err := resolveParent(path, m)
	if err != nil {
		return false, err
	}

	last := path[len(path)-1]

	if _, ok := parent[last]; !ok {
		if mode == ModeStrict {
			return false, &MissingKeyError{Path: path, Key: last}
		}

		return false, nil
	}

	parent[last] = Unwrap(value)

	return true, nil
}

// resolveParent walks all but the last component of path and returns the
// mapping that holds the final key.
func resolveParent(path Path, m map[string]any) (map[string]any, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}

	if m == nil {
		return nil, fmt.Errorf("root of path %s: %w", path, ErrNotMapping)
	}

	parent := m

	for i := range len(path) - 1 {
		v, ok := parent[path[i]]
		if !ok {
			return nil, &MissingKeyError{Path: path, Key: path[i]}
		}

		sub, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("path %s at %q: %w", path, path[i], ErrNotMapping)
		}

		parent = sub
	}

	return parent, nil
}
