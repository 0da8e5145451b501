package transfer

import (
	"errors"
	"fmt"

	"dict-transfer/tree"
)

var (
	// ErrEmptyDeclaration is returned when a target-name key declares no
	// path at all (an empty sequence, or a fan-out index list with no keys
	// in front of it).
	ErrEmptyDeclaration = errors.New("target declaration has no paths")

	// ErrBadComponent is returned when a declared path component is not a
	// string.
	ErrBadComponent = errors.New("path component is not a string")

	// ErrBadIndex is returned when a fan-out index is not an integer.
	ErrBadIndex = errors.New("fan-out index is not an integer")

	// ErrMissingValue is returned when a multi-path element carries no
	// usable value under the value key.
	ErrMissingValue = errors.New("multi-path element has no value")
)

// Binding is one parsed target declaration: a path into the target tree,
// plus an optional fan-out index list. A non-nil Indices marks a fan-out
// binding, where Path addresses a sub-list that is rebuilt element-wise
// from the declaring element's values.
type Binding struct {
	Path    tree.Path
	Indices []int
}

// IsFanOut reports whether the binding carries a fan-out index list.
func (b Binding) IsFanOut() bool {
	return b.Indices != nil
}

// parseDeclaration interprets the raw value of a target-name key.
//
// A scalar or a flat sequence of scalars declares one path; these are the
// "single" form, written in strict mode by the orchestrator. A sequence of
// sequences declares one binding per inner sequence, where a trailing inner
// sequence of integers becomes the fan-out index list.
func parseDeclaration(raw any) (bindings []Binding, single bool, err error) {
	names := tree.EnsureList(raw, 1)
	if len(names) == 0 {
		return nil, false, ErrEmptyDeclaration
	}

	if !tree.IsSequence(names[0]) {
		path, err := asPath(names)
		if err != nil {
			return nil, false, err
		}

		return []Binding{{Path: path}}, true, nil
	}

	bindings = make([]Binding, 0, len(names))

	for _, rawPath := range names {
		b, err := parseBinding(rawPath)
		if err != nil {
			return nil, false, err
		}

		bindings = append(bindings, b)
	}

	return bindings, false, nil
}

// parseBinding parses one declared path, splitting off a trailing index
// list if present.
func parseBinding(raw any) (Binding, error) {
	seg := tree.EnsureList(raw, 1)
	if len(seg) == 0 {
		return Binding{}, ErrEmptyDeclaration
	}

	last := seg[len(seg)-1]
	if !tree.IsSequence(last) {
		path, err := asPath(seg)
		if err != nil {
			return Binding{}, err
		}

		return Binding{Path: path}, nil
	}

	indices, err := asIndices(tree.EnsureList(last, 1))
	if err != nil {
		return Binding{}, err
	}

	path, err := asPath(seg[:len(seg)-1])
	if err != nil {
		return Binding{}, err
	}

	if len(path) == 0 {
		return Binding{}, ErrEmptyDeclaration
	}

	return Binding{Path: path, Indices: indices}, nil
}

func asPath(seg []any) (tree.Path, error) {
	path := make(tree.Path, 0, len(seg))

	for _, c := range seg {
		key, ok := c.(string)
		if !ok {
			return nil, fmt.Errorf("component %v: %w", c, ErrBadComponent)
		}

		path = append(path, key)
	}

	return path, nil
}

// asIndices coerces a declared index list. JSON decoding produces float64,
// YAML produces int; both are accepted as long as the value is integral.
func asIndices(seg []any) ([]int, error) {
	indices := make([]int, 0, len(seg))

	for _, c := range seg {
		j, ok := asInt(c)
		if !ok {
			return nil, fmt.Errorf("index %v: %w", c, ErrBadIndex)
		}

		indices = append(indices, j)
	}

	return indices, nil
}

func asInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}

		return int(n), true
	default:
		return 0, false
	}
}
