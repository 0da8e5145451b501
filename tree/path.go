package tree

import "strings"

// Path is an ordered sequence of keys locating a value inside a nested
// mapping: path[0] indexes the root, path[1] the result, and so on until
// the final key names the addressed slot.
type Path []string

// String returns the dot-joined form of the path, e.g. "physics.gravity".
func (p Path) String() string {
	return strings.Join(p, ".")
}

// Parent returns the path without its final component.
func (p Path) Parent() Path {
	if len(p) == 0 {
		return nil
	}

	return p[:len(p)-1]
}

// Clone returns an independent copy of the path.
func (p Path) Clone() Path {
	if p == nil {
		return nil
	}

	out := make(Path, len(p))
	copy(out, p)

	return out
}
