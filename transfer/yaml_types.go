package transfer

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"dict-transfer/internal/common"
	"dict-transfer/tree"
)

// --- Binding YAML methods ---

// UnmarshalYAML implements custom YAML unmarshaling for Binding.
// Accepts:
//   - Single scalar: "gravity" (one-key path)
//   - Sequence of scalars: [physics, gravity]
//   - Sequence with trailing index list: [physics, axes, [0, 2]] (fan-out)
func (b *Binding) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var key string

		err := node.Decode(&key)
		if err != nil {
			return err
		}

		*b = Binding{Path: tree.Path{key}}

		return nil

	case yaml.SequenceNode:
		var raw []any

		err := node.Decode(&raw)
		if err != nil {
			return err
		}

		parsed, err := parseBinding(raw)
		if err != nil {
			return err
		}

		*b = parsed

		return nil

	default:
		return fmt.Errorf("expected scalar or sequence for binding, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Binding.
// Outputs the most compact accepted form: a bare scalar for a one-key
// plain path, otherwise a sequence, with the index list re-appended for
// fan-out bindings.
func (b Binding) MarshalYAML() (any, error) {
	if !b.IsFanOut() {
		if common.IsSingle(b.Path) {
			return b.Path[0], nil
		}

		return []string(b.Path), nil
	}

	return b.marshalSequence(), nil
}

// marshalSequence is the sequence form of a binding: its path keys, with
// the index list re-appended for fan-outs. Inside a BindingList this form
// is mandatory; collapsing a one-key path to a scalar there would read
// back as a component of one flat path.
func (b Binding) marshalSequence() []any {
	out := make([]any, 0, len(b.Path)+1)
	for _, key := range b.Path {
		out = append(out, key)
	}

	if b.IsFanOut() {
		out = append(out, b.Indices)
	}

	return out
}

// --- BindingList YAML methods ---

// BindingList is a full target declaration as it appears under a
// target-name key. It accepts every shape parseDeclaration accepts:
//   - Single scalar: "gravity"
//   - Flat sequence of scalars: [physics, gravity] (one path)
//   - Sequence of sequences: [[x], [y, [0, 2]]] (multi-path, fan-out)
type BindingList []Binding

// UnmarshalYAML implements custom YAML unmarshaling for BindingList.
func (l *BindingList) UnmarshalYAML(node *yaml.Node) error {
	var raw any

	err := node.Decode(&raw)
	if err != nil {
		return err
	}

	bindings, _, err := parseDeclaration(raw)
	if err != nil {
		return err
	}

	*l = bindings

	return nil
}

// MarshalYAML implements custom YAML marshaling for BindingList.
// A single plain binding collapses to its own compact form; everything
// else round-trips as a sequence of bindings.
func (l BindingList) MarshalYAML() (any, error) {
	if common.IsSingle(l) && !l[0].IsFanOut() {
		return l[0].MarshalYAML()
	}

	out := make([]any, 0, len(l))
	for _, b := range l {
		out = append(out, b.marshalSequence())
	}

	return out, nil
}
