package tree

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML implements custom YAML unmarshaling for Path.
// Accepts either a single scalar (a one-key path) or a sequence of scalars.
func (p *Path) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var key string

		err := node.Decode(&key)
		if err != nil {
			return err
		}

		if key != "" {
			*p = Path{key}
		} else {
			*p = Path{}
		}

		return nil

	case yaml.SequenceNode:
		var keys []string

		err := node.Decode(&keys)
		if err != nil {
			return err
		}

		*p = keys

		return nil

	default:
		return fmt.Errorf("expected scalar or sequence for path, got %v", node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for Path.
// Outputs a single scalar if the path has one key, otherwise a sequence.
func (p Path) MarshalYAML() (any, error) {
	if len(p) == 1 {
		return p[0], nil
	}

	return []string(p), nil
}
