package tree

// Clone returns a deep copy of a nested mapping. Mapping and sequence
// containers are copied recursively; scalar leaves are shared between the
// copy and the original. Mutating the copy through SetEntry or RemoveKey
// never touches the original.
func Clone(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}

	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = cloneValue(v)
	}

	return out
}

func cloneValue(v any) any {
	switch node := v.(type) {
	case map[string]any:
		return Clone(node)
	case []any:
		out := make([]any, len(node))
		for i, item := range node {
			out[i] = cloneValue(item)
		}

		return out
	default:
		return v
	}
}
