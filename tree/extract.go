package tree

import (
	"iter"
	"maps"
	"slices"
)

// Extract walks an arbitrary nesting of mappings and sequences and yields,
// in depth-first pre-order, every mapping that contains key as one of its
// own keys. Yielded mappings are direct references into v, not copies, so
// mutations through them are visible in the original structure.
//
// A mapping that contains key is yielded and then still descended into, so
// an outer match whose values hold further matches produces all of them:
//
//	Extract("c", map[string]any{"a": map[string]any{"c": 1, "b": map[string]any{"c": 2}}})
//
// yields both the "a" mapping and the "b" mapping.
//
// Sibling keys are visited in sorted order so traversal is deterministic.
// Non-mapping, non-sequence leaves terminate recursion silently. The
// sequence is single-pass; call Extract again to re-traverse.
func Extract(key string, v any) iter.Seq[map[string]any] {
	return func(yield func(map[string]any) bool) {
		extract(key, v, yield)
	}
}

func extract(key string, v any, yield func(map[string]any) bool) bool {
	switch node := v.(type) {
	case map[string]any:
		if _, ok := node[key]; ok {
			if !yield(node) {
				return false
			}
		}

		for _, k := range slices.Sorted(maps.Keys(node)) {
			if !extract(key, node[k], yield) {
				return false
			}
		}
	case []any:
		for _, item := range node {
			if !extract(key, item, yield) {
				return false
			}
		}
	}

	return true
}
