package tree

// RemoveKey deletes every entry with key from mappings at any depth within
// v, recursing through sequence elements without mutating the sequence
// containers themselves. The matching entry is deleted before its siblings
// are descended into, and the deleted value is never descended into, so
// traversal never walks structures it is about to drop.
//
// Non-mapping, non-sequence leaves are ignored.
func RemoveKey(key string, v any) {
	switch node := v.(type) {
	case map[string]any:
		delete(node, key)

		for _, child := range node {
			RemoveKey(key, child)
		}
	case []any:
		for _, item := range node {
			RemoveKey(key, item)
		}
	}
}
