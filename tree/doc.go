// Package tree provides generic primitives over nested mappings:
// arbitrary nestings of map[string]any and []any, as produced by
// yaml or json decoding into untyped values.
//
// Key capabilities:
//   - Recursive key search over mappings and sequences (Extract, RemoveKey)
//   - Path-addressed reads and writes with a configurable missing-key
//     policy (GetEntry, SetEntry, Mode)
//   - Scalar-to-sequence normalization (EnsureList)
//   - Deep copies that never alias the input (Clone)
//
// All functions operate on the trees they are given; the only functions
// that mutate are SetEntry and RemoveKey, and both say so.
package tree
