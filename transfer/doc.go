// Package transfer moves values between two differently-shaped nested
// mappings: a source tree of UI-like elements, each optionally tagged with
// one or more target paths, and a target tree of defaults for a downstream
// consumer such as a simulation input file.
//
// Key capabilities:
//   - Discover tagged elements anywhere in the source tree
//   - Single-path, multi-path, and fan-out bindings (one element feeding
//     several target paths, or one aggregated list split element-wise)
//   - Positional pairing of values with paths when counts match,
//     broadcast of the first value otherwise
//   - A Report of every path written and every path skipped under the
//     moderate missing-key policy
//
// The target tree handed to Transfer is never mutated; all writes land in
// a deep copy.
package transfer
