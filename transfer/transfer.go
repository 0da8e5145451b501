package transfer

import (
	"fmt"
	"slices"

	"dict-transfer/internal/common"
	"dict-transfer/tree"
)

// Default keys used to locate bindings inside the source tree.
const (
	DefaultTargetNameKey = "sim_name"
	DefaultValueKey      = "value"
)

// Options configures which keys Transfer looks for inside source elements.
// Zero values fall back to the defaults.
type Options struct {
	// TargetNameKey tags a source element and holds its path declaration.
	TargetNameKey string

	// ValueKey holds the value(s) a tagged element transfers.
	ValueKey string
}

func (o *Options) applyDefaults() {
	if o.TargetNameKey == "" {
		o.TargetNameKey = DefaultTargetNameKey
	}

	if o.ValueKey == "" {
		o.ValueKey = DefaultValueKey
	}
}

// Transfer runs TransferWith using the default keys.
func Transfer(source, target map[string]any) (map[string]any, Report, error) {
	return TransferWith(source, target, Options{})
}

// TransferWith scans source for elements tagged with the target-name key,
// resolves each element's declared path(s), and writes the corresponding
// value(s) into a deep copy of target. Neither source nor target is
// mutated.
//
// Single-path declarations are written in strict mode: a missing target
// key aborts the call, since the author named that location explicitly.
// Multi-path and fan-out writes use the moderate policy: misses are filed
// in the report's Skipped list and processing continues. Type mismatches,
// missing intermediate keys, and malformed declarations always abort.
func TransferWith(source, target map[string]any, opts Options) (map[string]any, Report, error) {
	opts.applyDefaults()

	updated := tree.Clone(target)

	// Own the matches before writing anything: Extract yields live
	// references into source, and the bindings they carry are read after
	// collection.
	elements := slices.Collect(tree.Extract(opts.TargetNameKey, source))

	var report Report

	for _, elem := range elements {
		err := transferElement(elem, updated, &report, opts)
		if err != nil {
			return nil, Report{}, err
		}
	}

	return updated, report, nil
}

func transferElement(elem, target map[string]any, report *Report, opts Options) error {
	bindings, single, err := parseDeclaration(elem[opts.TargetNameKey])
	if err != nil {
		return err
	}

	if single {
		return transferSingle(elem, bindings[0], target, report, opts)
	}

	rawValue, ok := elem[opts.ValueKey]
	if !ok {
		return fmt.Errorf("element declaring %s: %w", bindings[0].Path, ErrMissingValue)
	}

	values := tree.EnsureList(rawValue, 1)
	if len(values) == 0 {
		return fmt.Errorf("element declaring %s: %w", bindings[0].Path, ErrMissingValue)
	}

	// Values pair positionally with paths only when the counts match;
	// otherwise every path receives the first value.
	paired := len(bindings) == len(values)
	first, _ := common.First(values)

	for i, b := range bindings {
		value := first

		switch {
		case b.IsFanOut():
			value = gatherFanOut(values, b.Indices)
		case paired:
			value = values[i]
		}

		wrote, err := tree.SetEntry(value, b.Path, target, tree.ModeModerate)
		if err != nil {
			return err
		}

		report.record(b.Path, wrote)
	}

	return nil
}

// transferSingle handles the flat declaration form. The declared path is
// recorded even when the element carries no value; a value, when present,
// is written strictly.
func transferSingle(elem map[string]any, b Binding, target map[string]any, report *Report, opts Options) error {
	report.Updated = append(report.Updated, b.Path)

	rawValue, ok := elem[opts.ValueKey]
	if !ok {
		return nil
	}

	_, err := tree.SetEntry(rawValue, b.Path, target, tree.ModeStrict)

	return err
}

// gatherFanOut rebuilds the sub-list addressed by a fan-out binding: one
// entry per declared index, read from values with out-of-range indices
// clamped to the last value, each unwrapped before storage.
func gatherFanOut(values []any, indices []int) []any {
	out := make([]any, 0, len(indices))

	for _, j := range indices {
		v, ok := common.At(values, j)
		if !ok {
			v, _ = common.Last(values)
		}

		out = append(out, tree.Unwrap(v))
	}

	return out
}
