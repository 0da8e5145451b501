package transfer

import "dict-transfer/tree"

// Report accumulates the outcome of one Transfer call. It replaces the
// console diagnostics an interactive caller would otherwise need: Updated
// drives highlighting of changed target locations, Skipped surfaces
// moderate-mode misses without aborting the run.
type Report struct {
	// Updated holds one path per write performed, in processing order,
	// plus the declared path of any single-path element that carried no
	// value key.
	Updated []tree.Path

	// Skipped holds the paths whose final key was absent from the target
	// and that were therefore left unset under the moderate policy.
	Skipped []tree.Path
}

// record files a path under Updated or Skipped depending on whether the
// write happened.
func (r *Report) record(p tree.Path, wrote bool) {
	if wrote {
		r.Updated = append(r.Updated, p)
	} else {
		r.Skipped = append(r.Skipped, p)
	}
}

// HasSkips reports whether any moderate-mode write was skipped.
func (r *Report) HasSkips() bool {
	return len(r.Skipped) > 0
}
