package nw

// Align computes an optimal global alignment of a and b.
// Returns the alignment path, its score and the derived similarity
// metric bundled in a Result.
//
// A nil opts means DefaultOptions(). The inputs are read-only and are
// never retained beyond the call.
//
// Contracts:
//   - len(a) > 0 and len(b) > 0, otherwise ErrEmptySequence.
//   - Deterministic: identical arguments produce an identical Result
//     (fixed tie-break order in the traceback, no randomness).
//
// Example:
//
//	res, err := nw.Align([]string{"A", "T", "C"}, []string{"A", "C"}, nil)
//
// Complexity: O(n·m) time, O(n·m) transient memory; only the step
// sequence survives the call.
func Align(a, b []string, opts *Options) (Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	mx, err := fillMatrix(a, b, o)
	if err != nil {
		return Result{}, err
	}

	steps := traceback(mx, a, b, o)
	score := mx.at(mx.n, mx.m)

	return Result{
		Steps:      steps,
		Score:      score,
		Similarity: Similarity(a, b, steps, score, &o),
	}, nil
}
