// Package nw defines the step, result and score-table types for
// Needleman-Wunsch global alignment.
package nw

import "errors"

// ErrEmptySequence indicates one or both input sequences are empty.
// The global-alignment recurrence is undefined for a zero-length
// dimension, so this is the only failure the package reports.
var ErrEmptySequence = errors.New("nw: input sequences must be non-empty")

// Gap is the marker substituted for a missing token when an alignment
// is materialized as token pairs (see Result.Pairs).
const Gap = "-"

// NoMatchSimilarity is the sentinel returned by Similarity when no
// aligned position holds literally equal tokens: there is no basis for
// a similarity estimate. It is the only reserved value of the metric.
const NoMatchSimilarity = -1.0

// StepOp tags one step of an alignment path.
//
//   - OpAlign  — one token consumed from each sequence (match or substitution).
//   - OpDelete — one token consumed from sequence A only (gap opened in B).
//   - OpInsert — one token consumed from sequence B only (gap opened in A).
type StepOp uint8

const (
	// OpAlign consumes a[X] and b[Y] together.
	OpAlign StepOp = iota

	// OpDelete consumes a[X] against a gap.
	OpDelete

	// OpInsert consumes b[Y] against a gap.
	OpInsert
)

// String returns the conventional name of the operation.
func (op StepOp) String() string {
	switch op {
	case OpAlign:
		return "Align"
	case OpDelete:
		return "Delete"
	case OpInsert:
		return "Insert"
	default:
		return "Unknown"
	}
}

// Step is one move of an alignment path: a tagged value over the three
// StepOp variants. X indexes sequence A and is -1 for OpInsert; Y
// indexes sequence B and is -1 for OpDelete.
//
// Read left to right, a step sequence covers every position of both
// input sequences exactly once, with indices monotonically
// non-decreasing.
type Step struct {
	Op StepOp
	X  int
	Y  int
}

// TokenPair keys one ScoreTable entry: an ordered pair of token values.
type TokenPair struct {
	X, Y string
}

// ScoreTable overrides pairwise token scores. Lookup is attempted in
// declared order (x,y), then reversed (y,x); when both are absent the
// default identity rule of Options applies. A nil table is equivalent
// to an empty one.
//
// The table is read-only once the alignment starts; callers must not
// mutate it concurrently with Align or AlignSet.
type ScoreTable map[TokenPair]int

// Result is the immutable outcome of one pairwise alignment.
//
//   - Steps      — the optimal alignment path, start of both sequences first.
//   - Score      — the alignment score H[n][m] of the DP matrix.
//   - Similarity — the normalized similarity metric (see Similarity);
//     NoMatchSimilarity when no aligned position matched literally.
type Result struct {
	Steps      []Step
	Score      int
	Similarity float64
}

// Pairs materializes the alignment as aligned token pairs, substituting
// Gap for the sequence that contributed no token at a step. The pairs
// read from the start of both sequences to their ends; len(pairs) equals
// len(r.Steps). a and b must be the sequences the result was computed from.
//
// Complexity: O(len(Steps)) time and space.
func (r Result) Pairs(a, b []string) [][2]string {
	out := make([][2]string, len(r.Steps))
	for i, st := range r.Steps {
		switch st.Op {
		case OpAlign:
			out[i] = [2]string{a[st.X], b[st.Y]}
		case OpDelete:
			out[i] = [2]string{a[st.X], Gap}
		case OpInsert:
			out[i] = [2]string{Gap, b[st.Y]}
		}
	}

	return out
}

// PairKey identifies one comparison within a batch: the unordered pair
// of input indices (I, J) with I < J.
type PairKey struct {
	I, J int
}
