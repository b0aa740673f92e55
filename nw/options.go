package nw

// DEFAULTS - single source of truth for zero-configuration behavior.
const (
	// DefaultMatchScore rewards two literally equal tokens.
	DefaultMatchScore = 1

	// DefaultMismatchScore penalizes two unequal tokens.
	DefaultMismatchScore = -1

	// DefaultGapScore penalizes consuming a token against a gap.
	// The penalty is strictly linear: opening and extending a gap
	// cost the same.
	DefaultGapScore = -1

	// DefaultWorkers disables batch parallelism (sequential AlignSet).
	DefaultWorkers = 0
)

// Options configures global alignment.
//
// Fields:
//   - MatchScore    — score for x == y when the table has no entry.
//   - MismatchScore — score for x != y when the table has no entry.
//   - GapScore      — linear per-token gap penalty (seed of row/column 0
//     and cost of every Delete/Insert step).
//   - Table         — optional pairwise score overrides; consulted as
//     (x,y) then (y,x) before the identity rule.
//   - Workers       — upper bound on concurrent pair computations in
//     AlignSet; values ≤ 1 mean sequential. Align ignores it.
//
// Options are read-only during a computation and safe to share across
// concurrent alignments.
type Options struct {
	MatchScore    int
	MismatchScore int
	GapScore      int
	Table         ScoreTable
	Workers       int
}

// DefaultOptions returns the canonical configuration:
// match +1, mismatch -1, gap -1, no table, sequential batch.
func DefaultOptions() Options {
	return Options{
		MatchScore:    DefaultMatchScore,
		MismatchScore: DefaultMismatchScore,
		GapScore:      DefaultGapScore,
		Table:         nil,
		Workers:       DefaultWorkers,
	}
}

// Score is the scoring model: the compatibility score of tokens x and y.
//
// Resolution order:
//  1. Table[(x,y)] when present.
//  2. Table[(y,x)] when present (undirected-symmetric convention).
//  3. MatchScore when x == y, MismatchScore otherwise.
//
// Pure function of its arguments and the fixed configuration; no side
// effects.
//
// Complexity: O(1).
func (o Options) Score(x, y string) int {
	if o.Table != nil {
		if s, ok := o.Table[TokenPair{X: x, Y: y}]; ok {
			return s
		}
		if s, ok := o.Table[TokenPair{X: y, Y: x}]; ok {
			return s
		}
	}
	if x == y {
		return o.MatchScore
	}

	return o.MismatchScore
}
