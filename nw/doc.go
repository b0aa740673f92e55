// Package nw computes optimal global alignments between pairs of token
// sequences with the Needleman-Wunsch algorithm, plus a normalized
// similarity metric derived from the alignment path.
//
// 🚀 What is Needleman-Wunsch?
//
//	NW finds the best end-to-end alignment of two ordered sequences by
//	dynamic programming over match/mismatch/gap scores. It is widely
//	used in:
//	  • Biological sequence comparison (DNA, RNA, protein)
//	  • Fuzzy record matching & deduplication
//	  • Token-level text diffing & plagiarism detection
//	  • Log / event-stream correlation
//
// ✨ Key features:
//   - exact O(N·M) full-matrix fill with a flat single-buffer table
//   - deterministic traceback (Align > Delete > Insert on ties)
//   - default identity scoring (match +1, mismatch -1, gap -1) or an
//     explicit pairwise ScoreTable with symmetric (x,y)/(y,x) lookup
//   - derived similarity metric combining score density and match
//     coverage, with a -1.0 no-match sentinel
//   - all-pairs batch mode (AlignSet), optionally parallel via Workers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/seqalign/nw"
//
//	opts := nw.DefaultOptions()
//	opts.GapScore = -2                 // harsher gaps
//	res, err := nw.Align(a, b, &opts)  // res.Steps, res.Score, res.Similarity
//
//	all, err := nw.AlignSet(seqs, nil) // every unordered pair, defaults
//
// Performance:
//
//   - Time:   O(N·M) per pair, all pairs independent
//   - Memory: O(N·M) transient per pair; only steps and scores survive
//
// See example_test.go for runnable scenarios.
package nw
