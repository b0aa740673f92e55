package nw

import (
	"fmt"

	"golang.org/x/sync/errgroup"
)

// AlignSet aligns every unordered pair of seqs under one shared
// configuration and returns the results keyed by PairKey{I, J}, I < J.
// A nil opts means DefaultOptions().
//
// For k input sequences the map holds exactly k*(k-1)/2 entries, one
// per combination; no pair is computed twice and no sequence is
// compared to itself. Fewer than two sequences yield an empty map.
//
// The batch is all-or-nothing: every pair is validated up front in
// combination order, and the first pair containing an empty sequence
// aborts the whole call with that pair's ErrEmptySequence (wrapped with
// the pair indices; errors.Is still matches). No partial map is ever
// returned.
//
// When o.Workers > 1, pairs are computed concurrently by at most
// Workers goroutines. Pairs share no mutable state — each owns its
// transient matrix, and the configuration is read-only — so the output
// is bit-identical to the sequential mode regardless of completion
// order.
//
// Complexity: O(k²) pairs, each O(n·m) in its own lengths.
func AlignSet(seqs [][]string, opts *Options) (map[PairKey]Result, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	k := len(seqs)
	keys := make([]PairKey, 0, k*(k-1)/2)
	for i := 0; i < k; i++ {
		for j := i + 1; j < k; j++ {
			if len(seqs[i]) == 0 || len(seqs[j]) == 0 {
				return nil, fmt.Errorf("nw: pair (%d,%d): %w", i, j, ErrEmptySequence)
			}
			keys = append(keys, PairKey{I: i, J: j})
		}
	}

	// Accumulate by pair ordinal so concurrent workers never contend
	// on the map.
	results := make([]Result, len(keys))

	if o.Workers > 1 {
		var g errgroup.Group
		g.SetLimit(o.Workers)
		for idx, key := range keys {
			idx, key := idx, key
			g.Go(func() error {
				res, err := Align(seqs[key.I], seqs[key.J], &o)
				if err != nil {
					return fmt.Errorf("nw: pair (%d,%d): %w", key.I, key.J, err)
				}
				results[idx] = res

				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}
	} else {
		for idx, key := range keys {
			res, err := Align(seqs[key.I], seqs[key.J], &o)
			if err != nil {
				return nil, fmt.Errorf("nw: pair (%d,%d): %w", key.I, key.J, err)
			}
			results[idx] = res
		}
	}

	out := make(map[PairKey]Result, len(keys))
	for idx, key := range keys {
		out[key] = results[idx]
	}

	return out, nil
}
