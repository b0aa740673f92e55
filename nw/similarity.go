package nw

// Similarity derives a single normalized similarity value from an
// alignment of a and b: its step sequence and raw score. A nil opts
// means DefaultOptions(); pass the configuration the alignment was
// computed with, since table overrides feed the metric.
//
// Construction:
//   - Over all Align steps whose tokens are literally equal,
//     numCorrect counts the positions and disCorrect accumulates their
//     configured scores.
//   - simAlign = score/disCorrect (0 when disCorrect == 0) measures
//     score density on truly matching positions.
//   - simSignificance = numCorrect/len(steps) measures the share of
//     the alignment those matches cover.
//   - The result is simAlign * simSignificance.
//
// When numCorrect == 0 the function returns NoMatchSimilarity: with no
// literal match there is no basis for an estimate.
//
// The metric is a ratio, not a probability: it may exceed 1.0 or go
// negative. Only NoMatchSimilarity is reserved.
//
// Complexity: O(len(steps)) time, O(1) memory.
func Similarity(a, b []string, steps []Step, score int, opts *Options) float64 {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	var numCorrect, disCorrect int
	for _, st := range steps {
		if st.Op != OpAlign {
			continue
		}
		if a[st.X] == b[st.Y] {
			numCorrect++
			disCorrect += o.Score(a[st.X], b[st.Y])
		}
	}

	if numCorrect == 0 {
		return NoMatchSimilarity
	}

	simAlign := 0.0
	if disCorrect != 0 {
		simAlign = float64(score) / float64(disCorrect)
	}
	simSignificance := float64(numCorrect) / float64(len(steps))

	return simAlign * simSignificance
}
