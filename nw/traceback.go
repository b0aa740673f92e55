package nw

// traceback reconstructs one optimal alignment path by walking the
// filled matrix from (n,m) back to (0,0). o must be the same
// configuration the matrix was filled with.
//
// At an interior cell the branch whose score reproduces H[i][j] is
// taken; when several branches tie, the diagonal (Align) branch wins
// over Delete, and Delete wins over Insert. The order is fixed so that
// degenerate optima always yield the same path.
//
// On the boundary i == 0 the walk can only move left (Insert runs);
// on j == 0 only up (Delete runs).
//
// Steps are collected in reverse traversal order and reversed in place
// before returning, so the result reads from the start of both
// sequences to their ends.
//
// Complexity: O(n+m) time, O(n+m) memory.
func traceback(mx *alignMatrix, a, b []string, o Options) []Step {
	steps := make([]Step, 0, mx.n+mx.m)

	i, j := mx.n, mx.m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && mx.at(i, j) == mx.at(i-1, j-1)+o.Score(a[i-1], b[j-1]):
			steps = append(steps, Step{Op: OpAlign, X: i - 1, Y: j - 1})
			i--
			j--
		case i > 0 && mx.at(i, j) == mx.at(i-1, j)+o.GapScore:
			steps = append(steps, Step{Op: OpDelete, X: i - 1, Y: -1})
			i--
		default:
			// By the recurrence one of the three branches must hold;
			// this also covers the i == 0 boundary.
			steps = append(steps, Step{Op: OpInsert, X: -1, Y: j - 1})
			j--
		}
	}

	// Reverse in place: emission order is end-to-start.
	for l, r := 0, len(steps)-1; l < r; l, r = l+1, r-1 {
		steps[l], steps[r] = steps[r], steps[l]
	}

	return steps
}
