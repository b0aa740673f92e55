package nw

// alignMatrix is the fully materialized (n+1)x(m+1) DP table for one
// pair of sequences. Cells live in a single flat buffer indexed by
// i*(m+1)+j; no per-row allocations, no pointer-linked structure.
//
// Invariant: after fillMatrix returns, cell (i,j) holds the maximum
// achievable alignment score for the prefixes a[0..i) and b[0..j).
type alignMatrix struct {
	n, m  int
	cells []int
}

// at returns cell (i,j). Bounds are the caller's responsibility.
func (mx *alignMatrix) at(i, j int) int {
	return mx.cells[i*(mx.m+1)+j]
}

// set writes cell (i,j).
func (mx *alignMatrix) set(i, j, v int) {
	mx.cells[i*(mx.m+1)+j] = v
}

// fillMatrix builds the Needleman-Wunsch table for a and b under o.
//
// Base cases:
//
//	H[0][0] = 0
//	H[i][0] = i * GapScore    for i = 1..n
//	H[0][j] = j * GapScore    for j = 1..m
//
// Recurrence for i = 1..n, j = 1..m:
//
//	H[i][j] = max( H[i-1][j-1] + Score(a[i-1], b[j-1]),
//	               H[i-1][j]   + GapScore,
//	               H[i][j-1]   + GapScore )
//
// Errors:
//   - ErrEmptySequence — when either sequence has zero length; the
//     recurrence is undefined for a degenerate dimension.
//
// Complexity: O(n·m) time, O(n·m) memory.
func fillMatrix(a, b []string, o Options) (*alignMatrix, error) {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return nil, ErrEmptySequence
	}

	mx := &alignMatrix{
		n:     n,
		m:     m,
		cells: make([]int, (n+1)*(m+1)),
	}

	// Seed row 0 and column 0 with the cumulative gap penalty.
	for i := 1; i <= n; i++ {
		mx.set(i, 0, i*o.GapScore)
	}
	for j := 1; j <= m; j++ {
		mx.set(0, j, j*o.GapScore)
	}

	// Fill row by row; each cell reads three already-finalized cells.
	var diag, del, ins int
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			diag = mx.at(i-1, j-1) + o.Score(a[i-1], b[j-1])
			del = mx.at(i-1, j) + o.GapScore
			ins = mx.at(i, j-1) + o.GapScore
			mx.set(i, j, max3(diag, del, ins))
		}
	}

	return mx, nil
}

// max3 returns the maximum of three int values.
func max3(a, b, c int) int {
	if a > b {
		if a > c {
			return a
		}
		return c
	}
	if b > c {
		return b
	}
	return c
}
