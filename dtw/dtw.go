package dtw

import "math"

// DTW computes the Dynamic Time Warping distance between a and b.
// Returns (distance, path, error). A nil opts means DefaultOptions().
//
// Algorithm outline:
//  1. Let n = len(a), m = len(b). Seed D[0][0] = 0 and +Inf elsewhere
//     on row 0 / column 0.
//  2. For every in-band cell (i,j):
//     cost    = |a[i-1] - b[j-1]|
//     D[i][j] = cost + min( D[i-1][j]   + SlopePenalty,
//                           D[i][j-1]   + SlopePenalty,
//                           D[i-1][j-1] )
//     Out-of-band cells (|i-j| > Window when constrained) stay +Inf.
//  3. distance = D[n][m]; a strict window with mismatched lengths can
//     legitimately leave it +Inf.
//  4. With ReturnPath (FullMatrix only) the warping path is recovered
//     by walking minimal predecessors from (n,m) to (1,1); ties prefer
//     the diagonal, then the vertical step. The path is nil when the
//     distance is +Inf.
//
// Errors:
//   - ErrEmptyInput      — either input is empty.
//   - ErrBadInput        — Window < UnlimitedWindow or unknown MemoryMode.
//   - ErrPathNeedsMatrix — ReturnPath=true with TwoRows or NoMemory.
//
// Complexity: O(n·m) time; memory O(n·m) (FullMatrix), O(m) (TwoRows),
// O(m) with a scalar carry (NoMemory).
func DTW(a, b []float64, opts *Options) (float64, []Coord, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return 0, nil, ErrEmptyInput
	}
	if o.Window < UnlimitedWindow {
		return 0, nil, ErrBadInput
	}
	switch o.MemoryMode {
	case FullMatrix, TwoRows, NoMemory:
	default:
		return 0, nil, ErrBadInput
	}
	if o.ReturnPath && o.MemoryMode != FullMatrix {
		return 0, nil, ErrPathNeedsMatrix
	}

	switch o.MemoryMode {
	case TwoRows:
		return distTwoRows(a, b, o), nil, nil
	case NoMemory:
		return distOneRow(a, b, o), nil, nil
	}

	mx := fillFull(a, b, o)
	distance := mx.at(n, m)

	var path []Coord
	if o.ReturnPath && !math.IsInf(distance, 1) {
		path = backtrack(mx, o)
	}

	return distance, path, nil
}

// costMatrix is the fully materialized (n+1)x(m+1) DP table in one
// flat buffer indexed by i*(m+1)+j.
type costMatrix struct {
	n, m  int
	cells []float64
}

// at returns cell (i,j).
func (mx *costMatrix) at(i, j int) float64 {
	return mx.cells[i*(mx.m+1)+j]
}

// set writes cell (i,j).
func (mx *costMatrix) set(i, j int, v float64) {
	mx.cells[i*(mx.m+1)+j] = v
}

// inBand reports whether cell (i,j) satisfies the Sakoe-Chiba band.
func inBand(i, j, window int) bool {
	if window == UnlimitedWindow {
		return true
	}
	d := i - j
	if d < 0 {
		d = -d
	}

	return d <= window
}

// fillFull builds the complete cost matrix for a and b under o.
func fillFull(a, b []float64, o Options) *costMatrix {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	mx := &costMatrix{
		n:     n,
		m:     m,
		cells: make([]float64, (n+1)*(m+1)),
	}
	for idx := range mx.cells {
		mx.cells[idx] = inf
	}
	mx.set(0, 0, 0)

	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				continue // stays +Inf
			}
			cost := math.Abs(a[i-1] - b[j-1])
			ins := mx.at(i-1, j) + o.SlopePenalty
			del := mx.at(i, j-1) + o.SlopePenalty
			match := mx.at(i-1, j-1)
			mx.set(i, j, cost+min3(ins, del, match))
		}
	}

	return mx
}

// distTwoRows runs the same recurrence over a rolling pair of rows.
func distTwoRows(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		prev[j] = inf
	}

	for i := 1; i <= n; i++ {
		curr[0] = inf
		for j := 1; j <= m; j++ {
			if !inBand(i, j, o.Window) {
				curr[j] = inf
				continue
			}
			cost := math.Abs(a[i-1] - b[j-1])
			curr[j] = cost + min3(prev[j]+o.SlopePenalty, curr[j-1]+o.SlopePenalty, prev[j-1])
		}
		prev, curr = curr, prev
	}

	return prev[m]
}

// distOneRow runs the recurrence in a single row with a scalar
// diagonal carry: keep holds D[i-1][j] while diag holds D[i-1][j-1].
func distOneRow(a, b []float64, o Options) float64 {
	n, m := len(a), len(b)
	inf := math.Inf(1)

	row := make([]float64, m+1)
	for j := 1; j <= m; j++ {
		row[j] = inf
	}

	var diag, keep float64
	for i := 1; i <= n; i++ {
		diag = row[0] // D[i-1][0]
		row[0] = inf  // D[i][0]
		for j := 1; j <= m; j++ {
			keep = row[j] // D[i-1][j]
			if !inBand(i, j, o.Window) {
				row[j] = inf
			} else {
				cost := math.Abs(a[i-1] - b[j-1])
				row[j] = cost + min3(keep+o.SlopePenalty, row[j-1]+o.SlopePenalty, diag)
			}
			diag = keep
		}
	}

	return row[m]
}

// backtrack recovers the warping path by walking minimal predecessors
// from (n,m) down to (1,1). Ties prefer the diagonal step, then the
// vertical one, so degenerate optima always yield the same path.
// The result is reversed in place to read start-to-end.
func backtrack(mx *costMatrix, o Options) []Coord {
	i, j := mx.n, mx.m
	path := make([]Coord, 0, mx.n+mx.m)
	path = append(path, Coord{I: i - 1, J: j - 1})

	for i > 1 || j > 1 {
		var (
			di, dj int
			best   float64
			seen   bool
		)
		if i > 1 && j > 1 {
			best, di, dj, seen = mx.at(i-1, j-1), -1, -1, true
		}
		if i > 1 {
			if v := mx.at(i-1, j) + o.SlopePenalty; !seen || v < best {
				best, di, dj, seen = v, -1, 0, true
			}
		}
		if j > 1 {
			if v := mx.at(i, j-1) + o.SlopePenalty; !seen || v < best {
				di, dj = 0, -1
			}
		}
		i += di
		j += dj
		path = append(path, Coord{I: i - 1, J: j - 1})
	}

	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}

	return path
}

// min3 returns the minimum of three float64 values.
func min3(a, b, c float64) float64 {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}

	return c
}
