// Package dtw defines options, memory modes and path coordinates for
// Dynamic Time Warping.
package dtw

import "errors"

var (
	// ErrEmptyInput indicates one or both input sequences are empty.
	ErrEmptyInput = errors.New("dtw: input sequences must be non-empty")

	// ErrBadInput indicates an option value outside its documented domain
	// (currently: Window < UnlimitedWindow or an unknown MemoryMode).
	ErrBadInput = errors.New("dtw: invalid option value")

	// ErrPathNeedsMatrix indicates ReturnPath=true with a rolling memory
	// mode; path recovery requires the full matrix.
	ErrPathNeedsMatrix = errors.New("dtw: ReturnPath requires MemoryMode=FullMatrix")
)

// UnlimitedWindow disables the Sakoe-Chiba band constraint.
const UnlimitedWindow = -1

// MemoryMode controls how DTW stores its DP matrix.
//
//   - FullMatrix — keep the entire (n+1)x(m+1) matrix.
//     Supports distance + full backtrace of the warping path.
//     Memory: O(n·m).
//
//   - TwoRows — keep only the current and previous row.
//     Memory: O(m); the path cannot be recovered.
//
//   - NoMemory — keep a single row plus a diagonal carry.
//     The tightest footprint; distance only.
type MemoryMode int

const (
	// FullMatrix mode: store all rows, support path recovery.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling pair of rows, distance only.
	TwoRows

	// NoMemory mode: single row with diagonal carry, distance only.
	NoMemory
)

// Coord is one cell of the warping path: indices into the input
// sequences (I into a, J into b).
type Coord struct {
	I, J int
}

// Options configures Dynamic Time Warping.
//
// Fields:
//   - Window       — maximum deviation |i-j| allowed (Sakoe-Chiba band).
//     UnlimitedWindow (-1) disables the constraint; 0 restricts the path
//     to the exact diagonal; values < -1 are rejected with ErrBadInput.
//   - SlopePenalty — additive cost of insertion/deletion steps
//     (controls locality bias).
//   - ReturnPath   — backtrack and return the optimal warping path;
//     requires MemoryMode=FullMatrix.
//   - MemoryMode   — FullMatrix, TwoRows or NoMemory storage.
type Options struct {
	Window       int
	SlopePenalty float64
	ReturnPath   bool
	MemoryMode   MemoryMode
}

// DefaultOptions returns the canonical configuration: unlimited window,
// no slope penalty, no path, full matrix.
func DefaultOptions() Options {
	return Options{
		Window:       UnlimitedWindow,
		SlopePenalty: 0,
		ReturnPath:   false,
		MemoryMode:   FullMatrix,
	}
}
