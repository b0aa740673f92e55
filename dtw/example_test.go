package dtw_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/seqalign/dtw"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	A perfect subsequence match: b repeats one element of a.
//	  a = [1, 2, 3]
//	  b = [1, 2, 2, 3]
//
// Options:
//   - ReturnPath = true, MemoryMode = FullMatrix; defaults otherwise.
//
// Effect:
//
//	The repeated 2 warps onto a single element at zero cost; the path
//	visits four cells.
//
// Complexity: O(N·M) time, O(N·M) memory.
func ExampleDTW() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.ReturnPath = true

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\npath=%v\n", dist, path)
	// Output:
	// distance=0
	// path=[{0 0} {1 1} {1 2} {2 3}]
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_slopePenalty
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	The same pair as ExampleDTW, but every non-diagonal step now costs
//	one unit: the single warp is charged exactly once.
//
// Complexity: O(N·M) time, O(N·M) memory.
func ExampleDTW_slopePenalty() {
	a := []float64{1, 2, 3}
	b := []float64{1, 2, 2, 3}
	opts := dtw.DefaultOptions()
	opts.SlopePenalty = 1.0

	dist, _, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f\n", dist)
	// Output:
	// distance=1
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_window
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Strict diagonal-only alignment (Window = 0) with mismatched
//	lengths: cell (n,m) lies outside the band, so no path exists and
//	the distance is +Inf.
//
// Complexity: O(N·M) time, O(N·M) memory.
func ExampleDTW_window() {
	a := []float64{2, 3, 4}
	b := []float64{2, 3, 4, 5}
	opts := dtw.DefaultOptions()
	opts.Window = 0

	dist, _, _ := dtw.DTW(a, b, &opts)
	if math.IsInf(dist, 1) {
		fmt.Println("distance=+Inf")
	}
	// Output:
	// distance=+Inf
}

// //////////////////////////////////////////////////////////////////////////////
// ExampleDTW_twoRows
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	Distance-only comparison in O(M) memory: the missing 6 in b is
//	absorbed by warping 6 onto its nearest neighbor.
//	  a = [5, 6, 7]
//	  b = [5, 7]
//
// Complexity: O(N·M) time, O(M) memory.
func ExampleDTW_twoRows() {
	a := []float64{5, 6, 7}
	b := []float64{5, 7}
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.TwoRows

	dist, path, err := dtw.DTW(a, b, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("distance=%.0f path=%v\n", dist, path)
	// Output:
	// distance=1 path=[]
}
