package nw_test

import (
	"testing"

	"github.com/katalvlaran/seqalign/nw"
)

// alphabet used by all benchmark inputs; small and repetitive on
// purpose so alignments contain matches, substitutions and gaps.
var benchTokens = []string{"A", "C", "G", "T"}

// benchSequence builds a deterministic pseudo-random sequence of length n.
func benchSequence(n, seed int) []string {
	seq := make([]string, n)
	for i := 0; i < n; i++ {
		seq[i] = benchTokens[(i*31+seed*17)%len(benchTokens)]
	}

	return seq
}

// benchmarkAlign runs Align on sequences of lengths n and m.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkAlign(b *testing.B, n, m int, opts nw.Options) {
	a := benchSequence(n, 1)
	bSeq := benchSequence(m, 2)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := nw.Align(a, bSeq, &opts); err != nil {
			b.Fatalf("Align failed: %v", err)
		}
	}
}

// BenchmarkAlign_Small benchmarks a 100×100 pair under default scoring.
func BenchmarkAlign_Small(b *testing.B) {
	benchmarkAlign(b, 100, 100, nw.DefaultOptions())
}

// BenchmarkAlign_Medium benchmarks a 500×500 pair under default scoring.
func BenchmarkAlign_Medium(b *testing.B) {
	benchmarkAlign(b, 500, 500, nw.DefaultOptions())
}

// BenchmarkAlign_Skewed benchmarks a strongly length-skewed 100×1000 pair.
func BenchmarkAlign_Skewed(b *testing.B) {
	benchmarkAlign(b, 100, 1000, nw.DefaultOptions())
}

// BenchmarkAlign_WithTable benchmarks the table-lookup scoring path.
func BenchmarkAlign_WithTable(b *testing.B) {
	opts := nw.DefaultOptions()
	opts.Table = nw.ScoreTable{
		{X: "A", Y: "G"}: 2,
		{X: "C", Y: "T"}: 2,
	}
	benchmarkAlign(b, 200, 200, opts)
}

// benchmarkAlignSet runs AlignSet over k sequences of length n each.
func benchmarkAlignSet(b *testing.B, k, n int, opts nw.Options) {
	seqs := make([][]string, k)
	for i := range seqs {
		seqs[i] = benchSequence(n, i)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := nw.AlignSet(seqs, &opts); err != nil {
			b.Fatalf("AlignSet failed: %v", err)
		}
	}
}

// BenchmarkAlignSet_Sequential benchmarks 10 sequences pairwise, one worker.
func BenchmarkAlignSet_Sequential(b *testing.B) {
	benchmarkAlignSet(b, 10, 200, nw.DefaultOptions())
}

// BenchmarkAlignSet_Parallel4 benchmarks the same corpus with 4 workers.
func BenchmarkAlignSet_Parallel4(b *testing.B) {
	opts := nw.DefaultOptions()
	opts.Workers = 4
	benchmarkAlignSet(b, 10, 200, opts)
}
