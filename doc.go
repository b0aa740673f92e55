// Package seqalign is your in-memory toolkit for aligning ordered
// sequences — from global token alignment to time-series warping.
//
// 🚀 What is seqalign?
//
//	A small, deterministic, dependency-light library that brings together:
//		• nw/  — Needleman-Wunsch global alignment of token sequences:
//		  full DP matrix, deterministic traceback, score tables,
//		  a derived similarity metric and all-pairs batch mode
//		• dtw/ — Dynamic Time Warping of numeric time series:
//		  Sakoe-Chiba windows, slope penalties, rolling memory modes
//
// ✨ Why choose seqalign?
//
//   - Deterministic – fixed tie-break orders, no randomness, bit-identical reruns
//   - Rock-solid guarantees – strict sentinel errors, in-code contracts
//   - Pure Go core – no cgo; testify for tests, errgroup for batch fan-out
//   - Small API – one entry point per algorithm, options with documented defaults
//
// Quick ASCII example:
//
//	    A T C        A aligns A, T deleted, C aligns C
//	    A - C        score 1 under the default +1/-1/-1 model
//
// Dive into nw/doc.go and dtw/doc.go for features, contracts and
// runnable examples.
//
//	go get github.com/katalvlaran/seqalign
package seqalign
