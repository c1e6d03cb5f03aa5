package blas

import "math"

// Benchmark sizes shared across all benchmark files
var benchSizes = []struct {
	name string
	size int
}{
	{"16", 16},
	{"64", 64},
	{"256", 256},
	{"1K", 1024},
	{"4K", 4096},
	{"16K", 16384},
}

// Test helper functions shared across all test files

func closeEnough64(a, b float64) bool {
	const epsilon = 1e-14
	if a == b {
		return true
	}
	diff := math.Abs(a - b)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(a), math.Abs(b)) < epsilon
}

func closeEnough32(a, b float32) bool {
	const epsilon = 1e-6
	if a == b {
		return true
	}
	fa, fb := float64(a), float64(b)
	diff := math.Abs(fa - fb)
	if a == 0 || b == 0 {
		return diff < epsilon
	}
	return diff/math.Max(math.Abs(fa), math.Abs(fb)) < epsilon
}

func closeEnoughSlice64(a, b []float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !closeEnough64(a[i], b[i]) {
			return false
		}
	}
	return true
}

func closeEnoughSlice32(a, b []float32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !closeEnough32(a[i], b[i]) {
			return false
		}
	}
	return true
}

func equalSlices[T comparable](a, b []T) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
