//go:build amd64

package vek

import "github.com/cwbudde/algo-blas/internal/cpu"

// vek's amd64 SIMD path requires AVX2; below that its pure Go fallback has
// no edge over the generic backend.
const simdLevel = cpu.SIMDAVX2
