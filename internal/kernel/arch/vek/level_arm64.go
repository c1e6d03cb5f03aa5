//go:build arm64

package vek

import "github.com/cwbudde/algo-blas/internal/cpu"

// NEON is mandatory on arm64, so the vek backend is effectively always
// eligible there unless ForceGeneric is set.
const simdLevel = cpu.SIMDNEON
