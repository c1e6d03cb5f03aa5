//go:build arm64 && !purego

package kernel

// This file imports arm64-eligible backend packages to trigger their init()
// functions, which register kernels with the global registry.

import (
	// Generic kernels (pure Go floor)
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/generic"

	// Accelerated real-kind backends
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/vecmath"
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/vek"
)
