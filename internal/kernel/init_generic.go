//go:build !amd64 && !arm64 && !purego

package kernel

// This file imports backend packages for architectures without a SIMD
// backend. algo-vecmath still applies (it carries its own portable floor).

import (
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/generic"
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/vecmath"
)
