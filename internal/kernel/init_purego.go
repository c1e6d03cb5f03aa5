//go:build purego

package kernel

// Under the purego tag only the pure Go reference kernels are registered.

import (
	_ "github.com/cwbudde/algo-blas/internal/kernel/arch/generic"
)
