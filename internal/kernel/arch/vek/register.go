//go:build amd64 || arm64

package vek

import (
	"github.com/cwbudde/algo-blas/internal/kernel/registry"
)

// init registers the vek-backed kernels with the kernel registry.
//
// Only the entry points with a vek counterpart are bound; everything else
// resolves to lower-priority backends.
//
// Priority: 20 (highest - SIMD-accelerated via viterin/vek)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "vek",
		SIMDLevel: simdLevel,
		Priority:  20,

		Funcs: registry.Funcs{
			Sdot:  Sdot,
			Ddot:  Ddot,
			Snrm2: Snrm2,
			Dnrm2: Dnrm2,
			Sscal: Sscal,
			Dscal: Dscal,
		},
	})
}
