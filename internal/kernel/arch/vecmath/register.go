package vecmath

import (
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernel/registry"
)

// init registers the algo-vecmath-backed kernels with the kernel registry.
//
// The library carries its own per-arch dispatch with a pure Go floor, so the
// backend registers at SIMDNone and competes on priority alone. Only the
// float64 entry points with an exact library counterpart are bound; in
// particular Daxpy stays unbound (see vecmath.go).
//
// Priority: 10 (between generic and vek)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "vecmath",
		SIMDLevel: cpu.SIMDNone,
		Priority:  10,

		Funcs: registry.Funcs{
			Ddot:  Ddot,
			Dnrm2: Dnrm2,
			Dscal: Dscal,
		},
	})
}
