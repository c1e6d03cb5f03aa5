package generic

import (
	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernel/registry"
)

// init registers the generic (pure Go) kernels with the kernel registry.
//
// The generic backend is the only one required to bind every entry point; it
// is the floor that per-entry-point resolution falls through to when no
// accelerated backend covers an operation or element kind.
//
// Priority: 0 (lowest - used only when no accelerated alternative is bound)
func init() {
	registry.Global.Register(registry.Entry{
		Name:      "generic",
		SIMDLevel: cpu.SIMDNone,
		Priority:  0,

		Funcs: registry.Funcs{
			Scopy: Scopy,
			Dcopy: Dcopy,
			Ccopy: Ccopy,
			Zcopy: Zcopy,

			Sswap: Sswap,
			Dswap: Dswap,
			Cswap: Cswap,
			Zswap: Zswap,

			Sscal: Sscal,
			Dscal: Dscal,
			Cscal: Cscal,
			Zscal: Zscal,

			Saxpy: Saxpy,
			Daxpy: Daxpy,
			Caxpy: Caxpy,
			Zaxpy: Zaxpy,

			Sdot:  Sdot,
			Ddot:  Ddot,
			Cdotu: Cdotu,
			Zdotu: Zdotu,
			Cdotc: Cdotc,
			Zdotc: Zdotc,

			Sasum:  Sasum,
			Dasum:  Dasum,
			Scasum: Scasum,
			Dzasum: Dzasum,

			Snrm2:  Snrm2,
			Dnrm2:  Dnrm2,
			Scnrm2: Scnrm2,
			Dznrm2: Dznrm2,

			Isamax: Isamax,
			Idamax: Idamax,
			Icamax: Icamax,
			Izamax: Izamax,

			Srot: Srot,
			Drot: Drot,
		},
	})
}
