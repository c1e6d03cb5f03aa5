// Package registry provides the backend registry for BLAS level-1 kernels.
//
// The registry-based dispatch system allows multiple kernel backends (generic,
// vek, vecmath, ...) to coexist. Backends register themselves via init()
// functions, and the kernel package resolves the active entry-point table at
// runtime based on detected CPU features.
//
// Unlike a whole-backend selection scheme, resolution is performed per entry
// point: a backend may bind only the entry points its underlying library
// provides, and the remaining ones fall through to lower-priority backends.
// The generic backend binds every entry point and acts as the floor.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-blas/internal/cpu"
)

// Funcs holds one function per (operation, element kind) kernel entry point.
//
// Entry points follow the BLAS naming scheme: the leading letter selects the
// element kind (s = float32, d = float64, c = complex64, z = complex128;
// sc/dz for complex reductions returning a real value). In every signature,
// n is an element count and incX/incY are element strides; slices are bases
// of caller-owned storage, never copied. A backend leaves a field nil when it
// has no implementation for that entry point.
//
// Conventions fixed by this contract:
//   - Complex asum/nrm2 entry points (Scasum, Dzasum, Scnrm2, Dznrm2) return
//     the plain real component type; the dispatch layer wraps the value.
//   - Conjugated and unconjugated dot are distinct entry points for complex
//     kinds (Cdotu/Cdotc, Zdotu/Zdotc); real kinds have a single dot entry
//     point serving both.
//   - Iamax entry points return an int index (0-based, first maximum wins);
//     the dispatch layer converts to uint.
//   - Rot exists for real kinds only.
type Funcs struct {
	// Copy: y[i] = x[i] for i in 0..n.
	Scopy func(n int, x []float32, incX int, y []float32, incY int)
	Dcopy func(n int, x []float64, incX int, y []float64, incY int)
	Ccopy func(n int, x []complex64, incX int, y []complex64, incY int)
	Zcopy func(n int, x []complex128, incX int, y []complex128, incY int)

	// Swap: exchange x[i] and y[i] for i in 0..n.
	Sswap func(n int, x []float32, incX int, y []float32, incY int)
	Dswap func(n int, x []float64, incX int, y []float64, incY int)
	Cswap func(n int, x []complex64, incX int, y []complex64, incY int)
	Zswap func(n int, x []complex128, incX int, y []complex128, incY int)

	// Scal: x[i] *= alpha for i in 0..n.
	Sscal func(n int, alpha float32, x []float32, incX int)
	Dscal func(n int, alpha float64, x []float64, incX int)
	Cscal func(n int, alpha complex64, x []complex64, incX int)
	Zscal func(n int, alpha complex128, x []complex128, incX int)

	// Axpy: y[i] += alpha * x[i] for i in 0..n.
	Saxpy func(n int, alpha float32, x []float32, incX int, y []float32, incY int)
	Daxpy func(n int, alpha float64, x []float64, incX int, y []float64, incY int)
	Caxpy func(n int, alpha complex64, x []complex64, incX int, y []complex64, incY int)
	Zaxpy func(n int, alpha complex128, x []complex128, incX int, y []complex128, incY int)

	// Dot: sum(x[i] * y[i]). Cdotu/Zdotu are unconjugated; Cdotc/Zdotc
	// conjugate x[i] before multiplying.
	Sdot  func(n int, x []float32, incX int, y []float32, incY int) float32
	Ddot  func(n int, x []float64, incX int, y []float64, incY int) float64
	Cdotu func(n int, x []complex64, incX int, y []complex64, incY int) complex64
	Zdotu func(n int, x []complex128, incX int, y []complex128, incY int) complex128
	Cdotc func(n int, x []complex64, incX int, y []complex64, incY int) complex64
	Zdotc func(n int, x []complex128, incX int, y []complex128, incY int) complex128

	// Asum: sum of element magnitudes. Complex kinds use the L1 proxy
	// |re| + |im| per element and return a plain real value.
	Sasum  func(n int, x []float32, incX int) float32
	Dasum  func(n int, x []float64, incX int) float64
	Scasum func(n int, x []complex64, incX int) float32
	Dzasum func(n int, x []complex128, incX int) float64

	// Nrm2: Euclidean norm sqrt(sum(|x[i]|^2)). Complex kinds use the true
	// modulus and return a plain real value.
	Snrm2  func(n int, x []float32, incX int) float32
	Dnrm2  func(n int, x []float64, incX int) float64
	Scnrm2 func(n int, x []complex64, incX int) float32
	Dznrm2 func(n int, x []complex128, incX int) float64

	// Iamax: 0-based index of the maximum-magnitude element (|re| + |im|
	// for complex kinds). Forward scan, first strict improvement wins.
	// The result for n < 1 is unspecified.
	Isamax func(n int, x []float32, incX int) int
	Idamax func(n int, x []float64, incX int) int
	Icamax func(n int, x []complex64, incX int) int
	Izamax func(n int, x []complex128, incX int) int

	// Rot: planar Givens rotation, x'[i] = c*x[i] + s*y[i],
	// y'[i] = -s*x[i] + c*y[i]. Real kinds only.
	Srot func(n int, x []float32, incX int, y []float32, incY int, c, s float32)
	Drot func(n int, x []float64, incX int, y []float64, incY int, c, s float64)
}

// Entry represents a registered kernel backend.
type Entry struct {
	// Name is a human-readable identifier for this backend (e.g., "generic", "vek").
	Name string

	// SIMDLevel indicates the SIMD instruction set required for this backend.
	// Backends whose underlying library performs its own CPU dispatch register
	// with SIMDNone and rely on Priority alone.
	SIMDLevel cpu.SIMDLevel

	// Priority determines resolution order when multiple compatible backends
	// bind the same entry point. Higher priority wins. Suggested priorities:
	//   - generic: 0
	//   - vecmath: 10
	//   - vek: 20
	Priority int

	Funcs
}

// Registry manages the registration and resolution of kernel backends.
type Registry struct {
	mu      sync.RWMutex
	entries []Entry
	sorted  bool
}

// Global is the registry used by all kernel backends.
var Global = &Registry{}

// Register adds a backend to the registry. It is intended to be called from
// the init() function of an arch package.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Compatible returns the registered backends compatible with the given CPU
// features, in descending priority order.
func (r *Registry) Compatible(features cpu.Features) []Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []Entry
	for _, entry := range r.entries {
		if cpu.Supports(features, entry.SIMDLevel) {
			out = append(out, entry)
		}
	}
	return out
}

// Resolve builds the active entry-point table for the given CPU features.
//
// For each entry point, the highest-priority compatible backend that binds it
// wins. Fields left nil by every compatible backend stay nil; a complete
// generic backend registration prevents that in practice.
func (r *Registry) Resolve(features cpu.Features) Funcs {
	var t Funcs
	for _, e := range r.Compatible(features) {
		mergeFuncs(&t, &e.Funcs)
	}
	return t
}

// mergeFuncs fills nil fields of dst from src.
func mergeFuncs(dst, src *Funcs) {
	if dst.Scopy == nil {
		dst.Scopy = src.Scopy
	}
	if dst.Dcopy == nil {
		dst.Dcopy = src.Dcopy
	}
	if dst.Ccopy == nil {
		dst.Ccopy = src.Ccopy
	}
	if dst.Zcopy == nil {
		dst.Zcopy = src.Zcopy
	}
	if dst.Sswap == nil {
		dst.Sswap = src.Sswap
	}
	if dst.Dswap == nil {
		dst.Dswap = src.Dswap
	}
	if dst.Cswap == nil {
		dst.Cswap = src.Cswap
	}
	if dst.Zswap == nil {
		dst.Zswap = src.Zswap
	}
	if dst.Sscal == nil {
		dst.Sscal = src.Sscal
	}
	if dst.Dscal == nil {
		dst.Dscal = src.Dscal
	}
	if dst.Cscal == nil {
		dst.Cscal = src.Cscal
	}
	if dst.Zscal == nil {
		dst.Zscal = src.Zscal
	}
	if dst.Saxpy == nil {
		dst.Saxpy = src.Saxpy
	}
	if dst.Daxpy == nil {
		dst.Daxpy = src.Daxpy
	}
	if dst.Caxpy == nil {
		dst.Caxpy = src.Caxpy
	}
	if dst.Zaxpy == nil {
		dst.Zaxpy = src.Zaxpy
	}
	if dst.Sdot == nil {
		dst.Sdot = src.Sdot
	}
	if dst.Ddot == nil {
		dst.Ddot = src.Ddot
	}
	if dst.Cdotu == nil {
		dst.Cdotu = src.Cdotu
	}
	if dst.Zdotu == nil {
		dst.Zdotu = src.Zdotu
	}
	if dst.Cdotc == nil {
		dst.Cdotc = src.Cdotc
	}
	if dst.Zdotc == nil {
		dst.Zdotc = src.Zdotc
	}
	if dst.Sasum == nil {
		dst.Sasum = src.Sasum
	}
	if dst.Dasum == nil {
		dst.Dasum = src.Dasum
	}
	if dst.Scasum == nil {
		dst.Scasum = src.Scasum
	}
	if dst.Dzasum == nil {
		dst.Dzasum = src.Dzasum
	}
	if dst.Snrm2 == nil {
		dst.Snrm2 = src.Snrm2
	}
	if dst.Dnrm2 == nil {
		dst.Dnrm2 = src.Dnrm2
	}
	if dst.Scnrm2 == nil {
		dst.Scnrm2 = src.Scnrm2
	}
	if dst.Dznrm2 == nil {
		dst.Dznrm2 = src.Dznrm2
	}
	if dst.Isamax == nil {
		dst.Isamax = src.Isamax
	}
	if dst.Idamax == nil {
		dst.Idamax = src.Idamax
	}
	if dst.Icamax == nil {
		dst.Icamax = src.Icamax
	}
	if dst.Izamax == nil {
		dst.Izamax = src.Izamax
	}
	if dst.Srot == nil {
		dst.Srot = src.Srot
	}
	if dst.Drot == nil {
		dst.Drot = src.Drot
	}
}

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and debugging.
func (r *Registry) ListEntries() []Entry {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *Registry) sortByPriority() {
	// Simple insertion sort (registry is small, ~3-5 entries)
	for i := 1; i < len(r.entries); i++ {
		key := r.entries[i]
		j := i - 1
		for j >= 0 && r.entries[j].Priority < key.Priority {
			r.entries[j+1] = r.entries[j]
			j--
		}
		r.entries[j+1] = key
	}
}
