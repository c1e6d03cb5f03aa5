package blas

import "github.com/cwbudde/algo-blas/internal/kernel"

// Backend describes one kernel backend eligible on the current CPU.
type Backend struct {
	// Name identifies the backend (e.g., "generic", "vek", "vecmath").
	Name string

	// Priority is the per-entry-point resolution priority; higher wins.
	Priority int

	// SIMDLevel is the backend's SIMD requirement ("None" for backends that
	// dispatch internally).
	SIMDLevel string
}

// Info returns the kernel backends compatible with the current CPU in
// resolution order. It is a diagnostic aid for verifying which backends can
// serve entry points; it has no influence on dispatch.
func Info() []Backend {
	infos := kernel.Backends()
	out := make([]Backend, 0, len(infos))
	for _, b := range infos {
		out = append(out, Backend{
			Name:      b.Name,
			Priority:  b.Priority,
			SIMDLevel: b.SIMDLevel,
		})
	}
	return out
}
