// Package kernel resolves the active BLAS kernel entry-point table.
//
// Backend packages under arch/ register themselves with the registry via
// init(); the build-tagged init_*.go files in this package decide which
// backends are compiled in per architecture. The table is resolved once,
// lazily, against the detected CPU features.
package kernel

import (
	"sync"

	"github.com/cwbudde/algo-blas/internal/cpu"
	"github.com/cwbudde/algo-blas/internal/kernel/registry"
)

var (
	active      registry.Funcs
	resolveOnce sync.Once
)

// Active returns the resolved entry-point table for the current CPU.
//
// Resolution happens once on the first call; callers must not retain the
// pointer across registry resets (test-only concern).
func Active() *registry.Funcs {
	resolveOnce.Do(func() {
		active = registry.Global.Resolve(cpu.DetectFeatures())
	})
	return &active
}

// BackendInfo describes one registered backend eligible on this CPU.
type BackendInfo struct {
	// Name is the backend identifier (e.g., "generic", "vek", "vecmath").
	Name string

	// Priority is the backend's resolution priority (higher wins per entry point).
	Priority int

	// SIMDLevel is the human-readable SIMD requirement of the backend.
	SIMDLevel string
}

// Backends returns the backends compatible with the current CPU in
// resolution order (descending priority). Intended for diagnostics.
func Backends() []BackendInfo {
	entries := registry.Global.Compatible(cpu.DetectFeatures())
	out := make([]BackendInfo, 0, len(entries))
	for _, e := range entries {
		out = append(out, BackendInfo{
			Name:      e.Name,
			Priority:  e.Priority,
			SIMDLevel: e.SIMDLevel.String(),
		})
	}
	return out
}
