// Package registry provides the implementation registry for memory kernels.
//
// The registry-based dispatch system allows multiple kernel variants
// (generic byte loop, word-at-a-time, future SIMD) to coexist. The best
// kernel for the current CPU is selected exactly once, not inside the
// transfer loops.
//
// Kernel implementation packages register themselves via init() functions,
// and the memkernel package uses the registry to select the best entry
// based on detected CPU features.
package registry

import (
	"sync"

	"github.com/cwbudde/algo-prim/internal/cpu"
)

// KernelSet represents a registered kernel variant for block-memory operations.
//
// Each entry contains typed function pointers for all block operations at a
// specific kernel level. All fields must be populated; the engine never
// mixes operations across entries.
type KernelSet struct {
	// Name is a human-readable identifier for this implementation
	// (e.g., "generic", "word").
	Name string

	// Level indicates the kernel class required for this implementation.
	Level cpu.KernelLevel

	// Priority determines selection order when multiple compatible
	// implementations exist. Higher priority implementations are preferred.
	// Suggested priorities:
	//   - Generic byte loop (KernelGeneric): 0
	//   - Word-at-a-time (KernelWord): 10
	Priority int

	// CopyForward copies n bytes from src to dst, low address first.
	// Safe when the ranges are disjoint, or overlap with dst below src.
	CopyForward func(dst, src []byte, n int)

	// CopyBackward copies n bytes from src to dst, high address first.
	// Safe when the ranges overlap with dst above src.
	CopyBackward func(dst, src []byte, n int)

	// Fill stores c into each of the first n bytes of dst.
	Fill func(dst []byte, c byte, n int)

	// Compare lexicographically compares the first n bytes of a and b as
	// unsigned values. The sign of the result carries the first byte
	// difference; 0 means the prefixes are equal.
	Compare func(a, b []byte, n int) int
}

// KernelRegistry manages the registration and lookup of kernel variants.
//
// Implementations register themselves via init() functions. At runtime,
// Lookup() selects the highest-priority implementation compatible with the
// current CPU.
type KernelRegistry struct {
	mu      sync.RWMutex
	entries []KernelSet
	sorted  bool // true if entries are sorted by priority (descending)
}

// Global is the default registry instance used by the block-memory engine.
var Global = &KernelRegistry{}

// Register adds a kernel variant to the registry.
//
// This function is typically called from init() functions in kernel
// implementation packages. It is safe to call concurrently, but all
// registrations should complete before the first call to Lookup().
func (r *KernelRegistry) Register(entry KernelSet) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = append(r.entries, entry)
	r.sorted = false
}

// Lookup finds the best kernel variant for the given CPU features.
//
// Returns the highest-priority entry compatible with the CPU. If no
// compatible implementations are found, returns nil (which should never
// happen if a generic fallback is registered).
//
// This function is thread-safe and performs lazy sorting of entries on first call.
func (r *KernelRegistry) Lookup(features cpu.Features) *KernelSet {
	r.mu.Lock()
	if !r.sorted {
		r.sortByPriority()
		r.sorted = true
	}
	r.mu.Unlock()

	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.entries {
		entry := &r.entries[i]
		if cpu.Supports(features, entry.Level) {
			return entry
		}
	}

	return nil // Should never happen if generic fallback is registered
}

// sortByPriority sorts entries by priority in descending order.
// Must be called with r.mu held (write lock).
func (r *KernelRegistry) sortByPriority() {
	// Simple insertion sort (registry is small, 2-3 entries)
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

// ListEntries returns a copy of all registered entries, sorted by priority.
// This function is primarily intended for testing and diagnostics.
func (r *KernelRegistry) ListEntries() []KernelSet {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]KernelSet, len(r.entries))
	copy(entries, r.entries)
	return entries
}

// Reset clears all registered entries.
// This function is intended for testing purposes only.
func (r *KernelRegistry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.entries = nil
	r.sorted = false
}
