// Package memkernel dispatches block-memory operations to the best kernel
// variant registered for the current CPU.
//
// The capability check is resolved once, on the first operation, by looking
// up the highest-priority compatible entry in the registry; the transfer
// loops themselves never branch on CPU features. The purego build tag
// restricts the registry to the generic byte-loop kernels.
package memkernel

import (
	"sync"

	"github.com/cwbudde/algo-prim/internal/cpu"
	"github.com/cwbudde/algo-prim/internal/memkernel/registry"
)

var (
	resolveOnce sync.Once
	resolveMu   sync.Mutex
	active      *registry.KernelSet
)

// kernels returns the kernel set selected for the current CPU, resolving
// the registry lookup on first use.
func kernels() *registry.KernelSet {
	resolveMu.Lock()
	resolveOnce.Do(func() {
		active = registry.Global.Lookup(cpu.DetectFeatures())
		if active == nil {
			panic("memkernel: no kernel registered")
		}
	})
	k := active
	resolveMu.Unlock()
	return k
}

// ActiveName returns the name of the kernel set selected for the current
// CPU. Intended for diagnostics.
func ActiveName() string {
	return kernels().Name
}

// ActiveLevel returns the kernel level selected for the current CPU.
// Intended for diagnostics.
func ActiveLevel() cpu.KernelLevel {
	return kernels().Level
}

// ResetSelection clears the cached kernel selection so the next operation
// re-resolves against the registry. This is intended for testing with
// forced CPU features.
func ResetSelection() {
	resolveMu.Lock()
	resolveOnce = sync.Once{}
	active = nil
	resolveMu.Unlock()
}

// CopyForward copies n bytes from src to dst, lowest address first.
func CopyForward(dst, src []byte, n int) {
	kernels().CopyForward(dst, src, n)
}

// CopyBackward copies n bytes from src to dst, highest address first.
func CopyBackward(dst, src []byte, n int) {
	kernels().CopyBackward(dst, src, n)
}

// Fill stores c into each of the first n bytes of dst.
func Fill(dst []byte, c byte, n int) {
	kernels().Fill(dst, c, n)
}

// Compare lexicographically compares the first n bytes of a and b.
func Compare(a, b []byte, n int) int {
	return kernels().Compare(a, b, n)
}
