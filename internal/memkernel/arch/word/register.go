//go:build !purego

package word

import (
	"github.com/cwbudde/algo-prim/internal/cpu"
	"github.com/cwbudde/algo-prim/internal/memkernel/registry"
)

// init registers the word-at-a-time kernels with the memkernel registry.
//
// Word kernels transfer aligned runs in machine-word chunks and are
// preferred over the generic byte loop whenever fast kernels are not
// disabled via ForceGeneric.
//
// Priority: 10
func init() {
	registry.Global.Register(registry.KernelSet{
		Name:     "word",
		Level:    cpu.KernelWord,
		Priority: 10,

		CopyForward:  CopyForward,
		CopyBackward: CopyBackward,
		Fill:         Fill,
		Compare:      Compare,
	})
}
