package generic

import (
	"github.com/cwbudde/algo-prim/internal/cpu"
	"github.com/cwbudde/algo-prim/internal/memkernel/registry"
)

// init registers the generic (pure Go) kernels with the memkernel registry.
//
// Generic kernels serve as the baseline fallback when no fast kernels are
// available or when ForceGeneric is enabled for testing.
//
// Priority: 0 (lowest - used only when no fast alternatives are available)
func init() {
	registry.Global.Register(registry.KernelSet{
		Name:     "generic",
		Level:    cpu.KernelGeneric,
		Priority: 0,

		CopyForward:  CopyForward,
		CopyBackward: CopyBackward,
		Fill:         Fill,
		Compare:      Compare,
	})
}
