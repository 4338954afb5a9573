//go:build purego

package memkernel

// This file imports only the generic kernels for builds that must avoid
// unsafe word transfers.

import (
	_ "github.com/cwbudde/algo-prim/internal/memkernel/arch/generic"
)
