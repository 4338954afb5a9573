//go:build !purego

package memkernel

// This file imports kernel implementation packages to trigger their init()
// functions, which register implementations with the global registry.

import (
	// Generic implementations (pure Go byte-loop fallback)
	_ "github.com/cwbudde/algo-prim/internal/memkernel/arch/generic"

	// Word-at-a-time implementations
	_ "github.com/cwbudde/algo-prim/internal/memkernel/arch/word"
)
