// Package cpu provides CPU feature detection for memory kernel selection.
//
// This package detects the processor capabilities relevant to block-memory
// transfers (wide registers, enhanced string moves, SIMD extensions) and
// caches the results for efficient querying.
//
// Detection is performed lazily on the first call to DetectFeatures() and the
// results are cached for subsequent calls using sync.Once for thread-safety.
package cpu

import (
	"sync"
)

// KernelLevel represents a class of block-memory kernel implementation.
// Higher numeric values indicate more capable kernels, but every level
// above KernelGeneric is still gated by a compatibility check via Supports.
type KernelLevel int

const (
	// KernelGeneric indicates the pure Go byte-loop fallback.
	KernelGeneric KernelLevel = iota

	// KernelWord indicates word-at-a-time transfers on aligned runs.
	KernelWord
)

// String returns a human-readable name for the kernel level.
func (k KernelLevel) String() string {
	switch k {
	case KernelGeneric:
		return "Generic"
	case KernelWord:
		return "Word"
	default:
		return "Unknown"
	}
}

// Features describes CPU capabilities relevant to kernel selection.
//
// The SIMD and string-move flags below are diagnostic only: the word
// kernel needs nothing beyond a native word size, so no registered
// kernel level gates on them yet. A vectorized kernel level would
// consult them in Supports.
type Features struct {
	// x86/amd64 features
	HasSSE2 bool // Streaming SIMD Extensions 2 (baseline for amd64)
	HasAVX2 bool // Advanced Vector Extensions 2
	HasERMS bool // Enhanced REP MOVSB/STOSB (fast string moves)

	// ARM features
	HasNEON bool // ARM Advanced SIMD (NEON)

	// Control flags
	ForceGeneric bool // Disable all fast kernels (for testing/debugging)

	// Runtime information
	Architecture string // runtime.GOARCH (e.g., "amd64", "arm64")
	WordBytes    int    // natural machine word size in bytes
}

var (
	// detectedFeatures holds the cached CPU features detected on this system.
	detectedFeatures Features

	// detectOnce ensures feature detection runs exactly once, thread-safely.
	detectOnce sync.Once

	// detectMutex serializes access to detectOnce/detectedFeatures.
	detectMutex sync.Mutex

	// forcedFeatures allows overriding actual hardware detection for testing.
	forcedFeatures *Features

	// forcedMutex protects forcedFeatures from concurrent access during testing.
	forcedMutex sync.RWMutex
)

// DetectFeatures returns the CPU features available on the current system.
//
// Detection is performed once on the first call and cached for subsequent calls.
// This function is thread-safe and can be called concurrently from multiple goroutines.
func DetectFeatures() Features {
	forcedMutex.RLock()
	forced := forcedFeatures
	forcedMutex.RUnlock()

	if forced != nil {
		return *forced
	}

	detectMutex.Lock()
	detectOnce.Do(func() {
		detectedFeatures = detectFeaturesImpl()
	})
	features := detectedFeatures
	detectMutex.Unlock()

	return features
}

// HasFastStringMove returns true if the CPU advertises enhanced string moves.
func HasFastStringMove() bool {
	return DetectFeatures().HasERMS
}

// SetForcedFeatures overrides CPU feature detection with the specified features.
// This is intended for testing purposes only.
func SetForcedFeatures(f Features) {
	forcedMutex.Lock()
	defer forcedMutex.Unlock()
	forced := f
	forcedFeatures = &forced
}

// ResetDetection clears any forced features and the detection cache.
// This is intended for testing purposes.
func ResetDetection() {
	forcedMutex.Lock()
	forcedFeatures = nil
	forcedMutex.Unlock()

	detectMutex.Lock()
	detectOnce = sync.Once{}
	detectedFeatures = Features{}
	detectMutex.Unlock()
}

// Supports returns true if the given CPU features support the specified
// kernel level. This function is used by the memkernel registry to determine
// implementation compatibility.
func Supports(features Features, level KernelLevel) bool {
	if features.ForceGeneric {
		return level == KernelGeneric
	}

	switch level {
	case KernelGeneric:
		return true
	case KernelWord:
		// Word transfers only need natural word loads and stores, which
		// every supported architecture provides. The level is still gated
		// so that ForceGeneric and the purego build can exclude it.
		return true
	default:
		return false
	}
}
