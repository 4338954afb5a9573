//go:build !amd64 && !arm64

package cpu

import (
	"runtime"
	"unsafe"
)

// detectFeaturesImpl is the fallback for other architectures.
//
// Returns a Features struct with all architecture-specific flags set to
// false; word-at-a-time kernels remain available everywhere.
func detectFeaturesImpl() Features {
	return Features{
		Architecture: runtime.GOARCH,
		WordBytes:    int(unsafe.Sizeof(uintptr(0))),
	}
}
