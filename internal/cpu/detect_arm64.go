//go:build arm64

package cpu

import (
	"runtime"
	"unsafe"

	"golang.org/x/sys/cpu"
)

// detectFeaturesImpl performs CPU feature detection on arm64 systems.
//
// NEON (Advanced SIMD) is part of the ARMv8-A baseline, but the flag is
// still read from the OS feature registers where available.
func detectFeaturesImpl() Features {
	return Features{
		HasNEON:      cpu.ARM64.HasASIMD || runtime.GOOS == "darwin",
		Architecture: runtime.GOARCH,
		WordBytes:    int(unsafe.Sizeof(uintptr(0))),
	}
}
