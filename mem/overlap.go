package mem

import "unsafe"

// base returns the address of the first byte of s. Two Go slices can
// overlap without either being re-sliceable from the other, so direction
// selection in Move has to compare raw addresses. The uintptr values are
// used only for ordering and overlap arithmetic, never dereferenced.
func base(s []byte) uintptr {
	return uintptr(unsafe.Pointer(unsafe.SliceData(s)))
}
