package layout

import "unsafe"

// Read returns the T stored at base+offset.
//
// base must address memory that does not move: host or C memory, or a Go
// heap object kept alive by the caller. Never a Go stack address.
func Read[T any](base, offset uintptr) T {
	return *(*T)(unsafe.Pointer(base + offset))
}

// Write stores v at base+offset. base has the same constraints as for Read.
func Write[T any](base, offset uintptr, v T) {
	*(*T)(unsafe.Pointer(base + offset)) = v
}
