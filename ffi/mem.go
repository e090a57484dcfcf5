package ffi

import "unsafe"

// Word reads the pointer-sized word at addr.
func Word(addr uintptr) uintptr {
	return *(*uintptr)(unsafe.Pointer(addr))
}
