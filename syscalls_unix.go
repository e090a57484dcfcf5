//go:build unix

package interpose

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

const (
	mprotectExec = unix.PROT_EXEC
	mprotectRX   = unix.PROT_READ | unix.PROT_EXEC
	mprotectRWX  = unix.PROT_READ | unix.PROT_WRITE | unix.PROT_EXEC
)

// mprotect changes the protection of every page overlapping the size bytes
// at addr.
func mprotect(addr uintptr, size int, flags int) error {
	pageSize := uintptr(unix.Getpagesize())

	// Round address down to page boundary.
	pageStart := addr &^ (pageSize - 1)

	// Round up to cover complete pages.
	regionSize := (addr - pageStart + uintptr(size) + pageSize - 1) &^ (pageSize - 1)

	region := unsafe.Slice((*byte)(unsafe.Pointer(pageStart)), regionSize)
	return unix.Mprotect(region, flags)
}
