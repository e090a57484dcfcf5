package interpose

import "golang.org/x/sys/unix"

// Trampolines are mapped in the low 2GB, next to the non-PIE executable, so
// RIP-relative operands moved out of it stay within reach.
const map_32bit = unix.MAP_32BIT
