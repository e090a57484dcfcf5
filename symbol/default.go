//go:build cgo && linux

package symbol

import "sync"

// Default returns the process-wide Cache over Process.
var Default = sync.OnceValue(func() *Cache {
	return NewCache(Process())
})
