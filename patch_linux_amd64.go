package interpose

import (
	"fmt"
	"sync"
	"unsafe"

	"github.com/apex/log"
)

// InlinePatcher overwrites the first instructions of host functions with a
// jump. It's safe to use from multiple goroutines, but a function being
// patched must not be running.
type InlinePatcher struct {
	mu      sync.Mutex
	protect func(addr uintptr, size int, flags int) error
}

// NewInlinePatcher returns a Patcher that rewrites code in place.
func NewInlinePatcher() *InlinePatcher {
	return &InlinePatcher{protect: mprotect}
}

func (p *InlinePatcher) Patch(target, entry uintptr, bind func(original uintptr)) error {
	if target == 0 || entry == 0 {
		return fmt.Errorf("invalid patch %#x -> %#x", target, entry)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	original, n, err := buildTrampoline(target)
	if err != nil {
		return err
	}

	prologue := unsafe.Slice((*byte)(unsafe.Pointer(target)), n)
	if listing, err := movedListing(prologue, target); err == nil {
		log.WithField("trampoline", fmt.Sprintf("%#x", original)).Debugf("moved prologue:\n%s", listing)
	}

	bind(original)

	err = p.protect(target, n, mprotectRWX)
	if err != nil {
		return err
	}
	defer func() {
		// The jump is already in place, so the hook works either way.
		if err := p.protect(target, n, mprotectRX); err != nil {
			log.WithError(err).WithField("target", fmt.Sprintf("%#x", target)).Warn("target left writable")
		}
	}()

	copy(prologue, jumpPatch(entry, n))
	return nil
}
