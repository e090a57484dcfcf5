package interpose

import (
	"errors"
	"fmt"
	"sync"
	"unsafe"

	"github.com/pboyd/malloc"
)

const (
	// Largest trampoline: every moved instruction can grow into an absolute
	// call, plus the jump back.
	trampolineSize = 256

	// Trampolines the arena holds before it has to grow.
	arenaTrampolines = 64
)

// trampolineArena holds the relocated prologues of hooked functions. It is
// executable and read-only except while a trampoline is being written.
type trampolineArena struct {
	mu      sync.Mutex
	arena   *malloc.Arena
	protect func(int) error
	writing bool
}

// open maps the arena on first use. The arena starts sealed.
func (t *trampolineArena) open() error {
	if t.arena != nil {
		return nil
	}

	be := malloc.MmapBackend(malloc.MmapProt(mprotectExec), malloc.MmapFlags(map_32bit))
	if pbe, ok := be.(malloc.ProtectedArenaBackend); ok {
		t.protect = pbe.Protect
	} else {
		t.protect = func(int) error { return nil }
	}

	t.arena = malloc.NewArena(uint64(trampolineSize*arenaTrampolines), malloc.Backend(be))
	if t.arena == nil {
		return errors.New("unable to map trampoline arena")
	}
	return nil
}

// unseal makes the arena writable.
func (t *trampolineArena) unseal() error {
	if err := t.open(); err != nil {
		return err
	}
	if t.writing {
		return nil
	}
	if err := t.protect(mprotectRWX); err != nil {
		return fmt.Errorf("unseal trampoline arena: %w", err)
	}
	t.writing = true
	return nil
}

// seal makes the arena executable and read-only again.
func (t *trampolineArena) seal() error {
	if !t.writing {
		return nil
	}
	if err := t.protect(mprotectRX); err != nil {
		return fmt.Errorf("seal trampoline arena: %w", err)
	}
	t.writing = false
	return nil
}

// write copies a trampoline for target into the arena and returns its
// address and the number of prologue bytes it replaces.
func (t *trampolineArena) write(target uintptr) (uintptr, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if err := t.unseal(); err != nil {
		return 0, 0, err
	}
	defer t.seal()

	buf, err := malloc.MallocSlice[byte](t.arena, trampolineSize)
	if err != nil {
		return 0, 0, fmt.Errorf("allocate trampoline: %w", err)
	}
	dest := uintptr(unsafe.Pointer(unsafe.SliceData(buf)))

	// Enough of the target to cover the longest possible run of
	// instructions ending past jumpSize.
	code := unsafe.Slice((*byte)(unsafe.Pointer(target)), jumpSize+15)

	moved, n, err := relocate(code, target, dest, jumpSize)
	if err != nil {
		malloc.FreeSlice(t.arena, buf)
		return 0, 0, err
	}
	moved = append(moved, absJump(target+uintptr(n))...)
	if len(moved) > len(buf) {
		malloc.FreeSlice(t.arena, buf)
		return 0, 0, fmt.Errorf("trampoline needs %d bytes", len(moved))
	}

	copy(buf, moved)
	for i := len(moved); i < len(buf); i++ {
		buf[i] = opcodeINT3
	}

	return dest, n, nil
}

var trampolines = &trampolineArena{}

// buildTrampoline moves the start of the function at target into
// executable memory and returns the trampoline's address and the number of
// bytes moved.
func buildTrampoline(target uintptr) (uintptr, int, error) {
	return trampolines.write(target)
}
