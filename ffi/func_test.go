package ffi

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

type countingLookup struct {
	mu    sync.Mutex
	addrs map[string]uintptr
	calls int
}

func (l *countingLookup) Lookup(name string) uintptr {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls++
	return l.addrs[name]
}

func TestFunc_ResolvesOnce(t *testing.T) {
	assert := assert.New(t)

	syms := &countingLookup{addrs: map[string]uintptr{"_ZN6Player7AddItemEP5IItemjb": 0x4000}}

	type call struct {
		self, item uintptr
		count      uint32
		partial    bool
	}
	var calls []call
	var boundAt []uintptr

	addItem := Bind(syms, "_ZN6Player7AddItemEP5IItemjb", func(addr uintptr) func(self, item uintptr, count uint32, partial bool) bool {
		boundAt = append(boundAt, addr)
		return func(self, item uintptr, count uint32, partial bool) bool {
			calls = append(calls, call{self, item, count, partial})
			return count%2 == 0
		}
	})

	assert.Equal("_ZN6Player7AddItemEP5IItemjb", addItem.Name())
	assert.Zero(syms.calls, "binding must be lazy")

	const n = 5
	for i := 0; i < n; i++ {
		ok := addItem.Fn()(0x100, 0x200+uintptr(i), uint32(i), i == 3)
		assert.Equal(i%2 == 0, ok)
	}

	assert.Equal(1, syms.calls)
	assert.Equal([]uintptr{0x4000}, boundAt)
	if assert.Len(calls, n) {
		for i, c := range calls {
			assert.Equal(call{0x100, 0x200 + uintptr(i), uint32(i), i == 3}, c)
		}
	}
}

func TestFunc_ConcurrentFirstUse(t *testing.T) {
	syms := &countingLookup{addrs: map[string]uintptr{"Game": 0x10}}
	var mu sync.Mutex
	binds := 0

	f := Bind(syms, "Game", func(addr uintptr) func() uintptr {
		mu.Lock()
		binds++
		mu.Unlock()
		return func() uintptr { return addr }
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, uintptr(0x10), f.Fn()())
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, binds)
	assert.Equal(t, 1, syms.calls)
}

type failingLookup struct {
	calls int
}

func (l *failingLookup) Lookup(name string) uintptr {
	l.calls++
	panic(errors.New("unable to find symbol " + name))
}

func TestFunc_FailedLookup(t *testing.T) {
	syms := &failingLookup{}
	f := Bind(syms, "_ZN6Player7CanJumpEv", func(uintptr) func() bool {
		return func() bool { return true }
	})

	for range 3 {
		assert.PanicsWithError(t, "unable to find symbol _ZN6Player7CanJumpEv", func() {
			f.Fn()
		})
	}
	assert.Equal(t, 1, syms.calls)
}
