package interpose

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pboyd/interpose/symbol"
)

type patch struct {
	target, entry, original uintptr
}

// fakePatcher pretends to move each target to target+0x1000.
type fakePatcher struct {
	patches []patch
	err     error
}

func (p *fakePatcher) Patch(target, entry uintptr, bind func(uintptr)) error {
	if p.err != nil {
		return p.err
	}
	original := target + 0x1000
	bind(original)
	p.patches = append(p.patches, patch{target: target, entry: entry, original: original})
	return nil
}

func fakeSymbols(syms map[string]uintptr) symbol.Resolver {
	return symbol.ResolverFunc(func(name string) (uintptr, error) {
		addr, ok := syms[name]
		if !ok {
			return 0, &symbol.UnresolvedError{Name: name}
		}
		return addr, nil
	})
}

// host stands in for native functions.
type host struct {
	calls map[uintptr][]float32
}

func (h *host) bind(addr uintptr) func(self uintptr, dt float32) float32 {
	return func(self uintptr, dt float32) float32 {
		h.calls[addr] = append(h.calls[addr], dt)
		return dt + 1
	}
}

func TestAttach_Delegates(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	h := &host{calls: map[uintptr][]float32{}}
	p := &fakePatcher{}
	e := New(fakeSymbols(map[string]uintptr{"tick": 0x4000}), p)

	var seen []float32
	hook := &Hook[func(self uintptr, dt float32) float32]{
		Symbol: "tick",
		Entry:  0xe000,
		Bind:   h.bind,
		Replace: func(original func(uintptr, float32) float32) func(uintptr, float32) float32 {
			return func(self uintptr, dt float32) float32 {
				seen = append(seen, dt)
				return original(self, dt)
			}
		},
	}

	assert.False(hook.Attached())
	require.NoError(e.Attach(hook))
	assert.True(hook.Attached())

	require.Len(p.patches, 1)
	assert.Equal(uintptr(0x4000), p.patches[0].target)
	assert.Equal(uintptr(0xe000), p.patches[0].entry)
	assert.Equal(uintptr(0x5000), hook.Original())

	assert.Equal(float32(1.5), hook.Handler()(0x77, 0.5))
	assert.Equal(float32(3), hook.Handler()(0x77, 2))

	assert.Equal([]float32{0.5, 2}, seen)
	assert.Equal([]float32{0.5, 2}, h.calls[0x5000])
	assert.Empty(h.calls[0x4000])

	addr, ok := e.Installed("tick")
	assert.True(ok)
	assert.Equal(uintptr(0x4000), addr)
	assert.Equal(1, e.Len())
}

func TestAttach_Override(t *testing.T) {
	h := &host{calls: map[uintptr][]float32{}}
	e := New(fakeSymbols(map[string]uintptr{"speed": 0x4000}), &fakePatcher{})

	hook := &Hook[func(self uintptr, dt float32) float32]{
		Symbol: "speed",
		Entry:  0xe000,
		Bind:   h.bind,
		Replace: Override(func(uintptr, float32) float32 {
			return 1000
		}),
	}
	require.NoError(t, e.Attach(hook))

	for range 3 {
		assert.Equal(t, float32(1000), hook.Handler()(0x77, 0))
	}
	assert.Empty(t, h.calls)
}

func TestAttach_DoubleHook(t *testing.T) {
	e := New(fakeSymbols(map[string]uintptr{"speed": 0x4000}), &fakePatcher{})

	newHook := func() *Hook[func() bool] {
		return &Hook[func() bool]{
			Symbol:  "speed",
			Entry:   0xe000,
			Replace: Override(func() bool { return true }),
		}
	}

	require.NoError(t, e.Attach(newHook()))

	err := e.Attach(newHook())
	assert.ErrorIs(t, err, ErrDoubleHook)
	assert.Contains(t, err.Error(), "speed")

	e2 := New(fakeSymbols(map[string]uintptr{"speed": 0x4000}), &fakePatcher{})
	assert.ErrorIs(t, e2.Attach(newHook(), newHook()), ErrDoubleHook)
	assert.Equal(t, 1, e2.Len())
}

func TestAttach_Errors(t *testing.T) {
	syms := fakeSymbols(map[string]uintptr{"speed": 0x4000})
	replace := Override(func() bool { return true })

	t.Run("unresolved symbol", func(t *testing.T) {
		e := New(syms, &fakePatcher{})
		hook := &Hook[func() bool]{Symbol: "missing", Entry: 0xe000, Replace: replace}

		err := e.Attach(hook)
		var uerr *symbol.UnresolvedError
		if assert.ErrorAs(t, err, &uerr) {
			assert.Equal(t, "missing", uerr.Name)
		}
		assert.False(t, hook.Attached())
		assert.Zero(t, e.Len())
	})

	t.Run("patch failure", func(t *testing.T) {
		perr := errors.New("prologue too short")
		e := New(syms, &fakePatcher{err: perr})
		hook := &Hook[func() bool]{Symbol: "speed", Entry: 0xe000, Replace: replace}

		assert.ErrorIs(t, e.Attach(hook), perr)
		assert.False(t, hook.Attached())
		_, ok := e.Installed("speed")
		assert.False(t, ok)
	})

	t.Run("incomplete hook", func(t *testing.T) {
		e := New(syms, &fakePatcher{})
		assert.Error(t, e.Attach(&Hook[func() bool]{Entry: 0xe000, Replace: replace}))
		assert.Error(t, e.Attach(&Hook[func() bool]{Symbol: "speed", Replace: replace}))
		assert.Error(t, e.Attach(&Hook[func() bool]{Symbol: "speed", Entry: 0xe000}))
		assert.Zero(t, e.Len())
	})
}

func TestHandler_NotAttached(t *testing.T) {
	hook := &Hook[func() bool]{Symbol: "speed"}
	assert.PanicsWithValue(t, "hook for speed called before it was attached", func() {
		hook.Handler()
	})
}
