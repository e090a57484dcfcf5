//go:build cgo

package hosttest

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSymbols(t *testing.T) {
	syms := Symbols()
	for name, addr := range syms {
		assert.NotZero(t, addr, name)
	}

	// Game is a data symbol holding the GameAPI pointer.
	game := syms[SymGame]
	require.NotZero(t, game)
	assert.Equal(t, GameAPI, *(*uintptr)(unsafe.Pointer(game)))

	for _, addr := range []uintptr{PatchedFloat, PatchedBool, PatchedTick, OverrideFloat, OverrideBool, OverrideTick} {
		assert.NotZero(t, addr)
	}
}

func TestResolver(t *testing.T) {
	r := NewResolver()

	addr, err := r.Resolve(SymTick)
	require.NoError(t, err)
	assert.Equal(t, PatchedTick, addr)

	_, err = r.Resolve("_ZN6Player4FlyEv")
	assert.EqualError(t, err, "fake host does not export _ZN6Player4FlyEv")

	assert.Equal(t, 1, r.Lookups(SymTick))
}
