//go:build cgo

package ffi_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pboyd/interpose/ffi"
	"github.com/pboyd/interpose/internal/hosttest"
	"github.com/pboyd/interpose/symbol"
)

func TestBinders(t *testing.T) {
	hosttest.Reset()
	r := hosttest.NewResolver()
	syms := symbol.NewCache(r)

	const self = uintptr(0x7f0000001000)

	t.Run("vector getter and setter", func(t *testing.T) {
		get := ffi.Bind(syms, hosttest.SymGetPosition, ffi.ReturnsVec3)
		set := ffi.Bind(syms, hosttest.SymSetPosition, ffi.TakesVec3Ref)

		hosttest.SetHostPosition([3]float32{1.5, -2, 3.25})
		assert.Equal(t, ffi.Vec3{X: 1.5, Y: -2, Z: 3.25}, get.Fn()(self))
		assert.Equal(t, self, hosttest.LastSelf())

		v := ffi.Vec3{X: 10, Y: 20, Z: 30}
		set.Fn()(self+8, &v)
		assert.Equal(t, [3]float32{10, 20, 30}, hosttest.Position())
		assert.Equal(t, self+8, hosttest.LastSelf())
		assert.Equal(t, ffi.Vec3{X: 10, Y: 20, Z: 30}, v, "argument must not be modified")
	})

	t.Run("bool argument", func(t *testing.T) {
		jump := ffi.Bind(syms, hosttest.SymJump, ffi.TakesBool)
		jump.Fn()(self, true)
		jump.Fn()(self, false)
		jump.Fn()(self, true)
		assert.Equal(t, []bool{true, false, true}, hosttest.Jumps())
	})

	t.Run("string arguments", func(t *testing.T) {
		travel := ffi.Bind(syms, hosttest.SymFastTravel, ffi.TakesStrings2)
		travel.Fn()(self, "Town", "Gold Farm")
		from, to := hosttest.Travel()
		assert.Equal(t, "Town", from)
		assert.Equal(t, "Gold Farm", to)

		item := ffi.Bind(syms, hosttest.SymGetItem, ffi.TakesStringReturnsPtr)
		assert.Zero(t, item.Fn()(hosttest.GameAPI, "Nothing"))
		assert.NotZero(t, item.Fn()(hosttest.GameAPI, "GreatBallsOfFire"))
		name, _, _, _ := hosttest.Item()
		assert.Equal(t, "GreatBallsOfFire", name)
	})

	t.Run("mixed scalar arguments", func(t *testing.T) {
		add := ffi.Bind(syms, hosttest.SymAddItem, ffi.TakesPtrU32BoolReturnsBool)
		assert.True(t, add.Fn()(self, 0x5150, 7, true))
		assert.False(t, add.Fn()(self, 0x5150, 1000, false))

		_, item, count, partial := hosttest.Item()
		assert.Equal(t, uintptr(0x5150), item)
		assert.Equal(t, uint32(1000), count)
		assert.False(t, partial)
	})

	assert.Equal(t, 1, r.Lookups(hosttest.SymGetPosition))
	assert.Equal(t, 1, r.Lookups(hosttest.SymJump))
	assert.Equal(t, 1, r.Lookups(hosttest.SymAddItem))
}

func TestGoString(t *testing.T) {
	s := hosttest.NewStdString("!hack position")
	defer hosttest.FreeStdString(s)

	assert.Equal(t, "!hack position", ffi.GoString(ffi.Word(s)))
	assert.Equal(t, "", ffi.GoString(0))
}

func TestWord(t *testing.T) {
	addr := hosttest.Symbols()[hosttest.SymGame]
	assert.Equal(t, hosttest.GameAPI, ffi.Word(addr))
}
