package interpose

import (
	"bytes"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Prologue copied by the arena tests. A package variable, so it stays put.
var prologueCode = []byte{
	0x55,             // PUSH RBP
	0x48, 0x89, 0xe5, // MOV RBP, RSP
	0x48, 0x89, 0x7d, 0xf8, // MOV [RBP-8], RDI
	0x48, 0x8b, 0x45, 0xf8, // MOV RAX, [RBP-8]
	0x89, 0x45, 0xfc, // MOV [RBP-4], EAX
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
	0x90, 0x90, 0x90, 0x90, 0x90, 0x90, 0x90,
}

func TestTrampolineArena(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	arena := &trampolineArena{}
	target := uintptr(unsafe.Pointer(unsafe.SliceData(prologueCode)))

	first, n, err := arena.write(target)
	require.NoError(err)
	assert.Equal(15, n)
	assert.False(arena.writing, "arena must be sealed between writes")

	tramp := unsafe.Slice((*byte)(unsafe.Pointer(first)), trampolineSize)
	assert.Equal(prologueCode[:n], tramp[:n])
	assert.Equal(absJump(target+uintptr(n)), tramp[n:n+jumpSize])
	assert.Equal(byte(opcodeINT3), tramp[trampolineSize-1])

	// MAP_32BIT keeps trampolines within rel32 reach of low code.
	assert.Less(first, uintptr(1<<31))

	second, _, err := arena.write(target)
	require.NoError(err)
	assert.NotEqual(first, second)
	assert.GreaterOrEqual(max(first, second)-min(first, second), uintptr(trampolineSize))
	assert.False(arena.writing)
}

func TestTrampolineArena_Refused(t *testing.T) {
	arena := &trampolineArena{}
	_, _, err := arena.write(uintptr(unsafe.Pointer(unsafe.SliceData(refused))))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "function ends too soon")
	}
	assert.False(t, arena.writing)
}

// XOR EAX, EAX; RET, then padding.
var refused = append([]byte{0x31, 0xc0, 0xc3}, bytes.Repeat([]byte{opcodeINT3}, jumpSize+12)...)
