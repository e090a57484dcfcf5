//go:build cgo && linux

package symbol

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProcess(t *testing.T) {
	addr, err := Process().Resolve("malloc")
	assert.NoError(t, err)
	assert.NotZero(t, addr)
}

func TestProcess_Missing(t *testing.T) {
	_, err := Process().Resolve("_ZN6Player21ThisIsNotARealSymbolEv")
	var uerr *UnresolvedError
	if assert.True(t, errors.As(err, &uerr)) {
		assert.Equal(t, "_ZN6Player21ThisIsNotARealSymbolEv", uerr.Name)
	}
}

func TestProcess_BadNames(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		_, err := Process().Resolve("")
		assert.Error(t, err)
	})

	t.Run("embedded NUL", func(t *testing.T) {
		_, err := Process().Resolve("mal\x00loc")
		assert.ErrorContains(t, err, "NUL")
	})
}

func TestDefault(t *testing.T) {
	assert.Same(t, Default(), Default())
	assert.NotZero(t, Default().Lookup("free"))
}
