package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pboyd/interpose/game"
	"github.com/pboyd/interpose/layout"
	"github.com/pboyd/interpose/symbol"
)

func init() {
	color.NoColor = true
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })
	err := rootCmd.Execute()
	return out.String(), err
}

func TestCheckSymbols(t *testing.T) {
	syms := symbol.ResolverFunc(func(name string) (uintptr, error) {
		if name == "missing" {
			return 0, &symbol.UnresolvedError{Name: name}
		}
		return 0x1234, nil
	})

	var out bytes.Buffer
	missing := checkSymbols(&out, syms, []string{"found", "missing"})
	assert.Equal(t, 1, missing)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "✓ 0x00001234 found", lines[0])
	assert.Equal(t, "✗ missing", lines[1])
}

func TestSymbolsCmd_BadFile(t *testing.T) {
	_, err := run(t, "symbols", "/nonexistent/libGameLogic.so")
	assert.Error(t, err)
}

func TestFindLayout(t *testing.T) {
	l, err := findLayout(game.Layouts(), "player")
	require.NoError(t, err)
	assert.Equal(t, game.PlayerLayout, l)

	_, err = findLayout(game.Layouts(), "Monster")
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "Monster")
	}
}

func TestPrintLayout(t *testing.T) {
	l := layout.Expect("Thing", 0x10,
		layout.Scalar("Count", 0, 4),
		layout.Field{Name: "_", Offset: 4, Size: 4, Kind: layout.KindPadding},
		layout.Pointer("Next", 8),
	)

	var out bytes.Buffer
	printLayout(&out, l, false)
	assert.Contains(t, out.String(), "Thing (0x10 bytes)")
	assert.Contains(t, out.String(), "Count")
	assert.Contains(t, out.String(), "pointer")
	assert.NotContains(t, out.String(), "padding")

	out.Reset()
	printLayout(&out, l, true)
	assert.Contains(t, out.String(), "padding")
}

func TestLayoutCmd(t *testing.T) {
	out, err := run(t, "layout", "actor")
	require.NoError(t, err)
	assert.Contains(t, out, "RemotePosition")
	assert.NotContains(t, out, "CharacterID")

	out, err = run(t, "layout")
	require.NoError(t, err)
	for _, l := range game.Layouts() {
		assert.Contains(t, out, l.Name)
	}

	_, err = run(t, "layout", "Monster")
	assert.Error(t, err)
}
