package symbol

import (
	"bufio"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mappedLibc returns the path of the libc mapped into this process.
func mappedLibc(t *testing.T) string {
	t.Helper()

	f, err := os.Open("/proc/self/maps")
	if err != nil {
		t.Skipf("no /proc/self/maps: %v", err)
	}
	defer f.Close()

	s := bufio.NewScanner(f)
	for s.Scan() {
		fields := strings.Fields(s.Text())
		if len(fields) < 6 {
			continue
		}
		path := fields[len(fields)-1]
		if strings.Contains(path, "/libc.so") || strings.Contains(path, "/libc-") {
			return path
		}
	}
	t.Skip("libc is not mapped into the test binary")
	return ""
}

func TestOpenELF(t *testing.T) {
	f, err := OpenELF(mappedLibc(t))
	require.NoError(t, err)
	defer f.Close()

	assert.Greater(t, f.Len(), 0)

	addr, err := f.Resolve("malloc")
	assert.NoError(t, err)
	assert.NotZero(t, addr)

	_, err = f.Resolve("_ZN11ClientWorld4ChatEP6PlayerRKSs")
	var uerr *UnresolvedError
	assert.ErrorAs(t, err, &uerr)
}

func TestOpenELF_NotAnELF(t *testing.T) {
	path := t.TempDir() + "/libGameLogic.so"
	require.NoError(t, os.WriteFile(path, []byte("not an elf"), 0o644))

	_, err := OpenELF(path)
	assert.Error(t, err)
}

func TestOpenELF_Cached(t *testing.T) {
	f, err := OpenELF(mappedLibc(t))
	require.NoError(t, err)
	defer f.Close()

	c := NewCache(f)
	assert.Equal(t, c.Lookup("free"), c.Lookup("free"))
}
