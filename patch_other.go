//go:build !(linux && amd64)

package interpose

import (
	"errors"
	"fmt"
	"runtime"
)

// InlinePatcher is only implemented on linux/amd64.
type InlinePatcher struct{}

func NewInlinePatcher() *InlinePatcher {
	return &InlinePatcher{}
}

func (p *InlinePatcher) Patch(target, entry uintptr, bind func(original uintptr)) error {
	return fmt.Errorf("inline patching on %s/%s: %w", runtime.GOOS, runtime.GOARCH, errors.ErrUnsupported)
}
