// Package symbol finds the addresses of exported symbols.
//
// Lookups against the running process are memoized by a Cache: a name is
// resolved at most once and the address is reused for the life of the
// process. A name that cannot be resolved means the host binary is not the
// one the overlays were written for, so Cache.Lookup treats it as fatal.
package symbol

import (
	"errors"
	"fmt"
	"strings"
)

// Resolver returns the address of a named symbol.
type Resolver interface {
	Resolve(name string) (uintptr, error)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) (uintptr, error)

func (f ResolverFunc) Resolve(name string) (uintptr, error) {
	return f(name)
}

// UnresolvedError is returned (or raised by Cache.Lookup) when a symbol is
// not visible.
type UnresolvedError struct {
	Name   string
	Reason string
}

func (e *UnresolvedError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("unable to find symbol %s", e.Name)
	}
	return fmt.Sprintf("unable to find symbol %s: %s", e.Name, e.Reason)
}

var errEmptyName = errors.New("empty symbol name")

func checkName(name string) error {
	if name == "" {
		return errEmptyName
	}
	if strings.IndexByte(name, 0) >= 0 {
		return fmt.Errorf("symbol name %q contains a NUL byte", name)
	}
	return nil
}
