package interpose

import (
	"errors"
	"fmt"
	"sync"

	"github.com/apex/log"

	"github.com/pboyd/interpose/symbol"
)

// ErrDoubleHook is returned when a symbol is hooked more than once.
var ErrDoubleHook = errors.New("symbol is already hooked")

// Patcher redirects native code.
//
// Patch moves the start of the function at target somewhere it can still be
// called and makes target jump to entry. bind must be called with the
// address of the moved original before the jump is written, so the
// replacement is ready by the time the host can reach it.
type Patcher interface {
	Patch(target, entry uintptr, bind func(original uintptr)) error
}

// Engine attaches hooks to symbols in the host.
type Engine struct {
	syms    symbol.Resolver
	patcher Patcher

	mu        sync.Mutex
	installed map[string]uintptr
}

// New returns an Engine that finds hook targets with syms and rewrites them
// with patcher.
func New(syms symbol.Resolver, patcher Patcher) *Engine {
	return &Engine{
		syms:      syms,
		patcher:   patcher,
		installed: map[string]uintptr{},
	}
}

// Attach installs hooks in order. It stops at the first failure; hooks
// installed before it stay in place, since there's no way to remove them.
func (e *Engine) Attach(hooks ...Interceptor) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, h := range hooks {
		if err := h.validate(); err != nil {
			return err
		}

		name := h.symbol()
		if _, ok := e.installed[name]; ok {
			return fmt.Errorf("%w: %s", ErrDoubleHook, name)
		}

		target, err := e.syms.Resolve(name)
		if err != nil {
			return fmt.Errorf("unable to hook %s: %w", name, err)
		}

		ctx := log.WithFields(log.Fields{
			"symbol": name,
			"target": fmt.Sprintf("%#x", target),
			"entry":  fmt.Sprintf("%#x", h.entry()),
		})

		err = e.patcher.Patch(target, h.entry(), h.install)
		if err != nil {
			ctx.WithError(err).Error("hook failed")
			return fmt.Errorf("unable to hook %s: %w", name, err)
		}

		e.installed[name] = target
		ctx.Info("hooked")
	}

	return nil
}

// Installed returns the host address of a hooked symbol.
func (e *Engine) Installed(name string) (uintptr, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	addr, ok := e.installed[name]
	return addr, ok
}

// Len returns the number of attached hooks.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.installed)
}
