package interpose

import (
	"fmt"
	"sync/atomic"
)

// Hook intercepts the host function Symbol.
//
// F is the Go signature of the host function. Entry is the native address
// the host jumps to instead of Symbol; it's normally a cgo export that calls
// Handler. Bind turns a native address into a callable F and is used to wrap
// the original. Replace receives the original and returns the function that
// handles every call from then on.
type Hook[F any] struct {
	Symbol  string
	Entry   uintptr
	Bind    func(addr uintptr) F
	Replace func(original F) F

	handler  atomic.Pointer[F]
	original atomic.Uintptr
}

// Override is a Replace function for hooks that never call the original.
func Override[F any](fn F) func(original F) F {
	return func(F) F {
		return fn
	}
}

// Handler returns the installed replacement. It panics if the hook has not
// been attached.
func (h *Hook[F]) Handler() F {
	fn := h.handler.Load()
	if fn == nil {
		panic(fmt.Sprintf("hook for %s called before it was attached", h.Symbol))
	}
	return *fn
}

// Attached reports whether the hook has been installed.
func (h *Hook[F]) Attached() bool {
	return h.handler.Load() != nil
}

// Original returns the address of the relocated original, or 0 before the
// hook is attached.
func (h *Hook[F]) Original() uintptr {
	return h.original.Load()
}

func (h *Hook[F]) symbol() string { return h.Symbol }

func (h *Hook[F]) entry() uintptr { return h.Entry }

func (h *Hook[F]) validate() error {
	switch {
	case h.Symbol == "":
		return fmt.Errorf("hook has no symbol")
	case h.Entry == 0:
		return fmt.Errorf("hook for %s has no entry point", h.Symbol)
	case h.Replace == nil:
		return fmt.Errorf("hook for %s has no replacement", h.Symbol)
	}
	return nil
}

func (h *Hook[F]) install(original uintptr) {
	var orig F
	if h.Bind != nil {
		orig = h.Bind(original)
	}
	fn := h.Replace(orig)
	h.original.Store(original)
	h.handler.Store(&fn)
}

// Interceptor is implemented by *Hook for any signature.
type Interceptor interface {
	symbol() string
	entry() uintptr
	validate() error
	install(original uintptr)
}
