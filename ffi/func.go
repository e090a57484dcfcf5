// Package ffi calls functions in the host through addresses resolved at run
// time.
//
// A Func pairs a symbol name with a binder that turns the symbol's address
// into an ordinary Go function of a declared signature. Nothing checks that
// the host function really has that signature; a mismatch is undefined
// behavior.
package ffi

import "sync"

// Lookup returns the address of a named symbol. A *symbol.Cache satisfies it.
type Lookup interface {
	Lookup(name string) uintptr
}

// Func is a foreign function with Go signature F. It is resolved and bound
// on first use and reused afterwards.
type Func[F any] struct {
	syms Lookup
	name string
	bind func(addr uintptr) F

	once    sync.Once
	fn      F
	failure any
}

// Bind declares the function name, resolved through syms and converted to F
// with bind.
func Bind[F any](syms Lookup, name string, bind func(addr uintptr) F) *Func[F] {
	return &Func[F]{
		syms: syms,
		name: name,
		bind: bind,
	}
}

// Name returns the symbol name.
func (f *Func[F]) Name() string {
	return f.name
}

// Fn returns the callable function, resolving the symbol if this is the
// first call. If resolving the symbol panics, this call and every later one
// panic with the same value.
func (f *Func[F]) Fn() F {
	f.once.Do(func() {
		defer func() {
			if r := recover(); r != nil {
				f.failure = r
				panic(r)
			}
		}()
		f.fn = f.bind(f.syms.Lookup(f.name))
	})
	if f.failure != nil {
		panic(f.failure)
	}
	return f.fn
}

// Vec3 is three packed floats, laid out like the host's Vector3 and
// Rotation.
type Vec3 struct {
	X, Y, Z float32
}
