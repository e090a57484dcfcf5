package game

import (
	"sync/atomic"

	"github.com/pboyd/interpose/ffi"
	"github.com/pboyd/interpose/symbol"
)

// api is the table of host functions, bound against one symbol source.
type api struct {
	syms ffi.Lookup

	getPosition   *ffi.Func[func(self uintptr) ffi.Vec3]
	getVelocity   *ffi.Func[func(self uintptr) ffi.Vec3]
	getRotation   *ffi.Func[func(self uintptr) ffi.Vec3]
	setPosition   *ffi.Func[func(self uintptr, v *ffi.Vec3)]
	setVelocity   *ffi.Func[func(self uintptr, v *ffi.Vec3)]
	jump          *ffi.Func[func(self uintptr, state bool)]
	getItemByName *ffi.Func[func(self uintptr, name string) uintptr]
	addItem       *ffi.Func[func(self, item uintptr, count uint32, allowPartial bool) bool]
	fastTravel    *ffi.Func[func(self uintptr, from, to string)]
}

func newAPI(syms ffi.Lookup) *api {
	return &api{
		syms:          syms,
		getPosition:   ffi.Bind(syms, SymActorGetPosition, ffi.ReturnsVec3),
		getVelocity:   ffi.Bind(syms, SymActorGetVelocity, ffi.ReturnsVec3),
		getRotation:   ffi.Bind(syms, SymActorGetRotation, ffi.ReturnsVec3),
		setPosition:   ffi.Bind(syms, SymActorSetPosition, ffi.TakesVec3Ref),
		setVelocity:   ffi.Bind(syms, SymActorSetVelocity, ffi.TakesVec3Ref),
		jump:          ffi.Bind(syms, SymConnectionJump, ffi.TakesBool),
		getItemByName: ffi.Bind(syms, SymGetItemByName, ffi.TakesStringReturnsPtr),
		addItem:       ffi.Bind(syms, SymPlayerAddItem, ffi.TakesPtrU32BoolReturnsBool),
		fastTravel:    ffi.Bind(syms, SymPlayerFastTravel, ffi.TakesStrings2),
	}
}

var linked atomic.Pointer[api]

// Link binds the host function table to syms. Functions are still resolved
// lazily, on first call. Without Link the table binds to symbol.Default on
// first use.
func Link(syms ffi.Lookup) {
	linked.Store(newAPI(syms))
}

func host() *api {
	if a := linked.Load(); a != nil {
		return a
	}
	linked.CompareAndSwap(nil, newAPI(symbol.Default()))
	return linked.Load()
}

// GameAPI returns the host's global GameAPI object.
func GameAPI() uintptr {
	return ffi.Word(host().syms.Lookup(SymGame))
}

// ItemByName calls GameAPI::GetItemByName. It returns 0 if the host has no
// such item.
func ItemByName(name string) uintptr {
	return host().getItemByName.Fn()(GameAPI(), name)
}

// StdString decodes a `const std::string&` argument. The host uses the
// copy-on-write string ABI, where the object is a single pointer to the
// character data.
func StdString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	return ffi.GoString(ffi.Word(addr))
}
