//go:build cgo && linux

package symbol

/*
#cgo LDFLAGS: -ldl
#define _GNU_SOURCE
#include <dlfcn.h>
#include <stdlib.h>

// Clear dlerror, look the name up in the default scope and return the error
// (if any) alongside the address.
static void* lookup_default(const char* name, char** err) {
	dlerror();
	void* p = dlsym(RTLD_DEFAULT, name);
	char* e = dlerror();
	*err = e;
	return p;
}
*/
import "C"

import (
	"unsafe"
)

type processResolver struct{}

// Process returns a Resolver over the current process's default symbol
// scope: the executable and every shared object loaded so far, in load
// order. The first match wins.
func Process() Resolver {
	return processResolver{}
}

func (processResolver) Resolve(name string) (uintptr, error) {
	if err := checkName(name); err != nil {
		return 0, err
	}

	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	var cerr *C.char
	addr := C.lookup_default(cname, &cerr)
	if cerr != nil {
		return 0, &UnresolvedError{Name: name, Reason: C.GoString(cerr)}
	}
	if addr == nil {
		return 0, &UnresolvedError{Name: name, Reason: "symbol has a null address"}
	}

	return uintptr(addr), nil
}
