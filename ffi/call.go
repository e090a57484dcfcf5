//go:build cgo

package ffi

/*
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>

typedef struct { float x, y, z; } ffi_vec3;

static ffi_vec3 call_vec3(uintptr_t fn, uintptr_t self) {
	return ((ffi_vec3 (*)(uintptr_t))fn)(self);
}

static void call_vec3_ref(uintptr_t fn, uintptr_t self, const ffi_vec3* v) {
	((void (*)(uintptr_t, const ffi_vec3*))fn)(self, v);
}

static void call_bool(uintptr_t fn, uintptr_t self, bool b) {
	((void (*)(uintptr_t, bool))fn)(self, b);
}

static void call_float(uintptr_t fn, uintptr_t self, float f) {
	((void (*)(uintptr_t, float))fn)(self, f);
}

static float call_ret_float(uintptr_t fn, uintptr_t self) {
	return ((float (*)(uintptr_t))fn)(self);
}

static bool call_ret_bool(uintptr_t fn, uintptr_t self) {
	return ((bool (*)(uintptr_t))fn)(self);
}

static bool call_ptr_ret_bool(uintptr_t fn, uintptr_t self, uintptr_t a) {
	return ((bool (*)(uintptr_t, uintptr_t))fn)(self, a);
}

static bool call_ptr2_ret_bool(uintptr_t fn, uintptr_t self, uintptr_t a, uintptr_t b) {
	return ((bool (*)(uintptr_t, uintptr_t, uintptr_t))fn)(self, a, b);
}

static void call_ptr2(uintptr_t fn, uintptr_t self, uintptr_t a, uintptr_t b) {
	((void (*)(uintptr_t, uintptr_t, uintptr_t))fn)(self, a, b);
}

static void call_ptr_float(uintptr_t fn, uintptr_t self, uintptr_t a, float f) {
	((void (*)(uintptr_t, uintptr_t, float))fn)(self, a, f);
}

static uintptr_t call_str_ret_ptr(uintptr_t fn, uintptr_t self, const char* s) {
	return ((uintptr_t (*)(uintptr_t, const char*))fn)(self, s);
}

static void call_str2(uintptr_t fn, uintptr_t self, const char* a, const char* b) {
	((void (*)(uintptr_t, const char*, const char*))fn)(self, a, b);
}

static bool call_ptr_u32_bool_ret_bool(uintptr_t fn, uintptr_t self, uintptr_t a, uint32_t n, bool b) {
	return ((bool (*)(uintptr_t, uintptr_t, uint32_t, bool))fn)(self, a, n, b);
}
*/
import "C"

import "unsafe"

// ReturnsVec3 binds `Vec3 fn(self)`.
func ReturnsVec3(addr uintptr) func(self uintptr) Vec3 {
	return func(self uintptr) Vec3 {
		v := C.call_vec3(C.uintptr_t(addr), C.uintptr_t(self))
		return Vec3{X: float32(v.x), Y: float32(v.y), Z: float32(v.z)}
	}
}

// TakesVec3Ref binds `void fn(self, const Vec3&)`.
func TakesVec3Ref(addr uintptr) func(self uintptr, v *Vec3) {
	return func(self uintptr, v *Vec3) {
		C.call_vec3_ref(C.uintptr_t(addr), C.uintptr_t(self), (*C.ffi_vec3)(unsafe.Pointer(v)))
	}
}

// TakesBool binds `void fn(self, bool)`.
func TakesBool(addr uintptr) func(self uintptr, b bool) {
	return func(self uintptr, b bool) {
		C.call_bool(C.uintptr_t(addr), C.uintptr_t(self), C.bool(b))
	}
}

// TakesFloat binds `void fn(self, float)`.
func TakesFloat(addr uintptr) func(self uintptr, f float32) {
	return func(self uintptr, f float32) {
		C.call_float(C.uintptr_t(addr), C.uintptr_t(self), C.float(f))
	}
}

// ReturnsFloat binds `float fn(self)`.
func ReturnsFloat(addr uintptr) func(self uintptr) float32 {
	return func(self uintptr) float32 {
		return float32(C.call_ret_float(C.uintptr_t(addr), C.uintptr_t(self)))
	}
}

// ReturnsBool binds `bool fn(self)`.
func ReturnsBool(addr uintptr) func(self uintptr) bool {
	return func(self uintptr) bool {
		return bool(C.call_ret_bool(C.uintptr_t(addr), C.uintptr_t(self)))
	}
}

// TakesPtrReturnsBool binds `bool fn(self, void*)`.
func TakesPtrReturnsBool(addr uintptr) func(self, a uintptr) bool {
	return func(self, a uintptr) bool {
		return bool(C.call_ptr_ret_bool(C.uintptr_t(addr), C.uintptr_t(self), C.uintptr_t(a)))
	}
}

// TakesPtr2ReturnsBool binds `bool fn(self, void*, void*)`.
func TakesPtr2ReturnsBool(addr uintptr) func(self, a, b uintptr) bool {
	return func(self, a, b uintptr) bool {
		return bool(C.call_ptr2_ret_bool(C.uintptr_t(addr), C.uintptr_t(self), C.uintptr_t(a), C.uintptr_t(b)))
	}
}

// TakesPtr2 binds `void fn(self, void*, void*)`.
func TakesPtr2(addr uintptr) func(self, a, b uintptr) {
	return func(self, a, b uintptr) {
		C.call_ptr2(C.uintptr_t(addr), C.uintptr_t(self), C.uintptr_t(a), C.uintptr_t(b))
	}
}

// TakesPtrFloat binds `void fn(self, void*, float)`.
func TakesPtrFloat(addr uintptr) func(self, a uintptr, f float32) {
	return func(self, a uintptr, f float32) {
		C.call_ptr_float(C.uintptr_t(addr), C.uintptr_t(self), C.uintptr_t(a), C.float(f))
	}
}

// TakesStringReturnsPtr binds `void* fn(self, const char*)`. The string is
// copied to C memory for the duration of the call.
func TakesStringReturnsPtr(addr uintptr) func(self uintptr, s string) uintptr {
	return func(self uintptr, s string) uintptr {
		cs := C.CString(s)
		defer C.free(unsafe.Pointer(cs))
		return uintptr(C.call_str_ret_ptr(C.uintptr_t(addr), C.uintptr_t(self), cs))
	}
}

// TakesStrings2 binds `void fn(self, const char*, const char*)`.
func TakesStrings2(addr uintptr) func(self uintptr, a, b string) {
	return func(self uintptr, a, b string) {
		ca := C.CString(a)
		defer C.free(unsafe.Pointer(ca))
		cb := C.CString(b)
		defer C.free(unsafe.Pointer(cb))
		C.call_str2(C.uintptr_t(addr), C.uintptr_t(self), ca, cb)
	}
}

// TakesPtrU32BoolReturnsBool binds `bool fn(self, void*, uint32_t, bool)`.
func TakesPtrU32BoolReturnsBool(addr uintptr) func(self, a uintptr, n uint32, b bool) bool {
	return func(self, a uintptr, n uint32, b bool) bool {
		return bool(C.call_ptr_u32_bool_ret_bool(C.uintptr_t(addr), C.uintptr_t(self), C.uintptr_t(a), C.uint32_t(n), C.bool(b)))
	}
}

// GoString copies the NUL-terminated string at addr.
func GoString(addr uintptr) string {
	if addr == 0 {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(addr)))
}
