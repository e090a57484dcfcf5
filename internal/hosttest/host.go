//go:build cgo

// Package hosttest is a small fake of the game library for tests. It exports
// C functions under the host's mangled names and records every call so tests
// can drive the real foreign-call path without the game.
package hosttest

/*
#cgo CFLAGS: -O0 -fno-omit-frame-pointer
#include <stdbool.h>
#include <stdint.h>
#include <stdlib.h>
#include <string.h>

typedef struct { float x, y, z; } hv3;

typedef struct {
	uintptr_t self;

	int get_position, set_position;
	int get_velocity, set_velocity;
	int get_rotation;
	int jump;
	int get_item, add_item;
	int fast_travel;
	int patched_float, patched_bool, patched_tick;

	hv3 position, velocity, rotation;

	bool jumps[64];

	char item_name[64];
	uintptr_t item;
	uint32_t count;
	bool partial;

	char from[64], to[64];

	float tick_delta;
} host_state;

static host_state host;

// Value of the host's global GameAPI pointer.
uintptr_t fake_game = 0x9a3e00;

static host_state* state(void) { return &host; }
static void reset(void) { memset(&host, 0, sizeof(host)); }

hv3 fake_get_position(uintptr_t self) {
	host.self = self;
	host.get_position++;
	return host.position;
}

void fake_set_position(uintptr_t self, const hv3* v) {
	host.self = self;
	host.set_position++;
	host.position = *v;
}

hv3 fake_get_velocity(uintptr_t self) {
	host.self = self;
	host.get_velocity++;
	return host.velocity;
}

void fake_set_velocity(uintptr_t self, const hv3* v) {
	host.self = self;
	host.set_velocity++;
	host.velocity = *v;
}

hv3 fake_get_rotation(uintptr_t self) {
	host.self = self;
	host.get_rotation++;
	return host.rotation;
}

void fake_jump(uintptr_t self, bool jumping) {
	host.self = self;
	host.jumps[host.jump % 64] = jumping;
	host.jump++;
}

uintptr_t fake_get_item_by_name(uintptr_t api, const char* name) {
	host.self = api;
	host.get_item++;
	strncpy(host.item_name, name, sizeof(host.item_name) - 1);
	if (strcmp(name, "Nothing") == 0) {
		return 0;
	}
	return 0x17e40 + (uintptr_t)strlen(name);
}

bool fake_add_item(uintptr_t self, uintptr_t item, uint32_t count, bool partial) {
	host.self = self;
	host.add_item++;
	host.item = item;
	host.count = count;
	host.partial = partial;
	return count <= 100;
}

void fake_fast_travel(uintptr_t self, const char* from, const char* to) {
	host.self = self;
	host.fast_travel++;
	strncpy(host.from, from, sizeof(host.from) - 1);
	strncpy(host.to, to, sizeof(host.to) - 1);
}

// Patch targets. They are only ever reached through function pointers and
// are compiled without optimization so each has a plain frame-setup
// prologue long enough to be overwritten.
__attribute__((noinline, used)) float fake_patched_float(uintptr_t self) {
	host.self = self;
	host.patched_float++;
	return 200.0f;
}

__attribute__((noinline, used)) bool fake_patched_bool(uintptr_t self) {
	host.self = self;
	host.patched_bool++;
	return false;
}

__attribute__((noinline, used)) void fake_patched_tick(uintptr_t self, float delta) {
	host.self = self;
	host.patched_tick++;
	host.tick_delta = delta;
}

__attribute__((noinline, used)) float fake_override_float(uintptr_t self) {
	return 1000.0f;
}

__attribute__((noinline, used)) bool fake_override_bool(uintptr_t self) {
	return true;
}

__attribute__((noinline, used)) void fake_override_tick(uintptr_t self, float delta) {
	host.tick_delta = delta * 2;
}

static uintptr_t new_std_string(const char* s) {
	char** str = malloc(sizeof(char*));
	*str = strdup(s);
	return (uintptr_t)str;
}

static void free_std_string(uintptr_t p) {
	char** str = (char**)p;
	free(*str);
	free(str);
}
*/
import "C"

import (
	"sync"
	"unsafe"
)

// Mangled names exported by the fake host.
const (
	SymGetPosition  = "_ZN5Actor11GetPositionEv"
	SymGetVelocity  = "_ZN5Actor11GetVelocityEv"
	SymGetRotation  = "_ZN5Actor11GetRotationEv"
	SymSetPosition  = "_ZN5Actor11SetPositionERK7Vector3"
	SymSetVelocity  = "_ZN5Actor11SetVelocityERK7Vector3"
	SymJump         = "_ZN20GameServerConnection4JumpEb"
	SymGetItem      = "_ZN7GameAPI13GetItemByNameEPKc"
	SymAddItem      = "_ZN6Player7AddItemEP5IItemjb"
	SymFastTravel   = "_ZN6Player10FastTravelEPKcS1_"
	SymGame         = "Game"
	SymWalkingSpeed = "_ZN6Player15GetWalkingSpeedEv"
	SymCanJump      = "_ZN6Player7CanJumpEv"
	SymTick         = "_ZN6Player4TickEf"
)

// GameAPI is the value stored in the fake host's Game variable.
const GameAPI = uintptr(0x9a3e00)

// Static addresses of the fake functions.
var (
	PatchedFloat   = uintptr(unsafe.Pointer(C.fake_patched_float))
	PatchedBool    = uintptr(unsafe.Pointer(C.fake_patched_bool))
	PatchedTick    = uintptr(unsafe.Pointer(C.fake_patched_tick))
	OverrideFloat  = uintptr(unsafe.Pointer(C.fake_override_float))
	OverrideBool   = uintptr(unsafe.Pointer(C.fake_override_bool))
	OverrideTick   = uintptr(unsafe.Pointer(C.fake_override_tick))
	gameVarAddress = uintptr(unsafe.Pointer(&C.fake_game))
)

// Symbols returns the fake host's export table.
func Symbols() map[string]uintptr {
	return map[string]uintptr{
		SymGetPosition:  uintptr(unsafe.Pointer(C.fake_get_position)),
		SymGetVelocity:  uintptr(unsafe.Pointer(C.fake_get_velocity)),
		SymGetRotation:  uintptr(unsafe.Pointer(C.fake_get_rotation)),
		SymSetPosition:  uintptr(unsafe.Pointer(C.fake_set_position)),
		SymSetVelocity:  uintptr(unsafe.Pointer(C.fake_set_velocity)),
		SymJump:         uintptr(unsafe.Pointer(C.fake_jump)),
		SymGetItem:      uintptr(unsafe.Pointer(C.fake_get_item_by_name)),
		SymAddItem:      uintptr(unsafe.Pointer(C.fake_add_item)),
		SymFastTravel:   uintptr(unsafe.Pointer(C.fake_fast_travel)),
		SymGame:         gameVarAddress,
		SymWalkingSpeed: PatchedFloat,
		SymCanJump:      PatchedBool,
		SymTick:         PatchedTick,
	}
}

// Resolver resolves the fake host's symbols and counts lookups.
type Resolver struct {
	mu      sync.Mutex
	symbols map[string]uintptr
	lookups map[string]int
}

// NewResolver returns a Resolver over Symbols.
func NewResolver() *Resolver {
	return &Resolver{
		symbols: Symbols(),
		lookups: map[string]int{},
	}
}

func (r *Resolver) Resolve(name string) (uintptr, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups[name]++
	addr, ok := r.symbols[name]
	if !ok {
		return 0, &missingError{name}
	}
	return addr, nil
}

// Lookups returns how many times name has been resolved.
func (r *Resolver) Lookups(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookups[name]
}

type missingError struct{ name string }

func (e *missingError) Error() string { return "fake host does not export " + e.name }

// Reset clears all recorded calls and state.
func Reset() {
	C.reset()
}

// Calls counts the calls the fake host has received since the last Reset.
type Calls struct {
	GetPosition, SetPosition int
	GetVelocity, SetVelocity int
	GetRotation              int
	Jump                     int
	GetItem, AddItem         int
	FastTravel               int
	PatchedFloat             int
	PatchedBool              int
	PatchedTick              int
}

// Recorded returns the call counts.
func Recorded() Calls {
	s := C.state()
	return Calls{
		GetPosition:  int(s.get_position),
		SetPosition:  int(s.set_position),
		GetVelocity:  int(s.get_velocity),
		SetVelocity:  int(s.set_velocity),
		GetRotation:  int(s.get_rotation),
		Jump:         int(s.jump),
		GetItem:      int(s.get_item),
		AddItem:      int(s.add_item),
		FastTravel:   int(s.fast_travel),
		PatchedFloat: int(s.patched_float),
		PatchedBool:  int(s.patched_bool),
		PatchedTick:  int(s.patched_tick),
	}
}

// LastSelf returns the receiver of the most recent call.
func LastSelf() uintptr {
	return uintptr(C.state().self)
}

func vec(v C.hv3) [3]float32 {
	return [3]float32{float32(v.x), float32(v.y), float32(v.z)}
}

func cvec(v [3]float32) C.hv3 {
	return C.hv3{x: C.float(v[0]), y: C.float(v[1]), z: C.float(v[2])}
}

// Position returns the host-side position.
func Position() [3]float32 { return vec(C.state().position) }

// Velocity returns the host-side velocity.
func Velocity() [3]float32 { return vec(C.state().velocity) }

// SetHostPosition sets the position returned by GetPosition.
func SetHostPosition(v [3]float32) { C.state().position = cvec(v) }

// SetHostVelocity sets the velocity returned by GetVelocity.
func SetHostVelocity(v [3]float32) { C.state().velocity = cvec(v) }

// SetHostRotation sets the pitch, yaw and roll returned by GetRotation.
func SetHostRotation(v [3]float32) { C.state().rotation = cvec(v) }

// Jumps returns the jump states sent so far, oldest first.
func Jumps() []bool {
	s := C.state()
	n := int(s.jump)
	if n > len(s.jumps) {
		n = len(s.jumps)
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = bool(s.jumps[i])
	}
	return out
}

// Item returns the arguments of the last item lookup and AddItem call.
func Item() (name string, item uintptr, count uint32, partial bool) {
	s := C.state()
	return C.GoString(&s.item_name[0]), uintptr(s.item), uint32(s.count), bool(s.partial)
}

// Travel returns the zones passed to the last FastTravel call.
func Travel() (from, to string) {
	s := C.state()
	return C.GoString(&s.from[0]), C.GoString(&s.to[0])
}

// TickDelta returns the delta passed to the last tick.
func TickDelta() float32 {
	return float32(C.state().tick_delta)
}

// Alloc returns size zeroed bytes of C memory standing in for a host object.
func Alloc(size uintptr) uintptr {
	return uintptr(C.calloc(1, C.size_t(size)))
}

// Free releases memory from Alloc.
func Free(addr uintptr) {
	C.free(unsafe.Pointer(addr))
}

// NewStdString builds a `const std::string&` argument holding s.
func NewStdString(s string) uintptr {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return uintptr(C.new_std_string(cs))
}

// FreeStdString releases a string from NewStdString.
func FreeStdString(addr uintptr) {
	C.free_std_string(C.uintptr_t(addr))
}
