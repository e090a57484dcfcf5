package game

import (
	"unsafe"

	"github.com/pboyd/interpose/ffi"
)

const actorSize = 0xa8

// Actor overlays the host's Actor.
type Actor struct {
	IActor                    uintptr // vtable of the IActor base
	Refs                      uint64
	ID                        uint32
	_                         [4]byte
	Target                    uintptr
	Timers                    uintptr
	BlueprintName             uintptr
	Owner                     uintptr
	Health                    int32
	_                         [4]byte
	States                    Map
	ForwardMovementFraction   float32
	StrafeMovementFraction    float32
	RemotePosition            Vector3
	RemoteVelocity            Vector3
	RemoteRotation            Rotation
	RemoteLocationBlendFactor float32
	Spawner                   uintptr
}

var (
	_ [unsafe.Sizeof(Actor{}) - actorSize]byte
	_ [actorSize - unsafe.Sizeof(Actor{})]byte
)

// ActorAt views the host Actor at addr.
func ActorAt(addr uintptr) *Actor {
	return (*Actor)(unsafe.Pointer(addr))
}

// Address returns the host address of the actor.
func (a *Actor) Address() uintptr {
	return uintptr(unsafe.Pointer(a))
}

// Position calls Actor::GetPosition.
func (a *Actor) Position() Vector3 {
	return Vector3(host().getPosition.Fn()(a.Address()))
}

// Velocity calls Actor::GetVelocity.
func (a *Actor) Velocity() Vector3 {
	return Vector3(host().getVelocity.Fn()(a.Address()))
}

// Rotation calls Actor::GetRotation.
func (a *Actor) Rotation() Rotation {
	v := host().getRotation.Fn()(a.Address())
	return Rotation{Pitch: v.X, Yaw: v.Y, Roll: v.Z}
}

// SetPosition calls Actor::SetPosition. pos is passed by reference and is
// not modified.
func (a *Actor) SetPosition(pos *Vector3) {
	host().setPosition.Fn()(a.Address(), (*ffi.Vec3)(pos))
}

// SetVelocity calls Actor::SetVelocity.
func (a *Actor) SetVelocity(vel *Vector3) {
	host().setVelocity.Fn()(a.Address(), (*ffi.Vec3)(vel))
}
