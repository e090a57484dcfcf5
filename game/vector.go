package game

import "fmt"

// Vector3 is the host's Vector3.
type Vector3 struct {
	X, Y, Z float32
}

func (v Vector3) String() string {
	return fmt.Sprintf("x: %7.0f, y: %7.0f, z: %7.0f", v.X, v.Y, v.Z)
}

// Rotation is the host's Rotation, in degrees.
type Rotation struct {
	Pitch, Yaw, Roll float32
}

// String formats the heading only. Yaw runs from -180 to 180 and is shifted
// to 0..360. Pitch and roll never change for the player and are not shown.
func (r Rotation) String() string {
	return fmt.Sprintf("%3.0f", r.Yaw+180)
}

// Map is an opaque std::map. Only its size matters.
type Map [48]byte

// Set is an opaque std::set.
type Set [48]byte
