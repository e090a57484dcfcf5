package game

import "unsafe"

const connectionSize = 0x130

// GameServerConnection overlays the client's connection to the game server.
type GameServerConnection struct {
	ServerConnection [256]byte
	Sock             uintptr
	WriteStream      [32]byte
	TickInProgress   bool
	_                [7]byte
}

var (
	_ [unsafe.Sizeof(GameServerConnection{}) - connectionSize]byte
	_ [connectionSize - unsafe.Sizeof(GameServerConnection{})]byte
)

// ConnectionAt views the host GameServerConnection at addr.
func ConnectionAt(addr uintptr) *GameServerConnection {
	return (*GameServerConnection)(unsafe.Pointer(addr))
}

func (c *GameServerConnection) Address() uintptr {
	return uintptr(unsafe.Pointer(c))
}

// Jump calls GameServerConnection::Jump, which reports the jump key state
// to the server.
func (c *GameServerConnection) Jump(state bool) {
	host().jump.Fn()(c.Address(), state)
}
