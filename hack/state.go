package hack

import "sync/atomic"

// State holds the toggles. Commands flip them and hooks read them on
// whatever host thread they run on.
type State struct {
	PrintPosition atomic.Bool
	PrintVelocity atomic.Bool
	Float         atomic.Bool

	// Jump state most recently sent in float mode.
	jumping atomic.Bool
}

// nextJump flips the jump state and returns the new value. The first call
// returns true.
func (s *State) nextJump() bool {
	return toggle(&s.jumping)
}

func toggle(b *atomic.Bool) bool {
	for {
		old := b.Load()
		if b.CompareAndSwap(old, !old) {
			return !old
		}
	}
}
