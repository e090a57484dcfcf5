// Package hack changes the game's rules from inside the client.
//
// It supplies the replacements for the intercepted host functions: fixed
// movement tunables, permissive ability checks, a per-tick hook that logs
// the player's whereabouts, a float mode and a chat command interpreter.
package hack

import (
	"errors"

	"github.com/apex/log"

	"github.com/pboyd/interpose/game"
)

// Hack is the replacement logic, configured once at load time.
type Hack struct {
	cfg   Config
	state *State
}

// New returns a Hack with all toggles off.
func New(cfg Config) *Hack {
	return &Hack{cfg: cfg, state: &State{}}
}

// State returns the toggles.
func (h *Hack) State() *State {
	return h.state
}

// Config returns the configuration.
func (h *Hack) Config() Config {
	return h.cfg
}

// runCommand executes a chat command. A *CommandError aborts only this
// command; any other panic continues up the stack.
func (h *Hack) runCommand(player *game.Player, line string) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		var cerr *CommandError
		if err, ok := r.(error); ok && errors.As(err, &cerr) {
			log.WithError(cerr).Error("command aborted")
			return
		}
		panic(r)
	}()

	h.Execute(player, line)
}
