package hack

import (
	"github.com/apex/log"

	"github.com/pboyd/interpose"
	"github.com/pboyd/interpose/ffi"
	"github.com/pboyd/interpose/game"
)

// Entries are the native entry points the host is redirected to, one per
// intercepted function.
type Entries struct {
	WalkingSpeed     uintptr
	JumpSpeed        uintptr
	JumpHoldTime     uintptr
	CanJump          uintptr
	CosmeticCanUse   uintptr
	CanStealItem     uintptr
	Tick             uintptr
	Chat             uintptr
	MoveAndGetEvents uintptr
}

// Hooks are the interceptions the hack installs.
type Hooks struct {
	WalkingSpeed     *interpose.Hook[func(self uintptr) float32]
	JumpSpeed        *interpose.Hook[func(self uintptr) float32]
	JumpHoldTime     *interpose.Hook[func(self uintptr) float32]
	CanJump          *interpose.Hook[func(self uintptr) bool]
	CosmeticCanUse   *interpose.Hook[func(self, player uintptr) bool]
	CanStealItem     *interpose.Hook[func(self, player, item uintptr) bool]
	Tick             *interpose.Hook[func(self uintptr, delta float32)]
	Chat             *interpose.Hook[func(self, player, text uintptr)]
	MoveAndGetEvents *interpose.Hook[func(self, player uintptr, delta float32)]
}

// Hooks builds the interceptions, redirecting the host to e.
func (h *Hack) Hooks(e Entries) *Hooks {
	return &Hooks{
		WalkingSpeed: &interpose.Hook[func(uintptr) float32]{
			Symbol:  game.SymPlayerGetWalkingSpeed,
			Entry:   e.WalkingSpeed,
			Bind:    ffi.ReturnsFloat,
			Replace: interpose.Override(h.constant(h.cfg.WalkingSpeed)),
		},
		JumpSpeed: &interpose.Hook[func(uintptr) float32]{
			Symbol:  game.SymPlayerGetJumpSpeed,
			Entry:   e.JumpSpeed,
			Bind:    ffi.ReturnsFloat,
			Replace: interpose.Override(h.constant(h.cfg.JumpSpeed)),
		},
		JumpHoldTime: &interpose.Hook[func(uintptr) float32]{
			Symbol:  game.SymPlayerGetJumpHoldTime,
			Entry:   e.JumpHoldTime,
			Bind:    ffi.ReturnsFloat,
			Replace: interpose.Override(h.constant(h.cfg.JumpHoldTime)),
		},
		CanJump: &interpose.Hook[func(uintptr) bool]{
			Symbol:  game.SymPlayerCanJump,
			Entry:   e.CanJump,
			Bind:    ffi.ReturnsBool,
			Replace: interpose.Override(func(uintptr) bool { return true }),
		},
		CosmeticCanUse: &interpose.Hook[func(uintptr, uintptr) bool]{
			Symbol:  game.SymCosmeticItemCanUse,
			Entry:   e.CosmeticCanUse,
			Bind:    ffi.TakesPtrReturnsBool,
			Replace: interpose.Override(func(uintptr, uintptr) bool { return true }),
		},
		CanStealItem: &interpose.Hook[func(uintptr, uintptr, uintptr) bool]{
			Symbol:  game.SymRubicksCubeCanStealItem,
			Entry:   e.CanStealItem,
			Bind:    ffi.TakesPtr2ReturnsBool,
			Replace: interpose.Override(func(uintptr, uintptr, uintptr) bool { return true }),
		},
		Tick: &interpose.Hook[func(uintptr, float32)]{
			Symbol:  game.SymPlayerTick,
			Entry:   e.Tick,
			Bind:    ffi.TakesFloat,
			Replace: h.tick,
		},
		Chat: &interpose.Hook[func(uintptr, uintptr, uintptr)]{
			Symbol:  game.SymClientWorldChat,
			Entry:   e.Chat,
			Bind:    ffi.TakesPtr2,
			Replace: h.chat,
		},
		MoveAndGetEvents: &interpose.Hook[func(uintptr, uintptr, float32)]{
			Symbol:  game.SymConnectionMoveAndGetEvents,
			Entry:   e.MoveAndGetEvents,
			Bind:    ffi.TakesPtrFloat,
			Replace: h.move,
		},
	}
}

// All returns every hook, in attach order.
func (hs *Hooks) All() []interpose.Interceptor {
	return []interpose.Interceptor{
		hs.WalkingSpeed,
		hs.JumpSpeed,
		hs.JumpHoldTime,
		hs.CanJump,
		hs.CosmeticCanUse,
		hs.CanStealItem,
		hs.Tick,
		hs.Chat,
		hs.MoveAndGetEvents,
	}
}

func (h *Hack) constant(v float32) func(uintptr) float32 {
	return func(uintptr) float32 {
		return v
	}
}

// tick logs the player's position and velocity when enabled.
func (h *Hack) tick(original func(uintptr, float32)) func(uintptr, float32) {
	return func(self uintptr, delta float32) {
		player := game.PlayerAt(self)

		if h.state.PrintPosition.Load() {
			log.WithFields(log.Fields{
				"position": player.Position().String(),
				"rotation": player.Rotation().String(),
			}).Info("player")
		}
		if h.state.PrintVelocity.Load() {
			log.WithField("velocity", player.Velocity().String()).Info("player")
		}

		original(self, delta)
	}
}

// chat intercepts command lines before they're sent.
func (h *Hack) chat(original func(uintptr, uintptr, uintptr)) func(uintptr, uintptr, uintptr) {
	return func(self, player, text uintptr) {
		line := game.StdString(text)
		if !h.IsCommand(line) {
			original(self, player, text)
			return
		}
		h.runCommand(game.PlayerAt(player), line)
	}
}

// move applies float mode. The server treats a player that hasn't jumped
// recently as falling, so the jump key is toggled on every move.
func (h *Hack) move(original func(uintptr, uintptr, float32)) func(uintptr, uintptr, float32) {
	return func(self, player uintptr, delta float32) {
		if h.state.Float.Load() {
			game.ConnectionAt(self).Jump(h.state.nextJump())

			p := game.PlayerAt(player)
			vel := p.Velocity()
			vel.Z = h.cfg.FloatVelocity
			p.SetVelocity(&vel)
		}

		original(self, player, delta)
	}
}
