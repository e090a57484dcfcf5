// Command libpwnhook is built as a shared library and preloaded into the
// game client:
//
//	go build -buildmode=c-shared -o libpwnhook.so ./cmd/libpwnhook
//	LD_PRELOAD=./libpwnhook.so ./PwnAdventure3-Linux-Shipping
//
// The hooks are attached when the library loads. Settings come from the
// PWNHOOK_* environment variables.
package main

/*
#include <stdbool.h>
#include <stdint.h>

extern float pwnhook_walking_speed(uintptr_t);
extern float pwnhook_jump_speed(uintptr_t);
extern float pwnhook_jump_hold_time(uintptr_t);
extern bool pwnhook_can_jump(uintptr_t);
extern bool pwnhook_cosmetic_can_use(uintptr_t, uintptr_t);
extern bool pwnhook_can_steal_item(uintptr_t, uintptr_t, uintptr_t);
extern void pwnhook_player_tick(uintptr_t, float);
extern void pwnhook_chat(uintptr_t, uintptr_t, uintptr_t);
extern void pwnhook_move_and_get_events(uintptr_t, uintptr_t, float);
*/
import "C"

import (
	"fmt"
	"os"
	"unsafe"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"

	"github.com/pboyd/interpose"
	"github.com/pboyd/interpose/game"
	"github.com/pboyd/interpose/hack"
	"github.com/pboyd/interpose/symbol"
)

// hooks is set before any host function is redirected and never changes.
var hooks *hack.Hooks

func entries() hack.Entries {
	return hack.Entries{
		WalkingSpeed:     uintptr(unsafe.Pointer(C.pwnhook_walking_speed)),
		JumpSpeed:        uintptr(unsafe.Pointer(C.pwnhook_jump_speed)),
		JumpHoldTime:     uintptr(unsafe.Pointer(C.pwnhook_jump_hold_time)),
		CanJump:          uintptr(unsafe.Pointer(C.pwnhook_can_jump)),
		CosmeticCanUse:   uintptr(unsafe.Pointer(C.pwnhook_cosmetic_can_use)),
		CanStealItem:     uintptr(unsafe.Pointer(C.pwnhook_can_steal_item)),
		Tick:             uintptr(unsafe.Pointer(C.pwnhook_player_tick)),
		Chat:             uintptr(unsafe.Pointer(C.pwnhook_chat)),
		MoveAndGetEvents: uintptr(unsafe.Pointer(C.pwnhook_move_and_get_events)),
	}
}

func attach() error {
	cfg, err := hack.LoadConfig()
	if err != nil {
		return err
	}
	level, err := cfg.Level()
	if err != nil {
		return err
	}
	log.SetLevel(level)

	syms := symbol.Default()
	game.Link(syms)

	hooks = hack.New(cfg).Hooks(entries())

	engine := interpose.New(syms, interpose.NewInlinePatcher())
	if err := engine.Attach(hooks.All()...); err != nil {
		return fmt.Errorf("attach: %w", err)
	}

	log.WithFields(log.Fields{
		"hooks":   engine.Len(),
		"trigger": cfg.Trigger,
	}).Info("pwnhook loaded")
	return nil
}

func init() {
	log.SetHandler(cli.New(os.Stderr))

	if err := attach(); err != nil {
		log.WithError(err).Fatal("pwnhook failed to load")
	}
}

func main() {}
