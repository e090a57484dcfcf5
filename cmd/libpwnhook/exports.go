package main

// #include <stdbool.h>
// #include <stdint.h>
import "C"

// Native entry points the host is redirected to. Each one forwards to the
// installed replacement.

//export pwnhook_walking_speed
func pwnhook_walking_speed(self C.uintptr_t) C.float {
	return C.float(hooks.WalkingSpeed.Handler()(uintptr(self)))
}

//export pwnhook_jump_speed
func pwnhook_jump_speed(self C.uintptr_t) C.float {
	return C.float(hooks.JumpSpeed.Handler()(uintptr(self)))
}

//export pwnhook_jump_hold_time
func pwnhook_jump_hold_time(self C.uintptr_t) C.float {
	return C.float(hooks.JumpHoldTime.Handler()(uintptr(self)))
}

//export pwnhook_can_jump
func pwnhook_can_jump(self C.uintptr_t) C.bool {
	return C.bool(hooks.CanJump.Handler()(uintptr(self)))
}

//export pwnhook_cosmetic_can_use
func pwnhook_cosmetic_can_use(self, player C.uintptr_t) C.bool {
	return C.bool(hooks.CosmeticCanUse.Handler()(uintptr(self), uintptr(player)))
}

//export pwnhook_can_steal_item
func pwnhook_can_steal_item(self, player, item C.uintptr_t) C.bool {
	return C.bool(hooks.CanStealItem.Handler()(uintptr(self), uintptr(player), uintptr(item)))
}

//export pwnhook_player_tick
func pwnhook_player_tick(self C.uintptr_t, delta C.float) {
	hooks.Tick.Handler()(uintptr(self), float32(delta))
}

//export pwnhook_chat
func pwnhook_chat(self, player, text C.uintptr_t) {
	hooks.Chat.Handler()(uintptr(self), uintptr(player), uintptr(text))
}

//export pwnhook_move_and_get_events
func pwnhook_move_and_get_events(self, player C.uintptr_t, delta C.float) {
	hooks.MoveAndGetEvents.Handler()(uintptr(self), uintptr(player), float32(delta))
}
