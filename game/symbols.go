package game

// Host symbols called through the foreign-function adapter.
const (
	SymGame             = "Game"
	SymGetItemByName    = "_ZN7GameAPI13GetItemByNameEPKc"
	SymActorGetPosition = "_ZN5Actor11GetPositionEv"
	SymActorGetVelocity = "_ZN5Actor11GetVelocityEv"
	SymActorGetRotation = "_ZN5Actor11GetRotationEv"
	SymActorSetPosition = "_ZN5Actor11SetPositionERK7Vector3"
	SymActorSetVelocity = "_ZN5Actor11SetVelocityERK7Vector3"
	SymPlayerAddItem    = "_ZN6Player7AddItemEP5IItemjb"
	SymPlayerFastTravel = "_ZN6Player10FastTravelEPKcS1_"
	SymConnectionJump   = "_ZN20GameServerConnection4JumpEb"
)

// Host symbols that get intercepted.
const (
	SymPlayerGetWalkingSpeed      = "_ZN6Player15GetWalkingSpeedEv"
	SymPlayerGetJumpSpeed         = "_ZN6Player12GetJumpSpeedEv"
	SymPlayerGetJumpHoldTime      = "_ZN6Player15GetJumpHoldTimeEv"
	SymPlayerCanJump              = "_ZN6Player7CanJumpEv"
	SymCosmeticItemCanUse         = "_ZN12CosmeticItem6CanUseEP7IPlayer"
	SymRubicksCubeCanStealItem    = "_ZN11RubicksCube12CanStealItemEP6PlayerP5IItem"
	SymPlayerTick                 = "_ZN6Player4TickEf"
	SymClientWorldChat            = "_ZN11ClientWorld4ChatEP6PlayerRKSs"
	SymConnectionMoveAndGetEvents = "_ZN20GameServerConnection16MoveAndGetEventsEP6Playerf"
)

// Symbols lists every host symbol the library depends on.
func Symbols() []string {
	return []string{
		SymGame,
		SymGetItemByName,
		SymActorGetPosition,
		SymActorGetVelocity,
		SymActorGetRotation,
		SymActorSetPosition,
		SymActorSetVelocity,
		SymPlayerAddItem,
		SymPlayerFastTravel,
		SymConnectionJump,
		SymPlayerGetWalkingSpeed,
		SymPlayerGetJumpSpeed,
		SymPlayerGetJumpHoldTime,
		SymPlayerCanJump,
		SymCosmeticItemCanUse,
		SymRubicksCubeCanStealItem,
		SymPlayerTick,
		SymClientWorldChat,
		SymConnectionMoveAndGetEvents,
	}
}
