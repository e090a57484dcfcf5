package game

import "github.com/pboyd/interpose/layout"

// Reverse-engineered layouts of the host objects. The overlay structs are
// checked against these when the package loads; a mismatch panics before any
// host memory is touched.
var (
	ActorLayout = layout.Expect("Actor", actorSize,
		layout.Pointer("IActor", 0x00),
		layout.Scalar("Refs", 0x08, 8),
		layout.Scalar("ID", 0x10, 4),
		layout.Pointer("Target", 0x18),
		layout.Pointer("Timers", 0x20),
		layout.Pointer("BlueprintName", 0x28),
		layout.Pointer("Owner", 0x30),
		layout.Scalar("Health", 0x38, 4),
		layout.Opaque("States", 0x40, 48),
		layout.Scalar("ForwardMovementFraction", 0x70, 4),
		layout.Scalar("StrafeMovementFraction", 0x74, 4),
		layout.Composite("RemotePosition", 0x78, 12),
		layout.Composite("RemoteVelocity", 0x84, 12),
		layout.Composite("RemoteRotation", 0x90, 12),
		layout.Scalar("RemoteLocationBlendFactor", 0x9c, 4),
		layout.Pointer("Spawner", 0xa0),
	)

	PlayerLayout = layout.Expect("Player", playerSize, append(embedded("Actor.", ActorLayout),
		layout.Pointer("IPlayer", 0xa8),
		layout.Scalar("CharacterID", 0xb0, 4),
		layout.Pointer("PlayerName", 0xb8),
		layout.Pointer("TeamName", 0xc0),
		layout.Scalar("AvatarIndex", 0xc8, 1),
		layout.Array("Colors", 0xcc, 16),
		layout.Opaque("Inventory", 0xe0, 48),
		layout.Opaque("Pickups", 0x110, 48),
		layout.Opaque("Cooldowns", 0x140, 48),
		layout.Opaque("CircuitInputs", 0x170, 48),
		layout.Opaque("CircuitOutputs", 0x1a0, 48),
		layout.Scalar("Admin", 0x1d0, 1),
		layout.Scalar("PvPEnabled", 0x1d1, 1),
		layout.Scalar("PvPDesired", 0x1d2, 1),
		layout.Scalar("PvPChangeTimer", 0x1d4, 4),
		layout.Scalar("PvPChangeReportedTimer", 0x1d8, 4),
		layout.Scalar("ChangingServerRegion", 0x1dc, 1),
		layout.Pointer("CurrentRegion", 0x1e0),
		layout.Pointer("ChangeRegionDestination", 0x1e8),
		layout.Opaque("AIZones", 0x1f0, 48),
		layout.Scalar("Mana", 0x220, 4),
		layout.Scalar("ManaRegenTimer", 0x224, 4),
		layout.Scalar("HealthRegenCooldown", 0x228, 4),
		layout.Scalar("HealthRegenTimer", 0x22c, 4),
		layout.Scalar("Countdown", 0x230, 4),
		layout.Composite("RemoteLookPosition", 0x234, 12),
		layout.Composite("RemoteLookRotation", 0x240, 12),
		layout.Array("Equipped", 0x250, 80),
		layout.Scalar("CurrentSlot", 0x2a0, 8),
		layout.Opaque("QuestStates", 0x2a8, 48),
		layout.Pointer("CurrentQuest", 0x2d8),
		layout.Scalar("WalkingSpeed", 0x2e0, 4),
		layout.Scalar("JumpSpeed", 0x2e4, 4),
		layout.Scalar("JumpHoldTime", 0x2e8, 4),
		layout.Pointer("CurrentNPC", 0x2f0),
		layout.Pointer("CurrentNPCState", 0x2f8),
		layout.Pointer("LocalPlayer", 0x300),
		layout.Pointer("EventsToSend", 0x308),
		layout.Scalar("ItemsUpdated", 0x310, 1),
		layout.Scalar("ItemSyncTimer", 0x314, 4),
		layout.Scalar("ChatMessageCounter", 0x318, 4),
		layout.Scalar("ChatFloodDecayTimer", 0x31c, 4),
		layout.Pointer("LastHitByItem", 0x320),
		layout.Scalar("LastHitItemTimeLeft", 0x328, 4),
		layout.Scalar("CircuitStateCooldownTimer", 0x32c, 4),
	)...)

	ConnectionLayout = layout.Expect("GameServerConnection", connectionSize,
		layout.Opaque("ServerConnection", 0x000, 256),
		layout.Pointer("Sock", 0x100),
		layout.Opaque("WriteStream", 0x108, 32),
		layout.Scalar("TickInProgress", 0x128, 1),
	)
)

func init() {
	layout.MustVerify[Actor](ActorLayout)
	layout.MustVerify[Player](PlayerLayout)
	layout.MustVerify[GameServerConnection](ConnectionLayout)
}

// Layouts returns the layouts of every overlay type.
func Layouts() []*layout.Layout {
	return []*layout.Layout{ActorLayout, PlayerLayout, ConnectionLayout}
}

func embedded(prefix string, l *layout.Layout) []layout.Field {
	fields := make([]layout.Field, 0, len(l.Fields))
	for _, f := range l.Fields {
		f.Name = prefix + f.Name
		fields = append(fields, f)
	}
	return fields
}
