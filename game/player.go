package game

import "unsafe"

const playerSize = 0x330

// Player overlays the host's Player, which begins with an Actor.
type Player struct {
	Actor
	IPlayer                   uintptr
	CharacterID               uint32
	_                         [4]byte
	PlayerName                uintptr
	TeamName                  uintptr
	AvatarIndex               uint8
	_                         [3]byte
	Colors                    [4]uint32
	_                         [4]byte
	Inventory                 Map
	Pickups                   Set
	Cooldowns                 Map
	CircuitInputs             Map
	CircuitOutputs            Map
	Admin                     bool
	PvPEnabled                bool
	PvPDesired                bool
	_                         [1]byte
	PvPChangeTimer            float32
	PvPChangeReportedTimer    int32
	ChangingServerRegion      bool
	_                         [3]byte
	CurrentRegion             uintptr
	ChangeRegionDestination   uintptr
	AIZones                   Set
	Mana                      int32
	ManaRegenTimer            float32
	HealthRegenCooldown       float32
	HealthRegenTimer          float32
	Countdown                 int32
	RemoteLookPosition        Vector3
	RemoteLookRotation        Rotation
	_                         [4]byte
	Equipped                  [10]uintptr
	CurrentSlot               uint64
	QuestStates               Map
	CurrentQuest              uintptr
	WalkingSpeed              float32
	JumpSpeed                 float32
	JumpHoldTime              float32
	_                         [4]byte
	CurrentNPC                uintptr
	CurrentNPCState           uintptr
	LocalPlayer               uintptr
	EventsToSend              uintptr
	ItemsUpdated              bool
	_                         [3]byte
	ItemSyncTimer             float32
	ChatMessageCounter        uint32
	ChatFloodDecayTimer       float32
	LastHitByItem             uintptr
	LastHitItemTimeLeft       float32
	CircuitStateCooldownTimer float32
}

var (
	_ [unsafe.Sizeof(Player{}) - playerSize]byte
	_ [playerSize - unsafe.Sizeof(Player{})]byte
)

// PlayerAt views the host Player at addr.
func PlayerAt(addr uintptr) *Player {
	return (*Player)(unsafe.Pointer(addr))
}

// FastTravel calls Player::FastTravel to move between two named zones.
func (p *Player) FastTravel(from, to string) {
	host().fastTravel.Fn()(p.Address(), from, to)
}

// AddItem calls Player::AddItem. It reports whether the host accepted the
// item.
func (p *Player) AddItem(item uintptr, count uint32, allowPartial bool) bool {
	return host().addItem.Fn()(p.Address(), item, count, allowPartial)
}
