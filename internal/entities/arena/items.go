package arena

// Slot is an equipment slot. Each slot holds at most one item.
type Slot string

// Equipment slots.
const (
	SlotWeapon    Slot = "weapon"
	SlotOffhand   Slot = "offhand"
	SlotHead      Slot = "head"
	SlotShoulders Slot = "shoulders"
	SlotChest     Slot = "chest"
	SlotHands     Slot = "hands"
	SlotLegs      Slot = "legs"
	SlotFeet      Slot = "feet"
	SlotCape      Slot = "cape"
	SlotNeck      Slot = "neck"
	SlotRing      Slot = "ring"
	SlotAmulet    Slot = "amulet"
	SlotBracers   Slot = "bracers"
	SlotOrnament  Slot = "ornament"
)

// Slots lists every equipment slot.
var Slots = []Slot{
	SlotWeapon, SlotOffhand,
	SlotHead, SlotShoulders, SlotChest, SlotHands, SlotLegs, SlotFeet,
	SlotCape, SlotNeck, SlotRing, SlotAmulet, SlotBracers, SlotOrnament,
}

// Valid reports whether s is a known slot.
func (s Slot) Valid() bool {
	for _, known := range Slots {
		if s == known {
			return true
		}
	}
	return false
}

// Item is a piece of equipment from the shop catalog.
type Item struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Slot             Slot      `json:"slot"`
	Type             string    `json:"type"`
	Rarity           string    `json:"rarity"`
	LevelRequirement int       `json:"level_requirement"`
	Bonus            StatBlock `json:"bonus"`
	Value            int       `json:"value"`
	Description      string    `json:"description"`
}
