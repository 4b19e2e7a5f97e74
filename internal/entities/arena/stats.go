// Package arena provides the core data structures of the gladiator arena.
package arena

// Stat names one of the six combat stats.
type Stat string

// The six combat stats.
const (
	StatStrength    Stat = "strength"
	StatVitality    Stat = "vitality"
	StatStamina     Stat = "stamina"
	StatDodge       Stat = "dodge"
	StatInitiative  Stat = "initiative"
	StatWeaponskill Stat = "weaponskill"
)

// Stats lists every stat in display order.
var Stats = []Stat{
	StatStrength,
	StatVitality,
	StatStamina,
	StatDodge,
	StatInitiative,
	StatWeaponskill,
}

// Valid reports whether s is one of the six stats.
func (s Stat) Valid() bool {
	switch s {
	case StatStrength, StatVitality, StatStamina, StatDodge, StatInitiative, StatWeaponskill:
		return true
	}
	return false
}

// StatBlock holds one integer per stat. It is used for race bases, allocated
// points, training gains and item bonuses alike.
type StatBlock struct {
	Strength    int `json:"strength"`
	Vitality    int `json:"vitality"`
	Stamina     int `json:"stamina"`
	Dodge       int `json:"dodge"`
	Initiative  int `json:"initiative"`
	Weaponskill int `json:"weaponskill"`
}

// Get returns the value of stat s, zero for unknown stats.
func (b StatBlock) Get(s Stat) int {
	switch s {
	case StatStrength:
		return b.Strength
	case StatVitality:
		return b.Vitality
	case StatStamina:
		return b.Stamina
	case StatDodge:
		return b.Dodge
	case StatInitiative:
		return b.Initiative
	case StatWeaponskill:
		return b.Weaponskill
	}
	return 0
}

// Set assigns v to stat s. Unknown stats are ignored.
func (b *StatBlock) Set(s Stat, v int) {
	switch s {
	case StatStrength:
		b.Strength = v
	case StatVitality:
		b.Vitality = v
	case StatStamina:
		b.Stamina = v
	case StatDodge:
		b.Dodge = v
	case StatInitiative:
		b.Initiative = v
	case StatWeaponskill:
		b.Weaponskill = v
	}
}

// Add returns the element-wise sum of b and o.
func (b StatBlock) Add(o StatBlock) StatBlock {
	out := b
	for _, s := range Stats {
		out.Set(s, b.Get(s)+o.Get(s))
	}
	return out
}

// Total sums every stat.
func (b StatBlock) Total() int {
	total := 0
	for _, s := range Stats {
		total += b.Get(s)
	}
	return total
}

// Allocation maps stat names to the points a player assigns to them.
// It arrives from clients as-is and must be validated before use.
type Allocation map[Stat]int

// Total sums every allocated value, including invalid entries.
func (a Allocation) Total() int {
	total := 0
	for _, v := range a {
		total += v
	}
	return total
}

// Block converts the allocation to a StatBlock, dropping unknown stats.
func (a Allocation) Block() StatBlock {
	var b StatBlock
	for s, v := range a {
		b.Set(s, v)
	}
	return b
}

// EffectiveStatSheet is the final combat sheet derived from race, allocated
// points and equipment. It is never persisted.
type EffectiveStatSheet struct {
	StatBlock
	MaxHealth int `json:"max_health"`
}
