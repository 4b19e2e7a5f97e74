package arena

import "time"

// Gladiator is a player's persisted progression.
type Gladiator struct {
	PlayerID string `json:"player_id"`
	Name     string `json:"name"`
	RaceID   string `json:"race_id"`

	// Points holds allocated stat points plus training gains.
	Points StatBlock `json:"points"`

	Level         int `json:"level"`
	Experience    int `json:"experience"`
	Gold          int `json:"gold"`
	UnspentPoints int `json:"unspent_points"`
	Wins          int `json:"wins"`
	Losses        int `json:"losses"`

	// Inventory lists owned item ids, equipped or not.
	Inventory []string        `json:"inventory"`
	Equipped  map[Slot]string `json:"equipped"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Owns reports whether the gladiator owns itemID.
func (g *Gladiator) Owns(itemID string) bool {
	for _, id := range g.Inventory {
		if id == itemID {
			return true
		}
	}
	return false
}

// EquippedIDs returns the ids of equipped items in slot order.
func (g *Gladiator) EquippedIDs() []string {
	var ids []string
	for _, slot := range Slots {
		if id, ok := g.Equipped[slot]; ok && id != "" {
			ids = append(ids, id)
		}
	}
	return ids
}

// Clone returns a deep copy so callers can mutate without touching stored state.
func (g *Gladiator) Clone() *Gladiator {
	if g == nil {
		return nil
	}
	out := *g
	out.Inventory = append([]string(nil), g.Inventory...)
	out.Equipped = make(map[Slot]string, len(g.Equipped))
	for k, v := range g.Equipped {
		out.Equipped[k] = v
	}
	return &out
}
