package arena

// RacialBonus is a percentage applied to one base stat of a race.
type RacialBonus struct {
	Stat    Stat `json:"stat"`
	Percent int  `json:"percent"`
}

// RaceTemplate is an immutable playable race definition.
type RaceTemplate struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Base        StatBlock     `json:"base"`
	Bonuses     []RacialBonus `json:"bonuses"`
	Abilities   []string      `json:"abilities"`
}

// BonusPercent returns the summed racial percentage for stat s.
func (r *RaceTemplate) BonusPercent(s Stat) int {
	if r == nil {
		return 0
	}
	pct := 0
	for _, b := range r.Bonuses {
		if b.Stat == s {
			pct += b.Percent
		}
	}
	return pct
}

// EnemyTemplate is a scripted opponent with a fixed stat block.
type EnemyTemplate struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Stats       StatBlock `json:"stats"`
	MinLevel    int       `json:"min_level"`
	// Coefficient scales victory rewards against this enemy.
	Coefficient float64 `json:"coefficient"`
}

// Difficulty labels a randomly generated race opponent.
type Difficulty string

// Random opponent difficulties.
const (
	DifficultyWeak   Difficulty = "Weak"
	DifficultyNormal Difficulty = "Normal"
	DifficultyStrong Difficulty = "Strong"
)

// Difficulties lists the random opponent difficulties in roll order.
var Difficulties = []Difficulty{DifficultyWeak, DifficultyNormal, DifficultyStrong}

// Multiplier returns the strength and dodge scaling in percent.
func (d Difficulty) Multiplier() int {
	switch d {
	case DifficultyWeak:
		return 80
	case DifficultyStrong:
		return 120
	}
	return 100
}

// Coefficient returns the reward coefficient of the difficulty.
func (d Difficulty) Coefficient() float64 {
	switch d {
	case DifficultyWeak:
		return 0.5
	case DifficultyStrong:
		return 1.5
	}
	return 1.0
}
