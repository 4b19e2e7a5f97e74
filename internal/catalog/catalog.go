// Package catalog serves the static game data: playable races, scripted
// enemies and the equipment shop. Everything is loaded at startup and never
// mutated; callers receive copies.
package catalog

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
)

// Catalog provides read-only access to templates and items
type Catalog interface {
	// ListRaces returns every playable race
	ListRaces() []*arena.RaceTemplate

	// GetRace looks up a race by id or name
	GetRace(id string) (*arena.RaceTemplate, error)

	// ListEnemies returns enemies unlocked at level, or all when level <= 0
	ListEnemies(level int) []*arena.EnemyTemplate

	// GetEnemy looks up an enemy by id or name
	GetEnemy(id string) (*arena.EnemyTemplate, error)

	// ListItems returns every item, ordered by level requirement then name
	ListItems() []*arena.Item

	// GetItem looks up an item by id
	GetItem(id string) (*arena.Item, error)

	// Items resolves a list of item ids, failing on the first unknown id
	Items(ids []string) ([]*arena.Item, error)
}

type static struct {
	races   []*arena.RaceTemplate
	enemies []*arena.EnemyTemplate
	items   []*arena.Item
}

// New returns the built-in catalog
func New() Catalog {
	items := make([]*arena.Item, len(defaultItems))
	copy(items, defaultItems)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].LevelRequirement != items[j].LevelRequirement {
			return items[i].LevelRequirement < items[j].LevelRequirement
		}
		return items[i].Name < items[j].Name
	})

	return &static{
		races:   defaultRaces,
		enemies: defaultEnemies,
		items:   items,
	}
}

func normalize(id string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(id)), " ", "_")
}

func (c *static) ListRaces() []*arena.RaceTemplate {
	out := make([]*arena.RaceTemplate, 0, len(c.races))
	for _, r := range c.races {
		out = append(out, cloneRace(r))
	}
	return out
}

func (c *static) GetRace(id string) (*arena.RaceTemplate, error) {
	key := normalize(id)
	for _, r := range c.races {
		if r.ID == key || normalize(r.Name) == key {
			return cloneRace(r), nil
		}
	}
	return nil, errors.NotFoundf("race %q not found", id)
}

func (c *static) ListEnemies(level int) []*arena.EnemyTemplate {
	out := make([]*arena.EnemyTemplate, 0, len(c.enemies))
	for _, e := range c.enemies {
		if level > 0 && e.MinLevel > level {
			continue
		}
		enemy := *e
		out = append(out, &enemy)
	}
	return out
}

func (c *static) GetEnemy(id string) (*arena.EnemyTemplate, error) {
	key := normalize(id)
	for _, e := range c.enemies {
		if e.ID == key || normalize(e.Name) == key {
			enemy := *e
			return &enemy, nil
		}
	}
	return nil, errors.NotFoundf("enemy %q not found", id)
}

func (c *static) ListItems() []*arena.Item {
	out := make([]*arena.Item, 0, len(c.items))
	for _, it := range c.items {
		item := *it
		out = append(out, &item)
	}
	return out
}

func (c *static) GetItem(id string) (*arena.Item, error) {
	key := normalize(id)
	for _, it := range c.items {
		if it.ID == key {
			item := *it
			return &item, nil
		}
	}
	return nil, errors.NotFoundf("item %q not found", id)
}

func (c *static) Items(ids []string) ([]*arena.Item, error) {
	out := make([]*arena.Item, 0, len(ids))
	for _, id := range ids {
		item, err := c.GetItem(id)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, nil
}

func cloneRace(r *arena.RaceTemplate) *arena.RaceTemplate {
	out := *r
	out.Bonuses = append([]arena.RacialBonus(nil), r.Bonuses...)
	out.Abilities = append([]string(nil), r.Abilities...)
	return &out
}
