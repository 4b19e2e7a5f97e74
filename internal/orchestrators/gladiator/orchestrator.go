// Package gladiator implements the gladiator orchestrator: creation, stat
// allocation, training and the equipment shop.
package gladiator

//go:generate mockgen -destination=mock/mock_service.go -package=gladiatormock github.com/KirkDiggler/arena-api/internal/orchestrators/gladiator Service

import (
	"context"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KirkDiggler/arena-api/internal/catalog"
	"github.com/KirkDiggler/arena-api/internal/engine/rewards"
	"github.com/KirkDiggler/arena-api/internal/engine/stats"
	"github.com/KirkDiggler/arena-api/internal/entities/arena"
	"github.com/KirkDiggler/arena-api/internal/errors"
	"github.com/KirkDiggler/arena-api/internal/pkg/clock"
	"github.com/KirkDiggler/arena-api/internal/pkg/keylock"
	"github.com/KirkDiggler/arena-api/internal/repositories/players"
)

const (
	// DefaultStartingGold is what a new gladiator begins with.
	DefaultStartingGold = 100

	// TrainingCost is the gold price of one training session.
	TrainingCost = 10

	// TrainingExperience is granted by every training session.
	TrainingExperience = 10

	// MaxNameLength bounds gladiator names in runes.
	MaxNameLength = 32
)

// trainingGains is added to a gladiator's points per training session.
var trainingGains = arena.StatBlock{Strength: 1, Dodge: 1, Weaponskill: 1, Vitality: 3}

// Service defines the interface for gladiator operations
type Service interface {
	CreateGladiator(ctx context.Context, input *CreateGladiatorInput) (*CreateGladiatorOutput, error)
	GetGladiator(ctx context.Context, input *GetGladiatorInput) (*GetGladiatorOutput, error)
	AllocatePoints(ctx context.Context, input *AllocatePointsInput) (*AllocatePointsOutput, error)
	Train(ctx context.Context, input *TrainInput) (*TrainOutput, error)

	// Static data
	ListRaces(ctx context.Context, input *ListRacesInput) (*ListRacesOutput, error)
	ListEnemies(ctx context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error)
	ListEquipment(ctx context.Context, input *ListEquipmentInput) (*ListEquipmentOutput, error)

	// Shop and equipment
	PurchaseItem(ctx context.Context, input *PurchaseItemInput) (*PurchaseItemOutput, error)
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)
	UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error)

	// DeriveStats previews a sheet without touching stored state
	DeriveStats(ctx context.Context, input *DeriveStatsInput) (*DeriveStatsOutput, error)
}

// Config holds the dependencies for the gladiator orchestrator
type Config struct {
	PlayerRepo players.Repository
	Catalog    catalog.Catalog
	Clock      clock.Clock
	// Locks serializes read-modify-write per player; shared with the
	// combat orchestrator so rewards and shop purchases never interleave
	Locks *keylock.Locker

	CreationPool       int
	StartingGold       int
	StatPointsPerLevel int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.PlayerRepo == nil {
		vb.RequiredField("PlayerRepo")
	}
	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}
	if c.CreationPool < 0 {
		vb.InvalidField("CreationPool", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	playerRepo players.Repository
	catalog    catalog.Catalog
	clock      clock.Clock
	locks      *keylock.Locker

	creationPool int
	startingGold int
	rules        rewards.Rules
}

// NewOrchestrator creates a new gladiator orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		playerRepo:   cfg.PlayerRepo,
		catalog:      cfg.Catalog,
		clock:        cfg.Clock,
		locks:        cfg.Locks,
		creationPool: cfg.CreationPool,
		startingGold: cfg.StartingGold,
		rules:        rewards.Rules{StatPointsPerLevel: cfg.StatPointsPerLevel},
	}
	if o.locks == nil {
		o.locks = keylock.New()
	}
	if o.creationPool == 0 {
		o.creationPool = stats.CreationPool
	}
	if o.startingGold == 0 {
		o.startingGold = DefaultStartingGold
	}

	return o, nil
}

func (o *orchestrator) CreateGladiator(ctx context.Context, input *CreateGladiatorInput) (*CreateGladiatorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	name := strings.TrimSpace(input.Name)
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("name", name, vb)
	if utf8.RuneCountInString(name) > MaxNameLength {
		vb.Fieldf("name", "must be at most %d characters", MaxNameLength)
	}
	errors.ValidateRequired("race_id", input.RaceID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	race, err := o.catalog.GetRace(input.RaceID)
	if err != nil {
		return nil, err
	}
	if err := stats.ValidateAllocation(input.Allocation, o.creationPool); err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	now := o.clock.Now()
	g := &arena.Gladiator{
		PlayerID:  input.PlayerID,
		Name:      name,
		RaceID:    race.ID,
		Points:    input.Allocation.Block(),
		Level:     1,
		Gold:      o.startingGold,
		Inventory: []string{},
		Equipped:  map[arena.Slot]string{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Gladiator created",
		"player_id", g.PlayerID,
		"name", g.Name,
		"race", g.RaceID,
		"allocated", input.Allocation.Total(),
	)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &CreateGladiatorOutput{View: view}, nil
}

func (o *orchestrator) GetGladiator(ctx context.Context, input *GetGladiatorInput) (*GetGladiatorOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &GetGladiatorOutput{View: view}, nil
}

func (o *orchestrator) AllocatePoints(ctx context.Context, input *AllocatePointsInput) (*AllocatePointsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	if err := stats.ValidateAllocation(input.Allocation, g.UnspentPoints); err != nil {
		return nil, err
	}
	if input.Allocation.Total() <= 0 {
		return nil, errors.InvalidAllocation("allocation must spend at least one point")
	}

	g.Points = g.Points.Add(input.Allocation.Block())
	g.UnspentPoints -= input.Allocation.Total()
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Stat points allocated",
		"player_id", g.PlayerID,
		"spent", input.Allocation.Total(),
		"remaining", g.UnspentPoints,
	)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &AllocatePointsOutput{View: view}, nil
}

func (o *orchestrator) Train(ctx context.Context, input *TrainInput) (*TrainOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if g.Gold < TrainingCost {
		return nil, errors.InsufficientGold(g.Gold, TrainingCost)
	}

	grant := rewards.Grant(rewards.Progress{Level: g.Level, Experience: g.Experience}, TrainingExperience, o.rules)

	g.Gold -= TrainingCost
	g.Points = g.Points.Add(trainingGains)
	g.Experience += grant.Experience
	g.Level = grant.NewLevel
	g.UnspentPoints += grant.NewStatPoints
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Gladiator trained",
		"player_id", g.PlayerID,
		"gold", g.Gold,
		"level", g.Level,
		"leveled_up", grant.LeveledUp,
	)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &TrainOutput{
		View:          view,
		GoldSpent:     TrainingCost,
		Experience:    grant.Experience,
		LeveledUp:     grant.LeveledUp,
		NewStatPoints: grant.NewStatPoints,
	}, nil
}

func (o *orchestrator) ListRaces(_ context.Context, _ *ListRacesInput) (*ListRacesOutput, error) {
	return &ListRacesOutput{Races: o.catalog.ListRaces()}, nil
}

func (o *orchestrator) ListEnemies(_ context.Context, input *ListEnemiesInput) (*ListEnemiesOutput, error) {
	level := 0
	if input != nil {
		level = input.Level
	}
	return &ListEnemiesOutput{Enemies: o.catalog.ListEnemies(level)}, nil
}

func (o *orchestrator) ListEquipment(_ context.Context, _ *ListEquipmentInput) (*ListEquipmentOutput, error) {
	return &ListEquipmentOutput{Items: o.catalog.ListItems()}, nil
}

func (o *orchestrator) PurchaseItem(ctx context.Context, input *PurchaseItemInput) (*PurchaseItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(input.ItemID)
	if err != nil {
		return nil, err
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	switch {
	case g.Owns(item.ID):
		return nil, errors.AlreadyExistsf("item %s already owned", item.ID)
	case g.Level < item.LevelRequirement:
		return nil, errors.LevelTooLow(g.Level, item.LevelRequirement)
	case g.Gold < item.Value:
		return nil, errors.InsufficientGold(g.Gold, item.Value)
	}

	g.Gold -= item.Value
	g.Inventory = append(g.Inventory, item.ID)
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Item purchased", "player_id", g.PlayerID, "item_id", item.ID, "gold", g.Gold)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &PurchaseItemOutput{View: view, Item: item}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("player_id", input.PlayerID, vb)
	errors.ValidateRequired("item_id", input.ItemID, vb)
	if !input.Slot.Valid() {
		vb.InvalidField("slot", "unknown slot")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	item, err := o.catalog.GetItem(input.ItemID)
	if err != nil {
		return nil, err
	}
	if item.Slot != input.Slot {
		return nil, errors.SlotMismatch(item.ID, string(input.Slot))
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}
	if !g.Owns(item.ID) {
		return nil, errors.ItemNotOwned(item.ID)
	}

	var replaced *arena.Item
	if prev := g.Equipped[input.Slot]; prev != "" && prev != item.ID {
		if replaced, err = o.catalog.GetItem(prev); err != nil {
			return nil, errors.Wrapf(err, "equipped item %s is unknown", prev)
		}
	}

	if g.Equipped == nil {
		g.Equipped = map[arena.Slot]string{}
	}
	g.Equipped[input.Slot] = item.ID
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Item equipped", "player_id", g.PlayerID, "slot", input.Slot, "item_id", item.ID)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &EquipItemOutput{View: view, Replaced: replaced}, nil
}

func (o *orchestrator) UnequipItem(ctx context.Context, input *UnequipItemInput) (*UnequipItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.PlayerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}
	if !input.Slot.Valid() {
		return nil, errors.InvalidArgumentf("unknown slot %q", input.Slot)
	}

	unlock := o.locks.Lock(input.PlayerID)
	defer unlock()

	g, err := o.load(ctx, input.PlayerID)
	if err != nil {
		return nil, err
	}

	itemID := g.Equipped[input.Slot]
	if itemID == "" {
		return nil, errors.FailedPreconditionf("nothing equipped in slot %s", input.Slot)
	}
	removed, err := o.catalog.GetItem(itemID)
	if err != nil {
		return nil, errors.Wrapf(err, "equipped item %s is unknown", itemID)
	}

	delete(g.Equipped, input.Slot)
	g.UpdatedAt = o.clock.Now()

	if _, err := o.playerRepo.Save(ctx, players.SaveInput{Gladiator: g}); err != nil {
		return nil, errors.Wrapf(err, "failed to save gladiator for player %s", input.PlayerID)
	}

	slog.Info("Item unequipped", "player_id", g.PlayerID, "slot", input.Slot, "item_id", itemID)

	view, err := o.view(g)
	if err != nil {
		return nil, err
	}
	return &UnequipItemOutput{View: view, Removed: removed}, nil
}

func (o *orchestrator) DeriveStats(_ context.Context, input *DeriveStatsInput) (*DeriveStatsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	available := input.Available
	if available <= 0 {
		available = o.creationPool
	}
	if err := stats.ValidateAllocation(input.Allocation, available); err != nil {
		return nil, err
	}

	race, err := o.catalog.GetRace(input.RaceID)
	if err != nil {
		return nil, err
	}
	items, err := o.catalog.Items(input.ItemIDs)
	if err != nil {
		return nil, err
	}
	if err := oneItemPerSlot(items); err != nil {
		return nil, err
	}

	return &DeriveStatsOutput{
		Stats: stats.Derive(race, input.Allocation.Block(), stats.ItemBonuses(items)),
	}, nil
}

func (o *orchestrator) load(ctx context.Context, playerID string) (*arena.Gladiator, error) {
	if playerID == "" {
		return nil, errors.InvalidArgument("player_id is required")
	}
	out, err := o.playerRepo.Get(ctx, players.GetInput{PlayerID: playerID})
	if err != nil {
		return nil, err
	}
	return out.Gladiator, nil
}

func (o *orchestrator) view(g *arena.Gladiator) (*View, error) {
	race, err := o.catalog.GetRace(g.RaceID)
	if err != nil {
		return nil, errors.Wrapf(err, "gladiator %s has unknown race", g.PlayerID)
	}
	inventory, err := o.catalog.Items(g.Inventory)
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve inventory")
	}

	equipped := make(map[arena.Slot]*arena.Item, len(g.Equipped))
	var bonuses []arena.StatBlock
	for _, slot := range arena.Slots {
		id := g.Equipped[slot]
		if id == "" {
			continue
		}
		item, err := o.catalog.GetItem(id)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve equipped item %s", id)
		}
		equipped[slot] = item
		bonuses = append(bonuses, item.Bonus)
	}

	return &View{
		Gladiator:        g,
		Race:             race,
		Stats:            stats.Derive(race, g.Points, bonuses),
		Inventory:        inventory,
		Equipped:         equipped,
		ExperienceToNext: rewards.Threshold(g.Level+1) - g.Experience,
	}, nil
}

// EffectiveStats derives the combat sheet of a stored gladiator. Combat and
// matchmaking snapshot it at session start.
func EffectiveStats(cat catalog.Catalog, g *arena.Gladiator) (arena.EffectiveStatSheet, error) {
	if g == nil {
		return arena.EffectiveStatSheet{}, errors.InvalidArgument("gladiator is required")
	}
	race, err := cat.GetRace(g.RaceID)
	if err != nil {
		return arena.EffectiveStatSheet{}, errors.Wrapf(err, "gladiator %s has unknown race", g.PlayerID)
	}
	items, err := cat.Items(g.EquippedIDs())
	if err != nil {
		return arena.EffectiveStatSheet{}, errors.Wrap(err, "failed to resolve equipped items")
	}
	return stats.Derive(race, g.Points, stats.ItemBonuses(items)), nil
}

func oneItemPerSlot(items []*arena.Item) error {
	seen := make(map[arena.Slot]string, len(items))
	for _, it := range items {
		if prev, ok := seen[it.Slot]; ok {
			return errors.InvalidArgumentf("items %s and %s both use slot %s", prev, it.ID, it.Slot)
		}
		seen[it.Slot] = it.ID
	}
	return nil
}
