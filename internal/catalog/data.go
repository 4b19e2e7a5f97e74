package catalog

import "github.com/KirkDiggler/arena-api/internal/entities/arena"

var defaultRaces = []*arena.RaceTemplate{
	{
		ID:          "human",
		Name:        "Human",
		Description: "Balanced warriors with versatile combat skills",
		Base:        arena.StatBlock{Strength: 8, Vitality: 10, Stamina: 10, Dodge: 5, Initiative: 10, Weaponskill: 5},
		Bonuses: []arena.RacialBonus{
			{Stat: arena.StatWeaponskill, Percent: 10},
			{Stat: arena.StatInitiative, Percent: 10},
		},
		Abilities: []string{"Adaptable", "Disciplined"},
	},
	{
		ID:          "orc",
		Name:        "Orc",
		Description: "Powerful and hardy, with high health and strength",
		Base:        arena.StatBlock{Strength: 10, Vitality: 12, Stamina: 8, Dodge: 3, Initiative: 7, Weaponskill: 3},
		Bonuses: []arena.RacialBonus{
			{Stat: arena.StatStrength, Percent: 20},
			{Stat: arena.StatVitality, Percent: 10},
			{Stat: arena.StatDodge, Percent: -10},
		},
		Abilities: []string{"Bloodrage", "Thick Hide"},
	},
	{
		ID:          "elf",
		Name:        "Elf",
		Description: "Quick and graceful, hard to pin down",
		Base:        arena.StatBlock{Strength: 6, Vitality: 8, Stamina: 10, Dodge: 8, Initiative: 12, Weaponskill: 6},
		Bonuses: []arena.RacialBonus{
			{Stat: arena.StatDodge, Percent: 20},
			{Stat: arena.StatInitiative, Percent: 15},
			{Stat: arena.StatStrength, Percent: -10},
		},
		Abilities: []string{"Keen Senses", "Fleet Footed"},
	},
	{
		ID:          "dwarf",
		Name:        "Dwarf",
		Description: "Stout fighters who outlast their foes",
		Base:        arena.StatBlock{Strength: 9, Vitality: 12, Stamina: 12, Dodge: 3, Initiative: 6, Weaponskill: 5},
		Bonuses: []arena.RacialBonus{
			{Stat: arena.StatVitality, Percent: 20},
			{Stat: arena.StatStamina, Percent: 15},
			{Stat: arena.StatInitiative, Percent: -10},
		},
		Abilities: []string{"Stonefoot", "Iron Constitution"},
	},
}

var defaultEnemies = []*arena.EnemyTemplate{
	{
		ID:          "slime",
		Name:        "Slime",
		Description: "A weak but persistent blob of goo.",
		Stats:       arena.StatBlock{Strength: 3, Vitality: 50, Stamina: 20, Dodge: 5, Initiative: 5, Weaponskill: 1},
		MinLevel:    1,
		Coefficient: 0.5,
	},
	{
		ID:          "goblin",
		Name:        "Goblin",
		Description: "A sneaky goblin, quick but fragile.",
		Stats:       arena.StatBlock{Strength: 5, Vitality: 60, Stamina: 8, Dodge: 10, Initiative: 12, Weaponskill: 3},
		MinLevel:    1,
		Coefficient: 0.75,
	},
	{
		ID:          "skeleton",
		Name:        "Skeleton",
		Description: "A reanimated skeleton, hard to kill.",
		Stats:       arena.StatBlock{Strength: 7, Vitality: 80, Stamina: 30, Dodge: 7, Initiative: 8, Weaponskill: 4},
		MinLevel:    2,
		Coefficient: 1.0,
	},
	{
		ID:          "bandit",
		Name:        "Bandit",
		Description: "A quick and greedy human outlaw.",
		Stats:       arena.StatBlock{Strength: 8, Vitality: 90, Stamina: 12, Dodge: 11, Initiative: 11, Weaponskill: 5},
		MinLevel:    3,
		Coefficient: 1.1,
	},
	{
		ID:          "dark_knight",
		Name:        "Dark Knight",
		Description: "A fallen knight, skilled and dangerous.",
		Stats:       arena.StatBlock{Strength: 10, Vitality: 110, Stamina: 15, Dodge: 8, Initiative: 9, Weaponskill: 8},
		MinLevel:    5,
		Coefficient: 1.4,
	},
	{
		ID:          "minotaur",
		Name:        "Minotaur",
		Description: "A massive beast with brutal power.",
		Stats:       arena.StatBlock{Strength: 14, Vitality: 140, Stamina: 10, Dodge: 4, Initiative: 6, Weaponskill: 6},
		MinLevel:    7,
		Coefficient: 1.6,
	},
}

var defaultItems = []*arena.Item{
	{ID: "iron_helmet", Name: "Iron Helmet", Slot: arena.SlotHead, Type: "armor", Rarity: "common", LevelRequirement: 1,
		Bonus: arena.StatBlock{Strength: 2, Vitality: 1}, Value: 25, Description: "A sturdy iron helmet."},
	{ID: "steel_crown", Name: "Steel Crown", Slot: arena.SlotHead, Type: "armor", Rarity: "rare", LevelRequirement: 5,
		Bonus: arena.StatBlock{Strength: 5, Vitality: 3, Dodge: 1}, Value: 150, Description: "A crown forged from fine steel."},
	{ID: "warlords_helm", Name: "Warlord's Helm", Slot: arena.SlotHead, Type: "armor", Rarity: "epic", LevelRequirement: 10,
		Bonus: arena.StatBlock{Strength: 8, Vitality: 5, Stamina: 2}, Value: 500, Description: "Ancient helm worn by legendary warlords."},

	{ID: "leather_vest", Name: "Leather Vest", Slot: arena.SlotChest, Type: "armor", Rarity: "common", LevelRequirement: 1,
		Bonus: arena.StatBlock{Vitality: 3, Stamina: 1}, Value: 30, Description: "Basic leather protection."},
	{ID: "chain_mail", Name: "Chain Mail", Slot: arena.SlotChest, Type: "armor", Rarity: "rare", LevelRequirement: 4,
		Bonus: arena.StatBlock{Vitality: 6, Dodge: 2}, Value: 200, Description: "Interlinked metal chains provide good protection."},
	{ID: "plate_armor", Name: "Plate Armor", Slot: arena.SlotChest, Type: "armor", Rarity: "epic", LevelRequirement: 8,
		Bonus: arena.StatBlock{Vitality: 10, Strength: 3}, Value: 600, Description: "Full plate armor of the finest quality."},

	{ID: "wooden_sword", Name: "Wooden Sword", Slot: arena.SlotWeapon, Type: "weapon", Rarity: "common", LevelRequirement: 1,
		Bonus: arena.StatBlock{Weaponskill: 3}, Value: 20, Description: "A simple wooden training sword."},
	{ID: "iron_blade", Name: "Iron Blade", Slot: arena.SlotWeapon, Type: "weapon", Rarity: "rare", LevelRequirement: 3,
		Bonus: arena.StatBlock{Weaponskill: 6, Strength: 2}, Value: 180, Description: "Well-crafted iron sword."},
	{ID: "legendary_sword", Name: "Legendary Sword", Slot: arena.SlotWeapon, Type: "weapon", Rarity: "legendary", LevelRequirement: 12,
		Bonus: arena.StatBlock{Weaponskill: 12, Strength: 5, Initiative: 3}, Value: 1200, Description: "A sword of immense power and history."},

	{ID: "iron_ring", Name: "Iron Ring", Slot: arena.SlotRing, Type: "accessory", Rarity: "common", LevelRequirement: 1,
		Bonus: arena.StatBlock{Strength: 1, Dodge: 1}, Value: 15, Description: "A simple iron ring."},
	{ID: "gold_amulet", Name: "Gold Amulet", Slot: arena.SlotAmulet, Type: "accessory", Rarity: "rare", LevelRequirement: 6,
		Bonus: arena.StatBlock{Vitality: 4, Initiative: 2}, Value: 250, Description: "Golden amulet with protective enchantment."},
	{ID: "swift_boots", Name: "Swift Boots", Slot: arena.SlotFeet, Type: "armor", Rarity: "rare", LevelRequirement: 4,
		Bonus: arena.StatBlock{Initiative: 3, Dodge: 2}, Value: 120, Description: "Light boots that enhance speed."},
	{ID: "power_gauntlets", Name: "Power Gauntlets", Slot: arena.SlotHands, Type: "armor", Rarity: "epic", LevelRequirement: 7,
		Bonus: arena.StatBlock{Strength: 6, Weaponskill: 3}, Value: 400, Description: "Gauntlets that enhance physical power."},
	{ID: "mystic_cape", Name: "Mystic Cape", Slot: arena.SlotCape, Type: "accessory", Rarity: "rare", LevelRequirement: 5,
		Bonus: arena.StatBlock{Initiative: 4, Dodge: 3}, Value: 200, Description: "A cape that seems to shimmer with mystical energy."},
	{ID: "guardian_bracers", Name: "Guardian Bracers", Slot: arena.SlotBracers, Type: "armor", Rarity: "epic", LevelRequirement: 6,
		Bonus: arena.StatBlock{Vitality: 5, Dodge: 2}, Value: 350, Description: "Bracers that provide excellent defense."},

	{ID: "wooden_shield", Name: "Wooden Shield", Slot: arena.SlotOffhand, Type: "shield", Rarity: "common", LevelRequirement: 1,
		Bonus: arena.StatBlock{Vitality: 2, Dodge: 1}, Value: 25, Description: "A battered wooden shield."},
	{ID: "iron_buckler", Name: "Iron Buckler", Slot: arena.SlotOffhand, Type: "shield", Rarity: "rare", LevelRequirement: 4,
		Bonus: arena.StatBlock{Vitality: 4, Dodge: 2, Initiative: 1}, Value: 140, Description: "A sturdy buckler for tight defenses."},
	{ID: "runed_tome", Name: "Runed Tome", Slot: arena.SlotOffhand, Type: "focus", Rarity: "epic", LevelRequirement: 8,
		Bonus: arena.StatBlock{Initiative: 3, Weaponskill: 2}, Value: 380, Description: "Ancient runes hum with power."},
}
