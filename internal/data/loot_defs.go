package data

// DefaultLootTableKey — ключ таблицы-fallback для монстров без собственной.
const DefaultLootTableKey = "default"

// lootTableDefs — контент-таблица всех loot-таблиц игры.
// Каждая позиция бросается независимо; chance в процентах.
var lootTableDefs = []lootTableDef{
	{
		key: DefaultLootTableKey,
		entries: []lootEntryDef{
			{itemID: 1, chance: 70, min: 1, max: 12}, // gold
			{itemID: 304, chance: 10},
		},
	},
	{
		key: "giant_rat",
		entries: []lootEntryDef{
			{itemID: 1, chance: 60, min: 1, max: 5},
			{itemID: 402, chance: 55},
			{itemID: 301, chance: 5},
		},
	},
	{
		key: "forest_wolf",
		entries: []lootEntryDef{
			{itemID: 1, chance: 65, min: 2, max: 10},
			{itemID: 401, chance: 45, min: 1, max: 2},
			{itemID: 301, chance: 8},
			{itemID: 105, chance: 1.5},
		},
	},
	{
		key: "bog_slime",
		entries: []lootEntryDef{
			{itemID: 403, chance: 80, min: 1, max: 3},
			{itemID: 303, chance: 6},
		},
	},
	{
		key: "marsh_bandit",
		entries: []lootEntryDef{
			{itemID: 1, chance: 90, min: 5, max: 30},
			{itemID: 105, chance: 12},
			{itemID: 202, chance: 4},
			{itemID: 407, chance: 2},
			{itemID: 302, chance: 10},
		},
	},
	{
		key: "undead",
		entries: []lootEntryDef{
			{itemID: 1, chance: 50, min: 3, max: 20},
			{itemID: 404, chance: 70, min: 1, max: 4},
			{itemID: 204, chance: 3},
			{itemID: 208, chance: 5},
		},
	},
	{
		key: "bog_wisp",
		entries: []lootEntryDef{
			{itemID: 303, chance: 35, min: 1, max: 2},
			{itemID: 305, chance: 12},
			{itemID: 209, chance: 1},
		},
	},
	{
		key: "boss_mire_troll",
		entries: []lootEntryDef{
			{itemID: 1, chance: 100, min: 200, max: 600},
			{itemID: 406, chance: 100, min: 1, max: 2},
			{itemID: 108, chance: 15},
			{itemID: 107, chance: 25},
			{itemID: 205, chance: 40},
			{itemID: 503, chance: 100},
			{itemID: 305, chance: 60, min: 1, max: 3},
		},
	},
}
