package data

// TestLootEntry is an exported type for cross-package test setup of loot tables.
type TestLootEntry struct {
	ItemID int32
	Chance float64
	Min    int32
	Max    int32
}

// SetTestLootTable populates LootTables with a test table under the given key.
// Intended for tests from other packages that need loot data setup.
func SetTestLootTable(key string, entries []TestLootEntry) {
	if LootTables == nil {
		LootTables = make(map[string]*lootTableDef, 8)
	}
	defs := make([]lootEntryDef, len(entries))
	for i, e := range entries {
		defs[i] = lootEntryDef{itemID: e.ItemID, chance: e.Chance, min: e.Min, max: e.Max}
	}
	LootTables[key] = &lootTableDef{key: key, entries: defs}
}

// DeleteTestLootTable removes a single table from LootTables.
func DeleteTestLootTable(key string) {
	delete(LootTables, key)
}

// ClearTestLootTables resets LootTables for test isolation.
func ClearTestLootTables() {
	LootTables = make(map[string]*lootTableDef, 8)
}
