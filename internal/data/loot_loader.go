package data

import "log/slog"

// LootTables — глобальный registry всех loot-таблиц.
// map[key]*lootTableDef
var LootTables map[string]*lootTableDef

// GetLootTable возвращает loot-таблицу по ключу. Неизвестный (или пустой)
// ключ падает обратно на default-таблицу. Возвращает nil только если
// default-таблица сама отсутствует в registry.
func GetLootTable(key string) *lootTableDef {
	if LootTables == nil {
		return nil
	}
	if t, ok := LootTables[key]; ok {
		return t
	}
	return LootTables[DefaultLootTableKey]
}

// GetLootTableStrict возвращает таблицу точно по ключу, без fallback.
// Используется валидацией контента.
func GetLootTableStrict(key string) *lootTableDef {
	if LootTables == nil {
		return nil
	}
	return LootTables[key]
}

// LoadLootTables строит LootTables из Go-литералов (lootTableDefs).
func LoadLootTables() error {
	LootTables = make(map[string]*lootTableDef, len(lootTableDefs))

	for i := range lootTableDefs {
		LootTables[lootTableDefs[i].key] = &lootTableDefs[i]
	}

	slog.Info("loaded loot tables", "count", len(LootTables))
	return nil
}
