package data

import "log/slog"

// ItemTable — глобальный registry всех item definitions.
// map[itemID]*itemDef
var ItemTable map[int32]*itemDef

// GetItemDef возвращает itemDef по item ID.
// Returns nil если предмет не найден.
func GetItemDef(itemID int32) *itemDef {
	if ItemTable == nil {
		return nil
	}
	return ItemTable[itemID]
}

// LoadItems строит ItemTable из Go-литералов (itemDefs).
func LoadItems() error {
	ItemTable = make(map[int32]*itemDef, len(itemDefs))

	for i := range itemDefs {
		ItemTable[itemDefs[i].id] = &itemDefs[i]
	}

	slog.Info("loaded item definitions", "count", len(ItemTable))
	return nil
}
