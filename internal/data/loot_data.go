package data

// lootEntryDef — одна позиция loot-таблицы: предмет, шанс (percent),
// опциональные границы количества. min/max == 0 означает ровно 1 штуку.
type lootEntryDef struct {
	itemID int32
	chance float64 // 0-100
	min    int32
	max    int32
}

// lootTableDef — именованная loot-таблица: ordered список позиций,
// каждая бросается независимо.
type lootTableDef struct {
	key     string
	entries []lootEntryDef
}

// LootEntryDef accessor methods
func (e *lootEntryDef) ItemID() int32   { return e.itemID }
func (e *lootEntryDef) Chance() float64 { return e.chance }
func (e *lootEntryDef) Min() int32      { return e.min }
func (e *lootEntryDef) Max() int32      { return e.max }

// LootTableDef accessor methods
func (t *lootTableDef) Key() string             { return t.key }
func (t *lootTableDef) Entries() []lootEntryDef { return t.entries }
