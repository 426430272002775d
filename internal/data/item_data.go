package data

// itemDef — определение предмета для Go-литералов.
type itemDef struct {
	id       int32
	name     string
	itemType string // "weapon","armor","consumable","material","quest"

	// Common
	weight    int32
	price     int64
	stackable bool
	tradeable bool
	rarity    string // "common","uncommon","rare","epic"

	// Equipment classification
	slot        string // "weapon","head","chest","legs","feet","hands","ring","amulet",""
	weaponClass string // "sword","axe","bow","staff","dagger",""
	armorClass  string // "light","heavy","cloth",""

	// Stats
	attack  int32
	defense int32
	magic   int32

	// Consumable
	healAmount int32
	manaAmount int32
}

// ItemDef accessor methods
func (d *itemDef) ID() int32           { return d.id }
func (d *itemDef) Name() string        { return d.name }
func (d *itemDef) Type() string        { return d.itemType }
func (d *itemDef) Weight() int32       { return d.weight }
func (d *itemDef) Price() int64        { return d.price }
func (d *itemDef) IsStackable() bool   { return d.stackable }
func (d *itemDef) IsTradeable() bool   { return d.tradeable }
func (d *itemDef) Rarity() string      { return d.rarity }
func (d *itemDef) Slot() string        { return d.slot }
func (d *itemDef) WeaponClass() string { return d.weaponClass }
func (d *itemDef) ArmorClass() string  { return d.armorClass }
func (d *itemDef) Attack() int32       { return d.attack }
func (d *itemDef) Defense() int32      { return d.defense }
func (d *itemDef) Magic() int32        { return d.magic }
func (d *itemDef) HealAmount() int32   { return d.healAmount }
func (d *itemDef) ManaAmount() int32   { return d.manaAmount }

// IsEquippable проверяет, можно ли надеть предмет (есть ли слот).
func (d *itemDef) IsEquippable() bool { return d.slot != "" }

// IsQuestItem проверяет, является ли предмет квестовым.
func (d *itemDef) IsQuestItem() bool { return d.itemType == "quest" }
