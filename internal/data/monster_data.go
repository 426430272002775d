package data

// monsterDef — определение монстра для Go-литералов.
type monsterDef struct {
	id   int32
	name string

	// Stats
	level       int32
	maxHP       int32
	maxMP       int32
	attack      int32
	defense     int32
	aggroRadius int32
	moveSpeed   int32

	// Rewards
	xpReward  int64
	lootTable string // ключ loot-таблицы; "" → default таблица
}

// MonsterDef accessor methods — provide read access to monsterDef fields.

func (d *monsterDef) ID() int32          { return d.id }
func (d *monsterDef) Name() string       { return d.name }
func (d *monsterDef) Level() int32       { return d.level }
func (d *monsterDef) MaxHP() int32       { return d.maxHP }
func (d *monsterDef) MaxMP() int32       { return d.maxMP }
func (d *monsterDef) Attack() int32      { return d.attack }
func (d *monsterDef) Defense() int32     { return d.defense }
func (d *monsterDef) AggroRadius() int32 { return d.aggroRadius }
func (d *monsterDef) MoveSpeed() int32   { return d.moveSpeed }
func (d *monsterDef) XPReward() int64    { return d.xpReward }
func (d *monsterDef) LootTable() string  { return d.lootTable }

// IsAggressive проверяет, атакует ли монстр первым.
func (d *monsterDef) IsAggressive() bool { return d.aggroRadius > 0 }
