package data

// Class IDs задействованные в контенте.
const (
	ClassAny    int32 = 0
	ClassWarden int32 = 1
	ClassRanger int32 = 2
	ClassMystic int32 = 3
)

// abilityDefs — контент-таблица всех способностей игры.
var abilityDefs = []abilityDef{
	{id: 1, name: "Power Strike", classID: ClassWarden, minLevel: 1, manaCost: 8, cooldown: 3000, power: 18, target: "enemy", effect: "damage"},
	{id: 2, name: "Shield Wall", classID: ClassWarden, minLevel: 4, manaCost: 15, cooldown: 20000, power: 10, target: "self", effect: "buff"},
	{id: 3, name: "Aimed Shot", classID: ClassRanger, minLevel: 1, manaCost: 10, cooldown: 4000, power: 22, target: "enemy", effect: "damage"},
	{id: 4, name: "Snare Trap", classID: ClassRanger, minLevel: 5, manaCost: 18, cooldown: 15000, power: 5, target: "ground", effect: "debuff"},
	{id: 5, name: "Ember Bolt", classID: ClassMystic, minLevel: 1, manaCost: 12, cooldown: 2500, power: 25, target: "enemy", effect: "damage"},
	{id: 6, name: "Mending Word", classID: ClassMystic, minLevel: 3, manaCost: 20, cooldown: 8000, power: 35, target: "self", effect: "heal"},
	{id: 7, name: "First Aid", classID: ClassAny, minLevel: 2, manaCost: 5, cooldown: 30000, power: 15, target: "self", effect: "heal"},
	{id: 8, name: "Sprint", classID: ClassAny, minLevel: 1, manaCost: 6, cooldown: 12000, power: 0, target: "self", effect: "buff"},
}
