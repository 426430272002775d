package data

import "log/slog"

// abilityDef — определение способности для Go-литералов.
type abilityDef struct {
	id       int32
	name     string
	classID  int32 // 0 = любой класс
	minLevel int32
	manaCost int32
	cooldown int32  // milliseconds
	power    int32
	target   string // "self","enemy","ground"
	effect   string // "damage","heal","buff","debuff"
}

// AbilityDef accessor methods

func (d *abilityDef) ID() int32       { return d.id }
func (d *abilityDef) Name() string    { return d.name }
func (d *abilityDef) ClassID() int32  { return d.classID }
func (d *abilityDef) MinLevel() int32 { return d.minLevel }
func (d *abilityDef) ManaCost() int32 { return d.manaCost }
func (d *abilityDef) Cooldown() int32 { return d.cooldown }
func (d *abilityDef) Power() int32    { return d.power }
func (d *abilityDef) Target() string  { return d.target }
func (d *abilityDef) Effect() string  { return d.effect }

// AbilityTable — глобальный registry всех ability definitions.
// map[abilityID]*abilityDef
var AbilityTable map[int32]*abilityDef

// GetAbilityDef возвращает abilityDef по ID.
func GetAbilityDef(abilityID int32) *abilityDef {
	if AbilityTable == nil {
		return nil
	}
	return AbilityTable[abilityID]
}

// LoadAbilities строит AbilityTable из Go-литералов (abilityDefs).
func LoadAbilities() error {
	AbilityTable = make(map[int32]*abilityDef, len(abilityDefs))

	for i := range abilityDefs {
		AbilityTable[abilityDefs[i].id] = &abilityDefs[i]
	}

	slog.Info("loaded ability definitions", "count", len(AbilityTable))
	return nil
}
