package data

import "log/slog"

// MonsterTable — глобальный registry всех monster definitions.
// map[monsterID]*monsterDef
var MonsterTable map[int32]*monsterDef

// GetMonsterDef возвращает monsterDef по ID.
// Returns nil если монстр не найден.
func GetMonsterDef(monsterID int32) *monsterDef {
	if MonsterTable == nil {
		return nil
	}
	return MonsterTable[monsterID]
}

// LoadMonsters строит MonsterTable из Go-литералов (monsterDefs).
func LoadMonsters() error {
	MonsterTable = make(map[int32]*monsterDef, len(monsterDefs))

	for i := range monsterDefs {
		MonsterTable[monsterDefs[i].id] = &monsterDefs[i]
	}

	slog.Info("loaded monster definitions", "count", len(MonsterTable))
	return nil
}
