package data

import "fmt"

// Validate прогоняет cross-table schema checks по всем загруженным
// registries и возвращает полный список нарушений (не останавливается
// на первом). Registries должны быть загружены заранее (LoadAll).
func Validate() []error {
	var errs []error

	errs = append(errs, validateItems()...)
	errs = append(errs, validateLootTables()...)
	errs = append(errs, validateMonsters()...)
	errs = append(errs, validateQuests()...)
	errs = append(errs, validateAbilities()...)

	return errs
}

func validateItems() []error {
	var errs []error

	seen := make(map[int32]bool, len(itemDefs))
	for i := range itemDefs {
		d := &itemDefs[i]
		if d.id <= 0 {
			errs = append(errs, fmt.Errorf("item %q: non-positive id %d", d.name, d.id))
		}
		if seen[d.id] {
			errs = append(errs, fmt.Errorf("item %d: duplicate id", d.id))
		}
		seen[d.id] = true
		if d.name == "" {
			errs = append(errs, fmt.Errorf("item %d: empty name", d.id))
		}
		switch d.itemType {
		case "weapon", "armor", "consumable", "material", "quest":
		default:
			errs = append(errs, fmt.Errorf("item %d: unknown type %q", d.id, d.itemType))
		}
		if d.itemType == "weapon" && d.weaponClass == "" {
			errs = append(errs, fmt.Errorf("item %d: weapon without weapon class", d.id))
		}
		if d.itemType == "quest" && d.tradeable {
			errs = append(errs, fmt.Errorf("item %d: quest item must not be tradeable", d.id))
		}
		if d.price < 0 || d.weight < 0 {
			errs = append(errs, fmt.Errorf("item %d: negative price or weight", d.id))
		}
	}

	return errs
}

func validateLootTables() []error {
	var errs []error

	seen := make(map[string]bool, len(lootTableDefs))
	for i := range lootTableDefs {
		t := &lootTableDefs[i]
		if t.key == "" {
			errs = append(errs, fmt.Errorf("loot table #%d: empty key", i))
			continue
		}
		if seen[t.key] {
			errs = append(errs, fmt.Errorf("loot table %q: duplicate key", t.key))
		}
		seen[t.key] = true

		if len(t.entries) == 0 {
			errs = append(errs, fmt.Errorf("loot table %q: no entries", t.key))
		}
		for j, e := range t.entries {
			if GetItemDef(e.itemID) == nil {
				errs = append(errs, fmt.Errorf("loot table %q entry #%d: unknown item %d", t.key, j, e.itemID))
			}
			if e.chance < 0 || e.chance > 100 {
				errs = append(errs, fmt.Errorf("loot table %q entry #%d: chance %v outside [0,100]", t.key, j, e.chance))
			}
			if e.min < 0 || e.max < 0 {
				errs = append(errs, fmt.Errorf("loot table %q entry #%d: negative count bound", t.key, j))
			}
			if e.max != 0 && e.min > e.max {
				errs = append(errs, fmt.Errorf("loot table %q entry #%d: min %d > max %d", t.key, j, e.min, e.max))
			}
		}
	}

	if !seen[DefaultLootTableKey] {
		errs = append(errs, fmt.Errorf("loot tables: missing %q fallback table", DefaultLootTableKey))
	}

	return errs
}

func validateMonsters() []error {
	var errs []error

	seen := make(map[int32]bool, len(monsterDefs))
	for i := range monsterDefs {
		d := &monsterDefs[i]
		if seen[d.id] {
			errs = append(errs, fmt.Errorf("monster %d: duplicate id", d.id))
		}
		seen[d.id] = true
		if d.name == "" {
			errs = append(errs, fmt.Errorf("monster %d: empty name", d.id))
		}
		if d.level < 1 {
			errs = append(errs, fmt.Errorf("monster %d: level %d < 1", d.id, d.level))
		}
		if d.maxHP <= 0 {
			errs = append(errs, fmt.Errorf("monster %d: non-positive maxHP", d.id))
		}
		if d.lootTable != "" && GetLootTableStrict(d.lootTable) == nil {
			errs = append(errs, fmt.Errorf("monster %d: unknown loot table %q", d.id, d.lootTable))
		}
	}

	return errs
}

func validateQuests() []error {
	var errs []error

	seen := make(map[int32]bool, len(questDefs))
	for i := range questDefs {
		d := &questDefs[i]
		if seen[d.id] {
			errs = append(errs, fmt.Errorf("quest %d: duplicate id", d.id))
		}
		seen[d.id] = true

		switch d.objective {
		case "kill":
			if GetMonsterDef(d.targetID) == nil {
				errs = append(errs, fmt.Errorf("quest %d: kill target references unknown monster %d", d.id, d.targetID))
			}
		case "collect":
			if GetItemDef(d.targetID) == nil {
				errs = append(errs, fmt.Errorf("quest %d: collect target references unknown item %d", d.id, d.targetID))
			}
		default:
			errs = append(errs, fmt.Errorf("quest %d: unknown objective %q", d.id, d.objective))
		}

		if d.required <= 0 {
			errs = append(errs, fmt.Errorf("quest %d: required count %d <= 0", d.id, d.required))
		}
		if GetMonsterDef(d.giverID) == nil {
			errs = append(errs, fmt.Errorf("quest %d: unknown giver %d", d.id, d.giverID))
		}
		for _, r := range d.rewardItems {
			if GetItemDef(r.itemID) == nil {
				errs = append(errs, fmt.Errorf("quest %d: reward references unknown item %d", d.id, r.itemID))
			}
			if r.count <= 0 {
				errs = append(errs, fmt.Errorf("quest %d: reward item %d with count %d", d.id, r.itemID, r.count))
			}
		}
	}

	return errs
}

func validateAbilities() []error {
	var errs []error

	seen := make(map[int32]bool, len(abilityDefs))
	for i := range abilityDefs {
		d := &abilityDefs[i]
		if seen[d.id] {
			errs = append(errs, fmt.Errorf("ability %d: duplicate id", d.id))
		}
		seen[d.id] = true
		if d.name == "" {
			errs = append(errs, fmt.Errorf("ability %d: empty name", d.id))
		}
		if d.manaCost < 0 || d.cooldown < 0 || d.power < 0 {
			errs = append(errs, fmt.Errorf("ability %d: negative cost, cooldown or power", d.id))
		}
		switch d.target {
		case "self", "enemy", "ground":
		default:
			errs = append(errs, fmt.Errorf("ability %d: unknown target %q", d.id, d.target))
		}
		switch d.effect {
		case "damage", "heal", "buff", "debuff":
		default:
			errs = append(errs, fmt.Errorf("ability %d: unknown effect %q", d.id, d.effect))
		}
	}

	return errs
}
