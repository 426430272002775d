package model

import (
	"fmt"
	"sync"
)

// EquipSlot определяет слот экипировки персонажа.
type EquipSlot int32

const (
	SlotWeapon EquipSlot = iota
	SlotHead
	SlotChest
	SlotLegs
	SlotFeet
	SlotHands
	SlotRing
	SlotAmulet
)

// String returns human-readable slot name.
func (s EquipSlot) String() string {
	switch s {
	case SlotWeapon:
		return "Weapon"
	case SlotHead:
		return "Head"
	case SlotChest:
		return "Chest"
	case SlotLegs:
		return "Legs"
	case SlotFeet:
		return "Feet"
	case SlotHands:
		return "Hands"
	case SlotRing:
		return "Ring"
	case SlotAmulet:
		return "Amulet"
	default:
		return "Unknown"
	}
}

// QuestProgress — прогресс персонажа по одному квесту.
type QuestProgress struct {
	QuestID   int32
	Completed bool
	Count     int32 // progress towards the objective (kills, items collected)
}

// Character — глобальная запись персонажа браузерной игры.
// Снаряжение, изученные способности и прогресс квестов хранятся по ссылке
// на template ID; сами определения живут в internal/data.
type Character struct {
	id      int64
	account string
	name    string
	classID int32
	level   int32
	xp      int64

	currentHP int32
	maxHP     int32
	currentMP int32
	maxMP     int32

	location Location

	equipment map[EquipSlot]int32      // slot → item ID (0 = empty)
	abilities []int32                  // learned ability IDs
	quests    map[int32]*QuestProgress // quest ID → progress

	mu sync.RWMutex
}

// NewCharacter создаёт нового персонажа с валидацией.
func NewCharacter(id int64, account, name string, classID, level, maxHP, maxMP int32) (*Character, error) {
	if name == "" {
		return nil, fmt.Errorf("name cannot be empty")
	}
	if level < 1 {
		return nil, fmt.Errorf("level must be >= 1, got %d", level)
	}
	if maxHP <= 0 {
		return nil, fmt.Errorf("maxHP must be > 0, got %d", maxHP)
	}

	return &Character{
		id:        id,
		account:   account,
		name:      name,
		classID:   classID,
		level:     level,
		currentHP: maxHP,
		maxHP:     maxHP,
		currentMP: maxMP,
		maxMP:     maxMP,
		equipment: make(map[EquipSlot]int32, 8),
		quests:    make(map[int32]*QuestProgress, 4),
	}, nil
}

// ID возвращает character ID.
func (c *Character) ID() int64 { return c.id }

// Account возвращает имя аккаунта владельца.
func (c *Character) Account() string { return c.account }

// Name возвращает имя персонажа.
func (c *Character) Name() string { return c.name }

// ClassID возвращает ID класса персонажа.
func (c *Character) ClassID() int32 { return c.classID }

// Level возвращает текущий уровень.
func (c *Character) Level() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.level
}

// XP возвращает накопленный опыт.
func (c *Character) XP() int64 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.xp
}

// AddXP добавляет опыт (отрицательные значения игнорируются).
func (c *Character) AddXP(amount int64) {
	if amount <= 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.xp += amount
}

// CurrentHP возвращает текущее HP.
func (c *Character) CurrentHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentHP
}

// MaxHP возвращает максимальное HP.
func (c *Character) MaxHP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxHP
}

// SetCurrentHP устанавливает текущее HP с валидацией (clamp 0..maxHP).
func (c *Character) SetCurrentHP(hp int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if hp < 0 {
		hp = 0
	}
	if hp > c.maxHP {
		hp = c.maxHP
	}
	c.currentHP = hp
}

// CurrentMP возвращает текущее MP.
func (c *Character) CurrentMP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.currentMP
}

// MaxMP возвращает максимальное MP.
func (c *Character) MaxMP() int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxMP
}

// Location возвращает позицию персонажа на карте.
func (c *Character) Location() Location {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.location
}

// SetLocation устанавливает позицию персонажа.
func (c *Character) SetLocation(loc Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.location = loc
}

// Equip помещает предмет в слот. Возвращает ID предмета, который был в слоте
// до этого (0 если слот был пуст).
func (c *Character) Equip(slot EquipSlot, itemID int32) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.equipment[slot]
	c.equipment[slot] = itemID
	return prev
}

// Unequip освобождает слот. Возвращает ID снятого предмета (0 если слот пуст).
func (c *Character) Unequip(slot EquipSlot) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.equipment[slot]
	delete(c.equipment, slot)
	return prev
}

// Equipped возвращает ID предмета в слоте (0 если пусто).
func (c *Character) Equipped(slot EquipSlot) int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.equipment[slot]
}

// LearnAbility добавляет способность в список изученных. Дубликаты игнорируются.
func (c *Character) LearnAbility(abilityID int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, id := range c.abilities {
		if id == abilityID {
			return
		}
	}
	c.abilities = append(c.abilities, abilityID)
}

// KnowsAbility проверяет, изучена ли способность.
func (c *Character) KnowsAbility(abilityID int32) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, id := range c.abilities {
		if id == abilityID {
			return true
		}
	}
	return false
}

// Abilities возвращает копию списка изученных способностей.
func (c *Character) Abilities() []int32 {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]int32, len(c.abilities))
	copy(out, c.abilities)
	return out
}

// StartQuest регистрирует начало квеста. Повторный старт уже начатого квеста
// не сбрасывает прогресс.
func (c *Character) StartQuest(questID int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.quests[questID]; ok {
		return
	}
	c.quests[questID] = &QuestProgress{QuestID: questID}
}

// AdvanceQuest увеличивает счётчик прогресса квеста. no-op если квест
// не начат или уже завершён.
func (c *Character) AdvanceQuest(questID, delta int32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	qp, ok := c.quests[questID]
	if !ok || qp.Completed {
		return
	}
	qp.Count += delta
}

// CompleteQuest помечает квест завершённым. Возвращает false если квест
// не был начат.
func (c *Character) CompleteQuest(questID int32) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	qp, ok := c.quests[questID]
	if !ok {
		return false
	}
	qp.Completed = true
	return true
}

// QuestState возвращает копию прогресса квеста (nil если квест не начат).
func (c *Character) QuestState(questID int32) *QuestProgress {
	c.mu.RLock()
	defer c.mu.RUnlock()

	qp, ok := c.quests[questID]
	if !ok {
		return nil
	}
	cp := *qp
	return &cp
}
