package model

import "testing"

func mustCharacter(t *testing.T) *Character {
	t.Helper()
	c, err := NewCharacter(1, "acc", "Teon", 2, 5, 120, 60)
	if err != nil {
		t.Fatalf("NewCharacter: %v", err)
	}
	return c
}

func TestNewCharacter_Validation(t *testing.T) {
	t.Parallel()

	if _, err := NewCharacter(1, "acc", "", 0, 1, 100, 50); err == nil {
		t.Error("expected error for empty name")
	}
	if _, err := NewCharacter(1, "acc", "Teon", 0, 0, 100, 50); err == nil {
		t.Error("expected error for level 0")
	}
	if _, err := NewCharacter(1, "acc", "Teon", 0, 1, 0, 50); err == nil {
		t.Error("expected error for maxHP 0")
	}
}

func TestCharacter_HPClamp(t *testing.T) {
	t.Parallel()

	c := mustCharacter(t)
	if c.CurrentHP() != 120 {
		t.Errorf("CurrentHP = %d; want 120 (full on create)", c.CurrentHP())
	}

	c.SetCurrentHP(-50)
	if c.CurrentHP() != 0 {
		t.Errorf("CurrentHP after -50 = %d; want 0", c.CurrentHP())
	}

	c.SetCurrentHP(9999)
	if c.CurrentHP() != c.MaxHP() {
		t.Errorf("CurrentHP after 9999 = %d; want %d", c.CurrentHP(), c.MaxHP())
	}
}

func TestCharacter_EquipUnequip(t *testing.T) {
	t.Parallel()

	c := mustCharacter(t)

	if prev := c.Equip(SlotWeapon, 101); prev != 0 {
		t.Errorf("Equip into empty slot returned %d; want 0", prev)
	}
	if got := c.Equipped(SlotWeapon); got != 101 {
		t.Errorf("Equipped = %d; want 101", got)
	}

	// Swap keeps the previous item so the caller can return it to inventory.
	if prev := c.Equip(SlotWeapon, 102); prev != 101 {
		t.Errorf("Equip swap returned %d; want 101", prev)
	}

	if prev := c.Unequip(SlotWeapon); prev != 102 {
		t.Errorf("Unequip returned %d; want 102", prev)
	}
	if got := c.Equipped(SlotWeapon); got != 0 {
		t.Errorf("Equipped after Unequip = %d; want 0", got)
	}
}

func TestCharacter_Abilities(t *testing.T) {
	t.Parallel()

	c := mustCharacter(t)
	c.LearnAbility(7)
	c.LearnAbility(7) // duplicate ignored
	c.LearnAbility(9)

	if !c.KnowsAbility(7) || !c.KnowsAbility(9) {
		t.Error("expected abilities 7 and 9 to be known")
	}
	if c.KnowsAbility(8) {
		t.Error("ability 8 should not be known")
	}
	if got := len(c.Abilities()); got != 2 {
		t.Errorf("len(Abilities) = %d; want 2", got)
	}
}

func TestCharacter_QuestLifecycle(t *testing.T) {
	t.Parallel()

	c := mustCharacter(t)

	if qs := c.QuestState(300); qs != nil {
		t.Errorf("QuestState before start = %+v; want nil", qs)
	}
	if c.CompleteQuest(300) {
		t.Error("CompleteQuest before start = true; want false")
	}

	c.StartQuest(300)
	c.AdvanceQuest(300, 3)
	c.AdvanceQuest(300, 2)

	qs := c.QuestState(300)
	if qs == nil {
		t.Fatal("QuestState = nil after start")
	}
	if qs.Count != 5 {
		t.Errorf("Count = %d; want 5", qs.Count)
	}

	// Restart must not reset progress.
	c.StartQuest(300)
	if got := c.QuestState(300).Count; got != 5 {
		t.Errorf("Count after restart = %d; want 5", got)
	}

	if !c.CompleteQuest(300) {
		t.Error("CompleteQuest = false; want true")
	}
	c.AdvanceQuest(300, 1) // completed quest no longer advances
	if got := c.QuestState(300).Count; got != 5 {
		t.Errorf("Count after complete = %d; want 5", got)
	}
}

func TestCharacter_AddXP(t *testing.T) {
	t.Parallel()

	c := mustCharacter(t)
	c.AddXP(150)
	c.AddXP(-40) // ignored
	c.AddXP(50)

	if got := c.XP(); got != 200 {
		t.Errorf("XP = %d; want 200", got)
	}
}
