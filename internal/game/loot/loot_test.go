package loot

import (
	"testing"

	"github.com/mirefall/mirefall/internal/config"
	"github.com/mirefall/mirefall/internal/data"
)

func init() {
	// Load content registries plus deterministic test tables.
	if err := data.LoadAll(); err != nil {
		panic("load content registries: " + err.Error())
	}
	data.SetTestLootTable("test_always", []data.TestLootEntry{
		{ItemID: 301, Chance: 100, Min: 2, Max: 2},
	})
	data.SetTestLootTable("test_never", []data.TestLootEntry{
		{ItemID: 301, Chance: 0},
	})
	data.SetTestLootTable("test_bounds", []data.TestLootEntry{
		{ItemID: 1, Chance: 100, Min: 3, Max: 7},
	})
	data.SetTestLootTable("test_pair", []data.TestLootEntry{
		{ItemID: 301, Chance: 100},
		{ItemID: 302, Chance: 100},
	})
	data.SetTestLootTable("test_half", []data.TestLootEntry{
		{ItemID: 404, Chance: 50},
	})
}

func TestCalculateDrops_100PercentChance(t *testing.T) {
	t.Parallel()

	drops := CalculateDrops("test_always", nil)
	if len(drops) != 1 {
		t.Fatalf("len(drops) = %d; want 1", len(drops))
	}
	if drops[0].ItemID != 301 {
		t.Errorf("ItemID = %d; want 301", drops[0].ItemID)
	}
	if drops[0].Count != 2 {
		t.Errorf("Count = %d; want 2 (min=max=2)", drops[0].Count)
	}
}

func TestCalculateDrops_ZeroChanceNeverDrops(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		if drops := CalculateDrops("test_never", nil); drops != nil {
			t.Fatalf("zero-chance entry dropped: %v", drops)
		}
	}
}

func TestCalculateDrops_CountWithinBounds(t *testing.T) {
	t.Parallel()

	for i := 0; i < 200; i++ {
		drops := CalculateDrops("test_bounds", nil)
		if len(drops) != 1 {
			t.Fatalf("len(drops) = %d; want 1", len(drops))
		}
		if c := drops[0].Count; c < 3 || c > 7 {
			t.Fatalf("Count = %d; want within [3, 7]", c)
		}
	}
}

func TestCalculateDrops_EntriesRollIndependently(t *testing.T) {
	t.Parallel()

	drops := CalculateDrops("test_pair", nil)
	if len(drops) != 2 {
		t.Fatalf("len(drops) = %d; want 2 (both guaranteed entries)", len(drops))
	}
	if drops[0].ItemID != 301 || drops[1].ItemID != 302 {
		t.Errorf("drops = %v; want table order 301, 302", drops)
	}
}

func TestCalculateDrops_UnknownKeyFallsBackToConfiguredDefault(t *testing.T) {
	t.Parallel()

	rates := &config.Rates{
		DropChanceMultiplier: 1.0,
		DropAmountMultiplier: 1.0,
		DefaultLootTable:     "test_always",
	}

	drops := CalculateDrops("no_such_table", rates)
	if len(drops) != 1 || drops[0].ItemID != 301 {
		t.Errorf("drops = %v; want fallback to test_always", drops)
	}
}

func TestCalculateDrops_NothingResolves(t *testing.T) {
	t.Parallel()

	rates := &config.Rates{DefaultLootTable: "also_missing"}
	if drops := CalculateDrops("no_such_table", rates); drops != nil {
		t.Errorf("drops = %v; want nil when neither key nor default resolves", drops)
	}
}

func TestCalculateDrops_AmountMultiplier(t *testing.T) {
	t.Parallel()

	rates := &config.Rates{
		DropChanceMultiplier: 1.0,
		DropAmountMultiplier: 3.0,
		DefaultLootTable:     data.DefaultLootTableKey,
	}

	drops := CalculateDrops("test_always", rates)
	if len(drops) != 1 {
		t.Fatalf("len(drops) = %d; want 1", len(drops))
	}
	if drops[0].Count != 6 {
		t.Errorf("Count = %d; want 6 (2 × x3 rate)", drops[0].Count)
	}
}

func TestCalculateDrops_ChanceMultiplierZeroDisablesDrops(t *testing.T) {
	t.Parallel()

	rates := &config.Rates{
		DropChanceMultiplier: 0,
		DropAmountMultiplier: 1.0,
		DefaultLootTable:     data.DefaultLootTableKey,
	}

	if drops := CalculateDrops("test_always", rates); drops != nil {
		t.Errorf("drops = %v; want nil with x0 chance rate", drops)
	}
}

func TestCalculateDrops_AmountMultiplierFloorsAtOne(t *testing.T) {
	t.Parallel()

	rates := &config.Rates{
		DropChanceMultiplier: 1.0,
		DropAmountMultiplier: 0.1, // 2 × 0.1 → 0 → floored to 1
		DefaultLootTable:     data.DefaultLootTableKey,
	}

	drops := CalculateDrops("test_always", rates)
	if len(drops) != 1 {
		t.Fatalf("len(drops) = %d; want 1", len(drops))
	}
	if drops[0].Count != 1 {
		t.Errorf("Count = %d; want 1 (floored)", drops[0].Count)
	}
}
