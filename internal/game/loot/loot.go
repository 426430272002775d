// Package loot implements drop selection over the static loot tables.
// Each table entry rolls independently against its chance; passed entries
// produce a random quantity within bounds and are handed to a
// caller-supplied spawn callback at a scattered position.
package loot

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/mirefall/mirefall/internal/config"
	"github.com/mirefall/mirefall/internal/data"
	"github.com/mirefall/mirefall/internal/event"
	"github.com/mirefall/mirefall/internal/model"
)

// Drop represents a single rolled item drop.
type Drop struct {
	ItemID int32
	Count  int32
}

// CalculateDrops computes which items drop for the given loot table key.
//
// Algorithm:
//  1. Resolve the table by key; an unmatched key falls back to the
//     default table (rates.DefaultLootTable)
//  2. For each entry, in table order:
//     a) Roll entry chance × rates.DropChanceMultiplier
//     b) Count = random(min..max) × rates.DropAmountMultiplier
//     c) Append Drop if the roll passed
//
// Returns nil when neither the key nor the default table resolves.
func CalculateDrops(tableKey string, rates *config.Rates) []Drop {
	drops, _ := calculateDrops(tableKey, rates)
	return drops
}

// calculateDrops is CalculateDrops plus a flag telling whether any table
// (own or fallback) resolved at all.
func calculateDrops(tableKey string, rates *config.Rates) ([]Drop, bool) {
	table := data.GetLootTableStrict(tableKey)
	if table == nil {
		fallback := data.DefaultLootTableKey
		if rates != nil && rates.DefaultLootTable != "" {
			fallback = rates.DefaultLootTable
		}
		if fallback != tableKey {
			table = data.GetLootTableStrict(fallback)
		}
	}
	if table == nil {
		return nil, false
	}

	chanceMultiplier := 1.0
	amountMultiplier := 1.0
	if rates != nil {
		chanceMultiplier = rates.DropChanceMultiplier
		amountMultiplier = rates.DropAmountMultiplier
	}

	var results []Drop

	for _, entry := range table.Entries() {
		chance := entry.Chance() * chanceMultiplier
		if chance <= 0 {
			continue
		}
		if chance < 100 && rand.Float64()*100.0 >= chance {
			continue
		}

		// Calculate count
		minCount := entry.Min()
		maxCount := entry.Max()
		if minCount <= 0 {
			minCount = 1
		}
		if maxCount < minCount {
			maxCount = minCount
		}

		count := minCount
		if maxCount > minCount {
			count = int32(rand.Intn(int(maxCount-minCount+1))) + minCount
		}

		// Apply amount multiplier
		count = int32(float64(count) * amountMultiplier)
		if count <= 0 {
			count = 1
		}

		results = append(results, Drop{
			ItemID: entry.ItemID(),
			Count:  count,
		})
	}

	return results, true
}

// SpawnFunc is the caller-supplied spawn callback: it places count units
// of itemID on the ground at (x, y).
type SpawnFunc func(itemID int32, x, y int32, count int32)

// Generator rolls loot tables and spawns the results into the caller's
// world via the spawn callback. Failures never propagate: they are
// logged and reported on the event bus.
type Generator struct {
	rates  *config.Rates
	bus    *event.Bus
	spawn  SpawnFunc
	logger *slog.Logger
}

// NewGenerator creates a loot generator. bus and logger may be nil
// (events are then dropped / slog default is used); spawn must not be nil.
func NewGenerator(rates *config.Rates, bus *event.Bus, spawn SpawnFunc, logger *slog.Logger) (*Generator, error) {
	if spawn == nil {
		return nil, fmt.Errorf("spawn callback cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		rates:  rates,
		bus:    bus,
		spawn:  spawn,
		logger: logger,
	}, nil
}

// DropForMonster rolls the loot table of the given monster and spawns the
// results around loc. Unknown monsters use the default table.
func (g *Generator) DropForMonster(monsterID int32, loc model.Location) []*model.DroppedItem {
	tableKey := ""
	if def := data.GetMonsterDef(monsterID); def != nil {
		tableKey = def.LootTable()
	}
	return g.dropAt(tableKey, monsterID, loc)
}

// DropAt rolls the named loot table and spawns the results around loc.
func (g *Generator) DropAt(tableKey string, loc model.Location) []*model.DroppedItem {
	return g.dropAt(tableKey, 0, loc)
}

func (g *Generator) dropAt(tableKey string, monsterID int32, loc model.Location) []*model.DroppedItem {
	drops, found := calculateDrops(tableKey, g.rates)
	if !found {
		g.logger.Error("loot table not found and no default available",
			"tableKey", tableKey,
			"monsterID", monsterID)
		g.emit(event.TypeLootTableMissing, tableKey, monsterID, "")
		return nil
	}
	if len(drops) == 0 {
		return nil
	}

	scatterRadius := int32(0)
	if g.rates != nil {
		scatterRadius = g.rates.ScatterRadius
	}

	spawned := make([]*model.DroppedItem, 0, len(drops))
	for _, drop := range drops {
		if di := g.spawnDrop(drop, tableKey, monsterID, loc, scatterRadius); di != nil {
			spawned = append(spawned, di)
		}
	}
	return spawned
}

// spawnDrop places a single rolled drop: scatter the position, build the
// DroppedItem record, invoke the spawn callback. A panicking callback is
// recovered here so the remaining drops still spawn.
func (g *Generator) spawnDrop(drop Drop, tableKey string, monsterID int32, loc model.Location, scatterRadius int32) (item *model.DroppedItem) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("spawn callback panicked",
				"itemID", drop.ItemID,
				"tableKey", tableKey,
				"panic", r)
			g.emit(event.TypeLootFailed, tableKey, monsterID, fmt.Sprint(r))
			item = nil
		}
	}()

	dropLoc := loc.Scatter(scatterRadius)

	di, err := model.NewDroppedItem(drop.ItemID, drop.Count, dropLoc)
	if err != nil {
		g.logger.Error("build dropped item",
			"itemID", drop.ItemID,
			"count", drop.Count,
			"error", err)
		g.emit(event.TypeLootFailed, tableKey, monsterID, err.Error())
		return nil
	}

	g.spawn(drop.ItemID, dropLoc.X, dropLoc.Y, drop.Count)
	return di
}

// emit publishes a fire-and-forget error record. No-op without a bus.
func (g *Generator) emit(t event.Type, tableKey string, monsterID int32, errMsg string) {
	if g.bus == nil {
		return
	}
	rec := event.NewRecord(t)
	rec.TableKey = tableKey
	rec.MonsterID = monsterID
	rec.Err = errMsg
	g.bus.Publish(rec)
}
