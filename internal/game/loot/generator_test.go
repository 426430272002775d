package loot

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirefall/mirefall/internal/config"
	"github.com/mirefall/mirefall/internal/event"
	"github.com/mirefall/mirefall/internal/model"
)

type spawnCall struct {
	itemID int32
	x, y   int32
	count  int32
}

func testRates(defaultTable string) *config.Rates {
	return &config.Rates{
		DropChanceMultiplier: 1.0,
		DropAmountMultiplier: 1.0,
		ScatterRadius:        50,
		DefaultLootTable:     defaultTable,
	}
}

func TestNewGenerator_NilSpawn(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(testRates("test_always"), nil, nil, nil)
	require.Error(t, err)
}

func TestGenerator_SpawnCallbackReceivesDrops(t *testing.T) {
	t.Parallel()

	var calls []spawnCall
	g, err := NewGenerator(testRates("test_always"), nil, func(itemID, x, y, count int32) {
		calls = append(calls, spawnCall{itemID, x, y, count})
	}, nil)
	require.NoError(t, err)

	origin := model.NewLocation(2000, -500)
	spawned := g.DropAt("test_pair", origin)

	require.Len(t, calls, 2, "both guaranteed entries must spawn")
	require.Len(t, spawned, 2)

	assert.Equal(t, int32(301), calls[0].itemID)
	assert.Equal(t, int32(302), calls[1].itemID)

	for i, c := range calls {
		assert.InDelta(t, origin.X, c.x, 50, "call %d x outside scatter radius", i)
		assert.InDelta(t, origin.Y, c.y, 50, "call %d y outside scatter radius", i)
		assert.Equal(t, spawned[i].ItemID(), c.itemID)
		assert.Equal(t, spawned[i].Count(), c.count)
		assert.Equal(t, model.NewLocation(c.x, c.y), spawned[i].Location())
	}
}

func TestGenerator_PanickingCallbackIsRecovered(t *testing.T) {
	t.Parallel()

	bus := event.NewBus(nil)
	records := bus.Subscribe(8)

	var calls []spawnCall
	g, err := NewGenerator(testRates("test_always"), bus, func(itemID, x, y, count int32) {
		if itemID == 301 {
			panic("world is full")
		}
		calls = append(calls, spawnCall{itemID, x, y, count})
	}, nil)
	require.NoError(t, err)

	spawned := g.DropAt("test_pair", model.NewLocation(0, 0))

	// Item 301 panicked and was discarded; 302 still spawned.
	require.Len(t, spawned, 1)
	assert.Equal(t, int32(302), spawned[0].ItemID())
	require.Len(t, calls, 1)
	assert.Equal(t, int32(302), calls[0].itemID)

	select {
	case rec := <-records:
		assert.Equal(t, event.TypeLootFailed, rec.Type)
		assert.Equal(t, "test_pair", rec.TableKey)
		assert.Contains(t, rec.Err, "world is full")
	case <-time.After(time.Second):
		t.Fatal("no loot.failed record emitted")
	}
}

func TestGenerator_MissingTableEmitsRecord(t *testing.T) {
	t.Parallel()

	bus := event.NewBus(nil)
	records := bus.Subscribe(8)

	g, err := NewGenerator(testRates("definitely_missing"), bus, func(itemID, x, y, count int32) {
		t.Error("spawn callback must not fire for missing table")
	}, nil)
	require.NoError(t, err)

	spawned := g.DropAt("no_such_table", model.NewLocation(0, 0))
	assert.Nil(t, spawned)

	select {
	case rec := <-records:
		assert.Equal(t, event.TypeLootTableMissing, rec.Type)
		assert.Equal(t, "no_such_table", rec.TableKey)
	case <-time.After(time.Second):
		t.Fatal("no loot.table_missing record emitted")
	}
}

func TestGenerator_DropForMonster(t *testing.T) {
	t.Parallel()

	var calls []spawnCall
	g, err := NewGenerator(testRates("test_always"), nil, func(itemID, x, y, count int32) {
		calls = append(calls, spawnCall{itemID, x, y, count})
	}, nil)
	require.NoError(t, err)

	// Mire Troll: boss table with guaranteed gold, tusk and idol entries.
	spawned := g.DropForMonster(1008, model.NewLocation(100, 100))

	got := make(map[int32]bool, len(spawned))
	for _, di := range spawned {
		got[di.ItemID()] = true
	}
	for _, want := range []int32{1, 406, 503} {
		assert.True(t, got[want], "guaranteed boss drop %d missing", want)
	}

	// Unknown monster falls back to the configured default table.
	calls = nil
	spawned = g.DropForMonster(777777, model.NewLocation(0, 0))
	require.Len(t, spawned, 1)
	assert.Equal(t, int32(301), spawned[0].ItemID())
}
