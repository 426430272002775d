package loot

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/mirefall/mirefall/internal/config"
)

// ItemStat aggregates simulation results for a single item.
type ItemStat struct {
	Drops    int64 // number of successful rolls that produced the item
	Quantity int64 // total quantity across all trials
}

// SimResult holds aggregated drop statistics for a loot table.
type SimResult struct {
	TableKey string
	Trials   int
	Items    map[int32]*ItemStat
}

// DropRate returns the observed drop rate of itemID in percent.
func (r *SimResult) DropRate(itemID int32) float64 {
	if r.Trials == 0 {
		return 0
	}
	st, ok := r.Items[itemID]
	if !ok {
		return 0
	}
	return float64(st.Drops) / float64(r.Trials) * 100.0
}

// MeanQuantity returns the average quantity per successful drop of itemID.
func (r *SimResult) MeanQuantity(itemID int32) float64 {
	st, ok := r.Items[itemID]
	if !ok || st.Drops == 0 {
		return 0
	}
	return float64(st.Quantity) / float64(st.Drops)
}

// Simulate rolls the given loot table trials times across workers
// goroutines and aggregates per-item statistics. Used by cmd/lootsim to
// sanity-check content against configured chances.
func Simulate(ctx context.Context, tableKey string, rates *config.Rates, trials, workers int) (*SimResult, error) {
	if trials <= 0 {
		return nil, fmt.Errorf("trials must be > 0, got %d", trials)
	}
	if workers <= 0 {
		workers = 1
	}
	if workers > trials {
		workers = trials
	}

	if _, found := calculateDrops(tableKey, rates); !found {
		return nil, fmt.Errorf("loot table %q not found", tableKey)
	}

	result := &SimResult{
		TableKey: tableKey,
		Trials:   trials,
		Items:    make(map[int32]*ItemStat, 8),
	}
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)

	per := trials / workers
	extra := trials % workers
	for w := 0; w < workers; w++ {
		n := per
		if w < extra {
			n++
		}
		if n == 0 {
			continue
		}

		g.Go(func() error {
			local := make(map[int32]*ItemStat, 8)

			for i := 0; i < n; i++ {
				if i%1024 == 0 {
					select {
					case <-ctx.Done():
						return ctx.Err()
					default:
					}
				}

				for _, d := range CalculateDrops(tableKey, rates) {
					st, ok := local[d.ItemID]
					if !ok {
						st = &ItemStat{}
						local[d.ItemID] = st
					}
					st.Drops++
					st.Quantity += int64(d.Count)
				}
			}

			mu.Lock()
			defer mu.Unlock()
			for id, st := range local {
				agg, ok := result.Items[id]
				if !ok {
					agg = &ItemStat{}
					result.Items[id] = agg
				}
				agg.Drops += st.Drops
				agg.Quantity += st.Quantity
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return result, nil
}
