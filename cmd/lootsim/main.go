package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"sort"
	"syscall"

	"github.com/mirefall/mirefall/internal/config"
	"github.com/mirefall/mirefall/internal/data"
	"github.com/mirefall/mirefall/internal/game/loot"
)

func main() {
	var (
		tableKey   = flag.String("table", "", "loot table key to simulate")
		monsterID  = flag.Int("monster", 0, "monster ID (resolves its loot table; overrides -table)")
		trials     = flag.Int("trials", 100000, "number of kill trials")
		workers    = flag.Int("workers", runtime.NumCPU(), "parallel simulation workers")
		configPath = flag.String("config", "config/server.yaml", "server config path")
	)
	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		slog.Info("interrupted", "signal", sig)
		cancel()
	}()

	if err := run(ctx, *tableKey, int32(*monsterID), *trials, *workers, *configPath); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, tableKey string, monsterID int32, trials, workers int, configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))

	if err := data.LoadAll(); err != nil {
		return fmt.Errorf("loading content: %w", err)
	}

	if monsterID != 0 {
		def := data.GetMonsterDef(monsterID)
		if def == nil {
			return fmt.Errorf("unknown monster %d", monsterID)
		}
		tableKey = def.LootTable()
		fmt.Printf("Monster: %s (level %d), loot table %q\n", def.Name(), def.Level(), tableKey)
	}
	if tableKey == "" {
		tableKey = cfg.Rates.DefaultLootTable
	}

	res, err := loot.Simulate(ctx, tableKey, &cfg.Rates, trials, workers)
	if err != nil {
		return fmt.Errorf("simulating %q: %w", tableKey, err)
	}

	printResult(res, &cfg.Rates)
	return nil
}

func printResult(res *loot.SimResult, rates *config.Rates) {
	fmt.Printf("\nTable %q, %d trials (chance rate x%.2f, amount rate x%.2f)\n\n",
		res.TableKey, res.Trials, rates.DropChanceMultiplier, rates.DropAmountMultiplier)
	fmt.Printf("%-8s %-22s %12s %12s\n", "ITEM", "NAME", "DROP RATE", "MEAN QTY")

	ids := make([]int32, 0, len(res.Items))
	for id := range res.Items {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		name := "?"
		if def := data.GetItemDef(id); def != nil {
			name = def.Name()
		}
		fmt.Printf("%-8d %-22s %11.3f%% %12.2f\n", id, name, res.DropRate(id), res.MeanQuantity(id))
	}
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
