// Command validate loads every content registry and runs the cross-table
// schema checks. Exits non-zero if the shipped content is broken, so it
// can gate CI and content edits.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/mirefall/mirefall/internal/data"
)

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := data.LoadAll(); err != nil {
		fmt.Fprintf(os.Stderr, "loading content: %v\n", err)
		os.Exit(1)
	}

	errs := data.Validate()
	if len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintf(os.Stderr, "content violation: %v\n", err)
		}
		fmt.Fprintf(os.Stderr, "\n%d violation(s) found\n", len(errs))
		os.Exit(1)
	}

	fmt.Printf("content is valid: %d items, %d monsters, %d abilities, %d quests, %d loot tables\n",
		len(data.ItemTable), len(data.MonsterTable), len(data.AbilityTable),
		len(data.QuestTable), len(data.LootTables))
}
