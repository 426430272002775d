package data

import "fmt"

// LoadAll загружает все registries в правильном порядке.
// Вызывается из main и из тестов других пакетов.
func LoadAll() error {
	if err := LoadItems(); err != nil {
		return fmt.Errorf("loading items: %w", err)
	}
	if err := LoadMonsters(); err != nil {
		return fmt.Errorf("loading monsters: %w", err)
	}
	if err := LoadAbilities(); err != nil {
		return fmt.Errorf("loading abilities: %w", err)
	}
	if err := LoadQuests(); err != nil {
		return fmt.Errorf("loading quests: %w", err)
	}
	if err := LoadLootTables(); err != nil {
		return fmt.Errorf("loading loot tables: %w", err)
	}
	return nil
}
