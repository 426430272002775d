package data

// monsterDefs — контент-таблица всех монстров игры.
var monsterDefs = []monsterDef{
	{id: 1001, name: "Giant Rat", level: 1, maxHP: 25, attack: 3, defense: 1, moveSpeed: 90, xpReward: 8, lootTable: "giant_rat"},
	{id: 1002, name: "Forest Wolf", level: 3, maxHP: 60, attack: 7, defense: 3, aggroRadius: 200, moveSpeed: 140, xpReward: 22, lootTable: "forest_wolf"},
	{id: 1003, name: "Bog Slime", level: 2, maxHP: 45, attack: 4, defense: 6, moveSpeed: 50, xpReward: 15, lootTable: "bog_slime"},
	{id: 1004, name: "Marsh Bandit", level: 5, maxHP: 95, maxMP: 20, attack: 11, defense: 6, aggroRadius: 250, moveSpeed: 110, xpReward: 45, lootTable: "marsh_bandit"},
	{id: 1005, name: "Restless Skeleton", level: 6, maxHP: 110, attack: 13, defense: 8, aggroRadius: 300, moveSpeed: 95, xpReward: 60, lootTable: "undead"},
	{id: 1006, name: "Skeleton Archer", level: 7, maxHP: 100, attack: 16, defense: 6, aggroRadius: 350, moveSpeed: 95, xpReward: 70, lootTable: "undead"},
	{id: 1007, name: "Swamp Lurker", level: 8, maxHP: 160, maxMP: 40, attack: 18, defense: 10, aggroRadius: 220, moveSpeed: 80, xpReward: 95},                    // default loot
	{id: 1008, name: "Mire Troll", level: 12, maxHP: 800, maxMP: 120, attack: 34, defense: 20, aggroRadius: 400, moveSpeed: 100, xpReward: 650, lootTable: "boss_mire_troll"},
	{id: 1009, name: "Young Boar", level: 2, maxHP: 40, attack: 5, defense: 2, moveSpeed: 100, xpReward: 12},                                                     // default loot
	{id: 1010, name: "Bog Wisp", level: 4, maxHP: 55, maxMP: 80, attack: 6, defense: 2, moveSpeed: 130, xpReward: 30, lootTable: "bog_wisp"},
}
