package data

// itemDefs — контент-таблица всех предметов игры.
// Порядок: weapons, armor, consumables, materials, quest items.
var itemDefs = []itemDef{
	// Weapons
	{id: 101, name: "Rusty Sword", itemType: "weapon", weight: 40, price: 15, tradeable: true, rarity: "common", slot: "weapon", weaponClass: "sword", attack: 4},
	{id: 102, name: "Copper Sword", itemType: "weapon", weight: 45, price: 120, tradeable: true, rarity: "common", slot: "weapon", weaponClass: "sword", attack: 9},
	{id: 103, name: "Hunting Bow", itemType: "weapon", weight: 30, price: 150, tradeable: true, rarity: "common", slot: "weapon", weaponClass: "bow", attack: 8},
	{id: 104, name: "Oak Staff", itemType: "weapon", weight: 35, price: 140, tradeable: true, rarity: "common", slot: "weapon", weaponClass: "staff", attack: 3, magic: 10},
	{id: 105, name: "Bandit Dagger", itemType: "weapon", weight: 15, price: 90, tradeable: true, rarity: "common", slot: "weapon", weaponClass: "dagger", attack: 6},
	{id: 106, name: "Steel Axe", itemType: "weapon", weight: 60, price: 400, tradeable: true, rarity: "uncommon", slot: "weapon", weaponClass: "axe", attack: 15},
	{id: 107, name: "Mirewood Blade", itemType: "weapon", weight: 48, price: 2500, tradeable: true, rarity: "rare", slot: "weapon", weaponClass: "sword", attack: 26},
	{id: 108, name: "Trollbone Staff", itemType: "weapon", weight: 50, price: 6000, tradeable: true, rarity: "epic", slot: "weapon", weaponClass: "staff", attack: 8, magic: 32},

	// Armor
	{id: 201, name: "Cloth Tunic", itemType: "armor", weight: 20, price: 25, tradeable: true, rarity: "common", slot: "chest", armorClass: "cloth", defense: 3},
	{id: 202, name: "Leather Vest", itemType: "armor", weight: 35, price: 110, tradeable: true, rarity: "common", slot: "chest", armorClass: "light", defense: 7},
	{id: 203, name: "Leather Boots", itemType: "armor", weight: 15, price: 60, tradeable: true, rarity: "common", slot: "feet", armorClass: "light", defense: 3},
	{id: 204, name: "Iron Helm", itemType: "armor", weight: 30, price: 200, tradeable: true, rarity: "uncommon", slot: "head", armorClass: "heavy", defense: 6},
	{id: 205, name: "Iron Cuirass", itemType: "armor", weight: 80, price: 520, tradeable: true, rarity: "uncommon", slot: "chest", armorClass: "heavy", defense: 14},
	{id: 206, name: "Padded Gloves", itemType: "armor", weight: 10, price: 45, tradeable: true, rarity: "common", slot: "hands", armorClass: "light", defense: 2},
	{id: 207, name: "Bog Iron Greaves", itemType: "armor", weight: 55, price: 480, tradeable: true, rarity: "uncommon", slot: "legs", armorClass: "heavy", defense: 10},
	{id: 208, name: "Copper Ring", itemType: "armor", weight: 2, price: 75, tradeable: true, rarity: "common", slot: "ring", magic: 2},
	{id: 209, name: "Marsh Amulet", itemType: "armor", weight: 3, price: 900, tradeable: true, rarity: "rare", slot: "amulet", magic: 8, defense: 2},

	// Consumables
	{id: 301, name: "Minor Health Potion", itemType: "consumable", weight: 5, price: 20, stackable: true, tradeable: true, rarity: "common", healAmount: 40},
	{id: 302, name: "Health Potion", itemType: "consumable", weight: 5, price: 60, stackable: true, tradeable: true, rarity: "common", healAmount: 120},
	{id: 303, name: "Minor Mana Potion", itemType: "consumable", weight: 5, price: 25, stackable: true, tradeable: true, rarity: "common", manaAmount: 35},
	{id: 304, name: "Stale Bread", itemType: "consumable", weight: 3, price: 2, stackable: true, tradeable: true, rarity: "common", healAmount: 8},
	{id: 305, name: "Swamp Herb Tonic", itemType: "consumable", weight: 4, price: 150, stackable: true, tradeable: true, rarity: "uncommon", healAmount: 90, manaAmount: 45},

	// Materials
	{id: 401, name: "Wolf Pelt", itemType: "material", weight: 10, price: 8, stackable: true, tradeable: true, rarity: "common"},
	{id: 402, name: "Rat Tail", itemType: "material", weight: 1, price: 2, stackable: true, tradeable: true, rarity: "common"},
	{id: 403, name: "Slime Residue", itemType: "material", weight: 4, price: 5, stackable: true, tradeable: true, rarity: "common"},
	{id: 404, name: "Bone Shard", itemType: "material", weight: 3, price: 6, stackable: true, tradeable: true, rarity: "common"},
	{id: 405, name: "Iron Ore", itemType: "material", weight: 25, price: 12, stackable: true, tradeable: true, rarity: "common"},
	{id: 406, name: "Troll Tusk", itemType: "material", weight: 12, price: 350, stackable: true, tradeable: true, rarity: "rare"},
	{id: 407, name: "Torn Map Fragment", itemType: "material", weight: 1, price: 40, stackable: true, tradeable: true, rarity: "uncommon"},

	// Quest items (not tradeable)
	{id: 501, name: "Sealed Letter", itemType: "quest", weight: 1, rarity: "common"},
	{id: 502, name: "Warden's Insignia", itemType: "quest", weight: 2, rarity: "common"},
	{id: 503, name: "Cursed Idol", itemType: "quest", weight: 8, rarity: "rare"},

	// Currency
	{id: 1, name: "Gold Coin", itemType: "material", weight: 0, price: 1, stackable: true, tradeable: true, rarity: "common"},
}
