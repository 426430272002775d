package data

// questDefs — контент-таблица всех квестов игры.
var questDefs = []questDef{
	{
		id: 300, name: "Rats in the Cellar", giverID: 1001, minLevel: 1,
		objective: "kill", targetID: 1001, required: 5,
		rewardXP: 50,
		rewardItems: []questRewardDef{
			{itemID: 1, count: 30},
			{itemID: 301, count: 2},
		},
	},
	{
		id: 301, name: "Pelts for the Tanner", giverID: 1002, minLevel: 2,
		objective: "collect", targetID: 401, required: 8,
		rewardXP: 120,
		rewardItems: []questRewardDef{
			{itemID: 1, count: 90},
			{itemID: 203, count: 1},
		},
	},
	{
		id: 302, name: "Bones to Rest", giverID: 1005, minLevel: 5,
		objective: "kill", targetID: 1005, required: 12,
		rewardXP: 400,
		rewardItems: []questRewardDef{
			{itemID: 1, count: 250},
			{itemID: 502, count: 1},
		},
	},
	{
		id: 303, name: "The Troll of the Mire", giverID: 1004, minLevel: 10,
		objective: "kill", targetID: 1008, required: 1,
		rewardXP: 2000,
		rewardItems: []questRewardDef{
			{itemID: 1, count: 1500},
			{itemID: 107, count: 1},
		},
	},
}
