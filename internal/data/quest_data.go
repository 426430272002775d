package data

import "log/slog"

// questRewardDef — одна позиция награды квеста (item ID + количество).
type questRewardDef struct {
	itemID int32
	count  int32
}

// questDef — определение квеста для Go-литералов.
type questDef struct {
	id       int32
	name     string
	giverID  int32 // monster/NPC ID квестодателя
	minLevel int32

	// Objective
	objective string // "kill","collect"
	targetID  int32  // monster ID для kill, item ID для collect
	required  int32

	// Rewards
	rewardXP    int64
	rewardItems []questRewardDef
}

// QuestDef accessor methods

func (d *questDef) ID() int32         { return d.id }
func (d *questDef) Name() string      { return d.name }
func (d *questDef) GiverID() int32    { return d.giverID }
func (d *questDef) MinLevel() int32   { return d.minLevel }
func (d *questDef) Objective() string { return d.objective }
func (d *questDef) TargetID() int32   { return d.targetID }
func (d *questDef) Required() int32   { return d.required }
func (d *questDef) RewardXP() int64   { return d.rewardXP }

func (d *questDef) RewardItems() []questRewardDef { return d.rewardItems }

// QuestRewardDef accessor methods
func (r *questRewardDef) ItemID() int32 { return r.itemID }
func (r *questRewardDef) Count() int32  { return r.count }

// QuestTable — глобальный registry всех quest definitions.
// map[questID]*questDef
var QuestTable map[int32]*questDef

// GetQuestDef возвращает questDef по ID.
func GetQuestDef(questID int32) *questDef {
	if QuestTable == nil {
		return nil
	}
	return QuestTable[questID]
}

// LoadQuests строит QuestTable из Go-литералов (questDefs).
func LoadQuests() error {
	QuestTable = make(map[int32]*questDef, len(questDefs))

	for i := range questDefs {
		QuestTable[questDefs[i].id] = &questDefs[i]
	}

	slog.Info("loaded quest definitions", "count", len(QuestTable))
	return nil
}
