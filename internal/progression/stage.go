package progression

// Stage is one node of the progression cycle. The game starts on the world
// map and always loops back to it; there is no terminal stage.
type Stage int

const (
	StageWorldMap Stage = iota
	StagePreviewingEncounter
	StageSelectingUnit
	StageInBattle
	StagePostBattle
	StageWildGrowthReward
	StageTameReward
)

func (s Stage) String() string {
	switch s {
	case StageWorldMap:
		return "WorldMap"
	case StagePreviewingEncounter:
		return "PreviewingEncounter"
	case StageSelectingUnit:
		return "SelectingUnit"
	case StageInBattle:
		return "InBattle"
	case StagePostBattle:
		return "PostBattle"
	case StageWildGrowthReward:
		return "WildGrowthReward"
	case StageTameReward:
		return "TameReward"
	default:
		return "Unknown"
	}
}
