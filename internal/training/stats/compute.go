package stats

import (
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/duration"
	"github.com/yorgoszy/code-sneak-peek-sub012/internal/training/program"
)

type BlockMinutes struct {
	TrainingType string `json:"trainingType"`
	Minutes      int    `json:"minutes"`
}

// ComputeDayStats returns one entry per reportable block of a day, in block
// order. Blocks rounding to zero minutes are left out. Two blocks of the same
// type stay two entries.
func ComputeDayStats(blocks []program.Block) []BlockMinutes {
	result := make([]BlockMinutes, 0, len(blocks))
	for _, block := range blocks {
		if !IsReportable(block.TrainingType) {
			continue
		}

		minutes := duration.Minutes(duration.EstimateBlockSeconds(block.Exercises))
		if minutes == 0 {
			continue
		}

		result = append(result, BlockMinutes{
			TrainingType: NormalizeTrainingType(block.TrainingType),
			Minutes:      minutes,
		})
	}
	return result
}
