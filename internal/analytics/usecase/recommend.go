package usecase

import (
	"context"
	"fmt"

	"study-tracker/internal/analytics"
)

// Accuracy below this in the worst period triggers a remedial suggestion.
const lowAccuracyCutoff = 60

// Recommendations turns a best/worst selection into textual guidance.
// Purely derivative: no side effects, never fails.
func (uc *implUseCase) Recommendations(ctx context.Context, bw analytics.BestWorst) []string {
	if bw.Best == nil {
		return []string{"Not enough data yet. Log a few tasks to unlock time-of-day insights."}
	}

	var recs []string
	if bw.Best.Reliable {
		recs = append(recs, fmt.Sprintf(
			"You are most accurate in the %s (%d%% over %d tasks). Schedule demanding material then.",
			bw.Best.Period, bw.Best.Stats.Accuracy, bw.Best.Stats.Total))
	} else {
		recs = append(recs, fmt.Sprintf(
			"Early signal: %s looks like your strongest period, but fewer than %d tasks were logged per period. Treat this as a hint, not a pattern.",
			bw.Best.Period, analytics.ReliabilityThreshold))
	}

	if bw.Worst != nil && bw.Worst.Period != bw.Best.Period {
		switch {
		case bw.Worst.Reliable && bw.Worst.Stats.Accuracy < lowAccuracyCutoff:
			recs = append(recs, fmt.Sprintf(
				"Accuracy drops to %d%% in the %s. Keep lighter review work for that time.",
				bw.Worst.Stats.Accuracy, bw.Worst.Period))
		case bw.Worst.Reliable:
			recs = append(recs, fmt.Sprintf(
				"The %s is your weakest period at %d%%, still a workable level.",
				bw.Worst.Period, bw.Worst.Stats.Accuracy))
		default:
			recs = append(recs, fmt.Sprintf(
				"Too few tasks in the %s to judge it; log more sessions there for a reliable picture.",
				bw.Worst.Period))
		}
	}

	return recs
}
