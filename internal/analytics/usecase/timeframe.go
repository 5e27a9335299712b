package usecase

import (
	"context"

	"study-tracker/internal/analytics"
	"study-tracker/internal/model"
)

// FilterByTimeframe keeps tasks whose start time falls inside the trailing
// window [startOfDay(now)-(days-1), now]. ALL returns the input unchanged,
// order preserved. Tasks without a resolvable time never match a bounded
// window.
func (uc *implUseCase) FilterByTimeframe(ctx context.Context, tasks []model.StudyTask, tf analytics.Timeframe) []model.StudyTask {
	days := tf.Days()
	if days == 0 {
		return tasks
	}

	now := uc.now()
	cutoff := startOfDay(now).AddDate(0, 0, -(days - 1))

	out := make([]model.StudyTask, 0, len(tasks))
	for _, t := range tasks {
		start, ok := taskStart(t)
		if !ok {
			continue
		}
		if start.Before(cutoff) || start.After(now) {
			continue
		}
		out = append(out, t)
	}
	return out
}
