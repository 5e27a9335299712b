package usecase

import (
	"context"

	"study-tracker/internal/analytics"
	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

// UnknownCategory is the sentinel bucket for tasks whose categories field is
// empty or unparseable.
const UnknownCategory = "Unknown"

// Totals counts the batch and derives overall accuracy.
func (uc *implUseCase) Totals(ctx context.Context, tasks []model.StudyTask) analytics.Totals {
	var correct int
	for _, t := range tasks {
		if record.IsCorrect(t.CorrectlyCompleted) {
			correct++
		}
	}
	return analytics.Totals{
		TotalTasks:      len(tasks),
		CorrectTasks:    correct,
		AccuracyPercent: roundPercent(correct, len(tasks)),
	}
}

// BySubject counts tasks per subject. Tasks without a subject are omitted,
// not bucketed under a sentinel; consumers rely on that asymmetry with
// ByCategory.
func (uc *implUseCase) BySubject(ctx context.Context, tasks []model.StudyTask) map[string]int {
	out := make(map[string]int)
	for _, t := range tasks {
		if t.Subject == "" {
			continue
		}
		out[t.Subject]++
	}
	return out
}

// ByCategory counts tasks per category. The comma-joined categories field
// fans out, so one task can contribute to several buckets; tasks with no
// usable category land under UnknownCategory.
func (uc *implUseCase) ByCategory(ctx context.Context, tasks []model.StudyTask) map[string]int {
	out := make(map[string]int)
	for _, t := range tasks {
		cats := splitCategories(t.Categories)
		if len(cats) == 0 {
			out[UnknownCategory]++
			continue
		}
		for _, c := range cats {
			out[c]++
		}
	}
	return out
}
