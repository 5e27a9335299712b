package usecase

import (
	"context"
	"sort"

	"study-tracker/internal/analytics"
	"study-tracker/internal/model"
)

// CategoryTime ranks categories by total elapsed time, descending. Only
// tasks with a positive start/end span contribute.
func (uc *implUseCase) CategoryTime(ctx context.Context, tasks []model.StudyTask) []analytics.CategoryTimeEntry {
	type acc struct {
		total float64
		count int
	}
	byCat := make(map[string]*acc)
	for _, t := range tasks {
		minutes, ok := taskDuration(t)
		if !ok {
			continue
		}
		cats := splitCategories(t.Categories)
		if len(cats) == 0 {
			cats = []string{UnknownCategory}
		}
		for _, c := range cats {
			a := byCat[c]
			if a == nil {
				a = &acc{}
				byCat[c] = a
			}
			a.total += minutes
			a.count++
		}
	}

	out := make([]analytics.CategoryTimeEntry, 0, len(byCat))
	for c, a := range byCat {
		out = append(out, analytics.CategoryTimeEntry{
			Category:  c,
			TotalTime: a.total,
			TaskCount: a.count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalTime != out[j].TotalTime {
			return out[i].TotalTime > out[j].TotalTime
		}
		return out[i].Category < out[j].Category
	})
	return out
}
