package usecase

import (
	"context"
	"sort"
	"time"

	"study-tracker/internal/analytics"
	"study-tracker/internal/model"
)

// Streak derives the consecutive-day study streak from task dates. The
// current streak counts back from today, tolerating a not-yet-studied today
// (a streak ending yesterday is still "current").
func (uc *implUseCase) Streak(ctx context.Context, tasks []model.StudyTask) analytics.Streak {
	daySet := make(map[time.Time]bool)
	for _, t := range tasks {
		start, ok := taskStart(t)
		if !ok {
			continue
		}
		daySet[startOfDay(start)] = true
	}
	if len(daySet) == 0 {
		return analytics.Streak{}
	}

	days := make([]time.Time, 0, len(daySet))
	for d := range daySet {
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		// AddDate comparison instead of 24h arithmetic: survives DST days.
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	today := startOfDay(uc.now())
	anchor := today
	if !daySet[anchor] {
		anchor = today.AddDate(0, 0, -1)
	}
	current := 0
	for daySet[anchor] {
		current++
		anchor = anchor.AddDate(0, 0, -1)
	}

	return analytics.Streak{CurrentDays: current, LongestDays: longest}
}
