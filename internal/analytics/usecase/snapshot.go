package usecase

import (
	"context"
	"math"

	"study-tracker/internal/analytics"
)

// Snapshot recomputes the full derived analytics payload from source
// records. Nothing here is persisted; the result is reproducible from the
// same input at any time.
func (uc *implUseCase) Snapshot(ctx context.Context, input analytics.SnapshotInput) analytics.Snapshot {
	tf := input.Timeframe
	if tf == "" {
		tf = analytics.TimeframeAll
	}

	tasks := uc.FilterByTimeframe(ctx, input.Tasks, tf)
	periods := uc.ByTimePeriod(ctx, tasks)
	bw := uc.BestWorst(ctx, periods)

	snap := analytics.Snapshot{
		Timeframe:       tf,
		Totals:          uc.Totals(ctx, tasks),
		BySubject:       uc.BySubject(ctx, tasks),
		ByCategory:      uc.ByCategory(ctx, tasks),
		ByTimePeriod:    periods,
		BestWorst:       bw,
		CategoryTime:    uc.CategoryTime(ctx, tasks),
		Streak:          uc.Streak(ctx, input.Tasks),
		Recommendations: uc.Recommendations(ctx, bw),
	}

	if input.ExamDate != "" {
		if exam, ok := parseTime(input.ExamDate); ok {
			days := int(math.Ceil(startOfDay(exam).Sub(startOfDay(uc.now())).Hours() / 24))
			if days >= 0 {
				snap.ExamCountdownDays = &days
			}
		} else {
			uc.l.Warnf(ctx, "analytics.Snapshot: unparseable exam_date %q, countdown omitted", input.ExamDate)
		}
	}

	return snap
}
