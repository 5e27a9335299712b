package analytics

import (
	"context"

	"study-tracker/internal/model"
)

// UseCase computes derived statistics over task batches. All operations are
// total over well-formed input: empty batches, missing optional fields and
// unparseable dates never produce an error, only warnings and exclusion.
type UseCase interface {
	Totals(ctx context.Context, tasks []model.StudyTask) Totals
	BySubject(ctx context.Context, tasks []model.StudyTask) map[string]int
	ByCategory(ctx context.Context, tasks []model.StudyTask) map[string]int
	ByTimePeriod(ctx context.Context, tasks []model.StudyTask) map[Period]PeriodStats
	BestWorst(ctx context.Context, periods map[Period]PeriodStats) BestWorst
	CategoryTime(ctx context.Context, tasks []model.StudyTask) []CategoryTimeEntry
	FilterByTimeframe(ctx context.Context, tasks []model.StudyTask, tf Timeframe) []model.StudyTask
	Recommendations(ctx context.Context, bw BestWorst) []string
	Streak(ctx context.Context, tasks []model.StudyTask) Streak
	Snapshot(ctx context.Context, input SnapshotInput) Snapshot
}

// SnapshotInput carries the source records for a full snapshot computation.
type SnapshotInput struct {
	Tasks     []model.StudyTask
	Timeframe Timeframe
	// ExamDate is the optional exam_date setting value (YYYY-MM-DD); empty
	// means no countdown is surfaced.
	ExamDate string
}
