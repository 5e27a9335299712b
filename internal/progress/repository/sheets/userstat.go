package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func userStatFromRecord(rec record.Record) model.UserStat {
	return model.UserStat{
		Date:             rec["date"],
		TasksCompleted:   rec.Int("tasks_completed"),
		CorrectTasks:     rec.Int("correct_tasks"),
		PointsEarned:     rec.Int("points_earned"),
		PomodoroSessions: rec.Int("pomodoro_sessions"),
		StudyTimeMinutes: rec.Int("study_time_minutes"),
	}
}

func (r *implRepository) ListUserStats(ctx context.Context) ([]model.UserStat, error) {
	recs, err := r.listRecords(ctx, model.SheetUserStats, "date")
	if err != nil {
		return nil, err
	}
	stats := make([]model.UserStat, 0, len(recs))
	for _, rec := range recs {
		stats = append(stats, userStatFromRecord(rec))
	}
	return stats, nil
}

func (r *implRepository) UpsertUserStat(ctx context.Context, stat model.UserStat) error {
	return r.upsertRow(ctx, model.SheetUserStats,
		"date", stat.Date,
		[]any{
			stat.Date, stat.TasksCompleted, stat.CorrectTasks,
			stat.PointsEarned, stat.PomodoroSessions, stat.StudyTimeMinutes,
		},
		model.SheetHeaders[model.SheetUserStats])
}
