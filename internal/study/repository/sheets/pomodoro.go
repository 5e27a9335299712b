package sheets

import (
	"context"
	"strconv"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func pomodoroFromRecord(rec record.Record) model.PomodoroSession {
	return model.PomodoroSession{
		SessionID:       rec["session_id"],
		StartTime:       rec["start_time"],
		EndTime:         rec["end_time"],
		DurationMinutes: rec.Int("duration_minutes"),
		Category:        rec["category"],
		Subject:         rec["subject"],
		PointsEarned:    rec.Int("points_earned"),
		Status:          rec["status"],
	}
}

func pomodoroToRow(p model.PomodoroSession) []any {
	return []any{
		p.SessionID, p.StartTime, p.EndTime, strconv.Itoa(p.DurationMinutes),
		p.Category, p.Subject, strconv.Itoa(p.PointsEarned), p.Status,
	}
}

// ListPomodoros returns every pomodoro session row.
func (r *implRepository) ListPomodoros(ctx context.Context) ([]model.PomodoroSession, error) {
	recs, err := r.listRecords(ctx, model.SheetPomodoroSessions, "session_id")
	if err != nil {
		return nil, err
	}
	sessions := make([]model.PomodoroSession, 0, len(recs))
	for _, rec := range recs {
		sessions = append(sessions, pomodoroFromRecord(rec))
	}
	return sessions, nil
}

// CreatePomodoro appends one pomodoro row, provisioning the sheet when missing.
func (r *implRepository) CreatePomodoro(ctx context.Context, session model.PomodoroSession) error {
	if err := r.sheets.EnsureSheet(ctx, model.SheetPomodoroSessions, model.SheetHeaders[model.SheetPomodoroSessions]); err != nil {
		return err
	}
	return r.sheets.AppendRow(ctx, model.SheetPomodoroSessions, pomodoroToRow(session))
}
