package sheets

import (
	"context"
	"strconv"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func sessionFromRecord(rec record.Record) model.StudySession {
	return model.StudySession{
		SessionID:          rec["session_id"],
		StartTime:          rec["start_time"],
		EndTime:            rec["end_time"],
		DurationMinutes:    rec.Int("duration_minutes"),
		TotalTasks:         rec.Int("total_tasks"),
		CorrectTasks:       rec.Int("correct_tasks"),
		AccuracyPercentage: rec.Int("accuracy_percentage"),
		Notes:              rec["notes"],
	}
}

func sessionToRow(s model.StudySession) []any {
	return []any{
		s.SessionID, s.StartTime, s.EndTime, strconv.Itoa(s.DurationMinutes),
		strconv.Itoa(s.TotalTasks), strconv.Itoa(s.CorrectTasks),
		strconv.Itoa(s.AccuracyPercentage), s.Notes,
	}
}

// ListSessions returns every study session row.
func (r *implRepository) ListSessions(ctx context.Context) ([]model.StudySession, error) {
	recs, err := r.listRecords(ctx, model.SheetStudySessions, "session_id")
	if err != nil {
		return nil, err
	}
	sessions := make([]model.StudySession, 0, len(recs))
	for _, rec := range recs {
		sessions = append(sessions, sessionFromRecord(rec))
	}
	return sessions, nil
}

// CreateSession appends one session row, provisioning the sheet when missing.
func (r *implRepository) CreateSession(ctx context.Context, session model.StudySession) error {
	if err := r.sheets.EnsureSheet(ctx, model.SheetStudySessions, model.SheetHeaders[model.SheetStudySessions]); err != nil {
		return err
	}
	return r.sheets.AppendRow(ctx, model.SheetStudySessions, sessionToRow(session))
}
