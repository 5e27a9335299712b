package usecase

import (
	"context"
	"math"
	"strings"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	"study-tracker/internal/study"
)

// AddSession validates and appends one study session row.
func (uc *implUseCase) AddSession(ctx context.Context, input study.CreateSessionInput) (model.StudySession, error) {
	session := uc.buildSession(input)
	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.AddSession CreateSession: %v", err)
		return model.StudySession{}, err
	}
	return session, nil
}

// ListSessions returns all study sessions.
func (uc *implUseCase) ListSessions(ctx context.Context) ([]model.StudySession, error) {
	sessions, err := uc.repo.ListSessions(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSessions: %v", err)
		return nil, err
	}
	return sessions, nil
}

// RecentSessions returns the last `limit` sessions, newest first. Rows are
// append-ordered in the store, so the tail is the most recent.
func (uc *implUseCase) RecentSessions(ctx context.Context, limit int) ([]model.StudySession, error) {
	if limit <= 0 {
		limit = 5
	}
	sessions, err := uc.ListSessions(ctx)
	if err != nil {
		return nil, err
	}
	if len(sessions) > limit {
		sessions = sessions[len(sessions)-limit:]
	}
	out := make([]model.StudySession, 0, len(sessions))
	for i := len(sessions) - 1; i >= 0; i-- {
		out = append(out, sessions[i])
	}
	return out, nil
}

// SessionDetails returns one session and the tasks referencing it.
func (uc *implUseCase) SessionDetails(ctx context.Context, sessionID string) (study.SessionDetailsOutput, error) {
	sessions, err := uc.ListSessions(ctx)
	if err != nil {
		return study.SessionDetailsOutput{}, err
	}
	var found *model.StudySession
	for i := range sessions {
		if sessions[i].SessionID == sessionID {
			found = &sessions[i]
			break
		}
	}
	if found == nil {
		return study.SessionDetailsOutput{}, study.ErrSessionNotFound
	}

	tasks, err := uc.ListTasks(ctx)
	if err != nil {
		return study.SessionDetailsOutput{}, err
	}
	owned := make([]model.StudyTask, 0)
	for _, t := range tasks {
		if t.SessionID == sessionID {
			owned = append(owned, t)
		}
	}
	return study.SessionDetailsOutput{Session: *found, Tasks: owned}, nil
}

// SaveCompleteSession persists a session together with its tasks and
// best-effort upserts the daily counters. Stat failures never fail the save.
func (uc *implUseCase) SaveCompleteSession(ctx context.Context, input study.SaveCompleteSessionInput) (study.SaveCompleteSessionOutput, error) {
	session := uc.buildSession(input.Session)

	tasks := make([]model.StudyTask, 0, len(input.Tasks))
	correct := 0
	for _, ti := range input.Tasks {
		ti.SessionID = session.SessionID
		task, err := uc.buildTask(ti)
		if err != nil {
			return study.SaveCompleteSessionOutput{}, err
		}
		if task.CorrectlyCompleted == "Yes" {
			correct++
		}
		tasks = append(tasks, task)
	}

	if session.TotalTasks == 0 {
		session.TotalTasks = len(tasks)
		session.CorrectTasks = correct
		session.AccuracyPercentage = derivedAccuracy(correct, len(tasks))
	}

	if err := uc.repo.CreateSession(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.SaveCompleteSession CreateSession: %v", err)
		return study.SaveCompleteSessionOutput{}, err
	}
	if err := uc.repo.CreateTasks(ctx, tasks); err != nil {
		uc.l.Errorf(ctx, "uc.SaveCompleteSession CreateTasks: %v", err)
		return study.SaveCompleteSessionOutput{}, err
	}

	if uc.stats != nil {
		date := uc.now().Format("2006-01-02")
		if err := uc.stats.RecordSession(ctx, date, session.TotalTasks, session.CorrectTasks, session.DurationMinutes); err != nil {
			uc.l.Warnf(ctx, "uc.SaveCompleteSession RecordSession: %v", err)
		}
	}

	return study.SaveCompleteSessionOutput{Session: session, TasksSaved: len(tasks)}, nil
}

// buildSession fills defaults: generated ID, derived accuracy.
func (uc *implUseCase) buildSession(input study.CreateSessionInput) model.StudySession {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	accuracy := input.AccuracyPercentage
	if accuracy == 0 {
		accuracy = derivedAccuracy(input.CorrectTasks, input.TotalTasks)
	}
	return model.StudySession{
		SessionID:          sessionID,
		StartTime:          input.StartTime,
		EndTime:            input.EndTime,
		DurationMinutes:    input.DurationMinutes,
		TotalTasks:         input.TotalTasks,
		CorrectTasks:       input.CorrectTasks,
		AccuracyPercentage: accuracy,
		Notes:              input.Notes,
	}
}

func derivedAccuracy(correct, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(correct) / float64(total) * 100))
}
