package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"study-tracker/internal/model"
	"study-tracker/internal/study"
)

// AddPomodoro appends one pomodoro session row.
func (uc *implUseCase) AddPomodoro(ctx context.Context, input study.CreatePomodoroInput) (model.PomodoroSession, error) {
	sessionID := strings.TrimSpace(input.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	status := input.Status
	if status == "" {
		status = "completed"
	}
	session := model.PomodoroSession{
		SessionID:       sessionID,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		DurationMinutes: input.DurationMinutes,
		Category:        input.Category,
		Subject:         input.Subject,
		PointsEarned:    input.PointsEarned,
		Status:          status,
	}
	if err := uc.repo.CreatePomodoro(ctx, session); err != nil {
		uc.l.Errorf(ctx, "uc.AddPomodoro CreatePomodoro: %v", err)
		return model.PomodoroSession{}, err
	}
	return session, nil
}

// ListPomodoros returns all pomodoro sessions.
func (uc *implUseCase) ListPomodoros(ctx context.Context) ([]model.PomodoroSession, error) {
	sessions, err := uc.repo.ListPomodoros(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListPomodoros: %v", err)
		return nil, err
	}
	return sessions, nil
}
