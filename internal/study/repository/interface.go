package repository

import (
	"context"

	"study-tracker/internal/model"
)

// Repository is the persistence surface for the study domain. Implementations
// auto-provision missing sheets on write and answer empty data on read.
type Repository interface {
	ListTasks(ctx context.Context) ([]model.StudyTask, error)
	CreateTask(ctx context.Context, task model.StudyTask) error
	CreateTasks(ctx context.Context, tasks []model.StudyTask) error

	ListSessions(ctx context.Context) ([]model.StudySession, error)
	CreateSession(ctx context.Context, session model.StudySession) error

	ListPomodoros(ctx context.Context) ([]model.PomodoroSession, error)
	CreatePomodoro(ctx context.Context, session model.PomodoroSession) error
}
