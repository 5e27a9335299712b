package study

import (
	"context"

	"study-tracker/internal/model"
)

// UseCase covers tasks, study sessions and pomodoro sessions.
type UseCase interface {
	// Tasks (append-only; no update path)
	AddTask(ctx context.Context, input CreateTaskInput) (model.StudyTask, error)
	ListTasks(ctx context.Context) ([]model.StudyTask, error)

	// Study sessions
	AddSession(ctx context.Context, input CreateSessionInput) (model.StudySession, error)
	ListSessions(ctx context.Context) ([]model.StudySession, error)
	RecentSessions(ctx context.Context, limit int) ([]model.StudySession, error)
	SessionDetails(ctx context.Context, sessionID string) (SessionDetailsOutput, error)
	SaveCompleteSession(ctx context.Context, input SaveCompleteSessionInput) (SaveCompleteSessionOutput, error)

	// Pomodoro sessions
	AddPomodoro(ctx context.Context, input CreatePomodoroInput) (model.PomodoroSession, error)
	ListPomodoros(ctx context.Context) ([]model.PomodoroSession, error)
}

// StatsRecorder upserts the daily counters after a completed session. The
// progress domain provides it; the dependency stays an interface so the
// study domain never imports progress.
type StatsRecorder interface {
	RecordSession(ctx context.Context, date string, tasksCompleted, correctTasks, studyMinutes int) error
}
