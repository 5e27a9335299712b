package progress

import (
	"context"

	"study-tracker/internal/model"
)

// UseCase covers achievements, settings and the daily User_Stats counters.
type UseCase interface {
	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	UpdateAchievement(ctx context.Context, input UpdateAchievementInput) (model.Achievement, error)

	ListSettings(ctx context.Context) (map[string]string, error)
	UpdateSetting(ctx context.Context, key, value string) (model.Setting, error)

	ListUserStats(ctx context.Context) ([]model.UserStat, error)
	AddUserStat(ctx context.Context, input AddUserStatInput) (model.UserStat, error)
	TodayStats(ctx context.Context) (model.UserStat, error)

	// RecordSession satisfies study.StatsRecorder.
	RecordSession(ctx context.Context, date string, tasksCompleted, correctTasks, studyMinutes int) error
}
