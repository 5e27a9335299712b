package repository

import (
	"context"

	"study-tracker/internal/model"
)

// Repository is the persistence surface for achievements, settings and
// daily stats. Upserts overwrite the matched row in place or append; the
// store offers no transactions, so concurrent writers are last-writer-wins.
type Repository interface {
	ListAchievements(ctx context.Context) ([]model.Achievement, error)
	UpsertAchievement(ctx context.Context, achievement model.Achievement) error

	ListSettings(ctx context.Context) ([]model.Setting, error)
	UpsertSetting(ctx context.Context, setting model.Setting) error

	ListUserStats(ctx context.Context) ([]model.UserStat, error)
	UpsertUserStat(ctx context.Context, stat model.UserStat) error
}
