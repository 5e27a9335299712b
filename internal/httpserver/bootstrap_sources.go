package httpserver

import (
	"context"

	"study-tracker/internal/catalog"
	"study-tracker/internal/model"
	"study-tracker/internal/progress"
	"study-tracker/internal/study"
)

// bootstrapSources adapts the domain usecases onto the sequencer's fetch
// surface. Bootstrap loads active rows only.
type bootstrapSources struct {
	catalog  catalog.UseCase
	study    study.UseCase
	progress progress.UseCase
}

func (s bootstrapSources) Settings(ctx context.Context) (map[string]string, error) {
	return s.progress.ListSettings(ctx)
}

func (s bootstrapSources) Subjects(ctx context.Context) ([]model.Subject, error) {
	return s.catalog.ListSubjects(ctx, false)
}

func (s bootstrapSources) Categories(ctx context.Context) ([]model.Category, error) {
	return s.catalog.ListCategories(ctx, false)
}

func (s bootstrapSources) Tasks(ctx context.Context) ([]model.StudyTask, error) {
	return s.study.ListTasks(ctx)
}

func (s bootstrapSources) Achievements(ctx context.Context) ([]model.Achievement, error) {
	return s.progress.ListAchievements(ctx)
}
