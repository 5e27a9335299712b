package repository

import (
	"context"

	"study-tracker/internal/model"
)

// Repository is the persistence surface for subjects and categories.
// Listings include inactive rows; filtering is the usecase's job.
type Repository interface {
	ListSubjects(ctx context.Context) ([]model.Subject, error)
	CreateSubject(ctx context.Context, subject model.Subject) error
	SetSubjectActive(ctx context.Context, name string, active bool) (bool, error)

	ListCategories(ctx context.Context) ([]model.Category, error)
	CreateCategory(ctx context.Context, category model.Category) error
	SetCategoryActive(ctx context.Context, name string, active bool) (bool, error)
}
