package catalog

import (
	"context"

	"study-tracker/internal/model"
)

// UseCase manages subjects and categories. Deletion is always soft: the
// active flag flips, rows stay.
type UseCase interface {
	ListSubjects(ctx context.Context, includeInactive bool) ([]model.Subject, error)
	GetSubject(ctx context.Context, name string) (model.Subject, error)
	AddSubject(ctx context.Context, input CreateSubjectInput) (model.Subject, error)
	DeleteSubject(ctx context.Context, name string) error

	ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error)
	CategoriesBySubject(ctx context.Context, subjectName string) ([]model.Category, error)
	GetCategory(ctx context.Context, name string) (model.Category, error)
	AddCategory(ctx context.Context, input CreateCategoryInput) (model.Category, error)
	DeleteCategory(ctx context.Context, name string) error
}
