package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/catalog"
	"study-tracker/internal/model"
)

// ListCategories returns categories, hiding soft-deleted ones unless asked.
func (uc *implUseCase) ListCategories(ctx context.Context, includeInactive bool) ([]model.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListCategories: %v", err)
		return nil, err
	}
	if includeInactive {
		return categories, nil
	}
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

// CategoriesBySubject returns the active categories referencing a subject
// by name. Dangling references are fine: the subject itself may not exist.
func (uc *implUseCase) CategoriesBySubject(ctx context.Context, subjectName string) ([]model.Category, error) {
	categories, err := uc.ListCategories(ctx, false)
	if err != nil {
		return nil, err
	}
	out := make([]model.Category, 0, len(categories))
	for _, c := range categories {
		if c.SubjectName == subjectName {
			out = append(out, c)
		}
	}
	return out, nil
}

// GetCategory returns one category by name, inactive included.
func (uc *implUseCase) GetCategory(ctx context.Context, name string) (model.Category, error) {
	categories, err := uc.repo.ListCategories(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetCategory: %v", err)
		return model.Category{}, err
	}
	for _, c := range categories {
		if c.CategoryName == name {
			return c, nil
		}
	}
	return model.Category{}, catalog.ErrCategoryNotFound
}

// AddCategory creates a new active category after a duplicate-name check.
func (uc *implUseCase) AddCategory(ctx context.Context, input catalog.CreateCategoryInput) (model.Category, error) {
	name := strings.TrimSpace(input.CategoryName)
	if name == "" {
		return model.Category{}, catalog.ErrMissingName
	}
	if _, err := uc.GetCategory(ctx, name); err == nil {
		return model.Category{}, catalog.ErrDuplicateName
	}

	category := model.Category{
		CategoryName: name,
		SubjectName:  input.SubjectName,
		Difficulty:   input.Difficulty,
		Active:       true,
	}
	if err := uc.repo.CreateCategory(ctx, category); err != nil {
		uc.l.Errorf(ctx, "uc.AddCategory CreateCategory: %v", err)
		return model.Category{}, err
	}
	return category, nil
}

// DeleteCategory soft-deletes a category by flipping its active flag.
func (uc *implUseCase) DeleteCategory(ctx context.Context, name string) error {
	found, err := uc.repo.SetCategoryActive(ctx, name, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteCategory SetCategoryActive: %v", err)
		return err
	}
	if !found {
		return catalog.ErrCategoryNotFound
	}
	return nil
}
