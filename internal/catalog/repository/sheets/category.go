package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func categoryFromRecord(rec record.Record) model.Category {
	return model.Category{
		CategoryName: rec["category_name"],
		SubjectName:  rec["subject_name"],
		Difficulty:   rec["difficulty"],
		Active:       rec.Bool("active"),
	}
}

// ListCategories returns every category row, inactive included.
func (r *implRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	recs, err := r.listRecords(ctx, model.SheetCategories, "category_name")
	if err != nil {
		return nil, err
	}
	categories := make([]model.Category, 0, len(recs))
	for _, rec := range recs {
		categories = append(categories, categoryFromRecord(rec))
	}
	return categories, nil
}

// CreateCategory appends one category row, provisioning the sheet when missing.
func (r *implRepository) CreateCategory(ctx context.Context, category model.Category) error {
	if err := r.sheets.EnsureSheet(ctx, model.SheetCategories, model.SheetHeaders[model.SheetCategories]); err != nil {
		return err
	}
	active := "TRUE"
	if !category.Active {
		active = "FALSE"
	}
	if err := r.sheets.AppendRow(ctx, model.SheetCategories, []any{
		category.CategoryName, category.SubjectName, category.Difficulty, active,
	}); err != nil {
		return err
	}
	r.cache.Remove(model.SheetCategories)
	return nil
}

// SetCategoryActive flips a category's active flag. Returns false when the
// category does not exist.
func (r *implRepository) SetCategoryActive(ctx context.Context, name string, active bool) (bool, error) {
	return r.setActive(ctx, model.SheetCategories, "category_name", "D", name, active)
}
