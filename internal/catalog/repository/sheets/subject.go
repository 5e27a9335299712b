package sheets

import (
	"context"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
)

func subjectFromRecord(rec record.Record) model.Subject {
	return model.Subject{
		SubjectName: rec["subject_name"],
		Color:       rec["color"],
		Icon:        rec["icon"],
		Active:      rec.Bool("active"),
	}
}

// ListSubjects returns every subject row, inactive included.
func (r *implRepository) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	recs, err := r.listRecords(ctx, model.SheetSubjects, "subject_name")
	if err != nil {
		return nil, err
	}
	subjects := make([]model.Subject, 0, len(recs))
	for _, rec := range recs {
		subjects = append(subjects, subjectFromRecord(rec))
	}
	return subjects, nil
}

// CreateSubject appends one subject row, provisioning the sheet when missing.
func (r *implRepository) CreateSubject(ctx context.Context, subject model.Subject) error {
	if err := r.sheets.EnsureSheet(ctx, model.SheetSubjects, model.SheetHeaders[model.SheetSubjects]); err != nil {
		return err
	}
	active := "TRUE"
	if !subject.Active {
		active = "FALSE"
	}
	if err := r.sheets.AppendRow(ctx, model.SheetSubjects, []any{
		subject.SubjectName, subject.Color, subject.Icon, active,
	}); err != nil {
		return err
	}
	r.cache.Remove(model.SheetSubjects)
	return nil
}

// SetSubjectActive flips a subject's active flag. Returns false when the
// subject does not exist.
func (r *implRepository) SetSubjectActive(ctx context.Context, name string, active bool) (bool, error) {
	return r.setActive(ctx, model.SheetSubjects, "subject_name", "D", name, active)
}
