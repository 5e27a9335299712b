package usecase

import (
	"context"
	"strings"

	"study-tracker/internal/catalog"
	"study-tracker/internal/model"
)

// ListSubjects returns subjects, hiding soft-deleted ones unless asked.
func (uc *implUseCase) ListSubjects(ctx context.Context, includeInactive bool) ([]model.Subject, error) {
	subjects, err := uc.repo.ListSubjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListSubjects: %v", err)
		return nil, err
	}
	if includeInactive {
		return subjects, nil
	}
	out := make([]model.Subject, 0, len(subjects))
	for _, s := range subjects {
		if s.Active {
			out = append(out, s)
		}
	}
	return out, nil
}

// GetSubject returns one subject by name, inactive included.
func (uc *implUseCase) GetSubject(ctx context.Context, name string) (model.Subject, error) {
	subjects, err := uc.repo.ListSubjects(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.GetSubject: %v", err)
		return model.Subject{}, err
	}
	for _, s := range subjects {
		if s.SubjectName == name {
			return s, nil
		}
	}
	return model.Subject{}, catalog.ErrSubjectNotFound
}

// AddSubject creates a new active subject after a duplicate-name check.
func (uc *implUseCase) AddSubject(ctx context.Context, input catalog.CreateSubjectInput) (model.Subject, error) {
	name := strings.TrimSpace(input.SubjectName)
	if name == "" {
		return model.Subject{}, catalog.ErrMissingName
	}
	if _, err := uc.GetSubject(ctx, name); err == nil {
		return model.Subject{}, catalog.ErrDuplicateName
	}

	subject := model.Subject{
		SubjectName: name,
		Color:       input.Color,
		Icon:        input.Icon,
		Active:      true,
	}
	if err := uc.repo.CreateSubject(ctx, subject); err != nil {
		uc.l.Errorf(ctx, "uc.AddSubject CreateSubject: %v", err)
		return model.Subject{}, err
	}
	return subject, nil
}

// DeleteSubject soft-deletes a subject by flipping its active flag.
func (uc *implUseCase) DeleteSubject(ctx context.Context, name string) error {
	found, err := uc.repo.SetSubjectActive(ctx, name, false)
	if err != nil {
		uc.l.Errorf(ctx, "uc.DeleteSubject SetSubjectActive: %v", err)
		return err
	}
	if !found {
		return catalog.ErrSubjectNotFound
	}
	return nil
}
