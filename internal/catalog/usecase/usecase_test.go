package usecase_test

import (
	"context"
	"errors"
	"testing"

	"study-tracker/internal/catalog"
	"study-tracker/internal/catalog/usecase"
	"study-tracker/internal/model"
	"study-tracker/pkg/log"
)

type fakeRepo struct {
	subjects   []model.Subject
	categories []model.Category

	createSubjectFunc  func(ctx context.Context, s model.Subject) error
	setSubjectActive   func(ctx context.Context, name string, active bool) (bool, error)
	createCategoryFunc func(ctx context.Context, c model.Category) error
	setCategoryActive  func(ctx context.Context, name string, active bool) (bool, error)
}

func (f *fakeRepo) ListSubjects(ctx context.Context) ([]model.Subject, error) {
	return f.subjects, nil
}

func (f *fakeRepo) CreateSubject(ctx context.Context, s model.Subject) error {
	if f.createSubjectFunc != nil {
		return f.createSubjectFunc(ctx, s)
	}
	f.subjects = append(f.subjects, s)
	return nil
}

func (f *fakeRepo) SetSubjectActive(ctx context.Context, name string, active bool) (bool, error) {
	if f.setSubjectActive != nil {
		return f.setSubjectActive(ctx, name, active)
	}
	for i := range f.subjects {
		if f.subjects[i].SubjectName == name {
			f.subjects[i].Active = active
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	return f.categories, nil
}

func (f *fakeRepo) CreateCategory(ctx context.Context, c model.Category) error {
	if f.createCategoryFunc != nil {
		return f.createCategoryFunc(ctx, c)
	}
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeRepo) SetCategoryActive(ctx context.Context, name string, active bool) (bool, error) {
	if f.setCategoryActive != nil {
		return f.setCategoryActive(ctx, name, active)
	}
	for i := range f.categories {
		if f.categories[i].CategoryName == name {
			f.categories[i].Active = active
			return true, nil
		}
	}
	return false, nil
}

func TestSubjects(t *testing.T) {
	ctx := context.Background()

	t.Run("List Hides Inactive By Default", func(t *testing.T) {
		repo := &fakeRepo{subjects: []model.Subject{
			{SubjectName: "Math", Active: true},
			{SubjectName: "Latin", Active: false},
		}}
		uc := usecase.New(repo, log.NewNop())

		got, err := uc.ListSubjects(ctx, false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].SubjectName != "Math" {
			t.Errorf("expected only Math, got %v", got)
		}

		all, _ := uc.ListSubjects(ctx, true)
		if len(all) != 2 {
			t.Errorf("includeInactive must return every row, got %v", all)
		}
	})

	t.Run("Add Rejects Duplicates", func(t *testing.T) {
		repo := &fakeRepo{subjects: []model.Subject{{SubjectName: "Math", Active: true}}}
		uc := usecase.New(repo, log.NewNop())
		if _, err := uc.AddSubject(ctx, catalog.CreateSubjectInput{SubjectName: "Math"}); !errors.Is(err, catalog.ErrDuplicateName) {
			t.Errorf("expected ErrDuplicateName, got %v", err)
		}
	})

	t.Run("Delete Is Soft", func(t *testing.T) {
		repo := &fakeRepo{subjects: []model.Subject{{SubjectName: "Math", Active: true}}}
		uc := usecase.New(repo, log.NewNop())
		if err := uc.DeleteSubject(ctx, "Math"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(repo.subjects) != 1 || repo.subjects[0].Active {
			t.Errorf("row must stay with active=false, got %v", repo.subjects)
		}
	})

	t.Run("Delete Unknown Subject", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop())
		if err := uc.DeleteSubject(ctx, "Alchemy"); !errors.Is(err, catalog.ErrSubjectNotFound) {
			t.Errorf("expected ErrSubjectNotFound, got %v", err)
		}
	})
}

func TestCategories(t *testing.T) {
	ctx := context.Background()

	t.Run("By Subject Filters Active Matches", func(t *testing.T) {
		repo := &fakeRepo{categories: []model.Category{
			{CategoryName: "algebra", SubjectName: "Math", Active: true},
			{CategoryName: "geometry", SubjectName: "Math", Active: false},
			{CategoryName: "essays", SubjectName: "Polish", Active: true},
		}}
		uc := usecase.New(repo, log.NewNop())
		got, err := uc.CategoriesBySubject(ctx, "Math")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].CategoryName != "algebra" {
			t.Errorf("expected only active algebra, got %v", got)
		}
	})

	t.Run("Dangling Subject Reference Tolerated", func(t *testing.T) {
		repo := &fakeRepo{}
		uc := usecase.New(repo, log.NewNop())
		got, err := uc.AddCategory(ctx, catalog.CreateCategoryInput{
			CategoryName: "orphans",
			SubjectName:  "DoesNotExist",
		})
		if err != nil {
			t.Fatalf("dangling subject must be accepted: %v", err)
		}
		if !got.Active {
			t.Errorf("new categories start active")
		}
	})

	t.Run("Missing Name Rejected", func(t *testing.T) {
		uc := usecase.New(&fakeRepo{}, log.NewNop())
		if _, err := uc.AddCategory(ctx, catalog.CreateCategoryInput{}); !errors.Is(err, catalog.ErrMissingName) {
			t.Errorf("expected ErrMissingName, got %v", err)
		}
	})
}
