package sheets_test

import (
	"context"
	"testing"
	"time"

	"study-tracker/internal/catalog/repository/sheets"
	"study-tracker/pkg/log"
)

type fakeSheets struct {
	rows [][]any

	updatedRange  string
	updatedValues [][]any
}

func (f *fakeSheets) ReadSheet(ctx context.Context, sheetName string) ([][]any, error) {
	return f.rows, nil
}

func (f *fakeSheets) ReadRange(ctx context.Context, a1Range string) ([][]any, error) {
	return nil, nil
}

func (f *fakeSheets) AppendRow(ctx context.Context, sheetName string, row []any) error {
	return nil
}

func (f *fakeSheets) AppendRows(ctx context.Context, sheetName string, rows [][]any) error {
	return nil
}

func (f *fakeSheets) UpdateRange(ctx context.Context, a1Range string, values [][]any) error {
	f.updatedRange = a1Range
	f.updatedValues = values
	return nil
}

func (f *fakeSheets) EnsureSheet(ctx context.Context, sheetName string, header []string) error {
	return nil
}

func TestSetSubjectActive(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Row Above Match Does Not Shift The Write", func(t *testing.T) {
		// Sheet row 2 has an empty identity cell; Math sits at sheet row 3.
		client := &fakeSheets{rows: [][]any{
			{"subject_name", "color", "icon", "active"},
			{"", "", "", ""},
			{"Math", "#f00", "sigma", "TRUE"},
		}}
		repo := sheets.New(client, 8, time.Second, log.NewNop())

		found, err := repo.SetSubjectActive(ctx, "Math", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected the subject to be found")
		}
		if client.updatedRange != "'Subjects'!D3" {
			t.Errorf("active flag written to %q, want 'Subjects'!D3 (Math is sheet row 3)", client.updatedRange)
		}
		if len(client.updatedValues) != 1 || client.updatedValues[0][0] != "FALSE" {
			t.Errorf("unexpected cell values: %v", client.updatedValues)
		}
	})

	t.Run("Match At First Data Row", func(t *testing.T) {
		client := &fakeSheets{rows: [][]any{
			{"subject_name", "color", "icon", "active"},
			{"Math", "#f00", "sigma", "FALSE"},
		}}
		repo := sheets.New(client, 8, time.Second, log.NewNop())

		found, err := repo.SetSubjectActive(ctx, "Math", true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected the subject to be found")
		}
		if client.updatedRange != "'Subjects'!D2" {
			t.Errorf("active flag written to %q, want 'Subjects'!D2", client.updatedRange)
		}
	})

	t.Run("Missing Subject Reports Not Found", func(t *testing.T) {
		client := &fakeSheets{rows: [][]any{
			{"subject_name", "color", "icon", "active"},
			{"Math", "#f00", "sigma", "TRUE"},
		}}
		repo := sheets.New(client, 8, time.Second, log.NewNop())

		found, err := repo.SetSubjectActive(ctx, "Alchemy", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if found {
			t.Error("unknown subjects must not match")
		}
		if client.updatedRange != "" {
			t.Errorf("no write expected, got %q", client.updatedRange)
		}
	})
}

func TestSetCategoryActive(t *testing.T) {
	ctx := context.Background()

	t.Run("Blank Row Above Match Does Not Shift The Write", func(t *testing.T) {
		client := &fakeSheets{rows: [][]any{
			{"category_name", "subject_name", "difficulty", "active"},
			{"", "", "", ""},
			{"", "", "", ""},
			{"algebra", "Math", "hard", "TRUE"},
		}}
		repo := sheets.New(client, 8, time.Second, log.NewNop())

		found, err := repo.SetCategoryActive(ctx, "algebra", false)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !found {
			t.Fatal("expected the category to be found")
		}
		if client.updatedRange != "'Categories'!D4" {
			t.Errorf("active flag written to %q, want 'Categories'!D4 (algebra is sheet row 4)", client.updatedRange)
		}
	})
}
