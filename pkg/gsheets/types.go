package gsheets

import "context"

// ISheets is the tabular store surface the repositories depend on.
// One client is bound to one spreadsheet; sheets are addressed by title.
type ISheets interface {
	// ReadSheet returns every row of the named sheet, header included.
	ReadSheet(ctx context.Context, sheetName string) ([][]any, error)
	// ReadRange returns the rows of an A1-notation range.
	ReadRange(ctx context.Context, a1Range string) ([][]any, error)
	// AppendRow appends a single row after the last row with data.
	AppendRow(ctx context.Context, sheetName string, row []any) error
	// AppendRows appends several rows in one call.
	AppendRows(ctx context.Context, sheetName string, rows [][]any) error
	// UpdateRange overwrites an A1-notation range with the given values.
	UpdateRange(ctx context.Context, a1Range string, values [][]any) error
	// EnsureSheet creates the named sheet with a header row when it does
	// not exist yet. Existing sheets are left untouched.
	EnsureSheet(ctx context.Context, sheetName string, header []string) error
}
