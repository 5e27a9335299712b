package sheets

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/api/googleapi"

	"study-tracker/internal/progress/repository"
	"study-tracker/internal/record"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

// implRepository persists achievements, settings and daily stats. These
// sheets are write-heavy upsert targets, so reads are never cached.
type implRepository struct {
	sheets gsheets.ISheets
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

func New(sheets gsheets.ISheets, l log.Logger) *implRepository {
	return &implRepository{
		sheets: sheets,
		l:      l,
	}
}

func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == 400
}

// listRecords reads a sheet into header-keyed records. A missing sheet is
// empty data, not an error.
func (r *implRepository) listRecords(ctx context.Context, sheetName, identityColumn string) ([]record.Record, error) {
	rows, err := r.sheets.ReadSheet(ctx, sheetName)
	if err != nil {
		if isMissingSheet(err) {
			r.l.Warnf(ctx, "repository.progress: sheet %q missing, returning empty data", sheetName)
			return nil, nil
		}
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	return record.Normalize(rows[0], rows[1:], identityColumn), nil
}

// upsertRow overwrites the first data row whose identity column equals
// identityValue, or appends a new row when none matches. Row indices are
// computed over the raw sheet so the positional write lands exactly.
// Read-modify-write on the store is last-writer-wins.
func (r *implRepository) upsertRow(ctx context.Context, sheetName, identityColumn, identityValue string, rowValues []any, header []string) error {
	if err := r.sheets.EnsureSheet(ctx, sheetName, header); err != nil {
		return err
	}

	rows, err := r.sheets.ReadSheet(ctx, sheetName)
	if err != nil && !isMissingSheet(err) {
		return err
	}

	identityIdx := -1
	if len(rows) > 0 {
		for i, cell := range rows[0] {
			if record.CellString(cell) == identityColumn {
				identityIdx = i
				break
			}
		}
	}
	if identityIdx >= 0 {
		for i := 1; i < len(rows); i++ {
			if identityIdx >= len(rows[i]) {
				continue
			}
			if record.CellString(rows[i][identityIdx]) != identityValue {
				continue
			}
			// Sheet rows are 1-based and row 1 is the header.
			rangeA1 := fmt.Sprintf("'%s'!A%d", sheetName, i+1)
			return r.sheets.UpdateRange(ctx, rangeA1, [][]any{rowValues})
		}
	}
	return r.sheets.AppendRow(ctx, sheetName, rowValues)
}
