package sheets

import (
	"context"
	"errors"

	"google.golang.org/api/googleapi"

	"study-tracker/internal/record"
	"study-tracker/internal/study/repository"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

// implRepository persists the study domain in the backing spreadsheet.
type implRepository struct {
	sheets gsheets.ISheets
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new sheets-backed study repository.
func New(sheets gsheets.ISheets, l log.Logger) *implRepository {
	return &implRepository{
		sheets: sheets,
		l:      l,
	}
}

// isMissingSheet reports whether a read failed because the sheet does not
// exist yet. The Sheets API answers 400 "Unable to parse range" for that.
func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == 400
}

// listRecords reads a whole sheet and normalizes it into keyed records.
// A missing sheet is empty data, not an error.
func (r *implRepository) listRecords(ctx context.Context, sheetName, identityColumn string) ([]record.Record, error) {
	rows, err := r.sheets.ReadSheet(ctx, sheetName)
	if err != nil {
		if isMissingSheet(err) {
			r.l.Warnf(ctx, "repository.study: sheet %q missing, returning empty data", sheetName)
			return nil, nil
		}
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	return record.Normalize(rows[0], rows[1:], identityColumn), nil
}
