package usecase

import (
	"context"
	"fmt"
	"strings"

	"study-tracker/internal/model"
	"study-tracker/internal/record"
	"study-tracker/internal/store"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

type implUseCase struct {
	sheets gsheets.ISheets
	l      log.Logger
}

var _ store.UseCase = (*implUseCase)(nil)

// New creates the generic row-update use case. It talks to the spreadsheet
// directly; the sheet itself is the repository here.
func New(sheets gsheets.ISheets, l log.Logger) store.UseCase {
	return &implUseCase{
		sheets: sheets,
		l:      l,
	}
}

// UpdateRow overwrites the named columns of the first row whose match column
// equals the match value. Only sheets with a known layout are addressable.
// The read-modify-write is last-writer-wins.
func (uc *implUseCase) UpdateRow(ctx context.Context, input store.UpdateRowInput) error {
	header, ok := model.SheetHeaders[strings.TrimSpace(input.Sheet)]
	if !ok {
		return fmt.Errorf("%w: %q", store.ErrUnknownSheet, input.Sheet)
	}
	if len(input.Values) == 0 {
		return store.ErrEmptyValues
	}

	columnIdx := make(map[string]int, len(header))
	for i, name := range header {
		columnIdx[name] = i
	}
	matchIdx, ok := columnIdx[input.MatchColumn]
	if !ok {
		return fmt.Errorf("%w: %q", store.ErrUnknownColumn, input.MatchColumn)
	}
	for name := range input.Values {
		if _, ok := columnIdx[name]; !ok {
			return fmt.Errorf("%w: %q", store.ErrUnknownColumn, name)
		}
	}

	sheetName := strings.TrimSpace(input.Sheet)
	rows, err := uc.sheets.ReadSheet(ctx, sheetName)
	if err != nil {
		uc.l.Errorf(ctx, "store.UpdateRow: read %q: %v", sheetName, err)
		return err
	}

	for i := 1; i < len(rows); i++ {
		if matchIdx >= len(rows[i]) {
			continue
		}
		if record.CellString(rows[i][matchIdx]) != input.MatchValue {
			continue
		}

		updated := make([]any, len(header))
		for j := range header {
			if j < len(rows[i]) {
				updated[j] = rows[i][j]
			} else {
				updated[j] = ""
			}
		}
		for name, value := range input.Values {
			updated[columnIdx[name]] = value
		}

		// Sheet rows are 1-based and row 1 is the header.
		rangeA1 := fmt.Sprintf("'%s'!A%d", sheetName, i+1)
		if err := uc.sheets.UpdateRange(ctx, rangeA1, [][]any{updated}); err != nil {
			uc.l.Errorf(ctx, "store.UpdateRow: write %q: %v", rangeA1, err)
			return err
		}
		return nil
	}
	return fmt.Errorf("%w: %s=%q in %q", store.ErrRowNotFound, input.MatchColumn, input.MatchValue, sheetName)
}
