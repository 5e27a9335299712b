package sheets

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"google.golang.org/api/googleapi"

	"study-tracker/internal/catalog/repository"
	"study-tracker/internal/record"
	"study-tracker/pkg/gsheets"
	"study-tracker/pkg/log"
)

// implRepository persists subjects and categories. The two sheets are
// read-mostly, so full-sheet reads go through a short TTL cache; every
// write purges the affected sheet's entry.
type implRepository struct {
	sheets gsheets.ISheets
	cache  *expirable.LRU[string, []record.Record]
	l      log.Logger
}

var _ repository.Repository = (*implRepository)(nil)

// New creates a new sheets-backed catalog repository. Non-positive size and
// ttl fall back to 8 entries and 30s.
func New(sheets gsheets.ISheets, size int, ttl time.Duration, l log.Logger) *implRepository {
	if size <= 0 {
		size = 8
	}
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &implRepository{
		sheets: sheets,
		cache:  expirable.NewLRU[string, []record.Record](size, nil, ttl),
		l:      l,
	}
}

func isMissingSheet(err error) bool {
	var apiErr *googleapi.Error
	return errors.As(err, &apiErr) && apiErr.Code == 400
}

// listRecords reads a sheet through the cache. A missing sheet is empty
// data, not an error.
func (r *implRepository) listRecords(ctx context.Context, sheetName, identityColumn string) ([]record.Record, error) {
	if recs, ok := r.cache.Get(sheetName); ok {
		return recs, nil
	}

	rows, err := r.sheets.ReadSheet(ctx, sheetName)
	if err != nil {
		if isMissingSheet(err) {
			r.l.Warnf(ctx, "repository.catalog: sheet %q missing, returning empty data", sheetName)
			return nil, nil
		}
		return nil, err
	}
	if len(rows) < 2 {
		return nil, nil
	}
	recs := record.Normalize(rows[0], rows[1:], identityColumn)
	r.cache.Add(sheetName, recs)
	return recs, nil
}

// setActive finds the row whose identity column matches name and overwrites
// its active cell. Returns false when no row matched. The scan runs over the
// raw sheet, never the normalized records: Normalize drops blank-identity
// rows, which would shift the computed row number and land the write on a
// neighbor. Read-modify-write on the store is last-writer-wins; there is no
// optimistic locking.
func (r *implRepository) setActive(ctx context.Context, sheetName, identityColumn, activeColumnA1, name string, active bool) (bool, error) {
	rows, err := r.sheets.ReadSheet(ctx, sheetName)
	if err != nil {
		if isMissingSheet(err) {
			return false, nil
		}
		return false, err
	}
	if len(rows) == 0 {
		return false, nil
	}

	identityIdx := -1
	for i, cell := range rows[0] {
		if record.CellString(cell) == identityColumn {
			identityIdx = i
			break
		}
	}
	if identityIdx < 0 {
		return false, nil
	}

	for i := 1; i < len(rows); i++ {
		if identityIdx >= len(rows[i]) {
			continue
		}
		if record.CellString(rows[i][identityIdx]) != name {
			continue
		}
		// Sheet rows are 1-based and row 1 is the header.
		cell := fmt.Sprintf("'%s'!%s%d", sheetName, activeColumnA1, i+1)
		value := "TRUE"
		if !active {
			value = "FALSE"
		}
		if err := r.sheets.UpdateRange(ctx, cell, [][]any{{value}}); err != nil {
			return false, err
		}
		r.cache.Remove(sheetName)
		return true, nil
	}
	return false, nil
}
