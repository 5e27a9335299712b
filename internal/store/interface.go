package store

import "context"

// UseCase is the generic row-update surface over the backing spreadsheet.
type UseCase interface {
	UpdateRow(ctx context.Context, input UpdateRowInput) error
}
