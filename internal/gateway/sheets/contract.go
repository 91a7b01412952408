//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=sheets_test
package sheets

import (
	"context"

	"orderbot/internal/pkg/googlesheets"
)

type client interface {
	GetValues(ctx context.Context, spreadsheetID string, readRange string, majorDimension string) ([][]any, error)
	ListSheets(ctx context.Context, spreadsheetID string) ([]googlesheets.Sheet, error)
	CopySheet(ctx context.Context, spreadsheetID string, sheetID int64) (int64, error)
	RenameSheet(ctx context.Context, spreadsheetID string, sheetID int64, title string) error
	DeleteSheet(ctx context.Context, spreadsheetID string, sheetID int64) error
	UpdateValue(ctx context.Context, spreadsheetID string, cellRange string, value any) error
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
