//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=daily_sheet_warmup_test
package daily_sheet_warmup

import (
	"context"
	"time"

	"orderbot/internal/entities"
)

type DeliveryDatesFactory interface {
	DeliveryOptions(category entities.OrderCategory, subCategory entities.SubCategory, now time.Time) []entities.DeliveryOption
}

type SheetGateway interface {
	EnsureDailySheet(ctx context.Context, layout entities.Layout, prefix string, date time.Time) (string, error)
}

type Layouts interface {
	Categories() []entities.OrderCategory
	LayoutFor(category entities.OrderCategory) (entities.Layout, error)
}
