//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"
	"time"

	"orderbot/internal/entities"
)

type DeliveryDatesFactory interface {
	DeliveryOptions(category entities.OrderCategory, subCategory entities.SubCategory, now time.Time) []entities.DeliveryOption
}

type SheetGateway interface {
	ResolveAddresses(ctx context.Context, layout entities.Layout) ([]entities.AddressColumn, error)
	ResolveItems(ctx context.Context, layout entities.Layout) ([]string, error)
	EnsureDailySheet(ctx context.Context, layout entities.Layout, prefix string, date time.Time) (string, error)
}

type LineRecorder interface {
	RecordLine(ctx context.Context, layout entities.Layout, line entities.OrderLine) (*entities.OrderLine, error)
}

type SessionRepository interface {
	Get(ctx context.Context, chatID int64) (*entities.Session, error)
	Save(ctx context.Context, session entities.Session) error
	Delete(ctx context.Context, chatID int64) error
}

type Layouts interface {
	LayoutFor(category entities.OrderCategory) (entities.Layout, error)
}
