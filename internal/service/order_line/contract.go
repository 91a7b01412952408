//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_line_test
package order_line

import (
	"context"

	"orderbot/internal/entities"
	"orderbot/pkg/logger"
)

type Repository interface {
	LockCell(ctx context.Context, cellKey string) error
	Create(ctx context.Context, modify entities.OrderLineModify) (*entities.OrderLine, error)
	List(ctx context.Context, filter entities.OrderLineFilter) ([]entities.OrderLine, error)
}

type SheetWriter interface {
	WriteQuantity(ctx context.Context, layout entities.Layout, sheetName string, itemName string, column string, qty int) error
}

type EventPublisher interface {
	PublishOrderLineRecorded(ctx context.Context, line entities.OrderLine) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

type serviceLogger interface {
	Error(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
}
