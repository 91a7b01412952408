//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_lines_get_test
package order_lines_get

import (
	"context"

	"orderbot/internal/entities"
	"orderbot/pkg/logger"
)

type handlerLogger interface {
	Debug(msg string, fields ...logger.Field)
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	GetOrderLines(ctx context.Context, filter entities.OrderLineFilter) ([]entities.OrderLine, error)
}
