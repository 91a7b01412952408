//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_line_recorded_test
package order_line_recorded

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
	NotifyOrderLineRecorded(ctx context.Context, line entities.OrderLine) (bool, error)
}
