//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_options_get_test
package delivery_options_get

import (
	"time"

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

type DeliveryDatesFactory interface {
	DeliveryOptions(category entities.OrderCategory, subCategory entities.SubCategory, now time.Time) []entities.DeliveryOption
}
