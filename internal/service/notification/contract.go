//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"
)

type Repository interface {
	MarkNotified(ctx context.Context, orderLineID int64) (bool, error)
}

type Notifier interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
