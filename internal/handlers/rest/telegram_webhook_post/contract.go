//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=telegram_webhook_post_test
package telegram_webhook_post

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
	HandleAction(ctx context.Context, chatID int64, action entities.Action) (entities.Prompt, error)
}

type Messenger interface {
	SendPrompt(ctx context.Context, chatID int64, prompt entities.Prompt) error
	EditPrompt(ctx context.Context, chatID int64, messageID int, prompt entities.Prompt) error
	AnswerCallback(ctx context.Context, callbackID string) error
}

type ChatLimiter interface {
	Allow(key int64) bool
}
