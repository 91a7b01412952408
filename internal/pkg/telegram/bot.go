package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"orderbot/internal/pkg/config"
	"orderbot/pkg/logger"
	retrierconfig "orderbot/pkg/retrier"
	"orderbot/pkg/retrier/backoff_adapter"
)

var ErrEmptyToken = errors.New("empty bot token")

// NewBot создает клиента Bot API. Конструктор библиотеки сразу вызывает getMe,
// поэтому недоступность Telegram на старте переживается ретраями.
func NewBot(ctx context.Context, log logger.Logger, cfg *config.Telegram) (*tgbotapi.BotAPI, error) {
	if cfg.BotToken == "" {
		return nil, ErrEmptyToken
	}

	botLog := log.With(logger.NewField("component", "telegram-bot"))

	retryConfig := retrierconfig.Startup(isTransient)
	retryConfig.Notify = func(err error, next time.Duration) {
		botLog.Warn("telegram is unavailable, retrying",
			logger.NewField("error", err),
			logger.NewField("retry_in", next),
		)
	}

	retrier := backoff_adapter.New(retryConfig)

	var (
		bot     *tgbotapi.BotAPI
		attempt uint64
	)
	err := retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		botLog.With(
			logger.NewField("attempt", attempt),
		).Info("attempting telegram connection")

		var err error
		bot, err = tgbotapi.NewBotAPI(cfg.BotToken)
		return err
	})
	if err != nil {
		botLog.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("telegram connection failed after retries")
		return nil, fmt.Errorf("failed to create telegram bot: %w", err)
	}

	botLog.With(
		logger.NewField("attempts", attempt),
		logger.NewField("username", bot.Self.UserName),
	).Info("telegram bot authorized")
	return bot, nil
}

// isTransient неверный токен не лечится повтором.
func isTransient(err error) bool {
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
	}
	return true
}
