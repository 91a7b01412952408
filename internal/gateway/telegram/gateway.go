package telegram

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"orderbot/internal/entities"
	retrierconfig "orderbot/pkg/retrier"
	"orderbot/pkg/retrier/backoff_adapter"
)

const (
	initialInterval = 200 * time.Millisecond
	maxInterval     = 3 * time.Second
	maxElapsedTime  = 10 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

const messageNotModified = "message is not modified"

type MessengerGateway struct {
	bot     botClient
	retrier retrier
}

func New(bot botClient) *MessengerGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &MessengerGateway{
		bot:     bot,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *MessengerGateway) SendPrompt(ctx context.Context, chatID int64, prompt entities.Prompt) error {
	msg := tgbotapi.NewMessage(chatID, prompt.Text)
	if len(prompt.Keyboard) > 0 {
		markup, err := renderKeyboard(prompt.Keyboard)
		if err != nil {
			return fmt.Errorf("gateway telegram, send prompt: %w", err)
		}
		msg.ReplyMarkup = markup
	}

	if err := g.send(ctx, "sendMessage", msg); err != nil {
		return fmt.Errorf("gateway telegram, send prompt to %d: %w", chatID, err)
	}
	return nil
}

// EditPrompt заменяет текст и клавиатуру сообщения, на кнопку которого нажали.
func (g *MessengerGateway) EditPrompt(ctx context.Context, chatID int64, messageID int, prompt entities.Prompt) error {
	edit := tgbotapi.NewEditMessageText(chatID, messageID, prompt.Text)
	if len(prompt.Keyboard) > 0 {
		markup, err := renderKeyboard(prompt.Keyboard)
		if err != nil {
			return fmt.Errorf("gateway telegram, edit prompt: %w", err)
		}
		edit.ReplyMarkup = &markup
	}

	err := g.send(ctx, "editMessageText", edit)
	if err != nil && !isNotModified(err) {
		return fmt.Errorf("gateway telegram, edit prompt %d in %d: %w", messageID, chatID, err)
	}
	return nil
}

func (g *MessengerGateway) AnswerCallback(ctx context.Context, callbackID string) error {
	err := g.request(ctx, "answerCallbackQuery", tgbotapi.NewCallback(callbackID, ""))
	if err != nil {
		return fmt.Errorf("gateway telegram, answer callback: %w", err)
	}
	return nil
}

func (g *MessengerGateway) SendText(ctx context.Context, chatID int64, text string) error {
	if err := g.send(ctx, "sendMessage", tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("gateway telegram, send text to %d: %w", chatID, err)
	}
	return nil
}

func (g *MessengerGateway) SetWebhook(ctx context.Context, url string) error {
	webhook, err := tgbotapi.NewWebhook(url)
	if err != nil {
		return fmt.Errorf("gateway telegram, set webhook: %w", err)
	}
	if err := g.request(ctx, "setWebhook", webhook); err != nil {
		return fmt.Errorf("gateway telegram, set webhook: %w", err)
	}
	return nil
}

func (g *MessengerGateway) send(ctx context.Context, method string, c tgbotapi.Chattable) error {
	return g.executeWithMetrics(ctx, method, func(context.Context) error {
		_, err := g.bot.Send(c)
		return err
	})
}

func (g *MessengerGateway) request(ctx context.Context, method string, c tgbotapi.Chattable) error {
	return g.executeWithMetrics(ctx, method, func(context.Context) error {
		_, err := g.bot.Request(c)
		return err
	})
}

func (g *MessengerGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
	var attempt uint64
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		return fn(ctx)
	})

	status := statusLabel(err)
	GatewayRequestDuration.WithLabelValues(method, status).Observe(time.Since(start).Seconds())
	if attempt > 1 {
		GatewayRetriesTotal.WithLabelValues(method, status).Inc()
	}

	return err
}

func renderKeyboard(keyboard [][]entities.Choice) (tgbotapi.InlineKeyboardMarkup, error) {
	rows := make([][]tgbotapi.InlineKeyboardButton, 0, len(keyboard))
	for _, choices := range keyboard {
		row := make([]tgbotapi.InlineKeyboardButton, 0, len(choices))
		for _, choice := range choices {
			data, err := EncodeAction(choice.Action)
			if err != nil {
				return tgbotapi.InlineKeyboardMarkup{}, fmt.Errorf("button %q: %w", choice.Label, err)
			}
			row = append(row, tgbotapi.NewInlineKeyboardButtonData(choice.Label, data))
		}
		rows = append(rows, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(rows...), nil
}

func isRetryable(err error) bool {
	var apiErr *tgbotapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

func isNotModified(err error) bool {
	var apiErr *tgbotapi.Error
	return errors.As(err, &apiErr) && strings.Contains(apiErr.Message, messageNotModified)
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *tgbotapi.Error
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.Code)
	}
	return "UNKNOWN"
}
