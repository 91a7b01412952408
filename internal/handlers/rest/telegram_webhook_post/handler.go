package telegram_webhook_post

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/gorilla/mux"
	"orderbot/internal/entities"
	"orderbot/internal/gateway/telegram"
	"orderbot/internal/service/order"
	"orderbot/internal/service/order_line"
	"orderbot/pkg/logger"
)

const (
	startCommand    = "start"
	labelStartOver  = "🔄 Начать заново"
	textStale       = "⚠️ Этот шаг устарел. Начни оформление заново."
	textUnavailable = "⚠️ Не получилось выполнить действие. Попробуй еще раз чуть позже."
)

// Handler принимает апдейты Telegram. Пока секрет в пути совпадает, Telegram всегда
// получает 200: иначе он будет повторять апдейт, а ошибка уже показана пользователю.
type Handler struct {
	log       handlerLogger
	service   Service
	messenger Messenger
	limiter   ChatLimiter
	secret    string
}

func New(log handlerLogger, service Service, messenger Messenger, limiter ChatLimiter, secret string) *Handler {
	handlerLog := log.With(logger.NewField("handler", "telegram_webhook"))

	return &Handler{
		log:       handlerLog,
		service:   service,
		messenger: messenger,
		limiter:   limiter,
		secret:    secret,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	secret := mux.Vars(r)["secret"]
	if subtle.ConstantTimeCompare([]byte(secret), []byte(h.secret)) != 1 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var update tgbotapi.Update
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	switch {
	case update.CallbackQuery != nil:
		h.handleCallback(r.Context(), update.CallbackQuery)
	case update.Message != nil:
		h.handleMessage(r.Context(), update.Message)
	default:
		h.log.Debug("skip update", logger.NewField("update_id", update.UpdateID))
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handler) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.Chat == nil || !msg.IsCommand() || msg.Command() != startCommand {
		return
	}
	chatID := msg.Chat.ID
	if !h.limiter.Allow(chatID) {
		h.log.Debug("chat rate limited", logger.NewField("chat_id", chatID))
		ChatRateLimitedTotal.WithLabelValues("message").Inc()
		return
	}

	prompt := h.apply(ctx, chatID, entities.Start{})
	if err := h.messenger.SendPrompt(ctx, chatID, prompt); err != nil {
		h.log.With(
			logger.NewField("chat_id", chatID),
			logger.NewField("error", err),
		).Error("send prompt")
	}
}

func (h *Handler) handleCallback(ctx context.Context, cq *tgbotapi.CallbackQuery) {
	// снимаем "часики" с кнопки в любом случае
	if err := h.messenger.AnswerCallback(ctx, cq.ID); err != nil {
		h.log.With(logger.NewField("error", err)).Warn("answer callback")
	}

	if cq.Message == nil || cq.Message.Chat == nil {
		return
	}
	chatID := cq.Message.Chat.ID
	if !h.limiter.Allow(chatID) {
		h.log.Debug("chat rate limited", logger.NewField("chat_id", chatID))
		ChatRateLimitedTotal.WithLabelValues("callback").Inc()
		return
	}

	var prompt entities.Prompt
	action, err := telegram.DecodeAction(cq.Data)
	if err != nil {
		h.log.With(
			logger.NewField("chat_id", chatID),
			logger.NewField("error", err),
		).Warn("decode callback data")
		prompt = recoveryPrompt(textStale)
	} else {
		prompt = h.apply(ctx, chatID, action)
	}

	if err := h.messenger.EditPrompt(ctx, chatID, cq.Message.MessageID, prompt); err != nil {
		h.log.With(
			logger.NewField("chat_id", chatID),
			logger.NewField("error", err),
		).Error("edit prompt")
	}
}

// apply выполняет действие и превращает ошибку в экран с кнопкой перезапуска.
func (h *Handler) apply(ctx context.Context, chatID int64, action entities.Action) entities.Prompt {
	prompt, err := h.service.HandleAction(ctx, chatID, action)
	if err == nil {
		return prompt
	}

	log := h.log.With(
		logger.NewField("chat_id", chatID),
		logger.NewField("action", string(action.Kind())),
		logger.NewField("error", err),
	)
	if isRecoverable(err) {
		log.Info("action rejected")
		return recoveryPrompt(textStale)
	}

	log.Error("handle action")
	return recoveryPrompt(textUnavailable)
}

func isRecoverable(err error) bool {
	switch {
	case errors.Is(err, order.ErrSessionNotFound),
		errors.Is(err, order.ErrStaleAction),
		errors.Is(err, order.ErrLayoutNotFound),
		errors.Is(err, order.ErrTemplateNotFound),
		errors.Is(err, order_line.ErrItemNotFound),
		errors.Is(err, order_line.ErrInvalidQuantity):
		return true
	default:
		return false
	}
}

func recoveryPrompt(text string) entities.Prompt {
	return entities.Prompt{
		Text: text,
		Keyboard: [][]entities.Choice{
			entities.SingleChoiceRow(labelStartOver, entities.CreateOrder{}),
		},
	}
}
