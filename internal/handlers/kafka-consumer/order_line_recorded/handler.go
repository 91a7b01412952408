package order_line_recorded

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/IBM/sarama"
	"orderbot/internal/converters"
	"orderbot/internal/generated/dto"
	"orderbot/internal/service/notification"
	"orderbot/pkg/logger"
)

// defaultRedeliveryDelay пауза перед выходом из ConsumeClaim после неудачной отправки,
// чтобы недоступный Telegram не превращал повторную доставку в горячий цикл.
const defaultRedeliveryDelay = 5 * time.Second

type Handler struct {
	notificationService      Service
	log                      handlerLogger
	messageProcessingTimeout time.Duration
	redeliveryDelay          time.Duration
}

func New(log handlerLogger, notificationService Service, timeout time.Duration) *Handler {
	handlerLog := log.With()

	return &Handler{
		notificationService:      notificationService,
		log:                      handlerLog,
		messageProcessingTimeout: timeout,
		redeliveryDelay:          defaultRedeliveryDelay,
	}
}

func (h *Handler) Setup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) Cleanup(sarama.ConsumerGroupSession) error {
	return nil
}

func (h *Handler) ConsumeClaim(sess sarama.ConsumerGroupSession, claim sarama.ConsumerGroupClaim) error {
	for {
		select {
		case message, ok := <-claim.Messages():
			if !ok {
				h.log.Info("order.line.recorded: claim.Messages() closed, exiting ConsumeClaim")
				return nil
			}

			shouldExit := h.messageProcessing(sess, message)
			if shouldExit {
				return nil
			}

		case <-sess.Context().Done():
			// rebalance или остановка consumer group
			h.log.Info("order.line.recorded: session context done, exiting ConsumeClaim")
			return nil
		}
	}
}

// messageProcessing обрабатывает одно сообщение из Kafka.
// Возвращает true, если нужно прервать ConsumeClaim: сообщение не помечено, сессия
// группы завершается и Consume заново читает его с последнего помеченного оффсета.
// Повторная отправка операторам отсекается отметкой notified_at.
func (h *Handler) messageProcessing(sess sarama.ConsumerGroupSession, message *sarama.ConsumerMessage) bool {
	ctx, cancel := context.WithTimeout(sess.Context(), h.messageProcessingTimeout)
	defer cancel()

	var event dto.OrderLine
	err := json.Unmarshal(message.Value, &event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.line.recorded handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	line, err := converters.OrderLineFromDTO(event)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
			logger.NewField("offset", message.Offset),
		).Error("order.line.recorded handler received bad message")
		sess.MarkMessage(message, "")
		return false
	}

	msgLog := h.log.With(
		logger.NewField("order_line", line.ID),
		logger.NewField("sheet", line.SheetName),
		logger.NewField("offset", message.Offset),
	)

	sent, err := h.notificationService.NotifyOrderLineRecorded(ctx, line)
	if err != nil {
		switch {
		case errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.line.recorded handler context cancelled, message will be reprocessed")
			return true

		case errors.Is(err, notification.ErrInvalidOrderLine):
			msgLog.With(
				logger.NewField("error", err),
			).Warn("order.line.recorded handler invalid order line")
			sess.MarkMessage(message, "")
			return false

		default:
			// транзакция откатила notified_at, строка будет отправлена при повторной доставке
			msgLog.With(
				logger.NewField("error", err),
			).Error("order.line.recorded handler failed to notify operators, message will be redelivered")
			h.waitBeforeRedelivery(sess.Context())
			return true
		}
	}

	if sent {
		msgLog.Info("order.line.recorded: operators notified")
	} else {
		msgLog.Debug("order.line.recorded: already notified, skipped")
	}

	sess.MarkMessage(message, "")
	return false
}

func (h *Handler) waitBeforeRedelivery(ctx context.Context) {
	timer := time.NewTimer(h.redeliveryDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
