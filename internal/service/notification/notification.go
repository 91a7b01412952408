package notification

import (
	"context"
	"fmt"

	"orderbot/internal/entities"
)

type Service struct {
	repository     Repository
	notifier       Notifier
	txManager      TxManager
	operatorChatID int64
}

func New(repository Repository, notifier Notifier, txManager TxManager, operatorChatID int64) *Service {
	return &Service{
		repository:     repository,
		notifier:       notifier,
		txManager:      txManager,
		operatorChatID: operatorChatID,
	}
}

// NotifyOrderLineRecorded отправляет операторам сообщение о записанной строке.
// Повторная доставка события не дает второго сообщения: отметка и отправка в одной
// транзакции, при ошибке отправки отметка откатывается.
// Возвращает false, если строка уже была отправлена.
func (s *Service) NotifyOrderLineRecorded(ctx context.Context, line entities.OrderLine) (bool, error) {
	if line.ID <= 0 {
		return false, fmt.Errorf("%w: id %d", ErrInvalidOrderLine, line.ID)
	}

	sent := false
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		marked, err := s.repository.MarkNotified(ctx, line.ID)
		if err != nil {
			return fmt.Errorf("mark notified: %w", err)
		}
		if !marked {
			return nil
		}

		if err := s.notifier.SendText(ctx, s.operatorChatID, formatLine(line)); err != nil {
			return fmt.Errorf("send to operators: %w", err)
		}
		sent = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return sent, nil
}

func formatLine(line entities.OrderLine) string {
	text := fmt.Sprintf("📦 %s", line.Category)
	if line.SubCategory != entities.SubCategoryNone {
		text += " / " + line.SubCategory.String()
	}
	return text + fmt.Sprintf("\nМагазин: %s\nТовар: %s\nКоличество: %d\nДоставка: %s\nЛист: %s",
		line.AddressLabel,
		line.ItemName,
		line.Quantity,
		line.DeliveryDate.Format(entities.DateLayout),
		line.SheetName,
	)
}
