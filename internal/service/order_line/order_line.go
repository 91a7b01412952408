package order_line

import (
	"context"
	"fmt"
	"time"

	"orderbot/internal/entities"
	"orderbot/pkg/logger"
)

type Service struct {
	log        serviceLogger
	repository Repository
	sheets     SheetWriter
	publisher  EventPublisher
	txManager  TxManager
	now        func() time.Time
}

func New(
	log serviceLogger,
	repository Repository,
	sheets SheetWriter,
	publisher EventPublisher,
	txManager TxManager,
) *Service {
	return &Service{
		log:        log,
		repository: repository,
		sheets:     sheets,
		publisher:  publisher,
		txManager:  txManager,
		now:        func() time.Time { return time.Now().UTC() },
	}
}

// RecordLine фиксирует строку в журнале и пишет количество в ячейку датированного листа.
// Записи в одну ячейку сериализуются advisory-локом внутри транзакции, поэтому порядок
// строк в журнале совпадает с итоговым значением ячейки. Вставка идет до записи в таблицу:
// ошибка таблицы откатывает строку журнала. Остается только сбой коммита после записи,
// он логируется как расхождение таблицы и журнала.
func (s *Service) RecordLine(ctx context.Context, layout entities.Layout, line entities.OrderLine) (*entities.OrderLine, error) {
	if err := validateLine(line); err != nil {
		return nil, err
	}

	var (
		recorded     *entities.OrderLine
		sheetWritten bool
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		sheetWritten = false

		if err := s.repository.LockCell(ctx, line.CellKey()); err != nil {
			return fmt.Errorf("lock cell: %w", err)
		}

		// время фиксируем под локом
		line.RecordedAt = s.now()
		created, err := s.repository.Create(ctx, toModify(line))
		if err != nil {
			return fmt.Errorf("create order line: %w", err)
		}

		err = s.sheets.WriteQuantity(ctx, layout, line.SheetName, line.ItemName, line.AddressColumn, line.Quantity)
		if err != nil {
			return fmt.Errorf("write quantity: %w", err)
		}
		sheetWritten = true

		recorded = created
		return nil
	})
	if err != nil {
		if sheetWritten {
			s.log.Error("sheet cell updated but order line was not committed",
				logger.NewField("sheet", line.SheetName),
				logger.NewField("item", line.ItemName),
				logger.NewField("column", line.AddressColumn),
				logger.NewField("quantity", line.Quantity),
				logger.NewField("error", err),
			)
		}
		return nil, err
	}

	// событие только после коммита, иначе консьюмер может не найти строку
	if err := s.publisher.PublishOrderLineRecorded(ctx, *recorded); err != nil {
		s.log.Warn("publish order line recorded",
			logger.NewField("order_line_id", recorded.ID),
			logger.NewField("error", err),
		)
	}

	return recorded, nil
}

func (s *Service) GetOrderLines(ctx context.Context, filter entities.OrderLineFilter) ([]entities.OrderLine, error) {
	limit, err := normalizeLimit(filter.Limit)
	if err != nil {
		return nil, err
	}
	filter.Limit = &limit

	lines, err := s.repository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list order lines: %w", err)
	}
	return lines, nil
}

func toModify(line entities.OrderLine) entities.OrderLineModify {
	return entities.OrderLineModify{
		ChatID:        &line.ChatID,
		Category:      &line.Category,
		SubCategory:   &line.SubCategory,
		SpreadsheetID: &line.SpreadsheetID,
		SheetName:     &line.SheetName,
		AddressLabel:  &line.AddressLabel,
		AddressColumn: &line.AddressColumn,
		ItemName:      &line.ItemName,
		Quantity:      &line.Quantity,
		DeliveryDate:  &line.DeliveryDate,
		RecordedAt:    &line.RecordedAt,
	}
}
