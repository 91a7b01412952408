package order_line

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"orderbot/internal/entities"
	"orderbot/internal/repository"
	service "orderbot/internal/service/order_line"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderLineColumns = `id, chat_id, category, sub_category, spreadsheet_id, sheet_name,
	address_label, address_column, item_name, quantity, delivery_date, recorded_at, notified_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// LockCell advisory-лок на ячейку до конца текущей транзакции.
// Вне транзакции лок снимется сразу после запроса, поэтому вызывать только из txManager.Do.
func (r *Repository) LockCell(ctx context.Context, cellKey string) error {
	_, err := r.querier.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, cellKey)
	if err != nil {
		return fmt.Errorf("unexpected order line repository lock cell error: %w", err)
	}
	return nil
}

func (r *Repository) Create(ctx context.Context, modify entities.OrderLineModify) (*entities.OrderLine, error) {
	m := FromDomainModify(&modify)
	if m.ChatID == nil || m.Category == nil || m.SpreadsheetID == nil || m.SheetName == nil ||
		m.AddressLabel == nil || m.AddressColumn == nil || m.ItemName == nil ||
		m.Quantity == nil || m.DeliveryDate == nil {
		return nil, service.ErrMissingRequiredFields
	}

	builder := qb.
		Insert("order_lines").
		SetMap(sq.Eq{
			"chat_id":        m.ChatID,
			"category":       m.Category,
			"sub_category":   valueOr(m.SubCategory, ""),
			"spreadsheet_id": m.SpreadsheetID,
			"sheet_name":     m.SheetName,
			"address_label":  m.AddressLabel,
			"address_column": m.AddressColumn,
			"item_name":      m.ItemName,
			"quantity":       m.Quantity,
			"delivery_date":  m.DeliveryDate,
		})
	if m.RecordedAt != nil {
		builder = builder.SetMap(sq.Eq{"recorded_at": m.RecordedAt})
	}
	builder = builder.Suffix("RETURNING " + orderLineColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order line repository create error: %w", err)
	}

	lineDB, err := scanOrderLine(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if repository.IsCheckViolation(err, "quantity") {
			return nil, service.ErrInvalidQuantity
		}
		return nil, fmt.Errorf("unexpected order line repository create error: %w", err)
	}

	return ToDomain(lineDB), nil
}

// List строки журнала от новых к старым.
func (r *Repository) List(ctx context.Context, filter entities.OrderLineFilter) ([]entities.OrderLine, error) {
	builder := qb.
		Select(orderLineColumns).
		From("order_lines").
		OrderBy("id DESC")

	if filter.SheetName != nil {
		builder = builder.Where(sq.Eq{"sheet_name": *filter.SheetName})
	}
	if filter.Category != nil {
		builder = builder.Where(sq.Eq{"category": filter.Category.String()})
	}
	if filter.Limit != nil {
		builder = builder.Limit(uint64(*filter.Limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order line repository list error: %w", err)
	}

	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected order line repository list error: %w", err)
	}
	defer rows.Close()

	var linesDB []OrderLineDB
	for rows.Next() {
		lineDB, err := scanOrderLine(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order line repository list error: %w", err)
		}
		linesDB = append(linesDB, *lineDB)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order line repository list error: %w", err)
	}

	return ToDomainList(linesDB), nil
}

// MarkNotified ставит отметку об уведомлении. false, если строка уже отмечена или не найдена.
func (r *Repository) MarkNotified(ctx context.Context, orderLineID int64) (bool, error) {
	query, args, err := qb.
		Update("order_lines").
		Set("notified_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": orderLineID}).
		Where(sq.Eq{"notified_at": nil}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("unexpected order line repository mark notified error: %w", err)
	}

	tag, err := r.querier.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("unexpected order line repository mark notified error: %w", err)
	}
	return tag.RowsAffected() == 1, nil
}

func scanOrderLine(row pgx.Row) (*OrderLineDB, error) {
	var lineDB OrderLineDB
	err := row.Scan(
		&lineDB.ID,
		&lineDB.ChatID,
		&lineDB.Category,
		&lineDB.SubCategory,
		&lineDB.SpreadsheetID,
		&lineDB.SheetName,
		&lineDB.AddressLabel,
		&lineDB.AddressColumn,
		&lineDB.ItemName,
		&lineDB.Quantity,
		&lineDB.DeliveryDate,
		&lineDB.RecordedAt,
		&lineDB.NotifiedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lineDB, nil
}

func valueOr[T any](value *T, fallback T) T {
	if value == nil {
		return fallback
	}
	return *value
}
