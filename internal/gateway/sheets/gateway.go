package sheets

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"
	"google.golang.org/api/googleapi"
	"orderbot/internal/entities"
	"orderbot/internal/pkg/googlesheets"
	"orderbot/internal/service/order"
	"orderbot/internal/service/order_line"
	"orderbot/pkg/a1"
	retrierconfig "orderbot/pkg/retrier"
	"orderbot/pkg/retrier/backoff_adapter"
)

// addressWindow сколько колонок правее стартовой читается в поисках адресов.
const addressWindow = 200

const (
	initialInterval = 500 * time.Millisecond
	maxInterval     = 8 * time.Second
	maxElapsedTime  = 30 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

type SheetGateway struct {
	client  client
	retrier retrier
	flights singleflight.Group
}

func New(client client) *SheetGateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &SheetGateway{
		client:  client,
		retrier: backoff_adapter.New(retryConfig),
	}
}

// ResolveAddresses читает строку заголовка вправо от стартовой колонки до первой пустой ячейки.
func (g *SheetGateway) ResolveAddresses(ctx context.Context, layout entities.Layout) ([]entities.AddressColumn, error) {
	start, err := a1.ColumnToIndex(layout.AddressStartColumn)
	if err != nil {
		return nil, fmt.Errorf("gateway sheets, resolve addresses: %w", err)
	}

	readRange := a1.RowRange(
		layout.TemplateSheetName,
		layout.AddressHeaderRow,
		a1.IndexToColumn(start),
		a1.IndexToColumn(start+addressWindow),
	)

	values, err := g.getValues(ctx, layout.SpreadsheetID, readRange, googlesheets.DimensionRows)
	if err != nil {
		return nil, fmt.Errorf("gateway sheets, resolve addresses: %w", err)
	}

	var addresses []entities.AddressColumn
	for offset, value := range firstLine(values) {
		label := strings.TrimSpace(cellString(value))
		if label == "" {
			break
		}
		addresses = append(addresses, entities.AddressColumn{
			Label:  label,
			Column: a1.IndexToColumn(start + offset),
		})
	}
	return addresses, nil
}

// ResolveItems товары из колонки шаблона без пустых ячеек, исключенных строк и значений.
func (g *SheetGateway) ResolveItems(ctx context.Context, layout entities.Layout) ([]string, error) {
	values, err := g.itemColumn(ctx, layout, layout.TemplateSheetName)
	if err != nil {
		return nil, fmt.Errorf("gateway sheets, resolve items: %w", err)
	}

	var items []string
	for i, value := range values {
		if _, excluded := layout.ExcludedRows[layout.ItemRowStart+i]; excluded {
			continue
		}
		item := strings.TrimSpace(cellString(value))
		if item == "" {
			continue
		}
		if _, excluded := layout.ExcludedValues[item]; excluded {
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// EnsureDailySheet возвращает имя листа на дату, при необходимости создав его копией шаблона.
// Одновременные вызовы для одного листа выполняются один раз.
func (g *SheetGateway) EnsureDailySheet(ctx context.Context, layout entities.Layout, prefix string, date time.Time) (string, error) {
	title := prefix + "_" + date.Format(entities.DateLayout)

	_, err, _ := g.flights.Do(layout.SpreadsheetID+"|"+title, func() (any, error) {
		return nil, g.ensureSheet(ctx, layout, title)
	})
	if err != nil {
		return "", fmt.Errorf("gateway sheets, ensure daily sheet %s: %w", title, err)
	}
	return title, nil
}

// WriteQuantity пишет количество на пересечение строки товара и колонки адреса.
func (g *SheetGateway) WriteQuantity(
	ctx context.Context,
	layout entities.Layout,
	sheetName string,
	itemName string,
	column string,
	qty int,
) error {
	values, err := g.itemColumn(ctx, layout, sheetName)
	if err != nil {
		return fmt.Errorf("gateway sheets, write quantity: %w", err)
	}

	row := 0
	itemName = strings.TrimSpace(itemName)
	for i, value := range values {
		if strings.TrimSpace(cellString(value)) == itemName {
			row = layout.ItemRowStart + i
			break
		}
	}
	if row == 0 {
		return fmt.Errorf("%w: %q in %s", order_line.ErrItemNotFound, itemName, sheetName)
	}

	cell := a1.Cell(sheetName, column, row)
	err = g.executeWithMetrics(ctx, "ValuesUpdate", func(ctx context.Context) error {
		return g.client.UpdateValue(ctx, layout.SpreadsheetID, cell, qty)
	})
	if err != nil {
		return fmt.Errorf("gateway sheets, write quantity %s: %w", cell, err)
	}
	return nil
}

func (g *SheetGateway) ensureSheet(ctx context.Context, layout entities.Layout, title string) error {
	sheets, err := g.listSheets(ctx, layout.SpreadsheetID)
	if err != nil {
		return err
	}
	if _, ok := findSheet(sheets, title); ok {
		return nil
	}

	template, ok := findSheet(sheets, layout.TemplateSheetName)
	if !ok {
		return fmt.Errorf("%w: %s", order.ErrTemplateNotFound, layout.TemplateSheetName)
	}

	var copyID int64
	err = g.executeWithMetrics(ctx, "SheetsCopyTo", func(ctx context.Context) error {
		var err error
		copyID, err = g.client.CopySheet(ctx, layout.SpreadsheetID, template.ID)
		return err
	})
	if err != nil {
		return fmt.Errorf("copy template: %w", err)
	}

	err = g.executeWithMetrics(ctx, "RenameSheet", func(ctx context.Context) error {
		return g.client.RenameSheet(ctx, layout.SpreadsheetID, copyID, title)
	})
	if err == nil {
		return nil
	}
	if !isAlreadyExists(err) {
		return fmt.Errorf("rename copy: %w", err)
	}

	// лист успел создать другой экземпляр бота, копия больше не нужна
	err = g.executeWithMetrics(ctx, "DeleteSheet", func(ctx context.Context) error {
		return g.client.DeleteSheet(ctx, layout.SpreadsheetID, copyID)
	})
	if err != nil {
		return fmt.Errorf("delete duplicate copy: %w", err)
	}
	return nil
}

func (g *SheetGateway) itemColumn(ctx context.Context, layout entities.Layout, sheetName string) ([]any, error) {
	readRange := a1.ColumnRange(sheetName, layout.ItemNameColumn, layout.ItemRowStart, layout.ItemRowEnd)

	values, err := g.getValues(ctx, layout.SpreadsheetID, readRange, googlesheets.DimensionColumns)
	if err != nil {
		return nil, err
	}
	return firstLine(values), nil
}

func (g *SheetGateway) getValues(ctx context.Context, spreadsheetID, readRange, dimension string) ([][]any, error) {
	var values [][]any
	err := g.executeWithMetrics(ctx, "ValuesGet", func(ctx context.Context) error {
		var err error
		values, err = g.client.GetValues(ctx, spreadsheetID, readRange, dimension)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", readRange, err)
	}
	return values, nil
}

func (g *SheetGateway) listSheets(ctx context.Context, spreadsheetID string) ([]googlesheets.Sheet, error) {
	var sheets []googlesheets.Sheet
	err := g.executeWithMetrics(ctx, "SpreadsheetsGet", func(ctx context.Context) error {
		var err error
		sheets, err = g.client.ListSheets(ctx, spreadsheetID)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("list sheets: %w", err)
	}
	return sheets, nil
}

func (g *SheetGateway) executeWithMetrics(ctx context.Context, method string, fn func(context.Context) error) error {
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

func findSheet(sheets []googlesheets.Sheet, title string) (googlesheets.Sheet, bool) {
	for _, s := range sheets {
		if s.Title == title {
			return s, true
		}
	}
	return googlesheets.Sheet{}, false
}

func firstLine(values [][]any) []any {
	if len(values) == 0 {
		return nil
	}
	return values[0]
}

func cellString(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

func isRetryable(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusTooManyRequests || apiErr.Code >= http.StatusInternalServerError
}

func isAlreadyExists(err error) bool {
	var apiErr *googleapi.Error
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Code == http.StatusBadRequest && strings.Contains(apiErr.Message, "already exists")
}

func statusLabel(err error) string {
	if err == nil {
		return "OK"
	}
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		return strconv.Itoa(apiErr.Code)
	}
	return "UNKNOWN"
}
