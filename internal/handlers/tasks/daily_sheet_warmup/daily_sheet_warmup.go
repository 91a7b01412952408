package daily_sheet_warmup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"orderbot/internal/entities"
	"orderbot/pkg/logger"
)

// DailySheetWarmup заранее создает датированные листы под все даты, которые сейчас
// предлагаются пользователям, чтобы первый заказ дня не ждал копирования шаблона.
type DailySheetWarmup struct {
	log      logger.Logger
	dates    DeliveryDatesFactory
	sheets   SheetGateway
	layouts  Layouts
	interval time.Duration
	now      func() time.Time
}

func NewDailySheetWarmup(
	log logger.Logger,
	dates DeliveryDatesFactory,
	sheets SheetGateway,
	layouts Layouts,
	interval time.Duration,
) *DailySheetWarmup {
	return &DailySheetWarmup{
		log:      log,
		dates:    dates,
		sheets:   sheets,
		layouts:  layouts,
		interval: interval,
		now:      time.Now,
	}
}

func (d *DailySheetWarmup) TTL() time.Duration {
	return d.interval
}

// Do проходит по всем категориям и не останавливается на ошибке одной из них.
func (d *DailySheetWarmup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, d.interval)
	defer cancel()

	now := d.now()

	var errs []error
	for _, category := range d.layouts.Categories() {
		layout, err := d.layouts.LayoutFor(category)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", category, err))
			continue
		}

		prefix := layout.DailySheetPrefix(category)
		for _, date := range d.offeredDates(category, now) {
			sheetName, err := d.sheets.EnsureDailySheet(ctxWithTimeout, layout, prefix, date)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s %s: %w", category, date.Format(entities.DateLayout), err))
				continue
			}

			d.log.With(
				logger.NewField("category", category.String()),
				logger.NewField("sheet", sheetName),
			).Debug("daily sheet ready")
		}
	}

	return errors.Join(errs...)
}

func (d *DailySheetWarmup) Info() string {
	return "daily sheet warmup"
}

// Optional лист можно создать и по требованию, недоступность таблиц не должна мешать старту.
func (d *DailySheetWarmup) Optional() bool {
	return true
}

// offeredDates уникальные даты доставки по всем подкатегориям, в порядке появления.
func (d *DailySheetWarmup) offeredDates(category entities.OrderCategory, now time.Time) []time.Time {
	subCategories := category.SubCategories()
	if len(subCategories) == 0 {
		subCategories = []entities.SubCategory{entities.SubCategoryNone}
	}

	seen := make(map[string]struct{})
	var dates []time.Time
	for _, sub := range subCategories {
		for _, option := range d.dates.DeliveryOptions(category, sub, now) {
			key := option.ISODate()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			dates = append(dates, option.Date)
		}
	}
	return dates
}
