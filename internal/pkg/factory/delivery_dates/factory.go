package delivery_dates

import (
	"fmt"
	"slices"
	"sort"
	"time"

	"orderbot/internal/entities"
)

// MaxDisplayedOptions сколько дат показывается пользователю.
const MaxDisplayedOptions = 2

const defaultLeadDays = 2

var weekdayShort = map[time.Weekday]string{
	time.Monday:    "ПН",
	time.Tuesday:   "ВТ",
	time.Wednesday: "СР",
	time.Thursday:  "ЧТ",
	time.Friday:    "ПТ",
	time.Saturday:  "СБ",
	time.Sunday:    "ВС",
}

// FreezeRule стратегия дат для заморозки. today это полночь текущего дня в зоне доставки.
type FreezeRule interface {
	Options(today time.Time) []entities.DeliveryOption
}

// ProvisionalLeadRule временное правило: доставка через LeadDays дней.
type ProvisionalLeadRule struct {
	LeadDays int
}

func (r ProvisionalLeadRule) Options(today time.Time) []entities.DeliveryOption {
	delivery := today.AddDate(0, 0, r.LeadDays)
	return []entities.DeliveryOption{{
		Label: fmt.Sprintf("Доставка: %s (временная логика)", delivery.Format(entities.DateLayout)),
		Date:  delivery,
		Kind:  entities.DeliveryProvisional,
	}}
}

type Config struct {
	Location       *time.Location
	CutoffHour     int
	CutoffMinute   int
	FreezeLeadDays int
}

type DeliveryDatesFactory struct {
	loc          *time.Location
	cutoffHour   int
	cutoffMinute int
	rules        map[ruleKey]CutoffRule
	freezeRule   FreezeRule
	now          func() time.Time
}

type Option func(*DeliveryDatesFactory)

func WithFreezeRule(rule FreezeRule) Option {
	return func(f *DeliveryDatesFactory) {
		f.freezeRule = rule
	}
}

// WithCutoffRule заменяет или добавляет правило для пары категория/подкатегория.
func WithCutoffRule(category entities.OrderCategory, subCategory entities.SubCategory, rule CutoffRule) Option {
	return func(f *DeliveryDatesFactory) {
		f.rules[ruleKey{category, subCategory}] = rule
	}
}

func WithClock(now func() time.Time) Option {
	return func(f *DeliveryDatesFactory) {
		f.now = now
	}
}

func New(cfg Config, opts ...Option) *DeliveryDatesFactory {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}

	leadDays := cfg.FreezeLeadDays
	if leadDays <= 0 {
		leadDays = defaultLeadDays
	}

	f := &DeliveryDatesFactory{
		loc:          loc,
		cutoffHour:   cfg.CutoffHour,
		cutoffMinute: cfg.CutoffMinute,
		rules:        defaultRules(),
		freezeRule:   ProvisionalLeadRule{LeadDays: leadDays},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func (f *DeliveryDatesFactory) Location() *time.Location {
	return f.loc
}

// DeliveryOptions возвращает доступные даты доставки. Даты правила с дедлайнами идут
// в порядке слотов цикла (для RC_1 вторник всегда перед четвергом), даты стратегии
// заморозки сортируются по возрастанию.
// Нулевой now означает текущий момент. Результат никогда не пустой.
func (f *DeliveryDatesFactory) DeliveryOptions(
	category entities.OrderCategory,
	subCategory entities.SubCategory,
	now time.Time,
) []entities.DeliveryOption {
	if now.IsZero() {
		now = f.now()
	}
	now = now.In(f.loc)
	today := f.midnight(now)

	var options []entities.DeliveryOption
	if rule, ok := f.rules[ruleKey{category, subCategory}]; ok {
		options = f.evaluate(rule, now, today)
	} else if category == entities.CategoryFreeze {
		// срез принадлежит стратегии, сортируем копию
		options = slices.Clone(f.freezeRule.Options(today))
		sort.SliceStable(options, func(i, j int) bool {
			return options[i].Date.Before(options[j].Date)
		})
	}

	if len(options) == 0 {
		return []entities.DeliveryOption{fallbackOption(today)}
	}
	return options
}

func (f *DeliveryDatesFactory) evaluate(rule CutoffRule, now, today time.Time) []entities.DeliveryOption {
	if len(rule.Slots) == 0 {
		return nil
	}

	options := make([]entities.DeliveryOption, 0, len(rule.Slots))
	for _, slot := range rule.Slots {
		delivery := NearestUpcoming(slot.Weekday, today)
		if !now.After(f.cutoff(delivery, slot.CutoffDaysBefore)) {
			options = append(options, nearestOption(delivery))
		}
	}

	// все окна цикла закрыты: первый слот следующей недели
	if len(options) == 0 {
		options = append(options, nextOption(NearestUpcoming(rule.Slots[0].Weekday, today.AddDate(0, 0, 7))))
	}
	return options
}

// Cutoff момент закрытия окна для даты доставки.
func (f *DeliveryDatesFactory) Cutoff(delivery time.Time, daysBefore int) time.Time {
	return f.cutoff(f.midnight(delivery.In(f.loc)), daysBefore)
}

func (f *DeliveryDatesFactory) cutoff(delivery time.Time, daysBefore int) time.Time {
	day := delivery.AddDate(0, 0, -daysBefore)
	return time.Date(day.Year(), day.Month(), day.Day(), f.cutoffHour, f.cutoffMinute, 0, 0, f.loc)
}

func (f *DeliveryDatesFactory) midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, f.loc)
}

// NearestUpcoming ближайший день недели w начиная с d включительно.
func NearestUpcoming(w time.Weekday, d time.Time) time.Time {
	offset := (int(w) - int(d.Weekday()) + 7) % 7
	return d.AddDate(0, 0, offset)
}

func nearestOption(d time.Time) entities.DeliveryOption {
	return entities.DeliveryOption{
		Label: fmt.Sprintf("Ближайшая доставка: %s %s", weekdayShort[d.Weekday()], d.Format(entities.DateLayout)),
		Date:  d,
		Kind:  entities.DeliveryNearest,
	}
}

func nextOption(d time.Time) entities.DeliveryOption {
	return entities.DeliveryOption{
		Label: fmt.Sprintf("Следующая доставка: %s %s", weekdayShort[d.Weekday()], d.Format(entities.DateLayout)),
		Date:  d,
		Kind:  entities.DeliveryNext,
	}
}

func fallbackOption(today time.Time) entities.DeliveryOption {
	return entities.DeliveryOption{
		Label: fmt.Sprintf("Доставка: %s (fallback)", today.Format(entities.DateLayout)),
		Date:  today,
		Kind:  entities.DeliveryFallback,
	}
}
