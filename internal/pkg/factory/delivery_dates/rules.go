package delivery_dates

import (
	"errors"
	"fmt"
	"time"

	"orderbot/internal/entities"
)

var ErrInvalidCutoffRule = errors.New("invalid cutoff rule")

// Slot день доставки и дедлайн вечером за CutoffDaysBefore дней до него.
type Slot struct {
	Weekday          time.Weekday
	CutoffDaysBefore int
}

// CutoffRule слоты одного логистического цикла. Если все окна закрыты,
// предлагается первый слот следующей недели.
type CutoffRule struct {
	Slots []Slot
}

func NewCutoffRule(slots ...Slot) (CutoffRule, error) {
	if len(slots) == 0 {
		return CutoffRule{}, fmt.Errorf("%w: no slots", ErrInvalidCutoffRule)
	}
	for _, s := range slots {
		if s.Weekday < time.Sunday || s.Weekday > time.Saturday {
			return CutoffRule{}, fmt.Errorf("%w: weekday %d", ErrInvalidCutoffRule, s.Weekday)
		}
		// дедлайн строго раньше дня доставки и не дальше недели от него
		if s.CutoffDaysBefore < 1 || s.CutoffDaysBefore > 6 {
			return CutoffRule{}, fmt.Errorf("%w: cutoff %d days before %s", ErrInvalidCutoffRule, s.CutoffDaysBefore, s.Weekday)
		}
	}
	return CutoffRule{Slots: append([]Slot(nil), slots...)}, nil
}

type ruleKey struct {
	category    entities.OrderCategory
	subCategory entities.SubCategory
}

func defaultRules() map[ruleKey]CutoffRule {
	return map[ruleKey]CutoffRule{
		// ВТ (дедлайн ВС) и ЧТ (дедлайн СР)
		{entities.CategoryRC, entities.SubCategoryRC1}: {Slots: []Slot{
			{Weekday: time.Tuesday, CutoffDaysBefore: 2},
			{Weekday: time.Thursday, CutoffDaysBefore: 1},
		}},
		// ПТ (дедлайн ВС)
		{entities.CategoryRC, entities.SubCategoryRC2}: {Slots: []Slot{
			{Weekday: time.Friday, CutoffDaysBefore: 5},
		}},
	}
}
