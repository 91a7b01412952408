package entities

import "time"

type OrderCategory string

const (
	CategoryRC     OrderCategory = "RC"
	CategoryFreeze OrderCategory = "FREEZE"
)

func (c OrderCategory) String() string {
	return string(c)
}

// SubCategories подкатегории, которые пользователь выбирает после типа заказа.
func (c OrderCategory) SubCategories() []SubCategory {
	if c == CategoryRC {
		return []SubCategory{SubCategoryRC1, SubCategoryRC2}
	}
	return nil
}

type SubCategory string

const (
	SubCategoryNone SubCategory = ""
	SubCategoryRC1  SubCategory = "RC_1"
	SubCategoryRC2  SubCategory = "RC_2"
)

func (s SubCategory) String() string {
	return string(s)
}

type DeliveryKind string

const (
	DeliveryNearest     DeliveryKind = "nearest"
	DeliveryNext        DeliveryKind = "next"
	DeliveryProvisional DeliveryKind = "provisional"
	DeliveryFallback    DeliveryKind = "fallback"
)

func (k DeliveryKind) String() string {
	return string(k)
}

// DeliveryOption дата доставки, доступная для заказа. Date всегда полночь в зоне доставки.
type DeliveryOption struct {
	Label string
	Date  time.Time
	Kind  DeliveryKind
}

// DateLayout формат даты доставки в названиях листов и callback data.
const DateLayout = "2006-01-02"

func (o DeliveryOption) ISODate() string {
	return o.Date.Format(DateLayout)
}
