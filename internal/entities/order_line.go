package entities

import "time"

// OrderLine строка журнала: количество, записанное в ячейку датированного листа.
type OrderLine struct {
	ID            int64
	ChatID        int64
	Category      OrderCategory
	SubCategory   SubCategory
	SpreadsheetID string
	SheetName     string
	AddressLabel  string
	AddressColumn string
	ItemName      string
	Quantity      int
	DeliveryDate  time.Time
	RecordedAt    time.Time
}

type OrderLineModify struct {
	ChatID        *int64
	Category      *OrderCategory
	SubCategory   *SubCategory
	SpreadsheetID *string
	SheetName     *string
	AddressLabel  *string
	AddressColumn *string
	ItemName      *string
	Quantity      *int
	DeliveryDate  *time.Time
	RecordedAt    *time.Time
}

type OrderLineFilter struct {
	SheetName *string
	Category  *OrderCategory
	Limit     *int64
}

// CellKey адрес ячейки, по которому сериализуются конкурентные записи.
func (l OrderLine) CellKey() string {
	return l.SpreadsheetID + "|" + l.SheetName + "|" + l.ItemName + "|" + l.AddressColumn
}
