package order_line

import "time"

type OrderLineDB struct {
	ID            int64
	ChatID        int64
	Category      string
	SubCategory   string
	SpreadsheetID string
	SheetName     string
	AddressLabel  string
	AddressColumn string
	ItemName      string
	Quantity      int
	DeliveryDate  time.Time
	RecordedAt    time.Time
	NotifiedAt    *time.Time
}

type OrderLineModifyDB struct {
	ChatID        *int64
	Category      *string
	SubCategory   *string
	SpreadsheetID *string
	SheetName     *string
	AddressLabel  *string
	AddressColumn *string
	ItemName      *string
	Quantity      *int
	DeliveryDate  *time.Time
	RecordedAt    *time.Time
}
