package order_line

import "orderbot/internal/entities"

const (
	defaultListLimit int64 = 50
	maxListLimit     int64 = 500
)

func validateLine(line entities.OrderLine) error {
	if line.Quantity <= 0 {
		return ErrInvalidQuantity
	}
	if line.SpreadsheetID == "" || line.SheetName == "" || line.ItemName == "" || line.AddressColumn == "" {
		return ErrMissingRequiredFields
	}
	return nil
}

func normalizeLimit(limit *int64) (int64, error) {
	if limit == nil {
		return defaultListLimit, nil
	}
	if *limit <= 0 || *limit > maxListLimit {
		return 0, ErrInvalidLimit
	}
	return *limit, nil
}
