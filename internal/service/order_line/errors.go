package order_line

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidQuantity       = errors.New("invalid quantity")
	ErrInvalidLimit          = errors.New("invalid limit")
	ErrItemNotFound          = errors.New("item not found in sheet")
)
