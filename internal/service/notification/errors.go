package notification

import "errors"

var ErrInvalidOrderLine = errors.New("invalid order line")
