package order_line_recorded

import "time"

func (h *Handler) SetRedeliveryDelay(delay time.Duration) {
	h.redeliveryDelay = delay
}
