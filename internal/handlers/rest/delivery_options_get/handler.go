package delivery_options_get

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/AlekSi/pointer"
	"orderbot/internal/converters"
	"orderbot/internal/entities"
	"orderbot/internal/generated/dto"
	"orderbot/internal/pkg/factory/delivery_dates"
	"orderbot/pkg/logger"
)

// Handler отдает даты доставки так же, как их увидит пользователь в боте:
// в порядке слотов и не больше delivery_dates.MaxDisplayedOptions.
// Параметр at (RFC3339) позволяет посмотреть расписание на произвольный момент.
type Handler struct {
	log   handlerLogger
	dates DeliveryDatesFactory
	now   func() time.Time
}

func New(log handlerLogger, dates DeliveryDatesFactory) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:   handlerLog,
		dates: dates,
		now:   time.Now,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	category := entities.OrderCategory(query.Get("category"))
	if category == "" {
		h.writeError(w, http.StatusBadRequest, "category is required")
		return
	}
	subCategory := entities.SubCategory(query.Get("sub_category"))

	at := h.now()
	if raw := query.Get("at"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "at must be RFC3339")
			return
		}
		at = parsed
	}

	options := h.dates.DeliveryOptions(category, subCategory, at)
	if len(options) > delivery_dates.MaxDisplayedOptions {
		options = options[:delivery_dates.MaxDisplayedOptions]
	}

	res := dto.DeliveryOptionsResponse{
		Category:    category.String(),
		SubCategory: pointer.ToOrNil(subCategory.String()),
		At:          at,
		Options:     converters.DeliveryOptionsToDTO(options),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Error: msg})
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
