package order_lines_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"orderbot/internal/converters"
	"orderbot/internal/entities"
	"orderbot/internal/generated/dto"
	"orderbot/internal/service/order_line"
	"orderbot/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filter, err := parseFilter(r)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	lines, err := h.service.GetOrderLines(r.Context(), filter)
	if err != nil {
		switch {
		case errors.Is(err, order_line.ErrInvalidLimit):
			w.WriteHeader(http.StatusBadRequest)
		default:
			h.log.With(
				logger.NewField("error", err),
			).Error("get order lines")
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	res := dto.OrderLinesResponse{
		Items: converters.OrderLinesToDTO(lines),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(res)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func parseFilter(r *http.Request) (entities.OrderLineFilter, error) {
	query := r.URL.Query()

	var filter entities.OrderLineFilter
	if sheetName := query.Get("sheet_name"); sheetName != "" {
		filter.SheetName = &sheetName
	}
	if category := query.Get("category"); category != "" {
		c := entities.OrderCategory(category)
		filter.Category = &c
	}
	if limitStr := query.Get("limit"); limitStr != "" {
		limit, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil {
			return entities.OrderLineFilter{}, err
		}
		filter.Limit = &limit
	}
	return filter, nil
}
