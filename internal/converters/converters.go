// Package converters переводит сущности в модели из api/openapi.yaml и обратно.
package converters

import (
	"fmt"
	"time"

	"github.com/AlekSi/pointer"
	"orderbot/internal/entities"
	"orderbot/internal/generated/dto"
)

func DeliveryOptionsToDTO(options []entities.DeliveryOption) []dto.DeliveryOption {
	out := make([]dto.DeliveryOption, len(options))
	for i, option := range options {
		out[i] = dto.DeliveryOption{
			Label: option.Label,
			Date:  option.ISODate(),
			Kind:  dto.DeliveryOptionKind(option.Kind.String()),
		}
	}
	return out
}

func OrderLineToDTO(line entities.OrderLine) dto.OrderLine {
	return dto.OrderLine{
		ID:            line.ID,
		ChatID:        line.ChatID,
		Category:      line.Category.String(),
		SubCategory:   pointer.ToOrNil(line.SubCategory.String()),
		SpreadsheetID: line.SpreadsheetID,
		SheetName:     line.SheetName,
		Address:       line.AddressLabel,
		AddressColumn: line.AddressColumn,
		Item:          line.ItemName,
		Quantity:      line.Quantity,
		DeliveryDate:  line.DeliveryDate.Format(entities.DateLayout),
		RecordedAt:    line.RecordedAt,
	}
}

func OrderLinesToDTO(lines []entities.OrderLine) []dto.OrderLine {
	out := make([]dto.OrderLine, len(lines))
	for i, line := range lines {
		out[i] = OrderLineToDTO(line)
	}
	return out
}

// OrderLineFromDTO дата доставки восстанавливается как полночь UTC.
func OrderLineFromDTO(o dto.OrderLine) (entities.OrderLine, error) {
	deliveryDate, err := time.Parse(entities.DateLayout, o.DeliveryDate)
	if err != nil {
		return entities.OrderLine{}, fmt.Errorf("parse delivery date %q: %w", o.DeliveryDate, err)
	}

	return entities.OrderLine{
		ID:            o.ID,
		ChatID:        o.ChatID,
		Category:      entities.OrderCategory(o.Category),
		SubCategory:   entities.SubCategory(pointer.Get(o.SubCategory)),
		SpreadsheetID: o.SpreadsheetID,
		SheetName:     o.SheetName,
		AddressLabel:  o.Address,
		AddressColumn: o.AddressColumn,
		ItemName:      o.Item,
		Quantity:      o.Quantity,
		DeliveryDate:  deliveryDate,
		RecordedAt:    o.RecordedAt,
	}, nil
}

