package order_line

import (
	"orderbot/internal/entities"
)

func ToDomain(l *OrderLineDB) *entities.OrderLine {
	if l == nil {
		return nil
	}

	return &entities.OrderLine{
		ID:            l.ID,
		ChatID:        l.ChatID,
		Category:      entities.OrderCategory(l.Category),
		SubCategory:   entities.SubCategory(l.SubCategory),
		SpreadsheetID: l.SpreadsheetID,
		SheetName:     l.SheetName,
		AddressLabel:  l.AddressLabel,
		AddressColumn: l.AddressColumn,
		ItemName:      l.ItemName,
		Quantity:      l.Quantity,
		DeliveryDate:  l.DeliveryDate,
		RecordedAt:    l.RecordedAt,
	}
}

func FromDomainModify(m *entities.OrderLineModify) *OrderLineModifyDB {
	if m == nil {
		return nil
	}

	lineDB := &OrderLineModifyDB{
		ChatID:        m.ChatID,
		SpreadsheetID: m.SpreadsheetID,
		SheetName:     m.SheetName,
		AddressLabel:  m.AddressLabel,
		AddressColumn: m.AddressColumn,
		ItemName:      m.ItemName,
		Quantity:      m.Quantity,
		DeliveryDate:  m.DeliveryDate,
		RecordedAt:    m.RecordedAt,
	}
	if m.Category != nil {
		category := m.Category.String()
		lineDB.Category = &category
	}
	if m.SubCategory != nil {
		subCategory := m.SubCategory.String()
		lineDB.SubCategory = &subCategory
	}

	return lineDB
}

func ToDomainList(linesDB []OrderLineDB) []entities.OrderLine {
	result := make([]entities.OrderLine, len(linesDB))
	for i := range linesDB {
		result[i] = *ToDomain(&linesDB[i])
	}
	return result
}
