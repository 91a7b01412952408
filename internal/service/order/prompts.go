package order

import (
	"fmt"
	"strconv"

	"orderbot/internal/entities"
)

// больше кнопок Telegram показывает плохо
const maxListButtons = 40

const (
	labelCreateOrder = "🧾 Создать заказ"
	labelBack        = "⬅️ Назад"
	labelCancel      = "⛔ Отмена"
	labelFinish      = "✅ Завершить заказ"
	labelAddMore     = "➕ Добавить ещё товар"
)

var subCategoryLabels = []struct {
	sub   entities.SubCategory
	label string
}{
	{entities.SubCategoryRC1, "РЦ-1: наклейки + соевый"},
	{entities.SubCategoryRC2, "РЦ-2: Магария + майонез"},
}

func welcomePrompt() entities.Prompt {
	return entities.Prompt{
		Text: "Привет! Я бот для оформления заказов.\n\nНажми: Создать заказ",
		Keyboard: [][]entities.Choice{
			entities.SingleChoiceRow(labelCreateOrder, entities.CreateOrder{}),
		},
	}
}

func orderTypePrompt() entities.Prompt {
	return entities.Prompt{
		Text: "Выбери тип заказа:",
		Keyboard: [][]entities.Choice{
			entities.SingleChoiceRow("🏬 РЦ", entities.SelectOrderType{Category: entities.CategoryRC}),
			entities.SingleChoiceRow("🧊 Заморозка", entities.SelectOrderType{Category: entities.CategoryFreeze}),
			entities.SingleChoiceRow(labelCancel, entities.Finish{}),
		},
	}
}

func subCategoryPrompt() entities.Prompt {
	keyboard := make([][]entities.Choice, 0, len(subCategoryLabels)+1)
	for _, s := range subCategoryLabels {
		keyboard = append(keyboard, entities.SingleChoiceRow(s.label, entities.SelectSubCategory{SubCategory: s.sub}))
	}
	keyboard = append(keyboard, entities.SingleChoiceRow(labelBack, entities.Back{Step: entities.StepOrderType}))

	return entities.Prompt{Text: "Выбери подтип РЦ:", Keyboard: keyboard}
}

func storePrompt(session *entities.Session) entities.Prompt {
	addresses := session.Addresses
	if len(addresses) > maxListButtons {
		addresses = addresses[:maxListButtons]
	}

	keyboard := make([][]entities.Choice, 0, len(addresses)+2)
	for i, a := range addresses {
		keyboard = append(keyboard, entities.SingleChoiceRow(a.Label, entities.SelectAddress{Index: i}))
	}

	backTo := entities.StepOrderType
	if session.Category == entities.CategoryRC {
		backTo = entities.StepSubCategory
	}
	keyboard = append(keyboard,
		entities.SingleChoiceRow(labelBack, entities.Back{Step: backTo}),
		entities.SingleChoiceRow(labelCancel, entities.Finish{}),
	)

	return entities.Prompt{Text: "Выбери магазин:", Keyboard: keyboard}
}

func deliveryDatePrompt(session *entities.Session) entities.Prompt {
	keyboard := make([][]entities.Choice, 0, len(session.DeliveryOptions)+1)
	for _, o := range session.DeliveryOptions {
		keyboard = append(keyboard, entities.SingleChoiceRow(o.Label, entities.SelectDeliveryDate{Date: o.Date}))
	}
	keyboard = append(keyboard, entities.SingleChoiceRow(labelBack, entities.Back{Step: entities.StepStore}))

	return entities.Prompt{
		Text:     fmt.Sprintf("Магазин: %s\nВыбери дату доставки:", addressLabel(session)),
		Keyboard: keyboard,
	}
}

func itemsPrompt(session *entities.Session) entities.Prompt {
	items := session.Items
	if len(items) > maxListButtons {
		items = items[:maxListButtons]
	}

	keyboard := make([][]entities.Choice, 0, len(items)+2)
	for i, name := range items {
		keyboard = append(keyboard, entities.SingleChoiceRow(name, entities.SelectItem{Index: i}))
	}
	keyboard = append(keyboard,
		entities.SingleChoiceRow(labelBack, entities.Back{Step: entities.StepDeliveryDate}),
		entities.SingleChoiceRow(labelFinish, entities.Finish{}),
	)

	return entities.Prompt{Text: "Выбери товар:", Keyboard: keyboard}
}

func quantityPrompt(item string, multiple int) entities.Prompt {
	keyboard := make([][]entities.Choice, 0, 4)
	for i := 1; i <= 3; i++ {
		qty := multiple * i
		keyboard = append(keyboard, entities.SingleChoiceRow(strconv.Itoa(qty), entities.SelectQuantity{Quantity: qty}))
	}
	keyboard = append(keyboard, entities.SingleChoiceRow(labelBack, entities.Back{Step: entities.StepItem}))

	return entities.Prompt{
		Text:     fmt.Sprintf("Товар: %s\nКратность: %d\n\nВыбери количество:", item, multiple),
		Keyboard: keyboard,
	}
}

func addedPrompt(line *entities.OrderLine) entities.Prompt {
	return entities.Prompt{
		Text: fmt.Sprintf("✅ Добавлено: %s - %d\nМагазин: %s\nЛист: %s\n\nЧто дальше?",
			line.ItemName, line.Quantity, line.AddressLabel, line.SheetName),
		Keyboard: [][]entities.Choice{
			entities.SingleChoiceRow(labelAddMore, entities.ShowItems{}),
			entities.SingleChoiceRow(labelFinish, entities.Finish{}),
		},
	}
}

func finishedPrompt() entities.Prompt {
	return entities.Prompt{Text: "✅ Заказ завершён. Спасибо!"}
}

func addressLabel(session *entities.Session) string {
	if session.Address == nil {
		return ""
	}
	return session.Address.Label
}
