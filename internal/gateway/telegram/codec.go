package telegram

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"orderbot/internal/entities"
)

// MaxCallbackDataLen ограничение Telegram на callback_data в байтах.
const MaxCallbackDataLen = 64

const separator = ":"

var ErrInvalidCallbackData = errors.New("invalid callback data")

// EncodeAction переводит действие в callback_data вида kind[:payload].
func EncodeAction(action entities.Action) (string, error) {
	var payload string
	switch a := action.(type) {
	case entities.Start, entities.CreateOrder, entities.ShowItems, entities.Finish:
	case entities.SelectOrderType:
		payload = a.Category.String()
	case entities.SelectSubCategory:
		payload = a.SubCategory.String()
	case entities.SelectAddress:
		payload = strconv.Itoa(a.Index)
	case entities.SelectDeliveryDate:
		payload = a.Date.Format(entities.DateLayout)
	case entities.SelectItem:
		payload = strconv.Itoa(a.Index)
	case entities.SelectQuantity:
		payload = strconv.Itoa(a.Quantity)
	case entities.Back:
		payload = a.Step.String()
	default:
		return "", fmt.Errorf("%w: unsupported action %T", ErrInvalidCallbackData, action)
	}

	data := string(action.Kind())
	if payload != "" {
		data += separator + payload
	}
	if len(data) > MaxCallbackDataLen {
		return "", fmt.Errorf("%w: %d bytes", ErrInvalidCallbackData, len(data))
	}
	return data, nil
}

// DecodeAction разбирает callback_data. Неизвестные виды и битые аргументы дают ErrInvalidCallbackData.
func DecodeAction(data string) (entities.Action, error) {
	if data == "" || len(data) > MaxCallbackDataLen {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCallbackData, data)
	}

	kind, payload, hasPayload := strings.Cut(data, separator)
	action, err := decode(entities.ActionKind(kind), payload, hasPayload)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrInvalidCallbackData, data, err)
	}
	return action, nil
}

func decode(kind entities.ActionKind, payload string, hasPayload bool) (entities.Action, error) {
	switch kind {
	case entities.ActionStart, entities.ActionCreateOrder, entities.ActionShowItems, entities.ActionFinish:
		if hasPayload {
			return nil, errors.New("unexpected payload")
		}
	}

	switch kind {
	case entities.ActionStart:
		return entities.Start{}, nil
	case entities.ActionCreateOrder:
		return entities.CreateOrder{}, nil
	case entities.ActionShowItems:
		return entities.ShowItems{}, nil
	case entities.ActionFinish:
		return entities.Finish{}, nil
	case entities.ActionSelectOrderType:
		switch category := entities.OrderCategory(payload); category {
		case entities.CategoryRC, entities.CategoryFreeze:
			return entities.SelectOrderType{Category: category}, nil
		}
		return nil, fmt.Errorf("unknown order type %q", payload)
	case entities.ActionSelectSubCategory:
		switch sub := entities.SubCategory(payload); sub {
		case entities.SubCategoryRC1, entities.SubCategoryRC2:
			return entities.SelectSubCategory{SubCategory: sub}, nil
		}
		return nil, fmt.Errorf("unknown sub category %q", payload)
	case entities.ActionSelectAddress:
		index, err := parseNonNegative(payload)
		if err != nil {
			return nil, err
		}
		return entities.SelectAddress{Index: index}, nil
	case entities.ActionSelectDeliveryDate:
		date, err := time.Parse(entities.DateLayout, payload)
		if err != nil {
			return nil, err
		}
		return entities.SelectDeliveryDate{Date: date}, nil
	case entities.ActionSelectItem:
		index, err := parseNonNegative(payload)
		if err != nil {
			return nil, err
		}
		return entities.SelectItem{Index: index}, nil
	case entities.ActionSelectQuantity:
		qty, err := parseNonNegative(payload)
		if err != nil {
			return nil, err
		}
		if qty == 0 {
			return nil, errors.New("zero quantity")
		}
		return entities.SelectQuantity{Quantity: qty}, nil
	case entities.ActionBack:
		switch step := entities.Step(payload); step {
		case entities.StepOrderType, entities.StepSubCategory, entities.StepStore,
			entities.StepDeliveryDate, entities.StepItem:
			return entities.Back{Step: step}, nil
		}
		return nil, fmt.Errorf("unknown step %q", payload)
	default:
		return nil, fmt.Errorf("unknown kind %q", kind)
	}
}

func parseNonNegative(payload string) (int, error) {
	n, err := strconv.Atoi(payload)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, fmt.Errorf("negative value %d", n)
	}
	return n, nil
}
