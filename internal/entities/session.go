package entities

import "time"

type Step string

const (
	StepStart        Step = "start"
	StepOrderType    Step = "otype"
	StepSubCategory  Step = "sub"
	StepStore        Step = "store"
	StepDeliveryDate Step = "ddate"
	StepItem         Step = "item"
	StepQuantity     Step = "qty"
	StepAdded        Step = "added"
)

func (s Step) String() string {
	return string(s)
}

// Session выборы пользователя в рамках одного диалога.
type Session struct {
	ChatID          int64
	Step            Step
	Category        OrderCategory
	SubCategory     SubCategory
	Addresses       []AddressColumn
	Address         *AddressColumn
	DeliveryOptions []DeliveryOption
	DeliveryDate    *DeliveryOption
	DailySheet      string
	Items           []string
	Item            string
	UpdatedAt       time.Time
}

// Clone копирует срезы, чтобы вызывающий не делил память с хранилищем.
func (s Session) Clone() Session {
	out := s
	if s.Addresses != nil {
		out.Addresses = append([]AddressColumn(nil), s.Addresses...)
	}
	if s.Address != nil {
		addr := *s.Address
		out.Address = &addr
	}
	if s.DeliveryOptions != nil {
		out.DeliveryOptions = append([]DeliveryOption(nil), s.DeliveryOptions...)
	}
	if s.DeliveryDate != nil {
		date := *s.DeliveryDate
		out.DeliveryDate = &date
	}
	if s.Items != nil {
		out.Items = append([]string(nil), s.Items...)
	}
	return out
}
