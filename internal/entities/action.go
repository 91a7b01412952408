package entities

import "time"

type ActionKind string

const (
	ActionStart              ActionKind = "start"
	ActionCreateOrder        ActionKind = "create"
	ActionSelectOrderType    ActionKind = "otype"
	ActionSelectSubCategory  ActionKind = "sub"
	ActionSelectAddress      ActionKind = "addr"
	ActionSelectDeliveryDate ActionKind = "date"
	ActionSelectItem         ActionKind = "item"
	ActionSelectQuantity     ActionKind = "qty"
	ActionShowItems          ActionKind = "items"
	ActionBack               ActionKind = "back"
	ActionFinish             ActionKind = "finish"
)

// Action действие пользователя. Набор реализаций закрыт.
type Action interface {
	Kind() ActionKind
	isAction()
}

type (
	Start       struct{}
	CreateOrder struct{}
	ShowItems   struct{}
	Finish      struct{}

	SelectOrderType struct {
		Category OrderCategory
	}
	SelectSubCategory struct {
		SubCategory SubCategory
	}
	SelectAddress struct {
		Index int
	}
	SelectDeliveryDate struct {
		Date time.Time
	}
	SelectItem struct {
		Index int
	}
	SelectQuantity struct {
		Quantity int
	}
	Back struct {
		Step Step
	}
)

func (Start) Kind() ActionKind              { return ActionStart }
func (CreateOrder) Kind() ActionKind        { return ActionCreateOrder }
func (ShowItems) Kind() ActionKind          { return ActionShowItems }
func (Finish) Kind() ActionKind             { return ActionFinish }
func (SelectOrderType) Kind() ActionKind    { return ActionSelectOrderType }
func (SelectSubCategory) Kind() ActionKind  { return ActionSelectSubCategory }
func (SelectAddress) Kind() ActionKind      { return ActionSelectAddress }
func (SelectDeliveryDate) Kind() ActionKind { return ActionSelectDeliveryDate }
func (SelectItem) Kind() ActionKind         { return ActionSelectItem }
func (SelectQuantity) Kind() ActionKind     { return ActionSelectQuantity }
func (Back) Kind() ActionKind               { return ActionBack }

func (Start) isAction()              {}
func (CreateOrder) isAction()        {}
func (ShowItems) isAction()          {}
func (Finish) isAction()             {}
func (SelectOrderType) isAction()    {}
func (SelectSubCategory) isAction()  {}
func (SelectAddress) isAction()      {}
func (SelectDeliveryDate) isAction() {}
func (SelectItem) isAction()         {}
func (SelectQuantity) isAction()     {}
func (Back) isAction()               {}
