package order

import (
	"context"
	"fmt"
	"slices"
	"time"

	"orderbot/internal/entities"
	"orderbot/internal/pkg/factory/delivery_dates"
)

type Service struct {
	dates    DeliveryDatesFactory
	sheets   SheetGateway
	recorder LineRecorder
	sessions SessionRepository
	layouts  Layouts
	now      func() time.Time
}

func New(
	dates DeliveryDatesFactory,
	sheets SheetGateway,
	recorder LineRecorder,
	sessions SessionRepository,
	layouts Layouts,
) *Service {
	return &Service{
		dates:    dates,
		sheets:   sheets,
		recorder: recorder,
		sessions: sessions,
		layouts:  layouts,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// HandleAction применяет действие пользователя к его сессии и возвращает следующий экран.
func (s *Service) HandleAction(ctx context.Context, chatID int64, action entities.Action) (entities.Prompt, error) {
	if action == nil {
		return entities.Prompt{}, fmt.Errorf("%w: empty action", ErrStaleAction)
	}

	prompt, err := s.handle(ctx, chatID, action)
	ConversationActionsTotal.WithLabelValues(string(action.Kind()), outcome(err)).Inc()
	if err != nil {
		return entities.Prompt{}, err
	}
	return prompt, nil
}

func (s *Service) handle(ctx context.Context, chatID int64, action entities.Action) (entities.Prompt, error) {
	// действия, которым не нужна текущая сессия
	switch action.(type) {
	case entities.Start:
		if err := s.sessions.Delete(ctx, chatID); err != nil {
			return entities.Prompt{}, fmt.Errorf("reset session: %w", err)
		}
		return welcomePrompt(), nil
	case entities.CreateOrder:
		session := entities.Session{ChatID: chatID, Step: entities.StepOrderType, UpdatedAt: s.now()}
		if err := s.sessions.Save(ctx, session); err != nil {
			return entities.Prompt{}, fmt.Errorf("save session: %w", err)
		}
		return orderTypePrompt(), nil
	case entities.Finish:
		if err := s.sessions.Delete(ctx, chatID); err != nil {
			return entities.Prompt{}, fmt.Errorf("delete session: %w", err)
		}
		return finishedPrompt(), nil
	}

	session, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("get session: %w", err)
	}

	var prompt entities.Prompt
	switch a := action.(type) {
	case entities.SelectOrderType:
		prompt, err = s.selectOrderType(ctx, session, a)
	case entities.SelectSubCategory:
		prompt, err = s.selectSubCategory(ctx, session, a)
	case entities.SelectAddress:
		prompt, err = s.selectAddress(session, a)
	case entities.SelectDeliveryDate:
		prompt, err = s.selectDeliveryDate(ctx, session, a)
	case entities.SelectItem:
		prompt, err = s.selectItem(session, a)
	case entities.SelectQuantity:
		prompt, err = s.selectQuantity(ctx, session, a)
	case entities.ShowItems:
		prompt, err = s.showItems(ctx, session)
	case entities.Back:
		prompt, err = s.back(ctx, session, a)
	default:
		err = fmt.Errorf("%w: unsupported action %q", ErrStaleAction, action.Kind())
	}
	if err != nil {
		return entities.Prompt{}, err
	}

	session.UpdatedAt = s.now()
	if err := s.sessions.Save(ctx, *session); err != nil {
		return entities.Prompt{}, fmt.Errorf("save session: %w", err)
	}
	return prompt, nil
}

func (s *Service) selectOrderType(ctx context.Context, session *entities.Session, a entities.SelectOrderType) (entities.Prompt, error) {
	if a.Category != entities.CategoryRC && a.Category != entities.CategoryFreeze {
		return entities.Prompt{}, fmt.Errorf("%w: unknown order type %q", ErrStaleAction, a.Category)
	}

	*session = entities.Session{ChatID: session.ChatID, Category: a.Category}
	if a.Category == entities.CategoryRC {
		session.Step = entities.StepSubCategory
		return subCategoryPrompt(), nil
	}
	return s.storeStep(ctx, session)
}

func (s *Service) selectSubCategory(ctx context.Context, session *entities.Session, a entities.SelectSubCategory) (entities.Prompt, error) {
	if session.Category != entities.CategoryRC {
		return entities.Prompt{}, fmt.Errorf("%w: sub-category without RC order type", ErrStaleAction)
	}
	if !slices.Contains(session.Category.SubCategories(), a.SubCategory) {
		return entities.Prompt{}, fmt.Errorf("%w: unknown sub-category %q", ErrStaleAction, a.SubCategory)
	}

	session.SubCategory = a.SubCategory
	return s.storeStep(ctx, session)
}

func (s *Service) selectAddress(session *entities.Session, a entities.SelectAddress) (entities.Prompt, error) {
	if a.Index < 0 || a.Index >= len(session.Addresses) {
		return entities.Prompt{}, fmt.Errorf("%w: address %d of %d", ErrStaleAction, a.Index, len(session.Addresses))
	}

	address := session.Addresses[a.Index]
	session.Address = &address
	return s.deliveryDateStep(session), nil
}

func (s *Service) selectDeliveryDate(ctx context.Context, session *entities.Session, a entities.SelectDeliveryDate) (entities.Prompt, error) {
	if session.Address == nil {
		return entities.Prompt{}, fmt.Errorf("%w: delivery date before address", ErrStaleAction)
	}

	var chosen *entities.DeliveryOption
	for i := range session.DeliveryOptions {
		if session.DeliveryOptions[i].ISODate() == a.Date.Format(entities.DateLayout) {
			chosen = &session.DeliveryOptions[i]
			break
		}
	}
	if chosen == nil {
		return entities.Prompt{}, fmt.Errorf("%w: date %s is not offered", ErrStaleAction, a.Date.Format(entities.DateLayout))
	}

	layout, err := s.layouts.LayoutFor(session.Category)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("layout for %s: %w", session.Category, err)
	}

	sheetName, err := s.sheets.EnsureDailySheet(ctx, layout, layout.DailySheetPrefix(session.Category), chosen.Date)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("ensure daily sheet: %w", err)
	}

	option := *chosen
	session.DeliveryDate = &option
	session.DailySheet = sheetName
	return s.itemStep(ctx, session, layout)
}

func (s *Service) selectItem(session *entities.Session, a entities.SelectItem) (entities.Prompt, error) {
	if session.DailySheet == "" {
		return entities.Prompt{}, fmt.Errorf("%w: item before delivery date", ErrStaleAction)
	}
	if a.Index < 0 || a.Index >= len(session.Items) {
		return entities.Prompt{}, fmt.Errorf("%w: item %d of %d", ErrStaleAction, a.Index, len(session.Items))
	}

	layout, err := s.layouts.LayoutFor(session.Category)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("layout for %s: %w", session.Category, err)
	}

	session.Item = session.Items[a.Index]
	session.Step = entities.StepQuantity
	return quantityPrompt(session.Item, layout.MultipleFor(session.Item)), nil
}

func (s *Service) selectQuantity(ctx context.Context, session *entities.Session, a entities.SelectQuantity) (entities.Prompt, error) {
	if session.Item == "" || session.DailySheet == "" || session.Address == nil || session.DeliveryDate == nil {
		return entities.Prompt{}, fmt.Errorf("%w: quantity before item", ErrStaleAction)
	}
	if a.Quantity <= 0 {
		return entities.Prompt{}, fmt.Errorf("%w: quantity %d", ErrStaleAction, a.Quantity)
	}

	layout, err := s.layouts.LayoutFor(session.Category)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("layout for %s: %w", session.Category, err)
	}

	line := entities.OrderLine{
		ChatID:        session.ChatID,
		Category:      session.Category,
		SubCategory:   session.SubCategory,
		SpreadsheetID: layout.SpreadsheetID,
		SheetName:     session.DailySheet,
		AddressLabel:  session.Address.Label,
		AddressColumn: session.Address.Column,
		ItemName:      session.Item,
		Quantity:      a.Quantity,
		DeliveryDate:  session.DeliveryDate.Date,
	}

	recorded, err := s.recorder.RecordLine(ctx, layout, line)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("record line: %w", err)
	}

	session.Step = entities.StepAdded
	return addedPrompt(recorded), nil
}

func (s *Service) showItems(ctx context.Context, session *entities.Session) (entities.Prompt, error) {
	if session.DailySheet == "" {
		return entities.Prompt{}, fmt.Errorf("%w: items before delivery date", ErrStaleAction)
	}

	layout, err := s.layouts.LayoutFor(session.Category)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("layout for %s: %w", session.Category, err)
	}
	return s.itemStep(ctx, session, layout)
}

func (s *Service) back(ctx context.Context, session *entities.Session, a entities.Back) (entities.Prompt, error) {
	switch a.Step {
	case entities.StepSubCategory:
		if session.Category != entities.CategoryRC {
			return entities.Prompt{}, fmt.Errorf("%w: back to sub-category", ErrStaleAction)
		}
		session.Step = entities.StepSubCategory
		return subCategoryPrompt(), nil
	case entities.StepStore:
		if session.Category == "" {
			return entities.Prompt{}, fmt.Errorf("%w: back to store", ErrStaleAction)
		}
		return s.storeStep(ctx, session)
	case entities.StepDeliveryDate:
		if session.Address == nil {
			return entities.Prompt{}, fmt.Errorf("%w: back to delivery date", ErrStaleAction)
		}
		return s.deliveryDateStep(session), nil
	case entities.StepItem:
		return s.showItems(ctx, session)
	default:
		session.Step = entities.StepOrderType
		return orderTypePrompt(), nil
	}
}

// storeStep перечитывает адреса и сбрасывает все выборы после категории.
func (s *Service) storeStep(ctx context.Context, session *entities.Session) (entities.Prompt, error) {
	layout, err := s.layouts.LayoutFor(session.Category)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("layout for %s: %w", session.Category, err)
	}

	addresses, err := s.sheets.ResolveAddresses(ctx, layout)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("resolve addresses: %w", err)
	}

	session.Addresses = addresses
	session.Address = nil
	resetFromDeliveryDate(session)
	session.Step = entities.StepStore
	return storePrompt(session), nil
}

func (s *Service) deliveryDateStep(session *entities.Session) entities.Prompt {
	options := s.dates.DeliveryOptions(session.Category, session.SubCategory, time.Time{})
	if len(options) > delivery_dates.MaxDisplayedOptions {
		options = options[:delivery_dates.MaxDisplayedOptions]
	}

	resetFromDeliveryDate(session)
	session.DeliveryOptions = options
	session.Step = entities.StepDeliveryDate
	return deliveryDatePrompt(session)
}

func (s *Service) itemStep(ctx context.Context, session *entities.Session, layout entities.Layout) (entities.Prompt, error) {
	items, err := s.sheets.ResolveItems(ctx, layout)
	if err != nil {
		return entities.Prompt{}, fmt.Errorf("resolve items: %w", err)
	}

	session.Items = items
	session.Item = ""
	session.Step = entities.StepItem
	return itemsPrompt(session), nil
}

func resetFromDeliveryDate(session *entities.Session) {
	session.DeliveryOptions = nil
	session.DeliveryDate = nil
	session.DailySheet = ""
	session.Items = nil
	session.Item = ""
}
