package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/api/request"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/validation"
)

// EventService handles dividend event lifecycle operations.
type EventService struct {
	store EventStore
	now   func() time.Time
}

// NewEventService creates a new EventService over the provided store.
func NewEventService(store EventStore) *EventService {
	return &EventService{
		store: store,
		now:   time.Now,
	}
}

// ListEvents returns all events, ordered by ex-date ascending.
func (s *EventService) ListEvents() ([]model.DividendEvent, error) {
	return s.store.ListEvents()
}

// GetEvent returns a single event by ID.
func (s *EventService) GetEvent(id string) (model.DividendEvent, error) {
	return s.store.GetEvent(id)
}

// CreateEvent creates an event from a validated request. Request dates have
// already been checked by validation; parsing here cannot fail for a request
// that passed ValidateCreateEvent.
func (s *EventService) CreateEvent(req request.CreateEventRequest) (model.DividendEvent, error) {
	exDate, err := validation.ParseDate(req.ExDate)
	if err != nil {
		return model.DividendEvent{}, err
	}

	event := model.DividendEvent{
		ID:          uuid.New().String(),
		Ticker:      req.Ticker,
		ExDate:      exDate,
		Amount:      req.Amount,
		Yield:       req.Yield,
		YieldOnCost: req.YieldOnCost,
		Price:       req.Price,
		Received:    req.Received,
		Status:      req.Status,
		Notes:       req.Notes,
		CreatedAt:   s.now().UTC(),
	}

	if event.Status == "" {
		event.Status = model.StatusConfirmed
	}

	if req.PayDate != "" {
		payDate, err := validation.ParseDate(req.PayDate)
		if err != nil {
			return model.DividendEvent{}, err
		}
		event.PayDate = &payDate
	}

	return s.store.CreateEvent(event)
}

// CreateCashEvent records a cash contribution: a received, confirmed event
// under the CASH ticker with price mirroring the amount so the contribution
// shows up in the cash-utilized series.
func (s *EventService) CreateCashEvent(req request.CreateCashEventRequest) (model.DividendEvent, error) {
	date, err := validation.ParseDate(req.Date)
	if err != nil {
		return model.DividendEvent{}, err
	}

	amount := *req.Amount
	price := amount

	event := model.DividendEvent{
		ID:        uuid.New().String(),
		Ticker:    model.TickerCash,
		ExDate:    date,
		Amount:    &amount,
		Price:     &price,
		Received:  true,
		Status:    model.StatusConfirmed,
		Notes:     req.Notes,
		CreatedAt: s.now().UTC(),
	}

	return s.store.CreateEvent(event)
}

// UpdateEvent applies the provided fields of a validated update request to an
// existing event.
func (s *EventService) UpdateEvent(id string, req request.UpdateEventRequest) (model.DividendEvent, error) {
	event, err := s.store.GetEvent(id)
	if err != nil {
		return model.DividendEvent{}, err
	}

	if req.Ticker != nil {
		event.Ticker = *req.Ticker
	}
	if req.ExDate != nil {
		exDate, err := validation.ParseDate(*req.ExDate)
		if err != nil {
			return model.DividendEvent{}, err
		}
		event.ExDate = exDate
	}
	if req.PayDate != nil {
		if *req.PayDate == "" {
			event.PayDate = nil
		} else {
			payDate, err := validation.ParseDate(*req.PayDate)
			if err != nil {
				return model.DividendEvent{}, err
			}
			event.PayDate = &payDate
		}
	}
	if req.Amount != nil {
		event.Amount = req.Amount
	}
	if req.Yield != nil {
		event.Yield = req.Yield
	}
	if req.YieldOnCost != nil {
		event.YieldOnCost = req.YieldOnCost
	}
	if req.Price != nil {
		event.Price = req.Price
	}
	if req.Received != nil {
		event.Received = *req.Received
	}
	if req.Status != nil {
		event.Status = *req.Status
	}
	if req.Notes != nil {
		event.Notes = *req.Notes
	}

	return s.store.UpdateEvent(event)
}

// DeleteEvent removes an event by ID.
func (s *EventService) DeleteEvent(id string) error {
	return s.store.DeleteEvent(id)
}
