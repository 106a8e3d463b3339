package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
)

// EventRepository is the sqlite-backed dividend event store.
type EventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) *EventRepository {
	return &EventRepository{db: db}
}

const eventColumns = `id, ticker, ex_date, pay_date, amount, dividend_yield, yield_on_cost, price, received, status, notes, created_at`

// ListEvents returns all events ordered by ex-date ascending.
func (r *EventRepository) ListEvents() ([]model.DividendEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM event
		ORDER BY ex_date ASC, created_at ASC
	`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query event table: %w", err)
	}
	defer rows.Close()

	events := []model.DividendEvent{}
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating event table: %w", err)
	}

	return events, nil
}

// GetEvent returns a single event by ID.
func (r *EventRepository) GetEvent(id string) (model.DividendEvent, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM event
		WHERE id = ?
	`

	row := r.db.QueryRow(query, id)
	event, err := scanEvent(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DividendEvent{}, apperrors.ErrEventNotFound
		}
		return model.DividendEvent{}, err
	}

	return event, nil
}

// CreateEvent inserts an event. The caller is expected to have assigned the
// ID and CreatedAt.
func (r *EventRepository) CreateEvent(event model.DividendEvent) (model.DividendEvent, error) {
	query := `
		INSERT INTO event (` + eventColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		event.ID,
		event.Ticker,
		FormatDate(event.ExDate),
		nullDate(event.PayDate),
		nullFloat(event.Amount),
		nullFloat(event.Yield),
		nullFloat(event.YieldOnCost),
		nullFloat(event.Price),
		event.Received,
		event.Status,
		nullString(event.Notes),
		event.CreatedAt.UTC().Format(time.RFC3339),
	)
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to insert event: %w", err)
	}

	return event, nil
}

// UpdateEvent replaces all mutable fields of an existing event.
func (r *EventRepository) UpdateEvent(event model.DividendEvent) (model.DividendEvent, error) {
	query := `
		UPDATE event
		SET ticker = ?, ex_date = ?, pay_date = ?, amount = ?, dividend_yield = ?,
		    yield_on_cost = ?, price = ?, received = ?, status = ?, notes = ?
		WHERE id = ?
	`

	result, err := r.db.Exec(query,
		event.Ticker,
		FormatDate(event.ExDate),
		nullDate(event.PayDate),
		nullFloat(event.Amount),
		nullFloat(event.Yield),
		nullFloat(event.YieldOnCost),
		nullFloat(event.Price),
		event.Received,
		event.Status,
		nullString(event.Notes),
		event.ID,
	)
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to update event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return model.DividendEvent{}, apperrors.ErrEventNotFound
	}

	return event, nil
}

// DeleteEvent removes an event by ID.
func (r *EventRepository) DeleteEvent(id string) error {
	result, err := r.db.Exec(`DELETE FROM event WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete event: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}

// Tickers returns the distinct tickers present in the store, excluding the
// cash sentinel. Used by the quote-refresh job.
func (r *EventRepository) Tickers() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT ticker FROM event WHERE ticker != ? ORDER BY ticker`, model.TickerCash)
	if err != nil {
		return nil, fmt.Errorf("failed to query tickers: %w", err)
	}
	defer rows.Close()

	tickers := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan ticker: %w", err)
		}
		tickers = append(tickers, t)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating tickers: %w", err)
	}

	return tickers, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanEvent(s scanner) (model.DividendEvent, error) {
	var event model.DividendEvent
	var exDateStr, createdAtStr string
	var payDateStr, notes sql.NullString
	var amount, yield, yieldOnCost, price sql.NullFloat64

	err := s.Scan(
		&event.ID,
		&event.Ticker,
		&exDateStr,
		&payDateStr,
		&amount,
		&yield,
		&yieldOnCost,
		&price,
		&event.Received,
		&event.Status,
		&notes,
		&createdAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DividendEvent{}, err
		}
		return model.DividendEvent{}, fmt.Errorf("failed to scan event row: %w", err)
	}

	event.ExDate, err = ParseTime(exDateStr)
	if err != nil || event.ExDate.IsZero() {
		return model.DividendEvent{}, fmt.Errorf("failed to parse ex_date: %w", err)
	}

	if payDateStr.Valid {
		payDate, err := ParseTime(payDateStr.String)
		if err != nil || payDate.IsZero() {
			return model.DividendEvent{}, fmt.Errorf("failed to parse pay_date: %w", err)
		}
		event.PayDate = &payDate
	}

	event.Amount = floatPtr(amount)
	event.Yield = floatPtr(yield)
	event.YieldOnCost = floatPtr(yieldOnCost)
	event.Price = floatPtr(price)

	if notes.Valid {
		event.Notes = notes.String
	}

	event.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return model.DividendEvent{}, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return event, nil
}

func nullDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return FormatDate(*t)
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func floatPtr(f sql.NullFloat64) *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Float64
	return &v
}
