package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
	"github.com/divitrack/Dividend-Tracker-Backend/internal/model"
	"github.com/google/uuid"
)

// QuoteRepository is the sqlite-backed quote cache.
type QuoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// GetQuote returns the cached quote for a ticker.
func (r *QuoteRepository) GetQuote(ticker string) (model.Quote, error) {
	query := `
		SELECT id, ticker, price, dividend_yield, updated_at
		FROM quote
		WHERE ticker = ?
	`

	var quote model.Quote
	var updatedAtStr string

	err := r.db.QueryRow(query, ticker).Scan(
		&quote.ID,
		&quote.Ticker,
		&quote.Price,
		&quote.DividendYield,
		&updatedAtStr,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Quote{}, apperrors.ErrQuoteNotFound
		}
		return model.Quote{}, fmt.Errorf("failed to query quote: %w", err)
	}

	quote.UpdatedAt, err = ParseTime(updatedAtStr)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}

	return quote, nil
}

// UpsertQuote inserts or refreshes the cached quote for a ticker.
func (r *QuoteRepository) UpsertQuote(ticker string, price, dividendYield float64) (model.Quote, error) {
	quote := model.Quote{
		ID:            uuid.New().String(),
		Ticker:        ticker,
		Price:         price,
		DividendYield: dividendYield,
		UpdatedAt:     time.Now().UTC(),
	}

	query := `
		INSERT INTO quote (id, ticker, price, dividend_yield, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(ticker) DO UPDATE SET
			price = excluded.price,
			dividend_yield = excluded.dividend_yield,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query,
		quote.ID,
		quote.Ticker,
		quote.Price,
		quote.DividendYield,
		quote.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return model.Quote{}, fmt.Errorf("failed to upsert quote: %w", err)
	}

	return r.GetQuote(ticker)
}
