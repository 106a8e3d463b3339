package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/divitrack/Dividend-Tracker-Backend/internal/apperrors"
)

// Setting keys.
const (
	SettingMarketDataAPIKey = "market_data_api_key"
)

// SettingRepository is the sqlite-backed key/value settings store. Values are
// stored as handed over; callers seal secrets before storing them.
type SettingRepository struct {
	db *sql.DB
}

func NewSettingRepository(db *sql.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// GetSetting returns the stored value for a key.
func (r *SettingRepository) GetSetting(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM setting WHERE "key" = ?`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", apperrors.ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to query setting: %w", err)
	}
	return value, nil
}

// SetSetting stores or replaces the value for a key.
func (r *SettingRepository) SetSetting(key, value string) error {
	query := `
		INSERT INTO setting ("key", value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT("key") DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`

	_, err := r.db.Exec(query, key, value, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to store setting: %w", err)
	}
	return nil
}
