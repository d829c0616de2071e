package repository

import (
	"database/sql"
	"fmt"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/database"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

// TemperatureRepository handles database operations for daily temperatures
type TemperatureRepository struct {
	db *sql.DB
}

// NewTemperatureRepository creates a new temperature repository
func NewTemperatureRepository(db *sql.DB) *TemperatureRepository {
	return &TemperatureRepository{db: db}
}

// UpsertBatch stores daily temperature extremes, replacing any existing
// row for the same date.
func (r *TemperatureRepository) UpsertBatch(temps []models.DailyTemperature) error {
	if len(temps) == 0 {
		return nil
	}

	return database.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO daily_temperatures (date, high, low)
			VALUES (?, ?, ?)
			ON CONFLICT(date) DO UPDATE SET high = excluded.high, low = excluded.low
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare upsert: %w", err)
		}
		defer stmt.Close()

		for _, t := range temps {
			if _, err := stmt.Exec(t.Date, t.High, t.Low); err != nil {
				return fmt.Errorf("failed to upsert temperature: %w", err)
			}
		}
		return nil
	})
}

// GetAll returns every stored daily temperature ordered by date.
func (r *TemperatureRepository) GetAll() ([]models.DailyTemperature, error) {
	rows, err := r.db.Query(`
		SELECT date, high, low
		FROM daily_temperatures
		ORDER BY date
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query temperatures: %w", err)
	}
	defer rows.Close()

	var temps []models.DailyTemperature
	for rows.Next() {
		var t models.DailyTemperature
		if err := rows.Scan(&t.Date, &t.High, &t.Low); err != nil {
			return nil, fmt.Errorf("failed to scan temperature: %w", err)
		}
		temps = append(temps, t)
	}
	return temps, rows.Err()
}
