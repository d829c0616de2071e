package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/database"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

// ReadingRepository handles database operations for sensor readings
type ReadingRepository struct {
	db *sql.DB
}

// NewReadingRepository creates a new reading repository
func NewReadingRepository(db *sql.DB) *ReadingRepository {
	return &ReadingRepository{db: db}
}

// InsertBatch stores a batch of sensor readings in one transaction.
func (r *ReadingRepository) InsertBatch(readings []models.SensorReading) error {
	if len(readings) == 0 {
		return nil
	}

	return database.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO sensor_readings (
				sensor_id, timestamp, vacuum,
				latitude, longitude, releaser_differential
			) VALUES (?, ?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, rd := range readings {
			_, err := stmt.Exec(
				rd.SensorID, rd.Timestamp, rd.Vacuum,
				rd.Latitude, rd.Longitude, rd.ReleaserDifferential,
			)
			if err != nil {
				return fmt.Errorf("failed to insert reading: %w", err)
			}
		}
		return nil
	})
}

// GetSince returns all readings at or after the cutoff time, ordered by
// sensor and timestamp.
func (r *ReadingRepository) GetSince(cutoff time.Time) ([]models.SensorReading, error) {
	rows, err := r.db.Query(`
		SELECT id, sensor_id, timestamp, vacuum,
		       latitude, longitude, releaser_differential
		FROM sensor_readings
		WHERE timestamp >= ?
		ORDER BY sensor_id, timestamp
	`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

// GetAll returns every stored reading, ordered by sensor and timestamp.
func (r *ReadingRepository) GetAll() ([]models.SensorReading, error) {
	rows, err := r.db.Query(`
		SELECT id, sensor_id, timestamp, vacuum,
		       latitude, longitude, releaser_differential
		FROM sensor_readings
		ORDER BY sensor_id, timestamp
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query readings: %w", err)
	}
	defer rows.Close()

	return scanReadings(rows)
}

func scanReadings(rows *sql.Rows) ([]models.SensorReading, error) {
	var readings []models.SensorReading
	for rows.Next() {
		var rd models.SensorReading
		var lat, lon, rel sql.NullFloat64

		if err := rows.Scan(
			&rd.ID, &rd.SensorID, &rd.Timestamp, &rd.Vacuum,
			&lat, &lon, &rel,
		); err != nil {
			return nil, fmt.Errorf("failed to scan reading: %w", err)
		}
		rd.Latitude = lat.Float64
		rd.Longitude = lon.Float64
		rd.ReleaserDifferential = rel.Float64
		readings = append(readings, rd)
	}
	return readings, rows.Err()
}
