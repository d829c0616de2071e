package repository

import (
	"database/sql"
	"fmt"

	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/database"
	"github.com/jeremylfarrell/Forest-Farmers-sub000/internal/models"
)

// SessionRepository handles database operations for work sessions
type SessionRepository struct {
	db *sql.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *sql.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// InsertBatch stores a batch of work sessions in one transaction.
func (r *SessionRepository) InsertBatch(sessions []models.WorkSession) error {
	if len(sessions) == 0 {
		return nil
	}

	return database.Transaction(func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO work_sessions (
				employee_id, location_id, work_date, hours, job_code
			) VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare insert: %w", err)
		}
		defer stmt.Close()

		for _, s := range sessions {
			_, err := stmt.Exec(
				s.EmployeeID, s.LocationID, s.Date, s.Hours, s.JobCode,
			)
			if err != nil {
				return fmt.Errorf("failed to insert session: %w", err)
			}
		}
		return nil
	})
}

// GetAll returns every stored work session ordered by date.
func (r *SessionRepository) GetAll() ([]models.WorkSession, error) {
	rows, err := r.db.Query(`
		SELECT id, employee_id, location_id, work_date, hours, job_code
		FROM work_sessions
		ORDER BY work_date, id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []models.WorkSession
	for rows.Next() {
		var s models.WorkSession
		var hours sql.NullFloat64
		var jobCode sql.NullString

		if err := rows.Scan(
			&s.ID, &s.EmployeeID, &s.LocationID, &s.Date, &hours, &jobCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan session: %w", err)
		}
		s.Hours = hours.Float64
		s.JobCode = jobCode.String
		sessions = append(sessions, s)
	}
	return sessions, rows.Err()
}
