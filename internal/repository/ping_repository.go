package repository

import (
	"database/sql"
	"fmt"

	"github.com/ducktracker/reports-backend-go/internal/database"
	"github.com/ducktracker/reports-backend-go/internal/models"
)

// PingRepository handles database operations for the ping archive
type PingRepository struct {
	db *sql.DB
}

// NewPingRepository creates a new ping repository
func NewPingRepository(db *sql.DB) *PingRepository {
	return &PingRepository{db: db}
}

// SaveSnapshot stores every ping of a snapshot, replacing rows that share a
// user/timestamp key. Invalid pings (missing coordinates) are archived too;
// validity is an export-time policy, not a storage one. Returns the number
// of rows written.
func (r *PingRepository) SaveSnapshot(snap models.Snapshot) (int, error) {
	var saved int
	err := database.Transaction(r.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT OR REPLACE INTO pings (user_id, recorded_at, latitude, longitude)
			VALUES (?, ?, ?, ?)
		`)
		if err != nil {
			return fmt.Errorf("failed to prepare ping insert: %w", err)
		}
		defer stmt.Close()

		for _, u := range snap.Users {
			for _, p := range u.Pings {
				if _, err := stmt.Exec(u.UserID, p.Timestamp, p.Latitude, p.Longitude); err != nil {
					return fmt.Errorf("failed to insert ping for user %s: %w", u.UserID, err)
				}
				saved++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return saved, nil
}

// Histories loads every user's ping history, users sorted by ID and pings in
// ascending timestamp order.
func (r *PingRepository) Histories() ([]models.UserHistory, error) {
	rows, err := r.db.Query(`
		SELECT user_id, recorded_at, latitude, longitude
		FROM pings
		ORDER BY user_id, recorded_at
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query pings: %w", err)
	}
	defer rows.Close()

	var histories []models.UserHistory
	for rows.Next() {
		var userID string
		var p models.PingRecord
		if err := rows.Scan(&userID, &p.Timestamp, &p.Latitude, &p.Longitude); err != nil {
			return nil, fmt.Errorf("failed to scan ping: %w", err)
		}
		if n := len(histories); n == 0 || histories[n-1].UserID != userID {
			histories = append(histories, models.UserHistory{UserID: userID})
		}
		h := &histories[len(histories)-1]
		h.Pings = append(h.Pings, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read pings: %w", err)
	}

	return histories, nil
}

// History loads one user's ping history in ascending timestamp order.
// Returns a history with no pings when the user is unknown.
func (r *PingRepository) History(userID string) (models.UserHistory, error) {
	rows, err := r.db.Query(`
		SELECT recorded_at, latitude, longitude
		FROM pings
		WHERE user_id = ?
		ORDER BY recorded_at
	`, userID)
	if err != nil {
		return models.UserHistory{}, fmt.Errorf("failed to query pings for user %s: %w", userID, err)
	}
	defer rows.Close()

	h := models.UserHistory{UserID: userID}
	for rows.Next() {
		var p models.PingRecord
		if err := rows.Scan(&p.Timestamp, &p.Latitude, &p.Longitude); err != nil {
			return models.UserHistory{}, fmt.Errorf("failed to scan ping: %w", err)
		}
		h.Pings = append(h.Pings, p)
	}
	if err := rows.Err(); err != nil {
		return models.UserHistory{}, fmt.Errorf("failed to read pings: %w", err)
	}

	return h, nil
}

// Users returns all known user IDs in ascending order.
func (r *PingRepository) Users() ([]string, error) {
	rows, err := r.db.Query(`SELECT DISTINCT user_id FROM pings ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()

	var users []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan user ID: %w", err)
		}
		users = append(users, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read users: %w", err)
	}

	return users, nil
}
