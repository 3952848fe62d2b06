package store

import (
	"database/sql"
	"time"
)

// Event records one confirmed gesture switch: which gesture took over the
// scene, which one it replaced, and when.
type Event struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Previous string    `json:"previous"`
	At       time.Time `json:"at"`
}

// EventRepository provides access to the gesture switch log.
type EventRepository struct {
	db *sql.DB
}

// Events returns the event repository for this store.
func (s *Store) Events() *EventRepository {
	return &EventRepository{db: s.db}
}

// Insert appends a switch event to the log. A zero At is filled with the
// current time.
func (r *EventRepository) Insert(e *Event) error {
	if e.At.IsZero() {
		e.At = time.Now()
	}

	_, err := r.db.Exec(
		`INSERT INTO events (id, label, previous, at) VALUES (?, ?, ?, ?)`,
		e.ID, e.Label, e.Previous, e.At,
	)
	return err
}

// Recent returns the most recent events, newest first, up to limit.
func (r *EventRepository) Recent(limit int) ([]*Event, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, label, previous, at FROM events ORDER BY at DESC, id LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []*Event
	for rows.Next() {
		e := &Event{}
		if err := rows.Scan(&e.ID, &e.Label, &e.Previous, &e.At); err != nil {
			return nil, err
		}
		events = append(events, e)
	}

	return events, rows.Err()
}

// CountByLabel returns how many confirmed switches each gesture has had.
func (r *EventRepository) CountByLabel() (map[string]int, error) {
	rows, err := r.db.Query(`SELECT label, COUNT(*) FROM events GROUP BY label`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var label string
		var n int
		if err := rows.Scan(&label, &n); err != nil {
			return nil, err
		}
		counts[label] = n
	}

	return counts, rows.Err()
}
