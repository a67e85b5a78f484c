package storage

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// LocalBooking is one row of the on-disk booking history. It mirrors
// what the API returned at booking time; the server copy stays the
// source of truth.
type LocalBooking struct {
	ID         uint64 `json:"id"`
	Reference  string `json:"reference"`
	Type       string `json:"type"`
	Status     string `json:"status"`
	TotalCents int64  `json:"total_cents"`
	BookedAt   string `json:"booked_at"`
}

// OpenBookingsDB opens (and if needed creates) the local history db.
func OpenBookingsDB() (*sql.DB, error) {
	if _, err := ensureConfigDir(); err != nil {
		return nil, err
	}
	path, err := BookingsPath()
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := ensureBookingsSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func ensureBookingsSchema(db *sql.DB) error {
	createTable := `
CREATE TABLE IF NOT EXISTS bookings (
  id INTEGER PRIMARY KEY,
  reference TEXT,
  type TEXT,
  status TEXT,
  total_cents INTEGER,
  booked_at TEXT
);`
	if _, err := db.Exec(createTable); err != nil {
		return fmt.Errorf("create bookings table: %w", err)
	}
	if _, err := db.Exec("CREATE INDEX IF NOT EXISTS idx_bookings_booked_at ON bookings(booked_at);"); err != nil {
		return fmt.Errorf("create bookings index: %w", err)
	}
	return nil
}

// RecordBooking upserts a booking into the history.
func RecordBooking(db *sql.DB, b LocalBooking) error {
	_, err := db.Exec(`
INSERT INTO bookings (id, reference, type, status, total_cents, booked_at)
VALUES (?,?,?,?,?,?)
ON CONFLICT(id) DO UPDATE SET status=excluded.status, total_cents=excluded.total_cents`,
		b.ID, b.Reference, b.Type, b.Status, b.TotalCents, b.BookedAt)
	if err != nil {
		return fmt.Errorf("record booking: %w", err)
	}
	return nil
}

// ListBookings returns the history, newest first.
func ListBookings(db *sql.DB) ([]LocalBooking, error) {
	rows, err := db.Query(`
SELECT id, reference, type, status, total_cents, booked_at
FROM bookings ORDER BY booked_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LocalBooking
	for rows.Next() {
		var b LocalBooking
		if err := rows.Scan(&b.ID, &b.Reference, &b.Type, &b.Status, &b.TotalCents, &b.BookedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
