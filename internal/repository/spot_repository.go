package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dfwpark/dfw-parking/internal/model"
)

const spotCols = "id,lot_id,number,section,type,available,booking_id,created_at,updated_at"

// SpotRepo encapsulates queries against the `parking_spots` table.
// Spots belong exclusively to one lot; mutating methods are scoped by
// lot id the same way RoomRepo scopes by hotel.
type SpotRepo struct{ DB *sql.DB }

func NewSpotRepo(db *sql.DB) *SpotRepo { return &SpotRepo{DB: db} }

// Create inserts a spot under a lot and populates its ID.
func (r *SpotRepo) Create(ctx context.Context, s *model.ParkingSpot) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO parking_spots (lot_id, number, section, type, available) VALUES (?,?,?,?,?)",
		s.LotID, s.Number, s.Section, s.Type, s.Available)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID fetches a spot by id.
func (r *SpotRepo) GetByID(ctx context.Context, id uint64) (model.ParkingSpot, error) {
	var s model.ParkingSpot
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+spotCols+" FROM parking_spots WHERE id=? LIMIT 1", id).
		Scan(&s.ID, &s.LotID, &s.Number, &s.Section, &s.Type, &s.Available,
			&s.BookingID, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return s, ErrNotFound
	}
	return s, err
}

// ListByLot returns all spots in a lot, optionally only available ones.
func (r *SpotRepo) ListByLot(ctx context.Context, lotID uint64, onlyAvailable bool) ([]model.ParkingSpot, error) {
	q := "SELECT " + spotCols + " FROM parking_spots WHERE lot_id=?"
	if onlyAvailable {
		q += " AND available=1"
	}
	q += " ORDER BY section, number"
	rows, err := r.DB.QueryContext(ctx, q, lotID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ParkingSpot{}
	for rows.Next() {
		var s model.ParkingSpot
		if err := rows.Scan(&s.ID, &s.LotID, &s.Number, &s.Section, &s.Type, &s.Available,
			&s.BookingID, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// Update rewrites a spot's fields, scoped to its lot.
func (r *SpotRepo) Update(ctx context.Context, s *model.ParkingSpot) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE parking_spots SET number=?, section=?, type=?, available=? WHERE id=? AND lot_id=?",
		s.Number, s.Section, s.Type, s.Available, s.ID, s.LotID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// SetOccupancy records which booking currently holds the spot and flips
// its availability flag. Passing a nil booking id frees the spot.
func (r *SpotRepo) SetOccupancy(ctx context.Context, spotID uint64, bookingID *uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE parking_spots SET booking_id=?, available=? WHERE id=?",
		bookingID, bookingID == nil, spotID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a spot, scoped to its lot.
func (r *SpotRepo) Delete(ctx context.Context, lotID, spotID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM parking_spots WHERE id=? AND lot_id=?", spotID, lotID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
