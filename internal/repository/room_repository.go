package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dfwpark/dfw-parking/internal/model"
)

const roomCols = "id,hotel_id,type,price_cents,capacity,available,amenities,created_at,updated_at"

// RoomRepo encapsulates queries against the `rooms` table. Rooms are
// owned exclusively by one hotel, so every mutating method takes the
// hotel id and refuses to touch rows outside it.
type RoomRepo struct{ DB *sql.DB }

func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{DB: db} }

// Create inserts a room under a hotel and populates its ID.
func (r *RoomRepo) Create(ctx context.Context, rm *model.Room) error {
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO rooms (hotel_id, type, price_cents, capacity, available, amenities) VALUES (?,?,?,?,?,?)",
		rm.HotelID, rm.Type, rm.PriceCents, rm.Capacity, rm.Available, encodeList(rm.Amenities))
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	rm.ID = uint64(id)
	return nil
}

// GetByID fetches a room by id.
func (r *RoomRepo) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	var (
		rm        model.Room
		amenities string
	)
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+roomCols+" FROM rooms WHERE id=? LIMIT 1", id).
		Scan(&rm.ID, &rm.HotelID, &rm.Type, &rm.PriceCents, &rm.Capacity, &rm.Available,
			&amenities, &rm.CreatedAt, &rm.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return rm, ErrNotFound
	}
	rm.Amenities = decodeList(amenities)
	return rm, err
}

// ListByHotel returns all rooms belonging to a hotel.
func (r *RoomRepo) ListByHotel(ctx context.Context, hotelID uint64) ([]model.Room, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+roomCols+" FROM rooms WHERE hotel_id=? ORDER BY id", hotelID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Room{}
	for rows.Next() {
		var (
			rm        model.Room
			amenities string
		)
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.Type, &rm.PriceCents, &rm.Capacity,
			&rm.Available, &amenities, &rm.CreatedAt, &rm.UpdatedAt); err != nil {
			return nil, err
		}
		rm.Amenities = decodeList(amenities)
		out = append(out, rm)
	}
	return out, rows.Err()
}

// Update rewrites a room's fields, scoped to its hotel.
func (r *RoomRepo) Update(ctx context.Context, rm *model.Room) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE rooms SET type=?, price_cents=?, capacity=?, available=?, amenities=? WHERE id=? AND hotel_id=?",
		rm.Type, rm.PriceCents, rm.Capacity, rm.Available, encodeList(rm.Amenities), rm.ID, rm.HotelID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a room, scoped to its hotel.
func (r *RoomRepo) Delete(ctx context.Context, hotelID, roomID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM rooms WHERE id=? AND hotel_id=?", roomID, hotelID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
