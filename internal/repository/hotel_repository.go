package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dfwpark/dfw-parking/internal/model"
)

const hotelCols = "id,name,address_line1,address_line2,city,state,zip,country,description,stars,amenities,admin_id,created_at,updated_at"

// HotelRepo encapsulates queries against the `hotels` table.
type HotelRepo struct{ DB *sql.DB }

func NewHotelRepo(db *sql.DB) *HotelRepo { return &HotelRepo{DB: db} }

// Create inserts a hotel and populates its ID.
func (r *HotelRepo) Create(ctx context.Context, h *model.Hotel) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO hotels (name, address_line1, address_line2, city, state, zip, country, description, stars, amenities, admin_id)
		 VALUES (?,?,?,?,?,?,?,?,?,?,?)`,
		h.Name, h.AddressLine1, h.AddressLine2, h.City, h.State, h.Zip, h.Country,
		h.Description, h.Stars, encodeList(h.Amenities), h.AdminID)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrConflict
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.ID = uint64(id)
	return nil
}

// GetByID fetches a hotel by id.
func (r *HotelRepo) GetByID(ctx context.Context, id uint64) (model.Hotel, error) {
	return scanHotel(r.DB.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE id=? LIMIT 1", id))
}

// GetByAdmin fetches the hotel assigned to a HOTEL_ADMIN account. The
// single-admin-per-hotel model makes this a unique lookup.
func (r *HotelRepo) GetByAdmin(ctx context.Context, adminID uint64) (model.Hotel, error) {
	return scanHotel(r.DB.QueryRowContext(ctx,
		"SELECT "+hotelCols+" FROM hotels WHERE admin_id=? LIMIT 1", adminID))
}

// List returns all hotels, optionally filtered by city.
func (r *HotelRepo) List(ctx context.Context, city string) ([]model.Hotel, error) {
	q := "SELECT " + hotelCols + " FROM hotels"
	args := []any{}
	if city != "" {
		q += " WHERE city=?"
		args = append(args, city)
	}
	q += " ORDER BY name"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Hotel{}
	for rows.Next() {
		h, err := scanHotelRows(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// Update rewrites the descriptive fields of a hotel.
func (r *HotelRepo) Update(ctx context.Context, h *model.Hotel) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE hotels SET name=?, address_line1=?, address_line2=?, city=?, state=?, zip=?, country=?,
		 description=?, stars=?, amenities=? WHERE id=?`,
		h.Name, h.AddressLine1, h.AddressLine2, h.City, h.State, h.Zip, h.Country,
		h.Description, h.Stars, encodeList(h.Amenities), h.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AssignAdmin sets the hotel's admin account. An admin may manage at
// most one hotel; assigning one who already has a hotel fails with
// ErrConflict.
func (r *HotelRepo) AssignAdmin(ctx context.Context, hotelID, adminID uint64) error {
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM hotels WHERE admin_id=? AND id<>? LIMIT 1", adminID, hotelID).Scan(&existing)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	res, err := r.DB.ExecContext(ctx, "UPDATE hotels SET admin_id=? WHERE id=?", adminID, hotelID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a hotel and, through foreign keys, its rooms.
func (r *HotelRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM hotels WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanHotel(row *sql.Row) (model.Hotel, error) {
	var (
		h         model.Hotel
		amenities string
	)
	err := row.Scan(&h.ID, &h.Name, &h.AddressLine1, &h.AddressLine2, &h.City, &h.State,
		&h.Zip, &h.Country, &h.Description, &h.Stars, &amenities, &h.AdminID,
		&h.CreatedAt, &h.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return h, ErrNotFound
	}
	h.Amenities = decodeList(amenities)
	return h, err
}

func scanHotelRows(rows *sql.Rows) (model.Hotel, error) {
	var (
		h         model.Hotel
		amenities string
	)
	err := rows.Scan(&h.ID, &h.Name, &h.AddressLine1, &h.AddressLine2, &h.City, &h.State,
		&h.Zip, &h.Country, &h.Description, &h.Stars, &amenities, &h.AdminID,
		&h.CreatedAt, &h.UpdatedAt)
	h.Amenities = decodeList(amenities)
	return h, err
}
