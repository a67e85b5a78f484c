package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/dfwpark/dfw-parking/internal/model"
)

var bookingCols = []string{
	"id", "reference", "account_id", "type",
	"hotel_id", "room_id", "check_in", "check_out", "guests", "hotel_amenities",
	"lot_id", "spot_id", "park_start", "park_end", "vehicle_plate", "vehicle_model",
	"subtotal_cents", "tax_cents", "fee_cents", "discount_cents", "total_cents",
	"status", "cancel_reason", "created_at", "updated_at",
}

// BookingFilter narrows admin booking lists. Zero values mean "no
// filter". From/To bound the creation time.
type BookingFilter struct {
	AccountID uint64
	Status    string
	Type      string
	HotelID   uint64
	LotID     uint64
	From      time.Time
	To        time.Time
}

// BookingRepo encapsulates queries against the `bookings` table.
// Bookings are append-and-transition only; there is no delete method.
type BookingRepo struct{ DB *sql.DB }

func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{DB: db} }

// Create inserts a booking and populates its ID. Leg column groups are
// written only for the legs the booking carries.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	var (
		hotelID, roomID, lotID, spotID       *uint64
		checkIn, checkOut, parkStart, parkEnd *time.Time
		guests                               uint16
		hotelAmenities                       = "[]"
		plate, vmodel                        string
	)
	if b.Hotel != nil {
		hotelID, roomID = &b.Hotel.HotelID, &b.Hotel.RoomID
		checkIn, checkOut = &b.Hotel.CheckIn, &b.Hotel.CheckOut
		guests = b.Hotel.Guests
		hotelAmenities = encodeList(b.Hotel.Amenities)
	}
	if b.Parking != nil {
		lotID, spotID = &b.Parking.LotID, &b.Parking.SpotID
		parkStart, parkEnd = &b.Parking.StartDate, &b.Parking.EndDate
		plate, vmodel = b.Parking.VehiclePlate, b.Parking.VehicleModel
	}

	query, args, err := squirrel.Insert("bookings").
		Columns(bookingCols[1 : len(bookingCols)-2]...).
		Values(b.Reference, b.AccountID, b.Type,
			hotelID, roomID, checkIn, checkOut, guests, hotelAmenities,
			lotID, spotID, parkStart, parkEnd, plate, vmodel,
			b.Price.SubtotalCents, b.Price.TaxCents, b.Price.FeeCents,
			b.Price.DiscountCents, b.Price.TotalCents,
			b.Status, b.CancelReason).
		ToSql()
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	return nil
}

// GetByID fetches a booking by id.
func (r *BookingRepo) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	query, args, err := squirrel.Select(bookingCols...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return model.Booking{}, err
	}
	return r.scanOne(r.DB.QueryRowContext(ctx, query, args...))
}

// List returns bookings matching the filter, newest first.
func (r *BookingRepo) List(ctx context.Context, f BookingFilter) ([]model.Booking, error) {
	sb := squirrel.Select(bookingCols...).
		From("bookings").
		OrderBy("created_at DESC, id DESC")
	if f.AccountID != 0 {
		sb = sb.Where(squirrel.Eq{"account_id": f.AccountID})
	}
	if f.Status != "" {
		sb = sb.Where(squirrel.Eq{"status": f.Status})
	}
	if f.Type != "" {
		sb = sb.Where(squirrel.Eq{"type": f.Type})
	}
	if f.HotelID != 0 {
		sb = sb.Where(squirrel.Eq{"hotel_id": f.HotelID})
	}
	if f.LotID != 0 {
		sb = sb.Where(squirrel.Eq{"lot_id": f.LotID})
	}
	if !f.From.IsZero() {
		sb = sb.Where(squirrel.GtOrEq{"created_at": f.From})
	}
	if !f.To.IsZero() {
		sb = sb.Where(squirrel.LtOrEq{"created_at": f.To})
	}

	query, args, err := sb.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking from one status to another. The WHERE
// clause re-checks the current status so concurrent transitions cannot
// skip steps; a zero-row update distinguishes ErrNotFound from
// ErrBadTransition by re-reading the row.
func (r *BookingRepo) UpdateStatus(ctx context.Context, id uint64, from, to, reason string) error {
	if !model.CanTransition(from, to) {
		return ErrBadTransition
	}
	res, err := r.DB.ExecContext(ctx,
		"UPDATE bookings SET status=?, cancel_reason=? WHERE id=? AND status=?",
		to, reason, id, from)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		if _, err := r.GetByID(ctx, id); err != nil {
			return err
		}
		return ErrBadTransition
	}
	return nil
}

type rowScanner interface{ Scan(dest ...any) error }

func (r *BookingRepo) scanOne(row *sql.Row) (model.Booking, error) {
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return b, ErrNotFound
	}
	return b, err
}

func scanBooking(row rowScanner) (model.Booking, error) {
	var (
		b                                     model.Booking
		hotelID, roomID, lotID, spotID        sql.NullInt64
		checkIn, checkOut, parkStart, parkEnd sql.NullTime
		guests                                sql.NullInt32
		hotelAmenities                        sql.NullString
		plate, vmodel, reason                 sql.NullString
	)
	err := row.Scan(&b.ID, &b.Reference, &b.AccountID, &b.Type,
		&hotelID, &roomID, &checkIn, &checkOut, &guests, &hotelAmenities,
		&lotID, &spotID, &parkStart, &parkEnd, &plate, &vmodel,
		&b.Price.SubtotalCents, &b.Price.TaxCents, &b.Price.FeeCents,
		&b.Price.DiscountCents, &b.Price.TotalCents,
		&b.Status, &reason, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return b, err
	}
	b.CancelReason = reason.String
	if hotelID.Valid {
		b.Hotel = &model.HotelLeg{
			HotelID:   uint64(hotelID.Int64),
			RoomID:    uint64(roomID.Int64),
			CheckIn:   checkIn.Time,
			CheckOut:  checkOut.Time,
			Guests:    uint16(guests.Int32),
			Amenities: decodeList(hotelAmenities.String),
		}
	}
	if lotID.Valid {
		b.Parking = &model.ParkingLeg{
			LotID:        uint64(lotID.Int64),
			SpotID:       uint64(spotID.Int64),
			StartDate:    parkStart.Time,
			EndDate:      parkEnd.Time,
			VehiclePlate: plate.String,
			VehicleModel: vmodel.String,
		}
	}
	return b, nil
}
