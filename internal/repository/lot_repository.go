package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dfwpark/dfw-parking/internal/model"
)

const lotCols = "id,name,address,total_spots,features,hourly_rate_cents,daily_rate_cents,weekly_rate_cents,monthly_rate_cents,admin_id,created_at,updated_at"

// LotRepo encapsulates queries against the `parking_lots` table.
type LotRepo struct{ DB *sql.DB }

func NewLotRepo(db *sql.DB) *LotRepo { return &LotRepo{DB: db} }

// Create inserts a parking lot and populates its ID.
func (r *LotRepo) Create(ctx context.Context, l *model.ParkingLot) error {
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO parking_lots (name, address, total_spots, features, hourly_rate_cents, daily_rate_cents, weekly_rate_cents, monthly_rate_cents, admin_id)
		 VALUES (?,?,?,?,?,?,?,?,?)`,
		l.Name, l.Address, l.TotalSpots, encodeList(l.Features),
		l.HourlyRateCents, l.DailyRateCents, l.WeeklyRateCents, l.MonthlyRateCents, l.AdminID)
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
	l.ID = uint64(id)
	return nil
}

// GetByID fetches a lot by id.
func (r *LotRepo) GetByID(ctx context.Context, id uint64) (model.ParkingLot, error) {
	return scanLot(r.DB.QueryRowContext(ctx,
		"SELECT "+lotCols+" FROM parking_lots WHERE id=? LIMIT 1", id))
}

// GetByAdmin fetches the lot assigned to a PARKING_ADMIN account.
func (r *LotRepo) GetByAdmin(ctx context.Context, adminID uint64) (model.ParkingLot, error) {
	return scanLot(r.DB.QueryRowContext(ctx,
		"SELECT "+lotCols+" FROM parking_lots WHERE admin_id=? LIMIT 1", adminID))
}

// List returns all parking lots.
func (r *LotRepo) List(ctx context.Context) ([]model.ParkingLot, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+lotCols+" FROM parking_lots ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.ParkingLot{}
	for rows.Next() {
		var (
			l        model.ParkingLot
			features string
		)
		if err := rows.Scan(&l.ID, &l.Name, &l.Address, &l.TotalSpots, &features,
			&l.HourlyRateCents, &l.DailyRateCents, &l.WeeklyRateCents, &l.MonthlyRateCents,
			&l.AdminID, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, err
		}
		l.Features = decodeList(features)
		out = append(out, l)
	}
	return out, rows.Err()
}

// Update rewrites the lot's fields.
func (r *LotRepo) Update(ctx context.Context, l *model.ParkingLot) error {
	res, err := r.DB.ExecContext(ctx,
		`UPDATE parking_lots SET name=?, address=?, total_spots=?, features=?,
		 hourly_rate_cents=?, daily_rate_cents=?, weekly_rate_cents=?, monthly_rate_cents=? WHERE id=?`,
		l.Name, l.Address, l.TotalSpots, encodeList(l.Features),
		l.HourlyRateCents, l.DailyRateCents, l.WeeklyRateCents, l.MonthlyRateCents, l.ID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// AssignAdmin sets the lot's admin account. At most one lot per admin.
func (r *LotRepo) AssignAdmin(ctx context.Context, lotID, adminID uint64) error {
	var existing uint64
	err := r.DB.QueryRowContext(ctx,
		"SELECT id FROM parking_lots WHERE admin_id=? AND id<>? LIMIT 1", adminID, lotID).Scan(&existing)
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}
	res, err := r.DB.ExecContext(ctx, "UPDATE parking_lots SET admin_id=? WHERE id=?", adminID, lotID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes a lot and, through foreign keys, its spots.
func (r *LotRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM parking_lots WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func scanLot(row *sql.Row) (model.ParkingLot, error) {
	var (
		l        model.ParkingLot
		features string
	)
	err := row.Scan(&l.ID, &l.Name, &l.Address, &l.TotalSpots, &features,
		&l.HourlyRateCents, &l.DailyRateCents, &l.WeeklyRateCents, &l.MonthlyRateCents,
		&l.AdminID, &l.CreatedAt, &l.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return l, ErrNotFound
	}
	l.Features = decodeList(features)
	return l, err
}
