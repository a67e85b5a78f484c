package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/utils"
)

const accountCols = "id,name,email,password_hash,role,phone,address,created_at,updated_at"

// AccountRepo encapsulates queries against the `accounts` table.
type AccountRepo struct{ DB *sql.DB }

func NewAccountRepo(db *sql.DB) *AccountRepo { return &AccountRepo{DB: db} }

// Create inserts an account and returns its ID. The password is hashed
// here so callers never handle bcrypt directly.
func (r *AccountRepo) Create(ctx context.Context, a *model.Account, password string, cost int) (uint64, error) {
	a.Email = strings.ToLower(strings.TrimSpace(a.Email))
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO accounts (name, email, password_hash, role, phone, address) VALUES (?,?,?,?,?,?)",
		a.Name, a.Email, hash, a.Role, a.Phone, a.Address)
	if err != nil {
		// MySQL 1062 = duplicate key (unique email index)
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return 0, ErrEmailExists
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	a.ID = uint64(id)
	return a.ID, nil
}

// GetByEmail fetches an account by normalized email.
func (r *AccountRepo) GetByEmail(ctx context.Context, email string) (model.Account, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+accountCols+" FROM accounts WHERE email=? LIMIT 1", email))
}

// GetByID fetches an account by id.
func (r *AccountRepo) GetByID(ctx context.Context, id uint64) (model.Account, error) {
	return r.scanOne(r.DB.QueryRowContext(ctx,
		"SELECT "+accountCols+" FROM accounts WHERE id=? LIMIT 1", id))
}

// List returns all accounts, optionally filtered by role.
func (r *AccountRepo) List(ctx context.Context, role string) ([]model.Account, error) {
	q := "SELECT " + accountCols + " FROM accounts"
	args := []any{}
	if role != "" {
		q += " WHERE role=?"
		args = append(args, role)
	}
	q += " ORDER BY id"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Account{}
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
			&a.Phone, &a.Address, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// Update modifies the mutable profile fields. Role changes go through
// UpdateRole so profile updates cannot escalate privileges.
func (r *AccountRepo) Update(ctx context.Context, id uint64, name, phone, address string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE accounts SET name=?, phone=?, address=? WHERE id=?",
		name, phone, address, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateRole sets the account's role. Only super admin routes reach this.
func (r *AccountRepo) UpdateRole(ctx context.Context, id uint64, role string) error {
	res, err := r.DB.ExecContext(ctx, "UPDATE accounts SET role=? WHERE id=?", role, id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// Delete removes the account row. Admin-only; customer accounts are
// normally never deleted.
func (r *AccountRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM accounts WHERE id=?", id)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *AccountRepo) scanOne(row *sql.Row) (model.Account, error) {
	var a model.Account
	err := row.Scan(&a.ID, &a.Name, &a.Email, &a.PasswordHash, &a.Role,
		&a.Phone, &a.Address, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return a, ErrNotFound
	}
	return a, err
}

// requireRow converts a zero-rows-affected result into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
