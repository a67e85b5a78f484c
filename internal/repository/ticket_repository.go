package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dfwpark/dfw-parking/internal/model"
)

const ticketCols = "id,subject,message,priority,category,requester_id,assignee_id,status,created_at,updated_at"

// TicketRepo encapsulates queries against the `support_tickets` table.
type TicketRepo struct{ DB *sql.DB }

func NewTicketRepo(db *sql.DB) *TicketRepo { return &TicketRepo{DB: db} }

// Create inserts a ticket and populates its ID. New tickets always
// start OPEN and unassigned.
func (r *TicketRepo) Create(ctx context.Context, t *model.SupportTicket) error {
	t.Status = model.TicketOpen
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO support_tickets (subject, message, priority, category, requester_id, status) VALUES (?,?,?,?,?,?)",
		t.Subject, t.Message, t.Priority, t.Category, t.RequesterID, t.Status)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	t.ID = uint64(id)
	return nil
}

// GetByID fetches a ticket by id.
func (r *TicketRepo) GetByID(ctx context.Context, id uint64) (model.SupportTicket, error) {
	var t model.SupportTicket
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+ticketCols+" FROM support_tickets WHERE id=? LIMIT 1", id).
		Scan(&t.ID, &t.Subject, &t.Message, &t.Priority, &t.Category,
			&t.RequesterID, &t.AssigneeID, &t.Status, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return t, ErrNotFound
	}
	return t, err
}

// List returns tickets, optionally filtered by status and/or requester.
func (r *TicketRepo) List(ctx context.Context, status string, requesterID uint64) ([]model.SupportTicket, error) {
	q := "SELECT " + ticketCols + " FROM support_tickets WHERE 1=1"
	args := []any{}
	if status != "" {
		q += " AND status=?"
		args = append(args, status)
	}
	if requesterID != 0 {
		q += " AND requester_id=?"
		args = append(args, requesterID)
	}
	q += " ORDER BY created_at DESC"
	rows, err := r.DB.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.SupportTicket{}
	for rows.Next() {
		var t model.SupportTicket
		if err := rows.Scan(&t.ID, &t.Subject, &t.Message, &t.Priority, &t.Category,
			&t.RequesterID, &t.AssigneeID, &t.Status, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// Assign sets the ticket's assignee and moves it to IN_PROGRESS.
func (r *TicketRepo) Assign(ctx context.Context, ticketID, assigneeID uint64) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE support_tickets SET assignee_id=?, status=? WHERE id=?",
		assigneeID, model.TicketInProgress, ticketID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

// UpdateStatus sets the ticket status.
func (r *TicketRepo) UpdateStatus(ctx context.Context, ticketID uint64, status string) error {
	res, err := r.DB.ExecContext(ctx,
		"UPDATE support_tickets SET status=? WHERE id=?", status, ticketID)
	if err != nil {
		return err
	}
	return requireRow(res)
}
