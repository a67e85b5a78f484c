package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

// SupportHandler serves the help-desk endpoints. Customers open and
// follow their own tickets; SUPPORT staff work the full queue.
type SupportHandler struct {
	Tickets  *repository.TicketRepo
	Accounts *repository.AccountRepo
}

func NewSupportHandler(t *repository.TicketRepo, a *repository.AccountRepo) *SupportHandler {
	return &SupportHandler{Tickets: t, Accounts: a}
}

type ticketReq struct {
	Subject  string `json:"subject"`
	Message  string `json:"message"`
	Priority string `json:"priority"`
	Category string `json:"category"`
}

// Create handles POST /v1/tickets. Any authenticated account may open
// a ticket; new tickets always start OPEN.
func (h *SupportHandler) Create(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req ticketReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return fail(c, http.StatusBadRequest, "subject and message required")
	}
	if req.Priority == "" {
		req.Priority = model.PriorityMedium
	}
	if !model.ValidPriority(req.Priority) {
		return fail(c, http.StatusBadRequest, "unknown priority")
	}

	t := model.SupportTicket{
		Subject:     strings.TrimSpace(req.Subject),
		Message:     req.Message,
		Priority:    req.Priority,
		Category:    req.Category,
		RequesterID: acctID,
	}
	if err := h.Tickets.Create(c.Request().Context(), &t); err != nil {
		return failErr(c, err, "create ticket failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"ticket": t})
}

// List handles GET /v1/tickets?status=. SUPPORT sees the whole queue;
// everyone else only their own tickets.
func (h *SupportHandler) List(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	role, _ := c.Get("role").(string)

	var requesterID uint64
	if role != model.RoleSupport && role != model.RoleSuperAdmin {
		requesterID = acctID
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	tickets, err := h.Tickets.List(ctx, c.QueryParam("status"), requesterID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"tickets": tickets})
}

// Get handles GET /v1/tickets/:id. Non-staff callers can only read
// their own tickets; a foreign id reads as not found.
func (h *SupportHandler) Get(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	t, err := h.Tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	role, _ := c.Get("role").(string)
	if role != model.RoleSupport && role != model.RoleSuperAdmin && t.RequesterID != acctID {
		return fail(c, http.StatusNotFound, "not found")
	}
	return ok(c, http.StatusOK, echo.Map{"ticket": t})
}

// Assign handles POST /v1/support/tickets/:id/assign (SUPPORT). The
// assignee must itself hold the SUPPORT role. Assigning moves the
// ticket to IN_PROGRESS.
func (h *SupportHandler) Assign(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		AssigneeID uint64 `json:"assigneeId"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	assignee := req.AssigneeID
	if assignee == 0 {
		// No explicit assignee means "take it myself".
		self, err := accountID(c)
		if err != nil {
			return fail(c, http.StatusUnauthorized, "unauthorized")
		}
		assignee = self
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByID(ctx, assignee)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if acct.Role != model.RoleSupport {
		return fail(c, http.StatusUnprocessableEntity, "assignee is not support staff")
	}
	if err := h.Tickets.Assign(ctx, id, assignee); err != nil {
		return failErr(c, err, "assign failed")
	}
	t, err := h.Tickets.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"ticket": t})
}

// UpdateStatus handles PATCH /v1/support/tickets/:id/status (SUPPORT).
func (h *SupportHandler) UpdateStatus(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Status string `json:"status"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	switch req.Status {
	case model.TicketOpen, model.TicketInProgress, model.TicketResolved:
	default:
		return fail(c, http.StatusBadRequest, "unknown status")
	}
	if err := h.Tickets.UpdateStatus(c.Request().Context(), id, req.Status); err != nil {
		return failErr(c, err, "update failed")
	}
	t, err := h.Tickets.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"ticket": t})
}
