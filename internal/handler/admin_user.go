package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/config"
	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

// UserAdminHandler is the SUPER_ADMIN account console: create staff
// accounts, change roles, list and remove users.
type UserAdminHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
}

func NewUserAdminHandler(cfg config.Config, accounts *repository.AccountRepo) *UserAdminHandler {
	return &UserAdminHandler{Cfg: cfg, Accounts: accounts}
}

type createUserReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Role     string `json:"role"`
}

// List handles GET /v1/admin/users?role=.
func (h *UserAdminHandler) List(c echo.Context) error {
	role := c.QueryParam("role")
	if role != "" && !model.ValidRole(role) {
		return fail(c, http.StatusBadRequest, "unknown role")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	accounts, err := h.Accounts.List(ctx, role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	parts := make([]accountPart, 0, len(accounts))
	for _, a := range accounts {
		parts = append(parts, toAccountPart(a))
	}
	return ok(c, http.StatusOK, echo.Map{"users": parts})
}

// Get handles GET /v1/admin/users/:id.
func (h *UserAdminHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	acct, err := h.Accounts.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"user": toAccountPart(acct)})
}

// Create handles POST /v1/admin/users. Unlike public registration this
// endpoint may mint any role, which is how staff accounts come to be.
func (h *UserAdminHandler) Create(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || len(req.Password) < 8 {
		return fail(c, http.StatusBadRequest, "email and password (min 8 chars) required")
	}
	if !model.ValidRole(req.Role) {
		return fail(c, http.StatusBadRequest, "unknown role")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct := model.Account{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Role:    req.Role,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if _, err := h.Accounts.Create(ctx, &acct, req.Password, h.Cfg.BcryptCost); err != nil {
		return failErr(c, err, "create failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"user": toAccountPart(acct)})
}

// Update handles PUT /v1/admin/users/:id (profile fields only).
func (h *UserAdminHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Accounts.Update(ctx, id, strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Phone), strings.TrimSpace(req.Address)); err != nil {
		return failErr(c, err, "update failed")
	}
	acct, err := h.Accounts.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"user": toAccountPart(acct)})
}

// UpdateRole handles PATCH /v1/admin/users/:id/role. A super admin may
// not demote itself; that would lock the console.
func (h *UserAdminHandler) UpdateRole(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Role string `json:"role"`
	}
	if err := c.Bind(&req); err != nil || !model.ValidRole(req.Role) {
		return fail(c, http.StatusBadRequest, "valid role required")
	}
	if selfID, aerr := accountID(c); aerr == nil && selfID == id && req.Role != model.RoleSuperAdmin {
		return fail(c, http.StatusConflict, "cannot demote own account")
	}
	if err := h.Accounts.UpdateRole(c.Request().Context(), id, req.Role); err != nil {
		return failErr(c, err, "update failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Delete handles DELETE /v1/admin/users/:id.
func (h *UserAdminHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if selfID, aerr := accountID(c); aerr == nil && selfID == id {
		return fail(c, http.StatusConflict, "cannot delete own account")
	}
	if err := h.Accounts.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}
