package handler

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/config"
	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

// tokenIssuer abstracts access/refresh token creation so tests can
// exercise the handler without signing real JWTs.
type tokenIssuer interface {
	IssuePair(ctx context.Context, accountID uint64, role string) (access, refresh tokenPart, err error)
}

// AuthHandler bundles dependencies for the auth endpoints.
type AuthHandler struct {
	Cfg      config.Config
	Accounts *repository.AccountRepo
	Tokens   *repository.TokenRepo
	Issuer   tokenIssuer
}

func NewAuthHandler(cfg config.Config, a *repository.AccountRepo, t *repository.TokenRepo, iss tokenIssuer) *AuthHandler {
	return &AuthHandler{Cfg: cfg, Accounts: a, Tokens: t, Issuer: iss}
}

// ----- DTOs -----

type registerReq struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type refreshReq struct {
	RefreshToken string `json:"refresh_token"`
}

type tokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type accountPart struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

func toAccountPart(a model.Account) accountPart {
	return accountPart{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role, Phone: a.Phone, Address: a.Address}
}

// Register creates a CUSTOMER account and returns the account record
// together with a fresh token pair. Admin roles are never assignable
// through registration.
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" || strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name/email/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct := model.Account{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Role:    model.RoleCustomer,
		Phone:   strings.TrimSpace(req.Phone),
		Address: strings.TrimSpace(req.Address),
	}
	if _, err := h.Accounts.Create(ctx, &acct, req.Password, h.Cfg.BcryptCost); err != nil {
		return failErr(c, err, "create account failed")
	}

	access, refresh, err := h.Issuer.IssuePair(ctx, acct.ID, acct.Role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "issue tokens failed")
	}
	return ok(c, http.StatusCreated, echo.Map{
		"user":    toAccountPart(acct),
		"access":  access,
		"refresh": refresh,
	})
}

// Login verifies credentials and returns the account plus a new pair.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	req.Email = strings.ToLower(strings.TrimSpace(req.Email))
	if req.Email == "" || req.Password == "" {
		return fail(c, http.StatusBadRequest, "email/password required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusUnauthorized, "invalid credentials")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	if !verifyPassword(acct.PasswordHash, req.Password) {
		return fail(c, http.StatusUnauthorized, "invalid credentials")
	}

	access, refresh, err := h.Issuer.IssuePair(ctx, acct.ID, acct.Role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "issue tokens failed")
	}
	return ok(c, http.StatusOK, echo.Map{
		"user":    toAccountPart(acct),
		"access":  access,
		"refresh": refresh,
	})
}

// Refresh validates a refresh token by hash, revokes it and issues a
// new pair (rotation).
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshReq
	if err := c.Bind(&req); err != nil || strings.TrimSpace(req.RefreshToken) == "" {
		return fail(c, http.StatusBadRequest, "refresh_token required")
	}
	hash := hashRefresh(strings.TrimSpace(req.RefreshToken))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acctID, err := h.Tokens.ValidateRefresh(ctx, hash)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "invalid refresh")
	}
	_ = h.Tokens.RevokeByHash(ctx, hash)

	acct, err := h.Accounts.GetByID(ctx, acctID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "load account failed")
	}

	access, refresh, err := h.Issuer.IssuePair(ctx, acct.ID, acct.Role)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "issue tokens failed")
	}
	return ok(c, http.StatusOK, echo.Map{
		"user":    toAccountPart(acct),
		"access":  access,
		"refresh": refresh,
	})
}

// Logout revokes a specific refresh token passed in the body, or every
// token of the authenticated account when none is given.
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshReq
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if raw := strings.TrimSpace(req.RefreshToken); raw != "" {
		hash := hashRefresh(raw)
		if _, err := h.Tokens.ValidateRefresh(ctx, hash); err != nil {
			return fail(c, http.StatusUnauthorized, "invalid refresh")
		}
		if err := h.Tokens.RevokeByHash(ctx, hash); err != nil {
			return fail(c, http.StatusInternalServerError, "revoke failed")
		}
		return c.NoContent(http.StatusNoContent)
	}

	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusBadRequest, "refresh_token required")
	}
	if err := h.Tokens.RevokeAllForAccount(ctx, acctID); err != nil {
		return fail(c, http.StatusInternalServerError, "revoke failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated account's profile.
func (h *AuthHandler) Me(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByID(ctx, acctID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) || errors.Is(err, repository.ErrNotFound) {
			return fail(c, http.StatusNotFound, "not found")
		}
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return ok(c, http.StatusOK, echo.Map{"user": toAccountPart(acct)})
}

// UpdateMe updates the authenticated account's profile fields. Role
// and email are immutable here.
func (h *AuthHandler) UpdateMe(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
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
		return fail(c, http.StatusBadRequest, "name required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Accounts.Update(ctx, acctID, strings.TrimSpace(req.Name),
		strings.TrimSpace(req.Phone), strings.TrimSpace(req.Address)); err != nil {
		return failErr(c, err, "update failed")
	}
	acct, err := h.Accounts.GetByID(ctx, acctID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "query failed")
	}
	return ok(c, http.StatusOK, echo.Map{"user": toAccountPart(acct)})
}
