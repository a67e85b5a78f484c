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

// ParkingAdminHandler mirrors the hotel panel for parking lots: a
// PARKING_ADMIN manages its assigned lot, a SUPER_ADMIN any lot.
type ParkingAdminHandler struct {
	Lots     *repository.LotRepo
	Spots    *repository.SpotRepo
	Accounts *repository.AccountRepo
}

func NewParkingAdminHandler(l *repository.LotRepo, s *repository.SpotRepo, a *repository.AccountRepo) *ParkingAdminHandler {
	return &ParkingAdminHandler{Lots: l, Spots: s, Accounts: a}
}

type lotReq struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	TotalSpots       uint32   `json:"totalSpots"`
	HourlyRateCents  int64    `json:"hourlyRateCents"`
	DailyRateCents   int64    `json:"dailyRateCents"`
	WeeklyRateCents  int64    `json:"weeklyRateCents"`
	MonthlyRateCents int64    `json:"monthlyRateCents"`
	Features         []string `json:"features"`
}

// CreateLot handles POST /v1/admin/lots (SUPER_ADMIN).
func (h *ParkingAdminHandler) CreateLot(c echo.Context) error {
	var req lotReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	lot := model.ParkingLot{
		Name:             strings.TrimSpace(req.Name),
		Address:          req.Address,
		TotalSpots:       req.TotalSpots,
		HourlyRateCents:  req.HourlyRateCents,
		DailyRateCents:   req.DailyRateCents,
		WeeklyRateCents:  req.WeeklyRateCents,
		MonthlyRateCents: req.MonthlyRateCents,
		Features:         req.Features,
	}
	if err := h.Lots.Create(c.Request().Context(), &lot); err != nil {
		return failErr(c, err, "create lot failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"parkingLot": lot})
}

// MyLot handles GET /v1/admin/my-lot (PARKING_ADMIN).
func (h *ParkingAdminHandler) MyLot(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	lot, err := h.Lots.GetByAdmin(c.Request().Context(), acctID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"parkingLot": lot})
}

// UpdateLot handles PUT /v1/admin/lots/:id.
func (h *ParkingAdminHandler) UpdateLot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lot, err := h.authorizedLot(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	var req lotReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	lot.Name = strings.TrimSpace(req.Name)
	lot.Address = req.Address
	lot.TotalSpots = req.TotalSpots
	lot.HourlyRateCents = req.HourlyRateCents
	lot.DailyRateCents = req.DailyRateCents
	lot.WeeklyRateCents = req.WeeklyRateCents
	lot.MonthlyRateCents = req.MonthlyRateCents
	lot.Features = req.Features

	if err := h.Lots.Update(ctx, &lot); err != nil {
		return failErr(c, err, "update failed")
	}
	return ok(c, http.StatusOK, echo.Map{"parkingLot": lot})
}

// DeleteLot handles DELETE /v1/admin/lots/:id (SUPER_ADMIN).
func (h *ParkingAdminHandler) DeleteLot(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Lots.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignAdmin handles POST /v1/admin/lots/:id/admin (SUPER_ADMIN).
func (h *ParkingAdminHandler) AssignAdmin(c echo.Context) error {
	lotID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		AccountID uint64 `json:"accountId"`
	}
	if err := c.Bind(&req); err != nil || req.AccountID == 0 {
		return fail(c, http.StatusBadRequest, "accountId required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	acct, err := h.Accounts.GetByID(ctx, req.AccountID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if acct.Role != model.RoleParkingAdmin {
		return fail(c, http.StatusUnprocessableEntity, "account is not a parking admin")
	}
	if err := h.Lots.AssignAdmin(ctx, lotID, req.AccountID); err != nil {
		return failErr(c, err, "assign failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- spots -----

type spotReq struct {
	Number  string `json:"number"`
	Section string `json:"section"`
	Type    string `json:"type"`
}

// CreateSpot handles POST /v1/admin/lots/:id/spots.
func (h *ParkingAdminHandler) CreateSpot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lot, err := h.authorizedLot(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	var req spotReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Number == "" {
		return fail(c, http.StatusBadRequest, "number is required")
	}
	spot := model.ParkingSpot{
		LotID:     lot.ID,
		Number:    req.Number,
		Section:   req.Section,
		Type:      req.Type,
		Available: true,
	}
	if err := h.Spots.Create(ctx, &spot); err != nil {
		return failErr(c, err, "create spot failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"spot": spot})
}

// UpdateSpot handles PUT /v1/admin/lots/:id/spots/:spotId.
func (h *ParkingAdminHandler) UpdateSpot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lot, err := h.authorizedLot(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	spotID, err := pathID(c, "spotId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	var req spotReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	spot, err := h.Spots.GetByID(ctx, spotID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if spot.LotID != lot.ID {
		return fail(c, http.StatusNotFound, "spot not found")
	}
	spot.Number = req.Number
	spot.Section = req.Section
	spot.Type = req.Type
	if err := h.Spots.Update(ctx, &spot); err != nil {
		return failErr(c, err, "update failed")
	}
	return ok(c, http.StatusOK, echo.Map{"spot": spot})
}

// DeleteSpot handles DELETE /v1/admin/lots/:id/spots/:spotId. An
// occupied spot cannot be removed.
func (h *ParkingAdminHandler) DeleteSpot(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	lot, err := h.authorizedLot(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	spotID, err := pathID(c, "spotId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid spot id")
	}
	spot, err := h.Spots.GetByID(ctx, spotID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if spot.LotID != lot.ID {
		return fail(c, http.StatusNotFound, "spot not found")
	}
	if spot.BookingID != nil {
		return fail(c, http.StatusConflict, "spot is occupied")
	}
	if err := h.Spots.Delete(ctx, lot.ID, spotID); err != nil {
		return failErr(c, err, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ParkingAdminHandler) authorizedLot(ctx context.Context, c echo.Context) (model.ParkingLot, error) {
	role, _ := c.Get("role").(string)
	if role == model.RoleSuperAdmin {
		id, err := pathID(c, "id")
		if err != nil {
			return model.ParkingLot{}, repository.ErrNotFound
		}
		return h.Lots.GetByID(ctx, id)
	}
	acctID, err := accountID(c)
	if err != nil {
		return model.ParkingLot{}, repository.ErrForbidden
	}
	return h.Lots.GetByAdmin(ctx, acctID)
}
