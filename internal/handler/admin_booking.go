package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/queue"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

type hotelByAdmin interface {
	GetByAdmin(ctx context.Context, accountID uint64) (model.Hotel, error)
}

type lotByAdmin interface {
	GetByAdmin(ctx context.Context, accountID uint64) (model.ParkingLot, error)
}

// AdminBookingHandler serves the operator side of bookings: filtered
// lists and status transitions. Hotel and parking admins only ever see
// bookings touching their own property; the scope filter is forced
// server-side, query params cannot widen it.
type AdminBookingHandler struct {
	Bookings bookingStore
	Spots    spotStore
	Hotels   hotelByAdmin
	Lots     lotByAdmin
	Publish  func(ctx context.Context, ev queue.BookingEvent) error
}

func NewAdminBookingHandler(b bookingStore, s spotStore, h hotelByAdmin, l lotByAdmin, publish func(context.Context, queue.BookingEvent) error) *AdminBookingHandler {
	return &AdminBookingHandler{Bookings: b, Spots: s, Hotels: h, Lots: l, Publish: publish}
}

// List handles GET /v1/admin/bookings. Supported query params:
// status, type, accountId, from, to (RFC 3339).
func (h *AdminBookingHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	f := repository.BookingFilter{
		Status: c.QueryParam("status"),
		Type:   c.QueryParam("type"),
	}
	if v := c.QueryParam("accountId"); v != "" {
		id, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid accountId")
		}
		f.AccountID = id
	}
	if v := c.QueryParam("from"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid from")
		}
		f.From = t
	}
	if v := c.QueryParam("to"); v != "" {
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fail(c, http.StatusBadRequest, "invalid to")
		}
		f.To = t
	}

	if err := h.scopeFilter(ctx, c, &f); err != nil {
		return failErr(c, err, "db error")
	}

	list, err := h.Bookings.List(ctx, f)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"bookings": list})
}

// Get handles GET /v1/admin/bookings/:id.
func (h *AdminBookingHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.scopedBooking(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"booking": b})
}

// UpdateStatus handles PATCH /v1/admin/bookings/:id/status. The
// transition table is enforced in storage; an illegal move comes back
// as a conflict. Cancelling or checking out frees a held spot.
func (h *AdminBookingHandler) UpdateStatus(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	var req struct {
		Status string `json:"status"`
		Reason string `json:"reason"`
	}
	if err := c.Bind(&req); err != nil || req.Status == "" {
		return fail(c, http.StatusBadRequest, "status required")
	}
	if req.Status == model.StatusCancelled && req.Reason == "" {
		return fail(c, http.StatusBadRequest, "reason required to cancel")
	}

	b, err := h.scopedBooking(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if err := h.Bookings.UpdateStatus(ctx, b.ID, b.Status, req.Status, req.Reason); err != nil {
		return failErr(c, err, "update failed")
	}

	if b.Parking != nil && b.Parking.SpotID != 0 &&
		(req.Status == model.StatusCancelled || req.Status == model.StatusCheckedOut) {
		if err := h.Spots.SetOccupancy(ctx, b.Parking.SpotID, nil); err != nil {
			c.Logger().Errorf("free spot %d: %v", b.Parking.SpotID, err)
		}
	}

	if h.Publish != nil {
		ev := queue.BookingEvent{
			BookingID:  b.ID,
			Reference:  b.Reference,
			AccountID:  b.AccountID,
			Type:       b.Type,
			Status:     req.Status,
			TotalCents: b.Price.TotalCents,
			Reason:     req.Reason,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := h.Publish(ctx, ev); err != nil {
			c.Logger().Errorf("publish event for %s: %v", b.Reference, err)
		}
	}

	b, err = h.Bookings.GetByID(ctx, b.ID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"booking": b})
}

// scopeFilter pins the list filter to the caller's property for
// property admins. Super admins and support see everything.
func (h *AdminBookingHandler) scopeFilter(ctx context.Context, c echo.Context, f *repository.BookingFilter) error {
	role, _ := c.Get("role").(string)
	acctID, err := accountID(c)
	if err != nil {
		return repository.ErrForbidden
	}
	switch role {
	case model.RoleHotelAdmin:
		hotel, err := h.Hotels.GetByAdmin(ctx, acctID)
		if err != nil {
			return err
		}
		f.HotelID = hotel.ID
	case model.RoleParkingAdmin:
		lot, err := h.Lots.GetByAdmin(ctx, acctID)
		if err != nil {
			return err
		}
		f.LotID = lot.ID
	}
	return nil
}

// scopedBooking loads a booking and verifies it falls inside the
// caller's scope. Out-of-scope bookings read as not found.
func (h *AdminBookingHandler) scopedBooking(ctx context.Context, c echo.Context) (model.Booking, error) {
	id, err := pathID(c, "id")
	if err != nil {
		return model.Booking{}, repository.ErrNotFound
	}
	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return model.Booking{}, err
	}

	role, _ := c.Get("role").(string)
	acctID, aerr := accountID(c)
	if aerr != nil {
		return model.Booking{}, repository.ErrForbidden
	}
	switch role {
	case model.RoleHotelAdmin:
		hotel, err := h.Hotels.GetByAdmin(ctx, acctID)
		if err != nil {
			return model.Booking{}, err
		}
		if b.Hotel == nil || b.Hotel.HotelID != hotel.ID {
			return model.Booking{}, repository.ErrNotFound
		}
	case model.RoleParkingAdmin:
		lot, err := h.Lots.GetByAdmin(ctx, acctID)
		if err != nil {
			return model.Booking{}, err
		}
		if b.Parking == nil || b.Parking.LotID != lot.ID {
			return model.Booking{}, repository.ErrNotFound
		}
	}
	return b, nil
}
