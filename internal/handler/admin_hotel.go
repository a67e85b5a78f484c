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

// HotelAdminHandler serves the hotel-admin and super-admin hotel
// panels. A HOTEL_ADMIN manages exactly the one hotel assigned to it;
// a SUPER_ADMIN addresses any hotel by path id.
type HotelAdminHandler struct {
	Hotels   *repository.HotelRepo
	Rooms    *repository.RoomRepo
	Accounts *repository.AccountRepo
}

func NewHotelAdminHandler(h *repository.HotelRepo, r *repository.RoomRepo, a *repository.AccountRepo) *HotelAdminHandler {
	return &HotelAdminHandler{Hotels: h, Rooms: r, Accounts: a}
}

type hotelReq struct {
	Name         string   `json:"name"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Country      string   `json:"country"`
	Description  string   `json:"description"`
	Stars        uint8    `json:"stars"`
	Amenities    []string `json:"amenities"`
}

// CreateHotel handles POST /v1/admin/hotels (SUPER_ADMIN).
func (h *HotelAdminHandler) CreateHotel(c echo.Context) error {
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	hotel := model.Hotel{
		Name:         strings.TrimSpace(req.Name),
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		City:         req.City,
		State:        req.State,
		Zip:          req.Zip,
		Country:      req.Country,
		Description:  req.Description,
		Stars:        req.Stars,
		Amenities:    req.Amenities,
	}
	if err := h.Hotels.Create(c.Request().Context(), &hotel); err != nil {
		return failErr(c, err, "create hotel failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"hotel": hotel})
}

// MyHotel handles GET /v1/admin/my-hotel (HOTEL_ADMIN).
func (h *HotelAdminHandler) MyHotel(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	hotel, err := h.Hotels.GetByAdmin(c.Request().Context(), acctID)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"hotel": hotel})
}

// UpdateHotel handles PUT /v1/admin/hotels/:id. A HOTEL_ADMIN may only
// touch its own hotel.
func (h *HotelAdminHandler) UpdateHotel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hotel, err := h.authorizedHotel(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	var req hotelReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if strings.TrimSpace(req.Name) == "" {
		return fail(c, http.StatusBadRequest, "name is required")
	}
	hotel.Name = strings.TrimSpace(req.Name)
	hotel.AddressLine1 = req.AddressLine1
	hotel.AddressLine2 = req.AddressLine2
	hotel.City = req.City
	hotel.State = req.State
	hotel.Zip = req.Zip
	hotel.Country = req.Country
	hotel.Description = req.Description
	hotel.Stars = req.Stars
	hotel.Amenities = req.Amenities

	if err := h.Hotels.Update(ctx, &hotel); err != nil {
		return failErr(c, err, "update failed")
	}
	return ok(c, http.StatusOK, echo.Map{"hotel": hotel})
}

// DeleteHotel handles DELETE /v1/admin/hotels/:id (SUPER_ADMIN).
func (h *HotelAdminHandler) DeleteHotel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if err := h.Hotels.Delete(c.Request().Context(), id); err != nil {
		return failErr(c, err, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// AssignAdmin handles POST /v1/admin/hotels/:id/admin (SUPER_ADMIN).
// The target account must carry the HOTEL_ADMIN role; single-admin
// ownership is enforced by the repository.
func (h *HotelAdminHandler) AssignAdmin(c echo.Context) error {
	hotelID, err := pathID(c, "id")
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
	if acct.Role != model.RoleHotelAdmin {
		return fail(c, http.StatusUnprocessableEntity, "account is not a hotel admin")
	}
	if err := h.Hotels.AssignAdmin(ctx, hotelID, req.AccountID); err != nil {
		return failErr(c, err, "assign failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// ----- rooms -----

type roomReq struct {
	Type       string   `json:"type"`
	PriceCents int64    `json:"priceCents"`
	Capacity   uint16   `json:"capacity"`
	Available  uint16   `json:"available"`
	Amenities  []string `json:"amenities"`
}

// CreateRoom handles POST /v1/admin/hotels/:id/rooms.
func (h *HotelAdminHandler) CreateRoom(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hotel, err := h.authorizedHotel(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	if req.Type == "" || req.PriceCents <= 0 {
		return fail(c, http.StatusBadRequest, "type and positive price required")
	}
	room := model.Room{
		HotelID:    hotel.ID,
		Type:       req.Type,
		PriceCents: req.PriceCents,
		Capacity:   req.Capacity,
		Available:  req.Available,
		Amenities:  req.Amenities,
	}
	if err := h.Rooms.Create(ctx, &room); err != nil {
		return fail(c, http.StatusInternalServerError, "create room failed")
	}
	return ok(c, http.StatusCreated, echo.Map{"room": room})
}

// UpdateRoom handles PUT /v1/admin/hotels/:id/rooms/:roomId.
func (h *HotelAdminHandler) UpdateRoom(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hotel, err := h.authorizedHotel(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid room id")
	}
	var req roomReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}
	room := model.Room{
		ID:         roomID,
		HotelID:    hotel.ID,
		Type:       req.Type,
		PriceCents: req.PriceCents,
		Capacity:   req.Capacity,
		Available:  req.Available,
		Amenities:  req.Amenities,
	}
	if err := h.Rooms.Update(ctx, &room); err != nil {
		return failErr(c, err, "update failed")
	}
	return ok(c, http.StatusOK, echo.Map{"room": room})
}

// DeleteRoom handles DELETE /v1/admin/hotels/:id/rooms/:roomId.
func (h *HotelAdminHandler) DeleteRoom(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	hotel, err := h.authorizedHotel(ctx, c)
	if err != nil {
		return failErr(c, err, "db error")
	}
	roomID, err := pathID(c, "roomId")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid room id")
	}
	if err := h.Rooms.Delete(ctx, hotel.ID, roomID); err != nil {
		return failErr(c, err, "delete failed")
	}
	return c.NoContent(http.StatusNoContent)
}

// authorizedHotel resolves the hotel a request may operate on. Super
// admins address hotels by path id; hotel admins always get their own
// hotel regardless of the path, so a crafted id cannot cross hotels.
func (h *HotelAdminHandler) authorizedHotel(ctx context.Context, c echo.Context) (model.Hotel, error) {
	role, _ := c.Get("role").(string)
	if role == model.RoleSuperAdmin {
		id, err := pathID(c, "id")
		if err != nil {
			return model.Hotel{}, repository.ErrNotFound
		}
		return h.Hotels.GetByID(ctx, id)
	}
	acctID, err := accountID(c)
	if err != nil {
		return model.Hotel{}, repository.ErrForbidden
	}
	return h.Hotels.GetByAdmin(ctx, acctID)
}
