package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/repository"
)

// PublicHandler exposes the unauthenticated browse endpoints: hotels
// with their rooms, and parking lots with their spots. Guests use
// these to shop before registering.
type PublicHandler struct {
	Hotels *repository.HotelRepo
	Rooms  *repository.RoomRepo
	Lots   *repository.LotRepo
	Spots  *repository.SpotRepo
}

func NewPublicHandler(h *repository.HotelRepo, r *repository.RoomRepo, l *repository.LotRepo, s *repository.SpotRepo) *PublicHandler {
	return &PublicHandler{Hotels: h, Rooms: r, Lots: l, Spots: s}
}

// ListHotels handles GET /v1/hotels. Optional ?city= filter.
func (h *PublicHandler) ListHotels(c echo.Context) error {
	hotels, err := h.Hotels.List(c.Request().Context(), c.QueryParam("city"))
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"hotels": hotels})
}

// GetHotel handles GET /v1/hotels/:id.
func (h *PublicHandler) GetHotel(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	hotel, err := h.Hotels.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"hotel": hotel})
}

// ListRooms handles GET /v1/hotels/:id/rooms.
func (h *PublicHandler) ListRooms(c echo.Context) error {
	hotelID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if _, err := h.Hotels.GetByID(c.Request().Context(), hotelID); err != nil {
		return failErr(c, err, "db error")
	}
	rooms, err := h.Rooms.ListByHotel(c.Request().Context(), hotelID)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"rooms": rooms})
}

// ListLots handles GET /v1/parking-lots.
func (h *PublicHandler) ListLots(c echo.Context) error {
	lots, err := h.Lots.List(c.Request().Context())
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"parkingLots": lots})
}

// GetLot handles GET /v1/parking-lots/:id.
func (h *PublicHandler) GetLot(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	lot, err := h.Lots.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"parkingLot": lot})
}

// ListSpots handles GET /v1/parking-lots/:id/spots. Use ?available=true
// to filter to free spots.
func (h *PublicHandler) ListSpots(c echo.Context) error {
	lotID, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	if _, err := h.Lots.GetByID(c.Request().Context(), lotID); err != nil {
		return failErr(c, err, "db error")
	}
	onlyAvail := c.QueryParam("available") == "true"
	spots, err := h.Spots.ListByLot(c.Request().Context(), lotID, onlyAvail)
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"spots": spots})
}
