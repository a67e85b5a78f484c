package handler

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/queue"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

// Storage surface the booking endpoints need. The concrete repos
// satisfy these; tests substitute mocks.
type bookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id uint64) (model.Booking, error)
	List(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error)
	UpdateStatus(ctx context.Context, id uint64, from, to, reason string) error
}

type roomGetter interface {
	GetByID(ctx context.Context, id uint64) (model.Room, error)
}

type spotStore interface {
	GetByID(ctx context.Context, id uint64) (model.ParkingSpot, error)
	SetOccupancy(ctx context.Context, spotID uint64, bookingID *uint64) error
}

// BookingHandler serves the customer-facing booking endpoints. Publish
// may be nil, in which case events are dropped; publish failures are
// logged and never fail the request.
type BookingHandler struct {
	Bookings bookingStore
	Rooms    roomGetter
	Spots    spotStore
	Publish  func(ctx context.Context, ev queue.BookingEvent) error
}

func NewBookingHandler(b bookingStore, r roomGetter, s spotStore, publish func(context.Context, queue.BookingEvent) error) *BookingHandler {
	return &BookingHandler{Bookings: b, Rooms: r, Spots: s, Publish: publish}
}

// ----- DTOs -----

type hotelLegReq struct {
	HotelID   uint64    `json:"hotelId"`
	RoomID    uint64    `json:"roomId"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Guests    uint16    `json:"guests"`
	Amenities []string  `json:"amenities"`
}

type parkingLegReq struct {
	LotID        uint64    `json:"lotId"`
	SpotID       uint64    `json:"spotId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	VehiclePlate string    `json:"vehiclePlate"`
	VehicleModel string    `json:"vehicleModel"`
}

type pricingReq struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	FeeCents      int64 `json:"feeCents"`
	DiscountCents int64 `json:"discountCents"`
	TotalCents    int64 `json:"totalCents"`
}

type createBookingReq struct {
	Type    string         `json:"type"`
	Hotel   *hotelLegReq   `json:"hotel"`
	Parking *parkingLegReq `json:"parking"`
	Price   pricingReq     `json:"price"`
}

// CreateBooking handles POST /v1/bookings. The wizard submits one
// assembled record; the pricing breakdown is stored as received. The
// handler checks the referenced room and spot exist and marks the spot
// occupied, but performs no atomic availability reservation.
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	var req createBookingReq
	if err := c.Bind(&req); err != nil {
		return fail(c, http.StatusBadRequest, "invalid body")
	}

	b := model.Booking{
		Reference: uuid.NewString(),
		AccountID: acctID,
		Type:      req.Type,
		Status:    model.StatusPending,
		Price: model.Pricing{
			SubtotalCents: req.Price.SubtotalCents,
			TaxCents:      req.Price.TaxCents,
			FeeCents:      req.Price.FeeCents,
			DiscountCents: req.Price.DiscountCents,
			TotalCents:    req.Price.TotalCents,
		},
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	wantHotel := req.Type == model.BookingHotel || req.Type == model.BookingBoth
	wantParking := req.Type == model.BookingParking || req.Type == model.BookingBoth
	if !wantHotel && !wantParking {
		return fail(c, http.StatusBadRequest, "invalid booking type")
	}

	if wantHotel {
		if req.Hotel == nil || req.Hotel.HotelID == 0 || req.Hotel.RoomID == 0 {
			return fail(c, http.StatusBadRequest, "hotel leg incomplete")
		}
		if !req.Hotel.CheckOut.After(req.Hotel.CheckIn) {
			return fail(c, http.StatusBadRequest, "check-out must be after check-in")
		}
		room, err := h.Rooms.GetByID(ctx, req.Hotel.RoomID)
		if err != nil {
			return failErr(c, err, "db error")
		}
		if room.HotelID != req.Hotel.HotelID {
			return fail(c, http.StatusBadRequest, "room does not belong to hotel")
		}
		b.Hotel = &model.HotelLeg{
			HotelID:   req.Hotel.HotelID,
			RoomID:    req.Hotel.RoomID,
			CheckIn:   req.Hotel.CheckIn,
			CheckOut:  req.Hotel.CheckOut,
			Guests:    req.Hotel.Guests,
			Amenities: req.Hotel.Amenities,
		}
	}
	if wantParking {
		if req.Parking == nil || req.Parking.LotID == 0 || req.Parking.SpotID == 0 {
			return fail(c, http.StatusBadRequest, "parking leg incomplete")
		}
		if req.Parking.VehiclePlate == "" {
			return fail(c, http.StatusBadRequest, "vehicle plate required")
		}
		if !req.Parking.EndDate.After(req.Parking.StartDate) {
			return fail(c, http.StatusBadRequest, "end date must be after start date")
		}
		spot, err := h.Spots.GetByID(ctx, req.Parking.SpotID)
		if err != nil {
			return failErr(c, err, "db error")
		}
		if spot.LotID != req.Parking.LotID {
			return fail(c, http.StatusBadRequest, "spot does not belong to lot")
		}
		b.Parking = &model.ParkingLeg{
			LotID:        req.Parking.LotID,
			SpotID:       req.Parking.SpotID,
			StartDate:    req.Parking.StartDate,
			EndDate:      req.Parking.EndDate,
			VehiclePlate: req.Parking.VehiclePlate,
			VehicleModel: req.Parking.VehicleModel,
		}
	}

	if err := h.Bookings.Create(ctx, &b); err != nil {
		return fail(c, http.StatusInternalServerError, "create booking failed")
	}
	if b.Parking != nil {
		if err := h.Spots.SetOccupancy(ctx, b.Parking.SpotID, &b.ID); err != nil {
			log.Printf("booking: mark spot %d occupied failed: %v", b.Parking.SpotID, err)
		}
	}
	h.publish(ctx, b, "")
	return ok(c, http.StatusCreated, echo.Map{"booking": b})
}

// ListMyBookings handles GET /v1/my-bookings.
func (h *BookingHandler) ListMyBookings(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	items, err := h.Bookings.List(c.Request().Context(), repository.BookingFilter{
		AccountID: acctID,
		Status:    c.QueryParam("status"),
	})
	if err != nil {
		return fail(c, http.StatusInternalServerError, "db error")
	}
	return ok(c, http.StatusOK, echo.Map{"bookings": items})
}

// GetBooking handles GET /v1/bookings/:id. Customers may only read
// their own bookings.
func (h *BookingHandler) GetBooking(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	b, err := h.Bookings.GetByID(c.Request().Context(), id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if b.AccountID != acctID {
		// Hide the existence of other accounts' bookings.
		return fail(c, http.StatusNotFound, "not found")
	}
	return ok(c, http.StatusOK, echo.Map{"booking": b})
}

// CancelBooking handles POST /v1/bookings/:id/cancel. Cancellation is
// a status transition, not a delete; the record stays with its reason.
func (h *BookingHandler) CancelBooking(c echo.Context) error {
	acctID, err := accountID(c)
	if err != nil {
		return fail(c, http.StatusUnauthorized, "unauthorized")
	}
	id, err := pathID(c, "id")
	if err != nil {
		return fail(c, http.StatusBadRequest, "invalid id")
	}
	var req struct {
		Reason string `json:"reason"`
	}
	_ = c.Bind(&req)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	b, err := h.Bookings.GetByID(ctx, id)
	if err != nil {
		return failErr(c, err, "db error")
	}
	if b.AccountID != acctID {
		return fail(c, http.StatusNotFound, "not found")
	}
	if err := h.Bookings.UpdateStatus(ctx, id, b.Status, model.StatusCancelled, req.Reason); err != nil {
		return failErr(c, err, "cancel failed")
	}
	if b.Parking != nil {
		if err := h.Spots.SetOccupancy(ctx, b.Parking.SpotID, nil); err != nil {
			log.Printf("booking: free spot %d failed: %v", b.Parking.SpotID, err)
		}
	}
	b.Status = model.StatusCancelled
	b.CancelReason = req.Reason
	h.publish(ctx, b, req.Reason)
	return ok(c, http.StatusOK, echo.Map{"booking": b})
}

func (h *BookingHandler) publish(ctx context.Context, b model.Booking, reason string) {
	if h.Publish == nil {
		return
	}
	ev := queue.BookingEvent{
		BookingID:  b.ID,
		Reference:  b.Reference,
		AccountID:  b.AccountID,
		Type:       b.Type,
		Status:     b.Status,
		TotalCents: b.Price.TotalCents,
		Reason:     reason,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := h.Publish(ctx, ev); err != nil {
		log.Printf("booking: publish event for %s failed: %v", b.Reference, err)
	}
}
