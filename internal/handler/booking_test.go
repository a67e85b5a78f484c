package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dfwpark/dfw-parking/internal/model"
	"github.com/dfwpark/dfw-parking/internal/queue"
	"github.com/dfwpark/dfw-parking/internal/repository"
)

// Function-field mocks so each test wires only the calls it expects.

type mockBookings struct {
	create       func(ctx context.Context, b *model.Booking) error
	getByID      func(ctx context.Context, id uint64) (model.Booking, error)
	list         func(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error)
	updateStatus func(ctx context.Context, id uint64, from, to, reason string) error
}

func (m *mockBookings) Create(ctx context.Context, b *model.Booking) error {
	return m.create(ctx, b)
}
func (m *mockBookings) GetByID(ctx context.Context, id uint64) (model.Booking, error) {
	return m.getByID(ctx, id)
}
func (m *mockBookings) List(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error) {
	return m.list(ctx, f)
}
func (m *mockBookings) UpdateStatus(ctx context.Context, id uint64, from, to, reason string) error {
	return m.updateStatus(ctx, id, from, to, reason)
}

type mockRooms struct {
	getByID func(ctx context.Context, id uint64) (model.Room, error)
}

func (m *mockRooms) GetByID(ctx context.Context, id uint64) (model.Room, error) {
	return m.getByID(ctx, id)
}

type mockSpots struct {
	getByID      func(ctx context.Context, id uint64) (model.ParkingSpot, error)
	setOccupancy func(ctx context.Context, spotID uint64, bookingID *uint64) error
}

func (m *mockSpots) GetByID(ctx context.Context, id uint64) (model.ParkingSpot, error) {
	return m.getByID(ctx, id)
}
func (m *mockSpots) SetOccupancy(ctx context.Context, spotID uint64, bookingID *uint64) error {
	return m.setOccupancy(ctx, spotID, bookingID)
}

func bookingContext(t *testing.T, method, target, body string, acctID uint64) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account_id", acctID)
	return c, rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateHotelBooking(t *testing.T) {
	var created *model.Booking
	bookings := &mockBookings{
		create: func(ctx context.Context, b *model.Booking) error {
			b.ID = 101
			created = b
			return nil
		},
	}
	rooms := &mockRooms{
		getByID: func(ctx context.Context, id uint64) (model.Room, error) {
			return model.Room{ID: id, HotelID: 5}, nil
		},
	}
	var events []queue.BookingEvent
	h := NewBookingHandler(bookings, rooms, &mockSpots{}, func(ctx context.Context, ev queue.BookingEvent) error {
		events = append(events, ev)
		return nil
	})

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{
		"type": "HOTEL",
		"hotel": {
			"hotelId": 5, "roomId": 9,
			"checkIn": "2026-03-10T15:00:00Z", "checkOut": "2026-03-13T11:00:00Z",
			"guests": 2, "amenities": ["BREAKFAST"]
		},
		"price": {"subtotalCents": 52500, "totalCents": 52500}
	}`, 17)
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, created)
	assert.Equal(t, uint64(17), created.AccountID)
	assert.Equal(t, model.StatusPending, created.Status)
	assert.NotEmpty(t, created.Reference)
	assert.Equal(t, int64(52500), created.Price.TotalCents)
	require.NotNil(t, created.Hotel)
	assert.Nil(t, created.Parking)

	require.Len(t, events, 1)
	assert.Equal(t, uint64(101), events[0].BookingID)
	assert.Equal(t, model.StatusPending, events[0].Status)
}

func TestCreateBookingRoomHotelMismatch(t *testing.T) {
	rooms := &mockRooms{
		getByID: func(ctx context.Context, id uint64) (model.Room, error) {
			return model.Room{ID: id, HotelID: 99}, nil
		},
	}
	h := NewBookingHandler(&mockBookings{}, rooms, &mockSpots{}, nil)

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{
		"type": "HOTEL",
		"hotel": {
			"hotelId": 5, "roomId": 9,
			"checkIn": "2026-03-10T15:00:00Z", "checkOut": "2026-03-13T11:00:00Z"
		}
	}`, 17)
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "room does not belong to hotel", body["error"])
}

func TestCreateBookingInvalidType(t *testing.T) {
	h := NewBookingHandler(&mockBookings{}, &mockRooms{}, &mockSpots{}, nil)
	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{"type":"CRUISE"}`, 17)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBookingMissingHotelLeg(t *testing.T) {
	h := NewBookingHandler(&mockBookings{}, &mockRooms{}, &mockSpots{}, nil)
	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{"type":"HOTEL"}`, 17)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "hotel leg incomplete", body["error"])
}

func TestCreateParkingBookingMarksSpotOccupied(t *testing.T) {
	bookings := &mockBookings{
		create: func(ctx context.Context, b *model.Booking) error {
			b.ID = 202
			return nil
		},
	}
	var occupiedSpot uint64
	var occupiedBy *uint64
	spots := &mockSpots{
		getByID: func(ctx context.Context, id uint64) (model.ParkingSpot, error) {
			return model.ParkingSpot{ID: id, LotID: 3}, nil
		},
		setOccupancy: func(ctx context.Context, spotID uint64, bookingID *uint64) error {
			occupiedSpot = spotID
			occupiedBy = bookingID
			return nil
		},
	}
	h := NewBookingHandler(bookings, &mockRooms{}, spots, nil)

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{
		"type": "PARKING",
		"parking": {
			"lotId": 3, "spotId": 44,
			"startDate": "2026-03-10T08:00:00Z", "endDate": "2026-03-10T18:00:00Z",
			"vehiclePlate": "TX-4821"
		},
		"price": {"subtotalCents": 8000, "totalCents": 8000}
	}`, 17)
	require.NoError(t, h.CreateBooking(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, uint64(44), occupiedSpot)
	require.NotNil(t, occupiedBy)
	assert.Equal(t, uint64(202), *occupiedBy)
}

func TestCreateParkingBookingRequiresPlate(t *testing.T) {
	h := NewBookingHandler(&mockBookings{}, &mockRooms{}, &mockSpots{}, nil)
	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{
		"type": "PARKING",
		"parking": {
			"lotId": 3, "spotId": 44,
			"startDate": "2026-03-10T08:00:00Z", "endDate": "2026-03-10T18:00:00Z"
		}
	}`, 17)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "vehicle plate required", body["error"])
}

func TestGetBookingHidesForeignRecords(t *testing.T) {
	bookings := &mockBookings{
		getByID: func(ctx context.Context, id uint64) (model.Booking, error) {
			return model.Booking{ID: id, AccountID: 99}, nil
		},
	}
	h := NewBookingHandler(bookings, &mockRooms{}, &mockSpots{}, nil)

	c, rec := bookingContext(t, http.MethodGet, "/v1/bookings/7", "", 17)
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.GetBooking(c))

	// someone else's booking looks like it does not exist
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListMyBookingsScopedToAccount(t *testing.T) {
	var gotFilter repository.BookingFilter
	bookings := &mockBookings{
		list: func(ctx context.Context, f repository.BookingFilter) ([]model.Booking, error) {
			gotFilter = f
			return []model.Booking{{ID: 1, AccountID: f.AccountID}}, nil
		},
	}
	h := NewBookingHandler(bookings, &mockRooms{}, &mockSpots{}, nil)

	c, rec := bookingContext(t, http.MethodGet, "/v1/my-bookings?status=CONFIRMED", "", 17)
	require.NoError(t, h.ListMyBookings(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(17), gotFilter.AccountID)
	assert.Equal(t, "CONFIRMED", gotFilter.Status)
}

func TestCancelBookingFreesSpot(t *testing.T) {
	spotID := uint64(44)
	bookings := &mockBookings{
		getByID: func(ctx context.Context, id uint64) (model.Booking, error) {
			return model.Booking{
				ID: id, AccountID: 17, Type: model.BookingParking,
				Status:  model.StatusConfirmed,
				Parking: &model.ParkingLeg{LotID: 3, SpotID: spotID},
			}, nil
		},
		updateStatus: func(ctx context.Context, id uint64, from, to, reason string) error {
			assert.Equal(t, model.StatusConfirmed, from)
			assert.Equal(t, model.StatusCancelled, to)
			assert.Equal(t, "flight moved", reason)
			return nil
		},
	}
	freed := false
	spots := &mockSpots{
		setOccupancy: func(ctx context.Context, id uint64, bookingID *uint64) error {
			assert.Equal(t, spotID, id)
			assert.Nil(t, bookingID, "cancel must free the spot")
			freed = true
			return nil
		},
	}
	var events []queue.BookingEvent
	h := NewBookingHandler(bookings, &mockRooms{}, spots, func(ctx context.Context, ev queue.BookingEvent) error {
		events = append(events, ev)
		return nil
	})

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings/7/cancel", `{"reason":"flight moved"}`, 17)
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.CancelBooking(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, freed)
	require.Len(t, events, 1)
	assert.Equal(t, model.StatusCancelled, events[0].Status)
	assert.Equal(t, "flight moved", events[0].Reason)
}

func TestCancelBookingRejectsBadTransition(t *testing.T) {
	bookings := &mockBookings{
		getByID: func(ctx context.Context, id uint64) (model.Booking, error) {
			return model.Booking{ID: id, AccountID: 17, Status: model.StatusCheckedIn}, nil
		},
		updateStatus: func(ctx context.Context, id uint64, from, to, reason string) error {
			return repository.ErrBadTransition
		},
	}
	h := NewBookingHandler(bookings, &mockRooms{}, &mockSpots{}, nil)

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings/7/cancel", `{"reason":"late"}`, 17)
	c.SetParamNames("id")
	c.SetParamValues("7")
	require.NoError(t, h.CancelBooking(c))

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
}

func TestPublishFailureDoesNotFailRequest(t *testing.T) {
	bookings := &mockBookings{
		create: func(ctx context.Context, b *model.Booking) error { b.ID = 1; return nil },
	}
	rooms := &mockRooms{
		getByID: func(ctx context.Context, id uint64) (model.Room, error) {
			return model.Room{ID: id, HotelID: 5}, nil
		},
	}
	h := NewBookingHandler(bookings, rooms, &mockSpots{}, func(ctx context.Context, ev queue.BookingEvent) error {
		return context.DeadlineExceeded
	})

	c, rec := bookingContext(t, http.MethodPost, "/v1/bookings", `{
		"type": "HOTEL",
		"hotel": {
			"hotelId": 5, "roomId": 9,
			"checkIn": "`+time.Now().UTC().Format(time.RFC3339)+`",
			"checkOut": "`+time.Now().UTC().Add(24*time.Hour).Format(time.RFC3339)+`"
		}
	}`, 17)
	require.NoError(t, h.CreateBooking(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
}
