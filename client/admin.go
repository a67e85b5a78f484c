package client

import (
	"context"
	"fmt"
	"net/url"
)

// Admin surface. The server enforces roles; these methods just shape
// the requests.

type HotelInput struct {
	Name         string   `json:"name"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Country      string   `json:"country"`
	Description  string   `json:"description,omitempty"`
	Stars        uint8    `json:"stars"`
	Amenities    []string `json:"amenities,omitempty"`
}

type LotInput struct {
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	TotalSpots       uint32   `json:"totalSpots"`
	HourlyRateCents  int64    `json:"hourlyRateCents"`
	DailyRateCents   int64    `json:"dailyRateCents"`
	WeeklyRateCents  int64    `json:"weeklyRateCents"`
	MonthlyRateCents int64    `json:"monthlyRateCents"`
	Features         []string `json:"features,omitempty"`
}

type RoomInput struct {
	Type       string   `json:"type"`
	PriceCents int64    `json:"priceCents"`
	Capacity   uint16   `json:"capacity"`
	Available  uint16   `json:"available"`
	Amenities  []string `json:"amenities,omitempty"`
}

type SpotInput struct {
	Number  string `json:"number"`
	Section string `json:"section,omitempty"`
	Type    string `json:"type,omitempty"`
}

func (c *Client) CreateHotel(ctx context.Context, in HotelInput) (Hotel, error) {
	var out struct {
		Hotel Hotel `json:"hotel"`
	}
	err := c.post(ctx, "/v1/admin/hotels", in, &out)
	return out.Hotel, err
}

func (c *Client) MyHotel(ctx context.Context) (Hotel, error) {
	var out struct {
		Hotel Hotel `json:"hotel"`
	}
	err := c.get(ctx, "/v1/admin/my-hotel", nil, &out)
	return out.Hotel, err
}

func (c *Client) UpdateHotel(ctx context.Context, id uint64, in HotelInput) (Hotel, error) {
	var out struct {
		Hotel Hotel `json:"hotel"`
	}
	err := c.put(ctx, fmt.Sprintf("/v1/admin/hotels/%d", id), in, &out)
	return out.Hotel, err
}

func (c *Client) AssignHotelAdmin(ctx context.Context, hotelID, accountID uint64) error {
	return c.post(ctx, fmt.Sprintf("/v1/admin/hotels/%d/admin", hotelID),
		map[string]uint64{"accountId": accountID}, nil)
}

func (c *Client) DeleteHotel(ctx context.Context, id uint64) error {
	return c.delete(ctx, fmt.Sprintf("/v1/admin/hotels/%d", id))
}

func (c *Client) DeleteRoom(ctx context.Context, hotelID, roomID uint64) error {
	return c.delete(ctx, fmt.Sprintf("/v1/admin/hotels/%d/rooms/%d", hotelID, roomID))
}

func (c *Client) CreateRoom(ctx context.Context, hotelID uint64, in RoomInput) (Room, error) {
	var out struct {
		Room Room `json:"room"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/admin/hotels/%d/rooms", hotelID), in, &out)
	return out.Room, err
}

func (c *Client) MyLot(ctx context.Context) (ParkingLot, error) {
	var out struct {
		ParkingLot ParkingLot `json:"parkingLot"`
	}
	err := c.get(ctx, "/v1/admin/my-lot", nil, &out)
	return out.ParkingLot, err
}

func (c *Client) CreateLot(ctx context.Context, in LotInput) (ParkingLot, error) {
	var out struct {
		ParkingLot ParkingLot `json:"parkingLot"`
	}
	err := c.post(ctx, "/v1/admin/lots", in, &out)
	return out.ParkingLot, err
}

func (c *Client) AssignLotAdmin(ctx context.Context, lotID, accountID uint64) error {
	return c.post(ctx, fmt.Sprintf("/v1/admin/lots/%d/admin", lotID),
		map[string]uint64{"accountId": accountID}, nil)
}

func (c *Client) DeleteLot(ctx context.Context, id uint64) error {
	return c.delete(ctx, fmt.Sprintf("/v1/admin/lots/%d", id))
}

func (c *Client) DeleteSpot(ctx context.Context, lotID, spotID uint64) error {
	return c.delete(ctx, fmt.Sprintf("/v1/admin/lots/%d/spots/%d", lotID, spotID))
}

func (c *Client) CreateSpot(ctx context.Context, lotID uint64, in SpotInput) (ParkingSpot, error) {
	var out struct {
		Spot ParkingSpot `json:"spot"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/admin/lots/%d/spots", lotID), in, &out)
	return out.Spot, err
}

// AdminBookings lists bookings in the caller's scope, optionally
// filtered by status and type.
func (c *Client) AdminBookings(ctx context.Context, status, typ string) ([]Booking, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if typ != "" {
		q.Set("type", typ)
	}
	var out struct {
		Bookings []Booking `json:"bookings"`
	}
	err := c.get(ctx, "/v1/admin/bookings", q, &out)
	return out.Bookings, err
}

// SetBookingStatus moves a booking along the status transition table.
func (c *Client) SetBookingStatus(ctx context.Context, id uint64, status, reason string) (Booking, error) {
	var out struct {
		Booking Booking `json:"booking"`
	}
	err := c.patch(ctx, fmt.Sprintf("/v1/admin/bookings/%d/status", id), map[string]string{
		"status": status,
		"reason": reason,
	}, &out)
	return out.Booking, err
}

func (c *Client) Users(ctx context.Context, role string) ([]Account, error) {
	var q url.Values
	if role != "" {
		q = url.Values{"role": {role}}
	}
	var out struct {
		Users []Account `json:"users"`
	}
	err := c.get(ctx, "/v1/admin/users", q, &out)
	return out.Users, err
}

func (c *Client) CreateUser(ctx context.Context, name, email, password, role string) (Account, error) {
	var out struct {
		User Account `json:"user"`
	}
	err := c.post(ctx, "/v1/admin/users", map[string]string{
		"name":     name,
		"email":    email,
		"password": password,
		"role":     role,
	}, &out)
	return out.User, err
}

func (c *Client) SetUserRole(ctx context.Context, id uint64, role string) error {
	return c.patch(ctx, fmt.Sprintf("/v1/admin/users/%d/role", id),
		map[string]string{"role": role}, nil)
}

func (c *Client) DeleteUser(ctx context.Context, id uint64) error {
	return c.delete(ctx, fmt.Sprintf("/v1/admin/users/%d", id))
}

// AssignTicket hands a ticket to a support account (or the caller).
func (c *Client) AssignTicket(ctx context.Context, ticketID, assigneeID uint64) (Ticket, error) {
	var out struct {
		Ticket Ticket `json:"ticket"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/support/tickets/%d/assign", ticketID),
		map[string]uint64{"assigneeId": assigneeID}, &out)
	return out.Ticket, err
}

// SetTicketStatus updates a ticket's workflow state.
func (c *Client) SetTicketStatus(ctx context.Context, ticketID uint64, status string) (Ticket, error) {
	var out struct {
		Ticket Ticket `json:"ticket"`
	}
	err := c.patch(ctx, fmt.Sprintf("/v1/support/tickets/%d/status", ticketID),
		map[string]string{"status": status}, &out)
	return out.Ticket, err
}
