package client

import (
	"context"
	"fmt"
	"net/url"
)

// CreateBooking submits an assembled booking draft.
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (Booking, error) {
	var out struct {
		Booking Booking `json:"booking"`
	}
	err := c.post(ctx, "/v1/bookings", req, &out)
	return out.Booking, err
}

// MyBookings lists the authenticated customer's bookings.
func (c *Client) MyBookings(ctx context.Context) ([]Booking, error) {
	var out struct {
		Bookings []Booking `json:"bookings"`
	}
	err := c.get(ctx, "/v1/my-bookings", nil, &out)
	return out.Bookings, err
}

// Booking fetches one of the customer's bookings.
func (c *Client) Booking(ctx context.Context, id uint64) (Booking, error) {
	var out struct {
		Booking Booking `json:"booking"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/bookings/%d", id), nil, &out)
	return out.Booking, err
}

// CancelBooking cancels a booking with a reason. The record survives
// as CANCELLED; nothing is deleted.
func (c *Client) CancelBooking(ctx context.Context, id uint64, reason string) (Booking, error) {
	var out struct {
		Booking Booking `json:"booking"`
	}
	err := c.post(ctx, fmt.Sprintf("/v1/bookings/%d/cancel", id), map[string]string{
		"reason": reason,
	}, &out)
	return out.Booking, err
}

// CreateTicket opens a support ticket.
func (c *Client) CreateTicket(ctx context.Context, subject, message, priority, category string) (Ticket, error) {
	var out struct {
		Ticket Ticket `json:"ticket"`
	}
	err := c.post(ctx, "/v1/tickets", map[string]string{
		"subject":  subject,
		"message":  message,
		"priority": priority,
		"category": category,
	}, &out)
	return out.Ticket, err
}

// Tickets lists tickets visible to the caller (own tickets, or the
// whole queue for support staff), optionally filtered by status.
func (c *Client) Tickets(ctx context.Context, status string) ([]Ticket, error) {
	var q url.Values
	if status != "" {
		q = url.Values{"status": {status}}
	}
	var out struct {
		Tickets []Ticket `json:"tickets"`
	}
	err := c.get(ctx, "/v1/tickets", q, &out)
	return out.Tickets, err
}
