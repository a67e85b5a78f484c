package model

import "time"

// ParkingLot represents a row in the `parking_lots` table. Rates are a
// tiered schedule; only the hourly and daily tiers are applied by the
// booking price calculation, the weekly and monthly tiers are stored
// for display.
//
// Fields:
//  ID               – primary key identifier.
//  Name             – lot name.
//  Address          – free-form address.
//  TotalSpots       – total number of spots in the lot.
//  Features         – list of feature names (covered, shuttle, EV...).
//  HourlyRateCents  – hourly tier rate.
//  DailyRateCents   – daily tier rate.
//  WeeklyRateCents  – weekly tier rate (never applied, display only).
//  MonthlyRateCents – monthly tier rate (never applied, display only).
//  AdminID          – assigned PARKING_ADMIN account (nullable, at most one).
type ParkingLot struct {
	ID               uint64    `json:"id"`                // parking_lots.id
	Name             string    `json:"name"`              // parking_lots.name
	Address          string    `json:"address"`           // parking_lots.address
	TotalSpots       uint32    `json:"totalSpots"`        // parking_lots.total_spots
	Features         []string  `json:"features"`          // parking_lots.features (JSON array)
	HourlyRateCents  int64     `json:"hourlyRateCents"`   // parking_lots.hourly_rate_cents
	DailyRateCents   int64     `json:"dailyRateCents"`    // parking_lots.daily_rate_cents
	WeeklyRateCents  int64     `json:"weeklyRateCents"`   // parking_lots.weekly_rate_cents
	MonthlyRateCents int64     `json:"monthlyRateCents"`  // parking_lots.monthly_rate_cents
	AdminID          *uint64   `json:"adminId,omitempty"` // parking_lots.admin_id (nullable)
	CreatedAt        time.Time `json:"createdAt"`         // parking_lots.created_at
	UpdatedAt        time.Time `json:"updatedAt"`         // parking_lots.updated_at
}

// ParkingSpot represents a row in the `parking_spots` table. Each spot
// belongs to exactly one lot. BookingID points at the booking currently
// occupying the spot, when any.
type ParkingSpot struct {
	ID        uint64    `json:"id"`                  // parking_spots.id
	LotID     uint64    `json:"lotId"`               // parking_spots.lot_id
	Number    string    `json:"number"`              // parking_spots.number (e.g. "A-17")
	Section   string    `json:"section"`             // parking_spots.section
	Type      string    `json:"type"`                // parking_spots.type (STANDARD, COMPACT, EV, HANDICAP)
	Available bool      `json:"available"`           // parking_spots.available
	BookingID *uint64   `json:"bookingId,omitempty"` // parking_spots.booking_id (nullable)
	CreatedAt time.Time `json:"createdAt"`           // parking_spots.created_at
	UpdatedAt time.Time `json:"updatedAt"`           // parking_spots.updated_at
}
