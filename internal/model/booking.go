package model

import "time"

// Booking types. A booking carries a hotel leg, a parking leg, or both.
const (
	BookingHotel   = "HOTEL"
	BookingParking = "PARKING"
	BookingBoth    = "BOTH"
)

// Booking statuses. Bookings are never deleted; cancellation is a
// status transition with an optional reason.
const (
	StatusPending    = "PENDING"
	StatusConfirmed  = "CONFIRMED"
	StatusCheckedIn  = "CHECKED_IN"
	StatusCheckedOut = "CHECKED_OUT"
	StatusCancelled  = "CANCELLED"
	StatusCompleted  = "COMPLETED"
)

// transitions lists the allowed status moves. CANCELLED is reachable
// only before check-in; COMPLETED only after check-out.
var transitions = map[string][]string{
	StatusPending:    {StatusConfirmed, StatusCancelled},
	StatusConfirmed:  {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn:  {StatusCheckedOut},
	StatusCheckedOut: {StatusCompleted},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to string) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// HotelLeg is the hotel-specific portion of a booking.
type HotelLeg struct {
	HotelID   uint64    `json:"hotelId"`   // bookings.hotel_id
	RoomID    uint64    `json:"roomId"`    // bookings.room_id
	CheckIn   time.Time `json:"checkIn"`   // bookings.check_in
	CheckOut  time.Time `json:"checkOut"`  // bookings.check_out
	Guests    uint16    `json:"guests"`    // bookings.guests
	Amenities []string  `json:"amenities"` // bookings.hotel_amenities (JSON array)
}

// ParkingLeg is the parking-specific portion of a booking.
type ParkingLeg struct {
	LotID        uint64    `json:"lotId"`        // bookings.lot_id
	SpotID       uint64    `json:"spotId"`       // bookings.spot_id
	StartDate    time.Time `json:"startDate"`    // bookings.park_start
	EndDate      time.Time `json:"endDate"`      // bookings.park_end
	VehiclePlate string    `json:"vehiclePlate"` // bookings.vehicle_plate
	VehicleModel string    `json:"vehicleModel"` // bookings.vehicle_model
}

// Pricing is the breakdown submitted with a booking. The server stores
// it as received; totals are computed client-side by the wizard.
// TotalCents must equal SubtotalCents - DiscountCents + TaxCents + FeeCents.
type Pricing struct {
	SubtotalCents int64 `json:"subtotalCents"` // bookings.subtotal_cents
	TaxCents      int64 `json:"taxCents"`      // bookings.tax_cents
	FeeCents      int64 `json:"feeCents"`      // bookings.fee_cents
	DiscountCents int64 `json:"discountCents"` // bookings.discount_cents
	TotalCents    int64 `json:"totalCents"`    // bookings.total_cents
}

// Booking represents a row in the `bookings` table. The hotel and
// parking legs are embedded as nullable column groups; which groups are
// present depends on Type.
type Booking struct {
	ID           uint64      `json:"id"`                     // bookings.id
	Reference    string      `json:"reference"`              // bookings.reference (uuid, human-facing)
	AccountID    uint64      `json:"accountId"`              // bookings.account_id
	Type         string      `json:"type"`                   // bookings.type
	Hotel        *HotelLeg   `json:"hotel,omitempty"`        // nil unless Type is HOTEL or BOTH
	Parking      *ParkingLeg `json:"parking,omitempty"`      // nil unless Type is PARKING or BOTH
	Price        Pricing     `json:"price"`
	Status       string      `json:"status"`                 // bookings.status
	CancelReason string      `json:"cancelReason,omitempty"` // bookings.cancel_reason
	CreatedAt    time.Time   `json:"createdAt"`              // bookings.created_at
	UpdatedAt    time.Time   `json:"updatedAt"`              // bookings.updated_at
}
