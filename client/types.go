package client

import "time"

// Wire types mirroring the API's JSON shapes. Money is integer cents
// throughout.

type Account struct {
	ID      uint64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	Phone   string `json:"phone,omitempty"`
	Address string `json:"address,omitempty"`
}

type TokenPart struct {
	Token   string    `json:"token"`
	Expires time.Time `json:"expires"`
}

type Session struct {
	User    Account   `json:"user"`
	Access  TokenPart `json:"access"`
	Refresh TokenPart `json:"refresh"`
}

type Hotel struct {
	ID           uint64   `json:"id"`
	Name         string   `json:"name"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2,omitempty"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	Zip          string   `json:"zip"`
	Country      string   `json:"country"`
	Description  string   `json:"description,omitempty"`
	Stars        uint8    `json:"stars"`
	Amenities    []string `json:"amenities"`
}

type Room struct {
	ID         uint64   `json:"id"`
	HotelID    uint64   `json:"hotelId"`
	Type       string   `json:"type"`
	PriceCents int64    `json:"priceCents"`
	Capacity   uint16   `json:"capacity"`
	Available  uint16   `json:"available"`
	Amenities  []string `json:"amenities"`
}

type ParkingLot struct {
	ID               uint64   `json:"id"`
	Name             string   `json:"name"`
	Address          string   `json:"address"`
	TotalSpots       uint32   `json:"totalSpots"`
	Features         []string `json:"features"`
	HourlyRateCents  int64    `json:"hourlyRateCents"`
	DailyRateCents   int64    `json:"dailyRateCents"`
	WeeklyRateCents  int64    `json:"weeklyRateCents"`
	MonthlyRateCents int64    `json:"monthlyRateCents"`
}

type ParkingSpot struct {
	ID        uint64 `json:"id"`
	LotID     uint64 `json:"lotId"`
	Number    string `json:"number"`
	Section   string `json:"section"`
	Type      string `json:"type"`
	Available bool   `json:"available"`
}

type HotelLeg struct {
	HotelID   uint64    `json:"hotelId"`
	RoomID    uint64    `json:"roomId"`
	CheckIn   time.Time `json:"checkIn"`
	CheckOut  time.Time `json:"checkOut"`
	Guests    uint16    `json:"guests"`
	Amenities []string  `json:"amenities,omitempty"`
}

type ParkingLeg struct {
	LotID        uint64    `json:"lotId"`
	SpotID       uint64    `json:"spotId"`
	StartDate    time.Time `json:"startDate"`
	EndDate      time.Time `json:"endDate"`
	VehiclePlate string    `json:"vehiclePlate"`
	VehicleModel string    `json:"vehicleModel,omitempty"`
}

type Pricing struct {
	SubtotalCents int64 `json:"subtotalCents"`
	TaxCents      int64 `json:"taxCents"`
	FeeCents      int64 `json:"feeCents"`
	DiscountCents int64 `json:"discountCents"`
	TotalCents    int64 `json:"totalCents"`
}

type Booking struct {
	ID           uint64      `json:"id"`
	Reference    string      `json:"reference"`
	AccountID    uint64      `json:"accountId"`
	Type         string      `json:"type"`
	Hotel        *HotelLeg   `json:"hotel,omitempty"`
	Parking      *ParkingLeg `json:"parking,omitempty"`
	Price        Pricing     `json:"price"`
	Status       string      `json:"status"`
	CancelReason string      `json:"cancelReason,omitempty"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type BookingRequest struct {
	Type    string      `json:"type"`
	Hotel   *HotelLeg   `json:"hotel,omitempty"`
	Parking *ParkingLeg `json:"parking,omitempty"`
	Price   Pricing     `json:"price"`
}

type Ticket struct {
	ID          uint64  `json:"id"`
	Subject     string  `json:"subject"`
	Message     string  `json:"message"`
	Priority    string  `json:"priority"`
	Category    string  `json:"category,omitempty"`
	RequesterID uint64  `json:"requesterId"`
	AssigneeID  *uint64 `json:"assigneeId,omitempty"`
	Status      string  `json:"status"`
}
