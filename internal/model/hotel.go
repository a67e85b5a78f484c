package model

import "time"

// Hotel represents a property in the `hotels` table. A hotel owns its
// rooms exclusively and has at most one assigned admin account (an
// account with the HOTEL_ADMIN role). Amenities are stored as a JSON
// array in a text column.
//
// Fields:
//  ID           – primary key identifier.
//  Name         – hotel name.
//  AddressLine1 – street address.
//  AddressLine2 – optional second address line.
//  City, State, Zip, Country – structured address parts.
//  Description  – free-form descriptive text.
//  Stars        – star rating 1..5.
//  Amenities    – list of amenity names.
//  AdminID      – assigned HOTEL_ADMIN account (nullable, at most one).
//  CreatedAt    – timestamp of creation.
//  UpdatedAt    – timestamp of last update.
type Hotel struct {
	ID           uint64    `json:"id"`                     // hotels.id
	Name         string    `json:"name"`                   // hotels.name
	AddressLine1 string    `json:"addressLine1"`           // hotels.address_line1
	AddressLine2 string    `json:"addressLine2,omitempty"` // hotels.address_line2
	City         string    `json:"city"`                   // hotels.city
	State        string    `json:"state"`                  // hotels.state
	Zip          string    `json:"zip"`                    // hotels.zip
	Country      string    `json:"country"`                // hotels.country
	Description  string    `json:"description,omitempty"`  // hotels.description
	Stars        uint8     `json:"stars"`                  // hotels.stars
	Amenities    []string  `json:"amenities"`              // hotels.amenities (JSON array)
	AdminID      *uint64   `json:"adminId,omitempty"`      // hotels.admin_id (nullable)
	CreatedAt    time.Time `json:"createdAt"`              // hotels.created_at
	UpdatedAt    time.Time `json:"updatedAt"`              // hotels.updated_at
}

// Room represents a row in the `rooms` table. Each room belongs to
// exactly one hotel. PriceCents is the nightly rate in cents.
type Room struct {
	ID         uint64    `json:"id"`         // rooms.id
	HotelID    uint64    `json:"hotelId"`    // rooms.hotel_id
	Type       string    `json:"type"`       // rooms.type (e.g. STANDARD, DELUXE, SUITE)
	PriceCents int64     `json:"priceCents"` // rooms.price_cents (nightly rate)
	Capacity   uint16    `json:"capacity"`   // rooms.capacity
	Available  uint16    `json:"available"`  // rooms.available (remaining count, display only)
	Amenities  []string  `json:"amenities"`  // rooms.amenities (JSON array)
	CreatedAt  time.Time `json:"createdAt"`  // rooms.created_at
	UpdatedAt  time.Time `json:"updatedAt"`  // rooms.updated_at
}
