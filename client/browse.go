package client

import (
	"context"
	"fmt"
	"net/url"
)

// Hotels lists hotels, optionally filtered by city.
func (c *Client) Hotels(ctx context.Context, city string) ([]Hotel, error) {
	var q url.Values
	if city != "" {
		q = url.Values{"city": {city}}
	}
	var out struct {
		Hotels []Hotel `json:"hotels"`
	}
	err := c.get(ctx, "/v1/hotels", q, &out)
	return out.Hotels, err
}

// Hotel fetches one hotel.
func (c *Client) Hotel(ctx context.Context, id uint64) (Hotel, error) {
	var out struct {
		Hotel Hotel `json:"hotel"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/hotels/%d", id), nil, &out)
	return out.Hotel, err
}

// Rooms lists a hotel's rooms.
func (c *Client) Rooms(ctx context.Context, hotelID uint64) ([]Room, error) {
	var out struct {
		Rooms []Room `json:"rooms"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/hotels/%d/rooms", hotelID), nil, &out)
	return out.Rooms, err
}

// ParkingLots lists all lots.
func (c *Client) ParkingLots(ctx context.Context) ([]ParkingLot, error) {
	var out struct {
		ParkingLots []ParkingLot `json:"parkingLots"`
	}
	err := c.get(ctx, "/v1/lots", nil, &out)
	return out.ParkingLots, err
}

// ParkingLot fetches one lot.
func (c *Client) ParkingLot(ctx context.Context, id uint64) (ParkingLot, error) {
	var out struct {
		ParkingLot ParkingLot `json:"parkingLot"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/lots/%d", id), nil, &out)
	return out.ParkingLot, err
}

// Spots lists a lot's spots; onlyAvailable narrows to free ones.
func (c *Client) Spots(ctx context.Context, lotID uint64, onlyAvailable bool) ([]ParkingSpot, error) {
	var q url.Values
	if onlyAvailable {
		q = url.Values{"available": {"true"}}
	}
	var out struct {
		Spots []ParkingSpot `json:"spots"`
	}
	err := c.get(ctx, fmt.Sprintf("/v1/lots/%d/spots", lotID), q, &out)
	return out.Spots, err
}
