package wizard

import "time"

// Pricing math for the booking flow. All money is integer cents; time
// arithmetic rounds partial units up, so any stay that crosses into a
// new night or hour pays for it in full.

// Nights returns the number of hotel nights between check-in and
// check-out, rounding partial days up. Non-positive ranges clamp to
// zero rather than going negative.
func Nights(checkIn, checkOut time.Time) int64 {
	d := checkOut.Sub(checkIn)
	if d <= 0 {
		return 0
	}
	nights := int64(d / (24 * time.Hour))
	if d%(24*time.Hour) != 0 {
		nights++
	}
	return nights
}

// HotelTotal computes (room rate + selected amenity surcharges) per
// night, times the night count.
func HotelTotal(roomRateCents int64, amenityCents []int64, checkIn, checkOut time.Time) int64 {
	perNight := roomRateCents
	for _, a := range amenityCents {
		perNight += a
	}
	return perNight * Nights(checkIn, checkOut)
}

// ParkingHours returns the parking duration in whole hours, rounding
// partial hours up and clamping non-positive ranges to zero.
func ParkingHours(start, end time.Time) int64 {
	d := end.Sub(start)
	if d <= 0 {
		return 0
	}
	hours := int64(d / time.Hour)
	if d%time.Hour != 0 {
		hours++
	}
	return hours
}

// ParkingTotal prices a parking stay: stays of a day or less bill
// hourly, longer stays bill by the day with partial days rounded up.
// Weekly and monthly rates exist on lots but do not participate here;
// the published rate card only applies the first two tiers.
func ParkingTotal(hourlyCents, dailyCents int64, start, end time.Time) int64 {
	hours := ParkingHours(start, end)
	if hours == 0 {
		return 0
	}
	if hours <= 24 {
		return hourlyCents * hours
	}
	days := hours / 24
	if hours%24 != 0 {
		days++
	}
	return dailyCents * days
}

// CombinedTotal sums independently priced hotel and parking legs.
func CombinedTotal(hotelCents, parkingCents int64) int64 {
	return hotelCents + parkingCents
}
