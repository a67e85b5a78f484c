package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(d int) time.Time {
	return time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func TestNights(t *testing.T) {
	tests := []struct {
		name     string
		in, out  time.Time
		expected int64
	}{
		{"three full nights", day(0), day(3), 3},
		{"partial day rounds up", day(0), day(1).Add(2 * time.Hour), 2},
		{"same instant", day(0), day(0), 0},
		{"checkout before checkin clamps to zero", day(2), day(0), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Nights(tt.in, tt.out))
		})
	}
}

func TestHotelTotal(t *testing.T) {
	// room 150 + amenities 10 and 15 over 3 nights: 175 x 3 = 525.
	total := HotelTotal(15000, []int64{1000, 1500}, day(0), day(3))
	assert.Equal(t, int64(52500), total)
}

func TestHotelTotalNoAmenities(t *testing.T) {
	assert.Equal(t, int64(30000), HotelTotal(15000, nil, day(0), day(2)))
}

func TestParkingTotalHourly(t *testing.T) {
	// 10 hours at 8/hr: 80.
	start := day(0)
	end := start.Add(10 * time.Hour)
	assert.Equal(t, int64(8000), ParkingTotal(800, 2500, start, end))
}

func TestParkingTotalExactly24Hours(t *testing.T) {
	// The hourly tier covers up to and including a full day.
	start := day(0)
	end := start.Add(24 * time.Hour)
	assert.Equal(t, int64(800*24), ParkingTotal(800, 2500, start, end))
}

func TestParkingTotalDaily(t *testing.T) {
	// 50 hours at 25/day: ceil(50/24)=3 days, 75.
	start := day(0)
	end := start.Add(50 * time.Hour)
	assert.Equal(t, int64(7500), ParkingTotal(800, 2500, start, end))
}

func TestParkingTotalPartialHourRoundsUp(t *testing.T) {
	start := day(0)
	end := start.Add(90 * time.Minute)
	assert.Equal(t, int64(1600), ParkingTotal(800, 2500, start, end))
}

func TestParkingTotalZeroDuration(t *testing.T) {
	assert.Equal(t, int64(0), ParkingTotal(800, 2500, day(1), day(0)))
}

func TestCombinedTotal(t *testing.T) {
	assert.Equal(t, int64(52500+7500), CombinedTotal(52500, 7500))
}
