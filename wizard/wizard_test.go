package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUnknownVariant(t *testing.T) {
	_, err := New("CRUISE")
	assert.ErrorIs(t, err, ErrUnknownVariant)
}

func TestNextBlockedUntilStepComplete(t *testing.T) {
	w, err := New(VariantHotel)
	require.NoError(t, err)
	assert.Equal(t, StepHotelDates, w.Step())

	// No dates chosen yet.
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)

	w.Sel.CheckIn = day(0)
	w.Sel.CheckOut = day(2)
	require.NoError(t, w.Next())
	assert.Equal(t, StepHotel, w.Step())
}

func TestPreviousAlwaysAllowedExceptFirst(t *testing.T) {
	w, _ := New(VariantParking)
	assert.ErrorIs(t, w.Previous(), ErrAtFirstStep)

	w.Sel.ParkStart = day(0)
	w.Sel.ParkEnd = day(1)
	require.NoError(t, w.Next())
	// Back is fine even though the lot step is empty.
	require.NoError(t, w.Previous())
	assert.Equal(t, StepParkingDates, w.Step())
}

func TestConfirmOnlyFromLastStep(t *testing.T) {
	w, _ := New(VariantHotel)
	w.Sel.CheckIn = day(0)
	w.Sel.CheckOut = day(2)
	_, err := w.Confirm()
	assert.ErrorIs(t, err, ErrNotAtLastStep)
}

func TestCombinedCannotConfirmWithoutParkingLot(t *testing.T) {
	w, _ := New(VariantCombined)
	w.Sel.CheckIn = day(0)
	w.Sel.CheckOut = day(2)
	w.Sel.HotelID = 7
	w.Sel.RoomID = 12
	w.Sel.RoomRateCents = 15000
	w.Sel.ParkStart = day(0)
	w.Sel.ParkEnd = day(2)
	w.Sel.VehiclePlate = "TX-123"
	w.Sel.CardHolder = "Pat"
	w.Sel.CardNumber = "4111111111111111"

	// Walk to the lot step, which cannot pass without a lot and spot.
	require.NoError(t, w.Next()) // dates -> hotel
	require.NoError(t, w.Next()) // hotel -> room
	require.NoError(t, w.Next()) // room -> parking dates
	assert.ErrorIs(t, w.Next(), ErrStepIncomplete)
	assert.False(t, w.CanConfirm())
}

func TestConfirmAssemblesAndResets(t *testing.T) {
	w, _ := New(VariantCombined)
	w.Sel.CheckIn = day(0)
	w.Sel.CheckOut = day(3)
	w.Sel.HotelID = 7
	w.Sel.RoomID = 12
	w.Sel.RoomRateCents = 15000
	w.Sel.AmenityCents = []int64{1000, 1500}
	w.Sel.ParkStart = day(0)
	w.Sel.ParkEnd = day(0).Add(10 * time.Hour)
	w.Sel.LotID = 3
	w.Sel.SpotID = 44
	w.Sel.HourlyRateCents = 800
	w.Sel.DailyRateCents = 2500
	w.Sel.VehiclePlate = "TX-123"
	w.Sel.CardHolder = "Pat"
	w.Sel.CardNumber = "4111111111111111"

	for {
		idx, total := w.StepIndex()
		if idx == total-1 {
			break
		}
		require.NoError(t, w.Next())
	}
	require.True(t, w.CanConfirm())

	d, err := w.Confirm()
	require.NoError(t, err)
	assert.Equal(t, int64(52500), d.HotelSubtotalCents)
	assert.Equal(t, int64(8000), d.ParkingSubtotalCents)
	assert.Equal(t, int64(60500), d.TotalCents)

	// Reset: back to step zero with cleared selections.
	idx, _ := w.StepIndex()
	assert.Equal(t, 0, idx)
	assert.Equal(t, Selections{}, w.Sel)
}
