// Package wizard implements the multi-step booking flow: a linear
// step machine per booking variant that accumulates selections,
// gates forward movement on per-step validity and prices the final
// draft before submission.
package wizard

import (
	"errors"
	"time"
)

// Booking variants. Each variant walks its own step sequence.
const (
	VariantHotel    = "HOTEL"
	VariantParking  = "PARKING"
	VariantCombined = "BOTH"
)

// Step identifiers.
const (
	StepHotelDates   = "hotel-dates"
	StepHotel        = "hotel"
	StepRoom         = "room"
	StepParkingDates = "parking-dates"
	StepLot          = "lot"
	StepVehicle      = "vehicle"
	StepPayment      = "payment"
)

var sequences = map[string][]string{
	VariantHotel:    {StepHotelDates, StepHotel, StepRoom, StepPayment},
	VariantParking:  {StepParkingDates, StepLot, StepVehicle, StepPayment},
	VariantCombined: {StepHotelDates, StepHotel, StepRoom, StepParkingDates, StepLot, StepVehicle, StepPayment},
}

var (
	ErrUnknownVariant = errors.New("wizard: unknown booking variant")
	ErrStepIncomplete = errors.New("wizard: current step is incomplete")
	ErrAtFirstStep    = errors.New("wizard: already at the first step")
	ErrNotAtLastStep  = errors.New("wizard: confirm is only available on the last step")
)

// Selections accumulates everything the customer picks across steps.
// Zero values mean "not chosen yet".
type Selections struct {
	CheckIn  time.Time
	CheckOut time.Time
	HotelID  uint64
	RoomID   uint64
	Guests   uint16

	// Room pricing inputs, captured when the room is picked.
	RoomRateCents int64
	Amenities     []string
	AmenityCents  []int64

	ParkStart    time.Time
	ParkEnd      time.Time
	LotID        uint64
	SpotID       uint64
	VehiclePlate string
	VehicleModel string

	// Lot pricing inputs, captured when the lot is picked.
	HourlyRateCents int64
	DailyRateCents  int64

	// Payment form. The form is presentational; the gateway is not
	// integrated, but the fields still gate the final step.
	CardHolder string
	CardNumber string

	TaxCents      int64
	FeeCents      int64
	DiscountCents int64
}

// Draft is the assembled booking produced by Confirm, ready to send to
// the API.
type Draft struct {
	Variant    string
	Selections Selections

	HotelSubtotalCents   int64
	ParkingSubtotalCents int64
	SubtotalCents        int64
	TaxCents             int64
	FeeCents             int64
	DiscountCents        int64
	TotalCents           int64
}

// Wizard is the step machine for one booking attempt. The zero value
// is not usable; construct with New.
type Wizard struct {
	variant string
	steps   []string
	idx     int

	Sel Selections
}

func New(variant string) (*Wizard, error) {
	steps, ok := sequences[variant]
	if !ok {
		return nil, ErrUnknownVariant
	}
	return &Wizard{variant: variant, steps: steps}, nil
}

func (w *Wizard) Variant() string { return w.variant }

// Step returns the current step identifier.
func (w *Wizard) Step() string { return w.steps[w.idx] }

// StepIndex returns the current position and the total step count.
func (w *Wizard) StepIndex() (int, int) { return w.idx, len(w.steps) }

// StepValid reports whether the named step's required fields are set.
func (w *Wizard) StepValid(step string) bool {
	s := &w.Sel
	switch step {
	case StepHotelDates:
		return !s.CheckIn.IsZero() && !s.CheckOut.IsZero()
	case StepHotel:
		return s.HotelID != 0
	case StepRoom:
		return s.RoomID != 0
	case StepParkingDates:
		return !s.ParkStart.IsZero() && !s.ParkEnd.IsZero()
	case StepLot:
		return s.LotID != 0 && s.SpotID != 0
	case StepVehicle:
		return s.VehiclePlate != ""
	case StepPayment:
		return s.CardHolder != "" && s.CardNumber != ""
	}
	return false
}

// Next advances one step. It fails if the current step's required
// fields are not yet filled in.
func (w *Wizard) Next() error {
	if !w.StepValid(w.Step()) {
		return ErrStepIncomplete
	}
	if w.idx < len(w.steps)-1 {
		w.idx++
	}
	return nil
}

// Previous steps back. Always permitted except on the first step.
func (w *Wizard) Previous() error {
	if w.idx == 0 {
		return ErrAtFirstStep
	}
	w.idx--
	return nil
}

// CanConfirm reports whether the booking can be submitted: the wizard
// must sit on the last step and every step in the sequence must be
// valid. A combined booking with a room picked but no lot can never
// confirm.
func (w *Wizard) CanConfirm() bool {
	if w.idx != len(w.steps)-1 {
		return false
	}
	for _, step := range w.steps {
		if !w.StepValid(step) {
			return false
		}
	}
	return true
}

// Confirm assembles and prices the booking draft, then resets the
// wizard to the first step with all selections cleared.
func (w *Wizard) Confirm() (Draft, error) {
	if w.idx != len(w.steps)-1 {
		return Draft{}, ErrNotAtLastStep
	}
	if !w.CanConfirm() {
		return Draft{}, ErrStepIncomplete
	}

	s := w.Sel
	d := Draft{
		Variant:       w.variant,
		Selections:    s,
		TaxCents:      s.TaxCents,
		FeeCents:      s.FeeCents,
		DiscountCents: s.DiscountCents,
	}
	if w.variant == VariantHotel || w.variant == VariantCombined {
		d.HotelSubtotalCents = HotelTotal(s.RoomRateCents, s.AmenityCents, s.CheckIn, s.CheckOut)
	}
	if w.variant == VariantParking || w.variant == VariantCombined {
		d.ParkingSubtotalCents = ParkingTotal(s.HourlyRateCents, s.DailyRateCents, s.ParkStart, s.ParkEnd)
	}
	d.SubtotalCents = CombinedTotal(d.HotelSubtotalCents, d.ParkingSubtotalCents)
	d.TotalCents = d.SubtotalCents + d.TaxCents + d.FeeCents - d.DiscountCents

	w.Sel = Selections{}
	w.idx = 0
	return d, nil
}
