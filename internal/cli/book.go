package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfwpark/dfw-parking/client"
	"github.com/dfwpark/dfw-parking/client/storage"
	"github.com/dfwpark/dfw-parking/guard"
	"github.com/dfwpark/dfw-parking/wizard"
)

type bookFlags struct {
	variant  string
	checkIn   string
	checkOut  string
	hotelID   uint64
	roomID    uint64
	guests    uint16
	amenities []string

	parkStart string
	parkEnd   string
	lotID     uint64
	spotID    uint64
	plate     string
	vehicle   string

	cardHolder string
	cardNumber string
}

func bookCmd() *cobra.Command {
	var f bookFlags

	cmd := &cobra.Command{
		Use:   "book",
		Short: "Book a hotel stay, a parking spot, or both",
		Long: `Walks the booking wizard step by step using the provided flags.
Each step must be complete before the next is reachable; the booking
is only submitted when every step of the chosen variant is valid.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteBooking); err != nil {
				return err
			}
			return runBooking(context.Background(), f)
		},
	}

	cmd.Flags().StringVar(&f.variant, "type", "hotel", "booking type: hotel, parking or both")
	cmd.Flags().StringVar(&f.checkIn, "check-in", "", "hotel check-in date")
	cmd.Flags().StringVar(&f.checkOut, "check-out", "", "hotel check-out date")
	cmd.Flags().Uint64Var(&f.hotelID, "hotel", 0, "hotel id")
	cmd.Flags().Uint64Var(&f.roomID, "room", 0, "room id")
	cmd.Flags().Uint16Var(&f.guests, "guests", 1, "guest count")
	cmd.Flags().StringArrayVar(&f.amenities, "amenity", nil,
		"room amenity as NAME=cents, e.g. BREAKFAST=1000 (repeatable)")
	cmd.Flags().StringVar(&f.parkStart, "park-start", "", "parking start (RFC 3339)")
	cmd.Flags().StringVar(&f.parkEnd, "park-end", "", "parking end (RFC 3339)")
	cmd.Flags().Uint64Var(&f.lotID, "lot", 0, "parking lot id")
	cmd.Flags().Uint64Var(&f.spotID, "spot", 0, "parking spot id")
	cmd.Flags().StringVar(&f.plate, "plate", "", "vehicle plate")
	cmd.Flags().StringVar(&f.vehicle, "vehicle", "", "vehicle model")
	cmd.Flags().StringVar(&f.cardHolder, "card-holder", "", "name on card")
	cmd.Flags().StringVar(&f.cardNumber, "card-number", "", "card number")
	return cmd
}

func wizardVariant(s string) (string, error) {
	switch s {
	case "hotel":
		return wizard.VariantHotel, nil
	case "parking":
		return wizard.VariantParking, nil
	case "both":
		return wizard.VariantCombined, nil
	}
	return "", fmt.Errorf("unknown booking type %q (want hotel, parking or both)", s)
}

func runBooking(ctx context.Context, f bookFlags) error {
	variant, err := wizardVariant(f.variant)
	if err != nil {
		return err
	}
	w, err := wizard.New(variant)
	if err != nil {
		return err
	}

	// Walk the steps; a flag gap surfaces as the wizard refusing to
	// advance past the incomplete step.
	for {
		if err := fillStep(ctx, w, f); err != nil {
			return err
		}
		idx, total := w.StepIndex()
		if idx == total-1 {
			break
		}
		if err := w.Next(); err != nil {
			return fmt.Errorf("step %q: %w", w.Step(), err)
		}
	}

	draft, err := w.Confirm()
	if err != nil {
		return fmt.Errorf("cannot submit booking: %w", err)
	}
	booking, err := api.CreateBooking(ctx, draftToRequest(draft))
	if err != nil {
		return err
	}

	recordLocal(booking)

	if outputJSON {
		return printJSON(booking)
	}
	fmt.Printf("Booked! Reference %s, total %s, status %s\n",
		booking.Reference, dollars(booking.Price.TotalCents), booking.Status)
	return nil
}

// fillStep populates the wizard's current step from the flags, pulling
// pricing inputs from the API at the moment a room or lot is chosen,
// exactly when the UI would capture them.
func fillStep(ctx context.Context, w *wizard.Wizard, f bookFlags) error {
	switch w.Step() {
	case wizard.StepHotelDates:
		if f.checkIn == "" || f.checkOut == "" {
			return fmt.Errorf("--check-in and --check-out are required")
		}
		in, err := parseDay(f.checkIn)
		if err != nil {
			return err
		}
		out, err := parseDay(f.checkOut)
		if err != nil {
			return err
		}
		w.Sel.CheckIn, w.Sel.CheckOut = in, out
	case wizard.StepHotel:
		w.Sel.HotelID = f.hotelID
		w.Sel.Guests = f.guests
	case wizard.StepRoom:
		if f.roomID == 0 {
			return fmt.Errorf("--room is required")
		}
		rooms, err := api.Rooms(ctx, w.Sel.HotelID)
		if err != nil {
			return err
		}
		for _, r := range rooms {
			if r.ID == f.roomID {
				w.Sel.RoomID = r.ID
				w.Sel.RoomRateCents = r.PriceCents
				break
			}
		}
		if w.Sel.RoomID == 0 {
			return fmt.Errorf("room %d not found in hotel %d", f.roomID, w.Sel.HotelID)
		}
		names, cents, err := parseAmenities(f.amenities)
		if err != nil {
			return err
		}
		w.Sel.Amenities, w.Sel.AmenityCents = names, cents
	case wizard.StepParkingDates:
		if f.parkStart == "" || f.parkEnd == "" {
			return fmt.Errorf("--park-start and --park-end are required")
		}
		start, err := parseDay(f.parkStart)
		if err != nil {
			return err
		}
		end, err := parseDay(f.parkEnd)
		if err != nil {
			return err
		}
		w.Sel.ParkStart, w.Sel.ParkEnd = start, end
	case wizard.StepLot:
		if f.lotID == 0 || f.spotID == 0 {
			return fmt.Errorf("--lot and --spot are required")
		}
		lot, err := api.ParkingLot(ctx, f.lotID)
		if err != nil {
			return err
		}
		w.Sel.LotID = lot.ID
		w.Sel.SpotID = f.spotID
		w.Sel.HourlyRateCents = lot.HourlyRateCents
		w.Sel.DailyRateCents = lot.DailyRateCents
	case wizard.StepVehicle:
		w.Sel.VehiclePlate = f.plate
		w.Sel.VehicleModel = f.vehicle
	case wizard.StepPayment:
		w.Sel.CardHolder = f.cardHolder
		w.Sel.CardNumber = f.cardNumber
	}
	return nil
}

// parseAmenities turns repeated NAME=cents flags into the wizard's
// parallel name and surcharge slices.
func parseAmenities(vals []string) ([]string, []int64, error) {
	if len(vals) == 0 {
		return nil, nil, nil
	}
	names := make([]string, 0, len(vals))
	cents := make([]int64, 0, len(vals))
	for _, v := range vals {
		name, raw, found := strings.Cut(v, "=")
		name = strings.TrimSpace(name)
		if !found || name == "" {
			return nil, nil, fmt.Errorf("invalid --amenity %q (want NAME=cents)", v)
		}
		n, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
		if err != nil || n < 0 {
			return nil, nil, fmt.Errorf("invalid --amenity %q: surcharge must be a non-negative cent amount", v)
		}
		names = append(names, name)
		cents = append(cents, n)
	}
	return names, cents, nil
}

func draftToRequest(d wizard.Draft) client.BookingRequest {
	req := client.BookingRequest{
		Type: d.Variant,
		Price: client.Pricing{
			SubtotalCents: d.SubtotalCents,
			TaxCents:      d.TaxCents,
			FeeCents:      d.FeeCents,
			DiscountCents: d.DiscountCents,
			TotalCents:    d.TotalCents,
		},
	}
	s := d.Selections
	if d.Variant == wizard.VariantHotel || d.Variant == wizard.VariantCombined {
		req.Hotel = &client.HotelLeg{
			HotelID:   s.HotelID,
			RoomID:    s.RoomID,
			CheckIn:   s.CheckIn,
			CheckOut:  s.CheckOut,
			Guests:    s.Guests,
			Amenities: s.Amenities,
		}
	}
	if d.Variant == wizard.VariantParking || d.Variant == wizard.VariantCombined {
		req.Parking = &client.ParkingLeg{
			LotID:        s.LotID,
			SpotID:       s.SpotID,
			StartDate:    s.ParkStart,
			EndDate:      s.ParkEnd,
			VehiclePlate: s.VehiclePlate,
			VehicleModel: s.VehicleModel,
		}
	}
	return req
}

// recordLocal appends the booking to the on-disk history. Failures
// are not fatal; the server copy is authoritative.
func recordLocal(b client.Booking) {
	db, err := storage.OpenBookingsDB()
	if err != nil {
		return
	}
	defer db.Close()
	_ = storage.RecordBooking(db, storage.LocalBooking{
		ID:         b.ID,
		Reference:  b.Reference,
		Type:       b.Type,
		Status:     b.Status,
		TotalCents: b.Price.TotalCents,
		BookedAt:   time.Now().UTC().Format(time.RFC3339),
	})
}
