package cli

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/dfwpark/dfw-parking/client"
	"github.com/dfwpark/dfw-parking/client/storage"
	"github.com/dfwpark/dfw-parking/guard"
)

func bookingsCmd() *cobra.Command {
	var local bool
	var cancelReason string

	cmd := &cobra.Command{
		Use:   "bookings [booking-id]",
		Short: "List or inspect your bookings",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if local {
				return listLocalBookings()
			}
			if err := requireRoute(guard.RouteBooking); err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid booking id %q", args[0])
				}
				if cancelReason != "" {
					b, err := api.CancelBooking(ctx, id, cancelReason)
					if err != nil {
						return err
					}
					fmt.Printf("Booking %s cancelled.\n", b.Reference)
					return nil
				}
				b, err := api.Booking(ctx, id)
				if err != nil {
					return err
				}
				if outputJSON {
					return printJSON(b)
				}
				printBooking(b)
				return nil
			}

			list, err := api.MyBookings(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(list)
			}
			for _, b := range list {
				fmt.Printf("%4d  %-36s %-7s %-11s %s\n",
					b.ID, b.Reference, b.Type, b.Status, dollars(b.Price.TotalCents))
			}
			if len(list) == 0 {
				fmt.Println("No bookings yet.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "show the on-disk booking history instead of asking the server")
	cmd.Flags().StringVar(&cancelReason, "cancel", "", "cancel the booking with this reason")
	return cmd
}

func printBooking(b client.Booking) {
	fmt.Printf("Reference: %s\nType: %s\nStatus: %s\nTotal: %s\n",
		b.Reference, b.Type, b.Status, dollars(b.Price.TotalCents))
	if b.Hotel != nil {
		fmt.Printf("Hotel leg: hotel %d room %d, %s → %s, %d guests\n",
			b.Hotel.HotelID, b.Hotel.RoomID,
			b.Hotel.CheckIn.Format("2006-01-02"), b.Hotel.CheckOut.Format("2006-01-02"), b.Hotel.Guests)
	}
	if b.Parking != nil {
		fmt.Printf("Parking leg: lot %d spot %d, %s → %s, plate %s\n",
			b.Parking.LotID, b.Parking.SpotID,
			b.Parking.StartDate.Format(time.RFC3339), b.Parking.EndDate.Format(time.RFC3339), b.Parking.VehiclePlate)
	}
	if b.CancelReason != "" {
		fmt.Printf("Cancelled: %s\n", b.CancelReason)
	}
}

func listLocalBookings() error {
	db, err := storage.OpenBookingsDB()
	if err != nil {
		return err
	}
	defer db.Close()

	list, err := storage.ListBookings(db)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(list)
	}
	for _, b := range list {
		fmt.Printf("%4d  %-36s %-7s %-11s %s  %s\n",
			b.ID, b.Reference, b.Type, b.Status, dollars(b.TotalCents), b.BookedAt)
	}
	if len(list) == 0 {
		fmt.Println("No local booking history.")
	}
	return nil
}
