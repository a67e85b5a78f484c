package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/dfwpark/dfw-parking/client"
	"github.com/dfwpark/dfw-parking/guard"
)

// adminCmd groups the operator panels. Each subcommand re-checks the
// guard table with the stored role, so a support account asking for
// the hotel panel gets sent to login, matching the web app.
func adminCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "admin",
		Short: "Operator panels (role-gated)",
	}
	cmd.AddCommand(adminHotelCmd())
	cmd.AddCommand(adminParkingCmd())
	cmd.AddCommand(adminHotelsCmd())
	cmd.AddCommand(adminLotsCmd())
	cmd.AddCommand(adminBookingsCmd())
	cmd.AddCommand(adminUsersCmd())
	cmd.AddCommand(adminTicketsCmd())
	return cmd
}

func adminHotelCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotel",
		Short: "Manage your hotel and its rooms",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteHotelPanel); err != nil {
				return err
			}
			h, err := api.MyHotel(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(h)
			}
			fmt.Printf("Managing: %s (%d★), %s %s\n", h.Name, h.Stars, h.City, h.State)
			return nil
		},
	}

	var room client.RoomInput
	var priceCents int64
	addRoom := &cobra.Command{
		Use:   "add-room",
		Short: "Add a room to your hotel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteHotelPanel); err != nil {
				return err
			}
			ctx := context.Background()
			h, err := api.MyHotel(ctx)
			if err != nil {
				return err
			}
			room.PriceCents = priceCents
			r, err := api.CreateRoom(ctx, h.ID, room)
			if err != nil {
				return err
			}
			fmt.Printf("Room %d (%s) added to %s\n", r.ID, r.Type, h.Name)
			return nil
		},
	}
	addRoom.Flags().StringVar(&room.Type, "type", "STANDARD", "room type")
	addRoom.Flags().Int64Var(&priceCents, "price-cents", 0, "nightly rate in cents")
	addRoom.Flags().Uint16Var(&room.Capacity, "capacity", 2, "guest capacity")
	addRoom.Flags().Uint16Var(&room.Available, "available", 1, "rooms of this type")
	cmd.AddCommand(addRoom)

	removeRoom := &cobra.Command{
		Use:   "remove-room <room-id>",
		Short: "Remove a room from your hotel",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteHotelPanel); err != nil {
				return err
			}
			roomID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid room id %q", args[0])
			}
			ctx := context.Background()
			h, err := api.MyHotel(ctx)
			if err != nil {
				return err
			}
			if err := api.DeleteRoom(ctx, h.ID, roomID); err != nil {
				return err
			}
			fmt.Printf("Room %d removed from %s\n", roomID, h.Name)
			return nil
		},
	}
	cmd.AddCommand(removeRoom)
	return cmd
}

func adminParkingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parking",
		Short: "Manage your parking lot and its spots",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteParkingPanel); err != nil {
				return err
			}
			l, err := api.MyLot(context.Background())
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(l)
			}
			fmt.Printf("Managing: %s, %d spots, %s/hr %s/day\n",
				l.Name, l.TotalSpots, dollars(l.HourlyRateCents), dollars(l.DailyRateCents))
			return nil
		},
	}

	var spot client.SpotInput
	addSpot := &cobra.Command{
		Use:   "add-spot",
		Short: "Add a spot to your lot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteParkingPanel); err != nil {
				return err
			}
			ctx := context.Background()
			l, err := api.MyLot(ctx)
			if err != nil {
				return err
			}
			s, err := api.CreateSpot(ctx, l.ID, spot)
			if err != nil {
				return err
			}
			fmt.Printf("Spot %s added to %s\n", s.Number, l.Name)
			return nil
		},
	}
	addSpot.Flags().StringVar(&spot.Number, "number", "", "spot number, e.g. A-17")
	addSpot.Flags().StringVar(&spot.Section, "section", "", "lot section")
	addSpot.Flags().StringVar(&spot.Type, "type", "STANDARD", "spot type")
	cmd.AddCommand(addSpot)

	removeSpot := &cobra.Command{
		Use:   "remove-spot <spot-id>",
		Short: "Remove a spot from your lot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteParkingPanel); err != nil {
				return err
			}
			spotID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid spot id %q", args[0])
			}
			ctx := context.Background()
			l, err := api.MyLot(ctx)
			if err != nil {
				return err
			}
			if err := api.DeleteSpot(ctx, l.ID, spotID); err != nil {
				return err
			}
			fmt.Printf("Spot %d removed from %s\n", spotID, l.Name)
			return nil
		},
	}
	cmd.AddCommand(removeSpot)
	return cmd
}

// adminHotelsCmd is the super-admin property console for hotels:
// create, rename/update and admin assignment.
func adminHotelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hotels",
		Short: "Create hotels and assign their admins (super admin)",
	}

	var hotel client.HotelInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new hotel",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			h, err := api.CreateHotel(context.Background(), hotel)
			if err != nil {
				return err
			}
			fmt.Printf("Hotel %d (%s) registered\n", h.ID, h.Name)
			return nil
		},
	}
	create.Flags().StringVar(&hotel.Name, "name", "", "hotel name")
	create.Flags().StringVar(&hotel.AddressLine1, "address", "", "street address")
	create.Flags().StringVar(&hotel.City, "city", "", "city")
	create.Flags().StringVar(&hotel.State, "state", "TX", "state")
	create.Flags().StringVar(&hotel.Zip, "zip", "", "zip code")
	create.Flags().StringVar(&hotel.Country, "country", "US", "country")
	create.Flags().Uint8Var(&hotel.Stars, "stars", 3, "star rating")
	cmd.AddCommand(create)

	var update client.HotelInput
	rename := &cobra.Command{
		Use:   "update <hotel-id>",
		Short: "Update a hotel's listing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid hotel id %q", args[0])
			}
			h, err := api.UpdateHotel(context.Background(), id, update)
			if err != nil {
				return err
			}
			fmt.Printf("Hotel %d is now %q\n", h.ID, h.Name)
			return nil
		},
	}
	rename.Flags().StringVar(&update.Name, "name", "", "hotel name")
	rename.Flags().StringVar(&update.Description, "description", "", "listing description")
	rename.Flags().Uint8Var(&update.Stars, "stars", 0, "star rating")
	cmd.AddCommand(rename)

	assign := &cobra.Command{
		Use:   "assign <hotel-id> <account-id>",
		Short: "Hand a hotel to a hotel-admin account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			hotelID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid hotel id %q", args[0])
			}
			acctID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[1])
			}
			if err := api.AssignHotelAdmin(context.Background(), hotelID, acctID); err != nil {
				return err
			}
			fmt.Printf("Hotel %d assigned to account %d\n", hotelID, acctID)
			return nil
		},
	}
	cmd.AddCommand(assign)

	remove := &cobra.Command{
		Use:   "delete <hotel-id>",
		Short: "Remove a hotel from the platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid hotel id %q", args[0])
			}
			if err := api.DeleteHotel(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Hotel %d deleted\n", id)
			return nil
		},
	}
	cmd.AddCommand(remove)
	return cmd
}

// adminLotsCmd mirrors the hotel console for parking lots.
func adminLotsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lots",
		Short: "Create parking lots and assign their admins (super admin)",
	}

	var lot client.LotInput
	create := &cobra.Command{
		Use:   "create",
		Short: "Register a new parking lot",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			l, err := api.CreateLot(context.Background(), lot)
			if err != nil {
				return err
			}
			fmt.Printf("Lot %d (%s) registered\n", l.ID, l.Name)
			return nil
		},
	}
	create.Flags().StringVar(&lot.Name, "name", "", "lot name")
	create.Flags().StringVar(&lot.Address, "address", "", "street address")
	create.Flags().Uint32Var(&lot.TotalSpots, "spots", 0, "total spot count")
	create.Flags().Int64Var(&lot.HourlyRateCents, "hourly-cents", 0, "hourly rate in cents")
	create.Flags().Int64Var(&lot.DailyRateCents, "daily-cents", 0, "daily rate in cents")
	create.Flags().Int64Var(&lot.WeeklyRateCents, "weekly-cents", 0, "weekly rate in cents")
	create.Flags().Int64Var(&lot.MonthlyRateCents, "monthly-cents", 0, "monthly rate in cents")
	cmd.AddCommand(create)

	assign := &cobra.Command{
		Use:   "assign <lot-id> <account-id>",
		Short: "Hand a lot to a parking-admin account",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			lotID, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lot id %q", args[0])
			}
			acctID, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid account id %q", args[1])
			}
			if err := api.AssignLotAdmin(context.Background(), lotID, acctID); err != nil {
				return err
			}
			fmt.Printf("Lot %d assigned to account %d\n", lotID, acctID)
			return nil
		},
	}
	cmd.AddCommand(assign)

	remove := &cobra.Command{
		Use:   "delete <lot-id>",
		Short: "Remove a lot from the platform",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			id, err := strconv.ParseUint(args[0], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid lot id %q", args[0])
			}
			if err := api.DeleteLot(context.Background(), id); err != nil {
				return err
			}
			fmt.Printf("Lot %d deleted\n", id)
			return nil
		},
	}
	cmd.AddCommand(remove)
	return cmd
}

func adminBookingsCmd() *cobra.Command {
	var status, typ, setStatus, reason string

	cmd := &cobra.Command{
		Use:   "bookings [booking-id]",
		Short: "List bookings in your scope, or move one through its lifecycle",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteDashboard); err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 && setStatus != "" {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid booking id %q", args[0])
				}
				b, err := api.SetBookingStatus(ctx, id, setStatus, reason)
				if err != nil {
					return err
				}
				fmt.Printf("Booking %s is now %s\n", b.Reference, b.Status)
				return nil
			}

			list, err := api.AdminBookings(ctx, status, typ)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(list)
			}
			for _, b := range list {
				fmt.Printf("%4d  %-36s acct %-5d %-7s %-11s %s\n",
					b.ID, b.Reference, b.AccountID, b.Type, b.Status, dollars(b.Price.TotalCents))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter by status")
	cmd.Flags().StringVar(&typ, "type", "", "filter by booking type")
	cmd.Flags().StringVar(&setStatus, "set-status", "", "transition the booking to this status")
	cmd.Flags().StringVar(&reason, "reason", "", "reason (required when cancelling)")
	return cmd
}

func adminUsersCmd() *cobra.Command {
	var role, name, email, password, newRole string
	var deleteUser bool

	cmd := &cobra.Command{
		Use:   "users [user-id]",
		Short: "Account console (super admin)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteAdminPanel); err != nil {
				return err
			}
			ctx := context.Background()

			if email != "" {
				acct, err := api.CreateUser(ctx, name, email, password, role)
				if err != nil {
					return err
				}
				fmt.Printf("Created %s (%s) as %s\n", acct.Name, acct.Email, acct.Role)
				return nil
			}
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid user id %q", args[0])
				}
				if deleteUser {
					if err := api.DeleteUser(ctx, id); err != nil {
						return err
					}
					fmt.Printf("User %d deleted\n", id)
					return nil
				}
				if newRole != "" {
					if err := api.SetUserRole(ctx, id, newRole); err != nil {
						return err
					}
					fmt.Printf("User %d is now %s\n", id, newRole)
					return nil
				}
			}

			users, err := api.Users(ctx, role)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(users)
			}
			for _, u := range users {
				fmt.Printf("%4d  %-25s %-30s %s\n", u.ID, u.Name, u.Email, u.Role)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&role, "role", "", "filter by role, or role for --email creation")
	cmd.Flags().StringVar(&name, "name", "", "display name for a new account")
	cmd.Flags().StringVar(&email, "email", "", "create an account with this email")
	cmd.Flags().StringVar(&password, "password", "", "password for a new account")
	cmd.Flags().StringVar(&newRole, "set-role", "", "assign this role to the given user id")
	cmd.Flags().BoolVar(&deleteUser, "delete", false, "delete the given user id")
	return cmd
}

func adminTicketsCmd() *cobra.Command {
	var assignee uint64
	var setStatus string

	cmd := &cobra.Command{
		Use:   "tickets [ticket-id]",
		Short: "Work the support queue",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteSupportPanel); err != nil {
				return err
			}
			ctx := context.Background()

			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid ticket id %q", args[0])
				}
				if setStatus != "" {
					t, err := api.SetTicketStatus(ctx, id, setStatus)
					if err != nil {
						return err
					}
					fmt.Printf("Ticket #%d is now %s\n", t.ID, t.Status)
					return nil
				}
				t, err := api.AssignTicket(ctx, id, assignee)
				if err != nil {
					return err
				}
				fmt.Printf("Ticket #%d assigned, status %s\n", t.ID, t.Status)
				return nil
			}

			tickets, err := api.Tickets(ctx, "")
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(tickets)
			}
			for _, t := range tickets {
				fmt.Printf("%4d  %-8s %-11s %s\n", t.ID, t.Priority, t.Status, t.Subject)
			}
			return nil
		},
	}
	cmd.Flags().Uint64Var(&assignee, "assign-to", 0, "support account id (defaults to yourself)")
	cmd.Flags().StringVar(&setStatus, "set-status", "", "OPEN, IN_PROGRESS or RESOLVED")
	return cmd
}
