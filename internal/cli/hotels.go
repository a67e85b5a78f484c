package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func hotelsCmd() *cobra.Command {
	var city string

	cmd := &cobra.Command{
		Use:   "hotels [hotel-id]",
		Short: "Browse hotels and their rooms",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid hotel id %q", args[0])
				}
				return showHotel(ctx, id)
			}

			hotels, err := api.Hotels(ctx, city)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(hotels)
			}
			for _, h := range hotels {
				fmt.Printf("%4d  %-30s %s, %s  %d★\n", h.ID, h.Name, h.City, h.State, h.Stars)
			}
			if len(hotels) == 0 {
				fmt.Println("No hotels found.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&city, "city", "", "filter by city")
	return cmd
}

func showHotel(ctx context.Context, id uint64) error {
	h, err := api.Hotel(ctx, id)
	if err != nil {
		return err
	}
	rooms, err := api.Rooms(ctx, id)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(map[string]any{"hotel": h, "rooms": rooms})
	}
	fmt.Printf("%s (%d★)\n%s, %s %s\n", h.Name, h.Stars, h.AddressLine1, h.City, h.Zip)
	if h.Description != "" {
		fmt.Println(h.Description)
	}
	fmt.Println("Rooms:")
	for _, r := range rooms {
		fmt.Printf("  %4d  %-10s %s/night  sleeps %d  (%d left)\n",
			r.ID, r.Type, dollars(r.PriceCents), r.Capacity, r.Available)
	}
	return nil
}
