package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

func parkingCmd() *cobra.Command {
	var availableOnly bool

	cmd := &cobra.Command{
		Use:   "parking [lot-id]",
		Short: "Browse parking lots and spot availability",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			if len(args) == 1 {
				id, err := strconv.ParseUint(args[0], 10, 64)
				if err != nil {
					return fmt.Errorf("invalid lot id %q", args[0])
				}
				return showLot(ctx, id, availableOnly)
			}

			lots, err := api.ParkingLots(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(lots)
			}
			for _, l := range lots {
				fmt.Printf("%4d  %-30s %s/hr  %s/day  %d spots\n",
					l.ID, l.Name, dollars(l.HourlyRateCents), dollars(l.DailyRateCents), l.TotalSpots)
			}
			if len(lots) == 0 {
				fmt.Println("No parking lots found.")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&availableOnly, "available", false, "only show free spots")
	return cmd
}

func showLot(ctx context.Context, id uint64, availableOnly bool) error {
	l, err := api.ParkingLot(ctx, id)
	if err != nil {
		return err
	}
	spots, err := api.Spots(ctx, id, availableOnly)
	if err != nil {
		return err
	}
	if outputJSON {
		return printJSON(map[string]any{"parkingLot": l, "spots": spots})
	}
	fmt.Printf("%s\n%s\nRates: %s/hr, %s/day, %s/wk, %s/mo\n",
		l.Name, l.Address,
		dollars(l.HourlyRateCents), dollars(l.DailyRateCents),
		dollars(l.WeeklyRateCents), dollars(l.MonthlyRateCents))
	fmt.Println("Spots:")
	for _, s := range spots {
		state := "free"
		if !s.Available {
			state = "occupied"
		}
		fmt.Printf("  %4d  %-6s section %-3s %-8s %s\n", s.ID, s.Number, s.Section, s.Type, state)
	}
	return nil
}
