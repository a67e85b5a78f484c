package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dfwpark/dfw-parking/guard"
)

func profileCmd() *cobra.Command {
	var name, phone, address string

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or update your profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireRoute(guard.RouteProfile); err != nil {
				return err
			}
			ctx := context.Background()

			if name != "" {
				acct, err := api.UpdateMe(ctx, name, phone, address)
				if err != nil {
					return err
				}
				fmt.Printf("Profile updated for %s\n", acct.Email)
				return nil
			}

			acct, err := api.Me(ctx)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(acct)
			}
			fmt.Printf("Name: %s\nEmail: %s\nRole: %s\n", acct.Name, acct.Email, acct.Role)
			if acct.Phone != "" {
				fmt.Printf("Phone: %s\n", acct.Phone)
			}
			if acct.Address != "" {
				fmt.Printf("Address: %s\n", acct.Address)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "new display name (triggers an update)")
	cmd.Flags().StringVar(&phone, "phone", "", "new phone number")
	cmd.Flags().StringVar(&address, "address", "", "new postal address")
	return cmd
}
