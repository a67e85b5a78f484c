package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func supportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "support",
		Short: "Open and follow support tickets",
	}
	cmd.AddCommand(supportOpenCmd())
	cmd.AddCommand(supportListCmd())
	return cmd
}

func supportOpenCmd() *cobra.Command {
	var subject, message, priority, category string

	cmd := &cobra.Command{
		Use:   "open",
		Short: "Open a new ticket",
		RunE: func(cmd *cobra.Command, args []string) error {
			if subject == "" || message == "" {
				return fmt.Errorf("--subject and --message are required")
			}
			t, err := api.CreateTicket(context.Background(), subject, message, priority, category)
			if err != nil {
				return err
			}
			fmt.Printf("Ticket #%d opened (%s, %s)\n", t.ID, t.Priority, t.Status)
			return nil
		},
	}
	cmd.Flags().StringVar(&subject, "subject", "", "ticket subject")
	cmd.Flags().StringVar(&message, "message", "", "ticket body")
	cmd.Flags().StringVar(&priority, "priority", "", "LOW, MEDIUM, HIGH or URGENT (default MEDIUM)")
	cmd.Flags().StringVar(&category, "category", "", "free-form category")
	return cmd
}

func supportListCmd() *cobra.Command {
	var status string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List your tickets (the whole queue for support staff)",
		RunE: func(cmd *cobra.Command, args []string) error {
			tickets, err := api.Tickets(context.Background(), status)
			if err != nil {
				return err
			}
			if outputJSON {
				return printJSON(tickets)
			}
			for _, t := range tickets {
				fmt.Printf("%4d  %-8s %-11s %s\n", t.ID, t.Priority, t.Status, t.Subject)
			}
			if len(tickets) == 0 {
				fmt.Println("No tickets.")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&status, "status", "", "filter: OPEN, IN_PROGRESS or RESOLVED")
	return cmd
}
