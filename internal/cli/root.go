// Package cli implements the dfwctl command tree. It drives the REST
// client the same way the web UI would: the guard package decides
// which panels the signed-in role may open, and any denial funnels to
// the login flow instead of a forbidden error.
package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dfwpark/dfw-parking/client"
	"github.com/dfwpark/dfw-parking/client/storage"
)

var (
	outputJSON bool
	api        *client.Client
)

var rootCmd = &cobra.Command{
	Use:          "dfwctl",
	Short:        "DFW Parking hotel and parking reservations",
	SilenceUsage: true,
}

func Execute() {
	baseURL := os.Getenv("DFWPARK_API_URL")
	api = client.New(baseURL, storage.FileTokenStore{})
	api.OnSessionExpired = func() {
		fmt.Fprintln(os.Stderr, "Session expired. Run `dfwctl auth login` to sign in again.")
	}

	rootCmd.PersistentFlags().BoolVar(&outputJSON, "json", false, "print raw JSON output")

	rootCmd.AddCommand(authCmd())
	rootCmd.AddCommand(hotelsCmd())
	rootCmd.AddCommand(parkingCmd())
	rootCmd.AddCommand(bookCmd())
	rootCmd.AddCommand(bookingsCmd())
	rootCmd.AddCommand(profileCmd())
	rootCmd.AddCommand(supportCmd())
	rootCmd.AddCommand(adminCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// printJSON renders v indented to stdout.
func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
