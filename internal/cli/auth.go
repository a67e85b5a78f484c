package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dfwpark/dfw-parking/client"
	"github.com/dfwpark/dfw-parking/client/storage"
)

func authCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Manage the stored session",
	}
	cmd.AddCommand(authLoginCmd())
	cmd.AddCommand(authRegisterCmd())
	cmd.AddCommand(authStatusCmd())
	cmd.AddCommand(authLogoutCmd())
	return cmd
}

func authLoginCmd() *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if email, password, err = promptCredentials(email, password); err != nil {
				return err
			}

			sess, err := api.Login(context.Background(), email, password)
			if err != nil {
				return err
			}
			if err := saveSession(sess); err != nil {
				return err
			}
			fmt.Printf("Signed in as %s (%s)\n", sess.User.Email, sess.User.Role)
			return nil
		},
	}
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	return cmd
}

func authRegisterCmd() *cobra.Command {
	var name, email, password, phone, address string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a customer account",
		RunE: func(cmd *cobra.Command, args []string) error {
			if name == "" {
				return fmt.Errorf("--name is required")
			}
			var err error
			if email, password, err = promptCredentials(email, password); err != nil {
				return err
			}

			sess, err := api.Register(context.Background(), name, email, password, phone, address)
			if err != nil {
				return err
			}
			if err := saveSession(sess); err != nil {
				return err
			}
			fmt.Printf("Account created, signed in as %s\n", sess.User.Email)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password (prompted when omitted)")
	cmd.Flags().StringVar(&phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&address, "address", "", "postal address")
	return cmd
}

func authStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show the stored session",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds == nil {
				fmt.Println("Not signed in.")
				return nil
			}
			if outputJSON {
				return printJSON(creds)
			}
			state := "valid"
			if creds.AccessExpired(timeNow()) {
				state = "expired"
			}
			fmt.Printf("Signed in as %s (%s), access token %s until %s\n",
				creds.Email, creds.Role, state, creds.AccessExpiresAt.Format("2006-01-02 15:04 MST"))
			return nil
		},
	}
}

func authLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and clear stored credentials",
		RunE: func(cmd *cobra.Command, args []string) error {
			creds, err := storage.LoadCredentials()
			if err != nil {
				return err
			}
			if creds != nil && creds.RefreshToken != "" {
				// Best effort; local state clears regardless.
				if err := api.Logout(context.Background(), creds.RefreshToken); err != nil {
					fmt.Fprintf(os.Stderr, "server-side revoke failed: %v\n", err)
				}
			}
			if err := storage.ClearCredentials(); err != nil {
				return err
			}
			fmt.Println("Signed out.")
			return nil
		},
	}
}

func promptCredentials(email, password string) (string, string, error) {
	if email == "" {
		fmt.Print("Email: ")
		reader := bufio.NewReader(os.Stdin)
		value, err := reader.ReadString('\n')
		if err != nil {
			return "", "", err
		}
		email = strings.TrimSpace(value)
	}
	if password == "" {
		fmt.Print("Password: ")
		raw, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return "", "", err
		}
		password = strings.TrimSpace(string(raw))
	}
	if email == "" || password == "" {
		return "", "", fmt.Errorf("email and password are required")
	}
	return email, password, nil
}

func saveSession(sess client.Session) error {
	return storage.SaveCredentials(&storage.Credentials{
		AccessToken:      sess.Access.Token,
		AccessExpiresAt:  sess.Access.Expires,
		RefreshToken:     sess.Refresh.Token,
		RefreshExpiresAt: sess.Refresh.Expires,
		AccountID:        sess.User.ID,
		Email:            sess.User.Email,
		Role:             sess.User.Role,
	})
}
