// Package storage persists the CLI's local state under
// ~/.config/dfwpark: the credential file and a small sqlite history of
// bookings made from this machine.
package storage

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	credsFile    = "credentials.json"
	bookingsFile = "bookings.db"
)

func ConfigDir() (string, error) {
	if dir := os.Getenv("DFWPARK_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "dfwpark"), nil
}

func CredentialsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credsFile), nil
}

func BookingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, bookingsFile), nil
}

func ensureConfigDir() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create config dir: %w", err)
	}
	return dir, nil
}
