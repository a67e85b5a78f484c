package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Credentials is the persisted session: both tokens with their expiry
// plus enough account info to show `auth status` without a round trip.
type Credentials struct {
	AccessToken      string    `json:"access_token"`
	AccessExpiresAt  time.Time `json:"access_expires_at"`
	RefreshToken     string    `json:"refresh_token"`
	RefreshExpiresAt time.Time `json:"refresh_expires_at"`
	AccountID        uint64    `json:"account_id"`
	Email            string    `json:"email"`
	Role             string    `json:"role"`
}

// AccessExpired reports whether the access token is past its expiry.
func (c *Credentials) AccessExpired(now time.Time) bool {
	return !c.AccessExpiresAt.IsZero() && now.UTC().After(c.AccessExpiresAt)
}

// LoadCredentials reads the stored session. A missing file returns
// (nil, nil): not logged in is not an error.
func LoadCredentials() (*Credentials, error) {
	path, err := CredentialsPath()
	if err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("credentials path is a directory: %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var creds Credentials
	if err := json.NewDecoder(f).Decode(&creds); err != nil {
		return nil, err
	}
	return &creds, nil
}

// SaveCredentials writes the session file with owner-only permissions.
func SaveCredentials(creds *Credentials) error {
	if _, err := ensureConfigDir(); err != nil {
		return err
	}
	path, err := CredentialsPath()
	if err != nil {
		return err
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(creds)
}

// ClearCredentials removes the session file. Already gone is fine.
func ClearCredentials() error {
	path, err := CredentialsPath()
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// FileTokenStore adapts the credential file to the client's token
// store interface.
type FileTokenStore struct{}

func (FileTokenStore) AccessToken() (string, error) {
	creds, err := LoadCredentials()
	if err != nil || creds == nil {
		return "", err
	}
	return creds.AccessToken, nil
}

func (FileTokenStore) Clear() error { return ClearCredentials() }
