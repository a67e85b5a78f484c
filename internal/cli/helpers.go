package cli

import (
	"fmt"
	"time"

	"github.com/dfwpark/dfw-parking/client/storage"
	"github.com/dfwpark/dfw-parking/guard"
)

// timeNow is swapped in tests.
var timeNow = time.Now

// currentRole returns the signed-in role, or guard.RoleAnonymous when
// no usable session is stored.
func currentRole() string {
	creds, err := storage.LoadCredentials()
	if err != nil || creds == nil {
		return guard.RoleAnonymous
	}
	if creds.AccessExpired(timeNow()) {
		return guard.RoleAnonymous
	}
	return creds.Role
}

// requireRoute gates a command on the guard policy. A denial behaves
// like the web app: point at login rather than a forbidden error.
func requireRoute(route string) error {
	if guard.Resolve(currentRole(), route) == guard.RedirectLogin {
		return fmt.Errorf("please sign in first: run `dfwctl auth login`")
	}
	return nil
}

func dollars(cents int64) string {
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

// parseDay accepts YYYY-MM-DD or full RFC 3339 stamps.
func parseDay(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q (want YYYY-MM-DD or RFC 3339)", s)
	}
	return t, nil
}
