package handler // handler defines the HTTP handlers for every resource

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dfwpark/dfw-parking/internal/repository"
)

// Successful responses wrap their payload under a `data` key next to a
// boolean `success` flag; failures carry `error` instead. List
// payloads sit under named sub-keys inside data (hotels, parkingLots,
// bookings, users, tickets).

func ok(c echo.Context, status int, data echo.Map) error {
	return c.JSON(status, echo.Map{"success": true, "data": data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, echo.Map{"success": false, "error": msg})
}

// failErr maps repository sentinel errors onto status codes. Unknown
// errors become an opaque 500 so driver details never leak to clients.
func failErr(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, "not found")
	case errors.Is(err, repository.ErrEmailExists):
		return fail(c, http.StatusConflict, "email already exists")
	case errors.Is(err, repository.ErrConflict):
		return fail(c, http.StatusConflict, "conflict")
	case errors.Is(err, repository.ErrForbidden):
		return fail(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, repository.ErrBadTransition):
		return fail(c, http.StatusUnprocessableEntity, "invalid status transition")
	}
	return fail(c, http.StatusInternalServerError, fallback)
}

// accountID extracts the authenticated account id stored by the JWT
// middleware. Claims decoded from JSON arrive as float64.
func accountID(c echo.Context) (uint64, error) {
	switch t := c.Get("account_id").(type) {
	case uint64:
		return t, nil
	case int64:
		return uint64(t), nil
	case float64:
		return uint64(t), nil
	case string:
		if n, err := strconv.ParseUint(t, 10, 64); err == nil {
			return n, nil
		}
	}
	return 0, errors.New("invalid account_id in context")
}

// pathID parses the :id (or named) route parameter.
func pathID(c echo.Context, name string) (uint64, error) {
	return strconv.ParseUint(c.Param(name), 10, 64)
}
