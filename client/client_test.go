package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memTokenStore is an in-memory TokenStore for exercising the bearer
// attach and the 401 clearing path without touching the filesystem.
type memTokenStore struct {
	token   string
	cleared bool
}

func (m *memTokenStore) AccessToken() (string, error) { return m.token, nil }
func (m *memTokenStore) Clear() error {
	m.cleared = true
	m.token = ""
	return nil
}

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success":true,"data":{"hotels":[]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokenStore{token: "tok-123"})
	_, err := c.Hotels(context.Background(), "")
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientNoTokenNoHeader(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"success":true,"data":{"hotels":[]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokenStore{})
	_, err := c.Hotels(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClientUnwrapsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/hotels/7", r.URL.Path)
		w.Write([]byte(`{"success":true,"data":{"hotel":{"id":7,"name":"Grand Hyatt DFW","city":"Dallas"}}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	h, err := c.Hotel(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), h.ID)
	assert.Equal(t, "Grand Hyatt DFW", h.Name)
}

func TestClientNormalizesUnderscoreID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":true,"data":{"hotels":[{"_id":42,"name":"Hilton Garden Inn"}]}}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	hotels, err := c.Hotels(context.Background(), "")
	require.NoError(t, err)
	require.Len(t, hotels, 1)
	assert.Equal(t, uint64(42), hotels[0].ID)
}

func TestClientErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success":false,"error":"hotel not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	_, err := c.Hotel(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "hotel not found")
}

func TestClientUnauthorizedClearsSession(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"success":false,"error":"invalid or expired token"}`))
	}))
	defer srv.Close()

	store := &memTokenStore{token: "stale"}
	expired := false
	c := New(srv.URL, store)
	c.OnSessionExpired = func() { expired = true }

	_, err := c.MyBookings(context.Background())
	assert.ErrorIs(t, err, ErrSessionExpired)
	assert.True(t, store.cleared, "401 should clear stored credentials")
	assert.True(t, expired, "401 should fire the session-expired hook")
}

func TestClientDeleteNoContent(t *testing.T) {
	var gotMethod, gotPath, gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	c := New(srv.URL, &memTokenStore{token: "admin-tok"})
	require.NoError(t, c.DeleteRoom(context.Background(), 5, 9))

	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/v1/admin/hotels/5/rooms/9", gotPath)
	assert.Equal(t, "Bearer admin-tok", gotAuth)
}

func TestClientDeleteSurfacesError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		w.Write([]byte(`{"success":false,"error":"spot is occupied"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, nil)
	err := c.DeleteSpot(context.Background(), 3, 44)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "spot is occupied")
}

func TestClientDefaultBaseURL(t *testing.T) {
	c := New("", nil)
	assert.Equal(t, "http://localhost:8080", c.BaseURL)
}
