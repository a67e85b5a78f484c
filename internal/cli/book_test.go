package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmenities(t *testing.T) {
	names, cents, err := parseAmenities([]string{"BREAKFAST=1000", "PARKING=1500"})
	require.NoError(t, err)
	assert.Equal(t, []string{"BREAKFAST", "PARKING"}, names)
	assert.Equal(t, []int64{1000, 1500}, cents)
}

func TestParseAmenitiesEmpty(t *testing.T) {
	names, cents, err := parseAmenities(nil)
	require.NoError(t, err)
	assert.Nil(t, names)
	assert.Nil(t, cents)
}

func TestParseAmenitiesRejectsBadInput(t *testing.T) {
	for _, bad := range []string{"BREAKFAST", "=1000", "SPA=ten", "SPA=-5"} {
		_, _, err := parseAmenities([]string{bad})
		assert.Error(t, err, "input %q", bad)
	}
}
