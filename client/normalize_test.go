package client

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func normalizeJSON(t *testing.T, in string) any {
	t.Helper()
	var v any
	require.NoError(t, json.Unmarshal([]byte(in), &v))
	return NormalizeIDs(v)
}

func TestNormalizeTopLevelID(t *testing.T) {
	out := normalizeJSON(t, `{"_id":"abc123","name":"Hyatt"}`)
	m := out.(map[string]any)
	assert.Equal(t, "abc123", m["id"])
	assert.Equal(t, "Hyatt", m["name"])
	assert.NotContains(t, m, "_id")
}

func TestNormalizeNestedAndArrays(t *testing.T) {
	out := normalizeJSON(t, `{
		"hotels": [
			{"_id":"h1","rooms":[{"_id":"r1","type":"SUITE"}]},
			{"_id":"h2","rooms":[]}
		]
	}`)
	m := out.(map[string]any)
	hotels := m["hotels"].([]any)
	h1 := hotels[0].(map[string]any)
	assert.Equal(t, "h1", h1["id"])
	rooms := h1["rooms"].([]any)
	r1 := rooms[0].(map[string]any)
	assert.Equal(t, "r1", r1["id"])
	assert.Equal(t, "SUITE", r1["type"])
	assert.NotContains(t, r1, "_id")
}

func TestNormalizeExistingIDWins(t *testing.T) {
	out := normalizeJSON(t, `{"_id":"doc","id":"ui"}`)
	m := out.(map[string]any)
	assert.Equal(t, "ui", m["id"])
	assert.NotContains(t, m, "_id")
}

func TestNormalizeSiblingsUntouched(t *testing.T) {
	out := normalizeJSON(t, `{"_id":7,"price":{"totalCents":525},"tags":["a","b"]}`)
	m := out.(map[string]any)
	assert.Equal(t, float64(7), m["id"])
	assert.Equal(t, float64(525), m["price"].(map[string]any)["totalCents"])
	assert.Equal(t, []any{"a", "b"}, m["tags"])
}

func TestNormalizeScalarPassthrough(t *testing.T) {
	assert.Equal(t, "plain", NormalizeIDs("plain"))
	assert.Nil(t, NormalizeIDs(nil))
}
