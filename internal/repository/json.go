package repository

import "encoding/json"

// Amenity and feature lists are stored as JSON arrays in text columns.
// A NULL or empty column decodes to an empty slice, never nil checks
// leaking into handlers.

func encodeList(items []string) string {
	if len(items) == 0 {
		return "[]"
	}
	b, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(b)
}

func decodeList(raw string) []string {
	if raw == "" {
		return []string{}
	}
	var items []string
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return []string{}
	}
	return items
}
