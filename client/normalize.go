package client

// NormalizeIDs rewrites every document primary-key field ("_id") in a
// decoded JSON value to the "id" field the rest of the code expects.
// The rewrite recurses through nested objects and arrays; sibling
// fields pass through untouched. An existing "id" key wins, the "_id"
// is then dropped rather than overwriting it.
func NormalizeIDs(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			if k == "_id" {
				continue
			}
			out[k] = NormalizeIDs(val)
		}
		if raw, ok := t["_id"]; ok {
			if _, taken := out["id"]; !taken {
				out["id"] = NormalizeIDs(raw)
			}
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = NormalizeIDs(val)
		}
		return out
	default:
		return v
	}
}
