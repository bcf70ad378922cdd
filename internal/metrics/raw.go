package metrics

// RawResult is one decoded benchmark result document.
//
// Producer versions disagree on shapes and types: durations arrive as
// numbers, objects, or strings, and counters occasionally arrive as
// booleans. Access goes through tolerant helpers that return zero values
// instead of failing, so a partially filled document still extracts.
type RawResult map[string]any

// Object returns the nested object under key, or nil when absent or not an
// object. Lookups on a nil RawResult return zero values, so helper calls
// chain safely across missing sections.
func (r RawResult) Object(key string) RawResult {
	if v, ok := r[key].(map[string]any); ok {
		return RawResult(v)
	}
	return nil
}

// Float returns the numeric value under key. Booleans coerce to 0/1;
// anything else is 0.
func (r RawResult) Float(key string) float64 {
	switch v := r[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case bool:
		if v {
			return 1
		}
		return 0
	}
	return 0
}

// Int returns the numeric value under key truncated to an integer.
func (r RawResult) Int(key string) int64 {
	return int64(r.Float(key))
}

// String returns the string value under key, or "" when absent or not a string.
func (r RawResult) String(key string) string {
	if v, ok := r[key].(string); ok {
		return v
	}
	return ""
}
