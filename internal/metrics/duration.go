package metrics

import "strconv"

// ParseDuration converts the duration field of a result document to seconds.
//
// Producers emit three shapes: a bare number, an object with a "seconds" or
// "nanoseconds" field, and a suffixed string like "300s", "5m", or "1h".
// Bare numbers and bare numeric strings are taken as seconds. Malformed
// input yields 0; the function never fails.
func ParseDuration(v any) float64 {
	switch d := v.(type) {
	case float64:
		return d
	case int:
		return float64(d)
	case int64:
		return float64(d)
	case map[string]any:
		obj := RawResult(d)
		if _, ok := obj["seconds"]; ok {
			return obj.Float("seconds")
		}
		if _, ok := obj["nanoseconds"]; ok {
			return obj.Float("nanoseconds") / 1e9
		}
		return 0
	case string:
		return parseDurationString(d)
	}
	return 0
}

func parseDurationString(s string) float64 {
	if s == "" {
		return 0
	}
	if n, err := strconv.Atoi(s); err == nil {
		return float64(n)
	}

	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil {
		return 0
	}
	switch s[len(s)-1] {
	case 's':
		return float64(n)
	case 'm':
		return float64(n) * 60
	case 'h':
		return float64(n) * 3600
	}
	return 0
}
