package bookstore

import (
	"strconv"
	"strings"
	"time"
)

// displayTimeLayout is the single textual form dates are rendered in.
const displayTimeLayout = "2006-01-02 15:04:05"

// NormalizeDate extends a date-only value with a zero time of day so every
// date renders as a full timestamp. Values that already carry a time are
// reformatted into the same layout.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if strings.Contains(s, " ") {
		return s
	}
	if strings.Contains(s, "T") {
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(displayTimeLayout)
			}
		}
		return s
	}
	return s + " 00:00:00"
}

// cellString converts a driver value to text. ok is false for NULL.
func cellString(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case []byte:
		return string(x), true
	case int64:
		return strconv.FormatInt(x, 10), true
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64), true
	case time.Time:
		return x.Format(displayTimeLayout), true
	default:
		return "", false
	}
}

// cellInt64 converts a driver value to an integer. ok is false for NULL or
// values that are not numeric.
func cellInt64(v any) (int64, bool) {
	switch x := v.(type) {
	case int64:
		return x, true
	case float64:
		return int64(x), true
	case string:
		n, err := strconv.ParseInt(x, 10, 64)
		return n, err == nil
	case []byte:
		n, err := strconv.ParseInt(string(x), 10, 64)
		return n, err == nil
	default:
		return 0, false
	}
}
