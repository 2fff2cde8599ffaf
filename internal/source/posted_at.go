package source

import (
	"strconv"
	"strings"
	"time"
)

// NormalizeDatetimeToUTCISO converts t to UTC, zeroes the sub-second
// component, and formats it with a trailing Z - the one posted_at shape
// every adapter emits regardless of its source timestamp format.
func NormalizeDatetimeToUTCISO(t time.Time) string {
	return t.UTC().Truncate(time.Second).Format("2006-01-02T15:04:05Z")
}

// ParseISO8601 parses an ISO-8601 timestamp, tolerating the absence of a
// timezone offset (assumed UTC) and the presence of fractional seconds.
func ParseISO8601(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	layouts := []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05.999999",
		"2006-01-02 15:04:05",
		"2006-01-02",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseEpochMillis parses a string or numeric epoch-millisecond value.
func ParseEpochMillis(v interface{}) (time.Time, bool) {
	ms, ok := asInt64(v)
	if !ok {
		return time.Time{}, false
	}
	return time.UnixMilli(ms), true
}

// ParseEpochSeconds parses a string or numeric epoch-second value.
func ParseEpochSeconds(v interface{}) (time.Time, bool) {
	sec, ok := asInt64(v)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(sec, 0), true
}

func asInt64(v interface{}) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return int64(t), true
	case int64:
		return t, true
	case int:
		return int64(t), true
	case string:
		t = strings.TrimSpace(t)
		if t == "" {
			return 0, false
		}
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			f, ferr := strconv.ParseFloat(t, 64)
			if ferr != nil {
				return 0, false
			}
			return int64(f), true
		}
		return n, true
	}
	return 0, false
}

// ParseCommonDateFormats tries the small fallback chain apple/uber
// adapters need for dates that arrive in inconsistent formats: ISO-8601,
// then a handful of common strptime-style layouts.
func ParseCommonDateFormats(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	if t, ok := ParseISO8601(s); ok {
		return t, true
	}
	layouts := []string{
		"2006-01-02",
		"01/02/2006",
		"02/01/2006",
		"2006-01-02 15:04:05",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// WorkableDate parses Workable's posted_at shape: YYYY-MM-DD, assumed UTC
// midnight.
func WorkableDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
