package mapper

import (
	"strings"
	"time"
)

// isoLayout matches the millisecond UTC form emitted for every normalized date.
const isoLayout = "2006-01-02T15:04:05.000Z"

// Layouts accepted by NormalizeDate, tried in order. Inputs without a zone
// are interpreted as UTC.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05Z07",
	"2006-01-02 15:04:05",
	"2006-01-02",
	time.RFC1123Z,
	time.RFC1123,
}

// NormalizeDate returns the ISO-8601 UTC form of a date-like value, or nil
// when v is absent or cannot be parsed as a calendar instant.
func NormalizeDate(v any) *string {
	var t time.Time
	switch d := v.(type) {
	case nil:
		return nil
	case string:
		parsed, ok := parseDate(d)
		if !ok {
			return nil
		}
		t = parsed
	case *string:
		if d == nil {
			return nil
		}
		return NormalizeDate(*d)
	case time.Time:
		if d.IsZero() {
			return nil
		}
		t = d
	case *time.Time:
		if d == nil {
			return nil
		}
		return NormalizeDate(*d)
	default:
		return nil
	}
	s := t.UTC().Format(isoLayout)
	return &s
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
