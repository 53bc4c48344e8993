package utils

import (
	"strconv"
	"strings"
	"time"
)

// isoLayouts are tried in order once a trailing Z has been rewritten to +00:00.
// Layouts without an offset are read as UTC.
var isoLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05.999999999Z07:00",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05.999999999-0700",
	"2006-01-02 15:04:05.999999999-0700",
	"2006-01-02T15:04-0700",
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02T15",
	"2006-01-02",
	"20060102",
}

// ParseDate normalizes a start/end date value.
//
// nil yields nil. A time.Time is returned unchanged. Strings containing "/" are
// read day-first (DD/MM/YYYY); each part may be padded with spaces or carry a
// leading "+". If that fails the value is tried as ISO-8601, extended or basic offset.
// Anything else fails with ErrInvalidDateFormat carrying the original input.
func ParseDate(value any) (*time.Time, error) {
	switch v := value.(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	case *time.Time:
		return v, nil
	case *string:
		if v == nil {
			return nil, nil
		}
		return parseDateString(*v)
	case string:
		return parseDateString(v)
	}
	return nil, ErrInvalidDateFormat.With(nil, "input", value)
}

func parseDateString(s string) (*time.Time, error) {
	if strings.Contains(s, "/") {
		if t, ok := parseDayFirst(s); ok {
			return &t, nil
		}
	}

	iso := s
	if strings.HasSuffix(iso, "Z") {
		iso = strings.TrimSuffix(iso, "Z") + "+00:00"
	}
	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, iso, time.UTC); err == nil {
			t = t.UTC()
			return &t, nil
		}
	}
	return nil, ErrInvalidDateFormat.With(nil, "input", s)
}

func parseDayFirst(s string) (time.Time, bool) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return time.Time{}, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return time.Time{}, false
		}
		nums[i] = n
	}
	day, month, year := nums[0], nums[1], nums[2]
	if year < 1 || year > 9999 || month < 1 || month > 12 || day < 1 {
		return time.Time{}, false
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	// time.Date normalizes overflow (31/02 -> 03/03); reject it instead.
	if t.Day() != day || t.Month() != time.Month(month) || t.Year() != year {
		return time.Time{}, false
	}
	return t, true
}
