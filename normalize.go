package labsync

import (
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order; the first successful parse wins.
// MM/DD/YYYY comes before DD/MM/YYYY, so ambiguous numeric dates such as
// "03/04/2024" resolve month-first. The sheets predate this tool and the
// intent of their authors is unknown, so the order is kept as-is.
// The numeric layouts use non-padded verbs so both "01/15/2024" and
// "1/15/2024" parse.
var dateLayouts = []string{
	"2006-1-2",        // 2024-01-15
	"2006/1/2",        // 2024/01/15
	"1/2/2006",        // 01/15/2024
	"2/1/2006",        // 15/01/2024
	"January 2, 2006", // January 15, 2024
	"Jan 2, 2006",     // Jan 15, 2024
}

// ParseYear converts a raw cell value to a year. It returns false for empty
// cells and for anything that does not parse as an integer; unparseable input
// is not an error.
func ParseYear(raw string) (int, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, false
	}
	y, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return y, true
}

// ParseDate converts a raw cell value to a UTC calendar date (midnight).
// It tries each supported layout in order and returns false if none match,
// degrading unsupported formats to "no date" rather than failing the row.
func ParseDate(raw string) (time.Time, bool) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}

// TrimString converts a raw cell value to a trimmed string. Missing cells
// become the empty string.
func TrimString(raw string) string {
	return strings.TrimSpace(raw)
}
