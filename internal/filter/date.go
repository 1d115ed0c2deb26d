package filter

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"github.com/vburojevic/logstat/internal/domain"
)

// isoLayouts are tried in order. Fractional seconds are accepted after the
// seconds field without being spelled out in the layout. Offsets may be
// written with or without a colon.
var isoLayouts = []string{
	"2006-01-02T15:04:05Z07:00",
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15Z0700",
	"2006-01-02T15",
	"2006-01-02",

	// basic format
	"20060102T150405Z07:00",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102T1504Z07:00",
	"20060102T1504Z0700",
	"20060102T1504",
	"20060102",
}

// ParseISO parses an ISO-8601 date or date-time in extended (2025-06-22) or
// basic (20250622) form. A space may separate the date and time parts.
// Values without an offset are returned in UTC.
func ParseISO(s string) (time.Time, error) {
	v := strings.TrimSpace(s)
	switch {
	case len(v) > 10 && v[4] == '-' && v[10] == ' ':
		v = v[:10] + "T" + v[11:]
	case len(v) > 8 && v[8] == ' ':
		v = v[:8] + "T" + v[9:]
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid isoformat string: %q", s)
}

// SameDate compares the calendar date of a and b, each in its own offset
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// DateFilter keeps records whose timestamp falls on one calendar date
type DateFilter struct {
	key      string
	raw      string
	date     time.Time
	parseErr error
}

// NewDateFilter creates a filter on the timestamp stored under key.
// An unparsable date does not fail here; it is reported against the first
// line that reaches the date check.
func NewDateFilter(key, date string) *DateFilter {
	f := &DateFilter{key: key, raw: date}
	f.date, f.parseErr = ParseISO(date)
	return f
}

// Date returns the parsed filter date (zero if it did not parse)
func (f *DateFilter) Date() time.Time {
	return f.date
}

// Match returns true when the record's timestamp is on the filter date.
// Records without a timestamp value are skipped, not rejected.
func (f *DateFilter) Match(rec gjson.Result, line int) (bool, error) {
	ts := Field(rec, f.key)
	if !ts.Exists() || ts.Type == gjson.Null || (ts.Type == gjson.String && ts.Str == "") {
		return false, nil
	}
	if ts.Type != gjson.String {
		return false, domain.NewValidationError(line, fmt.Sprintf("invalid date value %s", ts.Raw), nil)
	}

	recTime, err := ParseISO(ts.Str)
	if err != nil {
		return false, domain.NewValidationError(line, "invalid date format", err)
	}
	if f.parseErr != nil {
		return false, domain.NewValidationError(line, "invalid date filter", f.parseErr)
	}
	return SameDate(recTime, f.date), nil
}
