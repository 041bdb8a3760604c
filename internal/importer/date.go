package importer

import (
	"math"
	"strconv"
	"time"
)

// Years outside this window are treated as garbage cells misread as dates.
const (
	minYear = 2000
	maxYear = 2100
)

// Spreadsheet serial day 0 under the 1900 date system (Lotus off-by-one
// included, so 1899-12-30 rather than 1899-12-31).
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.Local)

// textLayouts are tried in order against a normalized text cell.
// Layouts without a time component resolve to local midday.
var textLayouts = []struct {
	layout   string
	dateOnly bool
}{
	{"2006-01-02 15:04:05", false},
	{"2006-01-02 15:04", false},
	{"2006-01-02", true},
	{"2006/01/02 15:04:05", false},
	{"2006/01/02 15:04", false},
	{"2006/01/02", true},
	{time.RFC3339, false},
	{"2006.01.02", true},
	{"02-01-2006", true},
	{"02/01/2006", true},
}

// ResolveDate converts a raw date cell into a local date-time. It accepts an
// already-typed time, a spreadsheet serial number, or text in a bounded set
// of layouts. Date-only values resolve to midday so a timezone conversion
// cannot shift them across a day boundary. Returns false for anything else,
// including resolvable dates outside the sane year window.
func ResolveDate(raw interface{}) (time.Time, bool) {
	switch v := raw.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return checkYear(middayIfMidnight(v))
	case float64:
		return resolveSerial(v)
	case float32:
		return resolveSerial(float64(v))
	case int:
		return resolveSerial(float64(v))
	case int64:
		return resolveSerial(float64(v))
	case string:
		return resolveText(v)
	default:
		return time.Time{}, false
	}
}

func resolveSerial(serial float64) (time.Time, bool) {
	if serial <= 0 || math.IsNaN(serial) || math.IsInf(serial, 0) {
		return time.Time{}, false
	}

	days := int(serial)
	frac := serial - float64(days)

	t := serialEpoch.AddDate(0, 0, days)
	if frac > 1e-9 {
		t = t.Add(time.Duration(frac * 24 * float64(time.Hour)))
	} else {
		// No encoded time component: same midday rule as date-only text.
		t = t.Add(12 * time.Hour)
	}
	return checkYear(t)
}

func resolveText(s string) (time.Time, bool) {
	s = NormalizeCell(s)
	if s == "" {
		return time.Time{}, false
	}

	// A cell of pure digits is a serial number rendered as text, which
	// happens when workbooks are read with raw cell values.
	if serial, err := strconv.ParseFloat(s, 64); err == nil {
		return resolveSerial(serial)
	}

	for _, tl := range textLayouts {
		t, err := time.ParseInLocation(tl.layout, s, time.Local)
		if err != nil {
			continue
		}
		if tl.dateOnly {
			t = t.Add(12 * time.Hour)
		} else {
			t = middayIfMidnight(t)
		}
		return checkYear(t)
	}
	return time.Time{}, false
}

// middayIfMidnight reinterprets an exact-midnight value as local midday.
// A midnight timestamp almost always means "date only", and date-only
// values lose or gain a day when converted across timezones.
func middayIfMidnight(t time.Time) time.Time {
	if t.Hour() == 0 && t.Minute() == 0 && t.Second() == 0 && t.Nanosecond() == 0 {
		return t.Add(12 * time.Hour)
	}
	return t
}

func checkYear(t time.Time) (time.Time, bool) {
	y := t.Year()
	if y < minYear || y > maxYear {
		return time.Time{}, false
	}
	return t, true
}
