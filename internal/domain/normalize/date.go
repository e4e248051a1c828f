// Package normalize converts the heterogeneous date and hour shapes found in
// draw documents into canonical forms: "YYYY-MM-DD" days pinned to the
// America/Sao_Paulo zone and "HH:MM" hours. Unparseable input normalizes to
// the empty string and is treated by callers as "matches nothing"; nothing in
// this package panics or errors on bad input.
package normalize

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
	_ "time/tzdata"
)

// DayFormat is the canonical calendar-day layout.
const DayFormat = "2006-01-02"

const zoneName = "America/Sao_Paulo"

var (
	zoneOnce sync.Once
	zone     *time.Location
)

// Zone returns the fixed timezone all day boundaries are computed in, so the
// same draw lands on the same calendar day regardless of the caller's zone.
func Zone() *time.Location {
	zoneOnce.Do(func() {
		loc, err := time.LoadLocation(zoneName)
		if err != nil {
			loc = time.FixedZone("-03", -3*60*60)
		}
		zone = loc
	})
	return zone
}

var (
	isoPrefixRe = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})`)
	brDateRe    = regexp.MustCompile(`^(\d{1,2})[/-](\d{1,2})[/-](\d{4})$`)
)

// Date normalizes any accepted date representation to "YYYY-MM-DD":
// time.Time values, epoch seconds (bare numbers or {seconds} maps, with a
// millisecond heuristic), ISO-prefixed strings and "DD/MM/YYYY" or
// "DD-MM-YYYY" strings.
// Unparseable input yields "".
func Date(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case time.Time:
		if t.IsZero() {
			return ""
		}
		return t.In(Zone()).Format(DayFormat)
	case int:
		return epochDate(int64(t))
	case int64:
		return epochDate(t)
	case float64:
		return epochDate(int64(t))
	case map[string]any:
		for _, k := range []string{"seconds", "_seconds"} {
			if sec, ok := t[k]; ok {
				return Date(sec)
			}
		}
		return ""
	case string:
		return dateString(t)
	default:
		return ""
	}
}

func epochDate(sec int64) string {
	if sec <= 0 {
		return ""
	}
	// Values this large are epoch milliseconds written by older ingesters.
	if sec > 1e12 {
		sec /= 1000
	}
	return time.Unix(sec, 0).In(Zone()).Format(DayFormat)
}

func dateString(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	if m := isoPrefixRe.FindString(s); m != "" {
		// Full timestamps are shifted into the canonical zone; a bare prefix
		// is already a partition-local day and is kept as-is.
		if ts, err := time.Parse(time.RFC3339, s); err == nil {
			return ts.In(Zone()).Format(DayFormat)
		}
		if _, err := time.Parse(DayFormat, m); err == nil {
			return m
		}
		return ""
	}

	if m := brDateRe.FindStringSubmatch(s); m != nil {
		day, month, year := atoi(m[1]), atoi(m[2]), atoi(m[3])
		d := time.Date(year, time.Month(month), day, 12, 0, 0, 0, Zone())
		// time.Date normalizes overflow (31/02 becomes 02/03); reject those.
		if d.Year() != year || int(d.Month()) != month || d.Day() != day {
			return ""
		}
		return d.Format(DayFormat)
	}

	return ""
}

func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}

// ParseDay parses a canonical day string in the canonical zone.
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DayFormat, s, Zone())
}

// AddDays shifts a canonical day string by n calendar days. Returns "" when
// the input is not a canonical day.
func AddDays(day string, n int) string {
	d, err := ParseDay(day)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, n).Format(DayFormat)
}

// DaysBetween returns the whole calendar days from one canonical day to
// another (positive when to is after from).
func DaysBetween(from, to string) (int, error) {
	a, err := ParseDay(from)
	if err != nil {
		return 0, fmt.Errorf("parse from day: %w", err)
	}
	b, err := ParseDay(to)
	if err != nil {
		return 0, fmt.Errorf("parse to day: %w", err)
	}
	// Anchor both days at noon so historical DST transitions around midnight
	// cannot skew the division.
	an := time.Date(a.Year(), a.Month(), a.Day(), 12, 0, 0, 0, Zone())
	bn := time.Date(b.Year(), b.Month(), b.Day(), 12, 0, 0, 0, Zone())
	return int(bn.Sub(an).Round(24*time.Hour).Hours() / 24), nil
}

// Today returns the current calendar day in the canonical zone.
func Today() string {
	return time.Now().In(Zone()).Format(DayFormat)
}
