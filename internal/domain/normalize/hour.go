package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var (
	bareHourRe = regexp.MustCompile(`^(\d{1,2})(?:h|hs|hr|hrs)?$`)
	colonRe    = regexp.MustCompile(`^(\d{1,2}):(\d{1,2})(?::\d{1,2})?$`)
	compactRe  = regexp.MustCompile(`^(\d{3,4})$`)
)

// Hour normalizes any accepted hour representation to "HH:MM". Accepted
// shapes: "9", "09", "09h", "09hs", "09hr", "9:0", "09:00:00" and the 3-4
// digit compact forms "900"/"0900". Numbers are treated like their decimal
// string. Unparseable input yields "".
func Hour(v any) string {
	var s string
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		s = t
	case int:
		s = strconv.Itoa(t)
	case int64:
		s = strconv.FormatInt(t, 10)
	case float64:
		n := int(t)
		if float64(n) != t {
			return ""
		}
		s = strconv.Itoa(n)
	default:
		return ""
	}

	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	if m := colonRe.FindStringSubmatch(s); m != nil {
		return formatHour(atoi(m[1]), atoi(m[2]))
	}
	// Compact forms before bare hours so "900" reads 09:00, not hour 900.
	if m := compactRe.FindStringSubmatch(s); m != nil {
		digits := m[1]
		cut := len(digits) - 2
		return formatHour(atoi(digits[:cut]), atoi(digits[cut:]))
	}
	if m := bareHourRe.FindStringSubmatch(s); m != nil {
		return formatHour(atoi(m[1]), 0)
	}
	return ""
}

// HourBucket reduces any accepted hour form to the coarse "HHh" bucket used
// for hour filtering. Unparseable input yields "".
func HourBucket(v any) string {
	h := Hour(v)
	if h == "" {
		return ""
	}
	return h[:2] + "h"
}

func formatHour(h, m int) string {
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}
