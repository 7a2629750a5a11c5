// Package timeago phrases the age of a timestamp relative to a reference instant.
package timeago

import (
	"strconv"
	"time"
)

const (
	second = int64(1000)
	minute = 60 * second
	hour   = 60 * minute
	day    = 24 * hour
	month  = 30 * day
	year   = 365 * day
)

// Years is returned for anything at least 365 days old.
const Years = "Years"

// Relative returns how long before now date was, e.g. "3 hours ago".
//
// The age is measured in whole milliseconds and bucketed with integer division:
// seconds, minutes, hours, days, 30-day months, then the flat label "Years".
// Only counts above one are pluralized. Dates after now count as zero.
func Relative(date, now time.Time) string {
	diff := now.UnixMilli() - date.UnixMilli()
	if diff < 0 {
		diff = 0
	}

	switch {
	case diff < minute:
		return phrase(diff/second, "second")
	case diff < hour:
		return phrase(diff/minute, "minute")
	case diff < day:
		return phrase(diff/hour, "hour")
	case diff < month:
		return phrase(diff/day, "day")
	case diff < year:
		return phrase(diff/month, "month")
	default:
		return Years
	}
}

func phrase(n int64, unit string) string {
	s := strconv.FormatInt(n, 10) + " " + unit
	if n > 1 {
		s += "s"
	}
	return s + " ago"
}
