package entities

import (
	"math"
	"time"
)

// DateLayout is the wire/storage format for rental-period dates.
const DateLayout = "2006-01-02"

// DaysInclusive returns the number of billed days for a rental period.
// Both endpoints count: a same-day rental is 1 day, and partial days
// round up. Reversed inputs are normalized.
func DaysInclusive(start, end time.Time) int {
	if end.Before(start) {
		start, end = end, start
	}
	return int(math.Ceil(end.Sub(start).Hours()/24)) + 1
}

// RangesOverlap reports whether two closed date ranges share at least one
// day. Adjacent ranges (one ending the day before the other starts) do not
// overlap. Either range may come in reversed.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	if aEnd.Before(aStart) {
		aStart, aEnd = aEnd, aStart
	}
	if bEnd.Before(bStart) {
		bStart, bEnd = bEnd, bStart
	}
	return !aStart.After(bEnd) && !aEnd.Before(bStart)
}
