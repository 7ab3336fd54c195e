package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// MinutesPerDay is the number of minutes in a civil day. An event with no end
// time is classified against this bound.
const MinutesPerDay = 24 * 60

// DayKeyLayout is the canonical day-key format: two-digit year, zero-padded
// month and day, no separators (e.g. 2026-08-31 -> "260831").
const DayKeyLayout = "060102"

// ToMinutes converts a wall-clock "HH:MM" string to minutes since midnight.
// One- or two-digit hours are accepted; minutes must be two digits.
// Returns ErrMalformedTime (wrapped) for anything else.
func ToMinutes(s string) (int, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 || len(parts[1]) != 2 || len(parts[0]) == 0 || len(parts[0]) > 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}

	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %q out of range", ErrMalformedTime, s)
	}

	return hour*60 + minute, nil
}

// MinutesOfDay returns t's wall-clock position as minutes since local midnight.
func MinutesOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DayKey derives the canonical storage key for t's calendar date. It reads
// local date components only; same date in, same key out.
func DayKey(t time.Time) string {
	return t.Format(DayKeyLayout)
}
