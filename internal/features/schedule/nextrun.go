package schedule

import (
	"strconv"
	"strings"
	"time"

	"go-hrms/internal/common/apperrors"
)

// ComputeNextRun returns the first run of a recurrence that is strictly after now.
//
// The candidate is startDate's calendar date at hour:minute in loc. A future candidate
// is returned unchanged. Otherwise it moves forward by whole periods (one day, seven
// days or one calendar month) counted from the candidate, so a candidate less than one
// period in the past advances by exactly one period. A candidate several periods in the
// past advances as many periods as it takes to pass now, so the result can differ from
// a stored nextRunDate that was advanced only once. Month arithmetic uses time's
// normalization: a 31st rolls into the following month when the target month is shorter.
func ComputeNextRun(freq Frequency, startDate string, hour, minute int, now time.Time, loc *time.Location) (time.Time, error) {
	switch freq {
	case Daily, Weekly, Monthly:
	default:
		return time.Time{}, apperrors.Validation("unknown frequency %q", freq)
	}
	if hour < 0 || hour > 23 {
		return time.Time{}, apperrors.Validation("hours must be between 0 and 23")
	}
	if minute < 0 || minute > 59 {
		return time.Time{}, apperrors.Validation("minutes must be between 0 and 59")
	}
	if loc == nil {
		loc = time.UTC
	}

	day, err := parseStartDate(startDate, loc)
	if err != nil {
		return time.Time{}, err
	}
	y, m, d := day.Date()
	candidate := time.Date(y, m, d, hour, minute, 0, 0, loc)

	if candidate.After(now) {
		return candidate, nil
	}

	var step func(k int) time.Time
	var k int
	switch freq {
	case Daily:
		step = func(k int) time.Time { return candidate.AddDate(0, 0, k) }
		k = int(now.Sub(candidate) / (24 * time.Hour))
	case Weekly:
		step = func(k int) time.Time { return candidate.AddDate(0, 0, 7*k) }
		k = int(now.Sub(candidate) / (7 * 24 * time.Hour))
	case Monthly:
		step = func(k int) time.Time { return candidate.AddDate(0, k, 0) }
		ny, nm, _ := now.In(loc).Date()
		k = (ny-y)*12 + int(nm-m) - 1
	}

	// k is a lower estimate; walk forward to the first period past now.
	if k < 1 {
		k = 1
	}
	for k > 1 && step(k-1).After(now) {
		k--
	}
	next := step(k)
	for !next.After(now) {
		k++
		next = step(k)
	}
	return next, nil
}

// ParseClock converts stored hours and minutes into integers.
func ParseClock(hours, minutes ClockValue) (int, int, error) {
	h, err := strconv.Atoi(strings.TrimSpace(string(hours)))
	if err != nil {
		return 0, 0, apperrors.Validation("hours must be a whole number")
	}
	m, err := strconv.Atoi(strings.TrimSpace(string(minutes)))
	if err != nil {
		return 0, 0, apperrors.Validation("minutes must be a whole number")
	}
	return h, m, nil
}

// parseStartDate accepts YYYY-MM-DD, taken as a calendar date, or an RFC 3339 timestamp,
// whose calendar date in loc is used.
func parseStartDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if t, err := time.ParseInLocation("2006-01-02", s, loc); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339Nano, s); err == nil {
		return t.In(loc), nil
	}
	return time.Time{}, apperrors.Validation("startDate must be YYYY-MM-DD or an RFC 3339 timestamp")
}
