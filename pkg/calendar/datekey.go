// Package calendar holds the date-key helpers used as record identity and
// the week/month boundary math used by the statistics.
//
// A date key is a naive local calendar date written as YYYY-MM-DD. Keys are
// the only way records are compared by day; raw time values are never
// compared directly because of time-of-day drift.
package calendar

import (
	"errors"
	"time"
)

const KeyLayout = "2006-01-02"

var ErrInvalidDateKey = errors.New("invalid date key, expected YYYY-MM-DD")

// TodayKey returns the current local date key.
func TodayKey() string {
	return DateKey(time.Now())
}

// DateKey formats t in its own location, so callers holding a local time
// get the local calendar day regardless of the time-of-day component.
func DateKey(t time.Time) string {
	return t.Format(KeyLayout)
}

// ParseKey returns local midnight of the given key.
func ParseKey(key string) (time.Time, error) {
	t, err := time.ParseInLocation(KeyLayout, key, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateKey
	}
	// Keys must round trip exactly.
	if t.Format(KeyLayout) != key {
		return time.Time{}, ErrInvalidDateKey
	}
	return t, nil
}

func ValidKey(key string) bool {
	_, err := ParseKey(key)
	return err == nil
}

// StartOfDay drops the time-of-day part of t, keeping its location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// AddDays shifts a key by n calendar days. Arithmetic goes through
// time.Date so DST transitions never produce a 23 or 25 hour "day".
func AddDays(key string, n int) (string, error) {
	t, err := ParseKey(key)
	if err != nil {
		return "", err
	}
	y, m, d := t.Date()
	return DateKey(time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())), nil
}

// ShiftDays is AddDays for a time value.
func ShiftDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}
