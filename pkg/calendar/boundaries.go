package calendar

import (
	"math"
	"time"
)

// Range is an inclusive interval of local time.
type Range struct {
	Start time.Time
	End   time.Time
}

// ContainsKey reports whether the calendar day of key falls inside r.
// Keys compare lexicographically in date order, so the check is done on
// the formatted bounds.
func (r Range) ContainsKey(key string) bool {
	return key >= DateKey(r.Start) && key <= DateKey(r.End)
}

// Days returns the number of calendar days covered by r.
func (r Range) Days() int {
	days := 0
	for d := StartOfDay(r.Start); !d.After(r.End); d = ShiftDays(d, 1) {
		days++
	}
	return days
}

// WeekBoundaries returns the Sunday-to-Saturday week containing now.
// If now is a Sunday the week starts that same day.
func WeekBoundaries(now time.Time) Range {
	today := StartOfDay(now)
	start := ShiftDays(today, -int(today.Weekday()))
	end := ShiftDays(start, 7).Add(-time.Millisecond)
	return Range{Start: start, End: end}
}

func CurrentWeekBoundaries() Range {
	return WeekBoundaries(time.Now())
}

// MonthBoundaries returns the calendar month containing now, from the first
// day at midnight to the last day at 23:59:59.999.
func MonthBoundaries(now time.Time) Range {
	y, m, _ := now.Date()
	loc := now.Location()
	start := time.Date(y, m, 1, 0, 0, 0, 0, loc)
	end := time.Date(y, m+1, 1, 0, 0, 0, 0, loc).Add(-time.Millisecond)
	return Range{Start: start, End: end}
}

// DaysInMonth uses the day-0-of-next-month rule: day 0 of month+1
// normalises to the last day of month, leap years included.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WorkingDaysInMonth counts the days of the month that are not Sundays.
func WorkingDaysInMonth(year int, month time.Month) int {
	last := DaysInMonth(year, month)
	working := 0
	for day := 1; day <= last; day++ {
		if time.Date(year, month, day, 0, 0, 0, 0, time.UTC).Weekday() != time.Sunday {
			working++
		}
	}
	return working
}

// Percentage is count / (periodDays - holidays) as a rounded percent.
// When holidays consume the whole period the result is 0.
func Percentage(count, periodDays, holidays int) int {
	denominator := periodDays - holidays
	if denominator <= 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(denominator) * 100))
}

// SundaysForSeeding lists every Sunday of the month containing now plus any
// Sunday in the seven days after the month's last day.
func SundaysForSeeding(now time.Time) []string {
	y, m, _ := now.Date()
	loc := now.Location()
	last := time.Date(y, m+1, 0, 0, 0, 0, 0, loc).Day()
	sundays := make([]string, 0, 6)
	seen := make(map[string]struct{}, 6)
	for day := 1; day <= last+7; day++ {
		d := time.Date(y, m, day, 0, 0, 0, 0, loc)
		if d.Weekday() != time.Sunday {
			continue
		}
		key := DateKey(d)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		sundays = append(sundays, key)
	}
	return sundays
}
