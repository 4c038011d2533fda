// Package stats computes streaks and period rollups from check-in and
// holiday records. Everything here is a pure function of its inputs.
package stats

import (
	"sort"
	"time"

	"github.com/limbo/unbroken/pkg/calendar"
	"github.com/limbo/unbroken/pkg/entity"
)

// days is the date-key view of the two record sequences. A holiday on a date
// that also has a check-in is not an effective holiday.
type days struct {
	checkIns map[string]struct{}
	holidays map[string]struct{}
}

func newDays(checkIns []entity.CheckIn, holidays []entity.Holiday) days {
	d := days{
		checkIns: make(map[string]struct{}, len(checkIns)),
		holidays: make(map[string]struct{}, len(holidays)),
	}
	for _, c := range checkIns {
		d.checkIns[c.Date] = struct{}{}
	}
	for _, h := range holidays {
		if _, ok := d.checkIns[h.Date]; ok {
			continue
		}
		d.holidays[h.Date] = struct{}{}
	}
	return d
}

func (d days) active(key string) bool {
	if _, ok := d.checkIns[key]; ok {
		return true
	}
	_, ok := d.holidays[key]
	return ok
}

// Compute builds CheckInStats as of now.
func Compute(checkIns []entity.CheckIn, holidays []entity.Holiday, now time.Time) entity.CheckInStats {
	d := newDays(checkIns, holidays)

	current := currentStreak(d, now)
	longest := longestStreak(d)
	if current > longest {
		longest = current
	}

	week := calendar.WeekBoundaries(now)
	month := calendar.MonthBoundaries(now)

	return entity.CheckInStats{
		CurrentStreak:     current,
		LongestStreak:     longest,
		TotalCheckIns:     len(checkIns),
		ThisWeekCheckIns:  countIn(d.checkIns, week),
		ThisWeekHolidays:  countIn(d.holidays, week),
		ThisMonthCheckIns: countIn(d.checkIns, month),
		ThisMonthHolidays: countIn(d.holidays, month),
	}
}

// currentStreak anchors on today, or on yesterday when today is not active
// yet, then walks back one day at a time until the first gap.
func currentStreak(d days, now time.Time) int {
	day := calendar.StartOfDay(now)
	if !d.active(calendar.DateKey(day)) {
		day = calendar.ShiftDays(day, -1)
		if !d.active(calendar.DateKey(day)) {
			return 0
		}
	}
	streak := 0
	for d.active(calendar.DateKey(day)) {
		streak++
		day = calendar.ShiftDays(day, -1)
	}
	return streak
}

func longestStreak(d days) int {
	keys := make([]string, 0, len(d.checkIns)+len(d.holidays))
	for k := range d.checkIns {
		keys = append(keys, k)
	}
	for k := range d.holidays {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return 0
	}
	// YYYY-MM-DD sorts lexicographically in date order.
	sort.Sort(sort.Reverse(sort.StringSlice(keys)))

	longest, run := 1, 1
	for i := 1; i < len(keys); i++ {
		next, err := calendar.AddDays(keys[i], 1)
		if err == nil && next == keys[i-1] {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

func countIn(set map[string]struct{}, r calendar.Range) int {
	n := 0
	for k := range set {
		if r.ContainsKey(k) {
			n++
		}
	}
	return n
}

// ComputeProgress turns the period counts into completion percentages. The
// denominator is the period length minus effective holidays in it.
func ComputeProgress(s entity.CheckInStats, now time.Time) entity.Progress {
	y, m, _ := now.Date()
	return entity.Progress{
		WeekPercent:  calendar.Percentage(s.ThisWeekCheckIns, 7, s.ThisWeekHolidays),
		MonthPercent: calendar.Percentage(s.ThisMonthCheckIns, calendar.DaysInMonth(y, m), s.ThisMonthHolidays),
	}
}
