package finance

import (
	"time"

	"limpia/internal/dates"
)

// OccurrencesInRange lists every concrete date on which the entry falls due
// inside [from, to], both ends inclusive. The result is a pure function of
// its arguments; calling it twice yields the same dates.
func OccurrencesInRange(e Entry, from, to dates.Date) []dates.Date {
	if to.Before(from) {
		return nil
	}
	anchor, ok := e.ScheduleStart()
	if !ok {
		return nil
	}

	switch e.Frequency {
	case FreqOneTime:
		if anchor.Before(from) || anchor.After(to) {
			return nil
		}
		return []dates.Date{anchor}
	case FreqWeekly:
		return weeklyOccurrences(anchor, from, to)
	case FreqMonthly:
		return monthlyOccurrences(anchor, e.paymentDay(anchor), from, to)
	case FreqYearly:
		return yearlyOccurrences(anchor, e.paymentDay(anchor), from, to)
	default:
		return nil
	}
}

// weeklyOccurrences steps in 7-day increments from the anchor. The anchor is
// first jumped forward by whole weeks so distant ranges do not cost a walk
// through every intermediate week.
func weeklyOccurrences(anchor, from, to dates.Date) []dates.Date {
	cur := anchor
	if cur.Before(from) {
		weeks := cur.DaysUntil(from) / 7
		cur = cur.AddDays(weeks * 7)
		for cur.Before(from) {
			cur = cur.AddDays(7)
		}
	}

	var out []dates.Date
	for !cur.After(to) {
		out = append(out, cur)
		cur = cur.AddDays(7)
	}
	return out
}

// monthlyOccurrences emits min(day, lastDayOfMonth) for each month from the
// anchor's month on, so an entry anchored on the 31st lands on the 28th/29th
// or 30th in shorter months instead of skipping them.
func monthlyOccurrences(anchor dates.Date, day int, from, to dates.Date) []dates.Date {
	year, month := anchor.Year, anchor.Month

	// Jump ahead to the month before the range start when the anchor is
	// far in the past.
	if months := (from.Year-year)*12 + int(from.Month) - int(month); months > 1 {
		d := dates.New(year, month+time.Month(months-1), 1)
		year, month = d.Year, d.Month
	}

	var out []dates.Date
	for {
		occ := dates.New(year, month, clampDay(day, year, month))
		if occ.After(to) {
			return out
		}
		if !occ.Before(from) {
			out = append(out, occ)
		}
		next := dates.New(year, month+1, 1)
		year, month = next.Year, next.Month
	}
}

// yearlyOccurrences fixes the anchor's month and clamps the day, which turns
// a Feb 29 anchor into Feb 28 on non-leap years.
func yearlyOccurrences(anchor dates.Date, day int, from, to dates.Date) []dates.Date {
	year := anchor.Year
	if from.Year > year+1 {
		year = from.Year - 1
	}

	var out []dates.Date
	for {
		occ := dates.New(year, anchor.Month, clampDay(day, year, anchor.Month))
		if occ.After(to) {
			return out
		}
		if !occ.Before(from) {
			out = append(out, occ)
		}
		year++
	}
}

func clampDay(day, year int, month time.Month) int {
	if last := dates.DaysInMonth(year, month); day > last {
		return last
	}
	return day
}
