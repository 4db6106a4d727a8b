package finance

import (
	"sort"
	"time"

	"limpia/internal/dates"
)

// UpcomingDays is how far the upcoming-payments window reaches past today.
const UpcomingDays = 8

// Totals is a summed income/expense pair in minor units.
type Totals struct {
	Income  int64
	Expense int64
}

// Profit is income minus expenses.
func (t Totals) Profit() int64 { return t.Income - t.Expense }

func (t *Totals) add(typ EntryType, amount int64) {
	switch typ {
	case TypeIncome:
		t.Income += amount
	case TypeExpense:
		t.Expense += amount
	}
}

// MonthTotals is one bucket of the twelve-month series.
type MonthTotals struct {
	Month time.Month
	Totals
}

// Payment is one concrete upcoming occurrence of an entry.
type Payment struct {
	Date      dates.Date
	EntryID   string
	Name      string
	Type      EntryType
	Frequency Frequency
	Amount    int64
}

// Summary bundles every aggregation the portal renders from one pass over
// the entries.
type Summary struct {
	AllTime      Totals
	CurrentMonth Totals
	// MonthSeries covers January through December of today's year.
	MonthSeries [12]MonthTotals
	Upcoming    []Payment
}

// Summarize recomputes all aggregations from scratch for the given entries
// and reference day. Entries with a non-positive amount, an unknown type or
// no resolvable schedule anchor are skipped silently.
func Summarize(entries []Entry, today dates.Date) Summary {
	var s Summary
	for m := time.January; m <= time.December; m++ {
		s.MonthSeries[m-1].Month = m
	}

	monthFrom := dates.New(today.Year, today.Month, 1)
	monthTo := dates.New(today.Year, today.Month, dates.DaysInMonth(today.Year, today.Month))
	upFrom := today.AddDays(1)
	upTo := today.AddDays(UpcomingDays)

	for _, e := range entries {
		if !e.countable() {
			continue
		}
		anchor, _ := e.ScheduleStart()

		n := int64(len(OccurrencesInRange(e, anchor, today)))
		s.AllTime.add(e.Type, n*e.Amount)

		n = int64(len(OccurrencesInRange(e, monthFrom, monthTo)))
		s.CurrentMonth.add(e.Type, n*e.Amount)

		for m := time.January; m <= time.December; m++ {
			from := dates.New(today.Year, m, 1)
			to := dates.New(today.Year, m, dates.DaysInMonth(today.Year, m))
			n := int64(len(OccurrencesInRange(e, from, to)))
			s.MonthSeries[m-1].add(e.Type, n*e.Amount)
		}

		for _, occ := range OccurrencesInRange(e, upFrom, upTo) {
			s.Upcoming = append(s.Upcoming, Payment{
				Date:      occ,
				EntryID:   e.ID,
				Name:      e.Name,
				Type:      e.Type,
				Frequency: e.Frequency,
				Amount:    e.Amount,
			})
		}
	}

	sort.Slice(s.Upcoming, func(i, j int) bool {
		if c := s.Upcoming[i].Date.Compare(s.Upcoming[j].Date); c != 0 {
			return c < 0
		}
		return s.Upcoming[i].Name < s.Upcoming[j].Name
	})
	return s
}

// TotalsInRange sums every countable entry's occurrences within [from, to].
func TotalsInRange(entries []Entry, from, to dates.Date) Totals {
	var t Totals
	for _, e := range entries {
		if !e.countable() {
			continue
		}
		n := int64(len(OccurrencesInRange(e, from, to)))
		t.add(e.Type, n*e.Amount)
	}
	return t
}
