// Package finance projects recurring income and expense entries onto
// concrete calendar dates and aggregates them into the totals, monthly
// series and upcoming-payment lists the portal reports on. Like the
// scheduling kernel it is pure: "today" is always an explicit argument.
package finance

import (
	"time"

	"limpia/internal/dates"
)

type EntryType string

const (
	TypeIncome  EntryType = "income"
	TypeExpense EntryType = "expense"
)

type Frequency string

const (
	FreqOneTime Frequency = "one_time"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

// Entry is a recorded income or expense, one-time or recurring. A recurring
// entry recurs indefinitely until deleted.
type Entry struct {
	ID        string
	Type      EntryType
	Name      string
	Amount    int64 // minor units (cents), always positive
	Frequency Frequency
	// StartDate anchors the recurrence when set; otherwise CreatedAt does.
	StartDate *dates.Date
	// PaymentDay is the day-of-month (1-31) for monthly and yearly
	// entries; zero means "derive from the anchor date".
	PaymentDay int
	CreatedAt  time.Time
}

// ScheduleStart resolves the recurrence anchor: the explicit start date if
// present, else the creation day. ok is false when neither exists, in which
// case the entry has no occurrences anywhere.
func (e Entry) ScheduleStart() (anchor dates.Date, ok bool) {
	if e.StartDate != nil {
		return *e.StartDate, true
	}
	if !e.CreatedAt.IsZero() {
		return dates.FromTime(e.CreatedAt), true
	}
	return dates.Date{}, false
}

// countable reports whether the entry participates in projections at all.
// Malformed entries are skipped silently rather than failing the whole
// aggregation.
func (e Entry) countable() bool {
	if e.Amount <= 0 {
		return false
	}
	if e.Type != TypeIncome && e.Type != TypeExpense {
		return false
	}
	_, ok := e.ScheduleStart()
	return ok
}

// paymentDay returns the effective day-of-month for monthly/yearly stepping.
func (e Entry) paymentDay(anchor dates.Date) int {
	if e.PaymentDay >= 1 && e.PaymentDay <= 31 {
		return e.PaymentDay
	}
	return anchor.Day
}
