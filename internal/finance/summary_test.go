package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limpia/internal/dates"
)

func TestSummarizeOneTimeIncomeYesterday(t *testing.T) {
	today := dates.New(2024, 6, 15)
	entries := []Entry{{
		ID:        "e1",
		Type:      TypeIncome,
		Name:      "Deep clean — Maple St",
		Amount:    100_00,
		Frequency: FreqOneTime,
		StartDate: datePtr(2024, 6, 14),
	}}

	s := Summarize(entries, today)
	assert.Equal(t, int64(100_00), s.AllTime.Income)
	assert.Equal(t, int64(100_00), s.AllTime.Profit())
	assert.Equal(t, int64(100_00), s.CurrentMonth.Income)

	before := TotalsInRange(entries, dates.New(2024, 1, 1), dates.New(2024, 1, 31))
	assert.Zero(t, before.Income)
}

func TestSummarizeSkipsMalformedEntries(t *testing.T) {
	today := dates.New(2024, 6, 15)
	entries := []Entry{
		{ID: "bad-amount", Type: TypeIncome, Amount: 0, Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 1)},
		{ID: "bad-type", Type: "transfer", Amount: 10_00, Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 1)},
		{ID: "no-anchor", Type: TypeExpense, Amount: 10_00, Frequency: FreqMonthly},
		{ID: "ok", Type: TypeExpense, Amount: 25_00, Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 1)},
	}

	s := Summarize(entries, today)
	assert.Zero(t, s.AllTime.Income)
	assert.Equal(t, int64(25_00), s.AllTime.Expense)
	assert.Equal(t, int64(-25_00), s.AllTime.Profit())
}

func TestSummarizeMonthSeries(t *testing.T) {
	today := dates.New(2024, 6, 15)
	entries := []Entry{
		// Rent due on the 1st every month since 2023.
		{ID: "rent", Type: TypeExpense, Name: "Office rent", Amount: 800_00,
			Frequency: FreqMonthly, StartDate: datePtr(2023, 1, 1)},
		// A weekly retainer starting mid-March 2024 (a Friday).
		{ID: "retainer", Type: TypeIncome, Name: "Weekly office clean", Amount: 120_00,
			Frequency: FreqWeekly, StartDate: datePtr(2024, 3, 15)},
	}

	s := Summarize(entries, today)

	for m := time.January; m <= time.December; m++ {
		bucket := s.MonthSeries[m-1]
		assert.Equal(t, m, bucket.Month)
		assert.Equal(t, int64(800_00), bucket.Expense, "rent lands once in %s", m)
	}

	assert.Zero(t, s.MonthSeries[time.February-1].Income)
	// Fridays in March 2024 from the 15th: 15, 22, 29.
	assert.Equal(t, int64(3*120_00), s.MonthSeries[time.March-1].Income)
	// April 2024 Fridays: 5, 12, 19, 26.
	assert.Equal(t, int64(4*120_00), s.MonthSeries[time.April-1].Income)
	assert.Equal(t, int64(4*120_00-800_00), s.MonthSeries[time.April-1].Profit())
}

func TestSummarizeUpcomingWindow(t *testing.T) {
	today := dates.New(2024, 6, 15)
	entries := []Entry{
		// Weekly anchored today: occurrences on the 15th (today, excluded)
		// and the 22nd (inside the window).
		{ID: "w", Type: TypeIncome, Name: "Saturday clean", Amount: 90_00,
			Frequency: FreqWeekly, StartDate: datePtr(2024, 6, 15)},
		// Monthly on the 23rd: today+8 is the last included day.
		{ID: "m", Type: TypeExpense, Name: "Supplies order", Amount: 40_00,
			Frequency: FreqMonthly, StartDate: datePtr(2024, 1, 23)},
		// Monthly on the 24th: just past the window.
		{ID: "far", Type: TypeExpense, Name: "Van lease", Amount: 300_00,
			Frequency: FreqMonthly, StartDate: datePtr(2024, 1, 24)},
	}

	s := Summarize(entries, today)

	require.Len(t, s.Upcoming, 2)
	for _, p := range s.Upcoming {
		assert.True(t, p.Date.After(today), "window starts strictly tomorrow")
		assert.False(t, p.Date.After(today.AddDays(UpcomingDays)))
	}
	assert.Equal(t, "2024-06-22", s.Upcoming[0].Date.String())
	assert.Equal(t, "Saturday clean", s.Upcoming[0].Name)
	assert.Equal(t, "2024-06-23", s.Upcoming[1].Date.String())
	assert.Equal(t, FreqMonthly, s.Upcoming[1].Frequency)
}

func TestSummarizeUpcomingSortedByDateThenName(t *testing.T) {
	today := dates.New(2024, 6, 15)
	entries := []Entry{
		{ID: "b", Type: TypeExpense, Name: "B supplies", Amount: 10_00,
			Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 18)},
		{ID: "a", Type: TypeIncome, Name: "A retainer", Amount: 20_00,
			Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 18)},
		{ID: "c", Type: TypeIncome, Name: "C deposit", Amount: 30_00,
			Frequency: FreqOneTime, StartDate: datePtr(2024, 6, 16)},
	}

	s := Summarize(entries, today)
	require.Len(t, s.Upcoming, 3)
	assert.Equal(t, "C deposit", s.Upcoming[0].Name)
	assert.Equal(t, "A retainer", s.Upcoming[1].Name)
	assert.Equal(t, "B supplies", s.Upcoming[2].Name)
}
