package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limpia/internal/dates"
)

func datePtr(y int, m time.Month, d int) *dates.Date {
	dt := dates.New(y, m, d)
	return &dt
}

func TestOneTimeOccurrence(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 100, Frequency: FreqOneTime, StartDate: datePtr(2024, 5, 10)}

	occ := OccurrencesInRange(e, dates.New(2024, 5, 1), dates.New(2024, 5, 31))
	require.Len(t, occ, 1)
	assert.Equal(t, "2024-05-10", occ[0].String())

	assert.Empty(t, OccurrencesInRange(e, dates.New(2024, 6, 1), dates.New(2024, 6, 30)))
	assert.Empty(t, OccurrencesInRange(e, dates.New(2024, 4, 1), dates.New(2024, 4, 30)))
}

func TestOneTimeFallsBackToCreatedAt(t *testing.T) {
	e := Entry{
		Type:      TypeExpense,
		Amount:    50,
		Frequency: FreqOneTime,
		CreatedAt: time.Date(2024, 5, 10, 15, 30, 0, 0, time.UTC),
	}

	occ := OccurrencesInRange(e, dates.New(2024, 5, 1), dates.New(2024, 5, 31))
	require.Len(t, occ, 1)
	assert.Equal(t, "2024-05-10", occ[0].String())
}

func TestWeeklyOccurrencesInsideRange(t *testing.T) {
	// Anchor 2024-01-01 is a Monday; only the 15th lands inside the range.
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqWeekly, StartDate: datePtr(2024, 1, 1)}

	occ := OccurrencesInRange(e, dates.New(2024, 1, 10), dates.New(2024, 1, 20))
	require.Len(t, occ, 1)
	assert.Equal(t, "2024-01-15", occ[0].String())
}

func TestWeeklyFastForwardOverDistantRange(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqWeekly, StartDate: datePtr(2020, 1, 6)}

	occ := OccurrencesInRange(e, dates.New(2024, 3, 1), dates.New(2024, 3, 31))
	require.Len(t, occ, 4)
	assert.Equal(t, "2024-03-04", occ[0].String())
	assert.Equal(t, "2024-03-25", occ[3].String())
	for _, d := range occ {
		assert.Equal(t, time.Monday, d.Weekday())
	}
}

func TestMonthlyClampsDay31ToFebruary(t *testing.T) {
	e := Entry{Type: TypeExpense, Amount: 10, Frequency: FreqMonthly, StartDate: datePtr(2024, 1, 31)}

	occ := OccurrencesInRange(e, dates.New(2024, 1, 1), dates.New(2024, 4, 30))
	require.Len(t, occ, 4)
	assert.Equal(t, "2024-01-31", occ[0].String())
	assert.Equal(t, "2024-02-29", occ[1].String(), "leap February clamps to 29")
	assert.Equal(t, "2024-03-31", occ[2].String())
	assert.Equal(t, "2024-04-30", occ[3].String())
}

func TestMonthlyClampsToFeb28OffLeapYears(t *testing.T) {
	e := Entry{Type: TypeExpense, Amount: 10, Frequency: FreqMonthly, StartDate: datePtr(2023, 1, 30)}

	occ := OccurrencesInRange(e, dates.New(2023, 2, 1), dates.New(2023, 2, 28))
	require.Len(t, occ, 1)
	assert.Equal(t, "2023-02-28", occ[0].String())
}

func TestMonthlyExplicitPaymentDay(t *testing.T) {
	e := Entry{
		Type:       TypeIncome,
		Amount:     10,
		Frequency:  FreqMonthly,
		StartDate:  datePtr(2024, 1, 15),
		PaymentDay: 1,
	}

	occ := OccurrencesInRange(e, dates.New(2024, 2, 1), dates.New(2024, 3, 31))
	require.Len(t, occ, 2)
	assert.Equal(t, "2024-02-01", occ[0].String())
	assert.Equal(t, "2024-03-01", occ[1].String())
}

func TestYearlyLeapDayAnchorClamps(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqYearly, StartDate: datePtr(2024, 2, 29)}

	occ := OccurrencesInRange(e, dates.New(2025, 1, 1), dates.New(2028, 12, 31))
	require.Len(t, occ, 4)
	assert.Equal(t, "2025-02-28", occ[0].String())
	assert.Equal(t, "2026-02-28", occ[1].String())
	assert.Equal(t, "2027-02-28", occ[2].String())
	assert.Equal(t, "2028-02-29", occ[3].String(), "leap year restores the 29th")
}

func TestOccurrencesAreDeterministic(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqWeekly, StartDate: datePtr(2024, 1, 1)}
	from, to := dates.New(2024, 1, 1), dates.New(2024, 6, 30)

	assert.Equal(t, OccurrencesInRange(e, from, to), OccurrencesInRange(e, from, to))
}

func TestNoAnchorMeansNoOccurrences(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqWeekly}
	assert.Empty(t, OccurrencesInRange(e, dates.New(2024, 1, 1), dates.New(2024, 12, 31)))
}

func TestInvertedRangeIsEmpty(t *testing.T) {
	e := Entry{Type: TypeIncome, Amount: 10, Frequency: FreqWeekly, StartDate: datePtr(2024, 1, 1)}
	assert.Empty(t, OccurrencesInRange(e, dates.New(2024, 2, 1), dates.New(2024, 1, 1)))
}
