package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAndString(t *testing.T) {
	d, err := Parse("2024-02-29")
	require.NoError(t, err)
	assert.Equal(t, New(2024, time.February, 29), d)
	assert.Equal(t, "2024-02-29", d.String())

	_, err = Parse("not-a-date")
	assert.Error(t, err)
	_, err = Parse("2023-02-29")
	assert.Error(t, err)
}

func TestAddDaysCrossesMonths(t *testing.T) {
	d := New(2024, time.January, 31)
	assert.Equal(t, "2024-02-01", d.AddDays(1).String())
	assert.Equal(t, "2024-01-24", d.AddDays(-7).String())
}

func TestDaysUntilAndCompare(t *testing.T) {
	a := New(2024, time.January, 1)
	b := New(2024, time.March, 1)
	assert.Equal(t, 60, a.DaysUntil(b), "2024 is a leap year")
	assert.Equal(t, -60, b.DaysUntil(a))
	assert.True(t, a.Before(b))
	assert.True(t, b.After(a))
	assert.Zero(t, a.Compare(a))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2024, time.February))
	assert.Equal(t, 28, DaysInMonth(2023, time.February))
	assert.Equal(t, 31, DaysInMonth(2024, time.December))
	assert.Equal(t, 30, DaysInMonth(2024, time.April))
}

func TestWeekday(t *testing.T) {
	assert.Equal(t, time.Monday, New(2024, time.January, 1).Weekday())
	assert.Equal(t, time.Sunday, New(2024, time.January, 7).Weekday())
}

func TestClockRoundTrip(t *testing.T) {
	m, err := ParseClock("07:30")
	require.NoError(t, err)
	assert.Equal(t, 7*60+30, m)
	assert.Equal(t, "07:30", FormatClock(m))

	for _, bad := range []string{"24:00", "12:60", "noon", ""} {
		_, err := ParseClock(bad)
		assert.Error(t, err, bad)
	}
}

func TestAtUsesLocation(t *testing.T) {
	loc := time.FixedZone("X", 3600)
	d := New(2024, time.June, 1)
	at := d.At(9*60+15, loc)
	assert.Equal(t, 9, at.Hour())
	assert.Equal(t, 15, at.Minute())
	assert.Equal(t, loc, at.Location())
}
