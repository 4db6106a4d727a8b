package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"limpia/internal/dates"
)

// staffAllWeek builds a staff member working the same window every day.
func staffAllWeek(id string, startMin, endMin, noticeHours, bufferMin int) StaffHours {
	s := StaffHours{StaffID: id, MinNoticeHours: noticeHours, TravelBufferMin: bufferMin}
	for wd := time.Sunday; wd <= time.Saturday; wd++ {
		s.Week[wd] = DayWindow{Available: true, Start: startMin, End: endMin}
	}
	return s
}

func TestAvailableSlotsPastDateIsEmpty(t *testing.T) {
	now := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 7*60, 20*60, 0, 0)}

	slots := AvailableSlots(now, dates.New(2024, 3, 14), roster, nil, "")
	assert.Empty(t, slots)
}

func TestAvailableSlotsNobodyWorksThatWeekday(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s := staffAllWeek("a", 8*60, 18*60, 0, 0)
	s.Week[time.Wednesday] = DayWindow{}

	// 2024-01-03 is a Wednesday.
	slots := AvailableSlots(now, dates.New(2024, 1, 3), []StaffHours{s}, nil, "")
	assert.Empty(t, slots)
}

func TestAvailableSlotsEmptyRoster(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	assert.Empty(t, AvailableSlots(now, dates.New(2024, 1, 2), nil, nil, ""))
}

func TestAvailableSlotsBookingAndBufferExclusion(t *testing.T) {
	target := dates.New(2024, 3, 15)
	now := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 8*60, 18*60, 0, 30)}
	booked := []Booked{{Code: "B1", Date: target, Start: 10 * 60, End: 11 * 60}}

	slots := AvailableSlots(now, target, roster, booked, "")

	// Window [08:00, 18:00) caps slots at 17:00. The 10:00 hour is booked
	// outright; 11:00 falls inside the trailing 30-minute buffer. 09:00
	// survives because 09:00 is not within [09:30, 11:30).
	assert.Equal(t, []int{8, 9, 12, 13, 14, 15, 16, 17}, slots)
}

func TestAvailableSlotsBufferIsPerStaffMember(t *testing.T) {
	target := dates.New(2024, 3, 15)
	now := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	booked := []Booked{{Code: "B1", Date: target, Start: 10 * 60, End: 11 * 60}}

	bigBuffer := []StaffHours{staffAllWeek("a", 7*60, 20*60+60, 0, 120)}
	slots := AvailableSlots(now, target, bigBuffer, booked, "")
	assert.NotContains(t, slots, 12, "two-hour buffer blocks 12:00")

	withSmall := append(bigBuffer, staffAllWeek("b", 7*60, 20*60+60, 0, 0))
	slots = AvailableSlots(now, target, withSmall, booked, "")
	assert.Contains(t, slots, 11, "zero-buffer staff frees the hour")
	assert.Contains(t, slots, 12)
	assert.NotContains(t, slots, 10, "the booked hour itself stays blocked")
}

func TestAvailableSlotsMinimumNoticeCutoff(t *testing.T) {
	// Now is 09:00 with 12 hours notice: nothing today is bookable (the
	// cutoff is 21:00, past the last slot), but tomorrow is wide open.
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 7*60, 21*60, 12, 0)}

	assert.Empty(t, AvailableSlots(now, dates.New(2024, 1, 1), roster, nil, ""))

	tomorrow := AvailableSlots(now, dates.New(2024, 1, 2), roster, nil, "")
	require.NotEmpty(t, tomorrow)
	assert.Equal(t, 7, tomorrow[0])
	assert.Equal(t, 20, tomorrow[len(tomorrow)-1])
}

func TestAvailableSlotsDefaultNoticeWhenUnset(t *testing.T) {
	// No explicit notice anywhere: the 12-hour default applies.
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 7*60, 21*60, -1, 0)}

	assert.Empty(t, AvailableSlots(now, dates.New(2024, 1, 1), roster, nil, ""))
}

func TestAvailableSlotsUsesSmallestNotice(t *testing.T) {
	now := time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC)
	roster := []StaffHours{
		staffAllWeek("slow", 7*60, 21*60, 48, 0),
		staffAllWeek("fast", 7*60, 21*60, 2, 0),
	}

	slots := AvailableSlots(now, dates.New(2024, 1, 1), roster, nil, "")
	require.NotEmpty(t, slots)
	assert.Equal(t, 8, slots[0], "cutoff is 08:00 via the two-hour notice")
}

func TestAvailableSlotsExcludesOwnBookingWhenRescheduling(t *testing.T) {
	target := dates.New(2024, 3, 15)
	now := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 8*60, 18*60, 0, 0)}
	booked := []Booked{{Code: "MINE", Date: target, Start: 10 * 60, End: 11 * 60}}

	assert.NotContains(t, AvailableSlots(now, target, roster, booked, ""), 10)
	assert.Contains(t, AvailableSlots(now, target, roster, booked, "MINE"), 10)
}

func TestAvailableSlotsIgnoresMalformedBooking(t *testing.T) {
	target := dates.New(2024, 3, 15)
	now := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 8*60, 18*60, 0, 0)}
	// End before start: defensively treated as never colliding.
	booked := []Booked{{Code: "BAD", Date: target, Start: 11 * 60, End: 10 * 60}}

	assert.Contains(t, AvailableSlots(now, target, roster, booked, ""), 10)
}

func TestAvailableSlotsInvertedWindowYieldsNothing(t *testing.T) {
	now := time.Date(2024, 3, 14, 0, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 18*60, 8*60, 0, 0)}

	assert.Empty(t, AvailableSlots(now, dates.New(2024, 3, 15), roster, nil, ""))
}

func TestBlockedDatesEmptyRosterBlocksEverything(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	blocked := BlockedDates(now, dates.New(2024, 1, 10), 5, nil)

	require.Len(t, blocked, 5)
	for i := 0; i < 5; i++ {
		assert.True(t, blocked[dates.New(2024, 1, 10+i).String()])
	}
}

func TestBlockedDatesPastAndUnstaffedDays(t *testing.T) {
	now := time.Date(2024, 1, 10, 8, 0, 0, 0, time.UTC)
	s := staffAllWeek("a", 8*60, 18*60, 0, 0)
	s.Week[time.Sunday] = DayWindow{}

	// 2024-01-07 is a Sunday; range covers the 8th through the 14th.
	blocked := BlockedDates(now, dates.New(2024, 1, 8), 7, []StaffHours{s})

	assert.True(t, blocked["2024-01-08"], "past day")
	assert.True(t, blocked["2024-01-09"], "past day")
	assert.False(t, blocked["2024-01-10"])
	assert.True(t, blocked["2024-01-14"], "Sunday is unstaffed")
}

func TestBlockedDatesNoticeOverrunsWholeDay(t *testing.T) {
	// 36 hours of notice at 21:00 puts the cutoff past tomorrow's 20:00
	// slot, so both today and tomorrow grey out.
	now := time.Date(2024, 1, 10, 21, 0, 0, 0, time.UTC)
	roster := []StaffHours{staffAllWeek("a", 7*60, 21*60, 36, 0)}

	blocked := BlockedDates(now, dates.New(2024, 1, 10), 3, roster)

	assert.True(t, blocked["2024-01-10"])
	assert.True(t, blocked["2024-01-11"])
	assert.False(t, blocked["2024-01-12"])
}
