// Package schedule computes bookable time slots from staff weekly
// availability, existing bookings and notice/buffer constraints. It is pure:
// callers load the roster and bookings, pass an explicit clock, and get back
// slot hours and blocked calendar days.
package schedule

import (
	"time"

	"limpia/internal/dates"
)

// Slots start on the hour, 07:00 through 20:00 inclusive.
const (
	FirstSlotHour = 7
	LastSlotHour  = 20
)

// DefaultNoticeHours applies when no staff member on duty carries an explicit
// minimum-notice setting.
const DefaultNoticeHours = 12

// DayWindow is one weekday of a staff member's recurring schedule. Start and
// End are minutes since midnight; they are only meaningful when Available is
// true, and a window with Start >= End yields no slots.
type DayWindow struct {
	Available bool
	Start     int
	End       int
}

// StaffHours is one staff member's recurring weekly schedule plus their
// booking constraints.
type StaffHours struct {
	StaffID string
	// Week is indexed by time.Weekday (Sunday = 0).
	Week [7]DayWindow
	// MinNoticeHours is the minimum lead time before a bookable slot.
	// Negative means not configured; DefaultNoticeHours then applies.
	MinNoticeHours int
	// TravelBufferMin is the gap in minutes required on either side of an
	// existing booking for this staff member.
	TravelBufferMin int
}

// Booked is an already-scheduled commitment occupying part of a day.
type Booked struct {
	Code  string
	Date  dates.Date
	Start int // minutes since midnight
	End   int
}

// onDuty filters the roster to staff available on the given weekday.
func onDuty(roster []StaffHours, wd time.Weekday) []StaffHours {
	var out []StaffHours
	for _, s := range roster {
		if s.Week[wd].Available {
			out = append(out, s)
		}
	}
	return out
}

// noticeHours returns the smallest explicit minimum notice across staff,
// falling back to DefaultNoticeHours when nobody has one configured.
func noticeHours(staff []StaffHours) int {
	notice := DefaultNoticeHours
	found := false
	for _, s := range staff {
		if s.MinNoticeHours < 0 {
			continue
		}
		if !found || s.MinNoticeHours < notice {
			notice = s.MinNoticeHours
		}
		found = true
	}
	return notice
}
