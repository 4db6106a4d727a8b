package schedule

import (
	"time"

	"limpia/internal/dates"
)

// AvailableSlots returns the bookable start hours (7..20) on target. A slot
// is bookable when at least one staff member is on duty for that hour and has
// no booking, widened by their travel buffer, covering it. Slots before
// now + minimum notice are never returned. excludeCode names a booking to
// ignore, used when rescheduling so a booking does not block its own slot.
func AvailableSlots(now time.Time, target dates.Date, roster []StaffHours, booked []Booked, excludeCode string) []int {
	if target.Before(dates.FromTime(now)) {
		return nil
	}

	staff := onDuty(roster, target.Weekday())
	if len(staff) == 0 {
		return nil
	}

	cutoff := now.Add(time.Duration(noticeHours(staff)) * time.Hour)
	day := bookingsOn(target, booked, excludeCode)

	var slots []int
	for h := FirstSlotHour; h <= LastSlotHour; h++ {
		if target.At(h*60, now.Location()).Before(cutoff) {
			continue
		}
		if anyStaffFree(staff, target.Weekday(), h*60, day) {
			slots = append(slots, h)
		}
	}
	return slots
}

// BlockedDates marks fully unbookable days in [from, from+days) for calendar
// rendering: days in the past, days where nobody on the roster works, and
// days whose entire slot window has already fallen behind the global
// minimum-notice cutoff. Keys are "YYYY-MM-DD".
func BlockedDates(now time.Time, from dates.Date, days int, roster []StaffHours) map[string]bool {
	blocked := make(map[string]bool)
	today := dates.FromTime(now)
	cutoff := now.Add(time.Duration(noticeHours(roster)) * time.Hour)

	for i := 0; i < days; i++ {
		d := from.AddDays(i)
		switch {
		case d.Before(today):
			blocked[d.String()] = true
		case len(onDuty(roster, d.Weekday())) == 0:
			blocked[d.String()] = true
		case d.At(LastSlotHour*60, now.Location()).Before(cutoff):
			blocked[d.String()] = true
		}
	}
	return blocked
}

// bookingsOn keeps the bookings on date, dropping the excluded code and any
// range that is malformed (start not strictly before end).
func bookingsOn(date dates.Date, booked []Booked, excludeCode string) []Booked {
	var day []Booked
	for _, b := range booked {
		if b.Date != date {
			continue
		}
		if excludeCode != "" && b.Code == excludeCode {
			continue
		}
		if b.Start >= b.End {
			continue
		}
		day = append(day, b)
	}
	return day
}

func anyStaffFree(staff []StaffHours, wd time.Weekday, minute int, day []Booked) bool {
	for _, s := range staff {
		w := s.Week[wd]
		if minute < w.Start || minute >= w.End {
			continue
		}
		if !collides(minute, s.TravelBufferMin, day) {
			return true
		}
	}
	return false
}

// collides reports whether the candidate minute falls inside any booking
// widened by the staff member's buffer on both sides.
func collides(minute, buffer int, day []Booked) bool {
	for _, b := range day {
		if minute >= b.Start-buffer && minute < b.End+buffer {
			return true
		}
	}
	return false
}
