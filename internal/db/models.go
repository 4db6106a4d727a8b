package db

import "time"

// Staff is a cleaner on the roster.
type Staff struct {
	ID              int
	Name            string
	Email           string
	Phone           string
	HourlyRateCents int
	// MinNoticeHours below zero means not configured.
	MinNoticeHours  int
	TravelBufferMin int
	Active          bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
	Days            []StaffDay
}

// StaffDay is one weekday of a staff member's recurring schedule.
// StartMinute/EndMinute are minutes since midnight and only meaningful when
// Available is true.
type StaffDay struct {
	StaffID     int
	Weekday     int // 0 = Sunday .. 6 = Saturday
	Available   bool
	StartMinute int
	EndMinute   int
}

// Booking is a scheduled cleaning job.
type Booking struct {
	ID              int
	Code            string
	ClientName      string
	ClientEmail     string
	ClientPhone     string
	Address         string
	ServiceType     string
	BookingDate     time.Time // date only, midnight UTC
	StartMinute     int
	EndMinute       int
	StaffID         int
	Status          string
	PriceCents      int
	DepositStatus   string
	StripeSessionID string
	CreatedAt       time.Time
	UpdatedAt       time.Time
	StaffName       string // joined from staff, not a column
}

// FinanceEntry is a recorded income or expense, optionally recurring.
type FinanceEntry struct {
	ID          string
	EntryType   string
	Name        string
	AmountCents int64
	Frequency   string
	StartDate   *time.Time
	PaymentDay  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
