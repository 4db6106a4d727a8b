package entities

type StaffDayRequest struct {
	Weekday   int    `json:"weekday"` // 0 = Sunday .. 6 = Saturday
	Available bool   `json:"available"`
	Start     string `json:"start"` // HH:MM, empty when not available
	End       string `json:"end"`
}

type StaffRequest struct {
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	HourlyRateCents int               `json:"hourly_rate_cents"`
	MinNoticeHours  *int              `json:"min_notice_hours,omitempty"`
	TravelBufferMin int               `json:"travel_buffer_minutes"`
	Active          bool              `json:"active"`
	Days            []StaffDayRequest `json:"days,omitempty"`
}

type StaffResponse struct {
	ID              int               `json:"id"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	HourlyRateCents int               `json:"hourly_rate_cents"`
	MinNoticeHours  *int              `json:"min_notice_hours,omitempty"`
	TravelBufferMin int               `json:"travel_buffer_minutes"`
	Active          bool              `json:"active"`
	Days            []StaffDayRequest `json:"days"`
}
