package entities

type AvailabilityResponse struct {
	Date string `json:"date"`
	// Slots are bookable start hours rendered as labels ("7".."20").
	Slots []string `json:"slots"`
}

type BlockedDatesResponse struct {
	From string `json:"from"`
	Days int    `json:"days"`
	// Blocked holds fully unbookable "YYYY-MM-DD" keys for calendar cells.
	Blocked []string `json:"blocked"`
}
