package entities

import "time"

type BookingRequest struct {
	ClientName  string `json:"client_name"`
	ClientEmail string `json:"client_email"`
	ClientPhone string `json:"client_phone"`
	Address     string `json:"address"`
	ServiceType string `json:"service_type"`
	Date        string `json:"date"`       // YYYY-MM-DD
	StartTime   string `json:"start_time"` // HH:MM, on the hour
	EndTime     string `json:"end_time"`   // HH:MM
	StaffID     int    `json:"staff_id"`
	PriceCents  int    `json:"price_cents"`
}

type BookingResponse struct {
	Code          string    `json:"code"`
	ClientName    string    `json:"client_name"`
	ClientEmail   string    `json:"client_email"`
	ClientPhone   string    `json:"client_phone"`
	Address       string    `json:"address"`
	ServiceType   string    `json:"service_type"`
	Date          string    `json:"date"`
	StartTime     string    `json:"start_time"`
	EndTime       string    `json:"end_time"`
	StaffID       int       `json:"staff_id"`
	StaffName     string    `json:"staff_name,omitempty"`
	Status        string    `json:"status"`
	PriceCents    int       `json:"price_cents"`
	DepositStatus string    `json:"deposit_status,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type BookingsList struct {
	Total    int               `json:"total"`
	Bookings []BookingResponse `json:"bookings"`
}
