package entities

type BookingEmailData struct {
	ClientName    string
	BookingCode   string
	ServiceType   string
	Address       string
	DateFormatted string
	TimeFormatted string
	Status        string
	CurrentYear   int
}
