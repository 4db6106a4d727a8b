package entities

type PayrollLine struct {
	StaffID         int    `json:"staff_id"`
	StaffName       string `json:"staff_name"`
	JobsCompleted   int    `json:"jobs_completed"`
	MinutesWorked   int    `json:"minutes_worked"`
	HourlyRateCents int    `json:"hourly_rate_cents"`
	PayCents        int64  `json:"pay_cents"`
}

type PayrollReport struct {
	From  string        `json:"from"`
	To    string        `json:"to"`
	Lines []PayrollLine `json:"lines"`
}
