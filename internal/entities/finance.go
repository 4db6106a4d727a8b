package entities

type FinanceEntryRequest struct {
	Type        string `json:"type"` // income | expense
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
	Frequency   string `json:"frequency"`             // one_time | weekly | monthly | yearly
	StartDate   string `json:"start_date,omitempty"`  // YYYY-MM-DD
	PaymentDay  *int   `json:"payment_day,omitempty"` // 1-31, monthly/yearly only
}

type FinanceEntryResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
	Frequency   string `json:"frequency"`
	StartDate   string `json:"start_date,omitempty"`
	PaymentDay  *int   `json:"payment_day,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type TotalsResponse struct {
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	ProfitCents  int64 `json:"profit_cents"`
}

type MonthTotalsResponse struct {
	Month        int   `json:"month"` // 1-12
	IncomeCents  int64 `json:"income_cents"`
	ExpenseCents int64 `json:"expense_cents"`
	ProfitCents  int64 `json:"profit_cents"`
}

type UpcomingPaymentResponse struct {
	Date        string `json:"date"`
	EntryID     string `json:"entry_id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Frequency   string `json:"frequency"`
	AmountCents int64  `json:"amount_cents"`
}

type FinanceSummaryResponse struct {
	AllTime      TotalsResponse            `json:"all_time"`
	CurrentMonth TotalsResponse            `json:"current_month"`
	MonthSeries  []MonthTotalsResponse     `json:"month_series"`
	Upcoming     []UpcomingPaymentResponse `json:"upcoming"`
}
