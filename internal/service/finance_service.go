package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"limpia/internal/dates"
	"limpia/internal/db"
	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/finance"
	"limpia/internal/repository"
)

type FinanceService struct {
	Repo   *repository.FinanceRepository
	logger *zap.Logger
	Now    func() time.Time
}

func NewFinanceService(repo *repository.FinanceRepository, logger *zap.Logger) *FinanceService {
	return &FinanceService{Repo: repo, logger: logger, Now: time.Now}
}

func (s *FinanceService) Create(req *entities.FinanceEntryRequest) (*entities.FinanceEntryResponse, error) {
	e, err := entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	e.ID = uuid.NewString()
	if err := s.Repo.Create(e); err != nil {
		s.logger.Error("creating finance entry", zap.Error(err))
		return nil, err
	}
	return entryResponse(e), nil
}

func (s *FinanceService) Update(id string, req *entities.FinanceEntryRequest) (*entities.FinanceEntryResponse, error) {
	e, err := entryFromRequest(req)
	if err != nil {
		return nil, err
	}
	e.ID = id
	if err := s.Repo.Update(e); err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("finance entry %s not found", id))
	}
	stored, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return entryResponse(stored), nil
}

func (s *FinanceService) Delete(id string) error {
	return s.Repo.Delete(id)
}

func (s *FinanceService) List() ([]entities.FinanceEntryResponse, error) {
	entries, err := s.Repo.List()
	if err != nil {
		return nil, err
	}
	out := []entities.FinanceEntryResponse{}
	for i := range entries {
		out = append(out, *entryResponse(&entries[i]))
	}
	return out, nil
}

// Summary loads every entry and runs the projector for today: all-time and
// current-month totals, the 12-month series and the upcoming payments.
func (s *FinanceService) Summary() (*entities.FinanceSummaryResponse, error) {
	rows, err := s.Repo.List()
	if err != nil {
		return nil, err
	}

	entries := make([]finance.Entry, 0, len(rows))
	for i := range rows {
		entries = append(entries, kernelEntry(&rows[i]))
	}

	today := dates.FromTime(s.Now())
	sum := finance.Summarize(entries, today)

	resp := &entities.FinanceSummaryResponse{
		AllTime:      totalsResponse(sum.AllTime),
		CurrentMonth: totalsResponse(sum.CurrentMonth),
		MonthSeries:  []entities.MonthTotalsResponse{},
		Upcoming:     []entities.UpcomingPaymentResponse{},
	}
	for _, m := range sum.MonthSeries {
		resp.MonthSeries = append(resp.MonthSeries, entities.MonthTotalsResponse{
			Month:        int(m.Month),
			IncomeCents:  m.Income,
			ExpenseCents: m.Expense,
			ProfitCents:  m.Profit(),
		})
	}
	for _, p := range sum.Upcoming {
		resp.Upcoming = append(resp.Upcoming, entities.UpcomingPaymentResponse{
			Date:        p.Date.String(),
			EntryID:     p.EntryID,
			Name:        p.Name,
			Type:        string(p.Type),
			Frequency:   string(p.Frequency),
			AmountCents: p.Amount,
		})
	}
	return resp, nil
}

// RecordBookingIncome books the deposit of a paid booking as a one-time
// income entry, dated today.
func (s *FinanceService) RecordBookingIncome(b *db.Booking, amountCents int64) error {
	today := s.Now().UTC().Truncate(24 * time.Hour)
	e := &db.FinanceEntry{
		ID:          uuid.NewString(),
		EntryType:   string(finance.TypeIncome),
		Name:        fmt.Sprintf("Deposit — booking %s", b.Code),
		AmountCents: amountCents,
		Frequency:   string(finance.FreqOneTime),
		StartDate:   &today,
	}
	if err := s.Repo.Create(e); err != nil {
		s.logger.Error("recording booking income",
			zap.String("code", b.Code), zap.Error(err))
		return err
	}
	return nil
}

func entryFromRequest(req *entities.FinanceEntryRequest) (*db.FinanceEntry, error) {
	typ := finance.EntryType(req.Type)
	if typ != finance.TypeIncome && typ != finance.TypeExpense {
		return nil, httperr.ErrBadRequest("type must be income or expense")
	}
	if req.AmountCents <= 0 {
		return nil, httperr.ErrBadRequest("amount_cents must be positive")
	}
	freq := finance.Frequency(req.Frequency)
	switch freq {
	case finance.FreqOneTime, finance.FreqWeekly, finance.FreqMonthly, finance.FreqYearly:
	default:
		return nil, httperr.ErrBadRequest("frequency must be one_time, weekly, monthly or yearly")
	}
	if req.PaymentDay != nil && (*req.PaymentDay < 1 || *req.PaymentDay > 31) {
		return nil, httperr.ErrBadRequest("payment_day must be between 1 and 31")
	}

	e := &db.FinanceEntry{
		EntryType:   string(typ),
		Name:        req.Name,
		AmountCents: req.AmountCents,
		Frequency:   string(freq),
		PaymentDay:  req.PaymentDay,
	}
	if req.StartDate != "" {
		d, err := dates.Parse(req.StartDate)
		if err != nil {
			return nil, httperr.ErrBadRequest("start_date must be YYYY-MM-DD")
		}
		t := d.At(0, time.UTC)
		e.StartDate = &t
	}
	return e, nil
}

func kernelEntry(row *db.FinanceEntry) finance.Entry {
	e := finance.Entry{
		ID:        row.ID,
		Type:      finance.EntryType(row.EntryType),
		Name:      row.Name,
		Amount:    row.AmountCents,
		Frequency: finance.Frequency(row.Frequency),
		CreatedAt: row.CreatedAt,
	}
	if row.StartDate != nil {
		d := dates.FromTime(row.StartDate.UTC())
		e.StartDate = &d
	}
	if row.PaymentDay != nil {
		e.PaymentDay = *row.PaymentDay
	}
	return e
}

func entryResponse(row *db.FinanceEntry) *entities.FinanceEntryResponse {
	resp := &entities.FinanceEntryResponse{
		ID:          row.ID,
		Type:        row.EntryType,
		Name:        row.Name,
		AmountCents: row.AmountCents,
		Frequency:   row.Frequency,
		PaymentDay:  row.PaymentDay,
		CreatedAt:   row.CreatedAt.Format(time.RFC3339),
	}
	if row.StartDate != nil {
		resp.StartDate = dates.FromTime(row.StartDate.UTC()).String()
	}
	return resp
}

func totalsResponse(t finance.Totals) entities.TotalsResponse {
	return entities.TotalsResponse{
		IncomeCents:  t.Income,
		ExpenseCents: t.Expense,
		ProfitCents:  t.Profit(),
	}
}
