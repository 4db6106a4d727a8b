package service

import (
	"time"

	"limpia/internal/dates"
	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/repository"
)

type PayrollService struct {
	Repo *repository.BookingRepository
}

func NewPayrollService(repo *repository.BookingRepository) *PayrollService {
	return &PayrollService{Repo: repo}
}

// Report sums completed bookings per staff member over [from, to].
func (s *PayrollService) Report(fromStr, toStr string) (*entities.PayrollReport, error) {
	from, err := dates.Parse(fromStr)
	if err != nil {
		return nil, httperr.ErrBadRequest("from must be YYYY-MM-DD")
	}
	to, err := dates.Parse(toStr)
	if err != nil {
		return nil, httperr.ErrBadRequest("to must be YYYY-MM-DD")
	}
	if to.Before(from) {
		return nil, httperr.ErrBadRequest("to must not be before from")
	}

	lines, err := s.Repo.PayrollReport(from.At(0, time.UTC), to.At(0, time.UTC))
	if err != nil {
		return nil, err
	}
	if lines == nil {
		lines = []entities.PayrollLine{}
	}
	return &entities.PayrollReport{From: from.String(), To: to.String(), Lines: lines}, nil
}
