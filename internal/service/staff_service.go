package service

import (
	"fmt"

	"go.uber.org/zap"

	"limpia/internal/dates"
	"limpia/internal/db"
	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/repository"
)

type StaffService struct {
	Repo   *repository.StaffRepository
	logger *zap.Logger
}

func NewStaffService(repo *repository.StaffRepository, logger *zap.Logger) *StaffService {
	return &StaffService{Repo: repo, logger: logger}
}

func (s *StaffService) Create(req *entities.StaffRequest) (*entities.StaffResponse, error) {
	m, err := staffFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.Create(m); err != nil {
		s.logger.Error("creating staff", zap.Error(err))
		return nil, err
	}
	return staffResponse(m), nil
}

func (s *StaffService) Update(id int, req *entities.StaffRequest) (*entities.StaffResponse, error) {
	m, err := staffFromRequest(req)
	if err != nil {
		return nil, err
	}
	m.ID = id
	if err := s.Repo.Update(m); err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("staff %d not found", id))
	}
	if len(m.Days) > 0 {
		if err := s.Repo.ReplaceAvailability(id, m.Days); err != nil {
			return nil, err
		}
	}
	return s.Get(id)
}

// SetAvailability replaces one staff member's full weekly schedule.
func (s *StaffService) SetAvailability(id int, days []entities.StaffDayRequest) (*entities.StaffResponse, error) {
	if _, err := s.Repo.GetByID(id); err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("staff %d not found", id))
	}
	parsed, err := parseDays(days)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.ReplaceAvailability(id, parsed); err != nil {
		return nil, err
	}
	return s.Get(id)
}

func (s *StaffService) Get(id int) (*entities.StaffResponse, error) {
	m, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("staff %d not found", id))
	}
	return staffResponse(m), nil
}

func (s *StaffService) List(activeOnly bool) ([]entities.StaffResponse, error) {
	staff, err := s.Repo.List(activeOnly)
	if err != nil {
		return nil, err
	}
	out := []entities.StaffResponse{}
	for i := range staff {
		out = append(out, *staffResponse(&staff[i]))
	}
	return out, nil
}

func (s *StaffService) Delete(id int) error {
	return s.Repo.Delete(id)
}

func staffFromRequest(req *entities.StaffRequest) (*db.Staff, error) {
	if req.Name == "" {
		return nil, httperr.ErrBadRequest("name is required")
	}
	if req.TravelBufferMin < 0 {
		return nil, httperr.ErrBadRequest("travel_buffer_minutes must be >= 0")
	}

	notice := -1 // not configured; the engine's default applies
	if req.MinNoticeHours != nil {
		if *req.MinNoticeHours < 0 {
			return nil, httperr.ErrBadRequest("min_notice_hours must be >= 0")
		}
		notice = *req.MinNoticeHours
	}

	days, err := parseDays(req.Days)
	if err != nil {
		return nil, err
	}

	return &db.Staff{
		Name:            req.Name,
		Email:           req.Email,
		Phone:           req.Phone,
		HourlyRateCents: req.HourlyRateCents,
		MinNoticeHours:  notice,
		TravelBufferMin: req.TravelBufferMin,
		Active:          req.Active,
		Days:            days,
	}, nil
}

// parseDays converts the "HH:MM" wire shape into minute-of-day rows. A day
// marked available must carry a well-ordered window.
func parseDays(days []entities.StaffDayRequest) ([]db.StaffDay, error) {
	var out []db.StaffDay
	for _, d := range days {
		if d.Weekday < 0 || d.Weekday > 6 {
			return nil, httperr.ErrBadRequest(fmt.Sprintf("weekday %d out of range", d.Weekday))
		}
		row := db.StaffDay{Weekday: d.Weekday, Available: d.Available}
		if d.Available {
			start, err := dates.ParseClock(d.Start)
			if err != nil {
				return nil, httperr.ErrBadRequest(fmt.Sprintf("weekday %d: start must be HH:MM", d.Weekday))
			}
			end, err := dates.ParseClock(d.End)
			if err != nil {
				return nil, httperr.ErrBadRequest(fmt.Sprintf("weekday %d: end must be HH:MM", d.Weekday))
			}
			if start >= end {
				return nil, httperr.ErrBadRequest(fmt.Sprintf("weekday %d: start must be before end", d.Weekday))
			}
			row.StartMinute = start
			row.EndMinute = end
		}
		out = append(out, row)
	}
	return out, nil
}

func staffResponse(m *db.Staff) *entities.StaffResponse {
	resp := &entities.StaffResponse{
		ID:              m.ID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		HourlyRateCents: m.HourlyRateCents,
		TravelBufferMin: m.TravelBufferMin,
		Active:          m.Active,
		Days:            []entities.StaffDayRequest{},
	}
	if m.MinNoticeHours >= 0 {
		notice := m.MinNoticeHours
		resp.MinNoticeHours = &notice
	}
	for _, d := range m.Days {
		day := entities.StaffDayRequest{Weekday: d.Weekday, Available: d.Available}
		if d.Available {
			day.Start = dates.FormatClock(d.StartMinute)
			day.End = dates.FormatClock(d.EndMinute)
		}
		resp.Days = append(resp.Days, day)
	}
	return resp
}
