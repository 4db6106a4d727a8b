package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"limpia/internal/dates"
	"limpia/internal/db"
	"limpia/internal/entities"
	httperr "limpia/internal/errors"
	"limpia/internal/repository"
	"limpia/internal/schedule"
	"limpia/internal/utils"
)

const (
	statusPending   = "pending"
	statusConfirmed = "confirmed"
	statusCompleted = "completed"
	statusCanceled  = "canceled"

	depositPending  = "pending"
	depositPaid     = "paid"
	depositRefunded = "refunded"
)

// depositShare is the fraction of the job price collected up front.
const depositShare = 0.3

type BookingService struct {
	Repo      *repository.BookingRepository
	StaffRepo *repository.StaffRepository
	stripe    *StripeService
	notify    *NotifyService
	logger    *zap.Logger
	// Now supplies the clock; the slot engine itself never reads it.
	Now func() time.Time
}

func NewBookingService(repo *repository.BookingRepository, staffRepo *repository.StaffRepository, stripe *StripeService, notify *NotifyService, logger *zap.Logger) *BookingService {
	return &BookingService{
		Repo:      repo,
		StaffRepo: staffRepo,
		stripe:    stripe,
		notify:    notify,
		logger:    logger,
		Now:       time.Now,
	}
}

// AvailableSlots runs the slot engine for one day: active roster plus that
// day's live bookings in, bookable hour labels out.
func (s *BookingService) AvailableSlots(dateStr, excludeCode string) (*entities.AvailabilityResponse, error) {
	target, err := dates.Parse(dateStr)
	if err != nil {
		return nil, httperr.ErrBadRequest("date must be YYYY-MM-DD")
	}

	roster, err := s.rosterHours()
	if err != nil {
		return nil, err
	}
	booked, err := s.bookedOn(target)
	if err != nil {
		return nil, err
	}

	hours := schedule.AvailableSlots(s.Now(), target, roster, booked, excludeCode)
	resp := &entities.AvailabilityResponse{Date: target.String(), Slots: []string{}}
	for _, h := range hours {
		resp.Slots = append(resp.Slots, strconv.Itoa(h))
	}
	return resp, nil
}

// BlockedDates computes the greyed-out calendar cells for a window of days.
func (s *BookingService) BlockedDates(fromStr string, days int) (*entities.BlockedDatesResponse, error) {
	from, err := dates.Parse(fromStr)
	if err != nil {
		return nil, httperr.ErrBadRequest("from must be YYYY-MM-DD")
	}
	if days <= 0 || days > 366 {
		return nil, httperr.ErrBadRequest("days must be between 1 and 366")
	}

	roster, err := s.rosterHours()
	if err != nil {
		return nil, err
	}

	blocked := schedule.BlockedDates(s.Now(), from, days, roster)
	keys := make([]string, 0, len(blocked))
	for k := range blocked {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return &entities.BlockedDatesResponse{From: from.String(), Days: days, Blocked: keys}, nil
}

func (s *BookingService) Create(req *entities.BookingRequest) (*entities.BookingResponse, error) {
	b, err := s.bookingFromRequest(req)
	if err != nil {
		return nil, err
	}
	b.Code = newBookingCode()
	b.Status = statusPending
	b.DepositStatus = depositPending

	if err := s.ensureSlotFree(b, ""); err != nil {
		return nil, err
	}

	if err := s.Repo.Create(b); err != nil {
		s.logger.Error("creating booking", zap.Error(err))
		return nil, err
	}

	s.notify.BookingEmailAsync(b, statusPending)
	s.notify.BookingSMSAsync(b, statusPending)
	return bookingResponse(b), nil
}

func (s *BookingService) Get(code string) (*entities.BookingResponse, error) {
	b, err := s.Repo.GetByCode(code)
	if err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("booking %s not found", code))
	}
	return bookingResponse(b), nil
}

func (s *BookingService) List(date, status string, staffID int) (*entities.BookingsList, error) {
	bookings, err := s.Repo.List(date, status, staffID)
	if err != nil {
		return nil, err
	}
	list := &entities.BookingsList{Total: len(bookings), Bookings: []entities.BookingResponse{}}
	for i := range bookings {
		list.Bookings = append(list.Bookings, *bookingResponse(&bookings[i]))
	}
	return list, nil
}

// Reschedule moves or edits a booking. The booking's own code is passed to
// the slot engine so its current slot does not block the new one.
func (s *BookingService) Reschedule(code string, req *entities.BookingRequest) (*entities.BookingResponse, error) {
	if _, err := s.Repo.GetByCode(code); err != nil {
		return nil, httperr.ErrNotFound(fmt.Sprintf("booking %s not found", code))
	}

	b, err := s.bookingFromRequest(req)
	if err != nil {
		return nil, err
	}
	if err := s.ensureSlotFree(b, code); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateByCode(code, b); err != nil {
		s.logger.Error("updating booking", zap.String("code", code), zap.Error(err))
		return nil, err
	}
	return s.Get(code)
}

func (s *BookingService) Cancel(code string) error {
	b, err := s.Repo.GetByCode(code)
	if err != nil {
		return httperr.ErrNotFound(fmt.Sprintf("booking %s not found", code))
	}
	if b.Status == statusCanceled {
		return httperr.ErrConflict("booking already canceled")
	}

	if b.DepositStatus == depositPaid && b.StripeSessionID != "" {
		if err := s.stripe.RefundPaymentBySessionID(b.StripeSessionID); err != nil {
			s.logger.Error("refunding deposit", zap.String("code", code), zap.Error(err))
			return err
		}
		if err := s.Repo.UpdateDepositBySessionID(b.StripeSessionID, depositRefunded); err != nil {
			return err
		}
	}

	if err := s.Repo.UpdateStatusByCode(code, statusCanceled); err != nil {
		return err
	}

	s.notify.BookingEmailAsync(b, statusCanceled)
	s.notify.BookingSMSAsync(b, statusCanceled)
	return nil
}

// CreateDepositSession opens a Stripe Checkout session for the booking
// deposit and records it on the booking.
func (s *BookingService) CreateDepositSession(code string) (string, error) {
	b, err := s.Repo.GetByCode(code)
	if err != nil {
		return "", httperr.ErrNotFound(fmt.Sprintf("booking %s not found", code))
	}
	if b.DepositStatus == depositPaid {
		return "", httperr.ErrConflict("deposit already paid")
	}

	amount := int64(float64(b.PriceCents) * depositShare)
	description := fmt.Sprintf("Cleaning deposit — booking %s", b.Code)
	url, sessionID, err := s.stripe.CreateCheckoutSession(amount, "gbp", description, b.ClientEmail)
	if err != nil {
		s.logger.Error("creating checkout session", zap.String("code", code), zap.Error(err))
		return "", err
	}

	if err := s.Repo.SetStripeSession(code, sessionID, depositPending); err != nil {
		return "", err
	}
	return url, nil
}

// ConfirmDepositBySession marks the deposit paid and the booking confirmed
// after the Stripe webhook reports a completed checkout.
func (s *BookingService) ConfirmDepositBySession(sessionID string) (*db.Booking, error) {
	b, err := s.Repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateDepositBySessionID(sessionID, depositPaid); err != nil {
		return nil, err
	}
	if err := s.Repo.UpdateStatusByCode(b.Code, statusConfirmed); err != nil {
		return nil, err
	}
	b.DepositStatus = depositPaid
	b.Status = statusConfirmed

	s.notify.BookingEmailAsync(b, statusConfirmed)
	s.notify.BookingSMSAsync(b, statusConfirmed)
	return b, nil
}

// MarkDepositRefundedBySession mirrors a Stripe refund onto the booking.
func (s *BookingService) MarkDepositRefundedBySession(sessionID string) error {
	b, err := s.Repo.GetByStripeSessionID(sessionID)
	if err != nil {
		return err
	}
	if err := s.Repo.UpdateDepositBySessionID(sessionID, depositRefunded); err != nil {
		return err
	}
	return s.Repo.UpdateStatusByCode(b.Code, statusCanceled)
}

// ensureSlotFree re-runs the slot engine server-side before a write: the
// booking's start hour must still be bookable.
func (s *BookingService) ensureSlotFree(b *db.Booking, excludeCode string) error {
	target := dates.FromTime(b.BookingDate)
	roster, err := s.rosterHours()
	if err != nil {
		return err
	}
	booked, err := s.bookedOn(target)
	if err != nil {
		return err
	}

	hour := b.StartMinute / 60
	for _, h := range schedule.AvailableSlots(s.Now(), target, roster, booked, excludeCode) {
		if h == hour {
			return nil
		}
	}
	return httperr.ErrConflict(fmt.Sprintf("slot %s on %s is not available", dates.FormatClock(b.StartMinute), target))
}

func (s *BookingService) bookingFromRequest(req *entities.BookingRequest) (*db.Booking, error) {
	target, err := dates.Parse(req.Date)
	if err != nil {
		return nil, httperr.ErrBadRequest("date must be YYYY-MM-DD")
	}
	start, err := dates.ParseClock(req.StartTime)
	if err != nil {
		return nil, httperr.ErrBadRequest("start_time must be HH:MM")
	}
	end, err := dates.ParseClock(req.EndTime)
	if err != nil {
		return nil, httperr.ErrBadRequest("end_time must be HH:MM")
	}
	if start%60 != 0 || start/60 < schedule.FirstSlotHour || start/60 > schedule.LastSlotHour {
		return nil, httperr.ErrBadRequest("start_time must be on the hour between 07:00 and 20:00")
	}
	if start >= end {
		return nil, httperr.ErrBadRequest("end_time must be after start_time")
	}
	serviceType := utils.NormalizeServiceType(req.ServiceType)
	if !utils.IsValidServiceType(serviceType) {
		return nil, httperr.ErrBadRequest(fmt.Sprintf("unknown service type %q", req.ServiceType))
	}
	if req.ClientName == "" || req.StaffID == 0 {
		return nil, httperr.ErrBadRequest("client_name and staff_id are required")
	}

	return &db.Booking{
		ClientName:  req.ClientName,
		ClientEmail: req.ClientEmail,
		ClientPhone: req.ClientPhone,
		Address:     req.Address,
		ServiceType: serviceType,
		BookingDate: target.At(0, time.UTC),
		StartMinute: start,
		EndMinute:   end,
		StaffID:     req.StaffID,
		PriceCents:  req.PriceCents,
	}, nil
}

// rosterHours loads the active roster and converts it to the slot engine's
// types. Staff rows with malformed windows simply contribute no slots.
func (s *BookingService) rosterHours() ([]schedule.StaffHours, error) {
	staff, err := s.StaffRepo.List(true)
	if err != nil {
		return nil, err
	}

	var roster []schedule.StaffHours
	for _, m := range staff {
		h := schedule.StaffHours{
			StaffID:         strconv.Itoa(m.ID),
			MinNoticeHours:  m.MinNoticeHours,
			TravelBufferMin: m.TravelBufferMin,
		}
		for _, d := range m.Days {
			if d.Weekday < 0 || d.Weekday > 6 {
				continue
			}
			h.Week[d.Weekday] = schedule.DayWindow{
				Available: d.Available,
				Start:     d.StartMinute,
				End:       d.EndMinute,
			}
		}
		roster = append(roster, h)
	}
	return roster, nil
}

func (s *BookingService) bookedOn(target dates.Date) ([]schedule.Booked, error) {
	bookings, err := s.Repo.ListForDate(target.At(0, time.UTC))
	if err != nil {
		return nil, err
	}
	var booked []schedule.Booked
	for _, b := range bookings {
		booked = append(booked, schedule.Booked{
			Code:  b.Code,
			Date:  target,
			Start: b.StartMinute,
			End:   b.EndMinute,
		})
	}
	return booked, nil
}

func bookingResponse(b *db.Booking) *entities.BookingResponse {
	return &entities.BookingResponse{
		Code:          b.Code,
		ClientName:    b.ClientName,
		ClientEmail:   b.ClientEmail,
		ClientPhone:   b.ClientPhone,
		Address:       b.Address,
		ServiceType:   b.ServiceType,
		Date:          dates.FromTime(b.BookingDate).String(),
		StartTime:     dates.FormatClock(b.StartMinute),
		EndTime:       dates.FormatClock(b.EndMinute),
		StaffID:       b.StaffID,
		StaffName:     b.StaffName,
		Status:        b.Status,
		PriceCents:    b.PriceCents,
		DepositStatus: b.DepositStatus,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}

// newBookingCode builds a short human-readable reference.
func newBookingCode() string {
	id := strings.ToUpper(uuid.NewString())
	return "BK-" + strings.ReplaceAll(id, "-", "")[:8]
}
