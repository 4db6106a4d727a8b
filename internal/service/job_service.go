package service

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"limpia/internal/dates"
	"limpia/internal/repository"
)

type JobService struct {
	Repo   *repository.JobRepository
	notify *NotifyService
	logger *zap.Logger
}

func NewJobService(repo *repository.JobRepository, notify *NotifyService, logger *zap.Logger) *JobService {
	return &JobService{Repo: repo, notify: notify, logger: logger}
}

// CompleteFinishedBookings moves confirmed bookings whose end time has
// passed to 'completed'. Runs from cron.
func (s *JobService) CompleteFinishedBookings() error {
	ids, err := s.Repo.GetConfirmedBookingIDsPastEnd(time.Now().UTC())
	if err != nil {
		return fmt.Errorf("cron job: failed to get bookings past end time: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}

	n, err := s.Repo.UpdateBookingStatuses(ids, "completed")
	if err != nil {
		return fmt.Errorf("cron job: failed to update booking statuses: %w", err)
	}
	s.logger.Info("marked bookings completed", zap.Int64("count", n))
	return nil
}

// SendDayBeforeReminders texts every client with a confirmed booking
// tomorrow. Runs from cron once a day.
func (s *JobService) SendDayBeforeReminders() error {
	tomorrow := dates.FromTime(time.Now().UTC()).AddDays(1)
	bookings, err := s.Repo.ListConfirmedForDate(tomorrow.At(0, time.UTC))
	if err != nil {
		return fmt.Errorf("cron job: failed to list tomorrow's bookings: %w", err)
	}

	for i := range bookings {
		b := bookings[i]
		if b.ClientPhone == "" {
			continue
		}
		msg := fmt.Sprintf("FreshNest Cleaning reminder: your %s clean is tomorrow at %s.\nBooking %s.",
			b.ServiceType, dates.FormatClock(b.StartMinute), b.Code)
		if err := s.notify.SendSMS(b.ClientPhone, msg); err != nil {
			s.logger.Warn("reminder SMS failed",
				zap.String("code", b.Code), zap.Error(err))
		}
	}
	return nil
}
