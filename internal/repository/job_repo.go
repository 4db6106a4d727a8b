package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"

	"limpia/internal/db"
)

type JobRepository struct {
	DB *sql.DB
}

func NewJobRepository(database *sql.DB) *JobRepository {
	return &JobRepository{DB: database}
}

// GetConfirmedBookingIDsPastEnd finds confirmed bookings whose end time has
// already passed, relative to the given instant.
func (r *JobRepository) GetConfirmedBookingIDsPastEnd(now time.Time) ([]int, error) {
	query := `
		SELECT id FROM bookings
		WHERE status = 'confirmed'
		AND booking_date + make_interval(mins => end_minute) < $1`
	rows, err := r.DB.Query(query, now)
	if err != nil {
		return nil, fmt.Errorf("error querying confirmed bookings past end time: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("error scanning booking ID: %w", err)
		}
		ids = append(ids, id)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error after iterating rows: %w", err)
	}
	return ids, nil
}

// UpdateBookingStatuses moves a batch of bookings to a new status.
func (r *JobRepository) UpdateBookingStatuses(ids []int, newStatus string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	query := `UPDATE bookings SET status = $1, updated_at = NOW() WHERE id = ANY($2)`
	result, err := r.DB.Exec(query, newStatus, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("error updating booking statuses: %w", err)
	}
	return result.RowsAffected()
}

// ListConfirmedForDate returns the confirmed bookings on a day, for the
// day-before reminder job.
func (r *JobRepository) ListConfirmedForDate(date time.Time) ([]db.Booking, error) {
	query := `SELECT` + bookingColumns + `
	FROM bookings b
	WHERE b.booking_date = $1 AND b.status = 'confirmed'
	ORDER BY b.start_minute`

	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying reminder bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		if err := scanBooking(rows, &b); err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}
