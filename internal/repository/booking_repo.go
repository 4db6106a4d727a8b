package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"time"

	"limpia/internal/db"
	"limpia/internal/entities"
)

type BookingRepository struct {
	DB *sql.DB
}

func NewBookingRepository(database *sql.DB) *BookingRepository {
	return &BookingRepository{DB: database}
}

const bookingColumns = `
	b.id, b.code, b.client_name, b.client_email, b.client_phone, b.address, b.service_type,
	b.booking_date, b.start_minute, b.end_minute, b.staff_id, b.status, b.price_cents,
	b.deposit_status, COALESCE(b.stripe_session_id, ''), b.created_at, b.updated_at`

func scanBooking(row interface{ Scan(...interface{}) error }, b *db.Booking) error {
	return row.Scan(
		&b.ID, &b.Code, &b.ClientName, &b.ClientEmail, &b.ClientPhone, &b.Address, &b.ServiceType,
		&b.BookingDate, &b.StartMinute, &b.EndMinute, &b.StaffID, &b.Status, &b.PriceCents,
		&b.DepositStatus, &b.StripeSessionID, &b.CreatedAt, &b.UpdatedAt,
	)
}

func (r *BookingRepository) Create(b *db.Booking) error {
	query := `
		INSERT INTO bookings
		(code, client_name, client_email, client_phone, address, service_type, booking_date,
		 start_minute, end_minute, staff_id, status, price_cents, deposit_status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, NOW(), NOW())
		RETURNING id, created_at, updated_at`
	return r.DB.QueryRow(query,
		b.Code, b.ClientName, b.ClientEmail, b.ClientPhone, b.Address, b.ServiceType, b.BookingDate,
		b.StartMinute, b.EndMinute, b.StaffID, b.Status, b.PriceCents, b.DepositStatus,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (r *BookingRepository) GetByCode(code string) (*db.Booking, error) {
	var b db.Booking
	query := `SELECT` + bookingColumns + `, s.name FROM bookings b JOIN staff s ON s.id = b.staff_id WHERE b.code = $1`
	err := r.DB.QueryRow(query, code).Scan(
		&b.ID, &b.Code, &b.ClientName, &b.ClientEmail, &b.ClientPhone, &b.Address, &b.ServiceType,
		&b.BookingDate, &b.StartMinute, &b.EndMinute, &b.StaffID, &b.Status, &b.PriceCents,
		&b.DepositStatus, &b.StripeSessionID, &b.CreatedAt, &b.UpdatedAt, &b.StaffName,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("booking with code '%s' not found: %w", code, err)
		}
		return nil, fmt.Errorf("error querying booking: %w", err)
	}
	return &b, nil
}

// List filters bookings for the admin screens.
func (r *BookingRepository) List(date, status string, staffID int) ([]db.Booking, error) {
	query := `SELECT` + bookingColumns + `, s.name
	FROM bookings b
	JOIN staff s ON s.id = b.staff_id
	WHERE 1=1`
	args := []interface{}{}
	idx := 1

	if date != "" {
		query += " AND b.booking_date = $" + strconv.Itoa(idx)
		args = append(args, date)
		idx++
	}
	if status != "" {
		query += " AND b.status = $" + strconv.Itoa(idx)
		args = append(args, status)
		idx++
	}
	if staffID != 0 {
		query += " AND b.staff_id = $" + strconv.Itoa(idx)
		args = append(args, staffID)
		idx++
	}
	query += " ORDER BY b.booking_date DESC, b.start_minute"

	rows, err := r.DB.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings: %w", err)
	}
	defer rows.Close()

	var bookings []db.Booking
	for rows.Next() {
		var b db.Booking
		err := rows.Scan(
			&b.ID, &b.Code, &b.ClientName, &b.ClientEmail, &b.ClientPhone, &b.Address, &b.ServiceType,
			&b.BookingDate, &b.StartMinute, &b.EndMinute, &b.StaffID, &b.Status, &b.PriceCents,
			&b.DepositStatus, &b.StripeSessionID, &b.CreatedAt, &b.UpdatedAt, &b.StaffName,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

// ListForDate returns the commitments the slot engine must avoid: every
// pending or confirmed booking on the given day.
func (r *BookingRepository) ListForDate(date time.Time) ([]db.Booking, error) {
	query := `SELECT` + bookingColumns + `
	FROM bookings b
	WHERE b.booking_date = $1 AND b.status IN ('pending', 'confirmed')
	ORDER BY b.start_minute`

	rows, err := r.DB.Query(query, date)
	if err != nil {
		return nil, fmt.Errorf("error querying bookings for date: %w", err)
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

func (r *BookingRepository) UpdateByCode(code string, b *db.Booking) error {
	result, err := r.DB.Exec(`
		UPDATE bookings
		SET client_name = $2, client_email = $3, client_phone = $4, address = $5, service_type = $6,
		    booking_date = $7, start_minute = $8, end_minute = $9, staff_id = $10, price_cents = $11,
		    updated_at = NOW()
		WHERE code = $1`,
		code, b.ClientName, b.ClientEmail, b.ClientPhone, b.Address, b.ServiceType,
		b.BookingDate, b.StartMinute, b.EndMinute, b.StaffID, b.PriceCents,
	)
	if err != nil {
		return fmt.Errorf("error updating booking %s: %w", code, err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *BookingRepository) UpdateStatusByCode(code, status string) error {
	_, err := r.DB.Exec(`UPDATE bookings SET status = $2, updated_at = NOW() WHERE code = $1`, code, status)
	if err != nil {
		return fmt.Errorf("error updating booking status: %w", err)
	}
	return nil
}

func (r *BookingRepository) SetStripeSession(code, sessionID, depositStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE bookings SET stripe_session_id = $2, deposit_status = $3, updated_at = NOW()
		WHERE code = $1`, code, sessionID, depositStatus)
	return err
}

func (r *BookingRepository) GetByStripeSessionID(sessionID string) (*db.Booking, error) {
	var b db.Booking
	query := `SELECT` + bookingColumns + ` FROM bookings b WHERE b.stripe_session_id = $1`
	err := scanBooking(r.DB.QueryRow(query, sessionID), &b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no booking for stripe session '%s': %w", sessionID, err)
		}
		return nil, fmt.Errorf("error querying booking by session: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) UpdateDepositBySessionID(sessionID, depositStatus string) error {
	_, err := r.DB.Exec(`
		UPDATE bookings SET deposit_status = $2, updated_at = NOW()
		WHERE stripe_session_id = $1`, sessionID, depositStatus)
	return err
}

// PayrollReport aggregates completed bookings per staff member over a date
// range: job count, minutes worked and the resulting pay.
func (r *BookingRepository) PayrollReport(from, to time.Time) ([]entities.PayrollLine, error) {
	query := `
	SELECT s.id, s.name, s.hourly_rate_cents,
	       COUNT(b.id) AS jobs,
	       COALESCE(SUM(b.end_minute - b.start_minute), 0) AS minutes
	FROM staff s
	LEFT JOIN bookings b
		ON b.staff_id = s.id
		AND b.status = 'completed'
		AND b.booking_date BETWEEN $1 AND $2
	WHERE s.active
	GROUP BY s.id, s.name, s.hourly_rate_cents
	ORDER BY s.name`

	rows, err := r.DB.Query(query, from, to)
	if err != nil {
		return nil, fmt.Errorf("error querying payroll report: %w", err)
	}
	defer rows.Close()

	var lines []entities.PayrollLine
	for rows.Next() {
		var l entities.PayrollLine
		if err := rows.Scan(&l.StaffID, &l.StaffName, &l.HourlyRateCents, &l.JobsCompleted, &l.MinutesWorked); err != nil {
			return nil, fmt.Errorf("error scanning payroll row: %w", err)
		}
		l.PayCents = int64(l.MinutesWorked) * int64(l.HourlyRateCents) / 60
		lines = append(lines, l)
	}
	return lines, rows.Err()
}
