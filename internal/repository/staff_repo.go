package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"limpia/internal/db"
)

type StaffRepository struct {
	DB *sql.DB
}

func NewStaffRepository(database *sql.DB) *StaffRepository {
	return &StaffRepository{DB: database}
}

func (r *StaffRepository) Create(s *db.Staff) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	err = tx.QueryRow(`
		INSERT INTO staff (name, email, phone, hourly_rate_cents, min_notice_hours, travel_buffer_minutes, active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at`,
		s.Name, s.Email, s.Phone, s.HourlyRateCents, s.MinNoticeHours, s.TravelBufferMin, s.Active,
	).Scan(&s.ID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error inserting staff: %w", err)
	}

	if err := replaceDays(tx, s.ID, s.Days); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *StaffRepository) Update(s *db.Staff) error {
	result, err := r.DB.Exec(`
		UPDATE staff
		SET name = $2, email = $3, phone = $4, hourly_rate_cents = $5,
		    min_notice_hours = $6, travel_buffer_minutes = $7, active = $8, updated_at = NOW()
		WHERE id = $1`,
		s.ID, s.Name, s.Email, s.Phone, s.HourlyRateCents, s.MinNoticeHours, s.TravelBufferMin, s.Active,
	)
	if err != nil {
		return fmt.Errorf("error updating staff %d: %w", s.ID, err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *StaffRepository) Delete(id int) error {
	_, err := r.DB.Exec(`DELETE FROM staff WHERE id = $1`, id)
	return err
}

// ReplaceAvailability swaps out the full weekly schedule for a staff member.
func (r *StaffRepository) ReplaceAvailability(staffID int, days []db.StaffDay) error {
	tx, err := r.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := replaceDays(tx, staffID, days); err != nil {
		return err
	}
	return tx.Commit()
}

func replaceDays(tx *sql.Tx, staffID int, days []db.StaffDay) error {
	if _, err := tx.Exec(`DELETE FROM staff_availability WHERE staff_id = $1`, staffID); err != nil {
		return fmt.Errorf("error clearing staff availability: %w", err)
	}
	for _, d := range days {
		_, err := tx.Exec(`
			INSERT INTO staff_availability (staff_id, weekday, available, start_minute, end_minute)
			VALUES ($1, $2, $3, $4, $5)`,
			staffID, d.Weekday, d.Available, d.StartMinute, d.EndMinute,
		)
		if err != nil {
			return fmt.Errorf("error inserting staff availability: %w", err)
		}
	}
	return nil
}

func (r *StaffRepository) GetByID(id int) (*db.Staff, error) {
	var s db.Staff
	err := r.DB.QueryRow(`
		SELECT id, name, email, phone, hourly_rate_cents, min_notice_hours, travel_buffer_minutes, active, created_at, updated_at
		FROM staff WHERE id = $1`, id,
	).Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.HourlyRateCents, &s.MinNoticeHours, &s.TravelBufferMin, &s.Active, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("staff %d not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying staff: %w", err)
	}

	days, err := r.daysFor([]int{s.ID})
	if err != nil {
		return nil, err
	}
	s.Days = days[s.ID]
	return &s, nil
}

// List returns staff members with their weekly schedules, optionally only
// active ones (the roster the slot engine runs on).
func (r *StaffRepository) List(activeOnly bool) ([]db.Staff, error) {
	query := `
		SELECT id, name, email, phone, hourly_rate_cents, min_notice_hours, travel_buffer_minutes, active, created_at, updated_at
		FROM staff`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY name`

	rows, err := r.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("error querying staff list: %w", err)
	}
	defer rows.Close()

	var staff []db.Staff
	var ids []int
	for rows.Next() {
		var s db.Staff
		err := rows.Scan(&s.ID, &s.Name, &s.Email, &s.Phone, &s.HourlyRateCents, &s.MinNoticeHours, &s.TravelBufferMin, &s.Active, &s.CreatedAt, &s.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning staff row: %w", err)
		}
		staff = append(staff, s)
		ids = append(ids, s.ID)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	days, err := r.daysFor(ids)
	if err != nil {
		return nil, err
	}
	for i := range staff {
		staff[i].Days = days[staff[i].ID]
	}
	return staff, nil
}

func (r *StaffRepository) daysFor(staffIDs []int) (map[int][]db.StaffDay, error) {
	out := make(map[int][]db.StaffDay)
	if len(staffIDs) == 0 {
		return out, nil
	}

	rows, err := r.DB.Query(`
		SELECT staff_id, weekday, available, start_minute, end_minute
		FROM staff_availability
		WHERE staff_id = ANY($1)
		ORDER BY staff_id, weekday`, pq.Array(staffIDs))
	if err != nil {
		return nil, fmt.Errorf("error querying staff availability: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d db.StaffDay
		if err := rows.Scan(&d.StaffID, &d.Weekday, &d.Available, &d.StartMinute, &d.EndMinute); err != nil {
			return nil, fmt.Errorf("error scanning staff availability row: %w", err)
		}
		out[d.StaffID] = append(out[d.StaffID], d)
	}
	return out, rows.Err()
}
