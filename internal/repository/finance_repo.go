package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"limpia/internal/db"
)

type FinanceRepository struct {
	DB *sql.DB
}

func NewFinanceRepository(database *sql.DB) *FinanceRepository {
	return &FinanceRepository{DB: database}
}

func (r *FinanceRepository) Create(e *db.FinanceEntry) error {
	query := `
		INSERT INTO finance_entries (id, entry_type, name, amount_cents, frequency, start_date, payment_day, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING created_at, updated_at`
	return r.DB.QueryRow(query,
		e.ID, e.EntryType, e.Name, e.AmountCents, e.Frequency, e.StartDate, e.PaymentDay,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
}

func (r *FinanceRepository) Update(e *db.FinanceEntry) error {
	result, err := r.DB.Exec(`
		UPDATE finance_entries
		SET entry_type = $2, name = $3, amount_cents = $4, frequency = $5, start_date = $6, payment_day = $7, updated_at = NOW()
		WHERE id = $1`,
		e.ID, e.EntryType, e.Name, e.AmountCents, e.Frequency, e.StartDate, e.PaymentDay,
	)
	if err != nil {
		return fmt.Errorf("error updating finance entry %s: %w", e.ID, err)
	}
	n, err := result.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *FinanceRepository) Delete(id string) error {
	_, err := r.DB.Exec(`DELETE FROM finance_entries WHERE id = $1`, id)
	return err
}

func (r *FinanceRepository) GetByID(id string) (*db.FinanceEntry, error) {
	var e db.FinanceEntry
	err := r.DB.QueryRow(`
		SELECT id, entry_type, name, amount_cents, frequency, start_date, payment_day, created_at, updated_at
		FROM finance_entries WHERE id = $1`, id,
	).Scan(&e.ID, &e.EntryType, &e.Name, &e.AmountCents, &e.Frequency, &e.StartDate, &e.PaymentDay, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("finance entry '%s' not found: %w", id, err)
		}
		return nil, fmt.Errorf("error querying finance entry: %w", err)
	}
	return &e, nil
}

// List returns every entry; the projector always works on the full set.
func (r *FinanceRepository) List() ([]db.FinanceEntry, error) {
	rows, err := r.DB.Query(`
		SELECT id, entry_type, name, amount_cents, frequency, start_date, payment_day, created_at, updated_at
		FROM finance_entries
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error querying finance entries: %w", err)
	}
	defer rows.Close()

	var entries []db.FinanceEntry
	for rows.Next() {
		var e db.FinanceEntry
		err := rows.Scan(&e.ID, &e.EntryType, &e.Name, &e.AmountCents, &e.Frequency, &e.StartDate, &e.PaymentDay, &e.CreatedAt, &e.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning finance entry: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
