package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

// PostgresCheckInRepository stores check-ins one row per (user_id, date).
// The exercises list, measurements, classification and feedback card live
// in JSONB columns; their types carry the Valuer/Scanner pair.
type PostgresCheckInRepository struct {
	db *sqlx.DB
}

func NewPostgresCheckInRepository(db *sqlx.DB) *PostgresCheckInRepository {
	return &PostgresCheckInRepository{db: db}
}

func (r *PostgresCheckInRepository) Upsert(ctx context.Context, entry *domain.CheckInEntry) error {
	entry.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO check_in_entries (
			id, user_id, date,
			exercises, diet, water, sleep, mood,
			note, weight, measurements, photo,
			classification, feedback_card,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :date,
			:exercises, :diet, :water, :sleep, :mood,
			:note, :weight, :measurements, :photo,
			:classification, :feedback_card,
			:created_at, :updated_at
		)
		ON CONFLICT (user_id, date) DO UPDATE
		SET exercises = EXCLUDED.exercises,
		    diet = EXCLUDED.diet,
		    water = EXCLUDED.water,
		    sleep = EXCLUDED.sleep,
		    mood = EXCLUDED.mood,
		    note = EXCLUDED.note,
		    weight = EXCLUDED.weight,
		    measurements = EXCLUDED.measurements,
		    photo = EXCLUDED.photo,
		    classification = EXCLUDED.classification,
		    feedback_card = EXCLUDED.feedback_card,
		    updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	// On conflict the existing row keeps its id; the entry must reflect
	// the id and created_at that actually ended up in the table.
	rows, err := r.db.NamedQueryContext(ctx, query, entry)
	if err != nil {
		return err
	}
	defer rows.Close()

	if rows.Next() {
		if err := rows.Scan(&entry.ID, &entry.CreatedAt); err != nil {
			return err
		}
	}
	return rows.Err()
}

func (r *PostgresCheckInRepository) GetByUserAndDate(ctx context.Context, userID string, date domain.Date) (*domain.CheckInEntry, error) {
	var entry domain.CheckInEntry
	query := `SELECT * FROM check_in_entries WHERE user_id = $1 AND date = $2`

	err := r.db.GetContext(ctx, &entry, query, userID, date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCheckInNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresCheckInRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.CheckInEntry, error) {
	entries := []*domain.CheckInEntry{}

	query := `
		SELECT * FROM check_in_entries
		WHERE user_id = $1
		ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresCheckInRepository) ListByUserAndDateRange(ctx context.Context, userID string, from, to domain.Date) ([]*domain.CheckInEntry, error) {
	entries := []*domain.CheckInEntry{}

	query := `
		SELECT * FROM check_in_entries
		WHERE user_id = $1
		  AND date >= $2
		  AND date <= $3
		ORDER BY date DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID, from, to)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresCheckInRepository) ListBefore(ctx context.Context, userID string, before domain.Date, limit int) ([]*domain.CheckInEntry, error) {
	entries := []*domain.CheckInEntry{}

	query := `
		SELECT * FROM check_in_entries
		WHERE user_id = $1
		  AND date < $2
		ORDER BY date DESC
		LIMIT $3`

	err := r.db.SelectContext(ctx, &entries, query, userID, before, limit)
	if err != nil {
		return nil, err
	}
	return entries, nil
}
