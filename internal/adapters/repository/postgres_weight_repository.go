package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresWeightRepository struct {
	db *sqlx.DB
}

func NewPostgresWeightRepository(db *sqlx.DB) *PostgresWeightRepository {
	return &PostgresWeightRepository{db: db}
}

func (r *PostgresWeightRepository) Create(ctx context.Context, entry *domain.WeightEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}

	query := `
		INSERT INTO weight_entries (
			id, user_id, date, weight, note, created_at
		) VALUES (
			:id, :user_id, :date, :weight, :note, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, entry)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresWeightRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeightEntry, error) {
	entries := []*domain.WeightEntry{}

	query := `
		SELECT * FROM weight_entries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC`

	err := r.db.SelectContext(ctx, &entries, query, userID)
	if err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *PostgresWeightRepository) LatestByUserID(ctx context.Context, userID string) (*domain.WeightEntry, error) {
	var entry domain.WeightEntry

	query := `
		SELECT * FROM weight_entries
		WHERE user_id = $1
		ORDER BY date DESC, created_at DESC
		LIMIT 1`

	err := r.db.GetContext(ctx, &entry, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrWeightEntryNotFound
		}
		return nil, err
	}
	return &entry, nil
}

func (r *PostgresWeightRepository) Delete(ctx context.Context, id string, userID string) error {
	query := `DELETE FROM weight_entries WHERE id = $1 AND user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrWeightEntryNotFound
	}

	return nil
}
