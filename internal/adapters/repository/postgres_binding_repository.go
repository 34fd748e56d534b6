package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresBindingRepository struct {
	db *sqlx.DB
}

func NewPostgresBindingRepository(db *sqlx.DB) *PostgresBindingRepository {
	return &PostgresBindingRepository{db: db}
}

func (r *PostgresBindingRepository) Create(ctx context.Context, binding *domain.CoupleBinding) error {
	query := `
		INSERT INTO couple_bindings (
			id, code, initiator_id, partner_id, status,
			created_at, activated_at, deactivated_at
		) VALUES (
			:id, :code, :initiator_id, :partner_id, :status,
			:created_at, :activated_at, :deactivated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, binding)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			// Partial unique index on pending codes.
			return domain.ErrInvalidBindCode
		}
		return err
	}
	return nil
}

func (r *PostgresBindingRepository) Update(ctx context.Context, binding *domain.CoupleBinding) error {
	query := `
		UPDATE couple_bindings
		SET partner_id = :partner_id,
		    status = :status,
		    activated_at = :activated_at,
		    deactivated_at = :deactivated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, binding)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrBindingNotFound
	}

	return nil
}

func (r *PostgresBindingRepository) GetByID(ctx context.Context, id string) (*domain.CoupleBinding, error) {
	var binding domain.CoupleBinding
	query := `SELECT * FROM couple_bindings WHERE id = $1`

	err := r.db.GetContext(ctx, &binding, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBindingNotFound
		}
		return nil, err
	}
	return &binding, nil
}

func (r *PostgresBindingRepository) FindPendingByCode(ctx context.Context, code string) (*domain.CoupleBinding, error) {
	var binding domain.CoupleBinding
	query := `SELECT * FROM couple_bindings WHERE code = $1 AND status = 'pending'`

	err := r.db.GetContext(ctx, &binding, query, code)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBindingNotFound
		}
		return nil, err
	}
	return &binding, nil
}

func (r *PostgresBindingRepository) FindActiveByUserID(ctx context.Context, userID string) (*domain.CoupleBinding, error) {
	var binding domain.CoupleBinding

	query := `
		SELECT * FROM couple_bindings
		WHERE status = 'active'
		  AND (initiator_id = $1 OR partner_id = $1)
		LIMIT 1`

	err := r.db.GetContext(ctx, &binding, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrBindingNotFound
		}
		return nil, err
	}
	return &binding, nil
}
