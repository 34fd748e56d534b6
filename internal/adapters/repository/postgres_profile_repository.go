package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresProfileRepository struct {
	db *sqlx.DB
}

func NewPostgresProfileRepository(db *sqlx.DB) *PostgresProfileRepository {
	return &PostgresProfileRepository{db: db}
}

func (r *PostgresProfileRepository) Create(ctx context.Context, profile *domain.UserProfile) error {
	query := `
		INSERT INTO user_profiles (
			id, name, email, phone, password_hash,
			start_weight, target_weight, goal_period_days,
			record_intensity, style_preference,
			created_at, updated_at
		) VALUES (
			:id, :name, :email, :phone, :password_hash,
			:start_weight, :target_weight, :goal_period_days,
			:record_intensity, :style_preference,
			:created_at, :updated_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE id = $1`

	err := r.db.GetContext(ctx, &profile, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error) {
	var profile domain.UserProfile
	query := `SELECT * FROM user_profiles WHERE email = lower($1)`

	err := r.db.GetContext(ctx, &profile, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *PostgresProfileRepository) Update(ctx context.Context, profile *domain.UserProfile) error {
	profile.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE user_profiles
		SET name = :name,
		    phone = :phone,
		    password_hash = :password_hash,
		    start_weight = :start_weight,
		    target_weight = :target_weight,
		    goal_period_days = :goal_period_days,
		    record_intensity = :record_intensity,
		    style_preference = :style_preference,
		    updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, profile)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrProfileNotFound
	}

	return nil
}
