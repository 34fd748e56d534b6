package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresGoalRepository(db *sqlx.DB) *PostgresGoalRepository {
	return &PostgresGoalRepository{db: db}
}

func (r *PostgresGoalRepository) Upsert(ctx context.Context, goal *domain.Goal) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	goal.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO goals (
			id, user_id, type, target_value, current_value,
			period_days, start_date, end_date, is_shared,
			created_at, updated_at
		) VALUES (
			:id, :user_id, :type, :target_value, :current_value,
			:period_days, :start_date, :end_date, :is_shared,
			:created_at, :updated_at
		)
		ON CONFLICT (user_id, type) DO UPDATE
		SET target_value = EXCLUDED.target_value,
		    current_value = EXCLUDED.current_value,
		    period_days = EXCLUDED.period_days,
		    start_date = EXCLUDED.start_date,
		    end_date = EXCLUDED.end_date,
		    is_shared = EXCLUDED.is_shared,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, goal)
	return err
}

func (r *PostgresGoalRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Goal, error) {
	goals := []*domain.Goal{}

	query := `
		SELECT * FROM goals
		WHERE user_id = $1
		ORDER BY type ASC`

	err := r.db.SelectContext(ctx, &goals, query, userID)
	if err != nil {
		return nil, err
	}
	return goals, nil
}

func (r *PostgresGoalRepository) GetByUserAndType(ctx context.Context, userID string, goalType domain.GoalType) (*domain.Goal, error) {
	var goal domain.Goal
	query := `SELECT * FROM goals WHERE user_id = $1 AND type = $2`

	err := r.db.GetContext(ctx, &goal, query, userID, goalType)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrGoalNotFound
		}
		return nil, err
	}
	return &goal, nil
}

const coupleGoalColumns = `
	id, couple_id, type, target_value, current_value,
	progress, created_at, updated_at`

type PostgresCoupleGoalRepository struct {
	db *sqlx.DB
}

func NewPostgresCoupleGoalRepository(db *sqlx.DB) *PostgresCoupleGoalRepository {
	return &PostgresCoupleGoalRepository{db: db}
}

func (r *PostgresCoupleGoalRepository) Upsert(ctx context.Context, goal *domain.CoupleGoal) error {
	if goal.ID == "" {
		goal.ID = uuid.NewString()
	}
	goal.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO couple_goals (
			id, couple_id, type, target_value, current_value,
			progress, created_at, updated_at
		) VALUES (
			:id, :couple_id, :type, :target_value, :current_value,
			:progress, :created_at, :updated_at
		)
		ON CONFLICT (couple_id, type) DO UPDATE
		SET target_value = EXCLUDED.target_value,
		    current_value = EXCLUDED.current_value,
		    progress = EXCLUDED.progress,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, goal)
	return err
}

func (r *PostgresCoupleGoalRepository) ListByCoupleID(ctx context.Context, coupleID string) ([]*domain.CoupleGoal, error) {
	goals := []*domain.CoupleGoal{}

	query := `
		SELECT ` + coupleGoalColumns + `
		FROM couple_goals
		WHERE couple_id = $1
		ORDER BY type ASC`

	err := r.db.SelectContext(ctx, &goals, query, coupleID)
	if err != nil {
		return nil, err
	}

	// Milestone thresholds are fixed product constants, not columns.
	for _, g := range goals {
		g.Milestones = append([]int(nil), domain.CoupleGoalThresholds...)
	}
	return goals, nil
}
