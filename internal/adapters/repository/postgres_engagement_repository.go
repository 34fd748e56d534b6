package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresCheerCardRepository struct {
	db *sqlx.DB
}

func NewPostgresCheerCardRepository(db *sqlx.DB) *PostgresCheerCardRepository {
	return &PostgresCheerCardRepository{db: db}
}

func (r *PostgresCheerCardRepository) Create(ctx context.Context, card *domain.CheerCard) error {
	if card.ID == "" {
		card.ID = uuid.NewString()
	}

	query := `
		INSERT INTO cheer_cards (
			id, from_user_id, to_user_id, type,
			content, sticker, is_read, created_at
		) VALUES (
			:id, :from_user_id, :to_user_id, :type,
			:content, :sticker, :is_read, :created_at
		)`

	_, err := r.db.NamedExecContext(ctx, query, card)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrProfileNotFound
		}
		return err
	}
	return nil
}

func (r *PostgresCheerCardRepository) ListByUserID(ctx context.Context, userID string, direction domain.CheerDirection) ([]*domain.CheerCard, error) {
	cards := []*domain.CheerCard{}

	var where string
	switch direction {
	case domain.CheerSent:
		where = `from_user_id = $1`
	case domain.CheerReceived:
		where = `to_user_id = $1`
	default:
		where = `(from_user_id = $1 OR to_user_id = $1)`
	}

	query := `
		SELECT * FROM cheer_cards
		WHERE ` + where + `
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &cards, query, userID)
	if err != nil {
		return nil, err
	}
	return cards, nil
}

func (r *PostgresCheerCardRepository) MarkRead(ctx context.Context, id string, userID string) error {
	query := `
		UPDATE cheer_cards
		SET is_read = TRUE
		WHERE id = $1
		  AND to_user_id = $2`

	result, err := r.db.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		exists, err := r.exists(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return domain.ErrCheerCardNotFound
		}
		return domain.ErrUnauthorized
	}

	return nil
}

func (r *PostgresCheerCardRepository) exists(ctx context.Context, id string) (bool, error) {
	var count int
	err := r.db.GetContext(ctx, &count, "SELECT count(*) FROM cheer_cards WHERE id = $1", id)
	return count > 0, err
}

type PostgresMilestoneRepository struct {
	db *sqlx.DB
}

func NewPostgresMilestoneRepository(db *sqlx.DB) *PostgresMilestoneRepository {
	return &PostgresMilestoneRepository{db: db}
}

// CreateIfAbsent leans on the (user_id, type) unique constraint: the
// conflict clause turns a duplicate into a no-op and RowsAffected tells us
// which case we hit.
func (r *PostgresMilestoneRepository) CreateIfAbsent(ctx context.Context, milestone *domain.Milestone) (bool, error) {
	if milestone.ID == "" {
		milestone.ID = uuid.NewString()
	}

	query := `
		INSERT INTO milestones (
			id, user_id, type, achieved_at, is_shared
		) VALUES (
			:id, :user_id, :type, :achieved_at, :is_shared
		)
		ON CONFLICT (user_id, type) DO NOTHING`

	result, err := r.db.NamedExecContext(ctx, query, milestone)
	if err != nil {
		return false, err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows > 0, nil
}

func (r *PostgresMilestoneRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.Milestone, error) {
	milestones := []*domain.Milestone{}

	query := `
		SELECT * FROM milestones
		WHERE user_id = $1
		ORDER BY achieved_at ASC`

	err := r.db.SelectContext(ctx, &milestones, query, userID)
	if err != nil {
		return nil, err
	}
	return milestones, nil
}

func (r *PostgresMilestoneRepository) ExistsByUserAndType(ctx context.Context, userID string, milestoneType domain.MilestoneType) (bool, error) {
	var count int
	query := `SELECT count(*) FROM milestones WHERE user_id = $1 AND type = $2`

	err := r.db.GetContext(ctx, &count, query, userID, milestoneType)
	return count > 0, err
}

type PostgresRecapRepository struct {
	db *sqlx.DB
}

func NewPostgresRecapRepository(db *sqlx.DB) *PostgresRecapRepository {
	return &PostgresRecapRepository{db: db}
}

// recapRow maps the progress bullets onto a text[] column.
type recapRow struct {
	ID                string         `db:"id"`
	UserID            string         `db:"user_id"`
	WeekStart         domain.Date    `db:"week_start"`
	WeekEnd           domain.Date    `db:"week_end"`
	Highlight         string         `db:"highlight"`
	Progress          pq.StringArray `db:"progress"`
	NextWeekMicroGoal string         `db:"next_week_micro_goal"`
	CoupleMoment      string         `db:"couple_moment"`
	CreatedAt         time.Time      `db:"created_at"`
}

func (row *recapRow) toDomain() *domain.WeeklyRecap {
	return &domain.WeeklyRecap{
		ID:                row.ID,
		UserID:            row.UserID,
		WeekStart:         row.WeekStart,
		WeekEnd:           row.WeekEnd,
		Highlight:         row.Highlight,
		Progress:          []string(row.Progress),
		NextWeekMicroGoal: row.NextWeekMicroGoal,
		CoupleMoment:      row.CoupleMoment,
		CreatedAt:         row.CreatedAt,
	}
}

func (r *PostgresRecapRepository) Upsert(ctx context.Context, recap *domain.WeeklyRecap) error {
	if recap.ID == "" {
		recap.ID = uuid.NewString()
	}
	if recap.CreatedAt.IsZero() {
		recap.CreatedAt = time.Now().UTC()
	}

	row := &recapRow{
		ID:                recap.ID,
		UserID:            recap.UserID,
		WeekStart:         recap.WeekStart,
		WeekEnd:           recap.WeekEnd,
		Highlight:         recap.Highlight,
		Progress:          pq.StringArray(recap.Progress),
		NextWeekMicroGoal: recap.NextWeekMicroGoal,
		CoupleMoment:      recap.CoupleMoment,
		CreatedAt:         recap.CreatedAt,
	}

	query := `
		INSERT INTO weekly_recaps (
			id, user_id, week_start, week_end,
			highlight, progress, next_week_micro_goal, couple_moment,
			created_at
		) VALUES (
			:id, :user_id, :week_start, :week_end,
			:highlight, :progress, :next_week_micro_goal, :couple_moment,
			:created_at
		)
		ON CONFLICT (user_id, week_start) DO UPDATE
		SET week_end = EXCLUDED.week_end,
		    highlight = EXCLUDED.highlight,
		    progress = EXCLUDED.progress,
		    next_week_micro_goal = EXCLUDED.next_week_micro_goal,
		    couple_moment = EXCLUDED.couple_moment,
		    created_at = EXCLUDED.created_at`

	_, err := r.db.NamedExecContext(ctx, query, row)
	return err
}

func (r *PostgresRecapRepository) GetByUserAndWeek(ctx context.Context, userID string, weekStart domain.Date) (*domain.WeeklyRecap, error) {
	var row recapRow
	query := `SELECT * FROM weekly_recaps WHERE user_id = $1 AND week_start = $2`

	err := r.db.GetContext(ctx, &row, query, userID, weekStart)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRecapNotFound
		}
		return nil, err
	}
	return row.toDomain(), nil
}

func (r *PostgresRecapRepository) ListByUserID(ctx context.Context, userID string) ([]*domain.WeeklyRecap, error) {
	rows := []*recapRow{}

	query := `
		SELECT * FROM weekly_recaps
		WHERE user_id = $1
		ORDER BY week_start DESC`

	err := r.db.SelectContext(ctx, &rows, query, userID)
	if err != nil {
		return nil, err
	}

	recaps := make([]*domain.WeeklyRecap, 0, len(rows))
	for _, row := range rows {
		recaps = append(recaps, row.toDomain())
	}
	return recaps, nil
}
