package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/njuphywg-cyber/weight-loss-app/internal/core/domain"
)

type PostgresPrivacySettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresPrivacySettingsRepository(db *sqlx.DB) *PostgresPrivacySettingsRepository {
	return &PostgresPrivacySettingsRepository{db: db}
}

func (r *PostgresPrivacySettingsRepository) Get(ctx context.Context, userID string) (*domain.PrivacySettings, error) {
	var settings domain.PrivacySettings
	query := `SELECT * FROM privacy_settings WHERE user_id = $1`

	err := r.db.GetContext(ctx, &settings, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}
	return &settings, nil
}

func (r *PostgresPrivacySettingsRepository) Upsert(ctx context.Context, settings *domain.PrivacySettings) error {
	settings.UpdatedAt = time.Now().UTC()

	query := `
		INSERT INTO privacy_settings (
			user_id, share_weight, share_measurements,
			share_photo, share_mood, share_note, updated_at
		) VALUES (
			:user_id, :share_weight, :share_measurements,
			:share_photo, :share_mood, :share_note, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET share_weight = EXCLUDED.share_weight,
		    share_measurements = EXCLUDED.share_measurements,
		    share_photo = EXCLUDED.share_photo,
		    share_mood = EXCLUDED.share_mood,
		    share_note = EXCLUDED.share_note,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, settings)
	return err
}

type PostgresReminderSettingsRepository struct {
	db *sqlx.DB
}

func NewPostgresReminderSettingsRepository(db *sqlx.DB) *PostgresReminderSettingsRepository {
	return &PostgresReminderSettingsRepository{db: db}
}

type reminderRow struct {
	UserID                     string         `db:"user_id"`
	CheckInReminderEnabled     bool           `db:"check_in_reminder_enabled"`
	CheckInReminderTimes       pq.StringArray `db:"check_in_reminder_times"`
	PartnerCheckInNotification bool           `db:"partner_check_in_notification"`
	WeeklyRecapEnabled         bool           `db:"weekly_recap_enabled"`
	UpdatedAt                  time.Time      `db:"updated_at"`
}

func (r *PostgresReminderSettingsRepository) Get(ctx context.Context, userID string) (*domain.ReminderSettings, error) {
	var row reminderRow
	query := `SELECT * FROM reminder_settings WHERE user_id = $1`

	err := r.db.GetContext(ctx, &row, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSettingsNotFound
		}
		return nil, err
	}

	return &domain.ReminderSettings{
		UserID:                     row.UserID,
		CheckInReminderEnabled:     row.CheckInReminderEnabled,
		CheckInReminderTimes:       []string(row.CheckInReminderTimes),
		PartnerCheckInNotification: row.PartnerCheckInNotification,
		WeeklyRecapEnabled:         row.WeeklyRecapEnabled,
		UpdatedAt:                  row.UpdatedAt,
	}, nil
}

func (r *PostgresReminderSettingsRepository) Upsert(ctx context.Context, settings *domain.ReminderSettings) error {
	settings.UpdatedAt = time.Now().UTC()

	row := &reminderRow{
		UserID:                     settings.UserID,
		CheckInReminderEnabled:     settings.CheckInReminderEnabled,
		CheckInReminderTimes:       pq.StringArray(settings.CheckInReminderTimes),
		PartnerCheckInNotification: settings.PartnerCheckInNotification,
		WeeklyRecapEnabled:         settings.WeeklyRecapEnabled,
		UpdatedAt:                  settings.UpdatedAt,
	}

	query := `
		INSERT INTO reminder_settings (
			user_id, check_in_reminder_enabled, check_in_reminder_times,
			partner_check_in_notification, weekly_recap_enabled, updated_at
		) VALUES (
			:user_id, :check_in_reminder_enabled, :check_in_reminder_times,
			:partner_check_in_notification, :weekly_recap_enabled, :updated_at
		)
		ON CONFLICT (user_id) DO UPDATE
		SET check_in_reminder_enabled = EXCLUDED.check_in_reminder_enabled,
		    check_in_reminder_times = EXCLUDED.check_in_reminder_times,
		    partner_check_in_notification = EXCLUDED.partner_check_in_notification,
		    weekly_recap_enabled = EXCLUDED.weekly_recap_enabled,
		    updated_at = EXCLUDED.updated_at`

	_, err := r.db.NamedExecContext(ctx, query, row)
	return err
}
