package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/domain"
)

const rotationConfigTable = "rotation_config rc"

// RotationConfigRepository manages the singleton schedule row (id = 1).
type RotationConfigRepository interface {
	Get() (*domain.RotationConfig, error)
	Save(config *domain.RotationConfig) error
	SetNextRotationAt(at time.Time) error
}

type rotationConfigRepository struct {
	conn *postgres.Connection
}

func NewRotationConfigRepository(conn *postgres.Connection) RotationConfigRepository {
	return &rotationConfigRepository{
		conn: conn,
	}
}

func (r *rotationConfigRepository) Get() (*domain.RotationConfig, error) {
	query, args, err := squirrel.
		Select("rc.id, rc.day_of_week, rc.time_of_day, rc.timezone, rc.is_active, rc.min_queue_size, rc.next_rotation_at, rc.updated_at").
		From(rotationConfigTable).
		Where(squirrel.Eq{"rc.id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building config query: %w", err)
	}

	config := &domain.RotationConfig{}
	err = r.conn.QueryRow(query, args...).Scan(
		&config.ID,
		&config.DayOfWeek,
		&config.TimeOfDay,
		&config.Timezone,
		&config.IsActive,
		&config.MinQueueSize,
		&config.NextRotationAt,
		&config.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning rotation config: %w", err)
	}

	return config, nil
}

func (r *rotationConfigRepository) Save(config *domain.RotationConfig) error {
	query, args, err := squirrel.
		Update("rotation_config").
		Set("day_of_week", config.DayOfWeek).
		Set("time_of_day", config.TimeOfDay).
		Set("timezone", config.Timezone).
		Set("is_active", config.IsActive).
		Set("min_queue_size", config.MinQueueSize).
		Set("next_rotation_at", config.NextRotationAt).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building config update: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("saving rotation config: %w", err)
	}

	return nil
}

func (r *rotationConfigRepository) SetNextRotationAt(at time.Time) error {
	query, args, err := squirrel.
		Update("rotation_config").
		Set("next_rotation_at", at).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": 1}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building next rotation update: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("saving next rotation timestamp: %w", err)
	}

	return nil
}
