package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/domain"
)

const (
	rotationHistoryTable = "rotation_history rh"

	rotationHistoryColumns = "rh.id, rh.restaurant_id, rh.category, rh.started_at, rh.ended_at, " +
		"rh.view_count, rh.click_count, rh.rotation_type, rh.triggered_by, rh.notes, rh.created_at"
)

// RotationHistoryRepository is the append-only ledger of past rotations.
// There is no update path; records are immutable once written.
type RotationHistoryRepository interface {
	InsertTx(tx *sql.Tx, record *domain.RotationHistoryRecord) error
	List(limit, offset uint64) ([]*domain.RotationHistoryRecord, error)
	RecentCategories(cycles uint64) ([]string, error)
}

type rotationHistoryRepository struct {
	conn *postgres.Connection
}

func NewRotationHistoryRepository(conn *postgres.Connection) RotationHistoryRepository {
	return &rotationHistoryRepository{
		conn: conn,
	}
}

func (r *rotationHistoryRepository) InsertTx(tx *sql.Tx, record *domain.RotationHistoryRecord) error {
	query, args, err := squirrel.
		Insert("rotation_history").
		Columns(
			"id",
			"restaurant_id",
			"category",
			"started_at",
			"ended_at",
			"view_count",
			"click_count",
			"rotation_type",
			"triggered_by",
			"notes",
		).
		Values(
			record.ID,
			record.RestaurantID,
			record.Category,
			record.StartedAt,
			record.EndedAt,
			record.ViewCount,
			record.ClickCount,
			record.RotationType,
			record.TriggeredBy,
			record.Notes,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building history insert: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting history record: %w", err)
	}

	return nil
}

func (r *rotationHistoryRepository) List(limit, offset uint64) ([]*domain.RotationHistoryRecord, error) {
	query, args, err := squirrel.
		Select(rotationHistoryColumns).
		From(rotationHistoryTable).
		OrderBy("rh.started_at DESC").
		Limit(limit).
		Offset(offset).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building history query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RotationHistoryRecord, 0)
	for rows.Next() {
		record := &domain.RotationHistoryRecord{}
		err := rows.Scan(
			&record.ID,
			&record.RestaurantID,
			&record.Category,
			&record.StartedAt,
			&record.EndedAt,
			&record.ViewCount,
			&record.ClickCount,
			&record.RotationType,
			&record.TriggeredBy,
			&record.Notes,
			&record.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning history record: %w", err)
		}
		records = append(records, record)
	}

	return records, rows.Err()
}

// RecentCategories returns the primary categories of the last N rotation
// cycles, newest first. Feeds the diversity score.
func (r *rotationHistoryRepository) RecentCategories(cycles uint64) ([]string, error) {
	query, args, err := squirrel.
		Select("rh.category").
		From(rotationHistoryTable).
		OrderBy("rh.started_at DESC").
		Limit(cycles).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building recent categories query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing recent categories: %w", err)
	}
	defer rows.Close()

	categories := make([]string, 0, cycles)
	for rows.Next() {
		var category string
		if err := rows.Scan(&category); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}

	return categories, rows.Err()
}
