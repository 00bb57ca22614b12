package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/domain"
)

const (
	queueTable = "rotation_queue q"

	queueColumns = "q.id, q.restaurant_id, q.position, q.status, q.added_by, " +
		"q.notes, q.scheduled_for, q.added_at, q.updated_at"
)

type QueueRepository interface {
	ListPending() ([]*domain.QueueEntry, error)
	GetByID(entryID string) (*domain.QueueEntry, error)
	GetPendingByRestaurantID(restaurantID string) (*domain.QueueEntry, error)
	Head() (*domain.QueueEntry, error)
	CountPending() (int, error)
	ListPendingTx(tx *sql.Tx) ([]*domain.QueueEntry, error)
	InsertTx(tx *sql.Tx, entry *domain.QueueEntry) error
	DeleteTx(tx *sql.Tx, entryID string) error
	CompleteTx(tx *sql.Tx, entryID string) error
	SetPositionTx(tx *sql.Tx, entryID string, position int) error
}

type queueRepository struct {
	conn *postgres.Connection
}

func NewQueueRepository(conn *postgres.Connection) QueueRepository {
	return &queueRepository{
		conn: conn,
	}
}

func (r *queueRepository) ListPending() ([]*domain.QueueEntry, error) {
	return r.listPending(r.conn)
}

func (r *queueRepository) ListPendingTx(tx *sql.Tx) ([]*domain.QueueEntry, error) {
	return r.listPending(tx)
}

func (r *queueRepository) listPending(q postgres.Queryer) ([]*domain.QueueEntry, error) {
	query, args, err := squirrel.
		Select(queueColumns).
		From(queueTable).
		Where(squirrel.Eq{"q.status": domain.QueueEntryStatusPending}).
		OrderBy("q.position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building pending query: %w", err)
	}

	rows, err := q.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing pending entries: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.QueueEntry, 0)
	for rows.Next() {
		entry, err := scanQueueEntryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning queue entry: %w", err)
		}
		entries = append(entries, entry)
	}

	return entries, rows.Err()
}

func (r *queueRepository) GetByID(entryID string) (*domain.QueueEntry, error) {
	return r.getOne(squirrel.Eq{"q.id": entryID})
}

func (r *queueRepository) GetPendingByRestaurantID(restaurantID string) (*domain.QueueEntry, error) {
	return r.getOne(squirrel.Eq{
		"q.restaurant_id": restaurantID,
		"q.status":        domain.QueueEntryStatusPending,
	})
}

func (r *queueRepository) Head() (*domain.QueueEntry, error) {
	return r.getOne(squirrel.Eq{
		"q.status":   domain.QueueEntryStatusPending,
		"q.position": 1,
	})
}

func (r *queueRepository) getOne(whereClause map[string]interface{}) (*domain.QueueEntry, error) {
	query, args, err := squirrel.
		Select(queueColumns).
		From(queueTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building queue entry query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	entry, err := scanQueueEntry(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning queue entry: %w", err)
	}

	return entry, nil
}

func (r *queueRepository) CountPending() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(queueTable).
		Where(squirrel.Eq{"q.status": domain.QueueEntryStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("building count query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("counting pending entries: %w", err)
	}

	return count, nil
}

func (r *queueRepository) InsertTx(tx *sql.Tx, entry *domain.QueueEntry) error {
	query, args, err := squirrel.
		Insert("rotation_queue").
		Columns("id", "restaurant_id", "position", "status", "added_by", "notes", "scheduled_for").
		Values(
			entry.ID,
			entry.RestaurantID,
			entry.Position,
			entry.Status,
			entry.AddedBy,
			entry.Notes,
			entry.ScheduledFor,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building queue insert: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting queue entry: %w", err)
	}

	return nil
}

func (r *queueRepository) DeleteTx(tx *sql.Tx, entryID string) error {
	query, args, err := squirrel.
		Delete("rotation_queue").
		Where(squirrel.Eq{"id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building queue delete: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("deleting queue entry: %w", err)
	}

	return nil
}

// CompleteTx retires the promoted entry. The row is kept for audit; only
// PENDING rows participate in the position invariant.
func (r *queueRepository) CompleteTx(tx *sql.Tx, entryID string) error {
	query, args, err := squirrel.
		Update("rotation_queue").
		Set("status", domain.QueueEntryStatusCompleted).
		Set("position", 0).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building queue complete update: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("completing queue entry: %w", err)
	}

	return nil
}

func (r *queueRepository) SetPositionTx(tx *sql.Tx, entryID string, position int) error {
	query, args, err := squirrel.
		Update("rotation_queue").
		Set("position", position).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": entryID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building position update: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("updating position: %w", err)
	}

	return nil
}

func scanQueueEntry(row *sql.Row) (*domain.QueueEntry, error) {
	entry := &domain.QueueEntry{}

	err := row.Scan(
		&entry.ID,
		&entry.RestaurantID,
		&entry.Position,
		&entry.Status,
		&entry.AddedBy,
		&entry.Notes,
		&entry.ScheduledFor,
		&entry.AddedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}

func scanQueueEntryRows(rows *sql.Rows) (*domain.QueueEntry, error) {
	entry := &domain.QueueEntry{}

	err := rows.Scan(
		&entry.ID,
		&entry.RestaurantID,
		&entry.Position,
		&entry.Status,
		&entry.AddedBy,
		&entry.Notes,
		&entry.ScheduledFor,
		&entry.AddedAt,
		&entry.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return entry, nil
}
