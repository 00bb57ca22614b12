// Package repository contains the postgres implementations for data access
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/domain"
)

const (
	restaurantsTable = "restaurants r"

	restaurantColumns = "r.id, r.external_id, r.name, r.categories, r.rating, r.review_count, " +
		"r.address, r.phone, r.is_featured, r.featured_at, r.last_featured_at, " +
		"r.times_featured, r.view_count, r.click_count, r.created_at, r.updated_at"
)

type RestaurantRepository interface {
	GetByID(id string) (*domain.Restaurant, error)
	GetByExternalID(externalID string) (*domain.Restaurant, error)
	GetFeatured() (*domain.Restaurant, error)
	ListExternalIDs() (map[string]struct{}, error)
	Create(restaurant *domain.Restaurant) error
	RecordView(id string) error
	RecordClick(id string) error
	SetFeaturedTx(tx *sql.Tx, id string, featuredAt time.Time) error
	ClearFeaturedTx(tx *sql.Tx, id string, endedAt time.Time) error
}

type restaurantRepository struct {
	conn *postgres.Connection
}

func NewRestaurantRepository(conn *postgres.Connection) RestaurantRepository {
	return &restaurantRepository{
		conn: conn,
	}
}

func (r *restaurantRepository) GetByID(id string) (*domain.Restaurant, error) {
	return r.getOne(squirrel.Eq{"r.id": id})
}

func (r *restaurantRepository) GetByExternalID(externalID string) (*domain.Restaurant, error) {
	return r.getOne(squirrel.Eq{"r.external_id": externalID})
}

func (r *restaurantRepository) GetFeatured() (*domain.Restaurant, error) {
	return r.getOne(squirrel.Eq{"r.is_featured": true})
}

func (r *restaurantRepository) getOne(whereClause map[string]interface{}) (*domain.Restaurant, error) {
	query, args, err := squirrel.
		Select(restaurantColumns).
		From(restaurantsTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building restaurant query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)

	restaurant, err := scanRestaurant(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning restaurant: %w", err)
	}

	return restaurant, nil
}

func (r *restaurantRepository) ListExternalIDs() (map[string]struct{}, error) {
	query, args, err := squirrel.
		Select("r.external_id").
		From(restaurantsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building external id query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing external ids: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids[id] = struct{}{}
	}

	return ids, rows.Err()
}

func (r *restaurantRepository) Create(restaurant *domain.Restaurant) error {
	query, args, err := squirrel.
		Insert("restaurants").
		Columns(
			"id",
			"external_id",
			"name",
			"categories",
			"rating",
			"review_count",
			"address",
			"phone",
		).
		Values(
			restaurant.ID,
			restaurant.ExternalID,
			restaurant.Name,
			pq.Array(restaurant.Categories),
			restaurant.Rating,
			restaurant.ReviewCount,
			restaurant.Address,
			restaurant.Phone,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building restaurant insert: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting restaurant: %w", err)
	}

	return nil
}

func (r *restaurantRepository) RecordView(id string) error {
	return r.bumpCounter(id, "view_count")
}

func (r *restaurantRepository) RecordClick(id string) error {
	return r.bumpCounter(id, "click_count")
}

func (r *restaurantRepository) bumpCounter(id string, column string) error {
	query, args, err := squirrel.
		Update("restaurants").
		Set(column, squirrel.Expr(column+" + 1")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building counter update: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("updating %s: %w", column, err)
	}

	return nil
}

// SetFeaturedTx flips the restaurant to featured and resets the engagement
// counters for the new period. Must run inside the rotation transaction.
func (r *restaurantRepository) SetFeaturedTx(tx *sql.Tx, id string, featuredAt time.Time) error {
	query, args, err := squirrel.
		Update("restaurants").
		Set("is_featured", true).
		Set("featured_at", featuredAt).
		Set("view_count", 0).
		Set("click_count", 0).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building feature update: %w", err)
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("setting featured: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ClearFeaturedTx retires the current featured restaurant, stamping
// last_featured_at and bumping times_featured.
func (r *restaurantRepository) ClearFeaturedTx(tx *sql.Tx, id string, endedAt time.Time) error {
	query, args, err := squirrel.
		Update("restaurants").
		Set("is_featured", false).
		Set("last_featured_at", endedAt).
		Set("times_featured", squirrel.Expr("times_featured + 1")).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building unfeature update: %w", err)
	}

	if _, err := tx.Exec(query, args...); err != nil {
		return fmt.Errorf("clearing featured: %w", err)
	}

	return nil
}

func scanRestaurant(row *sql.Row) (*domain.Restaurant, error) {
	restaurant := &domain.Restaurant{}

	err := row.Scan(
		&restaurant.ID,
		&restaurant.ExternalID,
		&restaurant.Name,
		pq.Array(&restaurant.Categories),
		&restaurant.Rating,
		&restaurant.ReviewCount,
		&restaurant.Address,
		&restaurant.Phone,
		&restaurant.IsFeatured,
		&restaurant.FeaturedAt,
		&restaurant.LastFeaturedAt,
		&restaurant.TimesFeatured,
		&restaurant.ViewCount,
		&restaurant.ClickCount,
		&restaurant.CreatedAt,
		&restaurant.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return restaurant, nil
}
