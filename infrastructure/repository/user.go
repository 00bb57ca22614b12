package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/domain"
)

const (
	usersTable  = "users u"
	userColumns = "u.id, u.name, u.email, u.password_hash, u.role, u.active, u.created_at, u.updated_at"
)

type UserRepository interface {
	GetByID(id string) (*domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	Create(user *domain.User) error
}

type userRepository struct {
	conn *postgres.Connection
}

func NewUserRepository(conn *postgres.Connection) UserRepository {
	return &userRepository{
		conn: conn,
	}
}

func (r *userRepository) GetByID(id string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"u.id": id})
}

func (r *userRepository) GetByEmail(email string) (*domain.User, error) {
	return r.getOne(squirrel.Eq{"u.email": email})
}

func (r *userRepository) getOne(whereClause map[string]interface{}) (*domain.User, error) {
	query, args, err := squirrel.
		Select(userColumns).
		From(usersTable).
		Where(whereClause).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building user query: %w", err)
	}

	user := &domain.User{}
	err = r.conn.QueryRow(query, args...).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.PasswordHash,
		&user.Role,
		&user.Active,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("scanning user: %w", err)
	}

	return user, nil
}

func (r *userRepository) Create(user *domain.User) error {
	query, args, err := squirrel.
		Insert("users").
		Columns("id", "name", "email", "password_hash", "role", "active").
		Values(user.ID, user.Name, user.Email, user.PasswordHash, user.Role, user.Active).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("building user insert: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("inserting user: %w", err)
	}

	return nil
}
