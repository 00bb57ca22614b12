// Command migration creates the database schema and seeds the singleton
// rotation config plus an initial admin user.
package main

import (
	"context"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/tablerota/rotation-api/infrastructure/database/postgres"
	"github.com/tablerota/rotation-api/internal/config"
	"github.com/tablerota/rotation-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

var statements = []string{
	`CREATE TABLE IF NOT EXISTS restaurants (
		id VARCHAR(12) PRIMARY KEY,
		external_id VARCHAR(64) NOT NULL UNIQUE,
		name VARCHAR(255) NOT NULL,
		categories TEXT[] NOT NULL DEFAULT '{}',
		address TEXT,
		phone VARCHAR(32),
		rating NUMERIC(3,2) NOT NULL DEFAULT 0,
		review_count INTEGER NOT NULL DEFAULT 0,
		is_featured BOOLEAN NOT NULL DEFAULT FALSE,
		featured_at TIMESTAMPTZ,
		last_featured_at TIMESTAMPTZ,
		times_featured INTEGER NOT NULL DEFAULT 0,
		view_count INTEGER NOT NULL DEFAULT 0,
		click_count INTEGER NOT NULL DEFAULT 0,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// Partial unique index: at most one featured restaurant at a time.
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_restaurants_featured
		ON restaurants (is_featured) WHERE is_featured`,

	`CREATE TABLE IF NOT EXISTS rotation_queue (
		id VARCHAR(12) PRIMARY KEY,
		restaurant_id VARCHAR(12) NOT NULL REFERENCES restaurants(id),
		position INTEGER NOT NULL DEFAULT 0,
		status VARCHAR(16) NOT NULL DEFAULT 'PENDING',
		added_by VARCHAR(255) NOT NULL DEFAULT '',
		notes TEXT,
		scheduled_for TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	// Positions among PENDING entries should be {1..N}, but the repair
	// path must be able to run over broken state, so the index is not
	// unique. The application enforces the invariant.
	`CREATE INDEX IF NOT EXISTS idx_rotation_queue_pending_position
		ON rotation_queue (position) WHERE status = 'PENDING'`,

	`CREATE INDEX IF NOT EXISTS idx_rotation_queue_restaurant
		ON rotation_queue (restaurant_id)`,

	`CREATE TABLE IF NOT EXISTS rotation_config (
		id INTEGER PRIMARY KEY,
		day_of_week INTEGER NOT NULL DEFAULT 1,
		time_of_day VARCHAR(5) NOT NULL DEFAULT '09:00',
		timezone VARCHAR(64) NOT NULL DEFAULT 'America/Chicago',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		min_queue_size INTEGER NOT NULL DEFAULT 3,
		next_rotation_at TIMESTAMPTZ,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE TABLE IF NOT EXISTS rotation_history (
		id VARCHAR(36) PRIMARY KEY,
		restaurant_id VARCHAR(12) NOT NULL REFERENCES restaurants(id),
		category VARCHAR(64) NOT NULL DEFAULT '',
		started_at TIMESTAMPTZ NOT NULL,
		ended_at TIMESTAMPTZ NOT NULL,
		view_count INTEGER NOT NULL DEFAULT 0,
		click_count INTEGER NOT NULL DEFAULT 0,
		rotation_type VARCHAR(16) NOT NULL,
		triggered_by VARCHAR(255),
		notes TEXT,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`CREATE INDEX IF NOT EXISTS idx_rotation_history_ended_at
		ON rotation_history (ended_at DESC)`,

	`CREATE TABLE IF NOT EXISTS users (
		id VARCHAR(12) PRIMARY KEY,
		name VARCHAR(255) NOT NULL DEFAULT '',
		email VARCHAR(255) NOT NULL UNIQUE,
		password_hash VARCHAR(255) NOT NULL,
		role VARCHAR(16) NOT NULL DEFAULT 'editor',
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,

	`INSERT INTO rotation_config (id, day_of_week, time_of_day, timezone, is_active, min_queue_size)
		VALUES (1, 1, '09:00', 'America/Chicago', TRUE, 3)
		ON CONFLICT (id) DO NOTHING`,
}

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	ctx := context.Background()

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Error connecting to PostgreSQL")
	}
	defer conn.Close()

	for i, statement := range statements {
		if _, err := conn.Exec(statement); err != nil {
			logrus.WithError(err).Fatalf("Migration statement %d failed", i+1)
		}
	}

	logrus.Info("Schema migration applied")

	if err := seedAdminUser(conn); err != nil {
		logrus.WithError(err).Fatal("Error seeding admin user")
	}
}

// seedAdminUser creates the first admin account when ADMIN_EMAIL and
// ADMIN_PASSWORD are set and no user with that email exists yet.
func seedAdminUser(conn *postgres.Connection) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		logrus.Info("ADMIN_EMAIL or ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var exists bool
	row := conn.QueryRow("SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)", email)
	if err := row.Scan(&exists); err != nil {
		return err
	}
	if exists {
		logrus.WithField("email", email).Info("Admin user already exists, skipping seed")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	id, err := utils.GenerateID()
	if err != nil {
		return err
	}

	_, err = conn.Exec(
		"INSERT INTO users (id, name, email, password_hash, role) VALUES ($1, $2, $3, $4, 'admin')",
		id, "Administrator", email, string(hash),
	)
	if err != nil {
		return err
	}

	logrus.WithField("email", email).Info("Admin user created")
	return nil
}
