package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-sql-driver/mysql"
)

// NewDB creates a new MySQL database connection pool with the given DSN.
// parseTime is forced on so DATE and DATETIME columns scan into time.Time.
func NewDB(dsn string) (*sql.DB, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	cfg.ParseTime = true

	db, err := sql.Open("mysql", cfg.FormatDSN())
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		slog.Warn("database ping failed", "error", err)
	}

	return db, nil
}

// schema creates the tables when missing. The MySQL driver rejects
// multi-statement queries by default, so each statement runs on its own.
var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id             BIGINT AUTO_INCREMENT PRIMARY KEY,
		first_name     VARCHAR(255) NOT NULL,
		last_name      VARCHAR(255) NOT NULL,
		email          VARCHAR(255) NOT NULL,
		phone          VARCHAR(64)  NOT NULL,
		address        VARCHAR(255) NULL,
		city           VARCHAR(255) NULL,
		state          VARCHAR(255) NULL,
		zip            VARCHAR(32)  NULL,
		birthdate      DATE         NOT NULL,
		gender         VARCHAR(32)  NOT NULL,
		password_hash  VARCHAR(255) NOT NULL,
		plan           VARCHAR(32)  NOT NULL,
		plan_type      VARCHAR(64)  NULL,
		payment_method VARCHAR(64)  NULL,
		api_key        VARCHAR(64)  NULL,
		registered_at  DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		UNIQUE KEY uq_users_email (email),
		UNIQUE KEY uq_users_api_key (api_key)
	)`,
	`CREATE TABLE IF NOT EXISTS workouts (
		id         BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id    BIGINT       NOT NULL,
		type       VARCHAR(64)  NOT NULL,
		name       VARCHAR(255) NOT NULL,
		sets       INT          NOT NULL,
		reps       INT          NOT NULL,
		duration   INT          NOT NULL,
		calories   INT          NOT NULL,
		created_at DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_workouts_user_created (user_id, created_at),
		CONSTRAINT fk_workouts_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	)`,
	`CREATE TABLE IF NOT EXISTS reminders (
		id             BIGINT AUTO_INCREMENT PRIMARY KEY,
		user_id        BIGINT       NOT NULL,
		category       VARCHAR(64)  NOT NULL,
		task           VARCHAR(255) NOT NULL,
		interval_value INT          NOT NULL,
		unit           VARCHAR(16)  NOT NULL,
		created_at     DATETIME     NOT NULL DEFAULT CURRENT_TIMESTAMP,
		KEY idx_reminders_user (user_id),
		CONSTRAINT fk_reminders_user FOREIGN KEY (user_id) REFERENCES users (id) ON DELETE CASCADE
	)`,
}

// EnsureSchema creates the users, workouts and reminders tables if they do not exist.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
