package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gymtrack/gymtrack-api/internal/model"
)

// ReminderRepository handles reminder persistence operations.
type ReminderRepository struct {
	db *sql.DB
}

// NewReminderRepository creates a new ReminderRepository.
func NewReminderRepository(db *sql.DB) *ReminderRepository {
	return &ReminderRepository{db: db}
}

// Create inserts a reminder and sets its generated ID and creation time.
func (r *ReminderRepository) Create(ctx context.Context, rem *model.Reminder) error {
	query := `INSERT INTO reminders (user_id, category, task, interval_value, unit, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`

	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	result, err := r.db.ExecContext(ctx, query,
		rem.UserID, rem.Category, rem.Task, rem.Interval, rem.Unit, rem.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	rem.ID = id
	return nil
}

// ListByUserEmail retrieves the reminders of the user with the given email.
func (r *ReminderRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Reminder, error) {
	query := `SELECT m.id, m.user_id, m.category, m.task, m.interval_value, m.unit, m.created_at
		FROM reminders m JOIN users u ON u.id = m.user_id
		WHERE u.email = ? ORDER BY m.id ASC`

	rows, err := r.db.QueryContext(ctx, query, email)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var reminders []model.Reminder
	for rows.Next() {
		var m model.Reminder
		if err := rows.Scan(&m.ID, &m.UserID, &m.Category, &m.Task, &m.Interval, &m.Unit, &m.CreatedAt); err != nil {
			return nil, err
		}
		reminders = append(reminders, m)
	}

	return reminders, rows.Err()
}

// Delete removes a reminder by ID.
func (r *ReminderRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reminders WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrReminderNotFound
	}

	return nil
}
