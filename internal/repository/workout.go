package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/gymtrack/gymtrack-api/internal/model"
)

// WorkoutRepository handles workout persistence operations.
type WorkoutRepository struct {
	db *sql.DB
}

// NewWorkoutRepository creates a new WorkoutRepository.
func NewWorkoutRepository(db *sql.DB) *WorkoutRepository {
	return &WorkoutRepository{db: db}
}

// Create inserts a workout and sets its generated ID and creation time.
func (r *WorkoutRepository) Create(ctx context.Context, w *model.Workout) error {
	query := `INSERT INTO workouts (user_id, type, name, sets, reps, duration, calories, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`

	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now().UTC().Truncate(time.Second)
	}

	result, err := r.db.ExecContext(ctx, query,
		w.UserID, w.Type, w.Name, w.Sets, w.Reps, w.Duration, w.Calories, w.CreatedAt,
	)
	if err != nil {
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	w.ID = id
	return nil
}

// ListByUserEmail retrieves the workouts of the user with the given email, newest first.
func (r *WorkoutRepository) ListByUserEmail(ctx context.Context, email string) ([]model.Workout, error) {
	query := `SELECT w.id, w.user_id, w.type, w.name, w.sets, w.reps, w.duration, w.calories, w.created_at
		FROM workouts w JOIN users u ON u.id = w.user_id
		WHERE u.email = ? ORDER BY w.created_at DESC, w.id DESC`

	return r.list(ctx, query, email)
}

// List retrieves every workout in insertion order.
func (r *WorkoutRepository) List(ctx context.Context) ([]model.Workout, error) {
	query := `SELECT id, user_id, type, name, sets, reps, duration, calories, created_at
		FROM workouts ORDER BY id ASC`

	return r.list(ctx, query)
}

func (r *WorkoutRepository) list(ctx context.Context, query string, args ...any) ([]model.Workout, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var workouts []model.Workout
	for rows.Next() {
		var w model.Workout
		if err := rows.Scan(
			&w.ID, &w.UserID, &w.Type, &w.Name,
			&w.Sets, &w.Reps, &w.Duration, &w.Calories, &w.CreatedAt,
		); err != nil {
			return nil, err
		}
		workouts = append(workouts, w)
	}

	return workouts, rows.Err()
}

// Delete removes a workout by ID.
func (r *WorkoutRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM workouts WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrWorkoutNotFound
	}

	return nil
}
