package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gymtrack/gymtrack-api/internal/model"
)

// UserRepository handles user persistence operations.
type UserRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

const userColumns = `id, first_name, last_name, email, phone, address, city, state, zip,
	birthdate, gender, password_hash, plan, plan_type, payment_method, api_key, registered_at`

// Create inserts a new user and sets the generated ID and registration time on the struct.
func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	query := `INSERT INTO users (first_name, last_name, email, phone, address, city, state, zip,
		birthdate, gender, password_hash, plan, plan_type, payment_method, api_key, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = time.Now().UTC().Truncate(time.Second)
	}

	result, err := r.db.ExecContext(ctx, query,
		user.FirstName, user.LastName, user.Email, user.Phone,
		user.Address, user.City, user.State, user.Zip,
		user.Birthdate, user.Gender, user.PasswordHash, user.Plan,
		user.PlanType, user.PaymentMethod, user.APIKey, user.RegisteredAt,
	)
	if err != nil {
		if isDuplicateEntryError(err) {
			return duplicateUserError(err)
		}
		return err
	}

	id, err := result.LastInsertId()
	if err != nil {
		return err
	}

	user.ID = id
	return nil
}

// GetByEmail retrieves a user by their email address.
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE email = ?`, email)
}

// GetByAPIKey retrieves the user owning the given API key. An empty key never matches.
func (r *UserRepository) GetByAPIKey(ctx context.Context, key string) (*model.User, error) {
	if key == "" {
		return nil, ErrUserNotFound
	}
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE api_key = ?`, key)
}

func (r *UserRepository) getOne(ctx context.Context, query string, arg any) (*model.User, error) {
	user := &model.User{}
	err := r.db.QueryRowContext(ctx, query, arg).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email, &user.Phone,
		&user.Address, &user.City, &user.State, &user.Zip,
		&user.Birthdate, &user.Gender, &user.PasswordHash, &user.Plan,
		&user.PlanType, &user.PaymentMethod, &user.APIKey, &user.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	return user, nil
}

// UpdatePassword replaces the stored password hash of a user.
func (r *UserRepository) UpdatePassword(ctx context.Context, id int64, hash string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE users SET password_hash = ? WHERE id = ?`, hash, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// Delete removes a user together with their reminders and workouts in one transaction.
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM reminders WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("delete reminders: %w", err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM workouts WHERE user_id = ?`, id); err != nil {
		return fmt.Errorf("delete workouts: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrUserNotFound
	}

	return tx.Commit()
}
