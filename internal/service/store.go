package service

import (
	"context"
	"strings"

	"github.com/gymtrack/gymtrack-api/internal/model"
)

// UserStore is the credential store consumed by AuthService.
type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByAPIKey(ctx context.Context, key string) (*model.User, error)
	UpdatePassword(ctx context.Context, id int64, hash string) error
	Delete(ctx context.Context, id int64) error
}

// WorkoutStore persists workouts.
type WorkoutStore interface {
	Create(ctx context.Context, w *model.Workout) error
	ListByUserEmail(ctx context.Context, email string) ([]model.Workout, error)
	List(ctx context.Context) ([]model.Workout, error)
	Delete(ctx context.Context, id int64) error
}

// ReminderStore persists reminders.
type ReminderStore interface {
	Create(ctx context.Context, r *model.Reminder) error
	ListByUserEmail(ctx context.Context, email string) ([]model.Reminder, error)
	Delete(ctx context.Context, id int64) error
}

// PasswordHasher turns plaintext passwords into digests and checks them.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Verify(plaintext, digest string) bool
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
