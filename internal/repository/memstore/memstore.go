// Package memstore keeps users, workouts and reminders in process memory.
// It honours the same uniqueness and cascade rules as the MySQL repositories
// and reports the same repository sentinel errors.
package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
)

// Store is an in-memory backing for the user, workout and reminder stores.
type Store struct {
	mu        sync.RWMutex
	now       func() time.Time
	nextID    int64
	users     map[int64]model.User
	workouts  map[int64]model.Workout
	reminders map[int64]model.Reminder
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		now:       func() time.Time { return time.Now().UTC() },
		users:     make(map[int64]model.User),
		workouts:  make(map[int64]model.Workout),
		reminders: make(map[int64]model.Reminder),
	}
}

// Users returns the store viewed as a credential store.
func (s *Store) Users() *Users { return &Users{s: s} }

// Workouts returns the store viewed as a workout store.
func (s *Store) Workouts() *Workouts { return &Workouts{s: s} }

// Reminders returns the store viewed as a reminder store.
func (s *Store) Reminders() *Reminders { return &Reminders{s: s} }

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

func (s *Store) userByEmail(email string) (model.User, bool) {
	for _, u := range s.users {
		if u.Email == email {
			return u, true
		}
	}
	return model.User{}, false
}

// Users implements the credential store operations.
type Users struct {
	s *Store
}

// Create inserts a user, rejecting a duplicate email or API key.
func (u *Users) Create(_ context.Context, user *model.User) error {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.userByEmail(user.Email); taken {
		return repository.ErrDuplicateEmail
	}
	if user.APIKey != nil {
		for _, existing := range s.users {
			if existing.APIKey != nil && *existing.APIKey == *user.APIKey {
				return repository.ErrDuplicateAPIKey
			}
		}
	}

	user.ID = s.id()
	if user.RegisteredAt.IsZero() {
		user.RegisteredAt = s.now()
	}
	s.users[user.ID] = *user
	return nil
}

// GetByEmail retrieves a user by their email address.
func (u *Users) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	user, ok := u.s.userByEmail(email)
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	return &user, nil
}

// GetByAPIKey retrieves the user owning key. An empty key never matches.
func (u *Users) GetByAPIKey(_ context.Context, key string) (*model.User, error) {
	if key == "" {
		return nil, repository.ErrUserNotFound
	}

	u.s.mu.RLock()
	defer u.s.mu.RUnlock()

	for _, user := range u.s.users {
		if user.APIKey != nil && *user.APIKey == key {
			return &user, nil
		}
	}
	return nil, repository.ErrUserNotFound
}

// UpdatePassword replaces the stored password hash of a user.
func (u *Users) UpdatePassword(_ context.Context, id int64, hash string) error {
	u.s.mu.Lock()
	defer u.s.mu.Unlock()

	user, ok := u.s.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.PasswordHash = hash
	u.s.users[id] = user
	return nil
}

// Delete removes a user and everything they own.
func (u *Users) Delete(_ context.Context, id int64) error {
	s := u.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return repository.ErrUserNotFound
	}
	for wid, w := range s.workouts {
		if w.UserID == id {
			delete(s.workouts, wid)
		}
	}
	for rid, r := range s.reminders {
		if r.UserID == id {
			delete(s.reminders, rid)
		}
	}
	delete(s.users, id)
	return nil
}

// Workouts implements the workout store operations.
type Workouts struct {
	s *Store
}

// Create inserts a workout. The owning user must exist.
func (w *Workouts) Create(_ context.Context, workout *model.Workout) error {
	s := w.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[workout.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	workout.ID = s.id()
	if workout.CreatedAt.IsZero() {
		workout.CreatedAt = s.now()
	}
	s.workouts[workout.ID] = *workout
	return nil
}

// ListByUserEmail retrieves the workouts of the user with the given email, newest first.
func (w *Workouts) ListByUserEmail(_ context.Context, email string) ([]model.Workout, error) {
	s := w.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.userByEmail(email)
	if !ok {
		return nil, nil
	}

	var out []model.Workout
	for _, wk := range s.workouts {
		if wk.UserID == user.ID {
			out = append(out, wk)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

// List retrieves every workout in insertion order.
func (w *Workouts) List(_ context.Context) ([]model.Workout, error) {
	s := w.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Workout, 0, len(s.workouts))
	for _, wk := range s.workouts {
		out = append(out, wk)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a workout by ID.
func (w *Workouts) Delete(_ context.Context, id int64) error {
	w.s.mu.Lock()
	defer w.s.mu.Unlock()

	if _, ok := w.s.workouts[id]; !ok {
		return repository.ErrWorkoutNotFound
	}
	delete(w.s.workouts, id)
	return nil
}

// Reminders implements the reminder store operations.
type Reminders struct {
	s *Store
}

// Create inserts a reminder. The owning user must exist.
func (r *Reminders) Create(_ context.Context, rem *model.Reminder) error {
	s := r.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[rem.UserID]; !ok {
		return repository.ErrUserNotFound
	}
	rem.ID = s.id()
	if rem.CreatedAt.IsZero() {
		rem.CreatedAt = s.now()
	}
	s.reminders[rem.ID] = *rem
	return nil
}

// ListByUserEmail retrieves the reminders of the user with the given email.
func (r *Reminders) ListByUserEmail(_ context.Context, email string) ([]model.Reminder, error) {
	s := r.s
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.userByEmail(email)
	if !ok {
		return nil, nil
	}

	var out []model.Reminder
	for _, rem := range s.reminders {
		if rem.UserID == user.ID {
			out = append(out, rem)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Delete removes a reminder by ID.
func (r *Reminders) Delete(_ context.Context, id int64) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reminders[id]; !ok {
		return repository.ErrReminderNotFound
	}
	delete(r.s.reminders, id)
	return nil
}
