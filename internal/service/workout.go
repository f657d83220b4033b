package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
)

// WorkoutService handles workout logging.
type WorkoutService struct {
	workouts WorkoutStore
	users    UserStore
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(workouts WorkoutStore, users UserStore) *WorkoutService {
	return &WorkoutService{workouts: workouts, users: users}
}

// Create logs a workout for the user identified by req.UserEmail.
func (s *WorkoutService) Create(ctx context.Context, req model.WorkoutRequest) (model.WorkoutResponse, error) {
	email := normalizeEmail(req.UserEmail)
	if email == "" {
		return model.WorkoutResponse{}, ErrUserEmailRequired
	}
	if missing := req.MissingFields(); len(missing) > 0 {
		return model.WorkoutResponse{}, &MissingFieldsError{Prefix: "Missing fields", Fields: missing}
	}
	if *req.Sets < 0 || *req.Reps < 0 || *req.Duration < 0 || *req.Calories < 0 {
		return model.WorkoutResponse{}, ErrInvalidWorkoutNumbers
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.WorkoutResponse{}, ErrUserNotFound
		}
		return model.WorkoutResponse{}, err
	}

	w := model.Workout{
		UserID:   user.ID,
		Type:     req.Type,
		Name:     req.Name,
		Sets:     *req.Sets,
		Reps:     *req.Reps,
		Duration: *req.Duration,
		Calories: *req.Calories,
	}
	if err := s.workouts.Create(ctx, &w); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.WorkoutResponse{}, ErrUserNotFound
		}
		return model.WorkoutResponse{}, fmt.Errorf("create workout: %w", err)
	}

	return model.WorkoutToResponse(w), nil
}

// ListByUser returns the workouts of the user with the given email, newest first.
func (s *WorkoutService) ListByUser(ctx context.Context, email string) ([]model.WorkoutResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailParamRequired
	}

	workouts, err := s.workouts.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	return workoutsToResponse(workouts), nil
}

// List returns every logged workout.
func (s *WorkoutService) List(ctx context.Context) ([]model.WorkoutResponse, error) {
	workouts, err := s.workouts.List(ctx)
	if err != nil {
		return nil, err
	}
	return workoutsToResponse(workouts), nil
}

// Delete removes a workout by ID.
func (s *WorkoutService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	err := s.workouts.Delete(ctx, id)
	if errors.Is(err, repository.ErrWorkoutNotFound) {
		return ErrWorkoutNotFound
	}
	return err
}

// workoutsToResponse converts stored workouts to their API form; never nil.
func workoutsToResponse(workouts []model.Workout) []model.WorkoutResponse {
	result := make([]model.WorkoutResponse, len(workouts))
	for i, w := range workouts {
		result[i] = model.WorkoutToResponse(w)
	}
	return result
}
