package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/repository"
)

// ReminderService handles reminder scheduling records.
type ReminderService struct {
	reminders ReminderStore
	users     UserStore
}

// NewReminderService creates a new ReminderService.
func NewReminderService(reminders ReminderStore, users UserStore) *ReminderService {
	return &ReminderService{reminders: reminders, users: users}
}

// Create stores a reminder for the user identified by req.UserEmail.
func (s *ReminderService) Create(ctx context.Context, req model.ReminderRequest) (model.ReminderResponse, error) {
	email := normalizeEmail(req.UserEmail)
	unit := strings.ToLower(strings.TrimSpace(req.Unit))
	if email == "" || strings.TrimSpace(req.Category) == "" || strings.TrimSpace(req.Task) == "" || req.Interval == nil || unit == "" {
		return model.ReminderResponse{}, ErrReminderFieldsRequired
	}
	if *req.Interval <= 0 {
		return model.ReminderResponse{}, ErrInvalidInterval
	}
	switch unit {
	case model.UnitMinute, model.UnitHour, model.UnitDay:
	default:
		return model.ReminderResponse{}, ErrInvalidUnit
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ReminderResponse{}, ErrUserNotFound
		}
		return model.ReminderResponse{}, err
	}

	rem := model.Reminder{
		UserID:   user.ID,
		Category: req.Category,
		Task:     req.Task,
		Interval: *req.Interval,
		Unit:     unit,
	}
	if err := s.reminders.Create(ctx, &rem); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return model.ReminderResponse{}, ErrUserNotFound
		}
		return model.ReminderResponse{}, fmt.Errorf("create reminder: %w", err)
	}

	return model.ReminderToResponse(rem), nil
}

// ListByUser returns the reminders of the user with the given email.
func (s *ReminderService) ListByUser(ctx context.Context, email string) ([]model.ReminderResponse, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, ErrEmailParamRequired
	}

	reminders, err := s.reminders.ListByUserEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	result := make([]model.ReminderResponse, len(reminders))
	for i, r := range reminders {
		result[i] = model.ReminderToResponse(r)
	}
	return result, nil
}

// Delete removes a reminder by ID.
func (s *ReminderService) Delete(ctx context.Context, id int64) error {
	if id <= 0 {
		return ErrInvalidID
	}

	err := s.reminders.Delete(ctx, id)
	if errors.Is(err, repository.ErrReminderNotFound) {
		return ErrReminderNotFound
	}
	return err
}
