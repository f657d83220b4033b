package service

import (
	"errors"
	"strings"
)

// Validation errors (400).
var (
	ErrPasswordMismatch       = errors.New("Passwords do not match!")
	ErrInvalidBirthdate       = errors.New("birthdate must be a date in YYYY-MM-DD format")
	ErrLoginFieldsRequired    = errors.New("Email and password are required")
	ErrResetFieldsRequired    = errors.New("Email and new password are required")
	ErrUserEmailRequired      = errors.New("Missing user email")
	ErrEmailParamRequired     = errors.New("Missing email parameter")
	ErrInvalidWorkoutNumbers  = errors.New("sets, reps, duration and calories must not be negative")
	ErrReminderFieldsRequired = errors.New("Please fill in all fields.")
	ErrInvalidInterval        = errors.New("Interval must be a valid number.")
	ErrInvalidUnit            = errors.New("unit must be one of minute, hour or day")
	ErrInvalidID              = errors.New("id must be a positive integer")
)

// Conflict (400).
var ErrEmailTaken = errors.New("Email already registered.")

// Authentication errors (401).
var (
	ErrInvalidCredentials = errors.New("Invalid email or password")
	ErrInvalidAPIKey      = errors.New("Invalid or missing API key")
)

// Lookup errors (404).
var (
	ErrEmailNotFound    = errors.New("Email not found")
	ErrUserNotFound     = errors.New("User not found")
	ErrWorkoutNotFound  = errors.New("Workout not found")
	ErrReminderNotFound = errors.New("Reminder not found")
)

// MissingFieldsError lists required request fields that were absent.
// Prefix defaults to "Missing required fields".
type MissingFieldsError struct {
	Prefix string
	Fields []string
}

func (e *MissingFieldsError) Error() string {
	prefix := e.Prefix
	if prefix == "" {
		prefix = "Missing required fields"
	}
	return prefix + ": " + strings.Join(e.Fields, ", ")
}
