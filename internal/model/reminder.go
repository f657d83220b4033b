package model

import "time"

// Reminder units.
const (
	UnitMinute = "minute"
	UnitHour   = "hour"
	UnitDay    = "day"
)

// Reminder represents a recurring nudge (workout, skincare, ...) owned by a user.
type Reminder struct {
	ID        int64
	UserID    int64
	Category  string
	Task      string
	Interval  int
	Unit      string
	CreatedAt time.Time
}

// ReminderRequest represents a reminder creation request.
type ReminderRequest struct {
	UserEmail string `json:"user_email"`
	Category  string `json:"category"`
	Task      string `json:"task"`
	Interval  *int   `json:"interval"`
	Unit      string `json:"unit"`
}

// ReminderResponse represents a reminder in API responses.
type ReminderResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Category  string    `json:"category"`
	Task      string    `json:"task"`
	Interval  int       `json:"interval"`
	Unit      string    `json:"unit"`
	CreatedAt time.Time `json:"created_at"`
}

// ReminderCreatedResponse is returned by POST /api/reminder.
type ReminderCreatedResponse struct {
	Message  string           `json:"message"`
	Reminder ReminderResponse `json:"reminder"`
}

// ReminderListResponse is returned by GET /api/reminders.
type ReminderListResponse struct {
	Reminders []ReminderResponse `json:"reminders"`
}

// ReminderToResponse converts a stored reminder to its API form.
func ReminderToResponse(r Reminder) ReminderResponse {
	return ReminderResponse{
		ID:        r.ID,
		UserID:    r.UserID,
		Category:  r.Category,
		Task:      r.Task,
		Interval:  r.Interval,
		Unit:      r.Unit,
		CreatedAt: r.CreatedAt,
	}
}
