package model

import (
	"strings"
	"time"
)

// Workout represents a logged training session in the database.
type Workout struct {
	ID        int64
	UserID    int64
	Type      string
	Name      string
	Sets      int
	Reps      int
	Duration  int
	Calories  int
	CreatedAt time.Time
}

// WorkoutRequest represents a workout creation request.
// Pointer ints allow distinguishing between a missing field and an explicit zero.
type WorkoutRequest struct {
	UserEmail string `json:"user_email"`
	Type      string `json:"type"`
	Name      string `json:"name"`
	Sets      *int   `json:"sets"`
	Reps      *int   `json:"reps"`
	Duration  *int   `json:"duration"`
	Calories  *int   `json:"calories"`
}

// MissingFields returns the names of workout fields absent from the request.
// user_email is reported separately by the caller.
func (r WorkoutRequest) MissingFields() []string {
	var missing []string
	if strings.TrimSpace(r.Type) == "" {
		missing = append(missing, "type")
	}
	if strings.TrimSpace(r.Name) == "" {
		missing = append(missing, "name")
	}
	if r.Sets == nil {
		missing = append(missing, "sets")
	}
	if r.Reps == nil {
		missing = append(missing, "reps")
	}
	if r.Duration == nil {
		missing = append(missing, "duration")
	}
	if r.Calories == nil {
		missing = append(missing, "calories")
	}
	return missing
}

// WorkoutResponse represents a workout in API responses.
type WorkoutResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Type      string    `json:"type"`
	Name      string    `json:"name"`
	Sets      int       `json:"sets"`
	Reps      int       `json:"reps"`
	Duration  int       `json:"duration"`
	Calories  int       `json:"calories"`
	CreatedAt time.Time `json:"created_at"`
}

// WorkoutCreatedResponse is returned by POST /api/workout.
type WorkoutCreatedResponse struct {
	Message string          `json:"message"`
	Workout WorkoutResponse `json:"workout"`
}

// WorkoutListResponse is returned by GET /api/workout.
type WorkoutListResponse struct {
	Workouts []WorkoutResponse `json:"workouts"`
}

// WorkoutToResponse converts a stored workout to its API form.
func WorkoutToResponse(w Workout) WorkoutResponse {
	return WorkoutResponse{
		ID:        w.ID,
		UserID:    w.UserID,
		Type:      w.Type,
		Name:      w.Name,
		Sets:      w.Sets,
		Reps:      w.Reps,
		Duration:  w.Duration,
		Calories:  w.Calories,
		CreatedAt: w.CreatedAt,
	}
}
