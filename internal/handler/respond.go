package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gymtrack/gymtrack-api/internal/service"
)

const maxBodyBytes = 1 << 20 // 1MB

// decodeJSON reads a size-limited JSON body into dst. On failure it writes the
// error response and returns false.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return false
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return false
	}
	return true
}

// writeError translates a service error into its status code and JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeJSON(w, status, errorResponse(err.Error()))
}

func statusFor(err error) int {
	var missing *service.MissingFieldsError
	switch {
	case errors.As(err, &missing),
		errors.Is(err, service.ErrPasswordMismatch),
		errors.Is(err, service.ErrInvalidBirthdate),
		errors.Is(err, service.ErrLoginFieldsRequired),
		errors.Is(err, service.ErrResetFieldsRequired),
		errors.Is(err, service.ErrUserEmailRequired),
		errors.Is(err, service.ErrEmailParamRequired),
		errors.Is(err, service.ErrInvalidWorkoutNumbers),
		errors.Is(err, service.ErrReminderFieldsRequired),
		errors.Is(err, service.ErrInvalidInterval),
		errors.Is(err, service.ErrInvalidUnit),
		errors.Is(err, service.ErrInvalidID),
		errors.Is(err, service.ErrEmailTaken):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrInvalidCredentials),
		errors.Is(err, service.ErrInvalidAPIKey):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrEmailNotFound),
		errors.Is(err, service.ErrUserNotFound),
		errors.Is(err, service.ErrWorkoutNotFound),
		errors.Is(err, service.ErrReminderNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func errorResponse(msg string) map[string]string {
	return map[string]string{"error": msg}
}
