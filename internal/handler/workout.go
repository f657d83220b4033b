package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/service"
)

// WorkoutHandler handles HTTP requests for workout logging.
type WorkoutHandler struct {
	service *service.WorkoutService
}

// NewWorkoutHandler creates a new WorkoutHandler.
func NewWorkoutHandler(svc *service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{service: svc}
}

// HandleCreate handles POST /api/workout requests.
func (h *WorkoutHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.WorkoutRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.WorkoutCreatedResponse{
		Message: "Workout saved successfully",
		Workout: resp,
	})
}

// HandleListByUser handles GET /api/workout?email= requests.
func (h *WorkoutHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.service.ListByUser(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.WorkoutListResponse{Workouts: workouts})
}

// HandleList handles GET /api/workouts requests.
func (h *WorkoutHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.service.List(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, workouts)
}

// HandleDelete handles DELETE /api/workout/{id} requests.
func (h *WorkoutHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Workout deleted"})
}
