package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/gymtrack/gymtrack-api/internal/model"
	"github.com/gymtrack/gymtrack-api/internal/service"
)

// ReminderHandler handles HTTP requests for reminders.
type ReminderHandler struct {
	service *service.ReminderService
}

// NewReminderHandler creates a new ReminderHandler.
func NewReminderHandler(svc *service.ReminderService) *ReminderHandler {
	return &ReminderHandler{service: svc}
}

// HandleCreate handles POST /api/reminder requests.
func (h *ReminderHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.ReminderRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, model.ReminderCreatedResponse{
		Message:  "Reminder set successfully",
		Reminder: resp,
	})
}

// HandleListByUser handles GET /api/reminders?email= requests.
func (h *ReminderHandler) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	reminders, err := h.service.ListByUser(r.Context(), r.URL.Query().Get("email"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.ReminderListResponse{Reminders: reminders})
}

// HandleDelete handles DELETE /api/reminder/{id} requests.
func (h *ReminderHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, r, service.ErrInvalidID)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "Reminder deleted"})
}
