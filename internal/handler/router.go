package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/gymtrack/gymtrack-api/internal/config"
	"github.com/gymtrack/gymtrack-api/internal/middleware"
	"github.com/gymtrack/gymtrack-api/internal/service"
)

// NewRouter wires every endpoint onto a chi router.
func NewRouter(cfg config.Config, auth *service.AuthService, workouts *service.WorkoutService, reminders *service.ReminderService) http.Handler {
	authHandler := NewAuthHandler(auth)
	workoutHandler := NewWorkoutHandler(workouts)
	reminderHandler := NewReminderHandler(reminders)

	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Route("/api", func(r chi.Router) {
		if len(cfg.CORSAllowedOrigins) > 0 {
			r.Use(middleware.CORS(cfg.CORSAllowedOrigins, cfg.CORSAllowCredentials))
		}

		r.Group(func(r chi.Router) {
			r.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
			r.Post("/register", authHandler.HandleRegister)
			r.Post("/login", authHandler.HandleLogin)
			r.Post("/forgot", authHandler.HandleForgotPassword)
		})

		r.With(middleware.APIKeyAuth(auth)).Get("/protected", authHandler.HandleProtected)
		r.Delete("/delete_user", authHandler.HandleDeleteUser)

		r.Post("/workout", workoutHandler.HandleCreate)
		r.Get("/workout", workoutHandler.HandleListByUser)
		r.Get("/workouts", workoutHandler.HandleList)
		r.Delete("/workout/{id}", workoutHandler.HandleDelete)

		r.Post("/reminder", reminderHandler.HandleCreate)
		r.Get("/reminders", reminderHandler.HandleListByUser)
		r.Delete("/reminder/{id}", reminderHandler.HandleDelete)
	})

	return r
}
