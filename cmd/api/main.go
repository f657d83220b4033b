package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/gymtrack/gymtrack-api/internal/config"
	"github.com/gymtrack/gymtrack-api/internal/crypto"
	"github.com/gymtrack/gymtrack-api/internal/handler"
	"github.com/gymtrack/gymtrack-api/internal/logger"
	"github.com/gymtrack/gymtrack-api/internal/repository"
	"github.com/gymtrack/gymtrack-api/internal/repository/memstore"
	"github.com/gymtrack/gymtrack-api/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	slog.SetDefault(logger.New(os.Stdout, "gymtrack-api", cfg.IsProduction(), cfg.LogLevel))

	var (
		users     service.UserStore
		workouts  service.WorkoutStore
		reminders service.ReminderStore
		db        *sql.DB
	)
	if cfg.DatabaseDSN == "" {
		slog.Warn("DATABASE_DSN not set, data is kept in memory only")
		store := memstore.New()
		users, workouts, reminders = store.Users(), store.Workouts(), store.Reminders()
	} else {
		db, err = repository.NewDB(cfg.DatabaseDSN)
		if err != nil {
			slog.Error("database connection failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err = repository.EnsureSchema(ctx, db)
		cancel()
		if err != nil {
			slog.Error("schema setup failed", "error", err)
			os.Exit(1)
		}

		users = repository.NewUserRepository(db)
		workouts = repository.NewWorkoutRepository(db)
		reminders = repository.NewReminderRepository(db)
	}

	authService := service.NewAuthService(users, crypto.NewHasher(crypto.DefaultHashParams()))
	workoutService := service.NewWorkoutService(workouts, users)
	reminderService := service.NewReminderService(reminders, users)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler.NewRouter(cfg, authService, workoutService, reminderService),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "persistent", db != nil)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
