package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/classhub/classhub-backend/internal/config"
	"github.com/classhub/classhub-backend/internal/database"
	"github.com/classhub/classhub-backend/internal/handler"
	"github.com/classhub/classhub-backend/internal/logger"
	"github.com/classhub/classhub-backend/internal/repository"
	"github.com/classhub/classhub-backend/internal/router"
	"github.com/classhub/classhub-backend/internal/service"
	"github.com/classhub/classhub-backend/internal/validator"
	"github.com/classhub/classhub-backend/internal/worker"
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	log.Info().
		Str("port", cfg.ServerPort).
		Str("mode", cfg.GinMode).
		Str("log_level", cfg.LogLevel).
		Msg("Starting ClassHub Backend")

	// ─── Initialize Validator ──────────────────────────────────────────
	validator.Setup()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Connect to Redis ──────────────────────────────────────────────
	rdb, err := database.NewRedisClient(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to Redis")
	}
	defer rdb.Close()

	// ─── Initialize Repositories ───────────────────────────────────────
	userRepo := repository.NewUserRepository(pool)
	attendanceRepo := repository.NewAttendanceRepository(pool)
	homeworkRepo := repository.NewHomeworkRepository(pool)
	messageRepo := repository.NewMessageRepository(pool)
	tutorLogRepo := repository.NewTutorLogRepository(pool)

	// ─── Initialize Services ──────────────────────────────────────────
	authService := service.NewAuthService(cfg, rdb)
	userService := service.NewUserService(userRepo)
	attendanceService := service.NewAttendanceService(attendanceRepo)
	homeworkService := service.NewHomeworkService(homeworkRepo)
	messageService := service.NewMessageService(messageRepo)
	dashboardService := service.NewDashboardService(userRepo, attendanceService, homeworkService)
	tutorService := service.NewTutorService(cfg, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Auth:    handler.NewAuthHandler(authService, userService),
		Teacher: handler.NewTeacherHandler(dashboardService, userService, attendanceService, homeworkService, authService),
		Student: handler.NewStudentHandler(dashboardService, attendanceService, homeworkService),
		Parent:  handler.NewParentHandler(dashboardService, userService, attendanceService, homeworkService),
		Message: handler.NewMessageHandler(messageService, userService, rdb, log),
		Tutor:   handler.NewTutorHandler(tutorService, rdb, log),
		ChatWS:  handler.NewChatWSHandler(rdb, log, cfg.AllowedOrigins),
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())

	tutorLogWorker := worker.NewTutorLogWorker(tutorLogRepo, rdb, log)
	go tutorLogWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	r := router.SetupRouter(authService, handlers, cfg)

	// ─── Create HTTP Server ────────────────────────────────────────────
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: r,
	}

	// ─── Start Server in Goroutine ─────────────────────────────────────
	go func() {
		log.Info().Str("addr", ":"+cfg.ServerPort).Msg("Server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	// ─── Graceful Shutdown ─────────────────────────────────────────────
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	log.Info().Str("signal", sig.String()).Msg("Shutting down gracefully...")

	// 1. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	// 2. Stop the background worker and wait for the queue to drain.
	workerCancel()
	time.Sleep(2 * time.Second) // Allow the worker to drain.

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
