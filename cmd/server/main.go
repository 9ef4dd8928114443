package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/stemsi/student-admin/internal/apiclient"
	"github.com/stemsi/student-admin/internal/config"
	"github.com/stemsi/student-admin/internal/handler"
	"github.com/stemsi/student-admin/internal/logger"
	"github.com/stemsi/student-admin/internal/middleware"
	"github.com/stemsi/student-admin/internal/router"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/store"
	"github.com/stemsi/student-admin/internal/validator"
	"github.com/stemsi/student-admin/internal/worker"
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
		Str("api_base_url", cfg.APIBaseURL).
		Msg("Starting Student Admin")

	// ─── Initialize Validator ──────────────────────────────────────────
	if err := validator.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up validator")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// ─── Catalog API Client + Shared Store ─────────────────────────────
	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, log)
	studentStore := store.NewStudentStore()

	// ─── Initialize Services ──────────────────────────────────────────
	studentService := service.NewStudentService(client, studentStore, log)
	courseService := service.NewCourseService(client, log)

	// ─── Initialize Handlers ──────────────────────────────────────────
	handlers := &router.Handlers{
		Student: handler.NewStudentHandler(studentService, courseService),
		Course:  handler.NewCourseHandler(courseService),
		WS:      handler.NewWSHandler(studentService, log, cfg.AllowedOrigins),
	}

	// ─── Prime the Student List ───────────────────────────────────────
	// Stream subscribers get a populated list right away when the catalog
	// is up; otherwise they start from empty until the first reload.
	if _, err := studentService.LoadStudents(ctx); err != nil {
		log.Warn().Err(err).Msg("Initial student load failed")
	}

	// ─── Start Background Workers ─────────────────────────────────────
	workerCtx, workerCancel := context.WithCancel(context.Background())
	refreshWorker := worker.NewRefreshWorker(studentService, cfg.RefreshInterval, log)
	go refreshWorker.Start(workerCtx)

	// ─── Setup Router ──────────────────────────────────────────────────
	limiter := middleware.NewRateLimiter(ctx, cfg.RateLimitPerMinute, time.Minute)
	r := router.SetupRouter(handlers, cfg, log, limiter)

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

	// 1. Stop background reloads.
	workerCancel()

	// 2. Close stream subscriptions so WebSocket writers return.
	studentStore.Close()

	// 3. Stop accepting new HTTP requests (5s timeout).
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("HTTP server shutdown error")
	}

	log.Info().Msg("Shutdown complete")
}

// init sets zerolog global defaults before main runs.
func init() {
	zerolog.TimeFieldFormat = time.RFC3339
}
