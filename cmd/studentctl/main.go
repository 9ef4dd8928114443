package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/stemsi/student-admin/internal/apiclient"
	"github.com/stemsi/student-admin/internal/config"
	"github.com/stemsi/student-admin/internal/logger"
	"github.com/stemsi/student-admin/internal/service"
	"github.com/stemsi/student-admin/internal/store"
	"github.com/stemsi/student-admin/internal/validator"
	"golang.org/x/term"
)

func main() {
	var (
		assumeYes bool
		baseURL   string
	)
	flag.BoolVar(&assumeYes, "y", false, "Delete without asking (required when stdin is not a terminal)")
	flag.StringVar(&baseURL, "api", "", "Catalog API base URL (overrides API_BASE_URL)")
	flag.Parse()

	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()
	if baseURL != "" {
		cfg.APIBaseURL = baseURL
	}

	// ─── Initialize Logger ─────────────────────────────────────────────
	// Views go to stdout, logs to stderr.
	log := logger.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)

	if err := validator.Setup(); err != nil {
		log.Fatal().Err(err).Msg("Failed to set up validator")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := apiclient.New(cfg.APIBaseURL, cfg.APITimeout, log)
	studentStore := store.NewStudentStore()
	defer studentStore.Close()

	con := newConsole(
		os.Stdin,
		os.Stdout,
		service.NewStudentService(client, studentStore, log),
		service.NewCourseService(client, log),
	)
	con.interactive = term.IsTerminal(int(os.Stdin.Fd()))
	con.assumeYes = assumeYes

	if err := con.Run(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
