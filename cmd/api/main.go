// Package main is the entry point for the Trip Journal API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	slogmulti "github.com/samber/slog-multi"

	"github.com/pkordes/trip-journal/internal/config"
	"github.com/pkordes/trip-journal/internal/handler"
	"github.com/pkordes/trip-journal/internal/middleware"
	"github.com/pkordes/trip-journal/internal/repo"
	"github.com/pkordes/trip-journal/internal/service"
)

// compressMinSize is the smallest response body worth gzipping.
const compressMinSize = 1024

func main() {
	// --- Config -----------------------------------------------------------
	cfg, err := config.Load()
	if err != nil {
		// Use plain stderr before the logger is configured.
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: logLevel}
	var logHandler slog.Handler = slog.NewJSONHandler(os.Stdout, opts)

	// LOG_FILE keeps a local copy of every record next to stdout.
	if cfg.LogFile != "" {
		f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			slog.Error("failed to open log file", "path", cfg.LogFile, "error", err)
			os.Exit(1)
		}
		defer f.Close()
		logHandler = slogmulti.Fanout(logHandler, slog.NewJSONHandler(f, opts))
	}
	logger := slog.New(logHandler)
	slog.SetDefault(logger)

	// --- Storage ----------------------------------------------------------
	// A missing data file is a fresh trip. A corrupt one is logged and the
	// server starts empty; the next successful submission overwrites it.
	entryRepo := repo.NewEntryRepo(cfg.DataFile)
	if err := entryRepo.Load(context.Background()); err != nil {
		slog.Warn("could not load entries, starting empty", "path", cfg.DataFile, "error", err)
	}
	notesRepo := repo.NewNotesRepo(cfg.NotesFile, nil)

	entrySvc := service.NewEntryService(entryRepo, notesRepo, cfg.Trip, logger, nil)
	exportSvc := service.NewExportService(entryRepo, cfg.Trip)

	all, _ := entryRepo.All(context.Background())
	slog.Info("journal loaded",
		"data_file", cfg.DataFile,
		"notes_file", cfg.NotesFile,
		"entries", len(all),
		"trip_start", cfg.Trip.Start.Format(time.DateOnly),
		"trip_end", cfg.Trip.End.Format(time.DateOnly),
	)

	compress, err := middleware.NewCompressHandler(compressMinSize)
	if err != nil {
		slog.Error("failed to build compression middleware", "error", err)
		os.Exit(1)
	}

	// --- Router -----------------------------------------------------------
	// Middleware is applied in order: RequestID → RealIP → Logger → Metrics →
	// Recoverer → CORS → MaxBodySize → Compress.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))

	var metrics *middleware.Metrics
	if cfg.MetricsEnabled {
		metrics = middleware.NewMetrics()
		metrics.TrackEntries(entrySvc.Count)
		r.Use(metrics.Handler())
	}

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))
	r.Use(compress)

	// chi rejects middleware added after the first route, so /metrics comes last.
	if metrics != nil {
		r.Handle("/metrics", metrics.Exposition())
	}
	r.Mount("/", handler.NewServer(entrySvc, exportSvc, logger).Routes())

	// --- HTTP Server ------------------------------------------------------
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown: wait for OS signal, then give in-flight requests
	// up to 15 seconds to complete before forcefully closing.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		slog.Info("server starting", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-stop
	slog.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}
