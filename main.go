package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/psychopredict/cliparse"
	"github.com/danielhkuo/psychopredict/db"
	"github.com/danielhkuo/psychopredict/defaults"
	"github.com/danielhkuo/psychopredict/observability"
	"github.com/danielhkuo/psychopredict/predictor"
	"github.com/danielhkuo/psychopredict/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	observability.InitLogger(observability.LogConfig{Level: cfg.LogLevel, Format: cfg.LogFormat})

	formDefaults, err := defaults.Load(cfg.DefaultsPath)
	if err != nil {
		slog.Error("form defaults", "error", err)
		os.Exit(1)
	}

	metrics := observability.NewMetrics()

	// The model is loaded once; training must have run first.
	pred, err := predictor.Load(cfg.ModelPath, cfg.PositiveClass, metrics)
	if err != nil {
		slog.Error("model load failed", "path", cfg.ModelPath, "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbConn, err := db.Open(ctx, cfg.DatabaseType, cfg.DatabaseURL)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "type", cfg.DatabaseType, "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// Create schema (tables)
	if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Database schema ready", "type", cfg.DatabaseType)

	if cfg.AdminKey == "" {
		slog.Warn("ADMIN_KEY not set; GET /predictions is disabled")
	}

	store := db.NewStore(dbConn, cfg.DatabaseType)
	mux := router.NewRouter(cfg, store, pred, formDefaults, metrics)

	server := http.Server{
		Handler:           mux,
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed")
	}
}
