package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"spendtrack/internal/amqp"
	"spendtrack/internal/config"
	apphttp "spendtrack/internal/http"
	applog "spendtrack/internal/log"
	"spendtrack/internal/storage"
	"spendtrack/internal/store"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.DefaultConfig())
	applog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}

	var records store.Store
	switch cfg.DataBackend {
	case "sqlite":
		archive, err := storage.NewSQLiteArchive(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to open SQLite archive", applog.FieldError, err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer archive.Close()
		records = archive
		logger.Info("Initialized sqlite backend", applog.FieldBackend, cfg.DataBackend, "path", cfg.SQLiteDBPath)
	default:
		if cfg.SeedDemoData {
			records = store.NewSeeded()
		} else {
			records = store.NewMemory()
		}
		logger.Info("Initialized memory backend", applog.FieldBackend, cfg.DataBackend, "seeded", cfg.SeedDemoData)
	}

	// Event stream is optional; without it expenses stay process-local
	var events apphttp.EventPublisher
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Warn("Failed to initialize AMQP client, continuing without event stream", applog.FieldError, err)
		} else {
			defer client.Close()
			events = client
			logger.Info("Initialized AMQP event stream",
				"exchange", cfg.AMQPExchange,
				"queue", cfg.AMQPQueue)
		}
	}

	srv := apphttp.NewServer(":"+cfg.Port, records, events, apphttp.Options{
		TrendMonths: cfg.TrendMonths,
		CacheTTL:    cfg.SummaryCacheTTL,
	})

	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 10 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		sig := <-sigChan
		logger.Info("Shutdown signal received", "signal", sig.String())

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("Server shutdown error", applog.FieldError, err)
		}
		cancel()
	}()

	logger.Info("Starting spendtrack server", "port", cfg.Port, applog.FieldBackend, cfg.DataBackend)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Error("Server error", applog.FieldError, err, "port", cfg.Port)
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("Server stopped gracefully")
}
