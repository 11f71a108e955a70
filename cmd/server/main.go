package main

import (
	"context"
	"errors"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/liveeditor/live-editor/internal/api"
	"github.com/liveeditor/live-editor/internal/config"
	"github.com/liveeditor/live-editor/internal/logging"
	"github.com/liveeditor/live-editor/internal/metrics"
	"github.com/liveeditor/live-editor/internal/ratelimiter"
)

func main() {
	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		// No logger yet; fall back to a production one to report the failure.
		zap.Must(zap.NewProduction()).Fatal("failed to load config", zap.Error(err))
	}

	logger, err := logging.New(cfg)
	if err != nil {
		zap.Must(zap.NewProduction()).Fatal("failed to build logger", zap.Error(err))
	}
	defer logger.Sync() //nolint:errcheck

	// ---- web application assets ----
	var webapp fs.FS
	if cfg.WebappDir != "" {
		info, err := os.Stat(cfg.WebappDir)
		if err != nil || !info.IsDir() {
			logger.Fatal("WEBAPP_DIR is not a readable directory",
				zap.String("dir", cfg.WebappDir), zap.Error(err))
		}
		webapp = os.DirFS(cfg.WebappDir)
		logger.Info("serving web application", zap.String("dir", cfg.WebappDir))
	}

	// ---- core dependencies ----
	reg := prometheus.NewRegistry()
	router := api.NewRouter(api.Options{
		HealthPath: cfg.HealthPath,
		Webapp:     webapp,
		Limiter:    ratelimiter.New(cfg.RateLimitRPS),
		Metrics:    metrics.New(reg),
		Gatherer:   reg,
		Logger:     logger,
	})

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorLog:     zap.NewStdLog(logger.Named("http")),
	}

	// Start server in a goroutine so it does not block the shutdown listener.
	go func() {
		logger.Info("server starting",
			zap.String("addr", srv.Addr),
			zap.String("health_path", cfg.HealthPath))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server error", zap.Error(err))
		}
	}()

	// ---- graceful shutdown ----
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	logger.Info("server stopped cleanly")
}
