package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/DukeRupert/chatform/internal"
	"github.com/DukeRupert/chatform/internal/handler"
	"github.com/DukeRupert/chatform/internal/metrics"
	"github.com/DukeRupert/chatform/internal/middleware"
)

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg)

	isSecure := !cfg.IsDevelopment()

	// Rate limiters evict expired windows until ctx is cancelled
	submitLimiter := middleware.NewRateLimiter(cfg.SubmitRateLimit, cfg.RateLimitWindow)
	validateLimiter := middleware.NewRateLimiter(cfg.ValidateRateLimit, cfg.RateLimitWindow)
	go submitLimiter.Run(ctx)
	go validateLimiter.Run(ctx)

	// Initialize middleware
	loggingMw := middleware.NewRequestLoggingMiddleware(logger, cfg.TrustProxy)
	securityMw := middleware.NewSecurityHeadersMiddleware(isSecure)

	// Initialize handlers
	registerHandler := handler.NewRegisterHandler(logger, cfg.ChatPath, isSecure)

	// ==========================================================================
	// Create router and register routes
	// ==========================================================================

	mux := http.NewServeMux()

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	if cfg.MetricsEnabled {
		metricsAuth := middleware.BasicAuth("metrics", cfg.MetricsUsername, cfg.MetricsPassword)
		mux.Handle("GET /metrics", metricsAuth(promhttp.Handler()))
		if cfg.MetricsUsername == "" && cfg.MetricsPassword == "" {
			logger.Warn("Metrics endpoint is unprotected")
		}
	}

	// Registration form and chat view
	registerHandler.RegisterRoutes(mux,
		submitLimiter.Limit(logger, cfg.TrustProxy),
		validateLimiter.Limit(logger, cfg.TrustProxy),
	)

	// Outermost first: the request ID must exist before anything logs
	stack := middleware.Stack(
		middleware.RequestID,
		metrics.Middleware(metrics.NewRoutes(cfg.ChatPath)),
		loggingMw.Handler,
		securityMw.Handler,
	)

	// ==========================================================================
	// Start server
	// ==========================================================================

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           stack(mux),
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
	}

	// Channel to listen for interrupt signals
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		logger.Info("Server started", "address", server.Addr, "env", cfg.Env, "chat_path", cfg.ChatPath)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	// Wait for interrupt signal or a listener failure
	select {
	case <-sigChan:
		logger.Info("Shutdown signal received, initiating graceful shutdown...")
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Graceful shutdown complete")
	return nil
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
