package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/mmynk/tableround/internal/auth"
	"github.com/mmynk/tableround/internal/config"
	"github.com/mmynk/tableround/internal/dining"
	"github.com/mmynk/tableround/internal/metrics"
	"github.com/mmynk/tableround/internal/middleware"
	"github.com/mmynk/tableround/internal/service"
	"github.com/mmynk/tableround/internal/storage/sqlite"
	"github.com/mmynk/tableround/pkg/proto/protoconnect"
	"github.com/mmynk/tableround/pkg/logging"
)

func main() {
	configPath := flag.String("config", "", "path to the TOML config file (default $CONFIG_PATH or "+config.DefaultPath+")")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)
	logger := slog.Default()

	tokenTTL, err := cfg.TokenDuration()
	if err != nil {
		logger.Error("Invalid token TTL", "error", err)
		os.Exit(1)
	}

	store, err := sqlite.New(cfg.Database.Path)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	logger.Info("Storage initialized", "database", cfg.Database.Path)

	engine := dining.New(store, dining.WithLogger(logger))
	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, tokenTTL)
	authenticator := auth.NewPasswordAuthenticator(store)

	protected := connect.WithInterceptors(
		middleware.LoggingInterceptor(logger),
		middleware.RequireAuth(jwtManager),
	)
	public := connect.WithInterceptors(
		middleware.LoggingInterceptor(logger),
		middleware.OptionalAuth(jwtManager),
	)

	mux := http.NewServeMux()

	// Register Connect services
	mux.Handle(protoconnect.NewTableServiceHandler(service.NewTableService(engine, logger), protected))
	mux.Handle(protoconnect.NewOrderServiceHandler(service.NewOrderService(engine, logger), protected))
	mux.Handle(protoconnect.NewMenuServiceHandler(service.NewMenuService(engine, logger), protected))
	mux.Handle(protoconnect.NewAuthServiceHandler(
		service.NewAuthService(authenticator, store, jwtManager, logger),
		public,
	))

	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Add logging and CORS middleware
	handler := loggingMiddleware(logger, corsMiddleware(mux))

	// Wrap with h2c for HTTP/2 without TLS (required for Connect)
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           h2c.NewHandler(handler, &http2.Server{}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Connect server starting", "address", server.Addr, "url", fmt.Sprintf("http://localhost%s", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", "error", err)
	}
}

// loggingMiddleware logs all incoming requests
func loggingMiddleware(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		logger.Debug("Request received",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"user_agent", r.UserAgent(),
		)

		next.ServeHTTP(w, r)

		logger.Debug("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

// corsMiddleware adds CORS headers for browser access
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, Connect-Protocol-Version, Connect-Timeout-Ms")
		w.Header().Set("Access-Control-Expose-Headers",
			"Connect-Protocol-Version, Connect-Timeout-Ms, "+
				service.KindHeader+", "+service.CodeHeader+", "+service.PendingHeader)

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
