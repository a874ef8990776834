// Package main is the entrypoint for the contactd API server.
package main

import (
	"context"
	"log/slog"
	"net/url"
	"os"
	"regexp"
	"strings"

	"github.com/contactd/contactd/internal/config"
	"github.com/contactd/contactd/internal/events"
	"github.com/contactd/contactd/internal/handler"
	"github.com/contactd/contactd/internal/metrics"
	"github.com/contactd/contactd/internal/repository"
	"github.com/contactd/contactd/internal/server"
	"github.com/contactd/contactd/internal/service"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	logger := initLogger(cfg)
	if cfg.IsProduction() && cfg.DatabaseURL == "" && cfg.DBSSLMode == "disable" {
		logger.Warn("database TLS disabled in production", "db_host", cfg.DBHost)
	}

	dsn := cfg.DSN()
	repo, err := repository.New(ctx, repository.PoolConfig{
		DatabaseURL: dsn,
		MinConns:    cfg.DBPoolMin,
		MaxConns:    cfg.DBPoolMax,
	})
	if err != nil {
		logger.Error("failed to connect to database",
			slog.String("error", sanitizeError(err, dsn)),
			slog.String("database_url", redactURL(dsn)),
		)
		os.Exit(1)
	}

	if err := repo.EnsureSchema(ctx); err != nil {
		logger.Error("failed to initialize schema", slog.String("error", sanitizeError(err, dsn)))
		repo.Close()
		os.Exit(1)
	}
	logger.Info("database_ready",
		"pool_min", cfg.DBPoolMin,
		"pool_max", cfg.DBPoolMax,
	)

	recorder := metrics.NewInMemory()

	// Event publishing is optional; both stay nil interfaces when disabled.
	var publisher service.EventPublisher
	var eventsHealth handler.HealthChecker
	var pub *events.Publisher
	if cfg.RedisURL != "" {
		client, err := events.Connect(ctx, cfg.RedisURL)
		if err != nil {
			logger.Error("failed to connect to Redis",
				slog.String("error", sanitizeError(err, cfg.RedisURL)),
				slog.String("redis_url", redactURL(cfg.RedisURL)),
			)
			repo.Close()
			os.Exit(1)
		}
		pub = events.NewPublisher(client, logger.With("component", "events"), recorder)
		publisher = pub
		eventsHealth = pub
		logger.Info("event_stream_enabled", "stream", events.StreamKey)
	}

	contactService := service.NewContactService(repo, publisher, recorder)

	router := handler.NewRouter(handler.RouterConfig{
		Contacts:       contactService,
		Health:         handler.NewHealthHandler(repo, eventsHealth, logger.With("component", "health")),
		Metrics:        handler.NewMetricsHandler(recorder),
		Logger:         logger,
		AllowedOrigins: cfg.AllowedOrigins(),
		IsDevelopment:  cfg.IsDevelopment(),
		MaxBodySize:    cfg.MaxRequestBodySize,
	})

	srv := server.New(router, server.Options{
		Port:            cfg.AppPort,
		ReadTimeout:     cfg.ReadTimeout,
		WriteTimeout:    cfg.WriteTimeout,
		ShutdownTimeout: cfg.ShutdownTimeout,
	}, logger)

	// Registered first so it closes last, after the publisher.
	srv.OnShutdown("postgres", func(ctx context.Context) error {
		repo.Close()
		return nil
	})
	if pub != nil {
		srv.OnShutdown("redis", func(ctx context.Context) error {
			return pub.Close()
		})
	}

	logger.Info("starting server",
		"port", cfg.AppPort,
		"env", cfg.AppEnv,
		"cors_origin", cfg.CORSAllowedOrigin,
	)

	if err := srv.Run(ctx); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}

// initLogger initializes the slog logger based on configuration.
func initLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLogLevel(cfg.LogLevel)}

	var h slog.Handler
	if cfg.LogFormat == "json" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	} else {
		h = slog.NewTextHandler(os.Stdout, opts)
	}

	logger := slog.New(h).With("service", "contactd")
	slog.SetDefault(logger)
	return logger
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

var passwordPattern = regexp.MustCompile(`(?i)password=[^\s&]+`)

// redactURL strips the password from a connection URL for logging.
func redactURL(raw string) string {
	if raw == "" {
		return ""
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return "[redacted]"
	}

	if parsed.User != nil {
		if _, hasPassword := parsed.User.Password(); hasPassword {
			parsed.User = url.UserPassword(parsed.User.Username(), "redacted")
		}
	}

	return parsed.String()
}

// sanitizeError replaces any secret-bearing URLs echoed in err.
func sanitizeError(err error, secrets ...string) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	for _, secret := range secrets {
		if secret == "" {
			continue
		}
		msg = strings.ReplaceAll(msg, secret, redactURL(secret))
	}

	return passwordPattern.ReplaceAllString(msg, "password=redacted")
}
