package main

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"resumebuilder/internal/config"
	"resumebuilder/internal/database"
	"resumebuilder/internal/database/migration"
	"resumebuilder/internal/form"
	handlers "resumebuilder/internal/http/handler"
	"resumebuilder/internal/http/middleware"
	"resumebuilder/internal/otel"
	"resumebuilder/internal/render"
	"resumebuilder/internal/repository/postgres"
	"resumebuilder/internal/service"
	"resumebuilder/internal/storage"
)

// @title Resume Builder API
// @version 1.0
// @BasePath /
func main() {
	cfg := config.Load()
	loc := cfg.Location()

	logger := newLogger(loc)
	slog.SetDefault(logger)

	ctx := context.Background()
	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		fatal(logger, "failed to initialize tracing", err)
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	theme, err := render.LoadTheme(cfg.Render.ThemeFile)
	if err != nil {
		fatal(logger, "failed to load render theme", err)
	}
	renderer := render.NewRenderer(
		render.WithTheme(theme),
		render.WithCompression(cfg.Render.Compress),
	)

	metrics, err := service.NewMetrics(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(logger, "failed to register render metrics", err)
	}
	opts := []service.Option{service.WithMetrics(metrics), service.WithLogger(logger)}

	var db *sql.DB
	if cfg.Export.Enabled {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			fatal(logger, "failed to connect to database", err)
		}
		defer db.Close()
		if err := database.RegisterStats(prometheus.DefaultRegisterer, db); err != nil {
			fatal(logger, "failed to register database metrics", err)
		}

		mctx, cancel := context.WithTimeout(ctx, 30*time.Second)
		err = migration.EnsureMigrated(mctx, db, loc, cfg.Database.Host)
		cancel()
		if err != nil {
			fatal(logger, "failed to migrate database", err)
		}

		objStore, err := storage.NewMinIO(cfg.MinIO)
		if err != nil {
			fatal(logger, "failed to initialize object storage", err)
		}
		opts = append(opts, service.WithExports(objStore, postgres.NewExportPostgres(db), cfg.Export.URLExpiry))
	}
	resumeSvc := service.NewResumeService(renderer, opts...)

	formStore, closeStore := newFormStore(ctx, cfg, logger)
	defer closeStore()
	formSvc := service.NewFormService(formStore, resumeSvc)

	promMiddleware, err := middleware.NewPrometheusMiddleware(prometheus.DefaultRegisterer)
	if err != nil {
		fatal(logger, "failed to register http metrics", err)
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
	})

	app.Use(otelfiber.Middleware(otelfiber.WithNext(func(c *fiber.Ctx) bool {
		return c.Path() == "/metrics" || strings.HasPrefix(c.Path(), "/health")
	})))
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(loc))
	app.Use(promMiddleware.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	handlers.RegisterRoutes(app, db, handlers.Services{
		Resumes: resumeSvc,
		Forms:   formSvc,
		Exports: cfg.Export.Enabled,
	})

	app.Get("/swagger/*", handlers.SwaggerUI(cfg.AppHost))

	go func() {
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
		<-sig
		logger.Info("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
		}
	}()

	logger.Info("server starting",
		slog.String("addr", ":"+cfg.Port),
		slog.Bool("exports_enabled", cfg.Export.Enabled),
		slog.Bool("redis_sessions", cfg.Redis.Addr != ""),
	)
	if err := app.Listen(":" + cfg.Port); err != nil {
		fatal(logger, "failed to start server", err)
	}
}

func newLogger(loc *time.Location) *slog.Logger {
	return slog.New(middleware.NewLogHandler(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.String("ts", a.Value.Time().In(loc).Format(time.RFC3339Nano))
			}
			return a
		},
	})))
}

// newFormStore uses Redis when REDIS_ADDR is set, process memory otherwise.
func newFormStore(ctx context.Context, cfg *config.AppConfig, logger *slog.Logger) (form.Store, func()) {
	if cfg.Redis.Addr == "" {
		return form.NewMemoryStore(cfg.Form.SessionTTL), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	pctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pctx).Err(); err != nil {
		fatal(logger, "failed to connect to redis", err)
	}
	return form.NewRedisStore(client, cfg.Form.SessionTTL), func() { _ = client.Close() }
}

func fatal(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, slog.String("error", err.Error()))
	os.Exit(1)
}
