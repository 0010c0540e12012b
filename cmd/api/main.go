package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/studionexa/dance-orchestrator/internal/api/router"
	"github.com/studionexa/dance-orchestrator/internal/config"
	"github.com/studionexa/dance-orchestrator/internal/dialog"
	"github.com/studionexa/dance-orchestrator/internal/leads"
	"github.com/studionexa/dance-orchestrator/internal/notify"
	"github.com/studionexa/dance-orchestrator/internal/observability/metrics"
	"github.com/studionexa/dance-orchestrator/internal/webchat"
	"github.com/studionexa/dance-orchestrator/pkg/logging"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	log := logging.New(cfg.LogLevel)

	ctx := context.Background()

	var store dialog.SessionStore
	if cfg.SessionBackend == "redis" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		err := client.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Error("redis unavailable, falling back to in-memory sessions", "addr", cfg.RedisAddr, "error", err)
		} else {
			store = dialog.NewRedisStore(client, cfg.SessionTTL)
			log.Info("session store: redis", "addr", cfg.RedisAddr, "ttl", cfg.SessionTTL.String())
		}
	}
	if store == nil {
		store = dialog.NewMemoryStore()
		log.Info("session store: memory")
	}

	var repo leads.Repository = leads.NewMemoryRepository()
	if cfg.DatabaseURL != "" {
		pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Error("database unavailable, keeping leads in memory", "error", err)
		} else {
			defer pool.Close()
			repo = leads.NewPostgresRepository(pool)
			log.Info("lead repository: postgres")
		}
	}

	m := metrics.New(prometheus.DefaultRegisterer)
	notifier := notify.NewWebhookNotifier(cfg.LeadWebhookURL, log)
	emitter := leads.NewEmitter(cfg.LeadLogPath, repo, notifier, m, log)
	events := dialog.NewEventLogger(cfg.TurnLogPath, log)

	engine := dialog.NewEngine(dialog.Options{
		Store:          store,
		Emitter:        emitter,
		Metrics:        m,
		Logger:         log,
		Events:         events,
		Version:        cfg.ProductVersion,
		QuickActions:   cfg.QuickActions,
		RentLegacyFlow: cfg.RentLegacyFlow,
	})

	handler := router.New(&router.Config{
		Logger:             log,
		DialogHandler:      dialog.NewHandler(engine, cfg.StrictInput, cfg.DefaultTenant, log),
		LeadsHandler:       leads.NewHandler(repo, log),
		WebchatHandler:     webchat.NewHandler(engine, cfg.DefaultTenant, log),
		MetricsHandler:     promhttp.Handler(),
		AdminAuthSecret:    cfg.AdminJWTSecret,
		CORSAllowedOrigins: cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.Port, "env", cfg.Env, "version", cfg.ProductVersion)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err)
	}
}
