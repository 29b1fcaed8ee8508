// cmd/server/main.go
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"playroster/internal/admin"
	"playroster/internal/config"
	"playroster/internal/eventlog"
	"playroster/internal/httpserver"
	"playroster/internal/lifecycle"
	"playroster/internal/metrics"
	"playroster/internal/query"
	"playroster/internal/registry"
	"playroster/internal/roster"
	"playroster/internal/storage"
	"playroster/internal/telemetry"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.FromEnv()

	shutdownTracing, err := telemetry.Setup(ctx, "playroster", cfg.OTLPEndpoint)
	if err != nil {
		log.Fatalf("Failed to set up tracing: %v", err)
	}

	db, err := storage.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(ctx, db); err != nil {
		log.Fatalf("Failed to migrate schema: %v", err)
	}

	m := metrics.New()

	childStore := roster.NewPostgresStore(db)
	itemStore := registry.NewPostgresStore(db)
	logStore := eventlog.NewPostgresStore(db)
	adminStore := admin.NewPostgresStore(db)

	engine := lifecycle.NewEngine(childStore, itemStore, logStore, m, cfg.DayLocation)
	rosterSvc := roster.NewService(childStore, m)
	registrySvc := registry.NewService(itemStore)
	querySvc := query.NewService(childStore, logStore, cfg.DayLocation)
	adminSvc := admin.NewService(adminStore)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"message":"Backend is running"}`))
	})
	router.Handle("/metrics", promhttp.Handler())

	lifecycle.NewHandler(engine).Register(router)
	roster.NewHandler(rosterSvc).Register(router)
	registry.NewHandler(registrySvc).Register(router)
	query.NewHandler(querySvc).Register(router)
	admin.NewHandler(adminSvc).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Printf("playroster listening on %s", cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return shutdownTracing(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
