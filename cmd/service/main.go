package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lifeverse/dm-frontend/internal/client/backend"
	"github.com/lifeverse/dm-frontend/internal/config"
	"github.com/lifeverse/dm-frontend/internal/infra"
	"github.com/lifeverse/dm-frontend/internal/rest"
)

func main() {
	cfg := config.MustLoad()
	logger := logger_lib.New(cfg.Logger.Host, cfg.Logger.Port, cfg.Service.Name, cfg.Platform.Env)

	// The gateway holds no session state of its own: tokens travel in
	// per-user cookies, so the backend client runs without a token store.
	authClient := backend.New(cfg, nil)
	defer authClient.Close()

	proxy, err := rest.NewProxy(cfg)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create proxy: %v", err))
		os.Exit(1)
	}

	handler := rest.New(authClient, cfg)

	router := chi.NewRouter()

	router.Use(func(next http.Handler) http.Handler {
		return infra.LoggerHTTP(next, logger)
	})
	router.Use(infra.MetricsHTTP)
	router.Use(infra.AuthInterceptorHTTP)

	router.Post("/auth/login", handler.Login)
	router.Post("/auth/logout", handler.Logout)
	router.Handle("/metrics", promhttp.Handler())
	router.Handle("/api/*", proxy)

	staticServer := http.FileServer(http.Dir("static"))
	router.Handle("/admin", infra.AdminGuardHTTP(staticServer))
	router.Handle("/admin/*", infra.AdminGuardHTTP(staticServer))
	router.NotFound(staticServer.ServeHTTP)

	httpServer := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Service.Port),
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server error: %v", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		return httpServer.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error(fmt.Sprintf("server error: %v", err))
	}
}
