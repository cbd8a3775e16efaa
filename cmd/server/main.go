package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"portfolio-twin/internal/bootstrap"
	"portfolio-twin/internal/config"
	"portfolio-twin/internal/logger"
	httptransport "portfolio-twin/internal/transport/http"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: load .env failed, using process environment only: %v", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config failed: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := bootstrap.New(ctx, cfg, zl)
	if err != nil {
		zl.Fatal("bootstrap failed", zap.Error(err))
	}
	defer func() {
		if err := app.Close(); err != nil {
			zl.Warn("close resources failed", zap.Error(err))
		}
	}()

	router := httptransport.NewRouter(app)
	server := &http.Server{
		Addr:              cfg.HTTPAddr(),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		zl.Info("server starting",
			zap.String("addr", server.Addr),
			zap.String("env", cfg.App.Env),
			zap.String("db_driver", cfg.Database.Driver),
			zap.String("mail_mode", cfg.Mail.Mode),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		zl.Info("shutdown signal received")
	case err, ok := <-serveErr:
		if ok {
			zl.Error("server failed", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zl.Warn("server shutdown failed", zap.Error(err))
	}
}
