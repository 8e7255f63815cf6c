package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"crm-backoffice/internal/config"
	"crm-backoffice/internal/domain"
	"crm-backoffice/internal/fixture"
	"crm-backoffice/internal/gateway"
	"crm-backoffice/internal/httpserver"
	"crm-backoffice/internal/seed"
)

func main() {
	cfg := config.FromEnv()
	logger := log.New(os.Stdout, "[api] ", log.LstdFlags|log.LUTC|log.Lshortfile)

	gw := gateway.New()
	if cfg.FixturePath != "" {
		n, err := fixture.LoadFile(gw, cfg.FixturePath)
		if err != nil {
			logger.Fatalf("load fixture %s: %v", cfg.FixturePath, err)
		}
		logger.Printf("loaded %d rows from %s", n, cfg.FixturePath)
	} else {
		if err := seed.Apply(gw); err != nil {
			logger.Fatalf("apply seed: %v", err)
		}
		logger.Printf("loaded built-in demo dataset")
	}

	auth := gateway.NewAuthenticator(cfg.AuthEmail, cfg.AuthPassword, cfg.JWTSecret, domain.User{
		ID:        "1",
		Email:     cfg.AuthEmail,
		FirstName: "Admin",
		Avatar:    "https://i.pravatar.cc/150?u=admin",
	})

	srv, err := httpserver.New(cfg.HTTPAddr, logger, httpserver.Deps{
		Gateway: gw,
		Auth:    auth,
	}, cfg.CORSOrigins)
	if err != nil {
		logger.Fatalf("init server: %v", err)
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Printf("starting http server on %s", cfg.HTTPAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-stopCh:
		logger.Printf("received signal %s, shutting down", sig)
	case err := <-serverErr:
		logger.Printf("server error: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Printf("graceful shutdown failed: %v", err)
	} else {
		logger.Printf("server stopped")
	}
}
