package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/designerscolony/colony/internal/rest"
	"github.com/designerscolony/colony/internal/setup"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Initialize application with required dependencies
	app, err := setup.InitializeApp(ctx)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}
	defer app.Cleanup()

	// Create server
	handler, err := rest.NewServer(app.DB, app.KV, app.Config, app.Logger)
	if err != nil {
		app.Logger.Fatal("Failed to create REST server", zap.Error(err))
	}

	addr := fmt.Sprintf("%s:%d", app.Config.API.Host, app.Config.API.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
		ReadTimeout:  time.Duration(app.Config.API.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(app.Config.API.WriteTimeout) * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.Logger.Info("API server started", zap.String("addr", addr))

		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}

		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		app.Logger.Info("Shutting down API server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(),
			time.Duration(app.Config.API.ShutdownTimeout)*time.Second)
		defer cancel()

		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		app.Logger.Error("Server error", zap.Error(err))

		return
	}

	app.Logger.Info("Server gracefully stopped")
}
