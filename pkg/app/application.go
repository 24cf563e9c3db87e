package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"tavolo/pkg/config"
	"tavolo/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

// Handler registers its routes on an httprouter instance.
type Handler interface {
	RegisterRoutes(router *httprouter.Router)
}

type Application struct {
	cfg    *config.Config
	server *http.Server
}

func NewApplication(cfg *config.Config) *Application {
	return &Application{cfg: cfg}
}

// SetApp wires the health and application handlers behind their middleware
// chains. Health endpoints get only recovery and logging so probes stay
// cheap; everything else gets the full stack.
func (a *Application) SetApp(healthHandler, appHandler Handler) {
	cfg := a.cfg

	healthRouter := httprouter.New()
	healthHandler.RegisterRoutes(healthRouter)
	var healthHTTP http.Handler = healthRouter
	healthHTTP = middleware.RequestLogging(cfg.Log)(healthHTTP)
	healthHTTP = middleware.Recovery(cfg.Log)(healthHTTP)

	appRouter := httprouter.New()
	appHandler.RegisterRoutes(appRouter)
	var appHTTP http.Handler = appRouter
	appHTTP = middleware.RequestTimeout(cfg.RequestTimeout)(appHTTP)
	appHTTP = middleware.ContentTypeValidation(cfg.Log)(appHTTP)
	appHTTP = middleware.MaxRequestSize(int64(cfg.MaxRequestSize))(appHTTP)
	appHTTP = middleware.RequestLogging(cfg.Log)(appHTTP)
	appHTTP = middleware.Recovery(cfg.Log)(appHTTP)

	mux := http.NewServeMux()
	mux.Handle("/health", healthHTTP)
	mux.Handle("/ready", healthHTTP)
	mux.Handle("/", appHTTP)

	a.server = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}

	cfg.Log.Info("HTTP server configured", "port", cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.cfg.Log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		a.cfg.Log.Fatal("HTTP server failed", "error", err)

	case sig := <-shutdown:
		a.cfg.Log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.cfg.Log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.cfg.Log.Fatal("Could not stop server gracefully", "error", err)
		}
	}

	a.cfg.Log.Info("Server stopped gracefully")
}
