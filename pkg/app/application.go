package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"jumatrek/pkg/config"
	"jumatrek/pkg/contracts"
	"jumatrek/pkg/logger"
	"jumatrek/pkg/middleware"

	"github.com/julienschmidt/httprouter"
)

type shutdownHook struct {
	name string
	fn   func(context.Context) error
}

type Application struct {
	cfg           *config.Config
	log           *logger.Logger
	server        *http.Server
	healthHandler http.Handler
	appHandler    http.Handler
	hooks         []shutdownHook
}

func NewApplication(cfg *config.Config, log *logger.Logger) *Application {
	return &Application{cfg: cfg, log: log}
}

// SetApp wires health routes with a minimal middleware chain and every other
// route behind the full chain.
func (a *Application) SetApp(health contracts.Handler, handlers ...contracts.Handler) {
	a.setHealthHandler(health)
	a.setAppHandler(health, handlers)
	a.setAppServer()
}

// OnShutdown registers fn to run after the server stops accepting requests.
// Hooks run in registration order.
func (a *Application) OnShutdown(name string, fn func(context.Context) error) {
	a.hooks = append(a.hooks, shutdownHook{name: name, fn: fn})
}

// Handler exposes the top-level handler, mainly for tests.
func (a *Application) Handler() http.Handler {
	return a.server.Handler
}

func (a *Application) setHealthHandler(health contracts.Handler) {
	healthRouter := httprouter.New()
	health.RegisterRoutes(healthRouter)

	var healthHTTPHandler http.Handler = healthRouter
	healthHTTPHandler = middleware.RequestLogging(a.log)(healthHTTPHandler)
	healthHTTPHandler = middleware.Recovery(a.log)(healthHTTPHandler)
	a.healthHandler = healthHTTPHandler
	a.log.Info("Health endpoints configured with minimal middleware (Recovery + Logging only)")
}

func (a *Application) setAppHandler(health contracts.Handler, handlers []contracts.Handler) {
	appRouter := httprouter.New()
	health.RegisterRoutes(appRouter)
	for _, h := range handlers {
		h.RegisterRoutes(appRouter)
	}

	var appHTTPHandler http.Handler = appRouter
	appHTTPHandler = middleware.RequestTimeout(a.cfg.RequestTimeout)(appHTTPHandler)
	appHTTPHandler = middleware.ContentTypeValidation(a.log)(appHTTPHandler)
	appHTTPHandler = middleware.MaxRequestSize(int64(a.cfg.MaxRequestSize))(appHTTPHandler)
	appHTTPHandler = middleware.CORS(a.cfg.CORSOrigins)(appHTTPHandler)
	appHTTPHandler = middleware.RequestLogging(a.log)(appHTTPHandler)
	appHTTPHandler = middleware.Recovery(a.log)(appHTTPHandler)
	a.appHandler = appHTTPHandler
	a.log.Info("Application endpoints configured with full middleware stack", "handlers", len(handlers))
}

func (a *Application) setAppServer() {
	mux := http.NewServeMux()
	mux.Handle("/health", a.healthHandler)
	mux.Handle("/ready", a.healthHandler)
	mux.Handle("/", a.appHandler)

	a.server = &http.Server{
		Addr:         ":" + a.cfg.Port,
		Handler:      mux,
		ReadTimeout:  a.cfg.ReadTimeout,
		WriteTimeout: a.cfg.WriteTimeout,
		IdleTimeout:  a.cfg.IdleTimeout,
	}

	a.log.Info("HTTP server configured", "port", a.cfg.Port)
}

func (a *Application) Run() {
	serverErrors := make(chan error, 1)

	go func() {
		a.log.Info("Starting HTTP server", "address", a.server.Addr)
		serverErrors <- a.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			a.log.Fatal("HTTP server failed", "error", err)
		}

	case sig := <-shutdown:
		a.log.Info("Shutdown signal received", "signal", sig)
		a.gracefulShutdown()
	}
}

func (a *Application) gracefulShutdown() {
	a.log.Info("Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.log.Error("Server shutdown failed", "error", err)
		if err := a.server.Close(); err != nil {
			a.log.Error("Could not stop server gracefully", "error", err)
		}
	}

	a.runHooks(ctx)
	a.log.Info("Server stopped gracefully")
}

// runHooks keeps going past failing hooks so every resource gets a chance to
// release.
func (a *Application) runHooks(ctx context.Context) {
	for _, h := range a.hooks {
		if err := h.fn(ctx); err != nil {
			a.log.Error("Shutdown step failed", "step", h.name, "error", err)
			continue
		}
		a.log.Info("Shutdown step completed", "step", h.name)
	}
}
