package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"confBooker/internal/config"
	"confBooker/internal/http-server/handlers/booking/cancel"
	"confBooker/internal/http-server/handlers/booking/getUserBookings"
	"confBooker/internal/http-server/handlers/booking/reserve"
	"confBooker/internal/http-server/handlers/conference/createConference"
	"confBooker/internal/http-server/handlers/conference/getAllConferences"
	"confBooker/internal/http-server/handlers/conference/getConference"
	"confBooker/internal/http-server/handlers/feedback/submitFeedback"
	"confBooker/internal/http-server/middleware/mwlogger"
	"confBooker/internal/ledger"
	"confBooker/internal/lib/logger/handlers/slogpretty"
	"confBooker/internal/lib/logger/sl"
	"confBooker/internal/payment"
	"confBooker/internal/storage"
	"confBooker/internal/storage/memory"
	"confBooker/internal/storage/postgres"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func main() {
	cfg := config.MustLoad()

	log := setupLogger(cfg.Env)

	log.Info("Starting conference booker", slog.String("env", cfg.Env))
	log.Debug("Debug messages are enabled")

	var (
		store  storage.Storage
		closer func() error
	)

	switch cfg.Storage {
	case "memory":
		store = memory.New()
		closer = func() error { return nil }
	default:
		pg, err := postgres.InitDB(&cfg.Database)
		if err != nil {
			log.Error("failed to init storage", sl.Err(err))
			os.Exit(1)
		}
		store = pg
		closer = pg.Close
	}

	gateway := payment.NewStubGateway(cfg.Payment.StubDelay)

	bookingLedger := ledger.New(log, store, gateway, ledger.Options{
		ChargeTimeout: cfg.Payment.ChargeTimeout,
	})

	router := chi.NewRouter()

	router.Use(middleware.RequestID)
	router.Use(mwlogger.New(log))
	router.Use(middleware.Recoverer)
	router.Use(middleware.URLFormat)

	router.Post("/conferences", createConference.New(log, store))
	router.Get("/conferences", getAllConferences.New(log, store))
	router.Get("/conferences/{id}", getConference.New(log, store, bookingLedger))
	router.Post("/conferences/{id}/reserve", reserve.New(log, bookingLedger))
	router.Post("/conferences/{id}/feedback", submitFeedback.New(log, bookingLedger))
	router.Post("/bookings/{id}/cancel", cancel.New(log, bookingLedger))
	router.Get("/users/{id}/bookings", getUserBookings.New(log, store))

	log.Info("starting server", slog.String("address", cfg.HTTPServer.Address))

	srv := &http.Server{
		Addr:         cfg.HTTPServer.Address,
		Handler:      router,
		ReadTimeout:  cfg.HTTPServer.Timeout,
		WriteTimeout: cfg.HTTPServer.Timeout,
		IdleTimeout:  cfg.HTTPServer.IdleTimeout,
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGTERM, syscall.SIGINT, os.Interrupt)

	janitorQuit := make(chan struct{})

	go func() {
		ticker := time.NewTicker(cfg.Janitor.Interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				failed, err := store.FailStalePending(context.Background(), cfg.Janitor.PendingMaxAge)
				if err != nil {
					log.Error("failed to clean up stale pending bookings", sl.Err(err))
					continue
				}
				if failed > 0 {
					log.Warn("stale pending bookings failed", slog.Int64("count", failed))
				}
			case <-janitorQuit:
				return
			}
		}
	}()

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("failed to start server", sl.Err(err))
			stop <- syscall.SIGTERM
		}
	}()

	sign := <-stop
	close(janitorQuit)

	log.Info("application stopping", slog.String("signal", sign.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("failed to shutdown server", sl.Err(err))
	}

	log.Info("application stopped")

	if err := closer(); err != nil {
		log.Error("failed to close storage", sl.Err(err))
	}

	log.Info("storage closed")
}

func setupLogger(env string) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal:
		log = setupPrettySlog()
	case envDev:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envProd:
		log = slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}

	return log
}

func setupPrettySlog() *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	h := opts.NewPrettyHandler(os.Stdout)

	return slog.New(h)
}
