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

	"cinema-tickets/internal/account"
	"cinema-tickets/internal/config"
	"cinema-tickets/internal/database"
	"cinema-tickets/internal/handler"
	"cinema-tickets/internal/paymentgateway"
	"cinema-tickets/internal/repository"
	"cinema-tickets/internal/router"
	"cinema-tickets/internal/seatbooking"
	"cinema-tickets/internal/service"

	"github.com/rs/zerolog"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

const shutdownTimeout = 30 * time.Second

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting cinema tickets API server")

	// Cancelled on SIGINT or SIGTERM, which also aborts any start-up work still running.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool, logger); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	// The directory stays a nil interface when disabled so the gateway accepts any account.
	var directory account.Directory
	if cfg.Accounts.Enabled {
		dir, err := newAccountDirectory(ctx, cfg, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize account directory: %w", err)
		}
		defer dir.Close()
		directory = dir
	} else {
		logger.Info().Msg("account directory disabled, payments accepted for any account")
	}

	reservationRepo := repository.NewReservationRepository(pool, logger)
	paymentRepo := repository.NewPaymentRepository(pool, logger)

	// Third-party collaborators
	seatReservation := seatbooking.NewSeatReservationService(reservationRepo, logger)
	ticketPayment := paymentgateway.NewTicketPaymentService(paymentRepo, directory, logger)

	ticketService := service.NewTicketService(seatReservation, ticketPayment, logger)
	accountService := service.NewAccountService(reservationRepo, paymentRepo, logger)

	server := &http.Server{
		Addr: cfg.Server.Address(),
		Handler: router.New(
			handler.NewPurchaseHandler(ticketService, logger),
			handler.NewTicketTypeHandler(ticketService, logger),
			handler.NewAccountHandler(accountService, logger),
			cfg.Auth.APIKey,
			logger,
		),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return serve(ctx, server, logger)
}

// serve runs the server until ctx is cancelled, then drains in-flight requests.
func serve(ctx context.Context, server *http.Server, logger zerolog.Logger) error {
	serverErrors := make(chan error, 1)
	go func() {
		logger.Info().Str("address", server.Addr).Msg("HTTP server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- err
		}
	}()

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	logger.Info().Msg("shutdown signal received, draining requests")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed, closing connections")
		if closeErr := server.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close server")
		}
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	logger.Info().Msg("server shutdown completed")
	return nil
}

// newAccountDirectory loads the registered accounts, reading from S3 first when
// it is enabled and falling back to the local file system.
func newAccountDirectory(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (account.Directory, error) {
	fileLoader := account.NewFileLoader(logger)

	var s3Loader account.Loader
	s3Enabled := cfg.S3.Enabled
	if s3Enabled {
		loader, err := account.NewS3Loader(ctx, cfg.S3, logger)
		if err != nil {
			logger.Warn().
				Err(err).
				Msg("failed to initialise S3 loader, falling back to local file system only")
			s3Enabled = false
		} else {
			s3Loader = loader
		}
	} else {
		logger.Info().Msg("using local file system for account files (S3 disabled)")
	}

	loader := account.NewFallbackLoader(s3Loader, fileLoader, cfg.S3.Prefix, s3Enabled, logger)

	return account.NewDirectory(ctx, &account.DirectoryConfig{FilePaths: cfg.Accounts.FilePaths}, loader, logger)
}
