package main

import (
	"NewBostonBank/internal/adapters/eventbus"
	"NewBostonBank/internal/adapters/memory"
	"NewBostonBank/internal/adapters/postgres"
	"NewBostonBank/internal/adapters/rest"
	"NewBostonBank/internal/core/domain"
	"NewBostonBank/internal/core/ports"
	"NewBostonBank/internal/core/services"
	"NewBostonBank/internal/shared/config"
	"NewBostonBank/internal/shared/logger"
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
)

func main() {
	// 1. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("FATAL: Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// 2. Initialize Logger
	baseLogger := logger.New(cfg.AppEnv == "dev")
	baseLogger.Info().
		Str("app_env", cfg.AppEnv).
		Str("data_source", cfg.DataSource).
		Str("http_addr", cfg.HTTP.Addr).
		Bool("seed_banks", cfg.SeedBanks).
		Msg("Configuration loaded")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Initialize the data source
	dataSource, closeDataSource, err := newDataSource(ctx, cfg, &baseLogger)
	if err != nil {
		baseLogger.Fatal().Err(err).Msg("Failed to initialize data source")
	}
	defer closeDataSource()

	// 4. Event bus with an audit subscriber
	bus := eventbus.NewInMemoryEventBus(&baseLogger)
	audit := newAuditHandler(&baseLogger)
	for _, topic := range []string{ports.TopicBankCreated, ports.TopicBankUpdated, ports.TopicBankDeleted} {
		bus.Subscribe(topic, audit)
	}

	// 5. Service and HTTP server
	bankSvc := services.NewBankService(dataSource, bus, &baseLogger)

	srv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           rest.NewRouter(bankSvc, &baseLogger),
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		baseLogger.Info().Str("addr", srv.Addr).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		baseLogger.Info().Msg("Shutdown signal received")
	case err := <-serverErr:
		if err != nil {
			baseLogger.Error().Err(err).Msg("HTTP server failed")
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		// Handlers may still be publishing; draining now would race with them.
		baseLogger.Error().Err(err).Msg("HTTP server shutdown error; skipping event drain")
		return
	}

	if err := bus.Drain(shutdownCtx); err != nil {
		baseLogger.Error().Err(err).Msg("Event drain incomplete")
		return
	}
	baseLogger.Info().Msg("Shutdown complete")
}

// newDataSource builds the configured bank data source and its cleanup func.
func newDataSource(ctx context.Context, cfg *config.Config, baseLogger *zerolog.Logger) (ports.BankDataSource, func(), error) {
	var seed []domain.Bank
	if cfg.SeedBanks {
		seed = domain.DefaultBanks()
	}

	switch cfg.DataSource {
	case config.DataSourcePostgres:
		db, err := postgres.NewDB(ctx, cfg.Postgres.URL, baseLogger)
		if err != nil {
			return nil, nil, err
		}
		if err := db.Migrate(ctx); err != nil {
			db.Close()
			return nil, nil, err
		}

		repo := postgres.NewBankRepository(db, baseLogger)
		created, err := services.Seed(ctx, repo, seed)
		if err != nil {
			db.Close()
			return nil, nil, err
		}
		baseLogger.Info().Int("created", created).Msg("Bank seed applied")
		return repo, db.Close, nil

	default:
		return memory.NewBankDataSource(seed, baseLogger), func() {}, nil
	}
}

// newAuditHandler logs one line per bank mutation.
func newAuditHandler(baseLogger *zerolog.Logger) ports.EventHandler {
	log := baseLogger.With().Str("component", "bank_audit").Logger()
	return func(ctx context.Context, event ports.Event) error {
		bank, ok := event.Data.(domain.Bank)
		if !ok {
			return fmt.Errorf("unexpected payload %T on %s", event.Data, event.Topic)
		}
		log.Info().
			Str("event_id", event.ID.String()).
			Str("topic", event.Topic).
			Time("occurred_at", event.OccurredAt).
			Str("account_number", bank.AccountNumber).
			Msg("Bank changed")
		return nil
	}
}
