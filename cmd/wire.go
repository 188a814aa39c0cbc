package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/bnema/tradebot/internal/adapters/httpapi"
	"github.com/bnema/tradebot/internal/adapters/ledger"
	statusadapter "github.com/bnema/tradebot/internal/adapters/render/status"
	tomlrepo "github.com/bnema/tradebot/internal/adapters/repo/toml"
	chainstore "github.com/bnema/tradebot/internal/adapters/secrets/chain"
	"github.com/bnema/tradebot/internal/adapters/steam"
	"github.com/bnema/tradebot/internal/application"
	"github.com/bnema/tradebot/internal/config"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/logging"
	"github.com/bnema/tradebot/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const secretsDir = "secrets"

// app holds what every command needs without touching the platform.
type app struct {
	settings       *viper.Viper
	repo           *tomlrepo.Repository
	secretStore    ports.SecretStore
	statusRenderer func([]domain.TradeProposal, statusadapter.RenderOptions) (string, error)
	now            func() time.Time
}

func wireApp() (*app, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	settings, err := config.New(homeDir)
	if err != nil {
		return nil, fmt.Errorf("wire config: %w", err)
	}

	repo, err := tomlrepo.NewRepository(settings)
	if err != nil {
		return nil, fmt.Errorf("wire proposal repository: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, ".tradebot", secretsDir))
	if err != nil {
		return nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return &app{
		settings:       settings,
		repo:           repo,
		secretStore:    secretStore,
		statusRenderer: statusadapter.Render,
		now:            time.Now,
	}, nil
}

// runtime is the full coordinator, built only by commands that talk to the
// platform or the ledger.
type runtime struct {
	cfg    config.Config
	logger *zap.Logger

	session       *application.SessionManager
	confirmations *application.ConfirmationHandler
	tracker       *application.Tracker
	dispatcher    *application.Dispatcher
	server        *httpapi.Server
}

func (a *app) buildRuntime(ctx context.Context) (*runtime, error) {
	cfg, err := config.Load(ctx, a.settings, a.secretStore)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Development)
	if err != nil {
		return nil, fmt.Errorf("wire logger: %w", err)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	metrics := application.NewMetrics(registry)

	steamCfg := steam.Config{
		CommunityURL:      cfg.Steam.CommunityURL,
		WebAPIURL:         cfg.Steam.WebAPIURL,
		APIKey:            cfg.Steam.APIKey,
		HTTPClient:        &http.Client{},
		RequestsPerSecond: cfg.Steam.RequestsPerSecond,
		Burst:             cfg.Steam.Burst,
	}

	// Logon runs before any session exists, so the authenticator gets its
	// own client.
	auth := steam.NewAuthenticator(steam.NewClient(steamCfg, nil))
	clock := application.NewPlatformClock(ports.SystemClock{})
	session := application.NewSessionManager(auth, application.SessionConfig{
		Credentials:     cfg.Credentials,
		RefreshInterval: cfg.Session.RefreshInterval,
		GuardCode:       steam.GuardCode,
	}, clock, metrics, logger.Named("session"))

	client := steam.NewClient(steamCfg, session)
	offers := steam.NewTradeOffers(client)
	inventories := steam.NewInventories(client)
	confirmer := steam.NewConfirmer(client, cfg.Credentials.IdentitySecret, clock)
	ledgerClient := ledger.NewClient(cfg.Ledger.URL, &http.Client{}, cfg.Ledger.Timeout)

	settings := application.TradeSettings{
		Brand:     cfg.Trade.Brand,
		AppID:     cfg.Trade.AppID,
		ContextID: cfg.Trade.ContextID,
	}

	confirmations := application.NewConfirmationHandler(confirmer, a.repo, ledgerClient, clock, metrics, logger.Named("confirmations"))
	builder := application.NewProposalBuilder(offers, a.repo, confirmations, settings, clock, metrics, logger.Named("builder"))
	gateway := application.NewGateway(offers, ledgerClient, a.repo, confirmations, clock, metrics, logger.Named("gateway"))
	tracker := application.NewTracker(offers, a.repo, ledgerClient, gateway, confirmations, application.TrackerConfig{
		PollInterval:     cfg.Tracker.PollInterval,
		RenotifyAttempts: cfg.Tracker.RenotifyAttempts,
	}, clock, metrics, logger.Named("tracker"))
	dispatcher := application.NewDispatcher(cfg.Tracker.Workers, tracker.HandleEvent, metrics, logger.Named("dispatcher"))
	queries := application.NewProposalQueries(offers, a.repo, logger.Named("queries"))
	inventory := application.NewInventoryService(inventories, session, settings)

	server := httpapi.NewServer(httpapi.Services{
		Session:       session,
		Proposals:     builder,
		Inventory:     inventory,
		Queries:       queries,
		Confirmations: confirmations,
	}, registry, clock, logger.Named("http"))

	return &runtime{
		cfg:           cfg,
		logger:        logger,
		session:       session,
		confirmations: confirmations,
		tracker:       tracker,
		dispatcher:    dispatcher,
		server:        server,
	}, nil
}
