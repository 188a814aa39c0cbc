package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix  = "TRADEBOT"
	configDir  = ".tradebot"
	configName = "config"
	configType = "toml"

	// SecretKeyPrefix namespaces the secrets `tradebot secret set` writes.
	SecretKeyPrefix = "tradebot/"
)

const (
	KeyAccountName    = "steam.account_name"
	KeyPassword       = "steam.password"
	KeySharedSecret   = "steam.shared_secret"
	KeyIdentitySecret = "steam.identity_secret"
	KeyAPIKey         = "steam.api_key"
	KeyCommunityURL   = "steam.community_url"
	KeyWebAPIURL      = "steam.web_api_url"
	KeyRequestsPerSec = "steam.requests_per_second"
	KeyRequestBurst   = "steam.burst"

	KeyHTTPAddr = "http.addr"
	KeyHTTPPort = "http.port"

	KeyLedgerURL     = "ledger.url"
	KeyLedgerTimeout = "ledger.timeout"

	KeyTradeBrand     = "trade.brand"
	KeyTradeAppID     = "trade.app_id"
	KeyTradeContextID = "trade.context_id"

	KeyPollInterval     = "tracker.poll_interval"
	KeyWorkers          = "tracker.workers"
	KeyRenotifyAttempts = "tracker.renotify_attempts"

	KeyRefreshInterval = "session.refresh_interval"

	KeyLogLevel       = "log.level"
	KeyLogDevelopment = "log.development"
)

// Secret names accepted by `tradebot secret set` and their config keys.
var SecretKeys = map[string]string{
	"password":        KeyPassword,
	"shared_secret":   KeySharedSecret,
	"identity_secret": KeyIdentitySecret,
	"api_key":         KeyAPIKey,
}

// Environment names the original bot deployment used.
var legacyEnv = map[string]string{
	KeyAccountName:    "STEAM_USERNAME",
	KeyPassword:       "STEAM_PASSWORD",
	KeySharedSecret:   "STEAM_SHARED_SECRET",
	KeyIdentitySecret: "IDENTITY_SECRET",
	KeyLedgerURL:      "API_URL",
	KeyHTTPPort:       "PORT",
}

type Config struct {
	Credentials domain.Credentials
	Steam       SteamConfig
	HTTP        HTTPConfig
	Ledger      LedgerConfig
	Trade       TradeConfig
	Tracker     TrackerConfig
	Session     SessionConfig
	Log         LogConfig
}

type SteamConfig struct {
	APIKey            string
	CommunityURL      string
	WebAPIURL         string
	RequestsPerSecond float64
	Burst             int
}

type HTTPConfig struct {
	Addr string
}

type LedgerConfig struct {
	URL     string
	Timeout time.Duration
}

type TradeConfig struct {
	Brand     string
	AppID     uint32
	ContextID string
}

type TrackerConfig struct {
	PollInterval     time.Duration
	Workers          int
	RenotifyAttempts int
}

type SessionConfig struct {
	RefreshInterval time.Duration
}

type LogConfig struct {
	Level       string
	Development bool
}

// New builds the viper instance every command reads from: defaults, then
// an optional config.toml under home/.tradebot, then the environment.
// A .env file in the working directory is loaded into the environment
// first and never overrides variables already set.
func New(home string) (*viper.Viper, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, legacy := range legacyEnv {
		if err := v.BindEnv(key, envPrefix+"_"+envName(key), legacy); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", legacy, err)
		}
	}

	if home != "" {
		v.SetConfigName(configName)
		v.SetConfigType(configType)
		v.AddConfigPath(filepath.Join(home, configDir))
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config file: %w", err)
			}
		}
	}

	return v, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyRequestsPerSec, 2.0)
	v.SetDefault(KeyRequestBurst, 4)
	v.SetDefault(KeyHTTPPort, "3001")
	v.SetDefault(KeyLedgerURL, "http://localhost:8000")
	v.SetDefault(KeyLedgerTimeout, 10*time.Second)
	v.SetDefault(KeyTradeBrand, "TradeBot")
	v.SetDefault(KeyTradeAppID, 730)
	v.SetDefault(KeyTradeContextID, "2")
	v.SetDefault(KeyPollInterval, 10*time.Second)
	v.SetDefault(KeyWorkers, 4)
	v.SetDefault(KeyRenotifyAttempts, 0)
	v.SetDefault(KeyRefreshInterval, 30*time.Minute)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogDevelopment, false)
}

func envName(key string) string {
	return strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Load reads every setting from v. Secrets left empty are looked up in the
// store, first under the key named by "<key>_ref" and then under the
// default tradebot/<name> key. A nil store skips the lookup.
func Load(ctx context.Context, v *viper.Viper, secrets ports.SecretStore) (Config, error) {
	if v == nil {
		v = viper.New()
		setDefaults(v)
	}

	resolved := map[string]string{}
	for name, key := range SecretKeys {
		value, err := resolveSecret(ctx, v, secrets, name, key)
		if err != nil {
			return Config{}, err
		}
		resolved[key] = value
	}

	addr := v.GetString(KeyHTTPAddr)
	if addr == "" {
		addr = ":" + v.GetString(KeyHTTPPort)
	}

	cfg := Config{
		Credentials: domain.Credentials{
			AccountName:    v.GetString(KeyAccountName),
			Password:       resolved[KeyPassword],
			SharedSecret:   resolved[KeySharedSecret],
			IdentitySecret: resolved[KeyIdentitySecret],
		},
		Steam: SteamConfig{
			APIKey:            resolved[KeyAPIKey],
			CommunityURL:      v.GetString(KeyCommunityURL),
			WebAPIURL:         v.GetString(KeyWebAPIURL),
			RequestsPerSecond: v.GetFloat64(KeyRequestsPerSec),
			Burst:             v.GetInt(KeyRequestBurst),
		},
		HTTP: HTTPConfig{Addr: addr},
		Ledger: LedgerConfig{
			URL:     strings.TrimRight(v.GetString(KeyLedgerURL), "/"),
			Timeout: v.GetDuration(KeyLedgerTimeout),
		},
		Trade: TradeConfig{
			Brand:     v.GetString(KeyTradeBrand),
			AppID:     v.GetUint32(KeyTradeAppID),
			ContextID: v.GetString(KeyTradeContextID),
		},
		Tracker: TrackerConfig{
			PollInterval:     v.GetDuration(KeyPollInterval),
			Workers:          v.GetInt(KeyWorkers),
			RenotifyAttempts: v.GetInt(KeyRenotifyAttempts),
		},
		Session: SessionConfig{RefreshInterval: v.GetDuration(KeyRefreshInterval)},
		Log: LogConfig{
			Level:       v.GetString(KeyLogLevel),
			Development: v.GetBool(KeyLogDevelopment),
		},
	}

	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func resolveSecret(ctx context.Context, v *viper.Viper, secrets ports.SecretStore, name, key string) (string, error) {
	if value := v.GetString(key); value != "" {
		return value, nil
	}
	if secrets == nil {
		return "", nil
	}

	ref := v.GetString(key + "_ref")
	explicit := ref != ""
	if !explicit {
		ref = SecretKeyPrefix + name
	}

	value, err := secrets.Get(ctx, ref)
	switch {
	case err == nil:
		return value, nil
	case errors.Is(err, domain.ErrSecretNotFound) && !explicit:
		return "", nil
	default:
		return "", fmt.Errorf("resolve %s from %q: %w", key, ref, err)
	}
}

func (c Config) validate() error {
	var errs []error
	if c.Ledger.URL == "" {
		errs = append(errs, errors.New("ledger url is required"))
	}
	if c.Tracker.PollInterval <= 0 {
		errs = append(errs, errors.New("tracker poll interval must be positive"))
	}
	if c.Tracker.Workers <= 0 {
		errs = append(errs, errors.New("tracker workers must be positive"))
	}
	if c.Tracker.RenotifyAttempts < 0 {
		errs = append(errs, errors.New("tracker renotify attempts must not be negative"))
	}
	if c.Steam.RequestsPerSecond < 0 {
		errs = append(errs, errors.New("steam requests per second must not be negative"))
	}
	return errors.Join(errs...)
}
