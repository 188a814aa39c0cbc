package application

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

const defaultRefreshInterval = 30 * time.Minute

// GuardCodeFunc derives the current two-factor login code from a shared secret.
type GuardCodeFunc func(sharedSecret string, at time.Time) (string, error)

type SessionConfig struct {
	Credentials     domain.Credentials
	RefreshInterval time.Duration
	GuardCode       GuardCodeFunc
}

// SessionManager owns the one platform session of the process. Readers get
// the latest snapshot through Current; every change goes through apply.
type SessionManager struct {
	auth    ports.Authenticator
	cfg     SessionConfig
	clock   *PlatformClock
	metrics *Metrics
	logger  *zap.Logger

	mu        sync.Mutex
	current   atomic.Pointer[domain.WebSession]
	connected atomic.Bool
}

var _ ports.SessionSource = (*SessionManager)(nil)

func NewSessionManager(auth ports.Authenticator, cfg SessionConfig, clock *PlatformClock, metrics *Metrics, logger *zap.Logger) *SessionManager {
	if cfg.RefreshInterval <= 0 {
		cfg.RefreshInterval = defaultRefreshInterval
	}
	if clock == nil {
		clock = NewPlatformClock(nil)
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &SessionManager{auth: auth, cfg: cfg, clock: clock, metrics: metrics, logger: logger}
}

// Start aligns the clock with the platform and logs on. A failure leaves
// the manager disconnected; the caller decides whether to keep serving.
func (m *SessionManager) Start(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if serverTime, err := m.auth.ServerTime(ctx); err != nil {
		m.logger.Warn("platform time sync failed, using local clock", zap.Error(err))
	} else {
		m.clock.Sync(serverTime)
		m.logger.Debug("platform clock synced", zap.Duration("offset", m.clock.Offset()))
	}

	code := ""
	if m.cfg.GuardCode != nil {
		var err error
		code, err = m.cfg.GuardCode(m.cfg.Credentials.SharedSecret, m.clock.Now())
		if err != nil {
			m.markDisconnected(err)
			return fmt.Errorf("generate guard code: %w", err)
		}
	}

	session, err := m.auth.LogOn(ctx, m.cfg.Credentials, code)
	if err != nil {
		m.markDisconnected(err)
		return fmt.Errorf("log on %s: %w", m.cfg.Credentials.AccountName, err)
	}

	m.apply(session)
	m.logger.Info("platform session established", zap.String("steam_id", session.SteamID.String()))
	return nil
}

// Run refreshes the access token until ctx ends. It never logs on again:
// a process that failed Start stays degraded until restarted.
func (m *SessionManager) Run(ctx context.Context) error {
	ticker := time.NewTicker(m.cfg.RefreshInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if err := m.Refresh(ctx); err != nil {
				m.logger.Error("session refresh failed", zap.Error(err))
			}
		}
	}
}

func (m *SessionManager) Refresh(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	previous := m.current.Load()
	if previous == nil {
		return fmt.Errorf("refresh session: %w", domain.ErrSessionUnavailable)
	}

	session, err := m.auth.Refresh(ctx, *previous)
	if err != nil {
		m.markDisconnected(err)
		return fmt.Errorf("refresh session: %w", err)
	}

	m.apply(session)
	m.logger.Debug("platform session refreshed")
	return nil
}

func (m *SessionManager) Current() (domain.WebSession, error) {
	session := m.current.Load()
	if session == nil || !m.connected.Load() {
		return domain.WebSession{}, domain.ErrSessionUnavailable
	}
	return *session, nil
}

func (m *SessionManager) Connected() bool {
	return m.connected.Load()
}

func (m *SessionManager) Clock() *PlatformClock {
	return m.clock
}

func (m *SessionManager) apply(session domain.WebSession) {
	snapshot := session
	m.current.Store(&snapshot)
	m.connected.Store(session.Valid())
	m.metrics.SessionConnected.Set(boolGauge(session.Valid()))
}

func (m *SessionManager) markDisconnected(err error) {
	m.connected.Store(false)
	m.metrics.SessionConnected.Set(0)
	m.logger.Error("platform session unavailable", zap.Error(err))
}

func boolGauge(value bool) float64 {
	if value {
		return 1
	}
	return 0
}
