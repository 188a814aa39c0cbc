package application

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	tomlrepo "github.com/bnema/tradebot/internal/adapters/repo/toml"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	botID     = domain.SteamID(76561198012345678)
	partnerID = domain.SteamID(76561198000000001)
)

var baseTime = time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func mockAnyContext() interface{} {
	return mock.Anything
}

func newTestRepo(t *testing.T) *tomlrepo.Repository {
	t.Helper()

	cfg := viper.New()
	cfg.Set(tomlrepo.StorePathKey, filepath.Join(t.TempDir(), "proposals.toml"))
	repo, err := tomlrepo.NewRepository(cfg)
	require.NoError(t, err)
	return repo
}

func dealID(v int64) *domain.DealID {
	id := domain.DealID(v)
	return &id
}

func assetRef(id string) domain.ItemRef {
	return domain.ItemRef{AppID: 730, ContextID: "2", AssetID: id}
}

// seedProposal stores a proposal in status with the given platform code.
func seedProposal(t *testing.T, repo *tomlrepo.Repository, id domain.ProposalID, direction domain.Direction, status domain.Status, code domain.OfferState, deal *domain.DealID) domain.TradeProposal {
	t.Helper()

	proposal := domain.TradeProposal{
		ID:           id,
		Direction:    direction,
		Counterparty: partnerID,
		Items:        []domain.ItemRef{assetRef("111")},
		Status:       status,
		StateCode:    code,
		DealID:       deal,
		CreatedAt:    baseTime,
		UpdatedAt:    baseTime,
	}
	require.NoError(t, repo.Save(context.Background(), proposal))
	return proposal
}

func loadProposal(t *testing.T, repo *tomlrepo.Repository, id domain.ProposalID) domain.TradeProposal {
	t.Helper()

	proposal, err := repo.GetByID(context.Background(), id)
	require.NoError(t, err)
	return proposal
}

type recordingSink struct {
	mu     sync.Mutex
	events []domain.OfferEvent
}

func (s *recordingSink) Submit(_ context.Context, event domain.OfferEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	return nil
}

func (s *recordingSink) recorded() []domain.OfferEvent {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.OfferEvent(nil), s.events...)
}

type sessionStub struct {
	session domain.WebSession
	err     error
}

func (s sessionStub) Current() (domain.WebSession, error) {
	return s.session, s.err
}
