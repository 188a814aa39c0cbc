package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalQueriesStatusUsesLiveOffer(t *testing.T) {
	offers := mocks.NewMockTradeOffers(t)
	repo := newTestRepo(t)
	queries := NewProposalQueries(offers, repo, nil)
	seedProposal(t, repo, "987", domain.DirectionForward, domain.StatusActive, domain.OfferStateActive, dealID(42))

	offers.EXPECT().Get(mockAnyContext(), domain.ProposalID("987")).Return(domain.Offer{
		ID:         "987",
		Partner:    partnerID,
		State:      domain.OfferStateAccepted,
		IsOurOffer: true,
		CreatedAt:  baseTime,
		UpdatedAt:  baseTime,
	}, nil).Once()

	status, err := queries.Status(context.Background(), "987")
	require.NoError(t, err)
	assert.True(t, status.Live)
	assert.Equal(t, domain.StatusAccepted, status.Status)
	assert.Equal(t, domain.OfferStateAccepted, status.StateCode)
	assert.Equal(t, domain.DirectionForward, status.Direction)
	require.NotNil(t, status.DealID)
	assert.Equal(t, domain.DealID(42), *status.DealID)
}

func TestProposalQueriesStatusKeepsStuck(t *testing.T) {
	offers := mocks.NewMockTradeOffers(t)
	repo := newTestRepo(t)
	queries := NewProposalQueries(offers, repo, nil)
	seedProposal(t, repo, "558", domain.DirectionInbound, domain.StatusStuck, domain.OfferStateActive, dealID(8))

	offers.EXPECT().Get(mockAnyContext(), domain.ProposalID("558")).
		Return(domain.Offer{ID: "558", Partner: partnerID, State: domain.OfferStateActive}, nil).Once()

	status, err := queries.Status(context.Background(), "558")
	require.NoError(t, err)
	assert.Equal(t, domain.StatusStuck, status.Status)
}

func TestProposalQueriesStatusFallsBackToStored(t *testing.T) {
	offers := mocks.NewMockTradeOffers(t)
	repo := newTestRepo(t)
	queries := NewProposalQueries(offers, repo, nil)
	seedProposal(t, repo, "987", domain.DirectionForward, domain.StatusActive, domain.OfferStateActive, dealID(42))

	offers.EXPECT().Get(mockAnyContext(), domain.ProposalID("987")).Return(domain.Offer{}, domain.ErrSessionUnavailable).Once()

	status, err := queries.Status(context.Background(), "987")
	require.NoError(t, err)
	assert.False(t, status.Live)
	assert.Equal(t, domain.StatusActive, status.Status)
}

func TestProposalQueriesStatusNotFound(t *testing.T) {
	offers := mocks.NewMockTradeOffers(t)
	queries := NewProposalQueries(offers, newTestRepo(t), nil)

	offers.EXPECT().Get(mockAnyContext(), domain.ProposalID("404")).Return(domain.Offer{}, domain.ErrProposalNotFound).Once()

	_, err := queries.Status(context.Background(), "404")
	require.ErrorIs(t, err, domain.ErrProposalNotFound)
}

func TestProposalQueriesStatusPlatformErrorWithoutRecord(t *testing.T) {
	offers := mocks.NewMockTradeOffers(t)
	queries := NewProposalQueries(offers, newTestRepo(t), nil)

	offers.EXPECT().Get(mockAnyContext(), domain.ProposalID("405")).Return(domain.Offer{}, domain.ErrRateLimited).Once()

	_, err := queries.Status(context.Background(), "405")
	require.ErrorIs(t, err, domain.ErrRateLimited)
}

func TestProposalQueriesListFilters(t *testing.T) {
	repo := newTestRepo(t)
	queries := NewProposalQueries(mocks.NewMockTradeOffers(t), repo, nil)
	seedProposal(t, repo, "1", domain.DirectionForward, domain.StatusActive, domain.OfferStateActive, nil)
	seedProposal(t, repo, "2", domain.DirectionInbound, domain.StatusStuck, domain.OfferStateActive, nil)

	all, err := queries.List(context.Background(), "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	stuck, err := queries.List(context.Background(), domain.StatusStuck)
	require.NoError(t, err)
	require.Len(t, stuck, 1)
	assert.Equal(t, domain.ProposalID("2"), stuck[0].ID)
}

func TestProposalQueriesListRepositoryError(t *testing.T) {
	repo := mocks.NewMockProposalRepository(t)
	queries := NewProposalQueries(mocks.NewMockTradeOffers(t), repo, nil)

	repoErr := errors.New("disk full")
	repo.EXPECT().List(mockAnyContext()).Return(nil, repoErr).Once()

	_, err := queries.List(context.Background(), "")
	require.ErrorIs(t, err, repoErr)
}
