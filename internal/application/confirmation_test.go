package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports/mocks"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestConfirmationHandlerConfirmTwiceIsIdempotent(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	ledger := mocks.NewMockLedger(t)
	repo := newTestRepo(t)
	metrics := NewMetrics(nil)
	handler := NewConfirmationHandler(confirmations, repo, ledger, fixedClock{now: baseTime}, metrics, nil)

	seedProposal(t, repo, "555", domain.DirectionInbound, domain.StatusPendingConfirmation, domain.OfferStateNeedsConfirmation, dealID(42))

	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("555")).Return(nil).Once()
	ledger.EXPECT().NotifyStatus(mockAnyContext(), domain.StatusNotification{
		ProposalID: "555",
		DealID:     dealID(42),
		Status:     domain.StatusAccepted,
	}).Return(nil).Once()

	require.NoError(t, handler.Confirm(context.Background(), "555"))
	require.NoError(t, handler.Confirm(context.Background(), "555"))

	stored := loadProposal(t, repo, "555")
	assert.Equal(t, domain.StatusAccepted, stored.Status)
	assert.Equal(t, domain.OfferStateAccepted, stored.StateCode)
	assert.Equal(t, domain.StatusAccepted, stored.NotifiedStatus)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("confirmed")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("already_done")))
}

func TestConfirmationHandlerFailureMarksStuck(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	repo := newTestRepo(t)
	metrics := NewMetrics(nil)
	handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, metrics, nil)

	seedProposal(t, repo, "556", domain.DirectionInbound, domain.StatusPendingConfirmation, domain.OfferStateNeedsConfirmation, dealID(42))
	platformErr := errors.New("ajaxop rejected")
	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("556")).Return(platformErr).Once()

	err := handler.Confirm(context.Background(), "556")
	require.ErrorIs(t, err, platformErr)

	assert.Equal(t, domain.StatusStuck, loadProposal(t, repo, "556").Status)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("failed")))
}

func TestConfirmationHandlerRetriesStuckProposal(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	ledger := mocks.NewMockLedger(t)
	repo := newTestRepo(t)
	handler := NewConfirmationHandler(confirmations, repo, ledger, fixedClock{now: baseTime}, nil, nil)

	seedProposal(t, repo, "557", domain.DirectionInbound, domain.StatusStuck, domain.OfferStateNeedsConfirmation, dealID(9))
	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("557")).Return(nil).Once()
	ledger.EXPECT().NotifyStatus(mockAnyContext(), domain.StatusNotification{
		ProposalID: "557",
		DealID:     dealID(9),
		Status:     domain.StatusAccepted,
	}).Return(nil).Once()

	require.NoError(t, handler.Confirm(context.Background(), "557"))
	assert.Equal(t, domain.StatusAccepted, loadProposal(t, repo, "557").Status)
}

func TestConfirmationHandlerNothingPendingIsSuccess(t *testing.T) {
	tests := []struct {
		name   string
		seed   bool
		status domain.Status
	}{
		{name: "untracked", seed: false},
		{name: "already stuck", seed: true, status: domain.StatusStuck},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			confirmations := mocks.NewMockConfirmations(t)
			repo := newTestRepo(t)
			metrics := NewMetrics(nil)
			handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, metrics, nil)

			if tt.seed {
				seedProposal(t, repo, "558", domain.DirectionForward, tt.status, domain.OfferStateActive, dealID(1))
			}
			confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("558")).Return(domain.ErrConfirmationNotFound).Once()

			require.NoError(t, handler.Confirm(context.Background(), "558"))
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("already_done")))
			if tt.seed {
				assert.Equal(t, tt.status, loadProposal(t, repo, "558").Status)
			}
		})
	}
}

func TestConfirmationHandlerMissingConfirmationMarksStuck(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	repo := newTestRepo(t)
	metrics := NewMetrics(nil)
	core, logs := observer.New(zap.ErrorLevel)
	handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, metrics, zap.New(core))

	seedProposal(t, repo, "564", domain.DirectionInbound, domain.StatusPendingConfirmation, domain.OfferStateActive, dealID(42))
	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("564")).Return(domain.ErrConfirmationNotFound).Once()

	err := handler.Confirm(context.Background(), "564")
	require.ErrorIs(t, err, domain.ErrConfirmationNotFound)

	stored := loadProposal(t, repo, "564")
	assert.Equal(t, domain.StatusStuck, stored.Status)
	assert.Empty(t, stored.NotifiedStatus)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("failed")))
	assert.Zero(t, testutil.ToFloat64(metrics.Confirmations.WithLabelValues("already_done")))
	require.Equal(t, 1, logs.FilterField(zap.Bool("alert", true)).Len())
}

func TestConfirmationHandlerSharesProposalLock(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	repo := newTestRepo(t)
	handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, nil, nil)

	seedProposal(t, repo, "565", domain.DirectionForward, domain.StatusActive, domain.OfferStateActive, dealID(1))
	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("565")).Return(nil).Once()

	unlock := handler.lockProposal("565")
	done := make(chan error, 1)
	go func() {
		done <- handler.Confirm(context.Background(), "565")
	}()

	select {
	case <-done:
		t.Fatal("confirm ran while the proposal lock was held")
	case <-time.After(50 * time.Millisecond):
	}

	unlock()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("confirm did not resume after unlock")
	}
}

func TestNilConfirmationHandlerLockIsNoop(t *testing.T) {
	var handler *ConfirmationHandler
	unlock := handler.lockProposal("566")
	unlock()
}

func TestConfirmationHandlerOutboundBecomesActive(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	repo := newTestRepo(t)
	handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, nil, nil)

	seedProposal(t, repo, "559", domain.DirectionForward, domain.StatusPendingConfirmation, domain.OfferStateNeedsConfirmation, dealID(1))
	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("559")).Return(nil).Once()

	require.NoError(t, handler.Confirm(context.Background(), "559"))

	stored := loadProposal(t, repo, "559")
	assert.Equal(t, domain.StatusActive, stored.Status)
	assert.Equal(t, domain.OfferStateActive, stored.StateCode)
}

func TestConfirmationHandlerUntrackedProposal(t *testing.T) {
	confirmations := mocks.NewMockConfirmations(t)
	repo := newTestRepo(t)
	handler := NewConfirmationHandler(confirmations, repo, mocks.NewMockLedger(t), fixedClock{now: baseTime}, nil, nil)

	confirmations.EXPECT().Confirm(mockAnyContext(), domain.ProposalID("600")).Return(nil).Once()

	require.NoError(t, handler.Confirm(context.Background(), "600"))
	_, err := repo.GetByID(context.Background(), "600")
	require.ErrorIs(t, err, domain.ErrProposalNotFound)
}
