package application

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

type ProposalStatus struct {
	ProposalID domain.ProposalID
	Status     domain.Status
	StateCode  domain.OfferState
	Direction  domain.Direction
	DealID     *domain.DealID
	CreatedAt  time.Time
	UpdatedAt  time.Time
	ExpiresAt  time.Time
	// Live is false when the platform could not be reached and the stored
	// record was used instead.
	Live bool
}

type ProposalQueries struct {
	offers ports.TradeOffers
	repo   ports.ProposalRepository
	logger *zap.Logger
}

func NewProposalQueries(offers ports.TradeOffers, repo ports.ProposalRepository, logger *zap.Logger) *ProposalQueries {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProposalQueries{offers: offers, repo: repo, logger: logger}
}

// Status prefers the platform's view of the offer and falls back to the
// stored record. A stored lifecycle status such as STUCK wins over a live
// status that is not yet final, since it carries what the platform cannot
// know.
func (q *ProposalQueries) Status(ctx context.Context, id domain.ProposalID) (ProposalStatus, error) {
	stored, storedErr := q.repo.GetByID(ctx, id)
	if storedErr != nil && !errors.Is(storedErr, domain.ErrProposalNotFound) {
		q.logger.Warn("load stored proposal", zap.String("proposal_id", string(id)), zap.Error(storedErr))
	}
	hasStored := storedErr == nil

	offer, liveErr := q.offers.Get(ctx, id)
	if liveErr != nil {
		if hasStored {
			q.logger.Debug("platform lookup failed, using stored proposal", zap.String("proposal_id", string(id)), zap.Error(liveErr))
			return fromStored(stored), nil
		}
		if errors.Is(liveErr, domain.ErrProposalNotFound) {
			return ProposalStatus{}, fmt.Errorf("get proposal %s: %w", id, domain.ErrProposalNotFound)
		}
		return ProposalStatus{}, fmt.Errorf("get proposal %s: %w", id, liveErr)
	}

	status := ProposalStatus{
		ProposalID: offer.ID,
		Status:     offer.State.Canonical(),
		StateCode:  offer.State,
		Direction:  offer.Direction(),
		CreatedAt:  offer.CreatedAt,
		UpdatedAt:  offer.UpdatedAt,
		ExpiresAt:  offer.ExpiresAt,
		Live:       true,
	}
	if hasStored {
		status.Direction = stored.Direction
		status.DealID = stored.DealID
		if stored.Status.Lifecycle() && !status.Status.Terminal() {
			status.Status = stored.Status
		}
	}

	return status, nil
}

// List returns stored proposals, optionally only those in one status.
func (q *ProposalQueries) List(ctx context.Context, filter domain.Status) ([]domain.TradeProposal, error) {
	proposals, err := q.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	if filter == "" {
		return proposals, nil
	}

	matched := make([]domain.TradeProposal, 0, len(proposals))
	for _, p := range proposals {
		if p.Status == filter {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func fromStored(p domain.TradeProposal) ProposalStatus {
	return ProposalStatus{
		ProposalID: p.ID,
		Status:     p.Status,
		StateCode:  p.StateCode,
		Direction:  p.Direction,
		DealID:     p.DealID,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
		ExpiresAt:  p.ExpiresAt,
	}
}
