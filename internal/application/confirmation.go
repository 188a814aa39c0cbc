package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

// ConfirmationHandler finalizes proposals that wait on a mobile
// confirmation. A failed confirmation parks the proposal in STUCK and
// raises an alert; nothing retries it automatically.
type ConfirmationHandler struct {
	confirmations ports.Confirmations
	repo          ports.ProposalRepository
	notifier      statusNotifier
	clock         ports.Clock
	metrics       *Metrics
	logger        *zap.Logger
	locks         proposalLocks
}

func NewConfirmationHandler(confirmations ports.Confirmations, repo ports.ProposalRepository, ledger ports.Ledger, clock ports.Clock, metrics *Metrics, logger *zap.Logger) *ConfirmationHandler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ConfirmationHandler{
		confirmations: confirmations,
		repo:          repo,
		notifier:      statusNotifier{ledger: ledger, metrics: metrics, logger: logger},
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
	}
}

// Confirm is safe to call repeatedly: a proposal that is already settled,
// or has nothing pending on the platform, returns nil. A proposal that
// still waits on its confirmation when the platform lists none is marked
// STUCK.
func (h *ConfirmationHandler) Confirm(ctx context.Context, id domain.ProposalID) error {
	unlock := h.lockProposal(id)
	defer unlock()

	return h.confirmLocked(ctx, id)
}

// lockProposal hands out the per-proposal lock every writer shares: operator
// confirms, the dispatcher and the inbound gateway. The lock is not
// reentrant; holders call confirmLocked instead of Confirm.
func (h *ConfirmationHandler) lockProposal(id domain.ProposalID) func() {
	if h == nil {
		return func() {}
	}
	return h.locks.lock(id)
}

func (h *ConfirmationHandler) confirmLocked(ctx context.Context, id domain.ProposalID) error {
	logger := h.logger.With(zap.String("proposal_id", string(id)))

	proposal, err := h.repo.GetByID(ctx, id)
	tracked := err == nil
	if err != nil && !errors.Is(err, domain.ErrProposalNotFound) {
		return fmt.Errorf("load proposal: %w", err)
	}

	if tracked && proposal.Status.Terminal() && proposal.Status != domain.StatusStuck {
		h.metrics.Confirmations.WithLabelValues("already_done").Inc()
		logger.Info("proposal already settled, nothing to confirm", zap.String("status", string(proposal.Status)))
		return nil
	}

	err = h.confirmations.Confirm(ctx, id)
	if errors.Is(err, domain.ErrConfirmationNotFound) && !(tracked && proposal.Status.AwaitingConfirmation()) {
		h.metrics.Confirmations.WithLabelValues("already_done").Inc()
		logger.Info("no pending confirmation on the platform")
		return nil
	}
	if err != nil {
		h.metrics.Confirmations.WithLabelValues("failed").Inc()
		logger.Error("confirmation failed, proposal needs operator attention", zap.Bool("alert", true), zap.Error(err))
		if tracked {
			h.markStuck(ctx, &proposal, logger)
		}
		return fmt.Errorf("confirm proposal %s: %w", id, err)
	}

	h.metrics.Confirmations.WithLabelValues("confirmed").Inc()
	logger.Info("proposal confirmed")
	if !tracked {
		return nil
	}

	return h.settle(ctx, &proposal, logger)
}

// settle records what a successful confirmation means for the proposal: an
// accepted inbound offer is done, a sent outbound offer now waits on the
// counterparty.
func (h *ConfirmationHandler) settle(ctx context.Context, p *domain.TradeProposal, logger *zap.Logger) error {
	now := h.clock.Now()

	next := domain.StatusActive
	code := domain.OfferStateActive
	if p.Direction == domain.DirectionInbound {
		next = domain.StatusAccepted
		code = domain.OfferStateAccepted
	}

	if err := p.Advance(next, now); err != nil {
		logger.Warn("confirmed proposal kept its status", zap.Error(err))
		return nil
	}
	p.StateCode = code

	h.notifier.notify(ctx, p)
	if err := h.repo.Save(ctx, *p); err != nil {
		return fmt.Errorf("save confirmed proposal: %w", err)
	}
	return nil
}

func (h *ConfirmationHandler) markStuck(ctx context.Context, p *domain.TradeProposal, logger *zap.Logger) {
	if err := p.Advance(domain.StatusStuck, h.clock.Now()); err != nil {
		logger.Warn("could not mark proposal stuck", zap.Error(err))
		return
	}
	if err := h.repo.Save(ctx, *p); err != nil {
		logger.Error("save stuck proposal", zap.Bool("alert", true), zap.Error(err))
	}
}
