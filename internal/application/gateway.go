package application

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

// Gateway decides inbound offers. Only a proposal the ledger vouches for
// is accepted; every other outcome, including an unreachable ledger, ends
// in a decline.
type Gateway struct {
	offers        ports.TradeOffers
	ledger        ports.Ledger
	repo          ports.ProposalRepository
	confirmations *ConfirmationHandler
	notifier      statusNotifier
	clock         ports.Clock
	metrics       *Metrics
	logger        *zap.Logger
}

func NewGateway(offers ports.TradeOffers, ledger ports.Ledger, repo ports.ProposalRepository, confirmations *ConfirmationHandler, clock ports.Clock, metrics *Metrics, logger *zap.Logger) *Gateway {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Gateway{
		offers:        offers,
		ledger:        ledger,
		repo:          repo,
		confirmations: confirmations,
		notifier:      statusNotifier{ledger: ledger, metrics: metrics, logger: logger},
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
	}
}

func (g *Gateway) HandleInbound(ctx context.Context, offer domain.Offer) error {
	logger := g.logger.With(
		zap.String("proposal_id", string(offer.ID)),
		zap.String("partner", offer.Partner.String()),
	)

	unlock := g.confirmations.lockProposal(offer.ID)
	defer unlock()

	if _, err := g.repo.GetByID(ctx, offer.ID); err == nil {
		logger.Debug("inbound proposal already handled")
		return nil
	} else if !errors.Is(err, domain.ErrProposalNotFound) {
		return fmt.Errorf("load inbound proposal: %w", err)
	}

	now := g.clock.Now()
	proposal, err := domain.NewProposal(offer.ID, domain.DirectionInbound, offer.Partner, offer.Items(), now)
	if err != nil {
		logger.Warn("malformed inbound proposal, declining", zap.Error(err))
		g.metrics.InboundDecisions.WithLabelValues("declined").Inc()
		if declineErr := g.offers.Decline(ctx, offer.ID); declineErr != nil {
			return fmt.Errorf("decline malformed proposal %s: %w", offer.ID, declineErr)
		}
		return nil
	}
	proposal.Message = offer.Message
	proposal.StateCode = offer.State
	proposal.ExpiresAt = offer.ExpiresAt

	if err := proposal.Advance(domain.StatusPendingValidation, now); err != nil {
		return err
	}
	if err := g.repo.Save(ctx, proposal); err != nil {
		return fmt.Errorf("save inbound proposal: %w", err)
	}

	result, err := g.ledger.Verify(ctx, offer.ID)
	switch {
	case err != nil:
		logger.Warn("ledger verification failed, declining", zap.Error(err))
		return g.decline(ctx, &proposal, logger)
	case !result.Valid:
		logger.Info("ledger rejected proposal", zap.String("reason", result.Reason))
		return g.decline(ctx, &proposal, logger)
	}

	if result.DealID != nil {
		if err := proposal.AttachDeal(*result.DealID); err != nil {
			return err
		}
	} else {
		logger.Error("ledger validated proposal without a deal", zap.Bool("alert", true))
	}

	return g.accept(ctx, &proposal, logger)
}

func (g *Gateway) decline(ctx context.Context, p *domain.TradeProposal, logger *zap.Logger) error {
	if err := g.offers.Decline(ctx, p.ID); err != nil {
		logger.Error("decline inbound proposal", zap.Bool("alert", true), zap.Error(err))
		return fmt.Errorf("decline proposal %s: %w", p.ID, err)
	}

	if err := p.Advance(domain.StatusDeclined, g.clock.Now()); err != nil {
		return err
	}
	p.StateCode = domain.OfferStateDeclined
	g.metrics.InboundDecisions.WithLabelValues("declined").Inc()
	logger.Info("inbound proposal declined")

	g.notifier.notify(ctx, p)
	if err := g.repo.Save(ctx, *p); err != nil {
		return fmt.Errorf("save declined proposal: %w", err)
	}
	return nil
}

func (g *Gateway) accept(ctx context.Context, p *domain.TradeProposal, logger *zap.Logger) error {
	if err := p.Advance(domain.StatusAccepting, g.clock.Now()); err != nil {
		return err
	}
	if err := g.repo.Save(ctx, *p); err != nil {
		return fmt.Errorf("save accepting proposal: %w", err)
	}

	ack, err := g.offers.Accept(ctx, p.ID, p.Counterparty)
	if err != nil {
		g.metrics.InboundDecisions.WithLabelValues("stuck").Inc()
		logger.Error("accept inbound proposal failed", zap.Bool("alert", true), zap.Error(err))
		if advanceErr := p.Advance(domain.StatusStuck, g.clock.Now()); advanceErr == nil {
			if saveErr := g.repo.Save(ctx, *p); saveErr != nil {
				logger.Error("save stuck proposal", zap.Error(saveErr))
			}
		}
		return fmt.Errorf("accept proposal %s: %w", p.ID, err)
	}

	g.metrics.InboundDecisions.WithLabelValues("accepted").Inc()
	logger.Info("inbound proposal accepted", zap.String("ack", string(ack)))

	if ack.NeedsConfirmation() {
		if err := p.Advance(domain.StatusPendingConfirmation, g.clock.Now()); err != nil {
			return err
		}
		if err := g.repo.Save(ctx, *p); err != nil {
			return fmt.Errorf("save proposal awaiting confirmation: %w", err)
		}
		if g.confirmations == nil {
			return nil
		}
		return g.confirmations.confirmLocked(ctx, p.ID)
	}

	next, code := domain.StatusAccepted, domain.OfferStateAccepted
	if ack == domain.AckEscrow {
		next, code = domain.StatusInEscrow, domain.OfferStateInEscrow
	}
	if err := p.Advance(next, g.clock.Now()); err != nil {
		return err
	}
	p.StateCode = code

	g.notifier.notify(ctx, p)
	if err := g.repo.Save(ctx, *p); err != nil {
		return fmt.Errorf("save accepted proposal: %w", err)
	}
	return nil
}
