package application

import (
	"context"
	"fmt"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

// ProposalBuilder sends deal-linked outbound offers. Forward offers collect
// collateral from the counterparty; reverse offers return it.
type ProposalBuilder struct {
	offers        ports.TradeOffers
	repo          ports.ProposalRepository
	confirmations *ConfirmationHandler
	settings      TradeSettings
	clock         ports.Clock
	metrics       *Metrics
	logger        *zap.Logger
}

func NewProposalBuilder(offers ports.TradeOffers, repo ports.ProposalRepository, confirmations *ConfirmationHandler, settings TradeSettings, clock ports.Clock, metrics *Metrics, logger *zap.Logger) *ProposalBuilder {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ProposalBuilder{
		offers:        offers,
		repo:          repo,
		confirmations: confirmations,
		settings:      settings.withDefaults(),
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
	}
}

func (b *ProposalBuilder) CreateForward(ctx context.Context, cmd CreateProposalCommand) (domain.SendResult, error) {
	return b.create(ctx, domain.DirectionForward, cmd)
}

func (b *ProposalBuilder) CreateReverse(ctx context.Context, cmd CreateProposalCommand) (domain.SendResult, error) {
	return b.create(ctx, domain.DirectionReverse, cmd)
}

func (b *ProposalBuilder) create(ctx context.Context, direction domain.Direction, cmd CreateProposalCommand) (domain.SendResult, error) {
	if !cmd.Partner.Valid() {
		return domain.SendResult{}, fmt.Errorf("create %s proposal: %w", direction, domain.ErrInvalidAccount)
	}
	items := b.itemRefs(cmd.AssetIDs)
	if len(items) == 0 {
		return domain.SendResult{}, fmt.Errorf("create %s proposal: %w", direction, domain.ErrEmptyItems)
	}

	draft := domain.OfferDraft{
		Partner:    cmd.Partner,
		TradeToken: cmd.TradeToken,
		Message:    b.message(direction, cmd.DealID),
	}
	if direction == domain.DirectionReverse {
		draft.ItemsToGive = items
	} else {
		draft.ItemsToGet = items
	}

	result, err := b.offers.Send(ctx, draft)
	if err != nil {
		return domain.SendResult{}, fmt.Errorf("send %s proposal for deal %s: %w", direction, cmd.DealID, err)
	}

	logger := b.logger.With(
		zap.String("proposal_id", string(result.ProposalID)),
		zap.String("direction", string(direction)),
		zap.Stringer("deal_id", cmd.DealID),
	)
	b.metrics.ProposalsCreated.WithLabelValues(string(direction)).Inc()
	logger.Info("proposal sent", zap.String("ack", string(result.Status)))

	b.record(ctx, direction, cmd, draft, result, logger)

	if result.Status.NeedsConfirmation() && b.confirmations != nil {
		if err := b.confirmations.Confirm(ctx, result.ProposalID); err != nil {
			logger.Warn("confirmation after send failed", zap.Error(err))
		}
	}

	return result, nil
}

// record stores the sent proposal with its deal. The offer exists on the
// platform at this point, so a storage failure is logged rather than
// returned.
func (b *ProposalBuilder) record(ctx context.Context, direction domain.Direction, cmd CreateProposalCommand, draft domain.OfferDraft, result domain.SendResult, logger *zap.Logger) {
	now := b.clock.Now()

	proposal, err := domain.NewProposal(result.ProposalID, direction, cmd.Partner, append(draft.ItemsToGive, draft.ItemsToGet...), now)
	if err != nil {
		logger.Error("build proposal record", zap.Error(err))
		return
	}
	if err := proposal.AttachDeal(cmd.DealID); err != nil {
		logger.Error("attach deal to proposal", zap.Error(err))
		return
	}
	proposal.Message = draft.Message

	status, code := domain.StatusActive, domain.OfferStateActive
	if result.Status.NeedsConfirmation() {
		status, code = domain.StatusPendingConfirmation, domain.OfferStateNeedsConfirmation
	}
	if err := proposal.Advance(status, now); err != nil {
		logger.Error("advance new proposal", zap.Error(err))
		return
	}
	proposal.StateCode = code

	if err := b.repo.Save(ctx, proposal); err != nil {
		logger.Error("save sent proposal", zap.Bool("alert", true), zap.Error(err))
	}
}

func (b *ProposalBuilder) message(direction domain.Direction, deal domain.DealID) string {
	purpose := "Collateral pickup."
	if direction == domain.DirectionReverse {
		purpose = "Buy-back return."
	}
	return fmt.Sprintf("%s - Deal #%s. %s", b.settings.Brand, deal, purpose)
}

func (b *ProposalBuilder) itemRefs(assetIDs []string) []domain.ItemRef {
	items := make([]domain.ItemRef, 0, len(assetIDs))
	seen := make(map[string]struct{}, len(assetIDs))
	for _, id := range assetIDs {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		items = append(items, domain.ItemRef{AppID: b.settings.AppID, ContextID: b.settings.ContextID, AssetID: id})
	}
	return items
}
