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

const (
	defaultPollInterval = 10 * time.Second
	// historicalOverlap widens each poll window so offers that changed while
	// the previous poll was in flight are not missed.
	historicalOverlap = time.Minute
)

type TrackerConfig struct {
	PollInterval     time.Duration
	RenotifyAttempts int
}

// EventSink receives observed offer events. The Dispatcher is the
// production sink.
type EventSink interface {
	Submit(ctx context.Context, event domain.OfferEvent) error
}

// Tracker turns the platform's offer list into events and applies them to
// stored proposals.
type Tracker struct {
	offers        ports.TradeOffers
	repo          ports.ProposalRepository
	gateway       *Gateway
	confirmations *ConfirmationHandler
	notifier      statusNotifier
	cfg           TrackerConfig
	clock         ports.Clock
	metrics       *Metrics
	logger        *zap.Logger
}

func NewTracker(offers ports.TradeOffers, repo ports.ProposalRepository, ledger ports.Ledger, gateway *Gateway, confirmations *ConfirmationHandler, cfg TrackerConfig, clock ports.Clock, metrics *Metrics, logger *zap.Logger) *Tracker {
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = defaultPollInterval
	}
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Tracker{
		offers:        offers,
		repo:          repo,
		gateway:       gateway,
		confirmations: confirmations,
		notifier:      statusNotifier{ledger: ledger, metrics: metrics, logger: logger},
		cfg:           cfg,
		clock:         clock,
		metrics:       metrics,
		logger:        logger,
	}
}

// Run polls until ctx ends. Poll errors are logged and the next tick
// retries.
func (t *Tracker) Run(ctx context.Context, sink EventSink) error {
	ticker := time.NewTicker(t.cfg.PollInterval)
	defer ticker.Stop()

	for {
		if err := t.Poll(ctx, sink); err != nil && ctx.Err() == nil {
			t.logger.Warn("offer poll failed", zap.Error(err))
		}
		if t.cfg.RenotifyAttempts > 0 {
			if err := t.Reconcile(ctx, sink); err != nil && ctx.Err() == nil {
				t.logger.Warn("notification sweep failed", zap.Error(err))
			}
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

// Poll lists offers changed since the stored cursor and submits one event
// per new inbound offer or changed state code. The cursor only advances
// when every event was accepted by sink.
func (t *Tracker) Poll(ctx context.Context, sink EventSink) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	startedAt := t.clock.Now()
	cursor, err := t.repo.PollCursor(ctx)
	if err != nil {
		return fmt.Errorf("read poll cursor: %w", err)
	}
	if !cursor.IsZero() {
		cursor = cursor.Add(-historicalOverlap)
	}

	offers, err := t.offers.List(ctx, cursor)
	if err != nil {
		return fmt.Errorf("list offers: %w", err)
	}

	for _, offer := range offers {
		event, ok, err := t.observe(ctx, offer, startedAt)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}
		if err := sink.Submit(ctx, event); err != nil {
			return fmt.Errorf("submit offer event %s: %w", offer.ID, err)
		}
	}

	if err := t.repo.SetPollCursor(ctx, startedAt); err != nil {
		return fmt.Errorf("store poll cursor: %w", err)
	}
	return nil
}

func (t *Tracker) observe(ctx context.Context, offer domain.Offer, at time.Time) (domain.OfferEvent, bool, error) {
	stored, err := t.repo.GetByID(ctx, offer.ID)
	if errors.Is(err, domain.ErrProposalNotFound) {
		if offer.IsOurOffer || offer.State != domain.OfferStateActive {
			t.logger.Debug("ignoring untracked offer",
				zap.String("proposal_id", string(offer.ID)),
				zap.Stringer("state", offer.State),
			)
			return domain.OfferEvent{}, false, nil
		}
		return domain.OfferEvent{Kind: domain.OfferEventNewInbound, Offer: offer, ObservedAt: at}, true, nil
	}
	if err != nil {
		return domain.OfferEvent{}, false, fmt.Errorf("load proposal %s: %w", offer.ID, err)
	}
	if stored.StateCode == offer.State {
		return domain.OfferEvent{}, false, nil
	}

	return domain.OfferEvent{
		Kind:       domain.OfferEventStateChanged,
		Offer:      offer,
		Previous:   stored.StateCode,
		ObservedAt: at,
	}, true, nil
}

// HandleEvent is the dispatcher handler. Events for one proposal arrive in
// observation order.
func (t *Tracker) HandleEvent(ctx context.Context, event domain.OfferEvent) error {
	switch event.Kind {
	case domain.OfferEventNewInbound:
		if t.gateway == nil {
			return nil
		}
		return t.gateway.HandleInbound(ctx, event.Offer)
	case domain.OfferEventStateChanged:
		return t.applyState(ctx, event)
	case domain.OfferEventRenotify:
		return t.renotify(ctx, event.Offer.ID)
	default:
		return fmt.Errorf("unknown offer event kind %q", event.Kind)
	}
}

func (t *Tracker) applyState(ctx context.Context, event domain.OfferEvent) error {
	offer := event.Offer
	logger := t.logger.With(
		zap.String("proposal_id", string(offer.ID)),
		zap.String("event_id", event.ID),
	)

	unlock := t.confirmations.lockProposal(offer.ID)
	defer unlock()

	proposal, err := t.repo.GetByID(ctx, offer.ID)
	if err != nil {
		return fmt.Errorf("load proposal %s: %w", offer.ID, err)
	}
	if proposal.StateCode == offer.State {
		return nil
	}

	previous := proposal.StateCode
	now := t.clock.Now()
	proposal.StateCode = offer.State
	proposal.UpdatedAt = now
	if !offer.ExpiresAt.IsZero() {
		proposal.ExpiresAt = offer.ExpiresAt
	}

	next := offer.State.Canonical()
	logger.Info("proposal state changed",
		zap.Stringer("from", previous),
		zap.Stringer("to", offer.State),
		zap.String("status", string(next)),
	)

	if next == domain.StatusNeedsConfirmation {
		if !proposal.Status.AwaitingConfirmation() && proposal.Status != domain.StatusStuck {
			if err := proposal.Advance(domain.StatusNeedsConfirmation, now); err != nil {
				logger.Warn("status kept", zap.Error(err))
			}
		}
		if err := t.repo.Save(ctx, proposal); err != nil {
			return fmt.Errorf("save proposal: %w", err)
		}
		if t.confirmations == nil {
			return nil
		}
		return t.confirmations.confirmLocked(ctx, proposal.ID)
	}

	if err := proposal.Advance(next, now); err != nil {
		logger.Warn("status kept", zap.String("status", string(proposal.Status)), zap.Error(err))
	}

	t.notifier.notify(ctx, &proposal)
	if err := t.repo.Save(ctx, proposal); err != nil {
		return fmt.Errorf("save proposal: %w", err)
	}
	return nil
}

// Reconcile queues a retry for every terminal proposal whose ledger
// notification failed fewer than the configured number of times. Retries go
// through sink so they never race a state change of the same proposal.
func (t *Tracker) Reconcile(ctx context.Context, sink EventSink) error {
	proposals, err := t.repo.List(ctx)
	if err != nil {
		return fmt.Errorf("list proposals: %w", err)
	}

	at := t.clock.Now()
	for _, p := range proposals {
		if !p.NeedsNotification() || p.NotifyAttempts == 0 || p.NotifyAttempts >= t.cfg.RenotifyAttempts {
			continue
		}
		event := domain.OfferEvent{
			Kind:       domain.OfferEventRenotify,
			Offer:      domain.Offer{ID: p.ID, Partner: p.Counterparty, State: p.StateCode},
			Previous:   p.StateCode,
			ObservedAt: at,
		}
		if err := sink.Submit(ctx, event); err != nil {
			return fmt.Errorf("submit renotify %s: %w", p.ID, err)
		}
	}
	return nil
}

func (t *Tracker) renotify(ctx context.Context, id domain.ProposalID) error {
	unlock := t.confirmations.lockProposal(id)
	defer unlock()

	proposal, err := t.repo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("load proposal %s: %w", id, err)
	}
	if !t.notifier.notify(ctx, &proposal) {
		return nil
	}
	if err := t.repo.Save(ctx, proposal); err != nil {
		return fmt.Errorf("save proposal %s: %w", id, err)
	}
	return nil
}
