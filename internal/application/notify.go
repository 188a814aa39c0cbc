package application

import (
	"context"
	"sync"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"go.uber.org/zap"
)

// statusNotifier pushes terminal statuses to the ledger once per status.
// Failures are recorded on the proposal and logged, never returned.
type statusNotifier struct {
	ledger  ports.Ledger
	metrics *Metrics
	logger  *zap.Logger
}

func (n statusNotifier) notify(ctx context.Context, p *domain.TradeProposal) bool {
	if !p.NeedsNotification() {
		return false
	}

	err := n.ledger.NotifyStatus(ctx, domain.StatusNotification{
		ProposalID: p.ID,
		DealID:     p.DealID,
		Status:     p.Status,
	})
	if err != nil {
		p.NotifyAttempts++
		n.metrics.LedgerNotifications.WithLabelValues("failed").Inc()
		n.logger.Warn("ledger notification failed",
			zap.String("proposal_id", string(p.ID)),
			zap.String("status", string(p.Status)),
			zap.Int("attempts", p.NotifyAttempts),
			zap.Error(err),
		)
		return true
	}

	p.MarkNotified()
	n.metrics.LedgerNotifications.WithLabelValues("sent").Inc()
	n.logger.Info("ledger notified",
		zap.String("proposal_id", string(p.ID)),
		zap.String("status", string(p.Status)),
		zap.Stringer("deal_id", p.DealID),
	)
	return true
}

// proposalLocks serializes work on one proposal id across callers that do
// not go through the dispatcher, such as operator-triggered confirmations.
type proposalLocks struct {
	mu    sync.Mutex
	locks map[domain.ProposalID]*lockEntry
}

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

func (l *proposalLocks) lock(id domain.ProposalID) func() {
	l.mu.Lock()
	if l.locks == nil {
		l.locks = map[domain.ProposalID]*lockEntry{}
	}
	entry, ok := l.locks[id]
	if !ok {
		entry = &lockEntry{}
		l.locks[id] = entry
	}
	entry.refs++
	l.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		l.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
