package application

import (
	"context"
	"errors"
	"fmt"
	"hash/fnv"
	"sync"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/google/uuid"
	"github.com/sourcegraph/conc"
	"go.uber.org/zap"
)

var ErrDispatcherClosed = errors.New("dispatcher closed")

const (
	defaultWorkers     = 4
	defaultQueueLength = 64
)

type EventHandler func(ctx context.Context, event domain.OfferEvent) error

// Dispatcher fans offer events out to a fixed set of workers. Events with the
// same partition key always land on the same worker, so one proposal's
// events are handled one at a time and in submission order.
type Dispatcher struct {
	queues  []chan domain.OfferEvent
	handler EventHandler
	metrics *Metrics
	logger  *zap.Logger

	mu     sync.RWMutex
	closed bool
}

var _ EventSink = (*Dispatcher)(nil)

func NewDispatcher(workers int, handler EventHandler, metrics *Metrics, logger *zap.Logger) *Dispatcher {
	if workers <= 0 {
		workers = defaultWorkers
	}
	if metrics == nil {
		metrics = NewMetrics(nil)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	queues := make([]chan domain.OfferEvent, workers)
	for i := range queues {
		queues[i] = make(chan domain.OfferEvent, defaultQueueLength)
	}

	return &Dispatcher{queues: queues, handler: handler, metrics: metrics, logger: logger}
}

// Submit blocks while the target worker's queue is full.
func (d *Dispatcher) Submit(ctx context.Context, event domain.OfferEvent) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}

	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		return ErrDispatcherClosed
	}

	select {
	case d.queues[d.partition(event.PartitionKey())] <- event:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("submit offer event: %w", ctx.Err())
	}
}

// Run starts the workers and blocks until ctx ends. Queued events are
// drained before it returns.
func (d *Dispatcher) Run(ctx context.Context) error {
	var wg conc.WaitGroup
	for _, queue := range d.queues {
		wg.Go(func() {
			for event := range queue {
				d.handle(ctx, event)
			}
		})
	}

	<-ctx.Done()
	d.Close()
	wg.Wait()
	return nil
}

// Close stops intake. Safe to call more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true
	for _, queue := range d.queues {
		close(queue)
	}
}

func (d *Dispatcher) handle(ctx context.Context, event domain.OfferEvent) {
	logger := d.logger.With(
		zap.String("event_id", event.ID),
		zap.String("kind", string(event.Kind)),
		zap.String("proposal_id", string(event.Offer.ID)),
	)
	defer func() {
		if r := recover(); r != nil {
			logger.Error("offer event handler panicked", zap.Any("panic", r))
		}
	}()

	d.metrics.OfferEvents.WithLabelValues(string(event.Kind)).Inc()
	// Handlers finish their platform and ledger calls even during shutdown.
	if err := d.handler(context.WithoutCancel(ctx), event); err != nil {
		logger.Error("offer event failed", zap.Error(err))
	}
}

func (d *Dispatcher) partition(key domain.ProposalID) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % uint32(len(d.queues)))
}
