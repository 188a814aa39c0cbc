package application

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatcherPreservesPerProposalOrder(t *testing.T) {
	t.Parallel()

	var mu sync.Mutex
	seen := map[domain.ProposalID][]int{}
	handler := func(_ context.Context, event domain.OfferEvent) error {
		seq, err := strconv.Atoi(event.Offer.Message)
		if err != nil {
			return err
		}
		mu.Lock()
		seen[event.Offer.ID] = append(seen[event.Offer.ID], seq)
		mu.Unlock()
		return nil
	}

	metrics := NewMetrics(nil)
	dispatcher := NewDispatcher(3, handler, metrics, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- dispatcher.Run(ctx) }()

	ids := []domain.ProposalID{"a", "b", "c", "d", "e"}
	const perID = 40
	for seq := 0; seq < perID; seq++ {
		for _, id := range ids {
			require.NoError(t, dispatcher.Submit(context.Background(), domain.OfferEvent{
				Kind:  domain.OfferEventStateChanged,
				Offer: domain.Offer{ID: id, Message: strconv.Itoa(seq)},
			}))
		}
	}

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher did not drain")
	}

	mu.Lock()
	defer mu.Unlock()
	for _, id := range ids {
		got := seen[id]
		require.Len(t, got, perID, "proposal %s", id)
		for i, seq := range got {
			assert.Equal(t, i, seq, "proposal %s out of order", id)
		}
	}
	assert.Equal(t, float64(perID*len(ids)), testutil.ToFloat64(metrics.OfferEvents.WithLabelValues(string(domain.OfferEventStateChanged))))
}

func TestDispatcherAssignsEventIDs(t *testing.T) {
	t.Parallel()

	ids := make(chan string, 1)
	dispatcher := NewDispatcher(1, func(_ context.Context, event domain.OfferEvent) error {
		ids <- event.ID
		return nil
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	require.NoError(t, dispatcher.Submit(context.Background(), domain.OfferEvent{Offer: domain.Offer{ID: "1"}}))

	select {
	case id := <-ids:
		assert.Len(t, id, 36)
	case <-time.After(5 * time.Second):
		t.Fatal("event not handled")
	}
}

func TestDispatcherSurvivesPanickingHandler(t *testing.T) {
	t.Parallel()

	handled := make(chan domain.ProposalID, 2)
	dispatcher := NewDispatcher(1, func(_ context.Context, event domain.OfferEvent) error {
		if event.Offer.ID == "boom" {
			panic("handler exploded")
		}
		handled <- event.Offer.ID
		return nil
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = dispatcher.Run(ctx) }()

	require.NoError(t, dispatcher.Submit(context.Background(), domain.OfferEvent{Offer: domain.Offer{ID: "boom"}}))
	require.NoError(t, dispatcher.Submit(context.Background(), domain.OfferEvent{Offer: domain.Offer{ID: "ok"}}))

	select {
	case id := <-handled:
		assert.Equal(t, domain.ProposalID("ok"), id)
	case <-time.After(5 * time.Second):
		t.Fatal("dispatcher stopped after panic")
	}
}

func TestDispatcherRejectsSubmitAfterClose(t *testing.T) {
	t.Parallel()

	dispatcher := NewDispatcher(2, func(context.Context, domain.OfferEvent) error { return nil }, nil, nil)
	dispatcher.Close()
	dispatcher.Close()

	err := dispatcher.Submit(context.Background(), domain.OfferEvent{Offer: domain.Offer{ID: "1"}})
	require.ErrorIs(t, err, ErrDispatcherClosed)
}

func TestDispatcherHandlerContextOutlivesShutdown(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	ctxErr := make(chan error, 1)
	dispatcher := NewDispatcher(1, func(ctx context.Context, _ domain.OfferEvent) error {
		<-release
		ctxErr <- ctx.Err()
		return nil
	}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- dispatcher.Run(ctx) }()

	require.NoError(t, dispatcher.Submit(context.Background(), domain.OfferEvent{Offer: domain.Offer{ID: "1"}}))
	cancel()
	close(release)

	select {
	case err := <-ctxErr:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("handler never ran")
	}
	require.NoError(t, <-done)
}
