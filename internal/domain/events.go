package domain

import "time"

type OfferEventKind string

const (
	OfferEventNewInbound   OfferEventKind = "new-inbound"
	OfferEventStateChanged OfferEventKind = "state-changed"
	// OfferEventRenotify retries a failed ledger notification.
	OfferEventRenotify     OfferEventKind = "renotify"
)

// OfferEvent is one observed change on the platform's offer stream.
type OfferEvent struct {
	ID         string
	Kind       OfferEventKind
	Offer      Offer
	Previous   OfferState
	ObservedAt time.Time
}

// PartitionKey routes every event of one proposal to the same sequence.
func (e OfferEvent) PartitionKey() ProposalID {
	return e.Offer.ID
}
