package domain

import (
	"fmt"
	"time"
)

type ProposalID string

type Direction string

const (
	DirectionForward Direction = "outbound-forward"
	DirectionReverse Direction = "outbound-reverse"
	DirectionInbound Direction = "inbound"
)

func (d Direction) Outbound() bool {
	return d == DirectionForward || d == DirectionReverse
}

// ItemRef identifies one platform asset inside a proposal.
type ItemRef struct {
	AppID     uint32
	ContextID string
	AssetID   string
}

type TradeProposal struct {
	ID           ProposalID
	Direction    Direction
	Counterparty SteamID
	Items        []ItemRef
	Status       Status
	StateCode    OfferState
	DealID       *DealID
	Message      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
	ExpiresAt    time.Time

	// NotifiedStatus is the last status the ledger acknowledged.
	NotifiedStatus Status
	NotifyAttempts int
}

func NewProposal(id ProposalID, direction Direction, counterparty SteamID, items []ItemRef, now time.Time) (TradeProposal, error) {
	if id == "" {
		return TradeProposal{}, fmt.Errorf("new proposal: id is empty")
	}
	if !counterparty.Valid() {
		return TradeProposal{}, fmt.Errorf("new proposal %s: %w", id, ErrInvalidAccount)
	}
	if len(items) == 0 {
		return TradeProposal{}, fmt.Errorf("new proposal %s: %w", id, ErrEmptyItems)
	}

	return TradeProposal{
		ID:           id,
		Direction:    direction,
		Counterparty: counterparty,
		Items:        append([]ItemRef(nil), items...),
		Status:       StatusUnknown,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Advance moves the proposal to status to, rejecting edges the state
// machine does not allow. An accepted inbound offer that waits on a
// confirmation or is STUCK can only settle: the platform keeps reporting it
// ACTIVE until the confirmation lands, so ACTIVE says nothing new.
func (p *TradeProposal) Advance(to Status, at time.Time) error {
	if !CanTransition(p.Status, to) || (to == StatusActive && p.Direction == DirectionInbound && p.Status.Lifecycle()) {
		return fmt.Errorf("proposal %s %s -> %s: %w", p.ID, p.Status, to, ErrInvalidTransition)
	}
	if p.Status == to {
		return nil
	}

	p.Status = to
	p.UpdatedAt = at
	return nil
}

// AttachDeal links the proposal to a deal. Relinking to the same deal is a no-op.
func (p *TradeProposal) AttachDeal(id DealID) error {
	if p.DealID != nil {
		if *p.DealID == id {
			return nil
		}
		return fmt.Errorf("proposal %s linked to deal %s, got %s: %w", p.ID, *p.DealID, id, ErrDealConflict)
	}

	p.DealID = &id
	return nil
}

func (p TradeProposal) NeedsNotification() bool {
	return p.Status.Notifiable() && p.DealID != nil && p.NotifiedStatus != p.Status
}

func (p *TradeProposal) MarkNotified() {
	p.NotifiedStatus = p.Status
	p.NotifyAttempts = 0
}
