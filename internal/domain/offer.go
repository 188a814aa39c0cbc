package domain

import "time"

// Offer is a trade offer as the platform currently reports it.
type Offer struct {
	ID             ProposalID
	Partner        SteamID
	Message        string
	State          OfferState
	ItemsToGive    []ItemRef
	ItemsToReceive []ItemRef
	IsOurOffer     bool
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ExpiresAt      time.Time
}

func (o Offer) Direction() Direction {
	switch {
	case !o.IsOurOffer:
		return DirectionInbound
	case len(o.ItemsToGive) > 0 && len(o.ItemsToReceive) == 0:
		return DirectionReverse
	default:
		return DirectionForward
	}
}

// Items returns the side of the offer that moves assets, giving side first.
func (o Offer) Items() []ItemRef {
	items := make([]ItemRef, 0, len(o.ItemsToGive)+len(o.ItemsToReceive))
	items = append(items, o.ItemsToGive...)
	return append(items, o.ItemsToReceive...)
}

// AckStatus is the platform's immediate answer to a send or accept.
type AckStatus string

const (
	AckSent     AckStatus = "sent"
	AckPending  AckStatus = "pending"
	AckAccepted AckStatus = "accepted"
	AckEscrow   AckStatus = "escrow"
)

func (a AckStatus) NeedsConfirmation() bool {
	return a == AckPending
}

type SendResult struct {
	ProposalID ProposalID
	Status     AckStatus
}

// OfferDraft is an outbound offer before the platform assigns it an id.
type OfferDraft struct {
	Partner     SteamID
	TradeToken  string
	Message     string
	ItemsToGive []ItemRef
	ItemsToGet  []ItemRef
}
