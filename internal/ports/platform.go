package ports

import (
	"context"
	"time"

	"github.com/bnema/tradebot/internal/domain"
)

// Authenticator opens and renews web sessions on the trading platform.
type Authenticator interface {
	ServerTime(ctx context.Context) (time.Time, error)
	LogOn(ctx context.Context, creds domain.Credentials, guardCode string) (domain.WebSession, error)
	Refresh(ctx context.Context, session domain.WebSession) (domain.WebSession, error)
}

// SessionSource hands out the latest session snapshot. Callers must not
// keep the snapshot beyond one operation.
type SessionSource interface {
	Current() (domain.WebSession, error)
}

type TradeOffers interface {
	Send(ctx context.Context, draft domain.OfferDraft) (domain.SendResult, error)
	Accept(ctx context.Context, id domain.ProposalID, partner domain.SteamID) (domain.AckStatus, error)
	Decline(ctx context.Context, id domain.ProposalID) error
	Get(ctx context.Context, id domain.ProposalID) (domain.Offer, error)
	List(ctx context.Context, historicalCutoff time.Time) ([]domain.Offer, error)
}

type Inventories interface {
	Fetch(ctx context.Context, owner domain.SteamID, appID uint32, contextID string) (domain.Inventory, error)
}

type Confirmations interface {
	Confirm(ctx context.Context, id domain.ProposalID) error
}
