package ports

import (
	"context"
	"time"

	"github.com/bnema/tradebot/internal/domain"
)

type ProposalRepository interface {
	GetByID(ctx context.Context, id domain.ProposalID) (domain.TradeProposal, error)
	List(ctx context.Context) ([]domain.TradeProposal, error)
	Save(ctx context.Context, proposal domain.TradeProposal) error
	// PollCursor is the time of the last completed offer poll.
	PollCursor(ctx context.Context) (time.Time, error)
	SetPollCursor(ctx context.Context, at time.Time) error
}
