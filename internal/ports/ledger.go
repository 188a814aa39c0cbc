package ports

import (
	"context"

	"github.com/bnema/tradebot/internal/domain"
)

type Ledger interface {
	Verify(ctx context.Context, id domain.ProposalID) (domain.ValidationResult, error)
	NotifyStatus(ctx context.Context, notification domain.StatusNotification) error
}
