package application

import "github.com/bnema/tradebot/internal/domain"

// CreateProposalCommand asks for one outbound offer tied to a ledger deal.
// AssetIDs are deduplicated; empty entries are dropped.
type CreateProposalCommand struct {
	DealID     domain.DealID
	Partner    domain.SteamID
	AssetIDs   []string
	TradeToken string
}
