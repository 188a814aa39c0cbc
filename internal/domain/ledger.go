package domain

import "strconv"

// DealID is the ledger's identifier for a pawn deal.
type DealID int64

func (id DealID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

type ValidationResult struct {
	Valid  bool
	DealID *DealID
	Reason string
}

type StatusNotification struct {
	ProposalID ProposalID
	DealID     *DealID
	Status     Status
}
