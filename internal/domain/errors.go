package domain

import "errors"

var (
	ErrSessionUnavailable   = errors.New("platform session unavailable")
	ErrInvalidAccount       = errors.New("invalid account id")
	ErrPrivateInventory     = errors.New("private inventory or restricted account")
	ErrRateLimited          = errors.New("rate limited by platform")
	ErrProposalNotFound     = errors.New("proposal not found")
	ErrConfirmationNotFound = errors.New("no pending confirmation for proposal")
	ErrInvalidTransition    = errors.New("invalid proposal status transition")
	ErrEmptyItems           = errors.New("proposal item set is empty")
	ErrDealConflict         = errors.New("proposal already linked to a different deal")
	ErrLedgerUnavailable    = errors.New("ledger service unavailable")
	ErrSecretNotFound       = errors.New("secret not found")
)
