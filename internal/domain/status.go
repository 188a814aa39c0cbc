package domain

// Status is the canonical, platform-independent status of a proposal. It
// covers both statuses reported by the platform and the local lifecycle
// states the coordinator moves a proposal through.
type Status string

const (
	StatusUnknown      Status = "UNKNOWN"
	StatusActive       Status = "ACTIVE"
	StatusAccepted     Status = "ACCEPTED"
	StatusDeclined     Status = "DECLINED"
	StatusCountered    Status = "COUNTERED"
	StatusExpired      Status = "EXPIRED"
	StatusCanceled     Status = "CANCELED"
	StatusInvalid      Status = "INVALID"
	StatusInvalidItems Status = "INVALID_ITEMS"
	StatusInEscrow     Status = "IN_ESCROW"

	StatusNeedsConfirmation   Status = "NEEDS_CONFIRMATION"
	StatusPendingValidation   Status = "PENDING_VALIDATION"
	StatusAccepting           Status = "ACCEPTING"
	StatusPendingConfirmation Status = "PENDING_CONFIRMATION"
	StatusStuck               Status = "STUCK"
)

func (s Status) Terminal() bool {
	switch s {
	case StatusAccepted, StatusDeclined, StatusCountered, StatusExpired,
		StatusCanceled, StatusInvalid, StatusInvalidItems, StatusStuck:
		return true
	default:
		return false
	}
}

// Notifiable reports whether reaching s is relayed to the ledger. STUCK is
// terminal but surfaced as an alert instead.
func (s Status) Notifiable() bool {
	return s.Terminal() && s != StatusStuck
}

// AwaitingConfirmation covers both the platform-reported and the local
// lifecycle flavour of "needs a mobile confirmation".
func (s Status) AwaitingConfirmation() bool {
	return s == StatusNeedsConfirmation || s == StatusPendingConfirmation
}

// Lifecycle reports whether s is a local status the platform never reports.
func (s Status) Lifecycle() bool {
	switch s {
	case StatusPendingValidation, StatusAccepting, StatusPendingConfirmation, StatusStuck:
		return true
	default:
		return false
	}
}

// ParseStatus returns StatusUnknown for anything outside the vocabulary.
func ParseStatus(raw string) Status {
	s := Status(raw)
	switch s {
	case StatusActive, StatusAccepted, StatusDeclined, StatusCountered, StatusExpired,
		StatusCanceled, StatusInvalid, StatusInvalidItems, StatusInEscrow,
		StatusNeedsConfirmation, StatusPendingValidation, StatusAccepting,
		StatusPendingConfirmation, StatusStuck:
		return s
	default:
		return StatusUnknown
	}
}

// CanTransition encodes the proposal state machine. Platform-reported
// statuses may arrive at any non-terminal point; local lifecycle statuses
// only follow their explicit edges. STUCK yields to a later platform verdict,
// including ACTIVE once an outbound offer was confirmed out of band.
// TradeProposal.Advance keeps inbound proposals off that edge.
func CanTransition(from, to Status) bool {
	if from == to {
		return true
	}

	switch from {
	case StatusStuck:
		return to.Terminal() || to == StatusActive
	case StatusInEscrow:
		return to == StatusAccepted || to == StatusCanceled || to == StatusInvalid
	}
	if from.Terminal() {
		return false
	}

	switch to {
	case StatusPendingValidation:
		return from == StatusUnknown
	case StatusAccepting:
		return from == StatusPendingValidation
	case StatusPendingConfirmation:
		return from == StatusUnknown || from == StatusAccepting || from == StatusActive || from == StatusNeedsConfirmation
	case StatusStuck:
		return from == StatusAccepting || from.AwaitingConfirmation() || from == StatusActive
	case StatusActive:
		return !from.Lifecycle() || from == StatusPendingConfirmation
	case StatusNeedsConfirmation:
		return !from.Lifecycle()
	case StatusDeclined:
		return true
	case StatusAccepted:
		return from != StatusPendingValidation
	default:
		return to.Terminal() || to == StatusInEscrow
	}
}
