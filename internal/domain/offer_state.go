package domain

import "strconv"

// OfferState is the platform's numeric trade offer state code.
type OfferState int

const (
	OfferStateInvalid                OfferState = 1
	OfferStateActive                 OfferState = 2
	OfferStateAccepted               OfferState = 3
	OfferStateCountered              OfferState = 4
	OfferStateExpired                OfferState = 5
	OfferStateCanceled               OfferState = 6
	OfferStateDeclined               OfferState = 7
	OfferStateInvalidItems           OfferState = 8
	OfferStateNeedsConfirmation      OfferState = 9
	OfferStateCanceledBySecondFactor OfferState = 10
	OfferStateInEscrow               OfferState = 11
)

// Canonical maps a platform code to the canonical status. It is a pure
// function of the code; escrow stays distinct from ACCEPTED.
func (s OfferState) Canonical() Status {
	switch s {
	case OfferStateInvalid:
		return StatusInvalid
	case OfferStateActive:
		return StatusActive
	case OfferStateAccepted:
		return StatusAccepted
	case OfferStateCountered:
		return StatusCountered
	case OfferStateExpired:
		return StatusExpired
	case OfferStateCanceled, OfferStateCanceledBySecondFactor:
		return StatusCanceled
	case OfferStateDeclined:
		return StatusDeclined
	case OfferStateInvalidItems:
		return StatusInvalidItems
	case OfferStateNeedsConfirmation:
		return StatusNeedsConfirmation
	case OfferStateInEscrow:
		return StatusInEscrow
	default:
		return StatusUnknown
	}
}

func (s OfferState) String() string {
	switch s {
	case OfferStateInvalid:
		return "Invalid"
	case OfferStateActive:
		return "Active"
	case OfferStateAccepted:
		return "Accepted"
	case OfferStateCountered:
		return "Countered"
	case OfferStateExpired:
		return "Expired"
	case OfferStateCanceled:
		return "Canceled"
	case OfferStateDeclined:
		return "Declined"
	case OfferStateInvalidItems:
		return "InvalidItems"
	case OfferStateNeedsConfirmation:
		return "CreatedNeedsConfirmation"
	case OfferStateCanceledBySecondFactor:
		return "CanceledBySecondFactor"
	case OfferStateInEscrow:
		return "InEscrow"
	default:
		return "Unknown(" + strconv.Itoa(int(s)) + ")"
	}
}
