package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestParseSteamID(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    SteamID
		wantErr bool
	}{
		{name: "canonical id", raw: "76561198000000001", want: SteamID(76561198000000001)},
		{name: "vanity name", raw: "gaben", wantErr: true},
		{name: "short numeric", raw: "12345", wantErr: true},
		{name: "seventeen chars not numeric", raw: "7656119800000000x", wantErr: true},
		{name: "base id is not an individual", raw: "76561197960265728", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSteamID(tt.raw)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidAccount)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSteamIDAccountIDRoundTrip(t *testing.T) {
	id := SteamID(76561198000000001)

	assert.Equal(t, uint32(39734273), id.AccountID())
	assert.Equal(t, id, SteamIDFromAccountID(id.AccountID()))
}

func TestOfferStateCanonical(t *testing.T) {
	tests := []struct {
		code OfferState
		want Status
	}{
		{code: 1, want: StatusInvalid},
		{code: 2, want: StatusActive},
		{code: 3, want: StatusAccepted},
		{code: 4, want: StatusCountered},
		{code: 5, want: StatusExpired},
		{code: 6, want: StatusCanceled},
		{code: 7, want: StatusDeclined},
		{code: 8, want: StatusInvalidItems},
		{code: 9, want: StatusNeedsConfirmation},
		{code: 10, want: StatusCanceled},
		{code: 11, want: StatusInEscrow},
		{code: 0, want: StatusUnknown},
		{code: 42, want: StatusUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.code.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.code.Canonical())
		})
	}
}

func TestOfferStateCanonicalIsPure(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		code := OfferState(rapid.IntRange(-5, 20).Draw(t, "code"))

		first := code.Canonical()
		second := code.Canonical()
		if first != second {
			t.Fatalf("code %d mapped to %s then %s", code, first, second)
		}
		if code == OfferStateInEscrow && first == StatusAccepted {
			t.Fatalf("escrow conflated with accepted")
		}
	})
}

func TestInboundStateMachine(t *testing.T) {
	now := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		path []Status
		ok   bool
	}{
		{name: "accept without confirmation", path: []Status{StatusPendingValidation, StatusAccepting, StatusAccepted}, ok: true},
		{name: "accept with confirmation", path: []Status{StatusPendingValidation, StatusAccepting, StatusPendingConfirmation, StatusAccepted}, ok: true},
		{name: "confirmation failure", path: []Status{StatusPendingValidation, StatusAccepting, StatusPendingConfirmation, StatusStuck}, ok: true},
		{name: "ledger rejects", path: []Status{StatusPendingValidation, StatusDeclined}, ok: true},
		{name: "cannot skip validation", path: []Status{StatusPendingValidation, StatusAccepted}, ok: false},
		{name: "declined is final", path: []Status{StatusPendingValidation, StatusDeclined, StatusAccepting}, ok: false},
		{name: "platform cannot reopen validation", path: []Status{StatusPendingValidation, StatusActive}, ok: false},
		{name: "accepting is not active", path: []Status{StatusPendingValidation, StatusAccepting, StatusActive}, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewProposal("555", DirectionInbound, SteamID(76561198000000001), []ItemRef{{AppID: 730, ContextID: "2", AssetID: "1"}}, now)
			require.NoError(t, err)

			var lastErr error
			for _, next := range tt.path {
				if lastErr = p.Advance(next, now); lastErr != nil {
					break
				}
			}

			if tt.ok {
				require.NoError(t, lastErr)
				assert.Equal(t, tt.path[len(tt.path)-1], p.Status)
			} else {
				require.ErrorIs(t, lastErr, ErrInvalidTransition)
			}
		})
	}
}

func TestStuckYieldsToPlatformVerdict(t *testing.T) {
	assert.True(t, CanTransition(StatusStuck, StatusAccepted))
	assert.True(t, CanTransition(StatusStuck, StatusExpired))
	assert.True(t, CanTransition(StatusStuck, StatusActive))
	assert.False(t, CanTransition(StatusStuck, StatusNeedsConfirmation))
	assert.False(t, CanTransition(StatusStuck, StatusPendingValidation))
	assert.False(t, CanTransition(StatusAccepted, StatusStuck))
}

func TestInboundConfirmationCannotFallBackToActive(t *testing.T) {
	now := time.Now()
	for _, from := range []Status{StatusPendingConfirmation, StatusStuck} {
		inbound := TradeProposal{ID: "555", Direction: DirectionInbound, Status: from}
		require.ErrorIs(t, inbound.Advance(StatusActive, now), ErrInvalidTransition, from)
		assert.Equal(t, from, inbound.Status)

		outbound := TradeProposal{ID: "987", Direction: DirectionForward, Status: from}
		require.NoError(t, outbound.Advance(StatusActive, now), from)
	}

	inbound := TradeProposal{ID: "555", Direction: DirectionInbound, Status: StatusStuck}
	require.NoError(t, inbound.Advance(StatusAccepted, now))
}

func TestNewProposalRejectsEmptyItems(t *testing.T) {
	_, err := NewProposal("987", DirectionForward, SteamID(76561198000000001), nil, time.Now())
	require.ErrorIs(t, err, ErrEmptyItems)

	_, err = NewProposal("987", DirectionForward, SteamID(1), []ItemRef{{AssetID: "1"}}, time.Now())
	require.ErrorIs(t, err, ErrInvalidAccount)
}

func TestAttachDealKeepsSingleDeal(t *testing.T) {
	p := TradeProposal{ID: "987"}

	require.NoError(t, p.AttachDeal(42))
	require.NoError(t, p.AttachDeal(42))
	require.ErrorIs(t, p.AttachDeal(43), ErrDealConflict)
	assert.Equal(t, DealID(42), *p.DealID)
}

func TestNeedsNotification(t *testing.T) {
	deal := DealID(42)
	p := TradeProposal{ID: "987", Status: StatusAccepted, DealID: &deal}
	assert.True(t, p.NeedsNotification())

	p.MarkNotified()
	assert.False(t, p.NeedsNotification())

	p.Status = StatusStuck
	assert.False(t, p.NeedsNotification())

	p = TradeProposal{ID: "555", Status: StatusDeclined}
	assert.False(t, p.NeedsNotification(), "no deal, nothing to tell the ledger")
}

func TestOfferDirection(t *testing.T) {
	item := []ItemRef{{AppID: 730, ContextID: "2", AssetID: "123"}}

	assert.Equal(t, DirectionInbound, Offer{IsOurOffer: false, ItemsToGive: item}.Direction())
	assert.Equal(t, DirectionForward, Offer{IsOurOffer: true, ItemsToReceive: item}.Direction())
	assert.Equal(t, DirectionReverse, Offer{IsOurOffer: true, ItemsToGive: item}.Direction())
}

func TestInventoryTradable(t *testing.T) {
	inv := Inventory{Items: []InventoryItem{
		{AssetID: "1", Tradable: true},
		{AssetID: "2"},
		{AssetID: "3", Tradable: true},
	}}

	tradable := inv.Tradable()
	require.Len(t, tradable, 2)
	assert.Equal(t, "3", tradable[1].AssetID)
}

func TestCredentialsValidate(t *testing.T) {
	err := Credentials{AccountName: "bot"}.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "password is required")
	assert.Contains(t, err.Error(), "identity secret is required")

	require.NoError(t, Credentials{AccountName: "bot", Password: "p", SharedSecret: "s", IdentitySecret: "i"}.Validate())
}
