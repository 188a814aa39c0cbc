package steam

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

const confirmationTypeTrade = 2

// Confirmer approves pending mobile confirmations for trade offers.
type Confirmer struct {
	client         *Client
	identitySecret string
	clock          ports.Clock
}

var _ ports.Confirmations = (*Confirmer)(nil)

// NewConfirmer signs confirmation requests with identitySecret. clock must
// be aligned with platform time or the signatures are rejected.
func NewConfirmer(client *Client, identitySecret string, clock ports.Clock) *Confirmer {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	return &Confirmer{client: client, identitySecret: identitySecret, clock: clock}
}

type confirmationEntry struct {
	ID        string `json:"id"`
	Nonce     string `json:"nonce"`
	CreatorID string `json:"creator_id"`
	Type      int    `json:"type"`
}

type confirmationList struct {
	Success  bool                `json:"success"`
	NeedAuth bool                `json:"needauth"`
	Message  string              `json:"message"`
	Conf     []confirmationEntry `json:"conf"`
}

type confirmationOp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

func (c *Confirmer) Confirm(ctx context.Context, id domain.ProposalID) error {
	session, err := c.client.session()
	if err != nil {
		return fmt.Errorf("confirm trade offer %s: %w", id, err)
	}

	entry, err := c.find(ctx, session, id)
	if err != nil {
		return err
	}

	query, err := c.signedQuery(session, "allow")
	if err != nil {
		return fmt.Errorf("confirm trade offer %s: %w", id, err)
	}
	query.Set("op", "allow")
	query.Set("cid", entry.ID)
	query.Set("ck", entry.Nonce)

	var payload confirmationOp
	err = c.client.do(ctx, request{
		op:       fmt.Sprintf("confirm trade offer %s", id),
		method:   http.MethodGet,
		endpoint: c.client.communityEndpoint("/mobileconf/ajaxop", query),
		session:  &session,
		mobile:   true,
	}, &payload)
	if err != nil {
		return err
	}
	if !payload.Success {
		return fmt.Errorf("confirm trade offer %s: platform refused: %s", id, valueOr(payload.Message, "no reason given"))
	}

	return nil
}

func (c *Confirmer) find(ctx context.Context, session domain.WebSession, id domain.ProposalID) (confirmationEntry, error) {
	query, err := c.signedQuery(session, "conf")
	if err != nil {
		return confirmationEntry{}, fmt.Errorf("list confirmations: %w", err)
	}

	var payload confirmationList
	err = c.client.do(ctx, request{
		op:       "list confirmations",
		method:   http.MethodGet,
		endpoint: c.client.communityEndpoint("/mobileconf/getlist", query),
		session:  &session,
		mobile:   true,
	}, &payload)
	if err != nil {
		return confirmationEntry{}, err
	}
	if payload.NeedAuth {
		return confirmationEntry{}, fmt.Errorf("list confirmations: %w", domain.ErrSessionUnavailable)
	}
	if !payload.Success {
		return confirmationEntry{}, fmt.Errorf("list confirmations: %s", valueOr(payload.Message, "request failed"))
	}

	for _, entry := range payload.Conf {
		if entry.Type == confirmationTypeTrade && entry.CreatorID == string(id) {
			return entry, nil
		}
	}

	return confirmationEntry{}, fmt.Errorf("confirm trade offer %s: %w", id, domain.ErrConfirmationNotFound)
}

func (c *Confirmer) signedQuery(session domain.WebSession, tag string) (url.Values, error) {
	now := c.clock.Now()
	key, err := ConfirmationKey(c.identitySecret, now, tag)
	if err != nil {
		return nil, err
	}

	return url.Values{
		"p":   {DeviceID(session.SteamID)},
		"a":   {session.SteamID.String()},
		"k":   {key},
		"t":   {strconv.FormatInt(now.Unix(), 10)},
		"m":   {"react"},
		"tag": {tag},
	}, nil
}
