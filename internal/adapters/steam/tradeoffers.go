package steam

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

// TradeOffers implements the trade offer endpoints of the community site
// (send, accept, decline) and of IEconService (read).
type TradeOffers struct {
	client *Client
}

var _ ports.TradeOffers = (*TradeOffers)(nil)

func NewTradeOffers(client *Client) *TradeOffers {
	return &TradeOffers{client: client}
}

type tradeAsset struct {
	AppID     uint32 `json:"appid"`
	ContextID string `json:"contextid"`
	Amount    int    `json:"amount"`
	AssetID   string `json:"assetid"`
}

type tradeSide struct {
	Assets   []tradeAsset `json:"assets"`
	Currency []any        `json:"currency"`
	Ready    bool         `json:"ready"`
}

type tradeOfferPayload struct {
	NewVersion bool      `json:"newversion"`
	Version    int       `json:"version"`
	Me         tradeSide `json:"me"`
	Them       tradeSide `json:"them"`
}

type createParams struct {
	AccessToken string `json:"trade_offer_access_token,omitempty"`
}

type sendResponse struct {
	TradeOfferID            string `json:"tradeofferid"`
	NeedsMobileConfirmation bool   `json:"needs_mobile_confirmation"`
	NeedsEmailConfirmation  bool   `json:"needs_email_confirmation"`
}

type acceptResponse struct {
	TradeID                 string `json:"tradeid"`
	NeedsMobileConfirmation bool   `json:"needs_mobile_confirmation"`
	NeedsEmailConfirmation  bool   `json:"needs_email_confirmation"`
}

type offerAsset struct {
	AppID     uint32 `json:"appid"`
	ContextID string `json:"contextid"`
	AssetID   string `json:"assetid"`
}

type offerJSON struct {
	TradeOfferID    string       `json:"tradeofferid"`
	AccountIDOther  uint32       `json:"accountid_other"`
	Message         string       `json:"message"`
	ExpirationTime  int64        `json:"expiration_time"`
	TradeOfferState int          `json:"trade_offer_state"`
	ItemsToGive     []offerAsset `json:"items_to_give"`
	ItemsToReceive  []offerAsset `json:"items_to_receive"`
	IsOurOffer      bool         `json:"is_our_offer"`
	TimeCreated     int64        `json:"time_created"`
	TimeUpdated     int64        `json:"time_updated"`
}

type getOfferResponse struct {
	Response struct {
		Offer *offerJSON `json:"offer"`
	} `json:"response"`
}

type getOffersResponse struct {
	Response struct {
		Sent     []offerJSON `json:"trade_offers_sent"`
		Received []offerJSON `json:"trade_offers_received"`
	} `json:"response"`
}

func (t *TradeOffers) Send(ctx context.Context, draft domain.OfferDraft) (domain.SendResult, error) {
	if len(draft.ItemsToGive) == 0 && len(draft.ItemsToGet) == 0 {
		return domain.SendResult{}, fmt.Errorf("send trade offer: %w", domain.ErrEmptyItems)
	}

	session, err := t.client.session()
	if err != nil {
		return domain.SendResult{}, fmt.Errorf("send trade offer: %w", err)
	}

	offer := tradeOfferPayload{
		NewVersion: true,
		Version:    len(draft.ItemsToGive) + len(draft.ItemsToGet) + 1,
		Me:         tradeSide{Assets: toTradeAssets(draft.ItemsToGive), Currency: []any{}},
		Them:       tradeSide{Assets: toTradeAssets(draft.ItemsToGet), Currency: []any{}},
	}
	offerJSON, err := json.Marshal(offer)
	if err != nil {
		return domain.SendResult{}, fmt.Errorf("encode trade offer: %w", err)
	}
	paramsJSON, err := json.Marshal(createParams{AccessToken: draft.TradeToken})
	if err != nil {
		return domain.SendResult{}, fmt.Errorf("encode trade offer params: %w", err)
	}

	refererQuery := url.Values{"partner": {strconv.FormatUint(uint64(draft.Partner.AccountID()), 10)}}
	if draft.TradeToken != "" {
		refererQuery.Set("token", draft.TradeToken)
	}

	var payload sendResponse
	err = t.client.do(ctx, request{
		op:       "send trade offer",
		method:   http.MethodPost,
		endpoint: t.client.communityEndpoint("/tradeoffer/new/send", nil),
		referer:  t.client.communityEndpoint("/tradeoffer/new/", refererQuery),
		session:  &session,
		form: url.Values{
			"sessionid":                 {session.SessionID},
			"serverid":                  {"1"},
			"partner":                   {draft.Partner.String()},
			"tradeoffermessage":         {draft.Message},
			"json_tradeoffer":           {string(offerJSON)},
			"captcha":                   {""},
			"trade_offer_create_params": {string(paramsJSON)},
		},
	}, &payload)
	if err != nil {
		return domain.SendResult{}, err
	}
	if payload.TradeOfferID == "" {
		return domain.SendResult{}, fmt.Errorf("send trade offer: response carried no offer id")
	}

	status := domain.AckSent
	if payload.NeedsMobileConfirmation || payload.NeedsEmailConfirmation {
		status = domain.AckPending
	}

	return domain.SendResult{ProposalID: domain.ProposalID(payload.TradeOfferID), Status: status}, nil
}

func (t *TradeOffers) Accept(ctx context.Context, id domain.ProposalID, partner domain.SteamID) (domain.AckStatus, error) {
	session, err := t.client.session()
	if err != nil {
		return "", fmt.Errorf("accept trade offer %s: %w", id, err)
	}

	var payload acceptResponse
	err = t.client.do(ctx, request{
		op:       fmt.Sprintf("accept trade offer %s", id),
		method:   http.MethodPost,
		endpoint: t.client.communityEndpoint(fmt.Sprintf("/tradeoffer/%s/accept", id), nil),
		referer:  t.client.OfferURL(id),
		session:  &session,
		form: url.Values{
			"sessionid":    {session.SessionID},
			"serverid":     {"1"},
			"tradeofferid": {string(id)},
			"partner":      {partner.String()},
			"captcha":      {""},
		},
	}, &payload)
	if err != nil {
		return "", err
	}

	if payload.NeedsMobileConfirmation || payload.NeedsEmailConfirmation {
		return domain.AckPending, nil
	}

	// The accept response does not say whether the trade went into a
	// hold; the offer state does. A failed lookup reports a plain accept and
	// the tracker picks up state 11 on its next poll.
	offer, err := t.Get(ctx, id)
	if err == nil && offer.State == domain.OfferStateInEscrow {
		return domain.AckEscrow, nil
	}
	return domain.AckAccepted, nil
}

func (t *TradeOffers) Decline(ctx context.Context, id domain.ProposalID) error {
	session, err := t.client.session()
	if err != nil {
		return fmt.Errorf("decline trade offer %s: %w", id, err)
	}

	return t.client.do(ctx, request{
		op:       fmt.Sprintf("decline trade offer %s", id),
		method:   http.MethodPost,
		endpoint: t.client.communityEndpoint(fmt.Sprintf("/tradeoffer/%s/decline", id), nil),
		referer:  t.client.OfferURL(id),
		session:  &session,
		form:     url.Values{"sessionid": {session.SessionID}},
	}, nil)
}

func (t *TradeOffers) Get(ctx context.Context, id domain.ProposalID) (domain.Offer, error) {
	session, err := t.client.session()
	if err != nil {
		return domain.Offer{}, fmt.Errorf("get trade offer %s: %w", id, err)
	}

	var payload getOfferResponse
	err = t.client.do(ctx, request{
		op:     fmt.Sprintf("get trade offer %s", id),
		method: http.MethodGet,
		endpoint: t.client.webAPIEndpoint("/IEconService/GetTradeOffer/v1/", url.Values{
			"tradeofferid": {string(id)},
			"language":     {"english"},
		}, session),
	}, &payload)
	if err != nil {
		return domain.Offer{}, err
	}
	if payload.Response.Offer == nil || payload.Response.Offer.TradeOfferID == "" {
		return domain.Offer{}, fmt.Errorf("get trade offer %s: %w", id, domain.ErrProposalNotFound)
	}

	return payload.Response.Offer.toDomain(), nil
}

// List returns every active offer plus those that changed after cutoff.
func (t *TradeOffers) List(ctx context.Context, historicalCutoff time.Time) ([]domain.Offer, error) {
	session, err := t.client.session()
	if err != nil {
		return nil, fmt.Errorf("list trade offers: %w", err)
	}

	query := url.Values{
		"get_sent_offers":     {"1"},
		"get_received_offers": {"1"},
		"active_only":         {"1"},
		"language":            {"english"},
	}
	if !historicalCutoff.IsZero() {
		query.Set("time_historical_cutoff", strconv.FormatInt(historicalCutoff.Unix(), 10))
	}

	var payload getOffersResponse
	err = t.client.do(ctx, request{
		op:       "list trade offers",
		method:   http.MethodGet,
		endpoint: t.client.webAPIEndpoint("/IEconService/GetTradeOffers/v1/", query, session),
	}, &payload)
	if err != nil {
		return nil, err
	}

	offers := make([]domain.Offer, 0, len(payload.Response.Sent)+len(payload.Response.Received))
	for _, offer := range payload.Response.Sent {
		offers = append(offers, offer.toDomain())
	}
	for _, offer := range payload.Response.Received {
		offers = append(offers, offer.toDomain())
	}

	return offers, nil
}

func (o offerJSON) toDomain() domain.Offer {
	return domain.Offer{
		ID:             domain.ProposalID(o.TradeOfferID),
		Partner:        domain.SteamIDFromAccountID(o.AccountIDOther),
		Message:        o.Message,
		State:          domain.OfferState(o.TradeOfferState),
		ItemsToGive:    fromOfferAssets(o.ItemsToGive),
		ItemsToReceive: fromOfferAssets(o.ItemsToReceive),
		IsOurOffer:     o.IsOurOffer,
		CreatedAt:      unixOrZero(o.TimeCreated),
		UpdatedAt:      unixOrZero(o.TimeUpdated),
		ExpiresAt:      unixOrZero(o.ExpirationTime),
	}
}

func toTradeAssets(items []domain.ItemRef) []tradeAsset {
	assets := make([]tradeAsset, 0, len(items))
	for _, item := range items {
		assets = append(assets, tradeAsset{
			AppID:     item.AppID,
			ContextID: item.ContextID,
			Amount:    1,
			AssetID:   item.AssetID,
		})
	}
	return assets
}

func fromOfferAssets(assets []offerAsset) []domain.ItemRef {
	if len(assets) == 0 {
		return nil
	}

	items := make([]domain.ItemRef, 0, len(assets))
	for _, asset := range assets {
		items = append(items, domain.ItemRef{AppID: asset.AppID, ContextID: asset.ContextID, AssetID: asset.AssetID})
	}
	return items
}

func unixOrZero(seconds int64) time.Time {
	if seconds <= 0 {
		return time.Time{}
	}
	return time.Unix(seconds, 0).UTC()
}
