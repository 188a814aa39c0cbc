package steam

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	botID     = domain.SteamID(76561198012345678)
	partnerID = domain.SteamID(76561198000000001)
)

type staticSession struct {
	session domain.WebSession
	err     error
}

func (s staticSession) Current() (domain.WebSession, error) {
	return s.session, s.err
}

func testSession() staticSession {
	return staticSession{session: domain.WebSession{
		SteamID:     botID,
		SessionID:   "abc123",
		AccessToken: "token",
	}}
}

func newTestClient(t *testing.T, handler http.Handler, cfg Config) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cfg.CommunityURL = server.URL
	cfg.WebAPIURL = server.URL
	cfg.HTTPClient = server.Client()
	return NewClient(cfg, testSession())
}

func TestSendBuildsOfferForm(t *testing.T) {
	t.Parallel()

	type captured struct {
		form    url.Values
		referer string
		cookie  string
	}
	seen := make(chan captured, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tradeoffer/new/send", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		got := captured{form: r.PostForm, referer: r.Referer()}
		if cookie, err := r.Cookie("steamLoginSecure"); err == nil {
			got.cookie = cookie.Value
		}
		seen <- got
		_, _ = io.WriteString(w, `{"tradeofferid":"987","needs_mobile_confirmation":true}`)
	})

	offers := NewTradeOffers(newTestClient(t, mux, Config{}))
	result, err := offers.Send(context.Background(), domain.OfferDraft{
		Partner:    partnerID,
		TradeToken: "tok",
		Message:    "Deal #42",
		ItemsToGet: []domain.ItemRef{{AppID: 730, ContextID: "2", AssetID: "123"}},
	})
	require.NoError(t, err)

	assert.Equal(t, domain.SendResult{ProposalID: "987", Status: domain.AckPending}, result)

	got := <-seen
	gotForm := got.form
	assert.Equal(t, []string{"abc123"}, gotForm["sessionid"])
	assert.Equal(t, []string{"76561198000000001"}, gotForm["partner"])
	assert.Equal(t, []string{"Deal #42"}, gotForm["tradeoffermessage"])
	assert.JSONEq(t, `{"trade_offer_access_token":"tok"}`, gotForm["trade_offer_create_params"][0])
	assert.Contains(t, got.referer, "partner=39734273")
	assert.Contains(t, got.cookie, "76561198012345678")

	var payload tradeOfferPayload
	require.NoError(t, json.Unmarshal([]byte(gotForm["json_tradeoffer"][0]), &payload))
	assert.Equal(t, 2, payload.Version)
	assert.Empty(t, payload.Me.Assets)
	require.Len(t, payload.Them.Assets, 1)
	assert.Equal(t, "123", payload.Them.Assets[0].AssetID)
}

func TestSendWithoutConfirmation(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /tradeoffer/new/send", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"tradeofferid":"988"}`)
	})

	result, err := NewTradeOffers(newTestClient(t, mux, Config{})).Send(context.Background(), domain.OfferDraft{
		Partner:     partnerID,
		ItemsToGive: []domain.ItemRef{{AppID: 730, ContextID: "2", AssetID: "1"}},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.AckSent, result.Status)
}

func TestSendRejectsEmptyDraft(t *testing.T) {
	t.Parallel()

	_, err := NewTradeOffers(NewClient(Config{}, testSession())).Send(context.Background(), domain.OfferDraft{Partner: partnerID})
	require.ErrorIs(t, err, domain.ErrEmptyItems)
}

func TestSendSurfacesPlatformError(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /tradeoffer/new/send", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = io.WriteString(w, `{"strError":"There was an error sending your trade offer. (15)"}`)
	})

	_, err := NewTradeOffers(newTestClient(t, mux, Config{})).Send(context.Background(), domain.OfferDraft{
		Partner:    partnerID,
		ItemsToGet: []domain.ItemRef{{AppID: 730, ContextID: "2", AssetID: "1"}},
	})
	require.Error(t, err)

	var statusErr *StatusError
	require.ErrorAs(t, err, &statusErr)
	assert.Equal(t, http.StatusInternalServerError, statusErr.Code)
	assert.Contains(t, statusErr.Body, "(15)")
}

func TestSendRequiresSession(t *testing.T) {
	t.Parallel()

	client := NewClient(Config{}, staticSession{err: domain.ErrSessionUnavailable})
	_, err := NewTradeOffers(client).Send(context.Background(), domain.OfferDraft{
		Partner:    partnerID,
		ItemsToGet: []domain.ItemRef{{AssetID: "1"}},
	})
	require.ErrorIs(t, err, domain.ErrSessionUnavailable)
}

func TestAcceptReportsPendingConfirmation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.AckStatus
	}{
		{name: "needs mobile confirmation", body: `{"needs_mobile_confirmation":true}`, want: domain.AckPending},
		{name: "completed", body: `{"tradeid":"1"}`, want: domain.AckAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("POST /tradeoffer/555/accept", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "555", r.FormValue("tradeofferid"))
				assert.Equal(t, partnerID.String(), r.FormValue("partner"))
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := NewTradeOffers(newTestClient(t, mux, Config{})).Accept(context.Background(), "555", partnerID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAcceptReportsEscrow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		offer string
		want  domain.AckStatus
	}{
		{name: "held", offer: `{"response":{"offer":{"tradeofferid":"555","accountid_other":39734273,"trade_offer_state":11}}}`, want: domain.AckEscrow},
		{name: "settled", offer: `{"response":{"offer":{"tradeofferid":"555","accountid_other":39734273,"trade_offer_state":3}}}`, want: domain.AckAccepted},
		{name: "lookup failed", offer: `{"response":{}}`, want: domain.AckAccepted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("POST /tradeoffer/555/accept", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, `{"tradeid":"1"}`)
			})
			mux.HandleFunc("GET /IEconService/GetTradeOffer/v1/", func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "555", r.URL.Query().Get("tradeofferid"))
				_, _ = io.WriteString(w, tt.offer)
			})

			got, err := NewTradeOffers(newTestClient(t, mux, Config{})).Accept(context.Background(), "555", partnerID)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecline(t *testing.T) {
	t.Parallel()

	var called atomic.Bool
	mux := http.NewServeMux()
	mux.HandleFunc("POST /tradeoffer/555/decline", func(w http.ResponseWriter, r *http.Request) {
		called.Store(true)
		assert.Equal(t, "abc123", r.FormValue("sessionid"))
		_, _ = io.WriteString(w, `{"tradeofferid":"555"}`)
	})

	require.NoError(t, NewTradeOffers(newTestClient(t, mux, Config{})).Decline(context.Background(), "555"))
	assert.True(t, called.Load())
}

func TestGetOffer(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /IEconService/GetTradeOffer/v1/", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.URL.Query().Get("key"))
		assert.Empty(t, r.URL.Query().Get("access_token"))
		if r.URL.Query().Get("tradeofferid") != "987" {
			_, _ = io.WriteString(w, `{"response":{}}`)
			return
		}
		_, _ = io.WriteString(w, `{"response":{"offer":{
			"tradeofferid":"987","accountid_other":39734273,"trade_offer_state":3,
			"items_to_receive":[{"appid":730,"contextid":"2","assetid":"123"}],
			"is_our_offer":true,"time_created":1700000000,"time_updated":1700000100}}}`)
	})

	offers := NewTradeOffers(newTestClient(t, mux, Config{APIKey: "key"}))

	offer, err := offers.Get(context.Background(), "987")
	require.NoError(t, err)
	assert.Equal(t, partnerID, offer.Partner)
	assert.Equal(t, domain.OfferStateAccepted, offer.State)
	assert.Equal(t, domain.DirectionForward, offer.Direction())
	assert.Equal(t, time.Unix(1700000100, 0).UTC(), offer.UpdatedAt)
	assert.True(t, offer.ExpiresAt.IsZero())

	_, err = offers.Get(context.Background(), "404")
	require.ErrorIs(t, err, domain.ErrProposalNotFound)
}

func TestListMergesSentAndReceived(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /IEconService/GetTradeOffers/v1/", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "token", query.Get("access_token"))
		assert.Equal(t, "1", query.Get("active_only"))
		assert.Equal(t, "1700000000", query.Get("time_historical_cutoff"))
		_, _ = io.WriteString(w, `{"response":{
			"trade_offers_sent":[{"tradeofferid":"987","accountid_other":39734273,"trade_offer_state":2,"is_our_offer":true}],
			"trade_offers_received":[{"tradeofferid":"555","accountid_other":39734273,"trade_offer_state":2,
				"items_to_give":[{"appid":730,"contextid":"2","assetid":"9"}]}]}}`)
	})

	offers, err := NewTradeOffers(newTestClient(t, mux, Config{})).List(context.Background(), time.Unix(1700000000, 0))
	require.NoError(t, err)
	require.Len(t, offers, 2)
	assert.Equal(t, domain.ProposalID("987"), offers[0].ID)
	assert.Equal(t, domain.DirectionInbound, offers[1].Direction())
	assert.Equal(t, []domain.ItemRef{{AppID: 730, ContextID: "2", AssetID: "9"}}, offers[1].ItemsToGive)
}
