package ledger

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLedger(t *testing.T, handler http.Handler, timeout time.Duration) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL+"/", server.Client(), timeout)
}

func TestVerify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want domain.ValidationResult
	}{
		{
			name: "expected trade",
			body: `{"valid":true,"deal_id":42,"expected_items":1}`,
			want: domain.ValidationResult{Valid: true, DealID: dealPtr(42)},
		},
		{
			name: "unknown trade",
			body: `{"valid":false,"reason":"no pending deals"}`,
			want: domain.ValidationResult{Valid: false, Reason: "no pending deals"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			mux := http.NewServeMux()
			mux.HandleFunc("GET /api/trades/verify/555", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			got, err := newTestLedger(t, mux, 0).Verify(context.Background(), "555")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVerifyFailuresAreLedgerUnavailable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			name: "malformed body",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				_, _ = io.WriteString(w, "<html>")
			},
		},
		{
			name: "timeout",
			handler: func(w http.ResponseWriter, r *http.Request) {
				select {
				case <-r.Context().Done():
				case <-time.After(time.Second):
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := newTestLedger(t, tt.handler, 50*time.Millisecond).Verify(context.Background(), "555")
			require.ErrorIs(t, err, domain.ErrLedgerUnavailable)
		})
	}
}

func TestNotifyStatus(t *testing.T) {
	t.Parallel()

	bodies := make(chan map[string]any, 1)
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/trades/987/status", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		bodies <- body
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	err := newTestLedger(t, mux, 0).NotifyStatus(context.Background(), domain.StatusNotification{
		ProposalID: "987",
		DealID:     dealPtr(42),
		Status:     domain.StatusAccepted,
	})
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"status": "ACCEPTED", "deal_id": float64(42)}, <-bodies)
}

func TestNotifyStatusFailure(t *testing.T) {
	t.Parallel()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/trades/987/status", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	err := newTestLedger(t, mux, 0).NotifyStatus(context.Background(), domain.StatusNotification{ProposalID: "987", Status: domain.StatusExpired})
	require.ErrorIs(t, err, domain.ErrLedgerUnavailable)
	assert.ErrorContains(t, err, "notify status EXPIRED")
}

func dealPtr(id domain.DealID) *domain.DealID {
	return &id
}
