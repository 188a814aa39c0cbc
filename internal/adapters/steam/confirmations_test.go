package steam

import (
	"context"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

func confirmationServer(t *testing.T, list string, allowed chan<- string) *Client {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /mobileconf/getlist", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "conf", query.Get("tag"))
		assert.Equal(t, "HVFUf++PLB/uel1FSjq64QXjcZ0=", query.Get("k"))
		assert.Equal(t, "1700000000", query.Get("t"))
		assert.Equal(t, DeviceID(botID), query.Get("p"))
		_, _ = io.WriteString(w, list)
	})
	mux.HandleFunc("GET /mobileconf/ajaxop", func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		assert.Equal(t, "allow", query.Get("op"))
		assert.Equal(t, "n1", query.Get("ck"))
		allowed <- query.Get("cid")
		_, _ = io.WriteString(w, `{"success":true}`)
	})

	return newTestClient(t, mux, Config{})
}

func TestConfirmMatchesCreator(t *testing.T) {
	t.Parallel()

	allowed := make(chan string, 1)
	client := confirmationServer(t, `{"success":true,"conf":[
		{"id":"c0","nonce":"n0","creator_id":"111","type":2},
		{"id":"c1","nonce":"n1","creator_id":"987","type":2}]}`, allowed)

	confirmer := NewConfirmer(client, testIdentitySecret, fixedClock(time.Unix(1700000000, 0)))
	require.NoError(t, confirmer.Confirm(context.Background(), "987"))
	assert.Equal(t, "c1", <-allowed)
}

func TestConfirmWithoutMatchingEntry(t *testing.T) {
	t.Parallel()

	client := confirmationServer(t, `{"success":true,"conf":[{"id":"c0","nonce":"n0","creator_id":"111","type":2}]}`, nil)

	err := NewConfirmer(client, testIdentitySecret, fixedClock(time.Unix(1700000000, 0))).Confirm(context.Background(), "987")
	require.ErrorIs(t, err, domain.ErrConfirmationNotFound)
}

func TestConfirmNeedsAuth(t *testing.T) {
	t.Parallel()

	client := confirmationServer(t, `{"success":false,"needauth":true}`, nil)

	err := NewConfirmer(client, testIdentitySecret, fixedClock(time.Unix(1700000000, 0))).Confirm(context.Background(), "987")
	require.ErrorIs(t, err, domain.ErrSessionUnavailable)
}
