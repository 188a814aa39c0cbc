package steam

import (
	"context"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

const (
	guardCodeTypeDevice   = 3
	defaultPollInterval   = 5 * time.Second
	defaultMaxPollAttempt = 10
)

var ErrLoginTimeout = errors.New("timed out waiting for login approval")

// Authenticator logs the bot account on through IAuthenticationService.
type Authenticator struct {
	client          *Client
	PollInterval    time.Duration
	MaxPollAttempts int
}

var _ ports.Authenticator = (*Authenticator)(nil)

func NewAuthenticator(client *Client) *Authenticator {
	return &Authenticator{client: client}
}

type rsaKeyResponse struct {
	Response struct {
		PublicKeyMod string `json:"publickey_mod"`
		PublicKeyExp string `json:"publickey_exp"`
		Timestamp    string `json:"timestamp"`
	} `json:"response"`
}

type beginAuthResponse struct {
	Response struct {
		ClientID             string  `json:"client_id"`
		RequestID            string  `json:"request_id"`
		Interval             float64 `json:"interval"`
		SteamID              string  `json:"steamid"`
		AllowedConfirmations []struct {
			ConfirmationType int `json:"confirmation_type"`
		} `json:"allowed_confirmations"`
	} `json:"response"`
}

type pollAuthResponse struct {
	Response struct {
		RefreshToken string `json:"refresh_token"`
		AccessToken  string `json:"access_token"`
		AccountName  string `json:"account_name"`
	} `json:"response"`
}

type accessTokenResponse struct {
	Response struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	} `json:"response"`
}

type queryTimeResponse struct {
	Response struct {
		ServerTime string `json:"server_time"`
	} `json:"response"`
}

func (a *Authenticator) ServerTime(ctx context.Context) (time.Time, error) {
	var payload queryTimeResponse
	err := a.client.do(ctx, request{
		op:       "query server time",
		method:   http.MethodPost,
		endpoint: buildURL(a.client.webAPIURL, "/ITwoFactorService/QueryTime/v1/", nil),
		form:     url.Values{},
	}, &payload)
	if err != nil {
		return time.Time{}, err
	}

	seconds, err := strconv.ParseInt(payload.Response.ServerTime, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("query server time: parse %q: %w", payload.Response.ServerTime, err)
	}

	return time.Unix(seconds, 0), nil
}

func (a *Authenticator) LogOn(ctx context.Context, creds domain.Credentials, guardCode string) (domain.WebSession, error) {
	if err := creds.Validate(); err != nil {
		return domain.WebSession{}, fmt.Errorf("log on: %w", err)
	}

	encrypted, timestamp, err := a.encryptPassword(ctx, creds.AccountName, creds.Password)
	if err != nil {
		return domain.WebSession{}, err
	}

	var begin beginAuthResponse
	err = a.client.do(ctx, request{
		op:       "begin auth session",
		method:   http.MethodPost,
		endpoint: buildURL(a.client.webAPIURL, "/IAuthenticationService/BeginAuthSessionViaCredentials/v1/", nil),
		form: url.Values{
			"account_name":         {creds.AccountName},
			"encrypted_password":   {encrypted},
			"encryption_timestamp": {timestamp},
			"remember_login":       {"true"},
			"persistence":          {"1"},
			"website_id":           {"Mobile"},
		},
	}, &begin)
	if err != nil {
		return domain.WebSession{}, err
	}
	if begin.Response.ClientID == "" || begin.Response.SteamID == "" {
		return domain.WebSession{}, errors.New("begin auth session: credentials rejected")
	}

	steamID, err := domain.ParseSteamID(begin.Response.SteamID)
	if err != nil {
		return domain.WebSession{}, fmt.Errorf("begin auth session: %w", err)
	}

	if needsDeviceCode(begin) {
		err = a.client.do(ctx, request{
			op:       "submit guard code",
			method:   http.MethodPost,
			endpoint: buildURL(a.client.webAPIURL, "/IAuthenticationService/UpdateAuthSessionWithSteamGuardCode/v1/", nil),
			form: url.Values{
				"client_id": {begin.Response.ClientID},
				"steamid":   {begin.Response.SteamID},
				"code":      {guardCode},
				"code_type": {strconv.Itoa(guardCodeTypeDevice)},
			},
		}, nil)
		if err != nil {
			return domain.WebSession{}, err
		}
	}

	interval := a.PollInterval
	if interval <= 0 {
		interval = time.Duration(begin.Response.Interval * float64(time.Second))
	}
	if interval <= 0 {
		interval = defaultPollInterval
	}

	tokens, err := a.pollTokens(ctx, begin.Response.ClientID, begin.Response.RequestID, interval)
	if err != nil {
		return domain.WebSession{}, err
	}

	sessionID, err := newSessionID()
	if err != nil {
		return domain.WebSession{}, err
	}

	return domain.WebSession{
		SteamID:      steamID,
		SessionID:    sessionID,
		AccessToken:  tokens.Response.AccessToken,
		RefreshToken: tokens.Response.RefreshToken,
		IssuedAt:     time.Now(),
	}, nil
}

// Refresh trades the refresh token for a new access token and keeps the
// session id, so cookies set on other components stay coherent.
func (a *Authenticator) Refresh(ctx context.Context, session domain.WebSession) (domain.WebSession, error) {
	if session.RefreshToken == "" {
		return domain.WebSession{}, fmt.Errorf("refresh session: %w", domain.ErrSessionUnavailable)
	}

	var payload accessTokenResponse
	err := a.client.do(ctx, request{
		op:       "refresh access token",
		method:   http.MethodPost,
		endpoint: buildURL(a.client.webAPIURL, "/IAuthenticationService/GenerateAccessTokenForApp/v1/", nil),
		form: url.Values{
			"refresh_token": {session.RefreshToken},
			"steamid":       {session.SteamID.String()},
			"renewal_type":  {"1"},
		},
	}, &payload)
	if err != nil {
		return domain.WebSession{}, err
	}
	if payload.Response.AccessToken == "" {
		return domain.WebSession{}, fmt.Errorf("refresh access token: empty token: %w", domain.ErrSessionUnavailable)
	}

	refreshed := session
	refreshed.AccessToken = payload.Response.AccessToken
	if payload.Response.RefreshToken != "" {
		refreshed.RefreshToken = payload.Response.RefreshToken
	}
	refreshed.IssuedAt = time.Now()

	return refreshed, nil
}

func (a *Authenticator) encryptPassword(ctx context.Context, accountName, password string) (string, string, error) {
	var key rsaKeyResponse
	err := a.client.do(ctx, request{
		op:       "get password rsa key",
		method:   http.MethodGet,
		endpoint: buildURL(a.client.webAPIURL, "/IAuthenticationService/GetPasswordRSAPublicKey/v1/", url.Values{"account_name": {accountName}}),
	}, &key)
	if err != nil {
		return "", "", err
	}

	modulus, ok := new(big.Int).SetString(key.Response.PublicKeyMod, 16)
	if !ok {
		return "", "", fmt.Errorf("get password rsa key: bad modulus")
	}
	exponent, err := strconv.ParseInt(key.Response.PublicKeyExp, 16, 32)
	if err != nil {
		return "", "", fmt.Errorf("get password rsa key: bad exponent: %w", err)
	}

	encrypted, err := rsa.EncryptPKCS1v15(rand.Reader, &rsa.PublicKey{N: modulus, E: int(exponent)}, []byte(password))
	if err != nil {
		return "", "", fmt.Errorf("encrypt password: %w", err)
	}

	return base64.StdEncoding.EncodeToString(encrypted), key.Response.Timestamp, nil
}

func (a *Authenticator) pollTokens(ctx context.Context, clientID, requestID string, interval time.Duration) (pollAuthResponse, error) {
	attempts := a.MaxPollAttempts
	if attempts <= 0 {
		attempts = defaultMaxPollAttempt
	}

	for attempt := 0; attempt < attempts; attempt++ {
		var payload pollAuthResponse
		err := a.client.do(ctx, request{
			op:       "poll auth session",
			method:   http.MethodPost,
			endpoint: buildURL(a.client.webAPIURL, "/IAuthenticationService/PollAuthSessionStatus/v1/", nil),
			form: url.Values{
				"client_id":  {clientID},
				"request_id": {requestID},
			},
		}, &payload)
		if err != nil {
			return pollAuthResponse{}, err
		}
		if payload.Response.AccessToken != "" && payload.Response.RefreshToken != "" {
			return payload, nil
		}

		timer := time.NewTimer(interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return pollAuthResponse{}, ctx.Err()
		case <-timer.C:
		}
	}

	return pollAuthResponse{}, ErrLoginTimeout
}

func needsDeviceCode(begin beginAuthResponse) bool {
	for _, confirmation := range begin.Response.AllowedConfirmations {
		if confirmation.ConfirmationType == guardCodeTypeDevice {
			return true
		}
	}
	return false
}

func newSessionID() (string, error) {
	buf := make([]byte, 12)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
