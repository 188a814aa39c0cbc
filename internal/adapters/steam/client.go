package steam

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
	"golang.org/x/time/rate"
)

const (
	DefaultCommunityURL = "https://steamcommunity.com"
	DefaultWebAPIURL    = "https://api.steampowered.com"

	defaultRequestTimeout = 30 * time.Second
	maxResponseBytes      = 4 << 20
)

type Config struct {
	CommunityURL   string
	WebAPIURL      string
	APIKey         string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
	// RequestsPerSecond throttles every outbound call; zero disables throttling.
	RequestsPerSecond float64
	Burst             int
}

// Client talks to the community site and the Web API with the session the
// SessionSource currently holds.
type Client struct {
	communityURL   string
	webAPIURL      string
	apiKey         string
	httpClient     *http.Client
	requestTimeout time.Duration
	limiter        *rate.Limiter
	sessions       ports.SessionSource
}

// StatusError carries a non-2xx platform response.
type StatusError struct {
	Op   string
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Op, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Op, e.Code, e.Body)
}

func NewClient(cfg Config, sessions ports.SessionSource) *Client {
	client := &Client{
		communityURL:   strings.TrimRight(valueOr(cfg.CommunityURL, DefaultCommunityURL), "/"),
		webAPIURL:      strings.TrimRight(valueOr(cfg.WebAPIURL, DefaultWebAPIURL), "/"),
		apiKey:         cfg.APIKey,
		httpClient:     cfg.HTTPClient,
		requestTimeout: cfg.RequestTimeout,
		sessions:       sessions,
	}
	if client.httpClient == nil {
		client.httpClient = http.DefaultClient
	}
	if client.requestTimeout <= 0 {
		client.requestTimeout = defaultRequestTimeout
	}
	if cfg.RequestsPerSecond > 0 {
		burst := cfg.Burst
		if burst <= 0 {
			burst = 1
		}
		client.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), burst)
	}

	return client
}

func (c *Client) OfferURL(id domain.ProposalID) string {
	return fmt.Sprintf("%s/tradeoffer/%s/", c.communityURL, id)
}

func (c *Client) session() (domain.WebSession, error) {
	if c.sessions == nil {
		return domain.WebSession{}, domain.ErrSessionUnavailable
	}
	return c.sessions.Current()
}

func (c *Client) communityEndpoint(path string, query url.Values) string {
	return buildURL(c.communityURL, path, query)
}

// webAPIEndpoint authenticates with the API key when configured and with
// the session access token otherwise.
func (c *Client) webAPIEndpoint(path string, query url.Values, session domain.WebSession) string {
	if query == nil {
		query = url.Values{}
	}
	if c.apiKey != "" {
		query.Set("key", c.apiKey)
	} else if session.AccessToken != "" {
		query.Set("access_token", session.AccessToken)
	}

	return buildURL(c.webAPIURL, path, query)
}

func buildURL(base string, path string, query url.Values) string {
	endpoint := base + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}
	return endpoint
}

type request struct {
	op       string
	method   string
	endpoint string
	form     url.Values
	referer  string
	session  *domain.WebSession
	mobile   bool
}

// do executes req and decodes a JSON body into out. Non-2xx statuses come
// back as *StatusError so callers can map them to domain errors.
func (c *Client) do(ctx context.Context, req request, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%s: wait for rate limiter: %w", req.op, err)
		}
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var body io.Reader
	if req.form != nil {
		body = strings.NewReader(req.form.Encode())
	}

	httpReq, err := http.NewRequestWithContext(requestCtx, req.method, req.endpoint, body)
	if err != nil {
		return fmt.Errorf("%s: create request: %w", req.op, err)
	}
	if req.form != nil {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded; charset=UTF-8")
	}
	httpReq.Header.Set("Accept", "application/json")
	if req.referer != "" {
		httpReq.Header.Set("Referer", req.referer)
	}
	if req.session != nil {
		addSessionCookies(httpReq, *req.session, req.mobile)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("%s: %w", req.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("%s: read response: %w", req.op, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &StatusError{Op: req.op, Code: resp.StatusCode, Body: platformErrorText(data)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%s: decode response: %w", req.op, err)
	}

	return nil
}

func addSessionCookies(req *http.Request, session domain.WebSession, mobile bool) {
	req.AddCookie(&http.Cookie{Name: "sessionid", Value: session.SessionID})
	req.AddCookie(&http.Cookie{Name: "steamLoginSecure", Value: url.QueryEscape(session.LoginSecure())})
	req.AddCookie(&http.Cookie{Name: "Steam_Language", Value: "english"})
	if mobile {
		req.AddCookie(&http.Cookie{Name: "mobileClient", Value: "android"})
		req.AddCookie(&http.Cookie{Name: "mobileClientVersion", Value: "777777 3.6.4"})
	}
}

// platformErrorText extracts the community site's strError when present.
func platformErrorText(data []byte) string {
	var payload struct {
		StrError string `json:"strError"`
		Message  string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.StrError != "" {
			return payload.StrError
		}
		if payload.Message != "" {
			return payload.Message
		}
	}

	text := strings.TrimSpace(string(data))
	if text == "null" {
		return ""
	}
	if len(text) > 256 {
		text = text[:256]
	}
	return text
}

func statusCode(err error) int {
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Code
	}
	return 0
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
