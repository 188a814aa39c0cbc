package ledger

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

const (
	defaultTimeout   = 5 * time.Second
	maxResponseBytes = 1 << 20
)

// Client talks to the deal ledger service that owns deal records.
type Client struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
}

var _ ports.Ledger = (*Client)(nil)

func NewClient(baseURL string, httpClient *http.Client, timeout time.Duration) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		timeout:    timeout,
	}
}

type verifyResponse struct {
	Valid  bool   `json:"valid"`
	DealID *int64 `json:"deal_id"`
	Reason string `json:"reason"`
}

type statusRequest struct {
	Status string `json:"status"`
	DealID *int64 `json:"deal_id"`
}

// Verify asks whether an inbound proposal belongs to a pending deal. Any
// transport or decoding failure wraps domain.ErrLedgerUnavailable.
func (c *Client) Verify(ctx context.Context, id domain.ProposalID) (domain.ValidationResult, error) {
	endpoint := fmt.Sprintf("%s/api/trades/verify/%s", c.baseURL, url.PathEscape(string(id)))

	data, err := c.do(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return domain.ValidationResult{}, fmt.Errorf("verify proposal %s: %w", id, err)
	}

	var payload verifyResponse
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.ValidationResult{}, fmt.Errorf("verify proposal %s: decode response: %w: %w", id, domain.ErrLedgerUnavailable, err)
	}

	result := domain.ValidationResult{Valid: payload.Valid, Reason: payload.Reason}
	if payload.DealID != nil {
		deal := domain.DealID(*payload.DealID)
		result.DealID = &deal
	}

	return result, nil
}

func (c *Client) NotifyStatus(ctx context.Context, notification domain.StatusNotification) error {
	body := statusRequest{Status: string(notification.Status)}
	if notification.DealID != nil {
		deal := int64(*notification.DealID)
		body.DealID = &deal
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encode status notification: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/trades/%s/status", c.baseURL, url.PathEscape(string(notification.ProposalID)))
	if _, err := c.do(ctx, http.MethodPost, endpoint, encoded); err != nil {
		return fmt.Errorf("notify status %s for proposal %s: %w", notification.Status, notification.ProposalID, err)
	}

	return nil
}

func (c *Client) do(ctx context.Context, method, endpoint string, body []byte) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	requestCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(requestCtx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrLedgerUnavailable, err)
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("read response: %w: %w", domain.ErrLedgerUnavailable, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("%w: unexpected status %d: %s", domain.ErrLedgerUnavailable, resp.StatusCode, strings.TrimSpace(string(data)))
	}

	return data, nil
}
