package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/bnema/tradebot/internal/application"
	"github.com/bnema/tradebot/internal/domain"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const proposalURLFormat = "https://steamcommunity.com/tradeoffer/%s/"

type tradeItem struct {
	AssetID string `json:"asset_id"`
	// Legacy clients send the platform's own field name.
	LegacyAssetID string `json:"assetid"`
}

type createTradeRequest struct {
	DealID           int64       `json:"deal_id" binding:"required,gt=0"`
	PartnerAccountID string      `json:"partner_account_id" binding:"omitempty,steamid64"`
	PartnerSteamID   string      `json:"partner_steam_id" binding:"omitempty,steamid64"`
	Items            []tradeItem `json:"items" binding:"required,min=1"`
	TradeToken       string      `json:"trade_token"`
}

func (r createTradeRequest) command() (application.CreateProposalCommand, error) {
	raw := r.PartnerAccountID
	if raw == "" {
		raw = r.PartnerSteamID
	}
	partner, err := domain.ParseSteamID(raw)
	if err != nil {
		return application.CreateProposalCommand{}, err
	}

	assetIDs := make([]string, 0, len(r.Items))
	for _, item := range r.Items {
		id := item.AssetID
		if id == "" {
			id = item.LegacyAssetID
		}
		assetIDs = append(assetIDs, id)
	}

	return application.CreateProposalCommand{
		DealID:     domain.DealID(r.DealID),
		Partner:    partner,
		AssetIDs:   assetIDs,
		TradeToken: r.TradeToken,
	}, nil
}

type createTradeResponse struct {
	Success     bool   `json:"success"`
	ProposalID  string `json:"proposal_id"`
	ProposalURL string `json:"proposal_url"`
	Status      string `json:"status"`

	TradeOfferID string `json:"trade_offer_id"`
	TradeURL     string `json:"trade_url"`
}

type inventoryItem struct {
	AssetID    string `json:"asset_id"`
	ClassID    string `json:"class_id,omitempty"`
	InstanceID string `json:"instance_id,omitempty"`
	MarketName string `json:"market_name"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	IconURL    string `json:"icon_url,omitempty"`
	Tradable   bool   `json:"tradable"`
	Marketable bool   `json:"marketable"`
	Amount     int64  `json:"amount"`
}

type proposalStatusResponse struct {
	ProposalID string     `json:"proposal_id"`
	Status     string     `json:"status"`
	StateCode  int        `json:"state_code"`
	Direction  string     `json:"direction,omitempty"`
	DealID     *int64     `json:"deal_id,omitempty"`
	Created    *time.Time `json:"created"`
	Updated    *time.Time `json:"updated"`
	Expires    *time.Time `json:"expires"`
}

type proposalResponse struct {
	ProposalID     string     `json:"proposal_id"`
	Direction      string     `json:"direction"`
	Counterparty   string     `json:"counterparty"`
	Status         string     `json:"status"`
	StateCode      int        `json:"state_code"`
	DealID         *int64     `json:"deal_id,omitempty"`
	NotifiedStatus string     `json:"notified_status,omitempty"`
	Created        *time.Time `json:"created"`
	Updated        *time.Time `json:"updated"`
}

func (s *Server) health(c *gin.Context) {
	connected := s.services.Session != nil && s.services.Session.Connected()
	status, code := "ok", http.StatusOK
	if !connected {
		status, code = "degraded", http.StatusServiceUnavailable
	}

	c.JSON(code, gin.H{
		"status":            status,
		"session_connected": connected,
		"timestamp":         s.clock.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) createForward(c *gin.Context) {
	s.createTrade(c, s.services.Proposals.CreateForward)
}

func (s *Server) createReverse(c *gin.Context) {
	s.createTrade(c, s.services.Proposals.CreateReverse)
}

func (s *Server) createTrade(c *gin.Context, create func(ctx context.Context, cmd application.CreateProposalCommand) (domain.SendResult, error)) {
	var req createTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cmd, err := req.command()
	if err != nil {
		s.fail(c, err)
		return
	}

	result, err := create(c.Request.Context(), cmd)
	if err != nil {
		s.fail(c, err)
		return
	}

	url := fmt.Sprintf(proposalURLFormat, result.ProposalID)
	c.JSON(http.StatusOK, createTradeResponse{
		Success:      true,
		ProposalID:   string(result.ProposalID),
		ProposalURL:  url,
		Status:       string(result.Status),
		TradeOfferID: string(result.ProposalID),
		TradeURL:     url,
	})
}

func (s *Server) ownInventory(c *gin.Context) {
	inventory, err := s.services.Inventory.Own(c.Request.Context())
	if err != nil {
		s.fail(c, err)
		return
	}

	items := make([]inventoryItem, 0, len(inventory.Items))
	for _, item := range inventory.Items {
		items = append(items, inventoryItem{
			AssetID:    item.AssetID,
			MarketName: item.MarketHashName,
			Name:       item.Name,
			Type:       item.Type,
			Tradable:   item.Tradable,
			Marketable: item.Marketable,
			Amount:     item.Amount,
		})
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (s *Server) accountInventory(c *gin.Context) {
	accountID := c.Param("accountId")
	inventory, err := s.services.Inventory.ByAccount(c.Request.Context(), accountID)
	if err != nil {
		s.fail(c, err)
		return
	}

	tradable := inventory.Tradable()
	items := make([]inventoryItem, 0, len(tradable))
	for _, item := range tradable {
		items = append(items, inventoryItem{
			AssetID:    item.AssetID,
			ClassID:    item.ClassID,
			InstanceID: item.InstanceID,
			MarketName: item.MarketHashName,
			Name:       item.Name,
			Type:       item.Type,
			IconURL:    item.IconURL,
			Tradable:   item.Tradable,
			Marketable: item.Marketable,
			Amount:     item.Amount,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"account_id":     accountID,
		"total_items":    len(inventory.Items),
		"tradable_items": len(tradable),
		"items":          items,
	})
}

func (s *Server) proposalStatus(c *gin.Context) {
	status, err := s.services.Queries.Status(c.Request.Context(), domain.ProposalID(c.Param("proposalId")))
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, proposalStatusResponse{
		ProposalID: string(status.ProposalID),
		Status:     string(status.Status),
		StateCode:  int(status.StateCode),
		Direction:  string(status.Direction),
		DealID:     rawDealID(status.DealID),
		Created:    optionalTime(status.CreatedAt),
		Updated:    optionalTime(status.UpdatedAt),
		Expires:    optionalTime(status.ExpiresAt),
	})
}

func (s *Server) confirmProposal(c *gin.Context) {
	id := domain.ProposalID(c.Param("proposalId"))
	if err := s.services.Confirmations.Confirm(c.Request.Context(), id); err != nil {
		s.fail(c, err)
		return
	}

	status := domain.StatusUnknown
	if current, err := s.services.Queries.Status(c.Request.Context(), id); err == nil {
		status = current.Status
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"proposal_id": string(id),
		"status":      string(status),
	})
}

func (s *Server) listProposals(c *gin.Context) {
	filter := domain.Status("")
	if raw := c.Query("status"); raw != "" {
		filter = domain.ParseStatus(raw)
		if filter == domain.StatusUnknown && raw != string(domain.StatusUnknown) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("unknown status %q", raw)})
			return
		}
	}

	proposals, err := s.services.Queries.List(c.Request.Context(), filter)
	if err != nil {
		s.fail(c, err)
		return
	}

	out := make([]proposalResponse, 0, len(proposals))
	for _, p := range proposals {
		out = append(out, proposalResponse{
			ProposalID:     string(p.ID),
			Direction:      string(p.Direction),
			Counterparty:   p.Counterparty.String(),
			Status:         string(p.Status),
			StateCode:      int(p.StateCode),
			DealID:         rawDealID(p.DealID),
			NotifiedStatus: string(p.NotifiedStatus),
			Created:        optionalTime(p.CreatedAt),
			Updated:        optionalTime(p.UpdatedAt),
		})
	}
	c.JSON(http.StatusOK, gin.H{"proposals": out})
}

// fail writes the error body. Known failure kinds carry their canonical
// message in details.
func (s *Server) fail(c *gin.Context, err error) {
	code, kind := classify(err)
	body := gin.H{"error": err.Error()}
	if kind != nil {
		body["details"] = kind.Error()
	}
	if code >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.String("path", c.FullPath()), zap.Error(err))
	}
	c.JSON(code, body)
}

var errorStatuses = []struct {
	err  error
	code int
}{
	{domain.ErrInvalidAccount, http.StatusBadRequest},
	{domain.ErrEmptyItems, http.StatusBadRequest},
	{domain.ErrPrivateInventory, http.StatusForbidden},
	{domain.ErrRateLimited, http.StatusTooManyRequests},
	{domain.ErrProposalNotFound, http.StatusNotFound},
	{domain.ErrDealConflict, http.StatusConflict},
	{domain.ErrConfirmationNotFound, http.StatusConflict},
	{domain.ErrSessionUnavailable, http.StatusServiceUnavailable},
	{domain.ErrLedgerUnavailable, http.StatusServiceUnavailable},
}

func classify(err error) (int, error) {
	for _, entry := range errorStatuses {
		if errors.Is(err, entry.err) {
			return entry.code, entry.err
		}
	}
	return http.StatusInternalServerError, nil
}

func rawDealID(id *domain.DealID) *int64 {
	if id == nil {
		return nil
	}
	raw := int64(*id)
	return &raw
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	utc := t.UTC()
	return &utc
}
