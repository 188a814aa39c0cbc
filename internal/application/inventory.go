package application

import (
	"context"
	"fmt"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports"
)

// TradeSettings scopes every inventory read and offer to one game context.
type TradeSettings struct {
	Brand     string
	AppID     uint32
	ContextID string
}

func (s TradeSettings) withDefaults() TradeSettings {
	if s.Brand == "" {
		s.Brand = "TradeBot"
	}
	if s.AppID == 0 {
		s.AppID = 730
	}
	if s.ContextID == "" {
		s.ContextID = "2"
	}
	return s
}

type InventoryService struct {
	inventories ports.Inventories
	sessions    ports.SessionSource
	settings    TradeSettings
}

func NewInventoryService(inventories ports.Inventories, sessions ports.SessionSource, settings TradeSettings) *InventoryService {
	return &InventoryService{inventories: inventories, sessions: sessions, settings: settings.withDefaults()}
}

// ByAccount reads the inventory of a raw 17-digit account id. Vanity names
// are rejected before any platform call.
func (s *InventoryService) ByAccount(ctx context.Context, rawAccountID string) (domain.Inventory, error) {
	owner, err := domain.ParseSteamID(rawAccountID)
	if err != nil {
		return domain.Inventory{}, err
	}
	return s.Inventory(ctx, owner)
}

func (s *InventoryService) Inventory(ctx context.Context, owner domain.SteamID) (domain.Inventory, error) {
	inv, err := s.inventories.Fetch(ctx, owner, s.settings.AppID, s.settings.ContextID)
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("get inventory %s: %w", owner, err)
	}
	return inv, nil
}

// Own reads the controlled account's inventory.
func (s *InventoryService) Own(ctx context.Context) (domain.Inventory, error) {
	session, err := s.sessions.Current()
	if err != nil {
		return domain.Inventory{}, fmt.Errorf("get own inventory: %w", err)
	}
	return s.Inventory(ctx, session.SteamID)
}
