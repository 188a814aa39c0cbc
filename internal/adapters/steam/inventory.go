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

const (
	iconURLPrefix     = "https://community.cloudflare.steamstatic.com/economy/image/"
	inventoryPageSize = 2000
	maxInventoryPages = 50
)

type Inventories struct {
	client *Client
}

var _ ports.Inventories = (*Inventories)(nil)

func NewInventories(client *Client) *Inventories {
	return &Inventories{client: client}
}

type inventoryAsset struct {
	AssetID    string `json:"assetid"`
	ClassID    string `json:"classid"`
	InstanceID string `json:"instanceid"`
	Amount     string `json:"amount"`
}

type inventoryDescription struct {
	ClassID        string `json:"classid"`
	InstanceID     string `json:"instanceid"`
	Name           string `json:"name"`
	MarketHashName string `json:"market_hash_name"`
	Type           string `json:"type"`
	IconURL        string `json:"icon_url"`
	Tradable       int    `json:"tradable"`
	Marketable     int    `json:"marketable"`
}

type inventoryPage struct {
	Success      int                    `json:"success"`
	Assets       []inventoryAsset       `json:"assets"`
	Descriptions []inventoryDescription `json:"descriptions"`
	MoreItems    int                    `json:"more_items"`
	LastAssetID  string                 `json:"last_assetid"`
	Error        string                 `json:"error"`
}

// Fetch pages through the owner's inventory for one app and context.
// The bot's own inventory is read with the session cookies so items still
// under trade hold show up.
func (i *Inventories) Fetch(ctx context.Context, owner domain.SteamID, appID uint32, contextID string) (domain.Inventory, error) {
	if !owner.Valid() {
		return domain.Inventory{}, fmt.Errorf("fetch inventory: %w", domain.ErrInvalidAccount)
	}

	var session *domain.WebSession
	if current, err := i.client.session(); err == nil && current.SteamID == owner {
		session = &current
	}

	inv := domain.Inventory{Owner: owner, Items: []domain.InventoryItem{}}
	startAssetID := ""
	for page := 0; page < maxInventoryPages; page++ {
		query := url.Values{
			"l":     {"english"},
			"count": {strconv.Itoa(inventoryPageSize)},
		}
		if startAssetID != "" {
			query.Set("start_assetid", startAssetID)
		}

		var payload inventoryPage
		err := i.client.do(ctx, request{
			op:       fmt.Sprintf("fetch inventory %s", owner),
			method:   http.MethodGet,
			endpoint: i.client.communityEndpoint(fmt.Sprintf("/inventory/%s/%d/%s", owner, appID, contextID), query),
			session:  session,
		}, &payload)
		if err != nil {
			return domain.Inventory{}, mapInventoryError(err)
		}
		if payload.Success != 1 && payload.Error != "" {
			return domain.Inventory{}, fmt.Errorf("fetch inventory %s: %s: %w", owner, payload.Error, domain.ErrPrivateInventory)
		}

		inv.Items = append(inv.Items, joinDescriptions(payload.Assets, payload.Descriptions)...)

		if payload.MoreItems != 1 || payload.LastAssetID == "" {
			return inv, nil
		}
		startAssetID = payload.LastAssetID
	}

	return inv, nil
}

func joinDescriptions(assets []inventoryAsset, descriptions []inventoryDescription) []domain.InventoryItem {
	type descKey struct{ class, instance string }

	byKey := make(map[descKey]inventoryDescription, len(descriptions))
	for _, description := range descriptions {
		byKey[descKey{description.ClassID, description.InstanceID}] = description
	}

	items := make([]domain.InventoryItem, 0, len(assets))
	for _, asset := range assets {
		amount, err := strconv.ParseInt(asset.Amount, 10, 64)
		if err != nil || amount <= 0 {
			amount = 1
		}

		item := domain.InventoryItem{
			AssetID:    asset.AssetID,
			ClassID:    asset.ClassID,
			InstanceID: asset.InstanceID,
			Amount:     amount,
		}
		if description, ok := byKey[descKey{asset.ClassID, asset.InstanceID}]; ok {
			item.Name = description.Name
			item.MarketHashName = description.MarketHashName
			item.Type = description.Type
			item.Tradable = description.Tradable == 1
			item.Marketable = description.Marketable == 1
			if description.IconURL != "" {
				item.IconURL = iconURLPrefix + description.IconURL
			}
		}
		items = append(items, item)
	}

	return items
}

func mapInventoryError(err error) error {
	switch statusCode(err) {
	case http.StatusForbidden, http.StatusUnauthorized:
		return fmt.Errorf("%w: %w", domain.ErrPrivateInventory, err)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %w", domain.ErrRateLimited, err)
	case http.StatusBadRequest, http.StatusNotFound:
		return fmt.Errorf("%w: %w", domain.ErrInvalidAccount, err)
	default:
		return err
	}
}
