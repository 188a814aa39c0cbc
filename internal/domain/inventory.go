package domain

type InventoryItem struct {
	AssetID        string
	ClassID        string
	InstanceID     string
	Name           string
	MarketHashName string
	Type           string
	IconURL        string
	Tradable       bool
	Marketable     bool
	Amount         int64
}

type Inventory struct {
	Owner SteamID
	Items []InventoryItem
}

// Tradable returns the subset of items that can currently be put in an offer.
func (i Inventory) Tradable() []InventoryItem {
	items := make([]InventoryItem, 0, len(i.Items))
	for _, item := range i.Items {
		if item.Tradable {
			items = append(items, item)
		}
	}

	return items
}
