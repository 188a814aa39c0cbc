package application

import (
	"context"
	"testing"

	"github.com/bnema/tradebot/internal/domain"
	"github.com/bnema/tradebot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryServiceByAccount(t *testing.T) {
	inventories := mocks.NewMockInventories(t)
	service := NewInventoryService(inventories, sessionStub{}, TradeSettings{})

	inventory := domain.Inventory{Owner: partnerID, Items: []domain.InventoryItem{{AssetID: "1", Tradable: true}}}
	inventories.EXPECT().Fetch(mockAnyContext(), partnerID, uint32(730), "2").Return(inventory, nil).Once()

	got, err := service.ByAccount(context.Background(), partnerID.String())
	require.NoError(t, err)
	assert.Equal(t, inventory, got)
}

func TestInventoryServiceRejectsVanityName(t *testing.T) {
	service := NewInventoryService(mocks.NewMockInventories(t), sessionStub{}, TradeSettings{})

	_, err := service.ByAccount(context.Background(), "gabelogannewell")
	require.ErrorIs(t, err, domain.ErrInvalidAccount)
}

func TestInventoryServicePrivateInventory(t *testing.T) {
	inventories := mocks.NewMockInventories(t)
	service := NewInventoryService(inventories, sessionStub{}, TradeSettings{AppID: 440, ContextID: "2"})

	private := domain.SteamID(76561198000000002)
	inventories.EXPECT().Fetch(mockAnyContext(), private, uint32(440), "2").Return(domain.Inventory{}, domain.ErrPrivateInventory).Once()

	_, err := service.ByAccount(context.Background(), "76561198000000002")
	require.ErrorIs(t, err, domain.ErrPrivateInventory)
}

func TestInventoryServiceOwnUsesSessionAccount(t *testing.T) {
	inventories := mocks.NewMockInventories(t)
	service := NewInventoryService(inventories, sessionStub{session: testWebSession("access")}, TradeSettings{})

	inventories.EXPECT().Fetch(mockAnyContext(), botID, uint32(730), "2").Return(domain.Inventory{Owner: botID}, nil).Once()

	got, err := service.Own(context.Background())
	require.NoError(t, err)
	assert.Equal(t, botID, got.Owner)
}

func TestInventoryServiceOwnWithoutSession(t *testing.T) {
	service := NewInventoryService(mocks.NewMockInventories(t), sessionStub{err: domain.ErrSessionUnavailable}, TradeSettings{})

	_, err := service.Own(context.Background())
	require.ErrorIs(t, err, domain.ErrSessionUnavailable)
}
