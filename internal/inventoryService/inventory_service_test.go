package inventory

import (
	"context"
	"testing"

	model "skinswap/internal/models"
	"skinswap/internal/repository"
	"skinswap/internal/tradeerrors"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestInventoryService_SetEquipped(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := repository.NewMockTradeDB(ctrl)
	service := NewInventoryService(mockRepo)
	ctx := context.Background()

	tests := []struct {
		name          string
		equip         bool
		userID        string
		mockSetup     func()
		expectedError error
	}{
		{
			name:   "equip",
			equip:  true,
			userID: "alice",
			mockSetup: func() {
				mockRepo.EXPECT().SetItemEquipped(ctx, "a1", "alice", true).
					Return(model.InventoryItem{ItemID: "a1", OwnerID: "alice", Equipped: true}, nil)
			},
		},
		{
			name:   "unequip",
			userID: "alice",
			mockSetup: func() {
				mockRepo.EXPECT().SetItemEquipped(ctx, "a1", "alice", false).
					Return(model.InventoryItem{ItemID: "a1", OwnerID: "alice"}, nil)
			},
		},
		{
			name:   "equip_listed_item",
			equip:  true,
			userID: "alice",
			mockSetup: func() {
				mockRepo.EXPECT().SetItemEquipped(ctx, "a1", "alice", true).
					Return(model.InventoryItem{}, tradeerrors.ErrInvalidItemState)
			},
			expectedError: tradeerrors.ErrInvalidItemState,
		},
		{
			name:          "missing_user",
			equip:         true,
			mockSetup:     func() {},
			expectedError: tradeerrors.ErrInvalidRequest,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			var (
				got model.InventoryItem
				err error
			)
			if tc.equip {
				got, err = service.EquipItem(ctx, tc.userID, "a1")
			} else {
				got, err = service.UnequipItem(ctx, tc.userID, "a1")
			}
			if tc.expectedError != nil {
				require.ErrorIs(t, err, tc.expectedError)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.equip, got.Equipped)
		})
	}
}

// Test selling against the in-memory store, including the trade lock
func TestInventoryService_SellItem(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	repo := repository.NewMemoryRepo()
	repo.AddUser(model.User{UserID: "alice", Username: "alice", Coins: 5})
	repo.AddItem(model.InventoryItem{ItemID: "a1", OwnerID: "alice", Value: decimal.RequireFromString("99.99")})
	repo.AddItem(model.InventoryItem{ItemID: "a2", OwnerID: "alice", Value: decimal.RequireFromString("7")})
	require.NoError(t, repo.InsertListing(ctx, model.TradeListing{
		ListingID: "l1", SellerID: "alice", ItemID: "a2", Status: model.StatusOpen,
	}))

	service := NewInventoryService(repo)

	user, err := service.SellItem(ctx, "alice", "a1")
	require.NoError(t, err)
	require.Equal(t, int64(104), user.Coins)

	_, err = service.SellItem(ctx, "alice", "a2")
	require.ErrorIs(t, err, tradeerrors.ErrInvalidItemState)

	_, err = service.EquipItem(ctx, "alice", "a2")
	require.ErrorIs(t, err, tradeerrors.ErrInvalidItemState)

	items, err := service.GetInventory(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "a2", items[0].ItemID)
}

func TestInventoryService_GetUser(t *testing.T) {
	t.Parallel()

	repo := repository.NewMemoryRepo()
	service := NewInventoryService(repo)

	_, err := service.GetUser(context.Background(), "ghost")
	require.ErrorIs(t, err, tradeerrors.ErrNotFound)

	_, err = service.GetUser(context.Background(), "")
	require.ErrorIs(t, err, tradeerrors.ErrInvalidRequest)
}
