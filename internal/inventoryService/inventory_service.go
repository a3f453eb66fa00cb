package inventory

import (
	"context"
	"fmt"

	"skinswap/internal/models"
	"skinswap/internal/repository"
	"skinswap/internal/tradeerrors"
)

// InventoryService manages a user's own items outside of trades
type InventoryService struct {
	repo repository.TradeDB
}

// NewInventoryService creates a new InventoryService instance
func NewInventoryService(repo repository.TradeDB) *InventoryService {
	return &InventoryService{repo: repo}
}

// GetUser returns the user's profile and balances
func (s *InventoryService) GetUser(ctx context.Context, userID string) (models.User, error) {
	if userID == "" {
		return models.User{}, fmt.Errorf("service: %w - empty user ID", tradeerrors.ErrInvalidRequest)
	}

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to get user %s: %w", userID, err)
	}
	return user, nil
}

// GetInventory returns every item the user owns
func (s *InventoryService) GetInventory(ctx context.Context, userID string) ([]models.InventoryItem, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", tradeerrors.ErrInvalidRequest)
	}

	items, err := s.repo.GetInventory(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get inventory for user %s: %w", userID, err)
	}
	return items, nil
}

// EquipItem equips an owned item. Items committed to a trade cannot be equipped.
func (s *InventoryService) EquipItem(ctx context.Context, userID, itemID string) (models.InventoryItem, error) {
	return s.setEquipped(ctx, userID, itemID, true)
}

// UnequipItem unequips an owned item
func (s *InventoryService) UnequipItem(ctx context.Context, userID, itemID string) (models.InventoryItem, error) {
	return s.setEquipped(ctx, userID, itemID, false)
}

// SellItem sells an unequipped, uncommitted item for floor(value) coins and
// returns the updated balances
func (s *InventoryService) SellItem(ctx context.Context, userID, itemID string) (models.User, error) {
	if userID == "" || itemID == "" {
		return models.User{}, fmt.Errorf("service: %w - missing user or item ID", tradeerrors.ErrInvalidRequest)
	}

	user, err := s.repo.SellItem(ctx, itemID, userID)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to sell item %s: %w", itemID, err)
	}
	return user, nil
}

func (s *InventoryService) setEquipped(ctx context.Context, userID, itemID string, equipped bool) (models.InventoryItem, error) {
	if userID == "" || itemID == "" {
		return models.InventoryItem{}, fmt.Errorf("service: %w - missing user or item ID", tradeerrors.ErrInvalidRequest)
	}

	item, err := s.repo.SetItemEquipped(ctx, itemID, userID, equipped)
	if err != nil {
		return models.InventoryItem{}, fmt.Errorf("service: failed to update item %s: %w", itemID, err)
	}
	return item, nil
}
