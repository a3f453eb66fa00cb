package handler

import (
	"context"
	"net/http"

	model "skinswap/internal/models"
	"skinswap/services/trading/helpers"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

type InventoryServiceInterface interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetInventory(ctx context.Context, userID string) ([]model.InventoryItem, error)
	EquipItem(ctx context.Context, userID, itemID string) (model.InventoryItem, error)
	UnequipItem(ctx context.Context, userID, itemID string) (model.InventoryItem, error)
	SellItem(ctx context.Context, userID, itemID string) (model.User, error)
}

type NotificationFeedInterface interface {
	List(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkRead(ctx context.Context, userID string) (int, error)
}

// AccountHandler serves the authenticated user's own resources under /me
type AccountHandler struct {
	inventory InventoryServiceInterface
	feed      NotificationFeedInterface
}

func NewAccountHandler(inventory InventoryServiceInterface, feed NotificationFeedInterface) *AccountHandler {
	return &AccountHandler{inventory: inventory, feed: feed}
}

// GetProfileHandler handles GET /me
func (h *AccountHandler) GetProfileHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	user, err := h.inventory.GetUser(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetProfileHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "profile retrieved successfully")
}

// GetInventoryHandler handles GET /me/inventory
func (h *AccountHandler) GetInventoryHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	items, err := h.inventory.GetInventory(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "GetInventoryHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemResponses(items), "inventory retrieved successfully")
	helpers.LogSuccess("GetInventoryHandler", "inventory retrieved successfully", map[string]any{
		"user_id":     userID,
		"items_count": len(items),
	})
}

// EquipItemHandler handles POST /me/inventory/:item_id/equip
func (h *AccountHandler) EquipItemHandler(c *gin.Context) {
	h.setEquipped(c, "EquipItemHandler", h.inventory.EquipItem, "item equipped successfully")
}

// UnequipItemHandler handles POST /me/inventory/:item_id/unequip
func (h *AccountHandler) UnequipItemHandler(c *gin.Context) {
	h.setEquipped(c, "UnequipItemHandler", h.inventory.UnequipItem, "item unequipped successfully")
}

// SellItemHandler handles POST /me/inventory/:item_id/sell
func (h *AccountHandler) SellItemHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	itemID := c.Param("item_id")

	user, err := h.inventory.SellItem(c.Request.Context(), userID, itemID)
	if err != nil {
		helpers.HandleServiceError(c, "SellItemHandler", err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToUserResponse(user), "item sold successfully")
	helpers.LogSuccess("SellItemHandler", "item sold successfully", map[string]any{
		"user_id": userID,
		"item_id": itemID,
		"coins":   user.Coins,
	})
}

// ListNotificationsHandler handles GET /me/notifications
func (h *AccountHandler) ListNotificationsHandler(c *gin.Context) {
	var q helpers.NotificationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListNotificationsHandler", err)
		return
	}

	userID := helpers.CurrentUserID(c)
	feed, err := h.feed.List(c.Request.Context(), userID, q.Unread)
	if err != nil {
		helpers.HandleServiceError(c, "ListNotificationsHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToNotificationResponses(feed), "notifications retrieved successfully")
}

// MarkNotificationsReadHandler handles POST /me/notifications/read
func (h *AccountHandler) MarkNotificationsReadHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	marked, err := h.feed.MarkRead(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "MarkNotificationsReadHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.MarkReadResponse{Marked: marked}, "notifications marked read")
}

type itemAction func(ctx context.Context, userID, itemID string) (model.InventoryItem, error)

func (h *AccountHandler) setEquipped(c *gin.Context, handlerName string, action itemAction, successMsg string) {
	userID := helpers.CurrentUserID(c)
	itemID := c.Param("item_id")

	item, err := action(c.Request.Context(), userID, itemID)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{"user_id": userID, "item_id": itemID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToItemResponse(item), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{"user_id": userID, "item_id": itemID})
}
