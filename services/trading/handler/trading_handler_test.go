package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	model "skinswap/internal/models"
	"skinswap/internal/tradeerrors"
	"skinswap/services/trading/helpers"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// asUser stands in for the auth middleware in handler tests
func asUser(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		helpers.SetCurrentUser(c, userID)
		c.Next()
	}
}

func newTestRouter(userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(asUser(userID))
	return router
}

// doRequest sends a request and decodes the response envelope
func doRequest(t *testing.T, router *gin.Engine, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	switch v := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(v))
	default:
		raw, err := json.Marshal(v)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return w.Code, resp
}

// Test CreateListingHandler
func TestCreateListingHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTradingServiceInterface(ctrl)
	handler := NewTradingHandler(mockService)

	router := newTestRouter("alice")
	router.POST("/listings", handler.CreateListingHandler)

	now := time.Now().UTC()

	tests := []struct {
		name           string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		validateData   func(t *testing.T, data map[string]any)
	}{
		{
			name:        "success",
			requestBody: helpers.CreateListingRequest{ItemID: "a1"},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing(gomock.Any(), "alice", "a1").
					Return(model.TradeListing{ListingID: "l1", SellerID: "alice", ItemID: "a1", Status: model.StatusOpen, CreatedAt: now, UpdatedAt: now}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "listing created successfully",
			validateData: func(t *testing.T, data map[string]any) {
				require.Equal(t, "l1", data["listing_id"])
				require.Equal(t, "open", data["status"])
				require.Equal(t, "alice", data["seller_id"])
			},
		},
		{
			name:           "invalid_json",
			requestBody:    `{invalid json}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:           "missing_item_id",
			requestBody:    helpers.CreateListingRequest{},
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
		{
			name:        "item_not_owned",
			requestBody: helpers.CreateListingRequest{ItemID: "b1"},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing(gomock.Any(), "alice", "b1").
					Return(model.TradeListing{}, tradeerrors.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not the owner",
		},
		{
			name:        "item_equipped",
			requestBody: helpers.CreateListingRequest{ItemID: "a2"},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing(gomock.Any(), "alice", "a2").
					Return(model.TradeListing{}, tradeerrors.ErrInvalidItemState)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "item is not available for trade",
		},
		{
			name:        "item_missing",
			requestBody: helpers.CreateListingRequest{ItemID: "zz"},
			mockSetup: func() {
				mockService.EXPECT().
					CreateListing(gomock.Any(), "alice", "zz").
					Return(model.TradeListing{}, tradeerrors.ErrItemNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "item not found",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doRequest(t, router, http.MethodPost, "/listings", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.validateData != nil {
				tc.validateData(t, resp["data"].(map[string]any))
			}
		})
	}
}

// Test MakeOfferHandler
func TestMakeOfferHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTradingServiceInterface(ctrl)
	handler := NewTradingHandler(mockService)

	router := newTestRouter("bob")
	router.POST("/listings/:listing_id/offers", handler.MakeOfferHandler)

	tests := []struct {
		name           string
		listingID      string
		requestBody    any
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
	}{
		{
			name:        "success",
			listingID:   "l1",
			requestBody: helpers.MakeOfferRequest{ItemID: "b1"},
			mockSetup: func() {
				mockService.EXPECT().MakeOffer(gomock.Any(), "l1", "bob", "b1").
					Return(model.TradeOffer{OfferID: "o1", ListingID: "l1", OffererID: "bob", ItemID: "b1"}, nil)
			},
			expectedStatus: http.StatusCreated,
			expectedMsg:    "offer submitted successfully",
		},
		{
			name:        "listing_not_open",
			listingID:   "l2",
			requestBody: helpers.MakeOfferRequest{ItemID: "b1"},
			mockSetup: func() {
				mockService.EXPECT().MakeOffer(gomock.Any(), "l2", "bob", "b1").
					Return(model.TradeOffer{}, tradeerrors.ErrListingNotOpen)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is not open",
		},
		{
			name:        "self_trade",
			listingID:   "l3",
			requestBody: helpers.MakeOfferRequest{ItemID: "b1"},
			mockSetup: func() {
				mockService.EXPECT().MakeOffer(gomock.Any(), "l3", "bob", "b1").
					Return(model.TradeOffer{}, tradeerrors.ErrSelfTrade)
			},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "cannot offer on your own listing",
		},
		{
			name:        "listing_not_found",
			listingID:   "nope",
			requestBody: helpers.MakeOfferRequest{ItemID: "b1"},
			mockSetup: func() {
				mockService.EXPECT().MakeOffer(gomock.Any(), "nope", "bob", "b1").
					Return(model.TradeOffer{}, tradeerrors.ErrListingNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedMsg:    "listing not found",
		},
		{
			name:           "missing_item",
			listingID:      "l1",
			requestBody:    `{}`,
			mockSetup:      func() {},
			expectedStatus: http.StatusBadRequest,
			expectedMsg:    "invalid request payload",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doRequest(t, router, http.MethodPost, "/listings/"+tc.listingID+"/offers", tc.requestBody)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)
		})
	}
}

// Test the seller actions: accept, decline and cancel
func TestSellerActionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTradingServiceInterface(ctrl)
	handler := NewTradingHandler(mockService)

	router := newTestRouter("alice")
	router.POST("/listings/:listing_id/accept", handler.AcceptOfferHandler)
	router.POST("/listings/:listing_id/decline", handler.DeclineOfferHandler)
	router.POST("/listings/:listing_id/cancel", handler.CancelListingHandler)

	tests := []struct {
		name           string
		path           string
		mockSetup      func()
		expectedStatus int
		expectedMsg    string
		expectedState  string
	}{
		{
			name: "accept",
			path: "/listings/l1/accept",
			mockSetup: func() {
				mockService.EXPECT().AcceptOffer(gomock.Any(), "l1", "alice").
					Return(model.TradeListing{ListingID: "l1", Status: model.StatusAccepted, BuyerID: "bob"}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "offer accepted successfully",
			expectedState:  "accepted",
		},
		{
			name: "accept_swap_failure",
			path: "/listings/l2/accept",
			mockSetup: func() {
				mockService.EXPECT().AcceptOffer(gomock.Any(), "l2", "alice").
					Return(model.TradeListing{}, tradeerrors.ErrSwapFailed)
			},
			expectedStatus: http.StatusInternalServerError,
			expectedMsg:    "trade swap failed",
		},
		{
			name: "accept_without_offer",
			path: "/listings/l3/accept",
			mockSetup: func() {
				mockService.EXPECT().AcceptOffer(gomock.Any(), "l3", "alice").
					Return(model.TradeListing{}, tradeerrors.ErrListingNotOffered)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing has no pending offer",
		},
		{
			name: "decline",
			path: "/listings/l1/decline",
			mockSetup: func() {
				mockService.EXPECT().DeclineOffer(gomock.Any(), "l1", "alice").
					Return(model.TradeListing{ListingID: "l1", Status: model.StatusOpen}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "offer declined successfully",
			expectedState:  "open",
		},
		{
			name: "decline_not_seller",
			path: "/listings/l4/decline",
			mockSetup: func() {
				mockService.EXPECT().DeclineOffer(gomock.Any(), "l4", "alice").
					Return(model.TradeListing{}, tradeerrors.ErrNotOwner)
			},
			expectedStatus: http.StatusForbidden,
			expectedMsg:    "not the owner",
		},
		{
			name: "cancel",
			path: "/listings/l1/cancel",
			mockSetup: func() {
				mockService.EXPECT().CancelListing(gomock.Any(), "l1", "alice").
					Return(model.TradeListing{ListingID: "l1", Status: model.StatusCancelled}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedMsg:    "listing cancelled successfully",
			expectedState:  "cancelled",
		},
		{
			name: "cancel_terminal",
			path: "/listings/l5/cancel",
			mockSetup: func() {
				mockService.EXPECT().CancelListing(gomock.Any(), "l5", "alice").
					Return(model.TradeListing{}, tradeerrors.ErrAlreadyTerminal)
			},
			expectedStatus: http.StatusConflict,
			expectedMsg:    "listing is already closed",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.mockSetup()

			status, resp := doRequest(t, router, http.MethodPost, tc.path, nil)
			require.Equal(t, tc.expectedStatus, status)
			require.Contains(t, resp["message"], tc.expectedMsg)

			if tc.expectedState != "" {
				data := resp["data"].(map[string]any)
				require.Equal(t, tc.expectedState, data["status"])
			}
		})
	}
}

// Test listing reads
func TestListingReadHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := NewMockTradingServiceInterface(ctrl)
	handler := NewTradingHandler(mockService)

	router := newTestRouter("alice")
	router.GET("/listings", handler.ListListingsHandler)
	router.GET("/listings/:listing_id", handler.GetListingHandler)
	router.GET("/me/trades", handler.MyTradesHandler)

	t.Run("list_with_filter", func(t *testing.T) {
		mockService.EXPECT().
			ListListings(gomock.Any(), model.ListingFilter{Status: model.StatusOpen, SellerID: "bob", Limit: 5}).
			Return([]model.TradeListing{{ListingID: "l1", Status: model.StatusOpen}}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/listings?status=open&seller_id=bob&limit=5", nil)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, resp["data"], 1)
	})

	t.Run("list_rejects_unknown_status", func(t *testing.T) {
		status, resp := doRequest(t, router, http.MethodGet, "/listings?status=sold", nil)
		require.Equal(t, http.StatusBadRequest, status)
		require.Contains(t, resp["message"], "invalid request payload")
	})

	t.Run("list_empty_is_array", func(t *testing.T) {
		mockService.EXPECT().ListListings(gomock.Any(), model.ListingFilter{}).Return(nil, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/listings", nil)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, []any{}, resp["data"])
	})

	t.Run("get_with_offer", func(t *testing.T) {
		mockService.EXPECT().GetListing(gomock.Any(), "l1").Return(model.ListingDetails{
			Listing: model.TradeListing{ListingID: "l1", Status: model.StatusOffered},
			Offer:   &model.TradeOffer{OfferID: "o1", OffererID: "bob"},
		}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/listings/l1", nil)
		require.Equal(t, http.StatusOK, status)
		data := resp["data"].(map[string]any)
		require.Equal(t, "offered", data["status"])
		require.Equal(t, "o1", data["offer"].(map[string]any)["offer_id"])
	})

	t.Run("get_missing", func(t *testing.T) {
		mockService.EXPECT().GetListing(gomock.Any(), "nope").Return(model.ListingDetails{}, tradeerrors.ErrListingNotFound)

		status, _ := doRequest(t, router, http.MethodGet, "/listings/nope", nil)
		require.Equal(t, http.StatusNotFound, status)
	})

	t.Run("my_trades", func(t *testing.T) {
		mockService.EXPECT().ListUserTrades(gomock.Any(), "alice").Return(nil, errors.New("db down"))

		status, resp := doRequest(t, router, http.MethodGet, "/me/trades", nil)
		require.Equal(t, http.StatusInternalServerError, status)
		require.Contains(t, resp["message"], "internal server error")
	})
}

// Test AccountHandler routes
func TestAccountHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockInventory := NewMockInventoryServiceInterface(ctrl)
	mockFeed := NewMockNotificationFeedInterface(ctrl)
	handler := NewAccountHandler(mockInventory, mockFeed)

	router := newTestRouter("alice")
	router.GET("/me", handler.GetProfileHandler)
	router.GET("/me/inventory", handler.GetInventoryHandler)
	router.POST("/me/inventory/:item_id/equip", handler.EquipItemHandler)
	router.POST("/me/inventory/:item_id/unequip", handler.UnequipItemHandler)
	router.POST("/me/inventory/:item_id/sell", handler.SellItemHandler)
	router.GET("/me/notifications", handler.ListNotificationsHandler)
	router.POST("/me/notifications/read", handler.MarkNotificationsReadHandler)

	t.Run("profile", func(t *testing.T) {
		mockInventory.EXPECT().GetUser(gomock.Any(), "alice").Return(model.User{UserID: "alice", Coins: 42}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/me", nil)
		require.Equal(t, http.StatusOK, status)
		require.EqualValues(t, 42, resp["data"].(map[string]any)["coins"])
	})

	t.Run("inventory", func(t *testing.T) {
		mockInventory.EXPECT().GetInventory(gomock.Any(), "alice").Return([]model.InventoryItem{
			{ItemID: "a1", OwnerID: "alice", Value: decimal.RequireFromString("3.50")},
		}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/me/inventory", nil)
		require.Equal(t, http.StatusOK, status)
		items := resp["data"].([]any)
		require.Len(t, items, 1)
		require.Equal(t, "3.5", items[0].(map[string]any)["value"])
	})

	t.Run("equip_committed_item", func(t *testing.T) {
		mockInventory.EXPECT().EquipItem(gomock.Any(), "alice", "a1").Return(model.InventoryItem{}, tradeerrors.ErrInvalidItemState)

		status, _ := doRequest(t, router, http.MethodPost, "/me/inventory/a1/equip", nil)
		require.Equal(t, http.StatusConflict, status)
	})

	t.Run("unequip", func(t *testing.T) {
		mockInventory.EXPECT().UnequipItem(gomock.Any(), "alice", "a1").Return(model.InventoryItem{ItemID: "a1"}, nil)

		status, resp := doRequest(t, router, http.MethodPost, "/me/inventory/a1/unequip", nil)
		require.Equal(t, http.StatusOK, status)
		require.Equal(t, false, resp["data"].(map[string]any)["equipped"])
	})

	t.Run("sell", func(t *testing.T) {
		mockInventory.EXPECT().SellItem(gomock.Any(), "alice", "a1").Return(model.User{UserID: "alice", Coins: 45}, nil)

		status, resp := doRequest(t, router, http.MethodPost, "/me/inventory/a1/sell", nil)
		require.Equal(t, http.StatusOK, status)
		require.Contains(t, resp["message"], "item sold successfully")
	})

	t.Run("unread_notifications", func(t *testing.T) {
		mockFeed.EXPECT().List(gomock.Any(), "alice", true).Return([]model.Notification{
			{NotificationID: "n1", Type: model.NotifyOfferReceived, ListingID: "l1"},
		}, nil)

		status, resp := doRequest(t, router, http.MethodGet, "/me/notifications?unread=true", nil)
		require.Equal(t, http.StatusOK, status)
		require.Len(t, resp["data"], 1)
	})

	t.Run("mark_read", func(t *testing.T) {
		mockFeed.EXPECT().MarkRead(gomock.Any(), "alice").Return(3, nil)

		status, resp := doRequest(t, router, http.MethodPost, "/me/notifications/read", nil)
		require.Equal(t, http.StatusOK, status)
		require.EqualValues(t, 3, resp["data"].(map[string]any)["marked"])
	})
}
