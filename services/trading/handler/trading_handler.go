package handler

import (
	"context"
	"net/http"

	model "skinswap/internal/models"
	"skinswap/services/trading/helpers"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

//go:generate mockgen -destination=mock_service.go -package=handler skinswap/services/trading/handler TradingServiceInterface,InventoryServiceInterface,NotificationFeedInterface

type TradingServiceInterface interface {
	CreateListing(ctx context.Context, sellerID, itemID string) (model.TradeListing, error)
	MakeOffer(ctx context.Context, listingID, offererID, itemID string) (model.TradeOffer, error)
	AcceptOffer(ctx context.Context, listingID, sellerID string) (model.TradeListing, error)
	DeclineOffer(ctx context.Context, listingID, sellerID string) (model.TradeListing, error)
	CancelListing(ctx context.Context, listingID, sellerID string) (model.TradeListing, error)
	GetListing(ctx context.Context, listingID string) (model.ListingDetails, error)
	ListListings(ctx context.Context, filter model.ListingFilter) ([]model.TradeListing, error)
	ListUserTrades(ctx context.Context, userID string) ([]model.TradeListing, error)
}

type TradingHandler struct {
	service TradingServiceInterface
}

func NewTradingHandler(service TradingServiceInterface) *TradingHandler {
	return &TradingHandler{service: service}
}

// CreateListingHandler handles POST /listings
func (h *TradingHandler) CreateListingHandler(c *gin.Context) {
	var req helpers.CreateListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "CreateListingHandler", err)
		return
	}

	userID := helpers.CurrentUserID(c)
	listing, err := h.service.CreateListing(c.Request.Context(), userID, req.ItemID)
	if err != nil {
		helpers.HandleServiceError(c, "CreateListingHandler", err, map[string]any{
			"user_id": userID,
			"item_id": req.ItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToListingResponse(listing), "listing created successfully")
	helpers.LogSuccess("CreateListingHandler", "listing created successfully", map[string]any{
		"listing_id": listing.ListingID,
		"item_id":    listing.ItemID,
		"user_id":    userID,
	})
}

// ListListingsHandler handles GET /listings
func (h *TradingHandler) ListListingsHandler(c *gin.Context) {
	var q helpers.ListListingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		helpers.HandleBindError(c, "ListListingsHandler", err)
		return
	}

	filter := model.ListingFilter{
		Status:   model.ListingStatus(q.Status),
		SellerID: q.SellerID,
		Limit:    q.Limit,
		Offset:   q.Offset,
	}
	listings, err := h.service.ListListings(c.Request.Context(), filter)
	if err != nil {
		helpers.HandleServiceError(c, "ListListingsHandler", err, map[string]any{"status": q.Status})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "listings retrieved successfully")
	helpers.LogSuccess("ListListingsHandler", "listings retrieved successfully", map[string]any{
		"count": len(listings),
	})
}

// GetListingHandler handles GET /listings/:listing_id
func (h *TradingHandler) GetListingHandler(c *gin.Context) {
	listingID := c.Param("listing_id")
	details, err := h.service.GetListing(c.Request.Context(), listingID)
	if err != nil {
		helpers.HandleServiceError(c, "GetListingHandler", err, map[string]any{"listing_id": listingID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingDetailsResponse(details), "listing retrieved successfully")
}

// MakeOfferHandler handles POST /listings/:listing_id/offers
func (h *TradingHandler) MakeOfferHandler(c *gin.Context) {
	var req helpers.MakeOfferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.HandleBindError(c, "MakeOfferHandler", err)
		return
	}

	listingID := c.Param("listing_id")
	userID := helpers.CurrentUserID(c)
	offer, err := h.service.MakeOffer(c.Request.Context(), listingID, userID, req.ItemID)
	if err != nil {
		helpers.HandleServiceError(c, "MakeOfferHandler", err, map[string]any{
			"listing_id": listingID,
			"user_id":    userID,
			"item_id":    req.ItemID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusCreated, helpers.ToOfferResponse(offer), "offer submitted successfully")
	helpers.LogSuccess("MakeOfferHandler", "offer submitted successfully", map[string]any{
		"offer_id":   offer.OfferID,
		"listing_id": listingID,
		"user_id":    userID,
	})
}

// AcceptOfferHandler handles POST /listings/:listing_id/accept
func (h *TradingHandler) AcceptOfferHandler(c *gin.Context) {
	h.transition(c, "AcceptOfferHandler", h.service.AcceptOffer, "offer accepted successfully")
}

// DeclineOfferHandler handles POST /listings/:listing_id/decline
func (h *TradingHandler) DeclineOfferHandler(c *gin.Context) {
	h.transition(c, "DeclineOfferHandler", h.service.DeclineOffer, "offer declined successfully")
}

// CancelListingHandler handles POST /listings/:listing_id/cancel
func (h *TradingHandler) CancelListingHandler(c *gin.Context) {
	h.transition(c, "CancelListingHandler", h.service.CancelListing, "listing cancelled successfully")
}

// MyTradesHandler handles GET /me/trades
func (h *TradingHandler) MyTradesHandler(c *gin.Context) {
	userID := helpers.CurrentUserID(c)
	listings, err := h.service.ListUserTrades(c.Request.Context(), userID)
	if err != nil {
		helpers.HandleServiceError(c, "MyTradesHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponses(listings), "trades retrieved successfully")
}

type sellerAction func(ctx context.Context, listingID, sellerID string) (model.TradeListing, error)

// transition runs a seller-only listing action and renders the resulting listing
func (h *TradingHandler) transition(c *gin.Context, handlerName string, action sellerAction, successMsg string) {
	listingID := c.Param("listing_id")
	userID := helpers.CurrentUserID(c)

	listing, err := action(c.Request.Context(), listingID, userID)
	if err != nil {
		helpers.HandleServiceError(c, handlerName, err, map[string]any{
			"listing_id": listingID,
			"user_id":    userID,
		})
		return
	}

	utils.JSONResponse(c, http.StatusOK, helpers.ToListingResponse(listing), successMsg)
	helpers.LogSuccess(handlerName, successMsg, map[string]any{
		"listing_id": listingID,
		"user_id":    userID,
		"status":     string(listing.Status),
	})
}
