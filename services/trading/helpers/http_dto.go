package helpers

import (
	"time"

	model "skinswap/internal/models"

	"github.com/shopspring/decimal"
)

// Request/Response DTOs
type CreateListingRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type MakeOfferRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type ListListingsQuery struct {
	Status   string `form:"status" binding:"omitempty,oneof=open offered accepted declined cancelled"`
	SellerID string `form:"seller_id"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset   int    `form:"offset" binding:"omitempty,min=0"`
}

type NotificationsQuery struct {
	Unread bool `form:"unread"`
}

type ListingResponse struct {
	ListingID       string `json:"listing_id"`
	SellerID        string `json:"seller_id"`
	ItemID          string `json:"item_id"`
	Status          string `json:"status"`
	CreatedAt       string `json:"created_at"`
	UpdatedAt       string `json:"updated_at"`
	AcceptedOfferID string `json:"accepted_offer_id,omitempty"`
	BuyerID         string `json:"buyer_id,omitempty"`
	CounterItemID   string `json:"counter_item_id,omitempty"`
}

type OfferResponse struct {
	OfferID   string `json:"offer_id"`
	ListingID string `json:"listing_id"`
	OffererID string `json:"offerer_id"`
	ItemID    string `json:"item_id"`
	CreatedAt string `json:"created_at"`
}

type ListingDetailsResponse struct {
	ListingResponse
	Offer *OfferResponse `json:"offer,omitempty"`
}

type ItemResponse struct {
	ItemID       string          `json:"item_id"`
	DefinitionID string          `json:"definition_id"`
	Name         string          `json:"name"`
	Equipped     bool            `json:"equipped"`
	Value        decimal.Decimal `json:"value"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
	Gems     int64  `json:"gems"`
}

type NotificationResponse struct {
	NotificationID string `json:"notification_id"`
	Type           string `json:"type"`
	ListingID      string `json:"listing_id"`
	Message        string `json:"message"`
	Read           bool   `json:"read"`
	CreatedAt      string `json:"created_at"`
}

type MarkReadResponse struct {
	Marked int `json:"marked"`
}

func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339)
}

// ToListingResponse converts a listing to its wire form
func ToListingResponse(l model.TradeListing) ListingResponse {
	return ListingResponse{
		ListingID:       l.ListingID,
		SellerID:        l.SellerID,
		ItemID:          l.ItemID,
		Status:          string(l.Status),
		CreatedAt:       formatTime(l.CreatedAt),
		UpdatedAt:       formatTime(l.UpdatedAt),
		AcceptedOfferID: l.AcceptedOfferID,
		BuyerID:         l.BuyerID,
		CounterItemID:   l.CounterItemID,
	}
}

// ToListingResponses converts a slice of listings, never returning nil
func ToListingResponses(listings []model.TradeListing) []ListingResponse {
	out := make([]ListingResponse, 0, len(listings))
	for _, l := range listings {
		out = append(out, ToListingResponse(l))
	}
	return out
}

// ToOfferResponse converts an offer to its wire form
func ToOfferResponse(o model.TradeOffer) OfferResponse {
	return OfferResponse{
		OfferID:   o.OfferID,
		ListingID: o.ListingID,
		OffererID: o.OffererID,
		ItemID:    o.ItemID,
		CreatedAt: formatTime(o.CreatedAt),
	}
}

// ToListingDetailsResponse converts a listing with its optional offer
func ToListingDetailsResponse(d model.ListingDetails) ListingDetailsResponse {
	resp := ListingDetailsResponse{ListingResponse: ToListingResponse(d.Listing)}
	if d.Offer != nil {
		offer := ToOfferResponse(*d.Offer)
		resp.Offer = &offer
	}
	return resp
}

// ToItemResponses converts inventory items, never returning nil
func ToItemResponses(items []model.InventoryItem) []ItemResponse {
	out := make([]ItemResponse, 0, len(items))
	for _, i := range items {
		out = append(out, ToItemResponse(i))
	}
	return out
}

// ToItemResponse converts an inventory item to its wire form
func ToItemResponse(i model.InventoryItem) ItemResponse {
	return ItemResponse{
		ItemID:       i.ItemID,
		DefinitionID: i.DefinitionID,
		Name:         i.Name,
		Equipped:     i.Equipped,
		Value:        i.Value,
	}
}

// ToUserResponse converts a user to its wire form
func ToUserResponse(u model.User) UserResponse {
	return UserResponse{UserID: u.UserID, Username: u.Username, Coins: u.Coins, Gems: u.Gems}
}

// ToNotificationResponses converts notifications, never returning nil
func ToNotificationResponses(feed []model.Notification) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(feed))
	for _, n := range feed {
		out = append(out, NotificationResponse{
			NotificationID: n.NotificationID,
			Type:           string(n.Type),
			ListingID:      n.ListingID,
			Message:        n.Message,
			Read:           n.Read,
			CreatedAt:      formatTime(n.CreatedAt),
		})
	}
	return out
}
