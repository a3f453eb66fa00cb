package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ListingStatus is the lifecycle state of a trade listing
type ListingStatus string

const (
	StatusOpen      ListingStatus = "open"
	StatusOffered   ListingStatus = "offered"
	StatusAccepted  ListingStatus = "accepted"
	StatusDeclined  ListingStatus = "declined"
	StatusCancelled ListingStatus = "cancelled"
)

// Terminal reports whether no further transitions are allowed from s
func (s ListingStatus) Terminal() bool {
	return s == StatusAccepted || s == StatusCancelled
}

// Active reports whether a listing in state s still commits its item
func (s ListingStatus) Active() bool {
	return s == StatusOpen || s == StatusOffered
}

// Valid reports whether s is a known status
func (s ListingStatus) Valid() bool {
	switch s {
	case StatusOpen, StatusOffered, StatusAccepted, StatusDeclined, StatusCancelled:
		return true
	}
	return false
}

// User represents a platform account and its balances
type User struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Coins    int64  `json:"coins"`
	Gems     int64  `json:"gems"`
}

// InventoryItem is a single owned skin instance
type InventoryItem struct {
	ItemID       string          `json:"item_id"`
	OwnerID      string          `json:"owner_id"`
	DefinitionID string          `json:"definition_id"`
	Name         string          `json:"name"`
	Equipped     bool            `json:"equipped"`
	Value        decimal.Decimal `json:"value"`
}

// TradeListing is one item published by its owner for trade
type TradeListing struct {
	ListingID string        `json:"listing_id"`
	SellerID  string        `json:"seller_id"`
	ItemID    string        `json:"item_id"`
	Status    ListingStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`

	// Terms of the accepted offer, set only once the listing is accepted
	AcceptedOfferID string `json:"accepted_offer_id,omitempty"`
	BuyerID         string `json:"buyer_id,omitempty"`
	CounterItemID   string `json:"counter_item_id,omitempty"`
}

// TradeOffer is a counter-item proposed against an open listing
type TradeOffer struct {
	OfferID   string    `json:"offer_id"`
	ListingID string    `json:"listing_id"`
	OffererID string    `json:"offerer_id"`
	ItemID    string    `json:"item_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ListingFilter narrows ListListings results
type ListingFilter struct {
	Status   ListingStatus
	SellerID string
	Limit    int
	Offset   int
}

// NotificationType names the trade event a notification reports
type NotificationType string

const (
	NotifyOfferReceived   NotificationType = "offer_received"
	NotifyOfferAccepted   NotificationType = "offer_accepted"
	NotifyOfferDeclined   NotificationType = "offer_declined"
	NotifyListingCanceled NotificationType = "listing_cancelled"
)

// Notification is a message delivered to a user about one of their trades
type Notification struct {
	NotificationID string           `json:"notification_id"`
	UserID         string           `json:"user_id"`
	Type           NotificationType `json:"type"`
	ListingID      string           `json:"listing_id"`
	Message        string           `json:"message"`
	Read           bool             `json:"read"`
	CreatedAt      time.Time        `json:"created_at"`
}

// ListingDetails is a listing together with its active offer, if any
type ListingDetails struct {
	Listing TradeListing `json:"listing"`
	Offer   *TradeOffer  `json:"offer,omitempty"`
}
