package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	model "skinswap/internal/models"
	"skinswap/internal/tradeerrors"
)

//go:generate mockgen -destination=mock_repository.go -package=repository skinswap/internal/repository TradeDB,NotificationStore

// TradeDB defines the storage contract for listings, offers and inventories.
//
// Every mutating method is atomic: it either applies all of its effects or
// none of them. Status changes are compare-and-set operations; a listing whose
// status is not one of the expected values yields ErrStatusConflict.
type TradeDB interface {
	GetUser(ctx context.Context, userID string) (model.User, error)
	GetItem(ctx context.Context, itemID string) (model.InventoryItem, error)
	GetInventory(ctx context.Context, userID string) ([]model.InventoryItem, error)
	IsItemCommitted(ctx context.Context, itemID string) (bool, error)

	GetListing(ctx context.Context, listingID string) (model.TradeListing, error)
	GetActiveOffer(ctx context.Context, listingID string) (model.TradeOffer, error)
	ListListings(ctx context.Context, filter model.ListingFilter) ([]model.TradeListing, error)
	ListUserTrades(ctx context.Context, userID string) ([]model.TradeListing, error)

	// InsertListing stores an open listing after re-checking that the item is
	// owned by the seller, unequipped and not committed to another trade.
	InsertListing(ctx context.Context, listing model.TradeListing) error
	// AttachOffer moves an open listing to offered and stores the offer.
	AttachOffer(ctx context.Context, offer model.TradeOffer) (model.TradeListing, error)
	// TransitionListing moves a listing from one of the given states to next.
	// Leaving the offered state discards the active offer, which is returned.
	TransitionListing(ctx context.Context, listingID string, from []model.ListingStatus, next model.ListingStatus) (model.TradeListing, *model.TradeOffer, error)
	// SwapOwnership exchanges the owners of the listed and offered items, marks
	// the listing accepted and removes the offer.
	SwapOwnership(ctx context.Context, listingID string) (model.TradeListing, model.TradeOffer, error)

	SetItemEquipped(ctx context.Context, itemID, ownerID string, equipped bool) (model.InventoryItem, error)
	// SellItem removes an uncommitted, unequipped item and credits its value in coins.
	SellItem(ctx context.Context, itemID, ownerID string) (model.User, error)
}

// NotificationStore persists user notifications
type NotificationStore interface {
	SaveNotification(ctx context.Context, n model.Notification) error
	ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error)
	MarkNotificationsRead(ctx context.Context, userID string) (int, error)
}

const (
	defaultListLimit = 50
	maxListLimit     = 100
)

// MemoryRepo is a concurrency-safe in-memory implementation of TradeDB and
// NotificationStore. A single lock covers all maps so that every operation
// observes and mutates a consistent snapshot.
type MemoryRepo struct {
	mu            sync.RWMutex
	users         map[string]model.User
	items         map[string]model.InventoryItem
	listings      map[string]model.TradeListing
	offers        map[string]model.TradeOffer     // key: listingID -> active offer
	commitments   map[string]string               // key: itemID -> listingID holding it
	notifications map[string][]model.Notification // key: userID
}

// NewMemoryRepo creates a new in-memory repository instance
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		users:         make(map[string]model.User),
		items:         make(map[string]model.InventoryItem),
		listings:      make(map[string]model.TradeListing),
		offers:        make(map[string]model.TradeOffer),
		commitments:   make(map[string]string),
		notifications: make(map[string][]model.Notification),
	}
}

// AddUser adds or replaces a user. Used for seeding and tests.
func (r *MemoryRepo) AddUser(user model.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.UserID] = user
}

// AddItem adds or replaces an inventory item. Used for seeding and tests.
func (r *MemoryRepo) AddItem(item model.InventoryItem) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[item.ItemID] = item
}

// GetUser returns a user by id
func (r *MemoryRepo) GetUser(_ context.Context, userID string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, tradeerrors.ErrUserNotFound)
	}
	return user, nil
}

// GetItem returns an inventory item by id
func (r *MemoryRepo) GetItem(_ context.Context, itemID string) (model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.InventoryItem{}, fmt.Errorf("get item %s: %w", itemID, tradeerrors.ErrItemNotFound)
	}
	return item, nil
}

// GetInventory returns all items owned by a user, ordered by item id
func (r *MemoryRepo) GetInventory(_ context.Context, userID string) ([]model.InventoryItem, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]model.InventoryItem, 0)
	for _, item := range r.items {
		if item.OwnerID == userID {
			items = append(items, item)
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ItemID < items[j].ItemID })
	return items, nil
}

// IsItemCommitted reports whether an item is held by a non-terminal listing or offer
func (r *MemoryRepo) IsItemCommitted(_ context.Context, itemID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.commitments[itemID]
	return ok, nil
}

// GetListing returns a listing by id
func (r *MemoryRepo) GetListing(_ context.Context, listingID string) (model.TradeListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.TradeListing{}, fmt.Errorf("get listing %s: %w", listingID, tradeerrors.ErrListingNotFound)
	}
	return listing, nil
}

// GetActiveOffer returns the offer currently attached to a listing
func (r *MemoryRepo) GetActiveOffer(_ context.Context, listingID string) (model.TradeOffer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offer, ok := r.offers[listingID]
	if !ok {
		return model.TradeOffer{}, fmt.Errorf("get offer for listing %s: %w", listingID, tradeerrors.ErrOfferNotFound)
	}
	return offer, nil
}

// ListListings returns listings matching the filter, newest first
func (r *MemoryRepo) ListListings(_ context.Context, filter model.ListingFilter) ([]model.TradeListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.TradeListing, 0)
	for _, l := range r.listings {
		if filter.Status != "" && l.Status != filter.Status {
			continue
		}
		if filter.SellerID != "" && l.SellerID != filter.SellerID {
			continue
		}
		listings = append(listings, l)
	}
	sortNewestFirst(listings)
	return paginate(listings, filter.Limit, filter.Offset), nil
}

// ListUserTrades returns listings the user created, bought, or has an active offer on
func (r *MemoryRepo) ListUserTrades(_ context.Context, userID string) ([]model.TradeListing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	listings := make([]model.TradeListing, 0)
	for _, l := range r.listings {
		offer, hasOffer := r.offers[l.ListingID]
		if l.SellerID == userID || l.BuyerID == userID || (hasOffer && offer.OffererID == userID) {
			listings = append(listings, l)
		}
	}
	sortNewestFirst(listings)
	return listings, nil
}

// InsertListing stores a new open listing
func (r *MemoryRepo) InsertListing(_ context.Context, listing model.TradeListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if listing.Status != model.StatusOpen {
		return fmt.Errorf("insert listing %s with status %q: %w", listing.ListingID, listing.Status, tradeerrors.ErrInvalidRequest)
	}
	item, ok := r.items[listing.ItemID]
	if !ok {
		return fmt.Errorf("insert listing for item %s: %w", listing.ItemID, tradeerrors.ErrItemNotFound)
	}
	if item.OwnerID != listing.SellerID {
		return fmt.Errorf("insert listing for item %s: %w", listing.ItemID, tradeerrors.ErrNotOwner)
	}
	if err := r.checkTradableLocked(item); err != nil {
		return fmt.Errorf("insert listing for item %s: %w", listing.ItemID, err)
	}

	if listing.UpdatedAt.IsZero() {
		listing.UpdatedAt = listing.CreatedAt
	}
	r.listings[listing.ListingID] = listing
	r.commitments[listing.ItemID] = listing.ListingID
	return nil
}

// AttachOffer moves an open listing to offered and records the offer
func (r *MemoryRepo) AttachOffer(_ context.Context, offer model.TradeOffer) (model.TradeListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[offer.ListingID]
	if !ok {
		return model.TradeListing{}, fmt.Errorf("attach offer to listing %s: %w", offer.ListingID, tradeerrors.ErrListingNotFound)
	}
	if listing.Status != model.StatusOpen {
		return listing, fmt.Errorf("attach offer to listing %s in status %q: %w", offer.ListingID, listing.Status, tradeerrors.ErrStatusConflict)
	}
	if listing.SellerID == offer.OffererID {
		return listing, fmt.Errorf("attach offer to listing %s: %w", offer.ListingID, tradeerrors.ErrSelfTrade)
	}
	item, ok := r.items[offer.ItemID]
	if !ok {
		return listing, fmt.Errorf("attach offer with item %s: %w", offer.ItemID, tradeerrors.ErrItemNotFound)
	}
	if item.OwnerID != offer.OffererID {
		return listing, fmt.Errorf("attach offer with item %s not owned by %s: %w", offer.ItemID, offer.OffererID, tradeerrors.ErrInvalidItemState)
	}
	if err := r.checkTradableLocked(item); err != nil {
		return listing, fmt.Errorf("attach offer with item %s: %w", offer.ItemID, err)
	}

	listing.Status = model.StatusOffered
	listing.UpdatedAt = time.Now().UTC()
	r.listings[listing.ListingID] = listing
	r.offers[listing.ListingID] = offer
	r.commitments[offer.ItemID] = listing.ListingID
	return listing, nil
}

// TransitionListing performs a compare-and-set on listing status
func (r *MemoryRepo) TransitionListing(_ context.Context, listingID string, from []model.ListingStatus, next model.ListingStatus) (model.TradeListing, *model.TradeOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.TradeListing{}, nil, fmt.Errorf("transition listing %s: %w", listingID, tradeerrors.ErrListingNotFound)
	}
	if !statusIn(listing.Status, from) {
		return listing, nil, fmt.Errorf("transition listing %s from %q to %q: %w", listingID, listing.Status, next, tradeerrors.ErrStatusConflict)
	}

	var discarded *model.TradeOffer
	if offer, ok := r.offers[listingID]; ok && next != model.StatusOffered {
		delete(r.offers, listingID)
		delete(r.commitments, offer.ItemID)
		discarded = &offer
	}
	if !next.Active() {
		delete(r.commitments, listing.ItemID)
	}

	listing.Status = next
	listing.UpdatedAt = time.Now().UTC()
	r.listings[listingID] = listing
	return listing, discarded, nil
}

// SwapOwnership exchanges item owners for an offered listing. All checks run
// before the first write so a failure leaves every record untouched.
func (r *MemoryRepo) SwapOwnership(_ context.Context, listingID string) (model.TradeListing, model.TradeOffer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listing, ok := r.listings[listingID]
	if !ok {
		return model.TradeListing{}, model.TradeOffer{}, fmt.Errorf("swap listing %s: %w", listingID, tradeerrors.ErrListingNotFound)
	}
	if listing.Status != model.StatusOffered {
		return listing, model.TradeOffer{}, fmt.Errorf("swap listing %s in status %q: %w", listingID, listing.Status, tradeerrors.ErrStatusConflict)
	}
	offer, ok := r.offers[listingID]
	if !ok {
		return listing, model.TradeOffer{}, fmt.Errorf("swap listing %s without offer: %w", listingID, tradeerrors.ErrSwapFailed)
	}
	listed, ok := r.items[listing.ItemID]
	if !ok || listed.OwnerID != listing.SellerID || listed.Equipped {
		return listing, offer, fmt.Errorf("swap listing %s: listed item %s changed: %w", listingID, listing.ItemID, tradeerrors.ErrSwapFailed)
	}
	offered, ok := r.items[offer.ItemID]
	if !ok || offered.OwnerID != offer.OffererID || offered.Equipped {
		return listing, offer, fmt.Errorf("swap listing %s: offered item %s changed: %w", listingID, offer.ItemID, tradeerrors.ErrSwapFailed)
	}

	listed.OwnerID = offer.OffererID
	offered.OwnerID = listing.SellerID
	listing.Status = model.StatusAccepted
	listing.UpdatedAt = time.Now().UTC()
	listing.AcceptedOfferID = offer.OfferID
	listing.BuyerID = offer.OffererID
	listing.CounterItemID = offer.ItemID

	r.items[listed.ItemID] = listed
	r.items[offered.ItemID] = offered
	r.listings[listingID] = listing
	delete(r.offers, listingID)
	delete(r.commitments, listed.ItemID)
	delete(r.commitments, offered.ItemID)
	return listing, offer, nil
}

// SetItemEquipped equips or unequips an owned item
func (r *MemoryRepo) SetItemEquipped(_ context.Context, itemID, ownerID string, equipped bool) (model.InventoryItem, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.InventoryItem{}, fmt.Errorf("set equipped on item %s: %w", itemID, tradeerrors.ErrItemNotFound)
	}
	if item.OwnerID != ownerID {
		return model.InventoryItem{}, fmt.Errorf("set equipped on item %s: %w", itemID, tradeerrors.ErrNotOwner)
	}
	if equipped {
		if _, committed := r.commitments[itemID]; committed {
			return item, fmt.Errorf("equip item %s committed to a trade: %w", itemID, tradeerrors.ErrInvalidItemState)
		}
	}

	item.Equipped = equipped
	r.items[itemID] = item
	return item, nil
}

// SellItem removes an item and credits its value to the owner
func (r *MemoryRepo) SellItem(_ context.Context, itemID, ownerID string) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	item, ok := r.items[itemID]
	if !ok {
		return model.User{}, fmt.Errorf("sell item %s: %w", itemID, tradeerrors.ErrItemNotFound)
	}
	if item.OwnerID != ownerID {
		return model.User{}, fmt.Errorf("sell item %s: %w", itemID, tradeerrors.ErrNotOwner)
	}
	if err := r.checkTradableLocked(item); err != nil {
		return model.User{}, fmt.Errorf("sell item %s: %w", itemID, err)
	}
	user, ok := r.users[ownerID]
	if !ok {
		return model.User{}, fmt.Errorf("sell item %s: %w", itemID, tradeerrors.ErrUserNotFound)
	}

	user.Coins += SaleProceeds(item)
	r.users[ownerID] = user
	delete(r.items, itemID)
	return user, nil
}

// SaveNotification appends a notification to the user's feed
func (r *MemoryRepo) SaveNotification(_ context.Context, n model.Notification) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifications[n.UserID] = append(r.notifications[n.UserID], n)
	return nil
}

// ListNotifications returns a user's notifications, newest first
func (r *MemoryRepo) ListNotifications(_ context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	feed := r.notifications[userID]
	out := make([]model.Notification, 0, len(feed))
	for i := len(feed) - 1; i >= 0; i-- {
		if unreadOnly && feed[i].Read {
			continue
		}
		out = append(out, feed[i])
	}
	return out, nil
}

// MarkNotificationsRead marks every unread notification of a user as read
func (r *MemoryRepo) MarkNotificationsRead(_ context.Context, userID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	marked := 0
	feed := r.notifications[userID]
	for i := range feed {
		if !feed[i].Read {
			feed[i].Read = true
			marked++
		}
	}
	return marked, nil
}

// checkTradableLocked rejects equipped items and items held by another trade.
// Caller must hold r.mu.
func (r *MemoryRepo) checkTradableLocked(item model.InventoryItem) error {
	if item.Equipped {
		return fmt.Errorf("item %s is equipped: %w", item.ItemID, tradeerrors.ErrInvalidItemState)
	}
	if listingID, committed := r.commitments[item.ItemID]; committed {
		return fmt.Errorf("item %s is committed to listing %s: %w", item.ItemID, listingID, tradeerrors.ErrInvalidItemState)
	}
	return nil
}

// SaleProceeds is the number of coins credited for selling an item
func SaleProceeds(item model.InventoryItem) int64 {
	return item.Value.Floor().IntPart()
}

func statusIn(status model.ListingStatus, set []model.ListingStatus) bool {
	for _, s := range set {
		if s == status {
			return true
		}
	}
	return false
}

func sortNewestFirst(listings []model.TradeListing) {
	sort.Slice(listings, func(i, j int) bool {
		if listings[i].CreatedAt.Equal(listings[j].CreatedAt) {
			return listings[i].ListingID > listings[j].ListingID
		}
		return listings[i].CreatedAt.After(listings[j].CreatedAt)
	})
}

func normalizeLimit(limit int) int {
	if limit <= 0 || limit > maxListLimit {
		return defaultListLimit
	}
	return limit
}

func paginate(listings []model.TradeListing, limit, offset int) []model.TradeListing {
	limit = normalizeLimit(limit)
	if offset < 0 {
		offset = 0
	}
	if offset >= len(listings) {
		return []model.TradeListing{}
	}
	end := offset + limit
	if end > len(listings) {
		end = len(listings)
	}
	return listings[offset:end]
}
