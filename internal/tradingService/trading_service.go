package trading

import (
	"context"
	"errors"
	"fmt"
	"time"

	"skinswap/internal/models"
	"skinswap/internal/repository"
	"skinswap/internal/tradeerrors"
	"skinswap/utils"
)

//go:generate mockgen -destination=mock_notifier.go -package=trading skinswap/internal/tradingService Notifier

// Notifier receives trade events for delivery to users. Notify must not block.
type Notifier interface {
	Notify(n models.Notification) bool
}

// TradingService implements the listing and offer workflow.
//
// Every state change is delegated to a single atomic TradeDB primitive. The
// service validates first to return precise errors, then lets the store
// re-check under its own lock or transaction, so a concurrent change between
// the two is reported as the matching domain error rather than applied.
type TradingService struct {
	repo     repository.TradeDB
	notifier Notifier
	now      func() time.Time
}

// NewTradingService creates a new TradingService instance. notifier may be nil.
func NewTradingService(repo repository.TradeDB, notifier Notifier) *TradingService {
	return &TradingService{
		repo:     repo,
		notifier: notifier,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// CreateListing publishes one of the seller's unequipped items for trade
func (s *TradingService) CreateListing(ctx context.Context, sellerID, itemID string) (models.TradeListing, error) {
	if sellerID == "" || itemID == "" {
		return models.TradeListing{}, fmt.Errorf("service: %w - missing seller or item ID", tradeerrors.ErrInvalidRequest)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.TradeListing{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.OwnerID != sellerID {
		return models.TradeListing{}, fmt.Errorf("service: %w - item %s belongs to another user", tradeerrors.ErrNotOwner, itemID)
	}
	if err := s.checkTradable(ctx, item); err != nil {
		return models.TradeListing{}, err
	}

	now := s.now()
	listing := models.TradeListing{
		ListingID: utils.GenerateID(),
		SellerID:  sellerID,
		ItemID:    itemID,
		Status:    models.StatusOpen,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.InsertListing(ctx, listing); err != nil {
		return models.TradeListing{}, fmt.Errorf("service: failed to create listing for item %s: %w", itemID, err)
	}

	return listing, nil
}

// MakeOffer proposes one of the offerer's items against an open listing.
// Of several concurrent offers on the same listing exactly one succeeds; the
// others fail with ErrListingNotOpen.
func (s *TradingService) MakeOffer(ctx context.Context, listingID, offererID, itemID string) (models.TradeOffer, error) {
	if listingID == "" || offererID == "" || itemID == "" {
		return models.TradeOffer{}, fmt.Errorf("service: %w - missing listing, offerer or item ID", tradeerrors.ErrInvalidRequest)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return models.TradeOffer{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID == offererID {
		return models.TradeOffer{}, fmt.Errorf("service: %w - listing %s", tradeerrors.ErrSelfTrade, listingID)
	}
	if listing.Status != models.StatusOpen {
		return models.TradeOffer{}, fmt.Errorf("service: %w - listing %s is %s", tradeerrors.ErrListingNotOpen, listingID, listing.Status)
	}

	item, err := s.repo.GetItem(ctx, itemID)
	if err != nil {
		return models.TradeOffer{}, fmt.Errorf("service: failed to load item %s: %w", itemID, err)
	}
	if item.OwnerID != offererID {
		return models.TradeOffer{}, fmt.Errorf("service: %w - item %s is not owned by the offerer", tradeerrors.ErrInvalidItemState, itemID)
	}
	if err := s.checkTradable(ctx, item); err != nil {
		return models.TradeOffer{}, err
	}

	offer := models.TradeOffer{
		OfferID:   utils.GenerateID(),
		ListingID: listingID,
		OffererID: offererID,
		ItemID:    itemID,
		CreatedAt: s.now(),
	}
	if _, err := s.repo.AttachOffer(ctx, offer); err != nil {
		if errors.Is(err, tradeerrors.ErrStatusConflict) {
			return models.TradeOffer{}, fmt.Errorf("service: %w - listing %s was taken concurrently: %v", tradeerrors.ErrListingNotOpen, listingID, err)
		}
		return models.TradeOffer{}, fmt.Errorf("service: failed to attach offer to listing %s: %w", listingID, err)
	}

	s.notify(listing.SellerID, models.NotifyOfferReceived, listingID,
		fmt.Sprintf("You received an offer on listing %s", listingID))
	return offer, nil
}

// AcceptOffer completes the trade: the listed item goes to the offerer and the
// offered item to the seller, atomically.
func (s *TradingService) AcceptOffer(ctx context.Context, listingID, sellerID string) (models.TradeListing, error) {
	listing, err := s.loadOwnedListing(ctx, listingID, sellerID)
	if err != nil {
		return models.TradeListing{}, err
	}
	if listing.Status != models.StatusOffered {
		return models.TradeListing{}, fmt.Errorf("service: %w - listing %s is %s", tradeerrors.ErrListingNotOffered, listingID, listing.Status)
	}

	accepted, offer, err := s.repo.SwapOwnership(ctx, listingID)
	switch {
	case err == nil:
	case errors.Is(err, tradeerrors.ErrStatusConflict):
		return models.TradeListing{}, fmt.Errorf("service: %w - listing %s changed concurrently: %v", tradeerrors.ErrListingNotOffered, listingID, err)
	case errors.Is(err, tradeerrors.ErrNotFound):
		return models.TradeListing{}, fmt.Errorf("service: failed to accept listing %s: %w", listingID, err)
	case errors.Is(err, tradeerrors.ErrSwapFailed):
		utils.Error("trading: swap failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return models.TradeListing{}, fmt.Errorf("service: failed to accept listing %s: %w", listingID, err)
	default:
		utils.Error("trading: swap failed", map[string]any{"listing_id": listingID, "error": err.Error()})
		return models.TradeListing{}, fmt.Errorf("service: failed to accept listing %s: %w: %w", listingID, tradeerrors.ErrSwapFailed, err)
	}

	s.notify(offer.OffererID, models.NotifyOfferAccepted, listingID,
		fmt.Sprintf("Your offer on listing %s was accepted", listingID))
	return accepted, nil
}

// DeclineOffer rejects the pending offer and reopens the listing
func (s *TradingService) DeclineOffer(ctx context.Context, listingID, sellerID string) (models.TradeListing, error) {
	listing, err := s.loadOwnedListing(ctx, listingID, sellerID)
	if err != nil {
		return models.TradeListing{}, err
	}
	if listing.Status != models.StatusOffered {
		return models.TradeListing{}, fmt.Errorf("service: %w - listing %s is %s", tradeerrors.ErrListingNotOffered, listingID, listing.Status)
	}

	reopened, discarded, err := s.repo.TransitionListing(ctx, listingID,
		[]models.ListingStatus{models.StatusOffered}, models.StatusOpen)
	if err != nil {
		if errors.Is(err, tradeerrors.ErrStatusConflict) {
			return models.TradeListing{}, fmt.Errorf("service: %w - listing %s changed concurrently: %v", tradeerrors.ErrListingNotOffered, listingID, err)
		}
		return models.TradeListing{}, fmt.Errorf("service: failed to decline offer on listing %s: %w", listingID, err)
	}

	if discarded != nil {
		s.notify(discarded.OffererID, models.NotifyOfferDeclined, listingID,
			fmt.Sprintf("Your offer on listing %s was declined", listingID))
	}
	return reopened, nil
}

// CancelListing withdraws a listing that has not been accepted, discarding any
// pending offer
func (s *TradingService) CancelListing(ctx context.Context, listingID, sellerID string) (models.TradeListing, error) {
	listing, err := s.loadOwnedListing(ctx, listingID, sellerID)
	if err != nil {
		return models.TradeListing{}, err
	}
	if !listing.Status.Active() {
		return models.TradeListing{}, fmt.Errorf("service: %w - listing %s is %s", tradeerrors.ErrAlreadyTerminal, listingID, listing.Status)
	}

	cancelled, discarded, err := s.repo.TransitionListing(ctx, listingID,
		[]models.ListingStatus{models.StatusOpen, models.StatusOffered}, models.StatusCancelled)
	if err != nil {
		if errors.Is(err, tradeerrors.ErrStatusConflict) {
			return models.TradeListing{}, fmt.Errorf("service: %w - listing %s changed concurrently: %v", tradeerrors.ErrAlreadyTerminal, listingID, err)
		}
		return models.TradeListing{}, fmt.Errorf("service: failed to cancel listing %s: %w", listingID, err)
	}

	if discarded != nil {
		s.notify(discarded.OffererID, models.NotifyListingCanceled, listingID,
			fmt.Sprintf("Listing %s was cancelled by the seller", listingID))
	}
	return cancelled, nil
}

// GetListing returns a listing with its pending offer
func (s *TradingService) GetListing(ctx context.Context, listingID string) (models.ListingDetails, error) {
	if listingID == "" {
		return models.ListingDetails{}, fmt.Errorf("service: %w - empty listing ID", tradeerrors.ErrInvalidRequest)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return models.ListingDetails{}, fmt.Errorf("service: failed to get listing %s: %w", listingID, err)
	}

	details := models.ListingDetails{Listing: listing}
	if listing.Status == models.StatusOffered {
		offer, err := s.repo.GetActiveOffer(ctx, listingID)
		switch {
		case err == nil:
			details.Offer = &offer
		case errors.Is(err, tradeerrors.ErrOfferNotFound):
			// declined or cancelled between the two reads
		default:
			return models.ListingDetails{}, fmt.Errorf("service: failed to get offer for listing %s: %w", listingID, err)
		}
	}
	return details, nil
}

// ListListings returns listings matching the filter, newest first
func (s *TradingService) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.TradeListing, error) {
	if filter.Status != "" && !filter.Status.Valid() {
		return nil, fmt.Errorf("service: %w - unknown status %q", tradeerrors.ErrInvalidRequest, filter.Status)
	}
	if filter.Limit < 0 || filter.Offset < 0 {
		return nil, fmt.Errorf("service: %w - negative limit or offset", tradeerrors.ErrInvalidRequest)
	}

	listings, err := s.repo.ListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list listings: %w", err)
	}
	return listings, nil
}

// ListUserTrades returns the listings a user created, bought, or has an offer on
func (s *TradingService) ListUserTrades(ctx context.Context, userID string) ([]models.TradeListing, error) {
	if userID == "" {
		return nil, fmt.Errorf("service: %w - empty user ID", tradeerrors.ErrInvalidRequest)
	}

	listings, err := s.repo.ListUserTrades(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list trades for user %s: %w", userID, err)
	}
	return listings, nil
}

// loadOwnedListing fetches a listing and checks that callerID is its seller
func (s *TradingService) loadOwnedListing(ctx context.Context, listingID, callerID string) (models.TradeListing, error) {
	if listingID == "" || callerID == "" {
		return models.TradeListing{}, fmt.Errorf("service: %w - missing listing or caller ID", tradeerrors.ErrInvalidRequest)
	}

	listing, err := s.repo.GetListing(ctx, listingID)
	if err != nil {
		return models.TradeListing{}, fmt.Errorf("service: failed to load listing %s: %w", listingID, err)
	}
	if listing.SellerID != callerID {
		return models.TradeListing{}, fmt.Errorf("service: %w - listing %s", tradeerrors.ErrNotOwner, listingID)
	}
	return listing, nil
}

// checkTradable rejects items that are equipped or already committed to a trade
func (s *TradingService) checkTradable(ctx context.Context, item models.InventoryItem) error {
	if item.Equipped {
		return fmt.Errorf("service: %w - item %s is equipped", tradeerrors.ErrInvalidItemState, item.ItemID)
	}

	committed, err := s.repo.IsItemCommitted(ctx, item.ItemID)
	if err != nil {
		return fmt.Errorf("service: failed to check item %s: %w", item.ItemID, err)
	}
	if committed {
		return fmt.Errorf("service: %w - item %s is committed to another trade", tradeerrors.ErrInvalidItemState, item.ItemID)
	}
	return nil
}

func (s *TradingService) notify(userID string, kind models.NotificationType, listingID, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Notify(models.Notification{
		UserID:    userID,
		Type:      kind,
		ListingID: listingID,
		Message:   message,
		CreatedAt: s.now(),
	})
}
