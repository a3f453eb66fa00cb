package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	model "skinswap/internal/models"
	"skinswap/internal/tradeerrors"
	"skinswap/utils"

	"github.com/lib/pq"
)

const (
	listingColumns = `id, seller_id, item_id, status, created_at, updated_at,
		COALESCE(accepted_offer_id, ''), COALESCE(buyer_id, ''), COALESCE(counter_item_id, '')`
	userTradeColumns = `l.id, l.seller_id, l.item_id, l.status, l.created_at, l.updated_at,
		COALESCE(l.accepted_offer_id, ''), COALESCE(l.buyer_id, ''), COALESCE(l.counter_item_id, '')`
	offerColumns        = `id, listing_id, offerer_id, item_id, created_at`
	itemColumns         = `id, owner_id, definition_id, name, equipped, value`
	notificationColumns = `id, user_id, type, listing_id, message, read, created_at`

	committedQuery = `
		SELECT EXISTS (SELECT 1 FROM trade_listings WHERE item_id = $1 AND status IN ('open', 'offered'))
		    OR EXISTS (SELECT 1 FROM trade_offers WHERE item_id = $1)`

	defaultTxAttempts = 3
)

// PostgresRepo implements TradeDB and NotificationStore on PostgreSQL.
//
// Mutations run in READ COMMITTED transactions that lock the listing and item
// rows they touch with SELECT ... FOR UPDATE. Transactions aborted by a
// serialization failure or deadlock are retried a bounded number of times.
type PostgresRepo struct {
	db          *sql.DB
	maxAttempts int
	now         func() time.Time
}

// NewPostgresRepo wraps an open database handle
func NewPostgresRepo(db *sql.DB) *PostgresRepo {
	return &PostgresRepo{
		db:          db,
		maxAttempts: defaultTxAttempts,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// queryer is satisfied by both *sql.DB and *sql.Tx
type queryer interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type rowScanner interface {
	Scan(dest ...any) error
}

// GetUser returns a user by id
func (r *PostgresRepo) GetUser(ctx context.Context, userID string) (model.User, error) {
	var u model.User
	err := r.db.QueryRowContext(ctx,
		`SELECT id, username, coins, gems FROM users WHERE id = $1`, userID,
	).Scan(&u.UserID, &u.Username, &u.Coins, &u.Gems)
	if errors.Is(err, sql.ErrNoRows) {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, tradeerrors.ErrUserNotFound)
	}
	if err != nil {
		return model.User{}, fmt.Errorf("get user %s: %w", userID, err)
	}
	return u, nil
}

// GetItem returns an inventory item by id
func (r *PostgresRepo) GetItem(ctx context.Context, itemID string) (model.InventoryItem, error) {
	item, err := scanItem(r.db.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1`, itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.InventoryItem{}, fmt.Errorf("get item %s: %w", itemID, tradeerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("get item %s: %w", itemID, err)
	}
	return item, nil
}

// GetInventory returns all items owned by a user, ordered by item id
func (r *PostgresRepo) GetInventory(ctx context.Context, userID string) ([]model.InventoryItem, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE owner_id = $1 ORDER BY id`, userID)
	if err != nil {
		return nil, fmt.Errorf("get inventory for user %s: %w", userID, err)
	}
	defer rows.Close()

	items := make([]model.InventoryItem, 0)
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan inventory item: %w", err)
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// IsItemCommitted reports whether an item is held by a non-terminal listing or offer
func (r *PostgresRepo) IsItemCommitted(ctx context.Context, itemID string) (bool, error) {
	return isCommitted(ctx, r.db, itemID)
}

// GetListing returns a listing by id
func (r *PostgresRepo) GetListing(ctx context.Context, listingID string) (model.TradeListing, error) {
	listing, err := scanListing(r.db.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM trade_listings WHERE id = $1`, listingID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TradeListing{}, fmt.Errorf("get listing %s: %w", listingID, tradeerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.TradeListing{}, fmt.Errorf("get listing %s: %w", listingID, err)
	}
	return listing, nil
}

// GetActiveOffer returns the offer currently attached to a listing
func (r *PostgresRepo) GetActiveOffer(ctx context.Context, listingID string) (model.TradeOffer, error) {
	offer, err := scanOffer(r.db.QueryRowContext(ctx,
		`SELECT `+offerColumns+` FROM trade_offers WHERE listing_id = $1`, listingID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TradeOffer{}, fmt.Errorf("get offer for listing %s: %w", listingID, tradeerrors.ErrOfferNotFound)
	}
	if err != nil {
		return model.TradeOffer{}, fmt.Errorf("get offer for listing %s: %w", listingID, err)
	}
	return offer, nil
}

// ListListings returns listings matching the filter, newest first
func (r *PostgresRepo) ListListings(ctx context.Context, filter model.ListingFilter) ([]model.TradeListing, error) {
	var conditions []string
	var args []any
	argIdx := 1

	if filter.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argIdx))
		args = append(args, string(filter.Status))
		argIdx++
	}
	if filter.SellerID != "" {
		conditions = append(conditions, fmt.Sprintf("seller_id = $%d", argIdx))
		args = append(args, filter.SellerID)
		argIdx++
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	args = append(args, normalizeLimit(filter.Limit), offset)

	query := fmt.Sprintf(`SELECT %s FROM trade_listings %s ORDER BY created_at DESC, id DESC LIMIT $%d OFFSET $%d`,
		listingColumns, where, argIdx, argIdx+1)
	return r.queryListings(ctx, query, args...)
}

// ListUserTrades returns listings the user created, bought, or has an active offer on
func (r *PostgresRepo) ListUserTrades(ctx context.Context, userID string) ([]model.TradeListing, error) {
	return r.queryListings(ctx, `
		SELECT `+userTradeColumns+`
		FROM trade_listings l
		LEFT JOIN trade_offers o ON o.listing_id = l.id
		WHERE l.seller_id = $1 OR l.buyer_id = $1 OR o.offerer_id = $1
		ORDER BY l.created_at DESC, l.id DESC`, userID)
}

// InsertListing stores a new open listing
func (r *PostgresRepo) InsertListing(ctx context.Context, listing model.TradeListing) error {
	if listing.Status != model.StatusOpen {
		return fmt.Errorf("insert listing %s with status %q: %w", listing.ListingID, listing.Status, tradeerrors.ErrInvalidRequest)
	}
	if listing.UpdatedAt.IsZero() {
		listing.UpdatedAt = listing.CreatedAt
	}

	return r.withTx(ctx, func(tx *sql.Tx) error {
		item, err := lockItem(ctx, tx, listing.ItemID)
		if err != nil {
			return fmt.Errorf("insert listing: %w", err)
		}
		if item.OwnerID != listing.SellerID {
			return fmt.Errorf("insert listing for item %s: %w", item.ItemID, tradeerrors.ErrNotOwner)
		}
		if err := checkTradable(ctx, tx, item); err != nil {
			return fmt.Errorf("insert listing: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO trade_listings (id, seller_id, item_id, status, created_at, updated_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			listing.ListingID, listing.SellerID, listing.ItemID, string(listing.Status), listing.CreatedAt, listing.UpdatedAt)
		if isUniqueViolation(err) {
			return fmt.Errorf("insert listing for item %s: %w", listing.ItemID, tradeerrors.ErrInvalidItemState)
		}
		if err != nil {
			return fmt.Errorf("insert listing %s: %w", listing.ListingID, err)
		}
		return nil
	})
}

// AttachOffer moves an open listing to offered and records the offer
func (r *PostgresRepo) AttachOffer(ctx context.Context, offer model.TradeOffer) (model.TradeListing, error) {
	var updated model.TradeListing
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		listing, err := lockListing(ctx, tx, offer.ListingID)
		if err != nil {
			return fmt.Errorf("attach offer: %w", err)
		}
		if listing.Status != model.StatusOpen {
			return fmt.Errorf("attach offer to listing %s in status %q: %w", listing.ListingID, listing.Status, tradeerrors.ErrStatusConflict)
		}
		if listing.SellerID == offer.OffererID {
			return fmt.Errorf("attach offer to listing %s: %w", listing.ListingID, tradeerrors.ErrSelfTrade)
		}

		item, err := lockItem(ctx, tx, offer.ItemID)
		if err != nil {
			return fmt.Errorf("attach offer: %w", err)
		}
		if item.OwnerID != offer.OffererID {
			return fmt.Errorf("attach offer with item %s not owned by %s: %w", item.ItemID, offer.OffererID, tradeerrors.ErrInvalidItemState)
		}
		if err := checkTradable(ctx, tx, item); err != nil {
			return fmt.Errorf("attach offer: %w", err)
		}

		_, err = tx.ExecContext(ctx, `
			INSERT INTO trade_offers (id, listing_id, offerer_id, item_id, created_at)
			VALUES ($1, $2, $3, $4, $5)`,
			offer.OfferID, offer.ListingID, offer.OffererID, offer.ItemID, offer.CreatedAt)
		if isUniqueViolation(err) {
			return fmt.Errorf("attach offer with item %s: %w", offer.ItemID, tradeerrors.ErrInvalidItemState)
		}
		if err != nil {
			return fmt.Errorf("insert offer %s: %w", offer.OfferID, err)
		}

		updated, err = scanListing(tx.QueryRowContext(ctx, `
			UPDATE trade_listings SET status = 'offered', updated_at = $2
			WHERE id = $1 AND status = 'open'
			RETURNING `+listingColumns,
			offer.ListingID, r.now()))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("attach offer to listing %s: %w", offer.ListingID, tradeerrors.ErrStatusConflict)
		}
		if err != nil {
			return fmt.Errorf("mark listing %s offered: %w", offer.ListingID, err)
		}
		return nil
	})
	if err != nil {
		return model.TradeListing{}, err
	}
	return updated, nil
}

// TransitionListing performs a compare-and-set on listing status
func (r *PostgresRepo) TransitionListing(ctx context.Context, listingID string, from []model.ListingStatus, next model.ListingStatus) (model.TradeListing, *model.TradeOffer, error) {
	var (
		updated   model.TradeListing
		discarded *model.TradeOffer
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		discarded = nil

		listing, err := lockListing(ctx, tx, listingID)
		if err != nil {
			return fmt.Errorf("transition listing: %w", err)
		}
		if !statusIn(listing.Status, from) {
			return fmt.Errorf("transition listing %s from %q to %q: %w", listingID, listing.Status, next, tradeerrors.ErrStatusConflict)
		}

		if next != model.StatusOffered {
			offer, err := scanOffer(tx.QueryRowContext(ctx,
				`DELETE FROM trade_offers WHERE listing_id = $1 RETURNING `+offerColumns, listingID))
			switch {
			case errors.Is(err, sql.ErrNoRows):
			case err != nil:
				return fmt.Errorf("discard offer on listing %s: %w", listingID, err)
			default:
				discarded = &offer
			}
		}

		updated, err = scanListing(tx.QueryRowContext(ctx, `
			UPDATE trade_listings SET status = $2, updated_at = $3
			WHERE id = $1 AND status = ANY($4)
			RETURNING `+listingColumns,
			listingID, string(next), r.now(), pq.Array(statusStrings(from))))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("transition listing %s: %w", listingID, tradeerrors.ErrStatusConflict)
		}
		if err != nil {
			return fmt.Errorf("transition listing %s: %w", listingID, err)
		}
		return nil
	})
	if err != nil {
		return model.TradeListing{}, nil, err
	}
	return updated, discarded, nil
}

// SwapOwnership exchanges item owners for an offered listing inside a single
// transaction. Both item rows are locked in id order before any write.
func (r *PostgresRepo) SwapOwnership(ctx context.Context, listingID string) (model.TradeListing, model.TradeOffer, error) {
	var (
		updated model.TradeListing
		offer   model.TradeOffer
	)
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		listing, err := lockListing(ctx, tx, listingID)
		if err != nil {
			return fmt.Errorf("swap: %w", err)
		}
		if listing.Status != model.StatusOffered {
			return fmt.Errorf("swap listing %s in status %q: %w", listingID, listing.Status, tradeerrors.ErrStatusConflict)
		}

		offer, err = scanOffer(tx.QueryRowContext(ctx,
			`SELECT `+offerColumns+` FROM trade_offers WHERE listing_id = $1`, listingID))
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("swap listing %s without offer: %w", listingID, tradeerrors.ErrSwapFailed)
		}
		if err != nil {
			return fmt.Errorf("swap listing %s: load offer: %w", listingID, err)
		}

		owners, err := lockOwners(ctx, tx, listing.ItemID, offer.ItemID)
		if err != nil {
			return fmt.Errorf("swap listing %s: %w", listingID, err)
		}
		if owners[listing.ItemID] != listing.SellerID || owners[offer.ItemID] != offer.OffererID {
			return fmt.Errorf("swap listing %s: item ownership changed: %w", listingID, tradeerrors.ErrSwapFailed)
		}

		if err := setOwner(ctx, tx, listing.ItemID, offer.OffererID); err != nil {
			return fmt.Errorf("swap listing %s: %w", listingID, err)
		}
		if err := setOwner(ctx, tx, offer.ItemID, listing.SellerID); err != nil {
			return fmt.Errorf("swap listing %s: %w", listingID, err)
		}

		updated, err = scanListing(tx.QueryRowContext(ctx, `
			UPDATE trade_listings
			SET status = 'accepted', updated_at = $2, accepted_offer_id = $3, buyer_id = $4, counter_item_id = $5
			WHERE id = $1 AND status = 'offered'
			RETURNING `+listingColumns,
			listingID, r.now(), offer.OfferID, offer.OffererID, offer.ItemID))
		if err != nil {
			return fmt.Errorf("swap listing %s: mark accepted: %v: %w", listingID, err, tradeerrors.ErrSwapFailed)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM trade_offers WHERE id = $1`, offer.OfferID); err != nil {
			return fmt.Errorf("swap listing %s: remove offer: %v: %w", listingID, err, tradeerrors.ErrSwapFailed)
		}
		return nil
	})
	if err != nil {
		return model.TradeListing{}, model.TradeOffer{}, err
	}
	return updated, offer, nil
}

// SetItemEquipped equips or unequips an owned item
func (r *PostgresRepo) SetItemEquipped(ctx context.Context, itemID, ownerID string, equipped bool) (model.InventoryItem, error) {
	var updated model.InventoryItem
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		item, err := lockItem(ctx, tx, itemID)
		if err != nil {
			return fmt.Errorf("set equipped: %w", err)
		}
		if item.OwnerID != ownerID {
			return fmt.Errorf("set equipped on item %s: %w", itemID, tradeerrors.ErrNotOwner)
		}
		if equipped {
			committed, err := isCommitted(ctx, tx, itemID)
			if err != nil {
				return fmt.Errorf("set equipped on item %s: %w", itemID, err)
			}
			if committed {
				return fmt.Errorf("equip item %s committed to a trade: %w", itemID, tradeerrors.ErrInvalidItemState)
			}
		}

		updated, err = scanItem(tx.QueryRowContext(ctx,
			`UPDATE inventory_items SET equipped = $2 WHERE id = $1 RETURNING `+itemColumns, itemID, equipped))
		if err != nil {
			return fmt.Errorf("set equipped on item %s: %w", itemID, err)
		}
		return nil
	})
	if err != nil {
		return model.InventoryItem{}, err
	}
	return updated, nil
}

// SellItem removes an item and credits its value to the owner
func (r *PostgresRepo) SellItem(ctx context.Context, itemID, ownerID string) (model.User, error) {
	var user model.User
	err := r.withTx(ctx, func(tx *sql.Tx) error {
		item, err := lockItem(ctx, tx, itemID)
		if err != nil {
			return fmt.Errorf("sell item: %w", err)
		}
		if item.OwnerID != ownerID {
			return fmt.Errorf("sell item %s: %w", itemID, tradeerrors.ErrNotOwner)
		}
		if err := checkTradable(ctx, tx, item); err != nil {
			return fmt.Errorf("sell item: %w", err)
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM inventory_items WHERE id = $1`, itemID); err != nil {
			return fmt.Errorf("sell item %s: delete: %w", itemID, err)
		}
		err = tx.QueryRowContext(ctx, `
			UPDATE users SET coins = coins + $2 WHERE id = $1
			RETURNING id, username, coins, gems`,
			ownerID, SaleProceeds(item),
		).Scan(&user.UserID, &user.Username, &user.Coins, &user.Gems)
		if errors.Is(err, sql.ErrNoRows) {
			return fmt.Errorf("sell item %s: %w", itemID, tradeerrors.ErrUserNotFound)
		}
		if err != nil {
			return fmt.Errorf("sell item %s: credit owner: %w", itemID, err)
		}
		return nil
	})
	if err != nil {
		return model.User{}, err
	}
	return user, nil
}

// SaveNotification inserts a notification
func (r *PostgresRepo) SaveNotification(ctx context.Context, n model.Notification) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO notifications (id, user_id, type, listing_id, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.NotificationID, n.UserID, string(n.Type), n.ListingID, n.Message, n.Read, n.CreatedAt)
	if err != nil {
		return fmt.Errorf("save notification %s: %w", n.NotificationID, err)
	}
	return nil
}

// ListNotifications returns a user's notifications, newest first
func (r *PostgresRepo) ListNotifications(ctx context.Context, userID string, unreadOnly bool) ([]model.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE user_id = $1`
	if unreadOnly {
		query += ` AND NOT read`
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list notifications for user %s: %w", userID, err)
	}
	defer rows.Close()

	out := make([]model.Notification, 0)
	for rows.Next() {
		var n model.Notification
		var kind string
		if err := rows.Scan(&n.NotificationID, &n.UserID, &kind, &n.ListingID, &n.Message, &n.Read, &n.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		n.Type = model.NotificationType(kind)
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkNotificationsRead marks every unread notification of a user as read
func (r *PostgresRepo) MarkNotificationsRead(ctx context.Context, userID string) (int, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND NOT read`, userID)
	if err != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", userID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("mark notifications read for user %s: %w", userID, err)
	}
	return int(n), nil
}

// withTx runs fn in a transaction, retrying on serialization failures and deadlocks
func (r *PostgresRepo) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	var err error
	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		err = r.runTx(ctx, fn)
		if err == nil || !isRetryable(err) {
			return err
		}
		utils.Warn("postgres: retrying aborted transaction", map[string]any{
			"attempt": attempt,
			"error":   err.Error(),
		})
	}
	return err
}

func (r *PostgresRepo) runTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (r *PostgresRepo) queryListings(ctx context.Context, query string, args ...any) ([]model.TradeListing, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query listings: %w", err)
	}
	defer rows.Close()

	listings := make([]model.TradeListing, 0)
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, fmt.Errorf("scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

func lockListing(ctx context.Context, tx *sql.Tx, listingID string) (model.TradeListing, error) {
	listing, err := scanListing(tx.QueryRowContext(ctx,
		`SELECT `+listingColumns+` FROM trade_listings WHERE id = $1 FOR UPDATE`, listingID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.TradeListing{}, fmt.Errorf("listing %s: %w", listingID, tradeerrors.ErrListingNotFound)
	}
	if err != nil {
		return model.TradeListing{}, fmt.Errorf("lock listing %s: %w", listingID, err)
	}
	return listing, nil
}

func lockItem(ctx context.Context, tx *sql.Tx, itemID string) (model.InventoryItem, error) {
	item, err := scanItem(tx.QueryRowContext(ctx,
		`SELECT `+itemColumns+` FROM inventory_items WHERE id = $1 FOR UPDATE`, itemID))
	if errors.Is(err, sql.ErrNoRows) {
		return model.InventoryItem{}, fmt.Errorf("item %s: %w", itemID, tradeerrors.ErrItemNotFound)
	}
	if err != nil {
		return model.InventoryItem{}, fmt.Errorf("lock item %s: %w", itemID, err)
	}
	return item, nil
}

// lockOwners locks both swap items in id order and returns their unequipped owners
func lockOwners(ctx context.Context, tx *sql.Tx, itemIDs ...string) (map[string]string, error) {
	rows, err := tx.QueryContext(ctx,
		`SELECT id, owner_id, equipped FROM inventory_items WHERE id = ANY($1) ORDER BY id FOR UPDATE`,
		pq.Array(itemIDs))
	if err != nil {
		return nil, fmt.Errorf("lock items: %w", err)
	}
	defer rows.Close()

	owners := make(map[string]string, len(itemIDs))
	for rows.Next() {
		var id, owner string
		var equipped bool
		if err := rows.Scan(&id, &owner, &equipped); err != nil {
			return nil, fmt.Errorf("scan locked item: %w", err)
		}
		if equipped {
			return nil, fmt.Errorf("item %s is equipped: %w", id, tradeerrors.ErrSwapFailed)
		}
		owners[id] = owner
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("lock items: %w", err)
	}
	if len(owners) != len(itemIDs) {
		return nil, fmt.Errorf("locked %d of %d items: %w", len(owners), len(itemIDs), tradeerrors.ErrSwapFailed)
	}
	return owners, nil
}

func setOwner(ctx context.Context, tx *sql.Tx, itemID, ownerID string) error {
	res, err := tx.ExecContext(ctx, `UPDATE inventory_items SET owner_id = $2 WHERE id = $1`, itemID, ownerID)
	if err != nil {
		return fmt.Errorf("reassign item %s: %v: %w", itemID, err, tradeerrors.ErrSwapFailed)
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		return fmt.Errorf("reassign item %s: %d rows: %w", itemID, n, tradeerrors.ErrSwapFailed)
	}
	return nil
}

func checkTradable(ctx context.Context, q queryer, item model.InventoryItem) error {
	if item.Equipped {
		return fmt.Errorf("item %s is equipped: %w", item.ItemID, tradeerrors.ErrInvalidItemState)
	}
	committed, err := isCommitted(ctx, q, item.ItemID)
	if err != nil {
		return fmt.Errorf("check item %s: %w", item.ItemID, err)
	}
	if committed {
		return fmt.Errorf("item %s is committed to a trade: %w", item.ItemID, tradeerrors.ErrInvalidItemState)
	}
	return nil
}

func isCommitted(ctx context.Context, q queryer, itemID string) (bool, error) {
	var committed bool
	if err := q.QueryRowContext(ctx, committedQuery, itemID).Scan(&committed); err != nil {
		return false, fmt.Errorf("check commitment of item %s: %w", itemID, err)
	}
	return committed, nil
}

func scanListing(row rowScanner) (model.TradeListing, error) {
	var l model.TradeListing
	var status string
	err := row.Scan(&l.ListingID, &l.SellerID, &l.ItemID, &status, &l.CreatedAt, &l.UpdatedAt,
		&l.AcceptedOfferID, &l.BuyerID, &l.CounterItemID)
	l.Status = model.ListingStatus(status)
	return l, err
}

func scanOffer(row rowScanner) (model.TradeOffer, error) {
	var o model.TradeOffer
	err := row.Scan(&o.OfferID, &o.ListingID, &o.OffererID, &o.ItemID, &o.CreatedAt)
	return o, err
}

func scanItem(row rowScanner) (model.InventoryItem, error) {
	var i model.InventoryItem
	err := row.Scan(&i.ItemID, &i.OwnerID, &i.DefinitionID, &i.Name, &i.Equipped, &i.Value)
	return i, err
}

func statusStrings(statuses []model.ListingStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

func isRetryable(err error) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	switch pqErr.Code.Name() {
	case "serialization_failure", "deadlock_detected":
		return true
	}
	return false
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation"
}
