package tradeerrors

import (
	"errors"
	"fmt"
)

// Lookup errors. Every specific not-found error also matches ErrNotFound.
var (
	ErrNotFound        = errors.New("not found")
	ErrListingNotFound = fmt.Errorf("listing %w", ErrNotFound)
	ErrItemNotFound    = fmt.Errorf("item %w", ErrNotFound)
	ErrUserNotFound    = fmt.Errorf("user %w", ErrNotFound)
	ErrOfferNotFound   = fmt.Errorf("offer %w", ErrNotFound)
)

// Repository-level errors
var (
	// ErrStatusConflict is returned when a compare-and-set on listing status
	// finds a state other than the expected one.
	ErrStatusConflict = errors.New("listing status conflict")
)

// business logic errors
var (
	ErrInvalidRequest    = errors.New("invalid request")
	ErrNotOwner          = errors.New("caller does not own the resource")
	ErrInvalidItemState  = errors.New("item is equipped, committed to a trade or not owned by the caller")
	ErrListingNotOpen    = errors.New("listing is not open")
	ErrListingNotOffered = errors.New("listing has no pending offer")
	ErrSelfTrade         = errors.New("cannot make an offer on your own listing")
	ErrSwapFailed        = errors.New("item swap could not be completed")
	ErrAlreadyTerminal   = errors.New("listing is already accepted or cancelled")
)
