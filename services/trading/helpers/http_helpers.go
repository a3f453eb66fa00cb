package helpers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"skinswap/internal/tradeerrors"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

// ContextUserIDKey is the gin context key holding the authenticated user id
const ContextUserIDKey = "user_id"

// SetCurrentUser stores the authenticated user id on the request context
func SetCurrentUser(c *gin.Context, userID string) {
	c.Set(ContextUserIDKey, userID)
}

// CurrentUserID returns the authenticated user id, or "" when unauthenticated
func CurrentUserID(c *gin.Context) string {
	return c.GetString(ContextUserIDKey)
}

// HandleBindError sends a standardized JSON error for binding failures
func HandleBindError(c *gin.Context, handlerName string, err error) {
	wrappedErr := fmt.Errorf("invalid request payload: %w", err)
	utils.JSONError(c, http.StatusBadRequest, wrappedErr, "invalid request payload")
	utils.Warn(handlerName+": binding error", map[string]any{"error": err.Error()})
}

// HandleServiceError maps a service error to a JSON error response and logs it
func HandleServiceError(c *gin.Context, handlerName string, err error, ctx map[string]any) {
	status, message := MapErrorToHTTP(err)
	utils.JSONError(c, status, fmt.Errorf("%s: %w", message, err), message)

	fields := map[string]any{"handler": handlerName, "error": err.Error()}
	for k, v := range ctx {
		fields[k] = v
	}
	if status >= http.StatusInternalServerError {
		utils.Error(handlerName+": request failed", fields)
		return
	}
	utils.Warn(handlerName+": request rejected", fields)
}

// MapErrorToHTTP maps domain/service errors to HTTP status code and message
func MapErrorToHTTP(err error) (int, string) {
	switch {
	case errors.Is(err, tradeerrors.ErrListingNotFound):
		return http.StatusNotFound, "listing not found"
	case errors.Is(err, tradeerrors.ErrItemNotFound):
		return http.StatusNotFound, "item not found"
	case errors.Is(err, tradeerrors.ErrUserNotFound):
		return http.StatusNotFound, "user not found"
	case errors.Is(err, tradeerrors.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, tradeerrors.ErrNotOwner):
		return http.StatusForbidden, "not the owner"
	case errors.Is(err, tradeerrors.ErrSelfTrade):
		return http.StatusBadRequest, "cannot offer on your own listing"
	case errors.Is(err, tradeerrors.ErrInvalidRequest):
		return http.StatusBadRequest, "invalid request"
	case errors.Is(err, tradeerrors.ErrInvalidItemState):
		return http.StatusConflict, "item is not available for trade"
	case errors.Is(err, tradeerrors.ErrListingNotOpen):
		return http.StatusConflict, "listing is not open"
	case errors.Is(err, tradeerrors.ErrListingNotOffered):
		return http.StatusConflict, "listing has no pending offer"
	case errors.Is(err, tradeerrors.ErrAlreadyTerminal):
		return http.StatusConflict, "listing is already closed"
	case errors.Is(err, tradeerrors.ErrSwapFailed):
		return http.StatusInternalServerError, "trade swap failed"
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "request timed out"
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// LogSuccess is a small helper to standardize logging of successful operations
func LogSuccess(handlerName, message string, ctx map[string]any) {
	utils.Info(handlerName+": "+message, ctx)
}
