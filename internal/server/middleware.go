package server

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"skinswap/internal/auth"
	"skinswap/services/trading/helpers"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

var (
	errMissingAuthHeader = errors.New("missing authorization header")
	errBadAuthHeader     = errors.New("invalid authorization header format")
)

// RequestLoggerMiddleware logs incoming requests with timing
func RequestLoggerMiddleware(c *gin.Context) {
	start := time.Now()

	c.Next() // process request

	fields := map[string]any{
		"method":  c.Request.Method,
		"path":    c.Request.URL.Path,
		"status":  c.Writer.Status(),
		"latency": time.Since(start).String(),
	}
	if userID := helpers.CurrentUserID(c); userID != "" {
		fields["user_id"] = userID
	}
	utils.Info("HTTP Request", fields)
}

// AuthMiddleware validates the bearer token and stores its subject as the acting user
func AuthMiddleware(jwtService *auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			unauthorized(c, errMissingAuthHeader)
			return
		}

		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || tokenString == "" {
			unauthorized(c, errBadAuthHeader)
			return
		}

		userID, err := jwtService.ExtractUserID(tokenString)
		if err != nil {
			unauthorized(c, err)
			return
		}

		helpers.SetCurrentUser(c, userID)
		c.Next()
	}
}

func unauthorized(c *gin.Context, err error) {
	utils.Warn("Rejected request", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	utils.AbortJSONError(c, http.StatusUnauthorized, err, "unauthorized")
}
