package server

import (
	"net/http"

	"skinswap/internal/auth"
	handler "skinswap/services/trading/handler"
	"skinswap/utils"

	"github.com/gin-gonic/gin"
)

// Dependencies are the services the router exposes over HTTP
type Dependencies struct {
	Trading     handler.TradingServiceInterface
	Inventory   handler.InventoryServiceInterface
	Feed        handler.NotificationFeedInterface
	JWT         *auth.JWTService
	Idempotency *IdempotencyStore
}

// SetupRouter configures all Gin routes for the application
func SetupRouter(deps Dependencies) *gin.Engine {
	router := gin.New() // New router without default middleware for full control over middleware and logging

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	router.GET("/healthz", func(c *gin.Context) {
		utils.JSONResponse(c, http.StatusOK, gin.H{"ok": true}, "healthy")
	})

	tradingHandler := handler.NewTradingHandler(deps.Trading)
	accountHandler := handler.NewAccountHandler(deps.Inventory, deps.Feed)

	api := router.Group("")
	api.Use(AuthMiddleware(deps.JWT))
	if deps.Idempotency != nil {
		api.Use(deps.Idempotency.Middleware())
	}

	listings := api.Group("/listings")
	{
		listings.POST("", tradingHandler.CreateListingHandler)
		listings.GET("", tradingHandler.ListListingsHandler)
		listings.GET("/:listing_id", tradingHandler.GetListingHandler)
		listings.POST("/:listing_id/offers", tradingHandler.MakeOfferHandler)
		listings.POST("/:listing_id/accept", tradingHandler.AcceptOfferHandler)
		listings.POST("/:listing_id/decline", tradingHandler.DeclineOfferHandler)
		listings.POST("/:listing_id/cancel", tradingHandler.CancelListingHandler)
	}

	me := api.Group("/me")
	{
		me.GET("", accountHandler.GetProfileHandler)
		me.GET("/trades", tradingHandler.MyTradesHandler)
		me.GET("/inventory", accountHandler.GetInventoryHandler)
		me.POST("/inventory/:item_id/equip", accountHandler.EquipItemHandler)
		me.POST("/inventory/:item_id/unequip", accountHandler.UnequipItemHandler)
		me.POST("/inventory/:item_id/sell", accountHandler.SellItemHandler)
		me.GET("/notifications", accountHandler.ListNotificationsHandler)
		me.POST("/notifications/read", accountHandler.MarkNotificationsReadHandler)
	}

	return router
}
