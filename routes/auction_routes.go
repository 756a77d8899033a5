package routes

import (
	"carauction/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupAuctionRoutes sets up routes for auction lifecycle functionality
func SetupAuctionRoutes(r *gin.RouterGroup, auctionHandler *handlers.AuctionHandler) {
	auctions := r.Group("/auctions")
	{
		auctions.GET("", auctionHandler.GetAllAuctions)
		auctions.POST("", auctionHandler.StartAuction)
		auctions.POST("/bid", auctionHandler.PlaceBid)
		auctions.GET("/:vehicleId", auctionHandler.GetAuction)
		auctions.GET("/:vehicleId/history", auctionHandler.GetAuctionHistory)
		auctions.POST("/:vehicleId/close", auctionHandler.CloseAuction)
	}
}
