package handlers

import (
	"carauction/internal/models"
	"carauction/internal/services"
	"carauction/internal/utils"
	"carauction/internal/validators"

	"github.com/gin-gonic/gin"
)

type AuctionHandler struct {
	auctionService services.AuctionService
}

func NewAuctionHandler(auctionService services.AuctionService) *AuctionHandler {
	return &AuctionHandler{
		auctionService: auctionService,
	}
}

// GetAllAuctions lists active auctions, most recently started first
func (h *AuctionHandler) GetAllAuctions(c *gin.Context) {
	auctions, err := h.auctionService.GetAllActiveAuctions(c.Request.Context())
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Active auctions retrieved successfully", auctions, &utils.Meta{
		Count: len(auctions),
	})
}

// GetAuction retrieves the active auction for a vehicle
func (h *AuctionHandler) GetAuction(c *gin.Context) {
	auction, err := h.auctionService.GetActiveAuction(c.Request.Context(), c.Param("vehicleId"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Auction retrieved successfully", auction)
}

// GetAuctionHistory lists all auctions ever run for a vehicle
func (h *AuctionHandler) GetAuctionHistory(c *gin.Context) {
	history, err := h.auctionService.GetAuctionHistory(c.Request.Context(), c.Param("vehicleId"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Auction history retrieved successfully", history, &utils.Meta{
		Count: len(history),
	})
}

// StartAuction opens an auction for a vehicle
func (h *AuctionHandler) StartAuction(c *gin.Context) {
	var request models.StartAuctionRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	auction, err := h.auctionService.StartAuction(c.Request.Context(), &request)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Auction started successfully", auction)
}

// PlaceBid places a bid on a vehicle's active auction
func (h *AuctionHandler) PlaceBid(c *gin.Context) {
	var request models.PlaceBidRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if verr := validators.ValidateCurrency(request.Currency); verr != nil {
		utils.ErrorResponseWithDetails(c, 400, "VALIDATION_FAILED", "Invalid request",
			map[string]string{verr.Field: verr.Message})
		return
	}

	auction, err := h.auctionService.PlaceBid(c.Request.Context(), &request)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Bid placed successfully", auction)
}

// CloseAuction closes the active auction and returns its summary
func (h *AuctionHandler) CloseAuction(c *gin.Context) {
	request := models.CloseAuctionRequest{VehicleID: c.Param("vehicleId")}

	summary, err := h.auctionService.CloseAuction(c.Request.Context(), &request)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Auction closed successfully", summary)
}
