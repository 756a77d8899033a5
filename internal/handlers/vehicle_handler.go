package handlers

import (
	"carauction/internal/models"
	"carauction/internal/services"
	"carauction/internal/utils"
	"carauction/internal/validators"

	"github.com/gin-gonic/gin"
)

type VehicleHandler struct {
	auctionService services.AuctionService
}

func NewVehicleHandler(auctionService services.AuctionService) *VehicleHandler {
	return &VehicleHandler{
		auctionService: auctionService,
	}
}

// CreateVehicle registers a new vehicle in the inventory
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var request models.CreateVehicleRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if verr := validators.ValidateCurrency(request.StartingBidCurrency); verr != nil {
		utils.ErrorResponseWithDetails(c, 400, "VALIDATION_FAILED", "Invalid request",
			map[string]string{verr.Field: verr.Message})
		return
	}

	vehicle, err := h.auctionService.AddVehicle(c.Request.Context(), &request)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

// SearchVehicles filters the inventory by the optional query criteria
func (h *VehicleHandler) SearchVehicles(c *gin.Context) {
	var request models.VehicleSearchRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid query: "+err.Error())
		return
	}
	request.Take = utils.ClampTake(request.Take)

	response, err := h.auctionService.SearchVehicles(c.Request.Context(), &request)
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", response, &utils.Meta{
		Pagination: utils.NewPaginationMeta(request.Skip, request.Take, response.TotalCount),
		Count:      len(response.Vehicles),
	})
}

// GetVehicle retrieves one vehicle by ID
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicle, err := h.auctionService.GetVehicleByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// GetVehicleTypes lists the supported vehicle types
func (h *VehicleHandler) GetVehicleTypes(c *gin.Context) {
	types := h.auctionService.GetSupportedVehicleTypes()
	utils.SuccessResponse(c, "Vehicle types retrieved successfully", types)
}

// GetTypeParameters lists the required attribute for a vehicle type
func (h *VehicleHandler) GetTypeParameters(c *gin.Context) {
	parameters, err := h.auctionService.GetRequiredParametersForType(c.Param("type"))
	if err != nil {
		utils.DomainErrorResponse(c, err)
		return
	}

	utils.SuccessResponse(c, "Required parameters retrieved successfully", parameters)
}
