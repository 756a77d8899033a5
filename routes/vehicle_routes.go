package routes

import (
	"carauction/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for vehicle inventory functionality
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("", vehicleHandler.CreateVehicle)
		vehicles.GET("", vehicleHandler.SearchVehicles)
		vehicles.GET("/types", vehicleHandler.GetVehicleTypes)
		vehicles.GET("/types/:type/parameters", vehicleHandler.GetTypeParameters)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}
}
