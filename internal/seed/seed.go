package seed

import (
	"context"

	"carauction/internal/models"
	"carauction/internal/services"
	"carauction/pkg/logger"
)

// Seed loads a handful of demo vehicles and opens an auction for each. It is
// idempotent only in the sense that a second run fails fast on the duplicate
// IDs, so it is intended for a fresh in-memory store at startup.
func Seed(ctx context.Context, auctionService services.AuctionService, log *logger.Logger) error {
	requests := []*models.CreateVehicleRequest{
		{
			ID: "001", VIN: "S001", Type: "Sedan", Manufacturer: "Toyota", Model: "Camry",
			Year: 2023, StartingBidAmount: 25000, StartingBidCurrency: "USD",
			AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfDoors: 4},
		},
		{
			ID: "002", VIN: "SUV001", Type: "SUV", Manufacturer: "Honda", Model: "Pilot",
			Year: 2022, StartingBidAmount: 35000, StartingBidCurrency: "USD",
			AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfSeats: 8},
		},
		{
			ID: "003", VIN: "T001", Type: "Truck", Manufacturer: "Ford", Model: "F-150",
			Year: 2021, StartingBidAmount: 45000, StartingBidCurrency: "USD",
			AdditionalAttributes: map[string]interface{}{models.AttributeLoadCapacity: 1000.5},
		},
		{
			ID: "004", VIN: "H001", Type: "Hatchback", Manufacturer: "Volkswagen", Model: "Golf",
			Year: 2023, StartingBidAmount: 22000, StartingBidCurrency: "USD",
			AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfDoors: 5},
		},
	}

	for _, request := range requests {
		vehicle, err := auctionService.AddVehicle(ctx, request)
		if err != nil {
			return err
		}
		if _, err := auctionService.StartAuction(ctx, &models.StartAuctionRequest{VehicleID: vehicle.ID}); err != nil {
			return err
		}
	}

	log.WithField("vehicles", len(requests)).Info("seeded initial data")
	return nil
}
