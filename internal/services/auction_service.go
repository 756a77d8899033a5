package services

import (
	"context"
	"strings"
	"time"

	"carauction/internal/models"
	"carauction/internal/repositories/interfaces"
	"carauction/internal/utils"
	"carauction/pkg/logger"
)

// AuctionService is the orchestration layer over the vehicle and auction
// stores. It owns the check-then-mutate sequencing of the business
// operations; the repositories make the individual checks atomic.
type AuctionService interface {
	// Vehicle management
	AddVehicle(ctx context.Context, request *models.CreateVehicleRequest) (*models.VehicleResponse, error)
	SearchVehicles(ctx context.Context, request *models.VehicleSearchRequest) (*models.VehicleSearchResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*models.VehicleResponse, error)
	GetSupportedVehicleTypes() []string
	GetRequiredParametersForType(vehicleType string) (map[string]string, error)

	// Auction lifecycle
	StartAuction(ctx context.Context, request *models.StartAuctionRequest) (*models.AuctionResponse, error)
	PlaceBid(ctx context.Context, request *models.PlaceBidRequest) (*models.AuctionResponse, error)
	CloseAuction(ctx context.Context, request *models.CloseAuctionRequest) (*models.AuctionSummaryResponse, error)
	GetActiveAuction(ctx context.Context, vehicleID string) (*models.AuctionResponse, error)
	GetAllActiveAuctions(ctx context.Context) ([]*models.AuctionResponse, error)
	GetAuctionHistory(ctx context.Context, vehicleID string) ([]*models.AuctionResponse, error)

	// Diagnostics
	GetStats(ctx context.Context) (*models.SystemStats, error)
}

type auctionService struct {
	vehicleRepo interfaces.VehicleRepository
	auctionRepo interfaces.AuctionRepository
	factory     VehicleFactory
	logger      *logger.Logger
}

func NewAuctionService(
	vehicleRepo interfaces.VehicleRepository,
	auctionRepo interfaces.AuctionRepository,
	factory VehicleFactory,
	log *logger.Logger,
) AuctionService {
	return &auctionService{
		vehicleRepo: vehicleRepo,
		auctionRepo: auctionRepo,
		factory:     factory,
		logger:      log,
	}
}

// AddVehicle rejects a taken ID before constructing anything; the repository
// Add re-checks atomically, so a concurrent duplicate still loses.
func (s *auctionService) AddVehicle(ctx context.Context, request *models.CreateVehicleRequest) (*models.VehicleResponse, error) {
	vehicleID, err := models.NewVehicleID(request.ID)
	if err != nil {
		return nil, err
	}

	exists, err := s.vehicleRepo.Exists(ctx, vehicleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewVehicleAlreadyExistsError(vehicleID.Value())
	}

	vehicle, err := s.factory.CreateVehicle(request)
	if err != nil {
		return nil, err
	}

	if err := s.vehicleRepo.Add(ctx, vehicle); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id":   vehicle.GetID().Value(),
		"vehicle_type": vehicle.GetVehicleType(),
	}).Info("vehicle added")

	return models.NewVehicleResponse(vehicle), nil
}

func (s *auctionService) SearchVehicles(ctx context.Context, request *models.VehicleSearchRequest) (*models.VehicleSearchResponse, error) {
	if request.Skip < 0 {
		return nil, models.NewInvalidPageRequestError("Skip cannot be negative")
	}
	if request.Take <= 0 {
		return nil, models.NewInvalidPageRequestError("Take must be positive")
	}

	criteria, err := buildSearchCriteria(request)
	if err != nil {
		return nil, err
	}

	vehicles, err := s.vehicleRepo.Search(ctx, criteria)
	if err != nil {
		return nil, err
	}

	totalCount := len(vehicles)
	paged := pageVehicles(vehicles, request.Skip, request.Take)

	responses := make([]*models.VehicleResponse, 0, len(paged))
	for _, vehicle := range paged {
		responses = append(responses, models.NewVehicleResponse(vehicle))
	}

	return &models.VehicleSearchResponse{
		Vehicles:          responses,
		TotalCount:        totalCount,
		SearchDescription: criteria.GetDescription(),
	}, nil
}

func (s *auctionService) GetVehicleByID(ctx context.Context, vehicleID string) (*models.VehicleResponse, error) {
	id, err := models.NewVehicleID(vehicleID)
	if err != nil {
		return nil, err
	}
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewVehicleResponse(vehicle), nil
}

func (s *auctionService) GetSupportedVehicleTypes() []string {
	return s.factory.GetSupportedVehicleTypes()
}

func (s *auctionService) GetRequiredParametersForType(vehicleType string) (map[string]string, error) {
	return s.factory.GetRequiredParametersForType(vehicleType)
}

// StartAuction checks vehicle existence, then relies on the auction store's
// atomic Add for the one-active-auction guarantee.
func (s *auctionService) StartAuction(ctx context.Context, request *models.StartAuctionRequest) (*models.AuctionResponse, error) {
	vehicleID, err := models.NewVehicleID(request.VehicleID)
	if err != nil {
		return nil, err
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	auction := models.NewAuction(vehicleID, vehicle.GetStartingBid())
	if err := s.auctionRepo.Add(ctx, auction); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id":   vehicleID.Value(),
		"starting_bid": vehicle.GetStartingBid().String(),
	}).Info("auction started")

	return models.NewAuctionResponse(auction), nil
}

func (s *auctionService) PlaceBid(ctx context.Context, request *models.PlaceBidRequest) (*models.AuctionResponse, error) {
	vehicleID, err := models.NewVehicleID(request.VehicleID)
	if err != nil {
		return nil, err
	}

	auction, err := s.auctionRepo.GetActiveAuction(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	currency := request.Currency
	if strings.TrimSpace(currency) == "" {
		currency = utils.DefaultCurrency
	}
	amount, err := models.NewMoneyFromFloat(request.Amount, currency)
	if err != nil {
		return nil, err
	}

	if err := auction.PlaceBid(request.Bidder, amount); err != nil {
		return nil, err
	}

	if err := s.auctionRepo.Update(ctx, auction); err != nil {
		return nil, err
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id": vehicleID.Value(),
		"bidder":     strings.TrimSpace(request.Bidder),
		"amount":     amount.String(),
	}).Info("bid placed")

	return models.NewAuctionResponse(auction), nil
}

func (s *auctionService) CloseAuction(ctx context.Context, request *models.CloseAuctionRequest) (*models.AuctionSummaryResponse, error) {
	vehicleID, err := models.NewVehicleID(request.VehicleID)
	if err != nil {
		return nil, err
	}

	auction, err := s.auctionRepo.GetActiveAuction(ctx, vehicleID)
	if err != nil {
		return nil, err
	}

	if err := auction.Close(); err != nil {
		return nil, err
	}

	if err := s.auctionRepo.Update(ctx, auction); err != nil {
		return nil, err
	}

	summary := auction.GetSummary()
	s.logger.WithFields(map[string]interface{}{
		"vehicle_id":  vehicleID.Value(),
		"total_bids":  summary.TotalBids,
		"highest_bid": summary.CurrentHighestBid.String(),
	}).Info("auction closed")

	return models.NewAuctionSummaryResponse(summary), nil
}

func (s *auctionService) GetActiveAuction(ctx context.Context, vehicleID string) (*models.AuctionResponse, error) {
	id, err := models.NewVehicleID(vehicleID)
	if err != nil {
		return nil, err
	}
	auction, err := s.auctionRepo.GetActiveAuction(ctx, id)
	if err != nil {
		return nil, err
	}
	return models.NewAuctionResponse(auction), nil
}

func (s *auctionService) GetAllActiveAuctions(ctx context.Context) ([]*models.AuctionResponse, error) {
	auctions, err := s.auctionRepo.GetAllActiveAuctions(ctx)
	if err != nil {
		return nil, err
	}
	responses := make([]*models.AuctionResponse, 0, len(auctions))
	for _, auction := range auctions {
		responses = append(responses, models.NewAuctionResponse(auction))
	}
	return responses, nil
}

func (s *auctionService) GetAuctionHistory(ctx context.Context, vehicleID string) ([]*models.AuctionResponse, error) {
	id, err := models.NewVehicleID(vehicleID)
	if err != nil {
		return nil, err
	}
	auctions, err := s.auctionRepo.GetAuctionHistory(ctx, id)
	if err != nil {
		return nil, err
	}
	responses := make([]*models.AuctionResponse, 0, len(auctions))
	for _, auction := range auctions {
		responses = append(responses, models.NewAuctionResponse(auction))
	}
	return responses, nil
}

func (s *auctionService) GetStats(ctx context.Context) (*models.SystemStats, error) {
	vehicleCount, err := s.vehicleRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	activeCount, err := s.auctionRepo.CountActive(ctx)
	if err != nil {
		return nil, err
	}
	byType, err := s.vehicleRepo.CountByType(ctx)
	if err != nil {
		return nil, err
	}
	return &models.SystemStats{
		VehicleCount:       vehicleCount,
		ActiveAuctionCount: activeCount,
		VehiclesByType:     byType,
	}, nil
}

// buildSearchCriteria combines only the criteria present on the request. An
// exact year wins over a min/max range when both are supplied; no filters at
// all yields the match-all criterion.
func buildSearchCriteria(request *models.VehicleSearchRequest) (models.SearchCriteria, error) {
	var criteria []models.SearchCriteria

	if strings.TrimSpace(request.Type) != "" {
		criteria = append(criteria, models.NewTypeCriteria(request.Type))
	}
	if strings.TrimSpace(request.Manufacturer) != "" {
		criteria = append(criteria, models.NewManufacturerCriteria(request.Manufacturer))
	}
	if strings.TrimSpace(request.Model) != "" {
		criteria = append(criteria, models.NewModelCriteria(request.Model))
	}
	if request.Year != nil {
		criteria = append(criteria, models.NewYearCriteria(*request.Year))
	} else if request.MinYear != nil || request.MaxYear != nil {
		minYear := models.MinYear
		maxYear := time.Now().Year() + 1
		if request.MinYear != nil {
			minYear = *request.MinYear
		}
		if request.MaxYear != nil {
			maxYear = *request.MaxYear
		}
		rangeCriteria, err := models.NewYearRangeCriteria(minYear, maxYear)
		if err != nil {
			return nil, err
		}
		criteria = append(criteria, rangeCriteria)
	}

	switch len(criteria) {
	case 0:
		return models.NewAllVehiclesCriteria(), nil
	case 1:
		return criteria[0], nil
	default:
		return models.NewCompositeCriteria(criteria...)
	}
}

func pageVehicles(vehicles []models.Vehicle, skip, take int) []models.Vehicle {
	if skip >= len(vehicles) {
		return nil
	}
	end := skip + take
	if end > len(vehicles) {
		end = len(vehicles)
	}
	return vehicles[skip:end]
}
