package models

import "time"

// Request and response shapes exchanged with the presentation layer. The
// service converts these loosely-typed payloads into domain values up front
// and fails fast on anything it cannot coerce.

type CreateVehicleRequest struct {
	ID                   string                 `json:"id" binding:"required"`
	VIN                  string                 `json:"vin" binding:"required"`
	Type                 string                 `json:"type" binding:"required"`
	Manufacturer         string                 `json:"manufacturer" binding:"required"`
	Model                string                 `json:"model" binding:"required"`
	Year                 int                    `json:"year" binding:"required"`
	StartingBidAmount    float64                `json:"starting_bid_amount" binding:"required"`
	StartingBidCurrency  string                 `json:"starting_bid_currency"`
	AdditionalAttributes map[string]interface{} `json:"additional_attributes"`
}

type VehicleSearchRequest struct {
	Type         string `form:"type"`
	Manufacturer string `form:"manufacturer"`
	Model        string `form:"model"`
	Year         *int   `form:"year"`
	MinYear      *int   `form:"min_year"`
	MaxYear      *int   `form:"max_year"`
	Skip         int    `form:"skip"`
	Take         int    `form:"take,default=10"`
}

type StartAuctionRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

type PlaceBidRequest struct {
	VehicleID string  `json:"vehicle_id" binding:"required"`
	Bidder    string  `json:"bidder" binding:"required"`
	Amount    float64 `json:"amount" binding:"required"`
	Currency  string  `json:"currency"`
}

type CloseAuctionRequest struct {
	VehicleID string `json:"vehicle_id" binding:"required"`
}

type VehicleResponse struct {
	ID                   string                 `json:"id"`
	VIN                  string                 `json:"vin"`
	Type                 string                 `json:"type"`
	Manufacturer         string                 `json:"manufacturer"`
	Model                string                 `json:"model"`
	Year                 int                    `json:"year"`
	StartingBidAmount    float64                `json:"starting_bid_amount"`
	StartingBidCurrency  string                 `json:"starting_bid_currency"`
	CreatedAt            time.Time              `json:"created_at"`
	AdditionalAttributes map[string]interface{} `json:"additional_attributes"`
}

type VehicleSearchResponse struct {
	Vehicles          []*VehicleResponse `json:"vehicles"`
	TotalCount        int                `json:"total_count"`
	SearchDescription string             `json:"search_description"`
}

type BidResponse struct {
	Bidder   string    `json:"bidder"`
	Amount   float64   `json:"amount"`
	Currency string    `json:"currency"`
	PlacedAt time.Time `json:"placed_at"`
}

type AuctionResponse struct {
	VehicleID                 string         `json:"vehicle_id"`
	StartTime                 time.Time      `json:"start_time"`
	EndTime                   *time.Time     `json:"end_time,omitempty"`
	CurrentHighestBidAmount   float64        `json:"current_highest_bid_amount"`
	CurrentHighestBidCurrency string         `json:"current_highest_bid_currency"`
	CurrentHighestBidder      string         `json:"current_highest_bidder,omitempty"`
	TotalBids                 int            `json:"total_bids"`
	IsActive                  bool           `json:"is_active"`
	RecentBids                []*BidResponse `json:"recent_bids"`
}

type AuctionSummaryResponse struct {
	VehicleID                 string     `json:"vehicle_id"`
	StartTime                 time.Time  `json:"start_time"`
	EndTime                   *time.Time `json:"end_time,omitempty"`
	CurrentHighestBidAmount   float64    `json:"current_highest_bid_amount"`
	CurrentHighestBidCurrency string     `json:"current_highest_bid_currency"`
	CurrentHighestBidder      string     `json:"current_highest_bidder,omitempty"`
	TotalBids                 int        `json:"total_bids"`
	IsActive                  bool       `json:"is_active"`
}

type SystemStats struct {
	VehicleCount       int            `json:"vehicle_count"`
	ActiveAuctionCount int            `json:"active_auction_count"`
	VehiclesByType     map[string]int `json:"vehicles_by_type"`
}

// How many of the latest bids an AuctionResponse carries.
const RecentBidLimit = 10

func NewVehicleResponse(vehicle Vehicle) *VehicleResponse {
	return &VehicleResponse{
		ID:                   vehicle.GetID().Value(),
		VIN:                  vehicle.GetVIN(),
		Type:                 vehicle.GetVehicleType(),
		Manufacturer:         vehicle.GetManufacturer(),
		Model:                vehicle.GetModel(),
		Year:                 vehicle.GetYear(),
		StartingBidAmount:    vehicle.GetStartingBid().AmountFloat(),
		StartingBidCurrency:  vehicle.GetStartingBid().Currency(),
		CreatedAt:            vehicle.GetCreatedAt(),
		AdditionalAttributes: vehicle.GetSearchableAttributes(),
	}
}

func NewAuctionResponse(auction *Auction) *AuctionResponse {
	summary := auction.GetSummary()
	bids := auction.Bids()

	// newest first, capped
	recent := make([]*BidResponse, 0, RecentBidLimit)
	for i := len(bids) - 1; i >= 0 && len(recent) < RecentBidLimit; i-- {
		recent = append(recent, &BidResponse{
			Bidder:   bids[i].Bidder,
			Amount:   bids[i].Amount.AmountFloat(),
			Currency: bids[i].Amount.Currency(),
			PlacedAt: bids[i].PlacedAt,
		})
	}

	return &AuctionResponse{
		VehicleID:                 summary.VehicleID.Value(),
		StartTime:                 summary.StartTime,
		EndTime:                   summary.EndTime,
		CurrentHighestBidAmount:   summary.CurrentHighestBid.AmountFloat(),
		CurrentHighestBidCurrency: summary.CurrentHighestBid.Currency(),
		CurrentHighestBidder:      summary.CurrentHighestBidder,
		TotalBids:                 summary.TotalBids,
		IsActive:                  summary.IsActive,
		RecentBids:                recent,
	}
}

func NewAuctionSummaryResponse(summary AuctionSummary) *AuctionSummaryResponse {
	return &AuctionSummaryResponse{
		VehicleID:                 summary.VehicleID.Value(),
		StartTime:                 summary.StartTime,
		EndTime:                   summary.EndTime,
		CurrentHighestBidAmount:   summary.CurrentHighestBid.AmountFloat(),
		CurrentHighestBidCurrency: summary.CurrentHighestBid.Currency(),
		CurrentHighestBidder:      summary.CurrentHighestBidder,
		TotalBids:                 summary.TotalBids,
		IsActive:                  summary.IsActive,
	}
}
