package interfaces

import (
	"context"

	"carauction/internal/models"
)

// AuctionRepository stores the append-only auction history per vehicle. A
// vehicle may accumulate many auctions over time, but at most one of them is
// active; the store enforces that invariant inside Add.
type AuctionRepository interface {
	// Add appends a new auction for its vehicle. The "no active auction
	// exists" check and the append happen under one critical section, so two
	// concurrent Adds for the same vehicle cannot both succeed; the loser
	// fails with AUCTION_ALREADY_ACTIVE.
	Add(ctx context.Context, auction *models.Auction) error

	// GetActiveAuction returns the single active auction for the vehicle or
	// an AUCTION_NOT_FOUND domain error.
	GetActiveAuction(ctx context.Context, vehicleID models.VehicleID) (*models.Auction, error)

	// GetAllActiveAuctions returns active auctions across all vehicles,
	// most recent start time first.
	GetAllActiveAuctions(ctx context.Context) ([]*models.Auction, error)

	// GetAuctionHistory returns all auctions (active and closed) for a
	// vehicle, most recent start time first.
	GetAuctionHistory(ctx context.Context, vehicleID models.VehicleID) ([]*models.Auction, error)

	// Update is the durability commit point after every auction mutation.
	// The in-memory store shares the instance and has nothing to write, but
	// orchestration code must still call it so a store-by-value
	// implementation can be swapped in without behavior change.
	Update(ctx context.Context, auction *models.Auction) error

	// GetCompletedAuctions returns closed auctions across all vehicles,
	// most recently ended first.
	GetCompletedAuctions(ctx context.Context) ([]*models.Auction, error)

	CountActive(ctx context.Context) (int, error)

	// Clear removes all auction history. Intended for tests and diagnostics.
	Clear(ctx context.Context) error
}
