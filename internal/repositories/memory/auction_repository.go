package memory

import (
	"context"
	"sort"
	"sync"

	"carauction/internal/models"
	"carauction/internal/repositories/interfaces"
)

type auctionRepository struct {
	mu sync.Mutex
	// per-vehicle append-only history, oldest first
	auctionsByVehicle map[string][]*models.Auction
}

// NewAuctionRepository builds an empty in-memory auction store.
func NewAuctionRepository() interfaces.AuctionRepository {
	return &auctionRepository{
		auctionsByVehicle: make(map[string][]*models.Auction),
	}
}

func (r *auctionRepository) Add(ctx context.Context, auction *models.Auction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := auction.VehicleID().Value()

	// The active-auction lookup and the append must not be separable: two
	// concurrent Adds for one vehicle would otherwise both pass the check.
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, existing := range r.auctionsByVehicle[key] {
		if existing.IsActive() {
			return models.NewAuctionAlreadyActiveError(key)
		}
	}
	r.auctionsByVehicle[key] = append(r.auctionsByVehicle[key], auction)
	return nil
}

func (r *auctionRepository) GetActiveAuction(ctx context.Context, vehicleID models.VehicleID) (*models.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, auction := range r.auctionsByVehicle[vehicleID.Value()] {
		if auction.IsActive() {
			return auction, nil
		}
	}
	return nil, models.NewAuctionNotFoundError(vehicleID.Value())
}

func (r *auctionRepository) GetAllActiveAuctions(ctx context.Context) ([]*models.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var active []*models.Auction
	for _, auctions := range r.auctionsByVehicle {
		for _, auction := range auctions {
			if auction.IsActive() {
				active = append(active, auction)
			}
		}
	}
	sort.Slice(active, func(i, j int) bool {
		return active[i].StartTime().After(active[j].StartTime())
	})
	return active, nil
}

func (r *auctionRepository) GetAuctionHistory(ctx context.Context, vehicleID models.VehicleID) ([]*models.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	auctions := r.auctionsByVehicle[vehicleID.Value()]
	history := make([]*models.Auction, len(auctions))
	copy(history, auctions)
	sort.Slice(history, func(i, j int) bool {
		return history[i].StartTime().After(history[j].StartTime())
	})
	return history, nil
}

func (r *auctionRepository) Update(ctx context.Context, auction *models.Auction) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	// Reference-sharing store: the auction mutates in place and there is
	// nothing to write back. Verify it actually came from this store so a
	// future store-by-value implementation can swap in behind the same call
	// sites.
	for _, existing := range r.auctionsByVehicle[auction.VehicleID().Value()] {
		if existing == auction {
			return nil
		}
	}
	return models.NewAuctionNotFoundError(auction.VehicleID().Value())
}

func (r *auctionRepository) GetCompletedAuctions(ctx context.Context) ([]*models.Auction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	var completed []*models.Auction
	for _, auctions := range r.auctionsByVehicle {
		for _, auction := range auctions {
			if !auction.IsActive() {
				completed = append(completed, auction)
			}
		}
	}
	sort.Slice(completed, func(i, j int) bool {
		left, right := completed[i].EndTime(), completed[j].EndTime()
		return left.After(*right)
	})
	return completed, nil
}

func (r *auctionRepository) CountActive(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, auctions := range r.auctionsByVehicle {
		for _, auction := range auctions {
			if auction.IsActive() {
				count++
			}
		}
	}
	return count, nil
}

func (r *auctionRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.auctionsByVehicle = make(map[string][]*models.Auction)
	return nil
}
