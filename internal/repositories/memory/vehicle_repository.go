package memory

import (
	"context"
	"sort"
	"sync"

	"carauction/internal/models"
	"carauction/internal/repositories/interfaces"
)

type vehicleRepository struct {
	mu       sync.RWMutex
	vehicles map[string]models.Vehicle
	// insertion order doubles as creation-time order; it backs the stable
	// ordering that Search, GetAll and GetPaged promise.
	order []string
}

// NewVehicleRepository builds an empty in-memory vehicle store.
func NewVehicleRepository() interfaces.VehicleRepository {
	return &vehicleRepository{
		vehicles: make(map[string]models.Vehicle),
	}
}

func (r *vehicleRepository) Add(ctx context.Context, vehicle models.Vehicle) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	key := vehicle.GetID().Value()

	r.mu.Lock()
	defer r.mu.Unlock()

	// check-and-insert under one lock: no read-then-write gap
	if _, exists := r.vehicles[key]; exists {
		return models.NewVehicleAlreadyExistsError(key)
	}
	r.vehicles[key] = vehicle
	r.order = append(r.order, key)
	return nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, id models.VehicleID) (models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	vehicle, exists := r.vehicles[id.Value()]
	if !exists {
		return nil, models.NewVehicleNotFoundError(id.Value())
	}
	return vehicle, nil
}

func (r *vehicleRepository) Exists(ctx context.Context, id models.VehicleID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	_, exists := r.vehicles[id.Value()]
	return exists, nil
}

func (r *vehicleRepository) GetAll(ctx context.Context) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.snapshotLocked(), nil
}

func (r *vehicleRepository) Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var matches []models.Vehicle
	for _, key := range r.order {
		if vehicle := r.vehicles[key]; criteria.Matches(vehicle) {
			matches = append(matches, vehicle)
		}
	}
	return matches, nil
}

func (r *vehicleRepository) GetPaged(ctx context.Context, skip, take int) ([]models.Vehicle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if skip < 0 {
		return nil, models.NewInvalidPageRequestError("Skip cannot be negative")
	}
	if take <= 0 {
		return nil, models.NewInvalidPageRequestError("Take must be positive")
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	all := r.snapshotLocked()
	sort.SliceStable(all, func(i, j int) bool {
		return all[i].GetCreatedAt().Before(all[j].GetCreatedAt())
	})

	if skip >= len(all) {
		return nil, nil
	}
	end := skip + take
	if end > len(all) {
		end = len(all)
	}
	return all[skip:end], nil
}

func (r *vehicleRepository) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.vehicles), nil
}

func (r *vehicleRepository) CountByType(ctx context.Context) (map[string]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	counts := make(map[string]int)
	for _, vehicle := range r.vehicles {
		counts[vehicle.GetVehicleType()]++
	}
	return counts, nil
}

func (r *vehicleRepository) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.vehicles = make(map[string]models.Vehicle)
	r.order = nil
	return nil
}

func (r *vehicleRepository) snapshotLocked() []models.Vehicle {
	vehicles := make([]models.Vehicle, 0, len(r.order))
	for _, key := range r.order {
		vehicles = append(vehicles, r.vehicles[key])
	}
	return vehicles
}
