package interfaces

import (
	"context"

	"carauction/internal/models"
)

// VehicleRepository stores vehicles keyed by their VehicleID. Vehicles are
// never mutated after insertion, so there is no update or delete path.
type VehicleRepository interface {
	// Add inserts a vehicle. The existence check and the insert are a single
	// atomic step; a duplicate ID fails with VEHICLE_ALREADY_EXISTS.
	Add(ctx context.Context, vehicle models.Vehicle) error

	// GetByID returns the vehicle or a VEHICLE_NOT_FOUND domain error.
	GetByID(ctx context.Context, id models.VehicleID) (models.Vehicle, error)

	Exists(ctx context.Context, id models.VehicleID) (bool, error)

	// GetAll returns every vehicle ordered by creation time.
	GetAll(ctx context.Context) ([]models.Vehicle, error)

	// Search returns vehicles matching the criteria, ordered by creation
	// time. Pagination is applied by the caller over this stable ordering.
	Search(ctx context.Context, criteria models.SearchCriteria) ([]models.Vehicle, error)

	// GetPaged returns a creation-time-ordered page. skip < 0 or take <= 0
	// fails with INVALID_PAGE_REQUEST.
	GetPaged(ctx context.Context, skip, take int) ([]models.Vehicle, error)

	Count(ctx context.Context) (int, error)

	// CountByType groups the inventory by vehicle type tag.
	CountByType(ctx context.Context) (map[string]int, error)

	// Clear removes every vehicle. Intended for tests and diagnostics.
	Clear(ctx context.Context) error
}
