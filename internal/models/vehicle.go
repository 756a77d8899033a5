package models

import (
	"strconv"
	"strings"
	"time"
)

// Vehicle type tags as reported by GetVehicleType and matched by search
// criteria (case-insensitively).
const (
	VehicleTypeSedan     = "Sedan"
	VehicleTypeHatchback = "Hatchback"
	VehicleTypeSUV       = "SUV"
	VehicleTypeTruck     = "Truck"
)

// Searchable attribute keys. These are also the required-parameter names the
// factory expects in a create request.
const (
	AttributeNumberOfDoors = "NumberOfDoors"
	AttributeNumberOfSeats = "NumberOfSeats"
	AttributeLoadCapacity  = "LoadCapacity"
)

// Validation ranges for variant-specific attributes.
const (
	MinDoors        = 2
	MaxDoors        = 5
	MinSeats        = 2
	MaxSeats        = 9
	MinYear         = 1900
	MinLoadCapacity = 0.1
	MaxLoadCapacity = 100000.0
)

// Vehicle is the closed set of auctionable vehicle variants: Sedan,
// Hatchback, SUV and Truck. Vehicles are immutable after construction.
type Vehicle interface {
	GetID() VehicleID
	GetVIN() string
	GetManufacturer() string
	GetModel() string
	GetYear() int
	GetStartingBid() Money
	GetCreatedAt() time.Time
	GetVehicleType() string
	GetSearchableAttributes() map[string]interface{}
}

// BaseVehicle carries the fields shared by every variant.
type BaseVehicle struct {
	ID           VehicleID
	VIN          string
	Manufacturer string
	Model        string
	Year         int
	StartingBid  Money
	CreatedAt    time.Time
}

func newBaseVehicle(id VehicleID, vin, manufacturer, model string, year int, startingBid Money) (BaseVehicle, error) {
	vin, err := validateRequiredString(vin, "VIN")
	if err != nil {
		return BaseVehicle{}, err
	}
	manufacturer, err = validateRequiredString(manufacturer, "Manufacturer")
	if err != nil {
		return BaseVehicle{}, err
	}
	model, err = validateRequiredString(model, "Model")
	if err != nil {
		return BaseVehicle{}, err
	}
	if err := validateYear(year); err != nil {
		return BaseVehicle{}, err
	}
	if !startingBid.IsPositive() {
		return BaseVehicle{}, NewInvalidVehicleDataError("Starting bid must be positive")
	}
	return BaseVehicle{
		ID:           id,
		VIN:          vin,
		Manufacturer: manufacturer,
		Model:        model,
		Year:         year,
		StartingBid:  startingBid,
		CreatedAt:    time.Now().UTC(),
	}, nil
}

func validateRequiredString(value, field string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", NewInvalidVehicleDataError(field + " cannot be empty")
	}
	return trimmed, nil
}

func validateYear(year int) error {
	maxYear := time.Now().Year() + 1
	if year < MinYear || year > maxYear {
		return NewInvalidVehicleDataError("Year must be between 1900 and " + strconv.Itoa(maxYear))
	}
	return nil
}

func (v BaseVehicle) GetID() VehicleID        { return v.ID }
func (v BaseVehicle) GetVIN() string          { return v.VIN }
func (v BaseVehicle) GetManufacturer() string { return v.Manufacturer }
func (v BaseVehicle) GetModel() string        { return v.Model }
func (v BaseVehicle) GetYear() int            { return v.Year }
func (v BaseVehicle) GetStartingBid() Money   { return v.StartingBid }
func (v BaseVehicle) GetCreatedAt() time.Time { return v.CreatedAt }

func (v BaseVehicle) baseAttributes(vehicleType string) map[string]interface{} {
	return map[string]interface{}{
		"Type":         vehicleType,
		"Manufacturer": v.Manufacturer,
		"Model":        v.Model,
		"Year":         v.Year,
	}
}

// Sedan has a door count between 2 and 5.
type Sedan struct {
	BaseVehicle
	NumberOfDoors int
}

func NewSedan(id VehicleID, vin, manufacturer, model string, year int, startingBid Money, numberOfDoors int) (*Sedan, error) {
	base, err := newBaseVehicle(id, vin, manufacturer, model, year, startingBid)
	if err != nil {
		return nil, err
	}
	if numberOfDoors < MinDoors || numberOfDoors > MaxDoors {
		return nil, NewInvalidVehicleDataError("NumberOfDoors must be between 2 and 5")
	}
	return &Sedan{BaseVehicle: base, NumberOfDoors: numberOfDoors}, nil
}

func (s *Sedan) GetVehicleType() string { return VehicleTypeSedan }

func (s *Sedan) GetSearchableAttributes() map[string]interface{} {
	attrs := s.baseAttributes(s.GetVehicleType())
	attrs[AttributeNumberOfDoors] = s.NumberOfDoors
	return attrs
}

// Hatchback shares the sedan door-count rule.
type Hatchback struct {
	BaseVehicle
	NumberOfDoors int
}

func NewHatchback(id VehicleID, vin, manufacturer, model string, year int, startingBid Money, numberOfDoors int) (*Hatchback, error) {
	base, err := newBaseVehicle(id, vin, manufacturer, model, year, startingBid)
	if err != nil {
		return nil, err
	}
	if numberOfDoors < MinDoors || numberOfDoors > MaxDoors {
		return nil, NewInvalidVehicleDataError("NumberOfDoors must be between 2 and 5")
	}
	return &Hatchback{BaseVehicle: base, NumberOfDoors: numberOfDoors}, nil
}

func (h *Hatchback) GetVehicleType() string { return VehicleTypeHatchback }

func (h *Hatchback) GetSearchableAttributes() map[string]interface{} {
	attrs := h.baseAttributes(h.GetVehicleType())
	attrs[AttributeNumberOfDoors] = h.NumberOfDoors
	return attrs
}

// SUV has a seat count between 2 and 9.
type SUV struct {
	BaseVehicle
	NumberOfSeats int
}

func NewSUV(id VehicleID, vin, manufacturer, model string, year int, startingBid Money, numberOfSeats int) (*SUV, error) {
	base, err := newBaseVehicle(id, vin, manufacturer, model, year, startingBid)
	if err != nil {
		return nil, err
	}
	if numberOfSeats < MinSeats || numberOfSeats > MaxSeats {
		return nil, NewInvalidVehicleDataError("NumberOfSeats must be between 2 and 9")
	}
	return &SUV{BaseVehicle: base, NumberOfSeats: numberOfSeats}, nil
}

func (s *SUV) GetVehicleType() string { return VehicleTypeSUV }

func (s *SUV) GetSearchableAttributes() map[string]interface{} {
	attrs := s.baseAttributes(s.GetVehicleType())
	attrs[AttributeNumberOfSeats] = s.NumberOfSeats
	return attrs
}

// Truck has a load capacity between 0.1 and 100000.
type Truck struct {
	BaseVehicle
	LoadCapacity float64
}

func NewTruck(id VehicleID, vin, manufacturer, model string, year int, startingBid Money, loadCapacity float64) (*Truck, error) {
	base, err := newBaseVehicle(id, vin, manufacturer, model, year, startingBid)
	if err != nil {
		return nil, err
	}
	if loadCapacity < MinLoadCapacity || loadCapacity > MaxLoadCapacity {
		return nil, NewInvalidVehicleDataError("LoadCapacity must be between 0.1 and 100000")
	}
	return &Truck{BaseVehicle: base, LoadCapacity: loadCapacity}, nil
}

func (t *Truck) GetVehicleType() string { return VehicleTypeTruck }

func (t *Truck) GetSearchableAttributes() map[string]interface{} {
	attrs := t.baseAttributes(t.GetVehicleType())
	attrs[AttributeLoadCapacity] = t.LoadCapacity
	return attrs
}
