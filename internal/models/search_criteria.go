package models

import (
	"fmt"
	"strings"
)

// SearchCriteria is a composable predicate over vehicles. Criteria are
// stateless beyond their constructor parameters and safe for concurrent use.
type SearchCriteria interface {
	Matches(vehicle Vehicle) bool
	GetDescription() string
}

type typeCriteria struct {
	vehicleType string
}

// NewTypeCriteria matches vehicles whose type tag equals the given value,
// ignoring case.
func NewTypeCriteria(vehicleType string) SearchCriteria {
	return &typeCriteria{vehicleType: strings.TrimSpace(vehicleType)}
}

func (c *typeCriteria) Matches(vehicle Vehicle) bool {
	return strings.EqualFold(vehicle.GetVehicleType(), c.vehicleType)
}

func (c *typeCriteria) GetDescription() string {
	return "Type: " + c.vehicleType
}

type manufacturerCriteria struct {
	manufacturer string
}

func NewManufacturerCriteria(manufacturer string) SearchCriteria {
	return &manufacturerCriteria{manufacturer: strings.TrimSpace(manufacturer)}
}

func (c *manufacturerCriteria) Matches(vehicle Vehicle) bool {
	return strings.EqualFold(vehicle.GetManufacturer(), c.manufacturer)
}

func (c *manufacturerCriteria) GetDescription() string {
	return "Manufacturer: " + c.manufacturer
}

type modelCriteria struct {
	model string
}

func NewModelCriteria(model string) SearchCriteria {
	return &modelCriteria{model: strings.TrimSpace(model)}
}

func (c *modelCriteria) Matches(vehicle Vehicle) bool {
	return strings.EqualFold(vehicle.GetModel(), c.model)
}

func (c *modelCriteria) GetDescription() string {
	return "Model: " + c.model
}

type yearCriteria struct {
	year int
}

func NewYearCriteria(year int) SearchCriteria {
	return &yearCriteria{year: year}
}

func (c *yearCriteria) Matches(vehicle Vehicle) bool {
	return vehicle.GetYear() == c.year
}

func (c *yearCriteria) GetDescription() string {
	return fmt.Sprintf("Year: %d", c.year)
}

type yearRangeCriteria struct {
	minYear int
	maxYear int
}

// NewYearRangeCriteria matches vehicles whose year falls in [minYear, maxYear].
func NewYearRangeCriteria(minYear, maxYear int) (SearchCriteria, error) {
	if minYear > maxYear {
		return nil, NewInvalidSearchCriteriaError("Min year cannot be greater than max year")
	}
	return &yearRangeCriteria{minYear: minYear, maxYear: maxYear}, nil
}

func (c *yearRangeCriteria) Matches(vehicle Vehicle) bool {
	return vehicle.GetYear() >= c.minYear && vehicle.GetYear() <= c.maxYear
}

func (c *yearRangeCriteria) GetDescription() string {
	return fmt.Sprintf("Year Range: %d-%d", c.minYear, c.maxYear)
}

type allVehiclesCriteria struct{}

// NewAllVehiclesCriteria matches every vehicle.
func NewAllVehiclesCriteria() SearchCriteria {
	return allVehiclesCriteria{}
}

func (allVehiclesCriteria) Matches(vehicle Vehicle) bool {
	return true
}

func (allVehiclesCriteria) GetDescription() string {
	return "All Vehicles"
}

type compositeCriteria struct {
	criteria []SearchCriteria
}

// NewCompositeCriteria AND-combines the given criteria. At least one child is
// required; OR composition is deliberately unsupported.
func NewCompositeCriteria(criteria ...SearchCriteria) (SearchCriteria, error) {
	if len(criteria) == 0 {
		return nil, NewEmptyCriteriaError()
	}
	children := make([]SearchCriteria, len(criteria))
	copy(children, criteria)
	return &compositeCriteria{criteria: children}, nil
}

func (c *compositeCriteria) Matches(vehicle Vehicle) bool {
	for _, criterion := range c.criteria {
		if !criterion.Matches(vehicle) {
			return false
		}
	}
	return true
}

func (c *compositeCriteria) GetDescription() string {
	descriptions := make([]string, len(c.criteria))
	for i, criterion := range c.criteria {
		descriptions[i] = criterion.GetDescription()
	}
	return "Combined: [" + strings.Join(descriptions, " AND ") + "]"
}
