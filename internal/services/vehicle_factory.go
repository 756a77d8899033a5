package services

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"carauction/internal/models"
	"carauction/internal/utils"
)

// VehicleFactory builds concrete vehicle variants from loosely-typed create
// requests. Dispatch is a fixed type-keyed table; adding a variant means
// adding a row and a constructor, not a subclass.
type VehicleFactory interface {
	CreateVehicle(request *models.CreateVehicleRequest) (models.Vehicle, error)
	GetSupportedVehicleTypes() []string
	GetRequiredParametersForType(vehicleType string) (map[string]string, error)
}

// required-parameter table: type key -> attribute name -> kind
var typeParameters = map[string]map[string]string{
	"sedan":     {models.AttributeNumberOfDoors: "int"},
	"hatchback": {models.AttributeNumberOfDoors: "int"},
	"suv":       {models.AttributeNumberOfSeats: "int"},
	"truck":     {models.AttributeLoadCapacity: "decimal"},
}

type vehicleFactory struct{}

func NewVehicleFactory() VehicleFactory {
	return &vehicleFactory{}
}

func (f *vehicleFactory) CreateVehicle(request *models.CreateVehicleRequest) (models.Vehicle, error) {
	id, err := models.NewVehicleID(request.ID)
	if err != nil {
		return nil, err
	}
	currency := request.StartingBidCurrency
	if strings.TrimSpace(currency) == "" {
		currency = utils.DefaultCurrency
	}
	startingBid, err := models.NewMoneyFromFloat(request.StartingBidAmount, currency)
	if err != nil {
		return nil, err
	}

	switch strings.ToLower(strings.TrimSpace(request.Type)) {
	case "sedan":
		doors, err := requiredIntParameter(request.AdditionalAttributes, models.AttributeNumberOfDoors)
		if err != nil {
			return nil, err
		}
		return models.NewSedan(id, request.VIN, request.Manufacturer, request.Model, request.Year, startingBid, doors)
	case "hatchback":
		doors, err := requiredIntParameter(request.AdditionalAttributes, models.AttributeNumberOfDoors)
		if err != nil {
			return nil, err
		}
		return models.NewHatchback(id, request.VIN, request.Manufacturer, request.Model, request.Year, startingBid, doors)
	case "suv":
		seats, err := requiredIntParameter(request.AdditionalAttributes, models.AttributeNumberOfSeats)
		if err != nil {
			return nil, err
		}
		return models.NewSUV(id, request.VIN, request.Manufacturer, request.Model, request.Year, startingBid, seats)
	case "truck":
		capacity, err := requiredFloatParameter(request.AdditionalAttributes, models.AttributeLoadCapacity)
		if err != nil {
			return nil, err
		}
		return models.NewTruck(id, request.VIN, request.Manufacturer, request.Model, request.Year, startingBid, capacity)
	default:
		return nil, models.NewUnknownVehicleTypeError(request.Type)
	}
}

func (f *vehicleFactory) GetSupportedVehicleTypes() []string {
	types := make([]string, 0, len(typeParameters))
	for vehicleType := range typeParameters {
		types = append(types, vehicleType)
	}
	sort.Strings(types)
	return types
}

func (f *vehicleFactory) GetRequiredParametersForType(vehicleType string) (map[string]string, error) {
	parameters, exists := typeParameters[strings.ToLower(strings.TrimSpace(vehicleType))]
	if !exists {
		return nil, models.NewUnknownVehicleTypeError(vehicleType)
	}
	result := make(map[string]string, len(parameters))
	for name, kind := range parameters {
		result[name] = kind
	}
	return result, nil
}

// requiredFloatParameter extracts a numeric attribute, coercing from the
// dynamic shapes a JSON payload or caller map can carry.
func requiredFloatParameter(attributes map[string]interface{}, key string) (float64, error) {
	value, exists := attributes[key]
	if !exists || value == nil {
		return 0, models.NewMissingOrInvalidAttributeError(fmt.Sprintf("Required parameter '%s' is missing", key))
	}

	switch v := value.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int32:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		parsed, err := v.Float64()
		if err == nil {
			return parsed, nil
		}
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err == nil {
			return parsed, nil
		}
	}
	return 0, models.NewMissingOrInvalidAttributeError(
		fmt.Sprintf("Parameter '%s' cannot be converted to a number (got %T)", key, value))
}

func requiredIntParameter(attributes map[string]interface{}, key string) (int, error) {
	parsed, err := requiredFloatParameter(attributes, key)
	if err != nil {
		return 0, err
	}
	whole := int(parsed)
	if float64(whole) != parsed {
		return 0, models.NewMissingOrInvalidAttributeError(
			fmt.Sprintf("Parameter '%s' must be a whole number", key))
	}
	return whole, nil
}
