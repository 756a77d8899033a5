package services

import (
	"encoding/json"
	"testing"

	"carauction/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sedanRequest() *models.CreateVehicleRequest {
	return &models.CreateVehicleRequest{
		ID: "001", VIN: "S001", Type: "Sedan", Manufacturer: "Toyota", Model: "Camry",
		Year: 2023, StartingBidAmount: 25000, StartingBidCurrency: "USD",
		AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfDoors: 4},
	}
}

func TestFactoryCreatesEachVariant(t *testing.T) {
	factory := NewVehicleFactory()

	tests := []struct {
		name     string
		request  *models.CreateVehicleRequest
		wantType string
	}{
		{
			name:     "sedan",
			request:  sedanRequest(),
			wantType: models.VehicleTypeSedan,
		},
		{
			name: "hatchback",
			request: &models.CreateVehicleRequest{
				ID: "004", VIN: "H001", Type: "Hatchback", Manufacturer: "Volkswagen", Model: "Golf",
				Year: 2023, StartingBidAmount: 22000, StartingBidCurrency: "USD",
				AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfDoors: 5},
			},
			wantType: models.VehicleTypeHatchback,
		},
		{
			name: "suv",
			request: &models.CreateVehicleRequest{
				ID: "002", VIN: "SUV001", Type: "SUV", Manufacturer: "Honda", Model: "Pilot",
				Year: 2022, StartingBidAmount: 35000, StartingBidCurrency: "USD",
				AdditionalAttributes: map[string]interface{}{models.AttributeNumberOfSeats: 8},
			},
			wantType: models.VehicleTypeSUV,
		},
		{
			name: "truck",
			request: &models.CreateVehicleRequest{
				ID: "003", VIN: "T001", Type: "Truck", Manufacturer: "Ford", Model: "F-150",
				Year: 2021, StartingBidAmount: 45000, StartingBidCurrency: "USD",
				AdditionalAttributes: map[string]interface{}{models.AttributeLoadCapacity: 1000.5},
			},
			wantType: models.VehicleTypeTruck,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			vehicle, err := factory.CreateVehicle(tt.request)
			require.NoError(t, err)
			assert.Equal(t, tt.wantType, vehicle.GetVehicleType())
			assert.Equal(t, tt.request.ID, vehicle.GetID().Value())
		})
	}
}

func TestFactoryTypeIsCaseInsensitive(t *testing.T) {
	factory := NewVehicleFactory()

	for _, typeName := range []string{"sedan", "SEDAN", "  Sedan  "} {
		request := sedanRequest()
		request.Type = typeName
		vehicle, err := factory.CreateVehicle(request)
		require.NoError(t, err)
		assert.Equal(t, models.VehicleTypeSedan, vehicle.GetVehicleType())
	}
}

func TestFactoryUnknownType(t *testing.T) {
	factory := NewVehicleFactory()

	request := sedanRequest()
	request.Type = "Motorcycle"

	_, err := factory.CreateVehicle(request)
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeUnknownVehicleType, models.ErrorCode(err))
	assert.Contains(t, err.Error(), "Motorcycle")
}

func TestFactoryMissingAttribute(t *testing.T) {
	factory := NewVehicleFactory()

	request := sedanRequest()
	request.AdditionalAttributes = nil

	_, err := factory.CreateVehicle(request)
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeMissingOrInvalidAttribute, models.ErrorCode(err))
	assert.Contains(t, err.Error(), models.AttributeNumberOfDoors)
}

func TestFactoryAttributeCoercion(t *testing.T) {
	factory := NewVehicleFactory()

	// JSON payloads deliver numbers as float64 or json.Number; callers may
	// also pass native ints or numeric strings
	for _, value := range []interface{}{4, int64(4), float64(4), json.Number("4"), "4"} {
		request := sedanRequest()
		request.AdditionalAttributes = map[string]interface{}{models.AttributeNumberOfDoors: value}
		vehicle, err := factory.CreateVehicle(request)
		require.NoError(t, err, "value %#v", value)
		assert.Equal(t, 4, vehicle.GetSearchableAttributes()[models.AttributeNumberOfDoors])
	}
}

func TestFactoryRejectsBadAttributeValues(t *testing.T) {
	factory := NewVehicleFactory()

	t.Run("non-numeric value", func(t *testing.T) {
		request := sedanRequest()
		request.AdditionalAttributes = map[string]interface{}{models.AttributeNumberOfDoors: "four"}
		_, err := factory.CreateVehicle(request)
		require.Error(t, err)
		assert.Equal(t, models.ErrCodeMissingOrInvalidAttribute, models.ErrorCode(err))
	})

	t.Run("fractional value for int parameter", func(t *testing.T) {
		request := sedanRequest()
		request.AdditionalAttributes = map[string]interface{}{models.AttributeNumberOfDoors: 4.5}
		_, err := factory.CreateVehicle(request)
		require.Error(t, err)
		assert.Equal(t, models.ErrCodeMissingOrInvalidAttribute, models.ErrorCode(err))
		assert.Contains(t, err.Error(), "whole number")
	})

	t.Run("nil value", func(t *testing.T) {
		request := sedanRequest()
		request.AdditionalAttributes = map[string]interface{}{models.AttributeNumberOfDoors: nil}
		_, err := factory.CreateVehicle(request)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing")
	})
}

func TestFactoryDefaultsCurrency(t *testing.T) {
	factory := NewVehicleFactory()

	request := sedanRequest()
	request.StartingBidCurrency = ""

	vehicle, err := factory.CreateVehicle(request)
	require.NoError(t, err)
	assert.Equal(t, "USD", vehicle.GetStartingBid().Currency())
}

func TestFactorySupportedTypes(t *testing.T) {
	factory := NewVehicleFactory()

	assert.Equal(t, []string{"hatchback", "sedan", "suv", "truck"}, factory.GetSupportedVehicleTypes())
}

func TestFactoryRequiredParameters(t *testing.T) {
	factory := NewVehicleFactory()

	parameters, err := factory.GetRequiredParametersForType("Truck")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{models.AttributeLoadCapacity: "decimal"}, parameters)

	parameters, err = factory.GetRequiredParametersForType("suv")
	require.NoError(t, err)
	assert.Equal(t, map[string]string{models.AttributeNumberOfSeats: "int"}, parameters)

	_, err = factory.GetRequiredParametersForType("boat")
	require.Error(t, err)
	assert.Equal(t, models.ErrCodeUnknownVehicleType, models.ErrorCode(err))
}
