package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testVehicleID(t *testing.T, value string) VehicleID {
	t.Helper()
	id, err := NewVehicleID(value)
	require.NoError(t, err)
	return id
}

func testMoney(t *testing.T, amount float64) Money {
	t.Helper()
	money, err := NewMoneyFromFloat(amount, "USD")
	require.NoError(t, err)
	return money
}

func TestNewVehicleID(t *testing.T) {
	id, err := NewVehicleID("  001  ")
	require.NoError(t, err)
	assert.Equal(t, "001", id.Value())

	_, err = NewVehicleID("   ")
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidVehicleData, ErrorCode(err))
}

func TestNewSedan(t *testing.T) {
	sedan, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", 2023, testMoney(t, 25000), 4)
	require.NoError(t, err)

	assert.Equal(t, VehicleTypeSedan, sedan.GetVehicleType())
	assert.Equal(t, "Toyota", sedan.GetManufacturer())
	assert.Equal(t, 4, sedan.NumberOfDoors)

	attrs := sedan.GetSearchableAttributes()
	assert.Equal(t, VehicleTypeSedan, attrs["Type"])
	assert.Equal(t, 4, attrs[AttributeNumberOfDoors])
	assert.Equal(t, 2023, attrs["Year"])
}

func TestSedanDoorValidation(t *testing.T) {
	for _, doors := range []int{1, 6, 0, -1} {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", 2023, testMoney(t, 25000), doors)
		require.Error(t, err)
		assert.Equal(t, ErrCodeInvalidVehicleData, ErrorCode(err))
	}
	for _, doors := range []int{MinDoors, MaxDoors} {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", 2023, testMoney(t, 25000), doors)
		require.NoError(t, err)
	}
}

func TestNewHatchback(t *testing.T) {
	hatchback, err := NewHatchback(testVehicleID(t, "004"), "H001", "Volkswagen", "Golf", 2023, testMoney(t, 22000), 5)
	require.NoError(t, err)
	assert.Equal(t, VehicleTypeHatchback, hatchback.GetVehicleType())
	assert.Equal(t, 5, hatchback.GetSearchableAttributes()[AttributeNumberOfDoors])
}

func TestNewSUV(t *testing.T) {
	suv, err := NewSUV(testVehicleID(t, "002"), "SUV001", "Honda", "Pilot", 2022, testMoney(t, 35000), 8)
	require.NoError(t, err)
	assert.Equal(t, VehicleTypeSUV, suv.GetVehicleType())
	assert.Equal(t, 8, suv.GetSearchableAttributes()[AttributeNumberOfSeats])

	_, err = NewSUV(testVehicleID(t, "002"), "SUV001", "Honda", "Pilot", 2022, testMoney(t, 35000), 10)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidVehicleData, ErrorCode(err))

	_, err = NewSUV(testVehicleID(t, "002"), "SUV001", "Honda", "Pilot", 2022, testMoney(t, 35000), 1)
	require.Error(t, err)
}

func TestNewTruck(t *testing.T) {
	truck, err := NewTruck(testVehicleID(t, "003"), "T001", "Ford", "F-150", 2021, testMoney(t, 45000), 1000.5)
	require.NoError(t, err)
	assert.Equal(t, VehicleTypeTruck, truck.GetVehicleType())
	assert.Equal(t, 1000.5, truck.GetSearchableAttributes()[AttributeLoadCapacity])

	_, err = NewTruck(testVehicleID(t, "003"), "T001", "Ford", "F-150", 2021, testMoney(t, 45000), 0)
	require.Error(t, err)
	assert.Equal(t, ErrCodeInvalidVehicleData, ErrorCode(err))

	_, err = NewTruck(testVehicleID(t, "003"), "T001", "Ford", "F-150", 2021, testMoney(t, 45000), 100001)
	require.Error(t, err)
}

func TestBaseVehicleValidation(t *testing.T) {
	t.Run("blank VIN", func(t *testing.T) {
		_, err := NewSedan(testVehicleID(t, "001"), "  ", "Toyota", "Camry", 2023, testMoney(t, 25000), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "VIN")
	})

	t.Run("blank manufacturer", func(t *testing.T) {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "", "Camry", 2023, testMoney(t, 25000), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Manufacturer")
	})

	t.Run("blank model", func(t *testing.T) {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "", 2023, testMoney(t, 25000), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Model")
	})

	t.Run("year too old", func(t *testing.T) {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", 1899, testMoney(t, 25000), 4)
		require.Error(t, err)
		assert.Equal(t, ErrCodeInvalidVehicleData, ErrorCode(err))
	})

	t.Run("next model year allowed, beyond that rejected", func(t *testing.T) {
		nextYear := time.Now().Year() + 1
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", nextYear, testMoney(t, 25000), 4)
		require.NoError(t, err)

		_, err = NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", nextYear+1, testMoney(t, 25000), 4)
		require.Error(t, err)
	})

	t.Run("zero starting bid rejected", func(t *testing.T) {
		_, err := NewSedan(testVehicleID(t, "001"), "VIN1", "Toyota", "Camry", 2023, testMoney(t, 0), 4)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Starting bid")
	})

	t.Run("string fields are trimmed", func(t *testing.T) {
		sedan, err := NewSedan(testVehicleID(t, "001"), " VIN1 ", " Toyota ", " Camry ", 2023, testMoney(t, 25000), 4)
		require.NoError(t, err)
		assert.Equal(t, "VIN1", sedan.GetVIN())
		assert.Equal(t, "Toyota", sedan.GetManufacturer())
		assert.Equal(t, "Camry", sedan.GetModel())
	})
}
