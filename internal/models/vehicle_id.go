package models

import "strings"

// VehicleID is the sole identity of a vehicle and the key used by both
// repositories. The zero value is invalid; construct through NewVehicleID.
type VehicleID struct {
	value string
}

func NewVehicleID(value string) (VehicleID, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return VehicleID{}, NewInvalidVehicleDataError("Vehicle ID cannot be empty")
	}
	return VehicleID{value: trimmed}, nil
}

func (id VehicleID) Value() string {
	return id.value
}

func (id VehicleID) String() string {
	return id.value
}
