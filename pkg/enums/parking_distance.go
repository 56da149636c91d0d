package enums

import "fmt"

// ParkingDistance records how far the van can park from the entrance.
type ParkingDistance string

const (
	ParkingDistanceOnProperty ParkingDistance = "on_property"
	ParkingDistanceWithin20m  ParkingDistance = "within_20m"
	ParkingDistanceWithin50m  ParkingDistance = "within_50m"
	ParkingDistanceOver50m    ParkingDistance = "over_50m"
)

var validParkingDistances = []ParkingDistance{
	ParkingDistanceOnProperty,
	ParkingDistanceWithin20m,
	ParkingDistanceWithin50m,
	ParkingDistanceOver50m,
}

// String implements fmt.Stringer.
func (p ParkingDistance) String() string {
	return string(p)
}

// IsValid reports whether the value is a known ParkingDistance.
func (p ParkingDistance) IsValid() bool {
	for _, candidate := range validParkingDistances {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseParkingDistance converts raw input into a ParkingDistance.
func ParseParkingDistance(value string) (ParkingDistance, error) {
	for _, candidate := range validParkingDistances {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid parking distance %q", value)
}
