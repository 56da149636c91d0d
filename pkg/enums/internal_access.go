package enums

import "fmt"

// InternalAccess describes how goods get in and out of the property.
// House-like property types use the floor-count vocabulary; flats,
// offices and few-item moves use the stairs/lift vocabulary.
type InternalAccess string

const (
	InternalAccessGroundOnly        InternalAccess = "ground_only"
	InternalAccessGroundFirst       InternalAccess = "ground_first"
	InternalAccessGroundFirstSecond InternalAccess = "ground_first_second"

	InternalAccessStairsOnly     InternalAccess = "stairs_only"
	InternalAccessGroundFloor    InternalAccess = "ground_floor"
	InternalAccessFirstFloor     InternalAccess = "first_floor"
	InternalAccessSecondFloor    InternalAccess = "second_floor"
	InternalAccessThirdFloorPlus InternalAccess = "third_floor_plus"
	InternalAccessLiftAccess     InternalAccess = "lift_access"
)

var houseInternalAccess = []InternalAccess{
	InternalAccessGroundOnly,
	InternalAccessGroundFirst,
	InternalAccessGroundFirstSecond,
}

var flatInternalAccess = []InternalAccess{
	InternalAccessStairsOnly,
	InternalAccessGroundFloor,
	InternalAccessFirstFloor,
	InternalAccessSecondFloor,
	InternalAccessThirdFloorPlus,
	InternalAccessLiftAccess,
}

// String implements fmt.Stringer.
func (i InternalAccess) String() string {
	return string(i)
}

// IsValid reports whether the value belongs to either vocabulary.
func (i InternalAccess) IsValid() bool {
	return i.IsValidFor(PropertyTypeHouse) || i.IsValidFor(PropertyTypeFlat)
}

// IsValidFor reports whether the value belongs to the vocabulary of the
// given property type.
func (i InternalAccess) IsValidFor(propertyType PropertyType) bool {
	for _, candidate := range InternalAccessOptions(propertyType) {
		if candidate == i {
			return true
		}
	}
	return false
}

// InternalAccessOptions returns the access vocabulary for a property type.
func InternalAccessOptions(propertyType PropertyType) []InternalAccess {
	if propertyType.IsHouseLike() {
		return houseInternalAccess
	}
	return flatInternalAccess
}

// ParseInternalAccess converts raw input into an InternalAccess.
func ParseInternalAccess(value string) (InternalAccess, error) {
	for _, set := range [][]InternalAccess{houseInternalAccess, flatInternalAccess} {
		for _, candidate := range set {
			if string(candidate) == value {
				return candidate, nil
			}
		}
	}
	return "", fmt.Errorf("invalid internal access %q", value)
}
