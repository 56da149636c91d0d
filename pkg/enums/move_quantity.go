package enums

import "fmt"

// MoveQuantity is the customer's rough estimate of how much of the
// property's contents are moving.
type MoveQuantity string

const (
	MoveQuantitySomeThings   MoveQuantity = "some_things"
	MoveQuantityHalfContents MoveQuantity = "half_contents"
	MoveQuantityThreeQuarter MoveQuantity = "three_quarter"
	MoveQuantityMostThings   MoveQuantity = "most_things"
	MoveQuantityEverything   MoveQuantity = "everything"
)

var validMoveQuantities = []MoveQuantity{
	MoveQuantitySomeThings,
	MoveQuantityHalfContents,
	MoveQuantityThreeQuarter,
	MoveQuantityMostThings,
	MoveQuantityEverything,
}

// String implements fmt.Stringer.
func (m MoveQuantity) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MoveQuantity.
func (m MoveQuantity) IsValid() bool {
	for _, candidate := range validMoveQuantities {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMoveQuantity converts raw input into a MoveQuantity.
func ParseMoveQuantity(value string) (MoveQuantity, error) {
	for _, candidate := range validMoveQuantities {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid move quantity %q", value)
}
