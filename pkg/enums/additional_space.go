package enums

import "fmt"

// AdditionalSpace is an extra storage area included in the move besides
// the main living space.
type AdditionalSpace string

const (
	AdditionalSpaceLoft     AdditionalSpace = "loft"
	AdditionalSpaceGarage   AdditionalSpace = "garage"
	AdditionalSpaceShed     AdditionalSpace = "shed"
	AdditionalSpaceBasement AdditionalSpace = "basement"
	AdditionalSpaceGarden   AdditionalSpace = "garden"
)

var validAdditionalSpaces = []AdditionalSpace{
	AdditionalSpaceLoft,
	AdditionalSpaceGarage,
	AdditionalSpaceShed,
	AdditionalSpaceBasement,
	AdditionalSpaceGarden,
}

// String implements fmt.Stringer.
func (a AdditionalSpace) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AdditionalSpace.
func (a AdditionalSpace) IsValid() bool {
	for _, candidate := range validAdditionalSpaces {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAdditionalSpace converts raw input into an AdditionalSpace.
func ParseAdditionalSpace(value string) (AdditionalSpace, error) {
	for _, candidate := range validAdditionalSpaces {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid additional space %q", value)
}
