package enums

import "fmt"

// PropertyType classifies the property being moved from or to.
type PropertyType string

const (
	PropertyTypeHouse     PropertyType = "house"
	PropertyTypeFlat      PropertyType = "flat"
	PropertyTypeBungalow  PropertyType = "bungalow"
	PropertyTypeTownHouse PropertyType = "town_house"
	PropertyTypeOffice    PropertyType = "office"
	PropertyTypeFewItems  PropertyType = "a_few_items"
)

var validPropertyTypes = []PropertyType{
	PropertyTypeHouse,
	PropertyTypeFlat,
	PropertyTypeBungalow,
	PropertyTypeTownHouse,
	PropertyTypeOffice,
	PropertyTypeFewItems,
}

// String implements fmt.Stringer.
func (p PropertyType) String() string {
	return string(p)
}

// IsValid reports whether the value is a known PropertyType.
func (p PropertyType) IsValid() bool {
	for _, candidate := range validPropertyTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// IsHouseLike reports whether the property uses the floor-count access
// vocabulary rather than the flat/office one.
func (p PropertyType) IsHouseLike() bool {
	switch p {
	case PropertyTypeHouse, PropertyTypeBungalow, PropertyTypeTownHouse:
		return true
	}
	return false
}

// ParsePropertyType converts raw input into a PropertyType.
func ParsePropertyType(value string) (PropertyType, error) {
	for _, candidate := range validPropertyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property type %q", value)
}
