package enums

import "fmt"

// SortOrder controls the direction quote lists are ranked in.
type SortOrder string

const (
	SortOrderLowToHigh SortOrder = "low-to-high"
	SortOrderHighToLow SortOrder = "high-to-low"
)

var validSortOrders = []SortOrder{
	SortOrderLowToHigh,
	SortOrderHighToLow,
}

// String implements fmt.Stringer.
func (s SortOrder) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SortOrder.
func (s SortOrder) IsValid() bool {
	for _, candidate := range validSortOrders {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortOrder converts raw input into a SortOrder, defaulting to
// low-to-high for empty input.
func ParseSortOrder(value string) (SortOrder, error) {
	if value == "" {
		return SortOrderLowToHigh, nil
	}
	for _, candidate := range validSortOrders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort order %q", value)
}
