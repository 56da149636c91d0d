package enums

import "fmt"

// MoveDay is the customer's preferred kind of move day.
type MoveDay string

const (
	MoveDayWeekday  MoveDay = "weekday"
	MoveDayWeekend  MoveDay = "weekend"
	MoveDayFlexible MoveDay = "flexible"
)

var validMoveDays = []MoveDay{
	MoveDayWeekday,
	MoveDayWeekend,
	MoveDayFlexible,
}

// String implements fmt.Stringer.
func (m MoveDay) String() string {
	return string(m)
}

// IsValid reports whether the value is a known MoveDay.
func (m MoveDay) IsValid() bool {
	for _, candidate := range validMoveDays {
		if candidate == m {
			return true
		}
	}
	return false
}

// ParseMoveDay converts raw input into a MoveDay.
func ParseMoveDay(value string) (MoveDay, error) {
	for _, candidate := range validMoveDays {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid move day %q", value)
}
