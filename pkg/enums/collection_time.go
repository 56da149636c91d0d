package enums

import "fmt"

// CollectionTime is the preferred collection slot on move day.
type CollectionTime string

const (
	CollectionTimeMorning   CollectionTime = "morning"
	CollectionTimeAfternoon CollectionTime = "afternoon"
	CollectionTimeFlexible  CollectionTime = "flexible"
)

var validCollectionTimes = []CollectionTime{
	CollectionTimeMorning,
	CollectionTimeAfternoon,
	CollectionTimeFlexible,
}

// String implements fmt.Stringer.
func (c CollectionTime) String() string {
	return string(c)
}

// IsValid reports whether the value is a known CollectionTime.
func (c CollectionTime) IsValid() bool {
	for _, candidate := range validCollectionTimes {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCollectionTime converts raw input into a CollectionTime.
func ParseCollectionTime(value string) (CollectionTime, error) {
	for _, candidate := range validCollectionTimes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid collection time %q", value)
}
