package enums

import "fmt"

// NoticePeriod is how far ahead of the move date the booking is made.
type NoticePeriod string

const (
	NoticePeriodUnderWeek   NoticePeriod = "under_week"
	NoticePeriodOneTwoWeeks NoticePeriod = "one_two_weeks"
	NoticePeriodTwoFourWeek NoticePeriod = "two_four_weeks"
	NoticePeriodOverMonth   NoticePeriod = "over_month"
)

var validNoticePeriods = []NoticePeriod{
	NoticePeriodUnderWeek,
	NoticePeriodOneTwoWeeks,
	NoticePeriodTwoFourWeek,
	NoticePeriodOverMonth,
}

// String implements fmt.Stringer.
func (n NoticePeriod) String() string {
	return string(n)
}

// IsValid reports whether the value is a known NoticePeriod.
func (n NoticePeriod) IsValid() bool {
	for _, candidate := range validNoticePeriods {
		if candidate == n {
			return true
		}
	}
	return false
}

// ParseNoticePeriod converts raw input into a NoticePeriod.
func ParseNoticePeriod(value string) (NoticePeriod, error) {
	for _, candidate := range validNoticePeriods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid notice period %q", value)
}
