package enums

import "fmt"

// BookingStatus tracks the lifecycle of a customer booking.
type BookingStatus string

const (
	BookingStatusPendingDeposit BookingStatus = "pending_deposit"
	BookingStatusConfirmed      BookingStatus = "confirmed"
	BookingStatusCanceled       BookingStatus = "canceled"
	BookingStatusCompleted      BookingStatus = "completed"
)

var validBookingStatuses = []BookingStatus{
	BookingStatusPendingDeposit,
	BookingStatusConfirmed,
	BookingStatusCanceled,
	BookingStatusCompleted,
}

// String implements fmt.Stringer.
func (b BookingStatus) String() string {
	return string(b)
}

// IsValid reports whether the value is a known BookingStatus.
func (b BookingStatus) IsValid() bool {
	for _, candidate := range validBookingStatuses {
		if candidate == b {
			return true
		}
	}
	return false
}

// ParseBookingStatus converts raw input into a BookingStatus.
func ParseBookingStatus(value string) (BookingStatus, error) {
	for _, candidate := range validBookingStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid booking status %q", value)
}
