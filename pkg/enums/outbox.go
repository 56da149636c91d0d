package enums

import "fmt"

// OutboxEventType identifies a domain event queued for publication.
type OutboxEventType string

const (
	OutboxEventBookingCreated        OutboxEventType = "booking.created"
	OutboxEventBookingConfirmed      OutboxEventType = "booking.confirmed"
	OutboxEventSubscriptionActivated OutboxEventType = "subscription.activated"
	OutboxEventSubscriptionCanceled  OutboxEventType = "subscription.canceled"
)

var validOutboxEventTypes = []OutboxEventType{
	OutboxEventBookingCreated,
	OutboxEventBookingConfirmed,
	OutboxEventSubscriptionActivated,
	OutboxEventSubscriptionCanceled,
}

// String implements fmt.Stringer.
func (o OutboxEventType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OutboxEventType.
func (o OutboxEventType) IsValid() bool {
	for _, candidate := range validOutboxEventTypes {
		if candidate == o {
			return true
		}
	}
	return false
}

// ParseOutboxEventType converts raw input into an OutboxEventType.
func ParseOutboxEventType(value string) (OutboxEventType, error) {
	for _, candidate := range validOutboxEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid outbox event type %q", value)
}

// OutboxAggregateType names the aggregate an outbox event belongs to.
type OutboxAggregateType string

const (
	OutboxAggregateBooking      OutboxAggregateType = "booking"
	OutboxAggregateSubscription OutboxAggregateType = "subscription"
)

// String implements fmt.Stringer.
func (o OutboxAggregateType) String() string {
	return string(o)
}

// IsValid reports whether the value is a known OutboxAggregateType.
func (o OutboxAggregateType) IsValid() bool {
	return o == OutboxAggregateBooking || o == OutboxAggregateSubscription
}
