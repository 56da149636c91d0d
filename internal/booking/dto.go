package booking

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// BookingDTO is the booking payload returned to clients.
type BookingDTO struct {
	ID                uuid.UUID       `json:"id"`
	CompanyID         uuid.UUID       `json:"company_id"`
	TransactionRef    string          `json:"transaction_ref"`
	Status            string          `json:"status"`
	PaymentStatus     string          `json:"payment_status"`
	Customer          types.Contact   `json:"customer"`
	CollectionAddress types.Address   `json:"collection_address"`
	DeliveryAddress   types.Address   `json:"delivery_address"`
	MoveDate          *time.Time      `json:"move_date,omitempty"`
	TotalAmount       string          `json:"total_amount"`
	DepositAmount     string          `json:"deposit_amount"`
	DepositPercentage float64         `json:"deposit_percentage"`
	DepositDefaulted  bool            `json:"deposit_defaulted,omitempty"`
	PriceBreakdown    json.RawMessage `json:"price_breakdown"`
	CreatedAt         time.Time       `json:"created_at"`
}

// BookingPage is one page of bookings plus the cursor for the next.
type BookingPage struct {
	Bookings   []BookingDTO `json:"bookings"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// NewBookingDTO builds a DTO from the persisted row. The payload is
// only available on the create path; reads leave DepositDefaulted
// unset since the flag is per-attempt, not stored.
func NewBookingDTO(row *models.Booking, payload *Payload) *BookingDTO {
	dto := &BookingDTO{
		ID:                row.ID,
		CompanyID:         row.CompanyID,
		TransactionRef:    row.TransactionRef,
		Status:            row.Status.String(),
		PaymentStatus:     row.PaymentStatus.String(),
		Customer:          row.Customer,
		CollectionAddress: row.CollectionAddress,
		DeliveryAddress:   row.DeliveryAddress,
		MoveDate:          row.MoveDate,
		TotalAmount:       row.TotalAmount.StringFixed(2),
		DepositAmount:     row.DepositAmount.StringFixed(2),
		DepositPercentage: row.DepositPercentage,
		PriceBreakdown:    row.PriceBreakdown,
		CreatedAt:         row.CreatedAt,
	}
	if payload != nil {
		dto.DepositDefaulted = payload.DepositDefaulted
	}
	return dto
}
