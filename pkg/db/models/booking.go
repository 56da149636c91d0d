package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// Booking is an accepted quote turned into a job for a company.
type Booking struct {
	ID             uuid.UUID           `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID      uuid.UUID           `gorm:"column:company_id;type:uuid;not null;index"`
	TransactionRef string              `gorm:"column:transaction_ref;not null;uniqueIndex"`
	Status         enums.BookingStatus `gorm:"column:status;type:booking_status;not null;default:'pending_deposit'"`
	PaymentStatus  enums.PaymentStatus `gorm:"column:payment_status;type:payment_status;not null;default:'unpaid'"`

	Customer          types.Contact `gorm:"column:customer;type:jsonb;not null"`
	CollectionAddress types.Address `gorm:"column:collection_address;type:jsonb;not null"`
	DeliveryAddress   types.Address `gorm:"column:delivery_address;type:jsonb;not null"`
	MoveDate          *time.Time    `gorm:"column:move_date"`

	TotalAmount       decimal.Decimal `gorm:"column:total_amount;type:numeric(12,2);not null"`
	DepositAmount     decimal.Decimal `gorm:"column:deposit_amount;type:numeric(12,2);not null"`
	DepositPercentage float64         `gorm:"column:deposit_percentage;type:numeric(5,2);not null"`

	// Itemized totals as sent to the customer, keyed by cost line.
	PriceBreakdown json.RawMessage `gorm:"column:price_breakdown;type:jsonb;not null"`
	// Normalized pricing request the quote was computed from.
	RequestSnapshot json.RawMessage `gorm:"column:request_snapshot;type:jsonb"`

	SquarePaymentID *string   `gorm:"column:square_payment_id"`
	CreatedAt       time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
