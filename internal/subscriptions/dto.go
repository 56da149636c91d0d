package subscriptions

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
)

var hundred = decimal.NewFromInt(100)

// SubscriptionDTO is the subscription payload returned to movers.
type SubscriptionDTO struct {
	ID                 uuid.UUID  `json:"id"`
	CompanyID          uuid.UUID  `json:"company_id"`
	Status             string     `json:"status"`
	MonthlyAmount      string     `json:"monthly_amount"`
	CurrencyCode       string     `json:"currency_code"`
	TrialEndsAt        *time.Time `json:"trial_ends_at,omitempty"`
	CurrentPeriodStart time.Time  `json:"current_period_start"`
	CurrentPeriodEnd   time.Time  `json:"current_period_end"`
	CanceledAt         *time.Time `json:"canceled_at,omitempty"`
	LastChargeError    *string    `json:"last_charge_error,omitempty"`
}

// NewSubscriptionDTO maps the persisted row onto the public DTO.
func NewSubscriptionDTO(sub *models.Subscription) *SubscriptionDTO {
	return &SubscriptionDTO{
		ID:                 sub.ID,
		CompanyID:          sub.CompanyID,
		Status:             sub.Status.String(),
		MonthlyAmount:      sub.MonthlyAmount.StringFixed(2),
		CurrencyCode:       sub.CurrencyCode,
		TrialEndsAt:        sub.TrialEndsAt,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
		CanceledAt:         sub.CanceledAt,
		LastChargeError:    sub.LastChargeError,
	}
}
