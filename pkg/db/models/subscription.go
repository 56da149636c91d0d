package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
)

// Subscription tracks a company's platform membership billing state.
type Subscription struct {
	ID                 uuid.UUID                `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID          uuid.UUID                `gorm:"column:company_id;type:uuid;not null;uniqueIndex"`
	Status             enums.SubscriptionStatus `gorm:"column:status;type:subscription_status;not null;default:'trialing'"`
	MonthlyAmount      decimal.Decimal          `gorm:"column:monthly_amount;type:numeric(12,2);not null"`
	CurrencyCode       string                   `gorm:"column:currency_code;not null;default:'GBP'"`
	TrialEndsAt        *time.Time               `gorm:"column:trial_ends_at"`
	CurrentPeriodStart time.Time                `gorm:"column:current_period_start;not null"`
	CurrentPeriodEnd   time.Time                `gorm:"column:current_period_end;not null"`
	CanceledAt         *time.Time               `gorm:"column:canceled_at"`
	LastChargeID       *string                  `gorm:"column:last_charge_id"`
	LastChargeError    *string                  `gorm:"column:last_charge_error"`
	CreatedAt          time.Time                `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time                `gorm:"column:updated_at;autoUpdateTime"`
}
