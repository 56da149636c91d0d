package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CompanyRate holds a company's rate card, one row per company. Zero
// rates fall back to the platform policy defaults at quote time.
type CompanyRate struct {
	ID                   uuid.UUID       `gorm:"type:uuid;default:gen_random_uuid();primaryKey"`
	CompanyID            uuid.UUID       `gorm:"column:company_id;type:uuid;not null;uniqueIndex"`
	LoadingRatePerVan    decimal.Decimal `gorm:"column:loading_rate_per_van;type:numeric(12,2);not null;default:0"`
	MileageRatePerMile   decimal.Decimal `gorm:"column:mileage_rate_per_mile;type:numeric(12,2);not null;default:0"`
	PackingRatePerM3     decimal.Decimal `gorm:"column:packing_rate_per_m3;type:numeric(12,2);not null;default:0"`
	DismantlingRatePerM3 decimal.Decimal `gorm:"column:dismantling_rate_per_m3;type:numeric(12,2);not null;default:0"`
	ReassemblyRatePerM3  decimal.Decimal `gorm:"column:reassembly_rate_per_m3;type:numeric(12,2);not null;default:0"`
	DepositPercentage    *float64        `gorm:"column:deposit_percentage;type:numeric(5,2)"`
	CreatedAt            time.Time       `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt            time.Time       `gorm:"column:updated_at;autoUpdateTime"`
}
