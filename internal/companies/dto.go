package companies

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

// CompanyDTO is the public company payload returned to clients.
type CompanyDTO struct {
	ID               uuid.UUID     `json:"id"`
	Name             string        `json:"name"`
	Description      *string       `json:"description,omitempty"`
	Phone            *string       `json:"phone,omitempty"`
	Email            *string       `json:"email,omitempty"`
	Address          types.Address `json:"address"`
	CoveragePrefixes []string      `json:"coverage_prefixes"`
	Includes         []string      `json:"includes"`
	Protection       []string      `json:"protection"`
	Materials        []string      `json:"materials"`
	Furniture        []string      `json:"furniture"`
	Appliances       []string      `json:"appliances"`
	Gallery          []string      `json:"gallery"`
	Rates            *RateCardDTO  `json:"rates,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at"`
}

// RateCardDTO exposes a company's rate card. Rates are decimal strings
// so clients never see float artifacts.
type RateCardDTO struct {
	LoadingRatePerVan    string   `json:"loading_rate_per_van"`
	MileageRatePerMile   string   `json:"mileage_rate_per_mile"`
	PackingRatePerM3     string   `json:"packing_rate_per_m3"`
	DismantlingRatePerM3 string   `json:"dismantling_rate_per_m3"`
	ReassemblyRatePerM3  string   `json:"reassembly_rate_per_m3"`
	DepositPercentage    *float64 `json:"deposit_percentage,omitempty"`
	UpdatedAt            time.Time `json:"updated_at"`
}

// NewCompanyDTO builds a DTO from the persisted model, optionally
// attaching the rate card when one exists.
func NewCompanyDTO(company *models.Company, rate *models.CompanyRate) *CompanyDTO {
	dto := &CompanyDTO{
		ID:               company.ID,
		Name:             company.Name,
		Description:      company.Description,
		Phone:            company.Phone,
		Email:            company.Email,
		Address:          company.Address,
		CoveragePrefixes: append([]string{}, company.CoveragePrefixes...),
		Includes:         append([]string{}, company.Includes...),
		Protection:       append([]string{}, company.Protection...),
		Materials:        append([]string{}, company.Materials...),
		Furniture:        append([]string{}, company.Furniture...),
		Appliances:       append([]string{}, company.Appliances...),
		Gallery:          append([]string{}, company.Gallery...),
		CreatedAt:        company.CreatedAt,
		UpdatedAt:        company.UpdatedAt,
	}
	if rate != nil {
		dto.Rates = &RateCardDTO{
			LoadingRatePerVan:    rate.LoadingRatePerVan.StringFixed(2),
			MileageRatePerMile:   rate.MileageRatePerMile.StringFixed(2),
			PackingRatePerM3:     rate.PackingRatePerM3.StringFixed(2),
			DismantlingRatePerM3: rate.DismantlingRatePerM3.StringFixed(2),
			ReassemblyRatePerM3:  rate.ReassemblyRatePerM3.StringFixed(2),
			DepositPercentage:    rate.DepositPercentage,
			UpdatedAt:            rate.UpdatedAt,
		}
	}
	return dto
}

// CompanyPage is one page of companies plus the cursor for the next.
type CompanyPage struct {
	Companies  []CompanyDTO `json:"companies"`
	NextCursor string       `json:"next_cursor,omitempty"`
}

// toCompanyInput shapes a company and its rate card into the pricing
// engine's input. A missing rate row leaves every rate zero, which the
// engine treats as "fall back to policy".
func toCompanyInput(company models.Company, rate models.CompanyRate) pricing.CompanyInput {
	return pricing.CompanyInput{
		ID:   company.ID,
		Name: company.Name,
		Rates: pricing.RateCard{
			LoadingRatePerVan:    rate.LoadingRatePerVan,
			MileageRatePerMile:   rate.MileageRatePerMile,
			PackingRatePerM3:     rate.PackingRatePerM3,
			DismantlingRatePerM3: rate.DismantlingRatePerM3,
			ReassemblyRatePerM3:  rate.ReassemblyRatePerM3,
			DepositPercentage:    rate.DepositPercentage,
		},
		Metadata: pricing.QuoteMetadata{
			Includes:   append([]string{}, company.Includes...),
			Protection: append([]string{}, company.Protection...),
			Materials:  append([]string{}, company.Materials...),
			Furniture:  append([]string{}, company.Furniture...),
			Appliances: append([]string{}, company.Appliances...),
			Gallery:    append([]string{}, company.Gallery...),
		},
	}
}

// UpdateRatesInput carries the editable rate card fields. Nil fields
// are left unchanged.
type UpdateRatesInput struct {
	LoadingRatePerVan    *decimal.Decimal
	MileageRatePerMile   *decimal.Decimal
	PackingRatePerM3     *decimal.Decimal
	DismantlingRatePerM3 *decimal.Decimal
	ReassemblyRatePerM3  *decimal.Decimal
	DepositPercentage    *float64
}
