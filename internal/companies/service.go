package companies

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

type companyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error)
	ListActiveServing(ctx context.Context, pincodePrefix string) ([]models.Company, error)
	RatesByCompanyIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.CompanyRate, error)
	List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Company, error)
	UpsertRates(ctx context.Context, rate *models.CompanyRate) error
}

// Service exposes the company directory operations.
type Service interface {
	CompaniesServing(ctx context.Context, pincodePrefix string) ([]pricing.CompanyInput, error)
	GetCompany(ctx context.Context, id uuid.UUID) (*CompanyDTO, error)
	ListCompanies(ctx context.Context, params pagination.Params) (*CompanyPage, error)
	UpdateRates(ctx context.Context, companyID uuid.UUID, input UpdateRatesInput) (*RateCardDTO, error)
}

type service struct {
	repo companyRepository
	logg *logger.Logger
}

// NewService builds the company directory service.
func NewService(repo companyRepository, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("company repository required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, logg: logg}, nil
}

// CompaniesServing loads the active, subscribed companies covering the
// pincode prefix and joins in their rate cards for the quote engine.
func (s *service) CompaniesServing(ctx context.Context, pincodePrefix string) ([]pricing.CompanyInput, error) {
	if pincodePrefix == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "pincode prefix is required")
	}

	rows, err := s.repo.ListActiveServing(ctx, pincodePrefix)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing companies by coverage")
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ID)
	}
	rates, err := s.repo.RatesByCompanyIDs(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading company rate cards")
	}

	inputs := make([]pricing.CompanyInput, 0, len(rows))
	for _, row := range rows {
		inputs = append(inputs, toCompanyInput(row, rates[row.ID]))
	}
	return inputs, nil
}

// GetCompany returns the public company profile with its rate card.
func (s *service) GetCompany(ctx context.Context, id uuid.UUID) (*CompanyDTO, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "company not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading company")
	}

	rates, err := s.repo.RatesByCompanyIDs(ctx, []uuid.UUID{company.ID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading company rate card")
	}
	var rate *models.CompanyRate
	if row, ok := rates[company.ID]; ok {
		rate = &row
	}
	return NewCompanyDTO(company, rate), nil
}

// ListCompanies pages through active companies newest-first.
func (s *service) ListCompanies(ctx context.Context, params pagination.Params) (*CompanyPage, error) {
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.List(ctx, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing companies")
	}

	page := &CompanyPage{Companies: make([]CompanyDTO, 0, len(rows))}
	if len(rows) > limit {
		last := rows[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		rows = rows[:limit]
	}
	for i := range rows {
		page.Companies = append(page.Companies, *NewCompanyDTO(&rows[i], nil))
	}
	return page, nil
}

// UpdateRates applies a partial rate card update for the company. Nil
// fields keep their current value; a missing rate row is created.
func (s *service) UpdateRates(ctx context.Context, companyID uuid.UUID, input UpdateRatesInput) (*RateCardDTO, error) {
	if companyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company id is required")
	}
	if err := validateRates(input); err != nil {
		return nil, err
	}

	if _, err := s.repo.FindByID(ctx, companyID); err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "company not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading company")
	}

	rates, err := s.repo.RatesByCompanyIDs(ctx, []uuid.UUID{companyID})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading company rate card")
	}

	rate := rates[companyID]
	rate.CompanyID = companyID
	if input.LoadingRatePerVan != nil {
		rate.LoadingRatePerVan = *input.LoadingRatePerVan
	}
	if input.MileageRatePerMile != nil {
		rate.MileageRatePerMile = *input.MileageRatePerMile
	}
	if input.PackingRatePerM3 != nil {
		rate.PackingRatePerM3 = *input.PackingRatePerM3
	}
	if input.DismantlingRatePerM3 != nil {
		rate.DismantlingRatePerM3 = *input.DismantlingRatePerM3
	}
	if input.ReassemblyRatePerM3 != nil {
		rate.ReassemblyRatePerM3 = *input.ReassemblyRatePerM3
	}
	if input.DepositPercentage != nil {
		pct := *input.DepositPercentage
		rate.DepositPercentage = &pct
	}

	if err := s.repo.UpsertRates(ctx, &rate); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "saving company rate card")
	}

	logCtx := s.logg.WithCompanyID(ctx, companyID.String())
	s.logg.Info(logCtx, "company rate card updated")

	dto := NewCompanyDTO(&models.Company{ID: companyID}, &rate)
	return dto.Rates, nil
}

func validateRates(input UpdateRatesInput) error {
	if pct := input.DepositPercentage; pct != nil && (*pct < 0 || *pct > 100) {
		return pkgerrors.New(pkgerrors.CodeValidation, "deposit_percentage must be between 0 and 100")
	}
	for field, value := range map[string]*decimal.Decimal{
		"loading_rate_per_van":    input.LoadingRatePerVan,
		"mileage_rate_per_mile":   input.MileageRatePerMile,
		"packing_rate_per_m3":     input.PackingRatePerM3,
		"dismantling_rate_per_m3": input.DismantlingRatePerM3,
		"reassembly_rate_per_m3":  input.ReassemblyRatePerM3,
	} {
		if value != nil && value.IsNegative() {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("%s cannot be negative", field))
		}
	}
	return nil
}
