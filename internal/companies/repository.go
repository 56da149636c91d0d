package companies

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

// Repository wires together company persistence helpers.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

// FindByID loads the company without associations.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var company models.Company
	if err := r.db.WithContext(ctx).First(&company, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &company, nil
}

// Create persists a new company.
func (r *Repository) Create(ctx context.Context, company *models.Company) error {
	return r.db.WithContext(ctx).Create(company).Error
}

// ListActiveServing returns active, subscribed companies whose coverage
// includes the pincode prefix.
func (r *Repository) ListActiveServing(ctx context.Context, pincodePrefix string) ([]models.Company, error) {
	var rows []models.Company
	err := r.db.WithContext(ctx).
		Where("is_active = ? AND subscription_active = ?", true, true).
		Where("? = ANY(coverage_prefixes)", pincodePrefix).
		Order("created_at ASC").
		Order("id ASC").
		Find(&rows).Error
	return rows, err
}

// RatesByCompanyIDs loads the rate cards for the given companies keyed by company.
func (r *Repository) RatesByCompanyIDs(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.CompanyRate, error) {
	result := make(map[uuid.UUID]models.CompanyRate, len(ids))
	if len(ids) == 0 {
		return result, nil
	}
	var rows []models.CompanyRate
	if err := r.db.WithContext(ctx).Where("company_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		result[row.CompanyID] = row
	}
	return result, nil
}

// List pages through active companies newest-first using the cursor.
func (r *Repository) List(ctx context.Context, cursor *pagination.Cursor, limit int) ([]models.Company, error) {
	query := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Company
	err := query.Find(&rows).Error
	return rows, err
}

// UpsertRates inserts or replaces a company's rate card.
func (r *Repository) UpsertRates(ctx context.Context, rate *models.CompanyRate) error {
	tx := r.db.WithContext(ctx)
	var existing models.CompanyRate
	err := tx.First(&existing, "company_id = ?", rate.CompanyID).Error
	if err == gorm.ErrRecordNotFound {
		return tx.Create(rate).Error
	}
	if err != nil {
		return err
	}
	rate.ID = existing.ID
	rate.CreatedAt = existing.CreatedAt
	return tx.Save(rate).Error
}
