package subscriptions

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
)

// Repository exposes subscription persistence plus the company flag
// that gates quote eligibility.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByCompanyID(ctx context.Context, companyID uuid.UUID) (*models.Subscription, error)
	Save(ctx context.Context, sub *models.Subscription) error
	SetCompanyActive(ctx context.Context, companyID uuid.UUID, active bool) error
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a subscription repository backed by the provided DB.
func NewRepository(db *gorm.DB) Repository {
	if db == nil {
		return nil
	}
	return &repository{db: db}
}

func (r *repository) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repository{db: tx}
}

func (r *repository) FindByCompanyID(ctx context.Context, companyID uuid.UUID) (*models.Subscription, error) {
	var sub models.Subscription
	if err := r.db.WithContext(ctx).First(&sub, "company_id = ?", companyID).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// Save inserts the subscription on first use and updates it afterwards.
func (r *repository) Save(ctx context.Context, sub *models.Subscription) error {
	if sub.ID == uuid.Nil {
		return r.db.WithContext(ctx).Create(sub).Error
	}
	return r.db.WithContext(ctx).Save(sub).Error
}

// SetCompanyActive flips the denormalized subscription flag the quote
// search filters on.
func (r *repository) SetCompanyActive(ctx context.Context, companyID uuid.UUID, active bool) error {
	return r.db.WithContext(ctx).
		Model(&models.Company{}).
		Where("id = ?", companyID).
		Update("subscription_active", active).Error
}
