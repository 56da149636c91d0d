package movers

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
)

// Repository wires together mover account persistence helpers.
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

// Create persists a new mover user.
func (r *Repository) Create(ctx context.Context, user *models.MoverUser) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// FindByID loads a mover user.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.MoverUser, error) {
	var user models.MoverUser
	if err := r.db.WithContext(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail loads a mover user by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*models.MoverUser, error) {
	var user models.MoverUser
	normalized := strings.ToLower(strings.TrimSpace(email))
	if err := r.db.WithContext(ctx).First(&user, "email = ?", normalized).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// CreateCompanyAndOwner persists a new company and its owner account
// atomically.
func (r *Repository) CreateCompanyAndOwner(ctx context.Context, company *models.Company, owner *models.MoverUser) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(company).Error; err != nil {
			return err
		}
		owner.CompanyID = company.ID
		return tx.Create(owner).Error
	})
}

// UpdateLastLogin stamps the user's last successful login.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.db.WithContext(ctx).
		Model(&models.MoverUser{}).
		Where("id = ?", id).
		Update("last_logged_in_at", at).Error
}
