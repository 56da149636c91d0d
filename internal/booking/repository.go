package booking

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

// Repository exposes booking persistence.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, booking *models.Booking) error
	FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error)
	FindByTransactionRef(ctx context.Context, ref string) (*models.Booking, error)
	RecordPaymentResult(ctx context.Context, id uuid.UUID, status enums.BookingStatus, paymentStatus enums.PaymentStatus, squarePaymentID *string) error
	ListByCompany(ctx context.Context, companyID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Booking, error)
}

type repository struct {
	db *gorm.DB
}

// NewRepository builds a booking repository backed by the provided DB.
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

func (r *repository) Create(ctx context.Context, booking *models.Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) FindByTransactionRef(ctx context.Context, ref string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.db.WithContext(ctx).First(&booking, "transaction_ref = ?", ref).Error; err != nil {
		return nil, err
	}
	return &booking, nil
}

// RecordPaymentResult updates the booking after a deposit attempt.
func (r *repository) RecordPaymentResult(ctx context.Context, id uuid.UUID, status enums.BookingStatus, paymentStatus enums.PaymentStatus, squarePaymentID *string) error {
	updates := map[string]interface{}{
		"status":         status,
		"payment_status": paymentStatus,
	}
	if squarePaymentID != nil {
		updates["square_payment_id"] = *squarePaymentID
	}
	return r.db.WithContext(ctx).
		Model(&models.Booking{}).
		Where("id = ?", id).
		Updates(updates).Error
}

// ListByCompany pages through a company's bookings newest-first.
func (r *repository) ListByCompany(ctx context.Context, companyID uuid.UUID, cursor *pagination.Cursor, limit int) ([]models.Booking, error) {
	query := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit)
	if cursor != nil {
		query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
	}

	var rows []models.Booking
	err := query.Find(&rows).Error
	return rows, err
}
