package booking

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

func setupBookingTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)

	schema := `
CREATE TABLE IF NOT EXISTS bookings (
  id TEXT PRIMARY KEY,
  company_id TEXT NOT NULL,
  transaction_ref TEXT NOT NULL UNIQUE,
  status TEXT NOT NULL DEFAULT 'pending_deposit',
  payment_status TEXT NOT NULL DEFAULT 'unpaid',
  customer TEXT NOT NULL,
  collection_address TEXT NOT NULL,
  delivery_address TEXT NOT NULL,
  move_date DATETIME,
  total_amount TEXT NOT NULL,
  deposit_amount TEXT NOT NULL,
  deposit_percentage REAL NOT NULL,
  price_breakdown TEXT NOT NULL,
  request_snapshot TEXT,
  square_payment_id TEXT,
  created_at DATETIME,
  updated_at DATETIME
);`
	require.NoError(t, db.Exec(schema).Error)
	return db
}

func testBooking(companyID uuid.UUID, ref string, createdAt time.Time) *models.Booking {
	return &models.Booking{
		ID:             uuid.New(),
		CompanyID:      companyID,
		TransactionRef: ref,
		Status:         enums.BookingStatusPendingDeposit,
		PaymentStatus:  enums.PaymentStatusUnpaid,
		Customer: types.Contact{
			FirstName: "Ada",
			LastName:  "Price",
			Email:     "ada@example.com",
		},
		CollectionAddress: types.Address{Pincode: "SW1A 1AA"},
		DeliveryAddress:   types.Address{Pincode: "M1 1AE"},
		TotalAmount:       decimal.NewFromInt(1200),
		DepositAmount:     decimal.NewFromInt(180),
		DepositPercentage: 15,
		PriceBreakdown:    json.RawMessage(`{"loading":"900.00"}`),
		CreatedAt:         createdAt,
	}
}

func TestRepositoryCreateAndFind(t *testing.T) {
	repo := NewRepository(setupBookingTestDB(t))
	ctx := context.Background()

	row := testBooking(uuid.New(), "SS-20260101093000abcd", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, row))

	found, err := repo.FindByTransactionRef(ctx, row.TransactionRef)
	require.NoError(t, err)
	assert.Equal(t, row.ID, found.ID)
	assert.Equal(t, "ada@example.com", found.Customer.Email)
	assert.True(t, found.TotalAmount.Equal(decimal.NewFromInt(1200)))

	byID, err := repo.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, row.TransactionRef, byID.TransactionRef)
}

func TestRepositoryFindMissingRef(t *testing.T) {
	repo := NewRepository(setupBookingTestDB(t))

	_, err := repo.FindByTransactionRef(context.Background(), "SS-unknown")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRepositoryRecordPaymentResult(t *testing.T) {
	repo := NewRepository(setupBookingTestDB(t))
	ctx := context.Background()

	row := testBooking(uuid.New(), "SS-20260101093000bcde", time.Now().UTC())
	require.NoError(t, repo.Create(ctx, row))

	paymentID := "sq-payment-123"
	require.NoError(t, repo.RecordPaymentResult(ctx, row.ID, enums.BookingStatusConfirmed, enums.PaymentStatusPaid, &paymentID))

	found, err := repo.FindByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, enums.BookingStatusConfirmed, found.Status)
	assert.Equal(t, enums.PaymentStatusPaid, found.PaymentStatus)
	require.NotNil(t, found.SquarePaymentID)
	assert.Equal(t, paymentID, *found.SquarePaymentID)
}

func TestRepositoryListByCompanyPaginates(t *testing.T) {
	repo := NewRepository(setupBookingTestDB(t))
	ctx := context.Background()

	companyID := uuid.New()
	base := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	refs := []string{"SS-a", "SS-b", "SS-c"}
	for i, ref := range refs {
		row := testBooking(companyID, ref, base.Add(time.Duration(i)*time.Hour))
		require.NoError(t, repo.Create(ctx, row))
	}
	other := testBooking(uuid.New(), "SS-other", base)
	require.NoError(t, repo.Create(ctx, other))

	first, err := repo.ListByCompany(ctx, companyID, nil, 2)
	require.NoError(t, err)
	require.Len(t, first, 2)
	assert.Equal(t, "SS-c", first[0].TransactionRef)
	assert.Equal(t, "SS-b", first[1].TransactionRef)

	cursor := &pagination.Cursor{CreatedAt: first[1].CreatedAt, ID: first[1].ID}
	rest, err := repo.ListByCompany(ctx, companyID, cursor, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "SS-a", rest[0].TransactionRef)
}
