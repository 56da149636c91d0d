package booking

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sq "github.com/square/square-go-sdk"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/metrics"
	"github.com/shiftsorted/shiftsorted-backend/pkg/outbox"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
	"github.com/shiftsorted/shiftsorted-backend/pkg/square"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

type depositCharger interface {
	CreatePayment(ctx context.Context, params square.PaymentCreateParams) (*sq.Payment, error)
	LocationID() string
	Currency() string
}

type eventEmitter interface {
	Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error
}

type txRunner interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}

// Service exposes the booking operations.
type Service interface {
	CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingDTO, error)
	GetByTransactionRef(ctx context.Context, ref string) (*BookingDTO, error)
	ListCompanyBookings(ctx context.Context, companyID uuid.UUID, params pagination.Params) (*BookingPage, error)
}

// CreateBookingInput carries everything needed to turn an accepted
// quote into a booking with a deposit charge.
type CreateBookingInput struct {
	Quote             pricing.Quote
	Request           pricing.PricingRequest
	Customer          types.Contact
	CollectionAddress types.Address
	DeliveryAddress   types.Address
	MoveDate          *time.Time
	PaymentSourceID   string
	SquareCustomerID  string
}

type service struct {
	repo    Repository
	tx      txRunner
	charger depositCharger
	events  eventEmitter
	metrics *metrics.PipelineMetrics
	logg    *logger.Logger
}

// NewService builds the booking service.
func NewService(repo Repository, tx txRunner, charger depositCharger, events eventEmitter, m *metrics.PipelineMetrics, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("booking repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if charger == nil {
		return nil, fmt.Errorf("deposit charger required")
	}
	if events == nil {
		return nil, fmt.Errorf("event emitter required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{
		repo:    repo,
		tx:      tx,
		charger: charger,
		events:  events,
		metrics: m,
		logg:    logg,
	}, nil
}

// CreateBooking composes the deposit payload, persists the booking with
// a booking.created event in one transaction, then charges the deposit.
// A failed charge leaves the booking behind as pending_deposit/failed so
// the customer can retry with a fresh attempt.
func (s *service) CreateBooking(ctx context.Context, input CreateBookingInput) (*BookingDTO, error) {
	if err := validateCreateInput(input); err != nil {
		return nil, err
	}

	payload := ComposeBooking(input.Quote, input.Customer)

	breakdownJSON, err := json.Marshal(payload.PriceBreakdown)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding price breakdown")
	}
	snapshotJSON, err := json.Marshal(input.Request)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "encoding request snapshot")
	}

	row := &models.Booking{
		CompanyID:         input.Quote.CompanyID,
		TransactionRef:    payload.TransactionRef,
		Status:            enums.BookingStatusPendingDeposit,
		PaymentStatus:     enums.PaymentStatusUnpaid,
		Customer:          input.Customer,
		CollectionAddress: input.CollectionAddress,
		DeliveryAddress:   input.DeliveryAddress,
		MoveDate:          input.MoveDate,
		TotalAmount:       payload.TotalAmount,
		DepositAmount:     payload.DepositAmount,
		DepositPercentage: payload.DepositPercentage,
		PriceBreakdown:    breakdownJSON,
		RequestSnapshot:   snapshotJSON,
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if err := s.repo.WithTx(tx).Create(ctx, row); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventBookingCreated,
			AggregateType: enums.OutboxAggregateBooking,
			AggregateID:   row.ID,
			Data:          payload,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persisting booking")
	}

	logCtx := s.logg.WithFields(ctx, map[string]any{
		"booking_id":        row.ID.String(),
		"transaction_ref":   payload.TransactionRef,
		"deposit_amount":    payload.DepositAmount.StringFixed(2),
		"deposit_defaulted": payload.DepositDefaulted,
	})
	if payload.DepositDefaulted {
		s.logg.Warn(logCtx, "deposit percentage missing, default applied")
	}

	payment, chargeErr := s.charger.CreatePayment(ctx, square.PaymentCreateParams{
		AmountCents: payload.DepositAmount.Mul(hundred).IntPart(),
		Currency:    s.charger.Currency(),
		LocationID:  s.charger.LocationID(),
		CustomerID:  input.SquareCustomerID,
		SourceID:    input.PaymentSourceID,
		ReferenceID: payload.TransactionRef,
		Note:        fmt.Sprintf("Deposit for move booking %s", payload.TransactionRef),
	})
	if chargeErr != nil {
		s.metrics.IncDepositFailures()
		s.metrics.IncBookingsCreated(enums.PaymentStatusFailed.String())
		if err := s.repo.RecordPaymentResult(ctx, row.ID, enums.BookingStatusPendingDeposit, enums.PaymentStatusFailed, nil); err != nil {
			s.logg.Error(logCtx, "recording failed deposit", err)
		}
		return nil, chargeErr
	}

	paymentID := paymentIdentifier(payment)
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.RecordPaymentResult(ctx, row.ID, enums.BookingStatusConfirmed, enums.PaymentStatusPaid, paymentID); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventBookingConfirmed,
			AggregateType: enums.OutboxAggregateBooking,
			AggregateID:   row.ID,
			Data:          payload,
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "confirming booking")
	}

	row.Status = enums.BookingStatusConfirmed
	row.PaymentStatus = enums.PaymentStatusPaid
	row.SquarePaymentID = paymentID

	s.metrics.IncBookingsCreated(enums.PaymentStatusPaid.String())
	s.logg.Info(logCtx, "booking confirmed")

	return NewBookingDTO(row, &payload), nil
}

// GetByTransactionRef returns the booking behind a customer reference.
func (s *service) GetByTransactionRef(ctx context.Context, ref string) (*BookingDTO, error) {
	if strings.TrimSpace(ref) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "transaction_ref is required")
	}
	row, err := s.repo.FindByTransactionRef(ctx, ref)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading booking")
	}
	return NewBookingDTO(row, nil), nil
}

// ListCompanyBookings pages through a company's bookings newest-first.
func (s *service) ListCompanyBookings(ctx context.Context, companyID uuid.UUID, params pagination.Params) (*BookingPage, error) {
	if companyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company id is required")
	}
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	limit := pagination.NormalizeLimit(params.Limit)
	rows, err := s.repo.ListByCompany(ctx, companyID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing bookings")
	}

	page := &BookingPage{Bookings: make([]BookingDTO, 0, len(rows))}
	if len(rows) > limit {
		last := rows[limit-1]
		page.NextCursor = pagination.EncodeCursor(pagination.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
		rows = rows[:limit]
	}
	for i := range rows {
		page.Bookings = append(page.Bookings, *NewBookingDTO(&rows[i], nil))
	}
	return page, nil
}

func validateCreateInput(input CreateBookingInput) error {
	if input.Quote.CompanyID == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote company id is required")
	}
	if !input.Quote.FinalTotal.IsPositive() {
		return pkgerrors.New(pkgerrors.CodeValidation, "quote total must be positive")
	}
	if strings.TrimSpace(input.Customer.Email) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "customer email is required")
	}
	if strings.TrimSpace(input.PaymentSourceID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "payment source is required")
	}
	if types.OutwardCode(input.CollectionAddress.Pincode) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "collection address pincode is required")
	}
	if types.OutwardCode(input.DeliveryAddress.Pincode) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "delivery address pincode is required")
	}
	return nil
}

func paymentIdentifier(payment *sq.Payment) *string {
	if payment == nil {
		return nil
	}
	return payment.GetID()
}
