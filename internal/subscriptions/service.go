package subscriptions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	sq "github.com/square/square-go-sdk"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/outbox"
	"github.com/shiftsorted/shiftsorted-backend/pkg/square"
)

const billingPeriod = 30 * 24 * time.Hour

type subscriptionCharger interface {
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

// Service exposes the mover subscription lifecycle.
type Service interface {
	Get(ctx context.Context, companyID uuid.UUID) (*SubscriptionDTO, error)
	Start(ctx context.Context, input StartInput) (*SubscriptionDTO, error)
	Cancel(ctx context.Context, companyID uuid.UUID) (*SubscriptionDTO, error)
}

// StartInput carries what's needed to begin (or resume) a subscription.
type StartInput struct {
	CompanyID        uuid.UUID
	PaymentSourceID  string
	SquareCustomerID string
}

type service struct {
	repo    Repository
	tx      txRunner
	charger subscriptionCharger
	events  eventEmitter
	cfg     config.SubscriptionConfig
	logg    *logger.Logger
}

// NewService builds the subscription service.
func NewService(repo Repository, tx txRunner, charger subscriptionCharger, events eventEmitter, cfg config.SubscriptionConfig, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("subscription repository required")
	}
	if tx == nil {
		return nil, fmt.Errorf("transaction runner required")
	}
	if charger == nil {
		return nil, fmt.Errorf("subscription charger required")
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
		cfg:     cfg,
		logg:    logg,
	}, nil
}

// Get returns the company's subscription.
func (s *service) Get(ctx context.Context, companyID uuid.UUID) (*SubscriptionDTO, error) {
	if companyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company id is required")
	}
	sub, err := s.repo.FindByCompanyID(ctx, companyID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no subscription for this company")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading subscription")
	}
	return NewSubscriptionDTO(sub), nil
}

// Start begins the company's platform subscription. First-time
// subscribers get the configured trial; returning subscribers are
// charged the monthly amount up front. Activation flips the company's
// quote eligibility flag in the same transaction as the event.
func (s *service) Start(ctx context.Context, input StartInput) (*SubscriptionDTO, error) {
	if input.CompanyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company id is required")
	}

	existing, err := s.repo.FindByCompanyID(ctx, input.CompanyID)
	if err != nil && !db.IsNotFound(err) {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading subscription")
	}
	if existing != nil && existing.Status.IsBillable() {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "subscription already active")
	}

	now := time.Now()
	sub := existing
	if sub == nil {
		sub = &models.Subscription{CompanyID: input.CompanyID}
	}
	sub.MonthlyAmount = s.cfg.Monthly()
	sub.CurrencyCode = s.charger.Currency()
	sub.CanceledAt = nil
	sub.LastChargeError = nil

	trial := existing == nil && s.cfg.TrialDays > 0
	if trial {
		trialEnd := now.Add(time.Duration(s.cfg.TrialDays) * 24 * time.Hour)
		sub.Status = enums.SubscriptionStatusTrialing
		sub.TrialEndsAt = &trialEnd
		sub.CurrentPeriodStart = now
		sub.CurrentPeriodEnd = trialEnd
	} else {
		if strings.TrimSpace(input.PaymentSourceID) == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "payment source is required")
		}
		payment, chargeErr := s.charger.CreatePayment(ctx, square.PaymentCreateParams{
			AmountCents: sub.MonthlyAmount.Mul(hundred).IntPart(),
			Currency:    s.charger.Currency(),
			LocationID:  s.charger.LocationID(),
			CustomerID:  input.SquareCustomerID,
			SourceID:    input.PaymentSourceID,
			Note:        "ShiftSorted monthly subscription",
		})
		if chargeErr != nil {
			msg := chargeErr.Error()
			sub.Status = enums.SubscriptionStatusUnpaid
			sub.LastChargeError = &msg
			if err := s.repo.Save(ctx, sub); err != nil {
				s.logg.Error(ctx, "recording failed subscription charge", err)
			}
			return nil, chargeErr
		}
		sub.Status = enums.SubscriptionStatusActive
		sub.LastChargeID = payment.GetID()
		sub.CurrentPeriodStart = now
		sub.CurrentPeriodEnd = now.Add(billingPeriod)
	}

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Save(ctx, sub); err != nil {
			return err
		}
		if err := repo.SetCompanyActive(ctx, input.CompanyID, true); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventSubscriptionActivated,
			AggregateType: enums.OutboxAggregateSubscription,
			AggregateID:   sub.ID,
			Data:          NewSubscriptionDTO(sub),
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "activating subscription")
	}

	logCtx := s.logg.WithCompanyID(ctx, input.CompanyID.String())
	s.logg.Info(logCtx, "subscription started")

	return NewSubscriptionDTO(sub), nil
}

// Cancel ends the subscription at once and drops the company out of
// quote searches.
func (s *service) Cancel(ctx context.Context, companyID uuid.UUID) (*SubscriptionDTO, error) {
	if companyID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "company id is required")
	}

	sub, err := s.repo.FindByCompanyID(ctx, companyID)
	if err != nil {
		if db.IsNotFound(err) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no subscription for this company")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "loading subscription")
	}
	if sub.Status == enums.SubscriptionStatusCanceled {
		return nil, pkgerrors.New(pkgerrors.CodeConflict, "subscription already canceled")
	}

	now := time.Now()
	sub.Status = enums.SubscriptionStatusCanceled
	sub.CanceledAt = &now

	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		repo := s.repo.WithTx(tx)
		if err := repo.Save(ctx, sub); err != nil {
			return err
		}
		if err := repo.SetCompanyActive(ctx, companyID, false); err != nil {
			return err
		}
		return s.events.Emit(ctx, tx, outbox.DomainEvent{
			EventType:     enums.OutboxEventSubscriptionCanceled,
			AggregateType: enums.OutboxAggregateSubscription,
			AggregateID:   sub.ID,
			Data:          NewSubscriptionDTO(sub),
		})
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "canceling subscription")
	}

	logCtx := s.logg.WithCompanyID(ctx, companyID.String())
	s.logg.Info(logCtx, "subscription canceled")

	return NewSubscriptionDTO(sub), nil
}
