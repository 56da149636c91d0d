package subscriptions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	sq "github.com/square/square-go-sdk"
	"gorm.io/gorm"

	"github.com/shiftsorted/shiftsorted-backend/pkg/config"
	"github.com/shiftsorted/shiftsorted-backend/pkg/db/models"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/outbox"
	"github.com/shiftsorted/shiftsorted-backend/pkg/square"
)

type stubRepo struct {
	byCompany   map[uuid.UUID]*models.Subscription
	companyFlag map[uuid.UUID]bool
}

func newStubRepo() *stubRepo {
	return &stubRepo{
		byCompany:   map[uuid.UUID]*models.Subscription{},
		companyFlag: map[uuid.UUID]bool{},
	}
}

func (s *stubRepo) WithTx(tx *gorm.DB) Repository { return s }

func (s *stubRepo) FindByCompanyID(ctx context.Context, companyID uuid.UUID) (*models.Subscription, error) {
	if sub, ok := s.byCompany[companyID]; ok {
		copied := *sub
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *stubRepo) Save(ctx context.Context, sub *models.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	copied := *sub
	s.byCompany[sub.CompanyID] = &copied
	return nil
}

func (s *stubRepo) SetCompanyActive(ctx context.Context, companyID uuid.UUID, active bool) error {
	s.companyFlag[companyID] = active
	return nil
}

type stubTx struct{}

func (stubTx) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(&gorm.DB{})
}

type stubCharger struct {
	params []square.PaymentCreateParams
	err    error
}

func (s *stubCharger) CreatePayment(ctx context.Context, params square.PaymentCreateParams) (*sq.Payment, error) {
	s.params = append(s.params, params)
	if s.err != nil {
		return nil, s.err
	}
	id := "pay_sub_1"
	return &sq.Payment{ID: &id}, nil
}

func (s *stubCharger) LocationID() string { return "loc-1" }
func (s *stubCharger) Currency() string   { return "GBP" }

type stubEmitter struct {
	events []outbox.DomainEvent
}

func (s *stubEmitter) Emit(ctx context.Context, tx *gorm.DB, event outbox.DomainEvent) error {
	s.events = append(s.events, event)
	return nil
}

func testConfig(trialDays int) config.SubscriptionConfig {
	return config.SubscriptionConfig{MonthlyAmount: "49.99", TrialDays: trialDays}
}

func newSubService(t *testing.T, repo Repository, charger subscriptionCharger, emitter eventEmitter, trialDays int) Service {
	t.Helper()
	svc, err := NewService(repo, stubTx{}, charger, emitter, testConfig(trialDays), logger.New(logger.Options{ServiceName: "test"}))
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestStartFirstTimeGetsTrial(t *testing.T) {
	repo := newStubRepo()
	charger := &stubCharger{}
	emitter := &stubEmitter{}
	svc := newSubService(t, repo, charger, emitter, 14)

	companyID := uuid.New()
	dto, err := svc.Start(context.Background(), StartInput{CompanyID: companyID})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if dto.Status != enums.SubscriptionStatusTrialing.String() {
		t.Fatalf("status = %s, want trialing", dto.Status)
	}
	if dto.TrialEndsAt == nil || time.Until(*dto.TrialEndsAt) < 13*24*time.Hour {
		t.Fatalf("trial window wrong: %+v", dto.TrialEndsAt)
	}
	if len(charger.params) != 0 {
		t.Fatal("trial must not charge")
	}
	if !repo.companyFlag[companyID] {
		t.Fatal("trial must flip the company eligibility flag")
	}
	if len(emitter.events) != 1 || emitter.events[0].EventType != enums.OutboxEventSubscriptionActivated {
		t.Fatalf("expected activation event, got %+v", emitter.events)
	}
}

func TestStartWithoutTrialCharges(t *testing.T) {
	repo := newStubRepo()
	charger := &stubCharger{}
	svc := newSubService(t, repo, charger, &stubEmitter{}, 0)

	companyID := uuid.New()
	dto, err := svc.Start(context.Background(), StartInput{
		CompanyID:       companyID,
		PaymentSourceID: "cnon:card-nonce",
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}

	if dto.Status != enums.SubscriptionStatusActive.String() {
		t.Fatalf("status = %s, want active", dto.Status)
	}
	if len(charger.params) != 1 {
		t.Fatalf("expected one charge, got %d", len(charger.params))
	}
	// 49.99 GBP in minor units.
	if charger.params[0].AmountCents != 4999 {
		t.Fatalf("charge amount = %d, want 4999", charger.params[0].AmountCents)
	}
}

func TestStartRequiresPaymentSourceWhenCharging(t *testing.T) {
	svc := newSubService(t, newStubRepo(), &stubCharger{}, &stubEmitter{}, 0)

	_, err := svc.Start(context.Background(), StartInput{CompanyID: uuid.New()})
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStartAlreadyActiveConflicts(t *testing.T) {
	repo := newStubRepo()
	companyID := uuid.New()
	repo.byCompany[companyID] = &models.Subscription{
		ID:        uuid.New(),
		CompanyID: companyID,
		Status:    enums.SubscriptionStatusActive,
	}
	svc := newSubService(t, repo, &stubCharger{}, &stubEmitter{}, 14)

	_, err := svc.Start(context.Background(), StartInput{CompanyID: companyID})
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestStartAfterCancelChargesWithoutTrial(t *testing.T) {
	repo := newStubRepo()
	charger := &stubCharger{}
	companyID := uuid.New()
	canceledAt := time.Now().Add(-24 * time.Hour)
	repo.byCompany[companyID] = &models.Subscription{
		ID:         uuid.New(),
		CompanyID:  companyID,
		Status:     enums.SubscriptionStatusCanceled,
		CanceledAt: &canceledAt,
	}
	svc := newSubService(t, repo, charger, &stubEmitter{}, 14)

	dto, err := svc.Start(context.Background(), StartInput{
		CompanyID:       companyID,
		PaymentSourceID: "cnon:card-nonce",
	})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if dto.Status != enums.SubscriptionStatusActive.String() {
		t.Fatalf("returning subscriber should be active, got %s", dto.Status)
	}
	if dto.CanceledAt != nil {
		t.Fatal("cancellation must be cleared on restart")
	}
	if len(charger.params) != 1 {
		t.Fatal("returning subscriber must be charged, not re-trialed")
	}
}

func TestStartChargeFailureRecordsError(t *testing.T) {
	repo := newStubRepo()
	charger := &stubCharger{err: pkgerrors.New(pkgerrors.CodePayment, "card declined")}
	emitter := &stubEmitter{}
	svc := newSubService(t, repo, charger, emitter, 0)

	companyID := uuid.New()
	_, err := svc.Start(context.Background(), StartInput{
		CompanyID:       companyID,
		PaymentSourceID: "cnon:card-nonce",
	})
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodePayment {
		t.Fatalf("expected payment error, got %v", err)
	}

	stored := repo.byCompany[companyID]
	if stored == nil || stored.Status != enums.SubscriptionStatusUnpaid {
		t.Fatalf("failed charge should leave an unpaid row: %+v", stored)
	}
	if stored.LastChargeError == nil {
		t.Fatal("charge error not recorded")
	}
	if repo.companyFlag[companyID] {
		t.Fatal("failed charge must not activate the company")
	}
	if len(emitter.events) != 0 {
		t.Fatal("failed charge must not emit activation")
	}
}

func TestCancel(t *testing.T) {
	repo := newStubRepo()
	emitter := &stubEmitter{}
	companyID := uuid.New()
	repo.byCompany[companyID] = &models.Subscription{
		ID:        uuid.New(),
		CompanyID: companyID,
		Status:    enums.SubscriptionStatusActive,
	}
	repo.companyFlag[companyID] = true
	svc := newSubService(t, repo, &stubCharger{}, emitter, 14)

	dto, err := svc.Cancel(context.Background(), companyID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if dto.Status != enums.SubscriptionStatusCanceled.String() || dto.CanceledAt == nil {
		t.Fatalf("cancel not applied: %+v", dto)
	}
	if repo.companyFlag[companyID] {
		t.Fatal("cancel must clear the company eligibility flag")
	}
	if len(emitter.events) != 1 || emitter.events[0].EventType != enums.OutboxEventSubscriptionCanceled {
		t.Fatalf("expected cancellation event, got %+v", emitter.events)
	}

	_, err = svc.Cancel(context.Background(), companyID)
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeConflict {
		t.Fatalf("double cancel should conflict, got %v", err)
	}
}

func TestGetNotFound(t *testing.T) {
	svc := newSubService(t, newStubRepo(), &stubCharger{}, &stubEmitter{}, 14)

	_, err := svc.Get(context.Background(), uuid.New())
	var domainErr *pkgerrors.Error
	if !errors.As(err, &domainErr) || domainErr.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
