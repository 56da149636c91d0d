package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/internal/booking"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

type stubBookingService struct {
	dto  *booking.BookingDTO
	page *booking.BookingPage
	err  error
	got  *booking.CreateBookingInput
}

func (s *stubBookingService) CreateBooking(ctx context.Context, input booking.CreateBookingInput) (*booking.BookingDTO, error) {
	s.got = &input
	return s.dto, s.err
}

func (s *stubBookingService) GetByTransactionRef(ctx context.Context, ref string) (*booking.BookingDTO, error) {
	return s.dto, s.err
}

func (s *stubBookingService) ListCompanyBookings(ctx context.Context, companyID uuid.UUID, params pagination.Params) (*booking.BookingPage, error) {
	return s.page, s.err
}

func TestBookingCreateSuccess(t *testing.T) {
	dto := &booking.BookingDTO{ID: uuid.New(), TransactionRef: "SS-20260101093000abcd"}
	svc := &stubBookingService{dto: dto}
	handler := BookingCreate(svc, nil)

	body := `{
		"customer": {"first_name": "Ada", "last_name": "Price", "email": "ada@example.com", "phone": "07700900123"},
		"payment_source_id": "cnon:card-nonce-ok"
	}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
	if svc.got == nil {
		t.Fatal("expected create to be invoked")
	}
	if svc.got.PaymentSourceID != "cnon:card-nonce-ok" {
		t.Fatalf("unexpected payment source: %q", svc.got.PaymentSourceID)
	}

	var envelope struct {
		Data booking.BookingDTO `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.TransactionRef != dto.TransactionRef {
		t.Fatalf("unexpected transaction ref: %q", envelope.Data.TransactionRef)
	}
}

func TestBookingCreateRequiresPaymentSource(t *testing.T) {
	handler := BookingCreate(&stubBookingService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"customer":{}}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestBookingCreateSurfacesPaymentFailure(t *testing.T) {
	svc := &stubBookingService{err: pkgerrors.New(pkgerrors.CodePayment, "card declined")}
	handler := BookingCreate(svc, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(`{"payment_source_id":"cnon:card-nonce-declined"}`))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d", resp.Code)
	}
}

func TestBookingByRefNotFound(t *testing.T) {
	svc := &stubBookingService{err: pkgerrors.New(pkgerrors.CodeNotFound, "booking not found")}
	handler := BookingByRef(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/bookings/SS-unknown", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
