package controllers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/api/validators"
	"github.com/shiftsorted/shiftsorted-backend/internal/booking"
	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/types"
)

type createBookingRequest struct {
	Quote             pricing.Quote          `json:"quote"`
	Request           pricing.PricingRequest `json:"request"`
	Customer          types.Contact          `json:"customer"`
	CollectionAddress types.Address          `json:"collection_address"`
	DeliveryAddress   types.Address          `json:"delivery_address"`
	MoveDate          *time.Time             `json:"move_date,omitempty"`
	PaymentSourceID   string                 `json:"payment_source_id" validate:"required"`
	SquareCustomerID  string                 `json:"square_customer_id,omitempty"`
}

// BookingCreate turns an accepted quote into a booking and charges the
// deposit. A declined card still returns the payment error; the booking
// row stays behind for a retry.
func BookingCreate(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.CreateBooking(r.Context(), booking.CreateBookingInput{
			Quote:             payload.Quote,
			Request:           payload.Request,
			Customer:          payload.Customer,
			CollectionAddress: payload.CollectionAddress,
			DeliveryAddress:   payload.DeliveryAddress,
			MoveDate:          payload.MoveDate,
			PaymentSourceID:   payload.PaymentSourceID,
			SquareCustomerID:  payload.SquareCustomerID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// BookingByRef returns the booking behind a customer transaction reference.
func BookingByRef(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		dto, err := svc.GetByTransactionRef(r.Context(), chi.URLParam(r, "transactionRef"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
