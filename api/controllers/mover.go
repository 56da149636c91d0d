package controllers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shiftsorted/shiftsorted-backend/api/middleware"
	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/api/validators"
	"github.com/shiftsorted/shiftsorted-backend/internal/booking"
	"github.com/shiftsorted/shiftsorted-backend/internal/companies"
	"github.com/shiftsorted/shiftsorted-backend/internal/subscriptions"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

func companyIDFromRequest(r *http.Request) (uuid.UUID, error) {
	raw := middleware.CompanyIDFromContext(r.Context())
	if raw == "" {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "company context missing")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid company context")
	}
	return id, nil
}

// MoverSubscriptionFetch returns the authenticated company's subscription.
func MoverSubscriptionFetch(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription service unavailable"))
			return
		}

		companyID, err := companyIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Get(r.Context(), companyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

type startSubscriptionRequest struct {
	PaymentSourceID  string `json:"payment_source_id,omitempty"`
	SquareCustomerID string `json:"square_customer_id,omitempty"`
}

// MoverSubscriptionStart begins (or resumes) the platform subscription.
func MoverSubscriptionStart(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription service unavailable"))
			return
		}

		companyID, err := companyIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload startSubscriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Start(r.Context(), subscriptions.StartInput{
			CompanyID:        companyID,
			PaymentSourceID:  payload.PaymentSourceID,
			SquareCustomerID: payload.SquareCustomerID,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, dto)
	}
}

// MoverSubscriptionCancel ends the subscription immediately.
func MoverSubscriptionCancel(svc subscriptions.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "subscription service unavailable"))
			return
		}

		companyID, err := companyIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.Cancel(r.Context(), companyID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}

// MoverBookings pages through the company's bookings newest-first.
func MoverBookings(svc booking.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		companyID, err := companyIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListCompanyBookings(r.Context(), companyID, pagination.Params{
			Limit:  limit,
			Cursor: r.URL.Query().Get("cursor"),
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, page)
	}
}

type updateRatesRequest struct {
	LoadingRatePerVan    *decimal.Decimal `json:"loading_rate_per_van,omitempty"`
	MileageRatePerMile   *decimal.Decimal `json:"mileage_rate_per_mile,omitempty"`
	PackingRatePerM3     *decimal.Decimal `json:"packing_rate_per_m3,omitempty"`
	DismantlingRatePerM3 *decimal.Decimal `json:"dismantling_rate_per_m3,omitempty"`
	ReassemblyRatePerM3  *decimal.Decimal `json:"reassembly_rate_per_m3,omitempty"`
	DepositPercentage    *float64         `json:"deposit_percentage,omitempty"`
}

// MoverUpdateRates applies a partial rate card update for the
// authenticated company. Omitted fields keep their current value.
func MoverUpdateRates(svc companies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "company service unavailable"))
			return
		}

		companyID, err := companyIDFromRequest(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateRatesRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		dto, err := svc.UpdateRates(r.Context(), companyID, companies.UpdateRatesInput{
			LoadingRatePerVan:    payload.LoadingRatePerVan,
			MileageRatePerMile:   payload.MileageRatePerMile,
			PackingRatePerM3:     payload.PackingRatePerM3,
			DismantlingRatePerM3: payload.DismantlingRatePerM3,
			ReassemblyRatePerM3:  payload.ReassemblyRatePerM3,
			DepositPercentage:    payload.DepositPercentage,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
