package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/api/validators"
	"github.com/shiftsorted/shiftsorted-backend/internal/companies"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
	"github.com/shiftsorted/shiftsorted-backend/pkg/pagination"
)

// CompanyList serves the public directory, cursor paginated.
func CompanyList(svc companies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "company service unavailable"))
			return
		}

		limit, err := validators.ParseQueryInt(r, "limit", 0, 0, pagination.MaxLimit)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		page, err := svc.ListCompanies(r.Context(), pagination.Params{
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

// CompanyDetail serves one public company profile with its rate card.
func CompanyDetail(svc companies.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "company service unavailable"))
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "companyId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "invalid company id"))
			return
		}

		dto, err := svc.GetCompany(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, dto)
	}
}
