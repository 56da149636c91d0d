package controllers

import (
	"net/http"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/api/validators"
	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	"github.com/shiftsorted/shiftsorted-backend/internal/quotes"
	"github.com/shiftsorted/shiftsorted-backend/pkg/enums"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
)

type quoteSearchRequest struct {
	pricing.MoveSpecification
	Sort enums.SortOrder `json:"sort,omitempty"`
}

// QuoteSearch prices a move specification against every eligible
// company and returns the ranked comparison set.
func QuoteSearch(svc quotes.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "quote service unavailable"))
			return
		}

		var payload quoteSearchRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Search(r.Context(), quotes.SearchInput{
			Spec: payload.MoveSpecification,
			Sort: payload.Sort,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, result)
	}
}
