package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/api/validators"
	"github.com/shiftsorted/shiftsorted-backend/internal/drafts"
	"github.com/shiftsorted/shiftsorted-backend/internal/pricing"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
	"github.com/shiftsorted/shiftsorted-backend/pkg/logger"
)

type saveDraftRequest struct {
	DraftID string                    `json:"draft_id,omitempty"`
	Spec    pricing.MoveSpecification `json:"spec"`
}

type draftResponse struct {
	DraftID string                     `json:"draft_id"`
	Spec    *pricing.MoveSpecification `json:"spec,omitempty"`
}

// DraftSave stores (or updates) an in-progress move specification.
func DraftSave(store *drafts.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "draft store unavailable"))
			return
		}

		var payload saveDraftRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		// Path ID wins over a body ID so PUT /drafts/{id} is unambiguous.
		if pathID := chi.URLParam(r, "draftId"); pathID != "" {
			payload.DraftID = pathID
		}

		id, err := store.Save(r.Context(), payload.DraftID, payload.Spec)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status := http.StatusOK
		if payload.DraftID == "" {
			status = http.StatusCreated
		}
		responses.WriteSuccessStatus(w, status, draftResponse{DraftID: id})
	}
}

// DraftGet loads a saved move specification.
func DraftGet(store *drafts.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "draft store unavailable"))
			return
		}

		id := chi.URLParam(r, "draftId")
		spec, err := store.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, draftResponse{DraftID: id, Spec: spec})
	}
}

// DraftDelete discards a saved draft. Unknown drafts delete cleanly.
func DraftDelete(store *drafts.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "draft store unavailable"))
			return
		}

		id := chi.URLParam(r, "draftId")
		if err := store.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
