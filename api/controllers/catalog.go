package controllers

import (
	"net/http"

	"github.com/shiftsorted/shiftsorted-backend/api/responses"
	"github.com/shiftsorted/shiftsorted-backend/internal/catalog"
)

type catalogResponse struct {
	Categories      []string                           `json:"categories"`
	ItemsByCategory map[string][]catalog.InventoryItem `json:"items_by_category"`
}

// Catalog serves the static inventory reference table the refine flow
// builds its item picker from.
func Catalog() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, catalogResponse{
			Categories:      catalog.Categories(),
			ItemsByCategory: catalog.ItemsByCategory(),
		})
	}
}
