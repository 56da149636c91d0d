package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/shiftsorted/shiftsorted-backend/internal/companies"
	pkgerrors "github.com/shiftsorted/shiftsorted-backend/pkg/errors"
)

func TestCompanyListSuccess(t *testing.T) {
	svc := &stubCompanyService{page: &companies.CompanyPage{
		Companies:  []companies.CompanyDTO{{ID: uuid.New(), Name: "Swift Moves"}},
		NextCursor: "cursor-token",
	}}
	handler := CompanyList(svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies?limit=10", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data companies.CompanyPage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(envelope.Data.Companies) != 1 || envelope.Data.Companies[0].Name != "Swift Moves" {
		t.Fatalf("unexpected companies payload: %+v", envelope.Data.Companies)
	}
	if envelope.Data.NextCursor != "cursor-token" {
		t.Fatalf("unexpected cursor: %q", envelope.Data.NextCursor)
	}
}

func TestCompanyListRejectsBadLimit(t *testing.T) {
	handler := CompanyList(&stubCompanyService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies?limit=abc", nil)
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCompanyDetailRejectsBadID(t *testing.T) {
	handler := CompanyDetail(&stubCompanyService{}, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("companyId", "not-a-uuid")
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/not-a-uuid", nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestCompanyDetailNotFound(t *testing.T) {
	svc := &stubCompanyService{err: pkgerrors.New(pkgerrors.CodeNotFound, "company not found")}
	handler := CompanyDetail(svc, nil)

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("companyId", uuid.NewString())
	req := httptest.NewRequest(http.MethodGet, "/api/v1/companies/"+uuid.NewString(), nil)
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	resp := httptest.NewRecorder()
	handler.ServeHTTP(resp, req)

	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", resp.Code)
	}
}
