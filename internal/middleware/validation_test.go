package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/choudharymahi74/AIinterview-Tutor/internal/models"
)

func TestValidateRequestRejectsInvalidJSON(t *testing.T) {
	handler := ValidateRequest[*models.SubmitResponseRequest]()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/questions/q-1/response", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestValidateRequestRejectsFailedValidation(t *testing.T) {
	handler := ValidateRequest[*models.SubmitResponseRequest]()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/questions/q-1/response", strings.NewReader(`{"response":"  "}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing_response") {
		t.Errorf("expected missing_response code in body, got %s", rec.Body.String())
	}
}

func TestValidateRequestStoresValidatedBody(t *testing.T) {
	var got *models.SubmitResponseRequest
	handler := ValidateRequest[*models.SubmitResponseRequest]()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetValidatedRequest[*models.SubmitResponseRequest](r)
	}))

	req := httptest.NewRequest(http.MethodPost, "/api/questions/q-1/response", strings.NewReader(`{"response":"answer","transcript":"spoken"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if got == nil {
		t.Fatal("validated request not stored in context")
	}
	if got.Response != "answer" || got.Transcript != "spoken" {
		t.Errorf("unexpected decoded request %+v", got)
	}
}
