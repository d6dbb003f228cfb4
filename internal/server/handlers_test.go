package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"risk-assessor/internal/assessment"
	"risk-assessor/internal/config"
	"risk-assessor/internal/store"
)

func newTestServer(t *testing.T, withStore bool) *Server {
	t.Helper()

	var dataStore store.DataStore
	if withStore {
		s, err := store.NewSQLiteStore(filepath.Join(t.TempDir(), "test.db"))
		if err != nil {
			t.Fatalf("NewSQLiteStore failed: %v", err)
		}
		t.Cleanup(func() { s.Close() })
		dataStore = s
	}

	return New(zerolog.Nop(), assessment.NewEngine(zerolog.Nop()), dataStore, config.ServerConfig{
		Host: "127.0.0.1",
		Port: 0,
	})
}

const validBody = `{
	"age": 42,
	"income": 85000,
	"expenses": 4000,
	"savings": 120000,
	"goals": "retirement planning",
	"risk_appetite": "moderate",
	"investments": [
		{"type": "Equities (Stocks)", "amount": 62000, "name": "Index Fund"},
		{"type": "Cash & Equivalents", "amount": 25000, "name": "Savings Account"}
	]
}`

func TestAnalyzeEndpoint(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(validBody))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", rec.Code, rec.Body.String())
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}
	if resp.ID == "" {
		t.Error("response has no assessment ID")
	}
	if resp.Report.RiskAssessment.RiskScore != 6 {
		t.Errorf("risk score = %d, want 6", resp.Report.RiskAssessment.RiskScore)
	}
	if resp.Report.Recommendation.SuggestedSIPAmount != 5000 {
		t.Errorf("SIP = %.0f, want 5000", resp.Report.Recommendation.SuggestedSIPAmount)
	}
}

func TestAnalyzeRejectsMalformedBody(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodPost, "/analyze", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeRejectsInvalidProfile(t *testing.T) {
	srv := newTestServer(t, false)

	body := `{"age": 150, "income": 85000, "expenses": 4000, "goals": "x", "risk_appetite": "moderate"}`
	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(body))
	rec := httptest.NewRecorder()

	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Errorf("status = %d, want 422; body: %s", rec.Code, rec.Body.String())
	}
}

func TestAnalyzePersistsWhenStoreConfigured(t *testing.T) {
	srv := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodPost, "/analyze", strings.NewReader(validBody))
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp analyzeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decoding response: %v", err)
	}

	getReq := httptest.NewRequest(http.MethodGet, "/assessments/"+resp.ID, nil)
	getRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(getRec, getReq)

	if getRec.Code != http.StatusOK {
		t.Fatalf("fetch status = %d, want 200; body: %s", getRec.Code, getRec.Body.String())
	}

	listReq := httptest.NewRequest(http.MethodGet, "/assessments", nil)
	listRec := httptest.NewRecorder()
	srv.Router().ServeHTTP(listRec, listReq)

	if listRec.Code != http.StatusOK {
		t.Fatalf("list status = %d, want 200", listRec.Code)
	}
	var records []store.AssessmentRecord
	if err := json.Unmarshal(listRec.Body.Bytes(), &records); err != nil {
		t.Fatalf("decoding list: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("listed %d records, want 1", len(records))
	}
}

func TestAssessmentEndpointsWithoutStore(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/assessments", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestGetAssessmentNotFound(t *testing.T) {
	srv := newTestServer(t, true)

	req := httptest.NewRequest(http.MethodGet, "/assessments/missing-id", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t, false)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
