package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	apperrors "risk-assessor/internal/errors"
	"risk-assessor/internal/models"
	"risk-assessor/internal/report"
	"risk-assessor/internal/store"
)

// analyzeRequest is the wire shape of an analysis submission.
type analyzeRequest struct {
	Age          int                `json:"age"`
	Income       float64            `json:"income"`
	Expenses     float64            `json:"expenses"`
	Savings      float64            `json:"savings"`
	Goals        string             `json:"goals"`
	RiskAppetite string             `json:"risk_appetite"`
	Investments  []investmentInput  `json:"investments"`
}

type investmentInput struct {
	Type            string   `json:"type"`
	Amount          float64  `json:"amount"`
	Name            string   `json:"name"`
	ExpectedReturns *float64 `json:"expected_returns,omitempty"`
	CurrentValue    *float64 `json:"current_value,omitempty"`
}

// analyzeResponse wraps the report with the stored assessment ID.
type analyzeResponse struct {
	ID     string         `json:"id"`
	Report *report.Report `json:"report"`
}

type errorResponse struct {
	Error   string   `json:"error"`
	Details []string `json:"details,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}

	profile := models.UserProfile{
		Age:             req.Age,
		AnnualIncome:    req.Income,
		MonthlyExpenses: req.Expenses,
		TotalSavings:    req.Savings,
		Goals:           req.Goals,
		RiskAppetite:    req.RiskAppetite,
	}

	if result := profile.Validate(); !result.IsValid {
		details := append(result.MissingFields, result.Issues...)
		writeError(w, http.StatusUnprocessableEntity, "profile validation failed", details)
		return
	}

	portfolio := make(models.Portfolio, 0, len(req.Investments))
	for _, inv := range req.Investments {
		record := models.InvestmentRecord{
			AssetType:       models.AssetType(inv.Type),
			Amount:          inv.Amount,
			Name:            inv.Name,
			ExpectedReturns: inv.ExpectedReturns,
			CurrentValue:    inv.CurrentValue,
		}
		if err := models.ValidateRecord(record); err != nil {
			writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
			return
		}
		portfolio = append(portfolio, record)
	}

	result, err := s.engine.Assess(profile, portfolio)
	if err != nil {
		s.log.Error().Err(err).Msg("Assessment failed")
		writeError(w, http.StatusInternalServerError, "assessment failed", nil)
		return
	}

	rep := report.Build(profile, result)
	id := uuid.New().String()

	if s.store != nil {
		record := &store.AssessmentRecord{
			ID:        id,
			CreatedAt: time.Now().UTC(),
			Profile:   profile,
			Portfolio: portfolio,
			Report:    rep,
		}
		if err := s.store.SaveAssessment(r.Context(), record); err != nil {
			s.log.Error().Err(err).Str("assessment_id", id).Msg("Failed to persist assessment")
		}
	}

	writeJSON(w, http.StatusOK, analyzeResponse{ID: id, Report: rep})
}

func (s *Server) handleListAssessments(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "assessment history is not enabled", nil)
		return
	}

	filter := store.AssessmentFilter{
		Category: r.URL.Query().Get("category"),
		Limit:    50,
	}

	records, err := s.store.ListAssessments(r.Context(), filter)
	if err != nil {
		s.log.Error().Err(err).Msg("Failed to list assessments")
		writeError(w, http.StatusInternalServerError, "failed to list assessments", nil)
		return
	}
	if records == nil {
		records = []store.AssessmentRecord{}
	}

	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleGetAssessment(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusServiceUnavailable, "assessment history is not enabled", nil)
		return
	}

	id := chi.URLParam(r, "id")
	record, err := s.store.GetAssessment(r.Context(), id)
	if err != nil {
		if apperrors.Is(err, apperrors.ErrDataNotFound) {
			writeError(w, http.StatusNotFound, "assessment not found", nil)
			return
		}
		s.log.Error().Err(err).Str("assessment_id", id).Msg("Failed to fetch assessment")
		writeError(w, http.StatusInternalServerError, "failed to fetch assessment", nil)
		return
	}

	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, details []string) {
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}
