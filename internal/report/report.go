// Package report assembles the final assessment report delivered to
// presentation layers.
package report

import (
	"fmt"
	"strings"

	"risk-assessor/internal/assessment"
	"risk-assessor/internal/models"
	"risk-assessor/internal/recommend"
	"risk-assessor/pkg/utils"
)

// ProfileSummary restates the submitted profile in display form.
type ProfileSummary struct {
	Age                 int    `json:"age"`
	AnnualIncome        string `json:"annual_income"`
	MonthlyExpenses     string `json:"monthly_expenses"`
	TotalSavings        string `json:"total_savings"`
	StatedRiskAppetite  string `json:"stated_risk_appetite"`
	FinancialGoals      string `json:"financial_goals"`
}

// Report is the complete assessment output: engine results plus the
// target allocation, product shortlist, advice, and next steps.
type Report struct {
	ProfileSummary     ProfileSummary                            `json:"profile_summary"`
	RiskAssessment     models.RiskAssessment                     `json:"risk_assessment"`
	RiskCategory       models.RiskCategory                       `json:"risk_category"`
	RiskExplanation    string                                    `json:"risk_explanation"`
	PortfolioAnalysis  models.PortfolioAnalysis                  `json:"portfolio_analysis"`
	PortfolioSummary   string                                    `json:"portfolio_summary"`
	Recommendation     models.RecommendationResult               `json:"recommendation"`
	TargetAllocation   recommend.TargetAllocation                `json:"target_allocation"`
	SuggestedProducts  map[string][]recommend.ProductSuggestion  `json:"suggested_products"`
	AgeSpecificAdvice  string                                    `json:"age_specific_advice,omitempty"`
	NextSteps          []string                                  `json:"next_steps"`
}

// Build composes the full report from an engine result and the
// original profile.
func Build(profile models.UserProfile, result *assessment.Result) *Report {
	allocation := recommend.SuggestAllocation(result.RiskCategory.FinalCategory, profile.Age)

	return &Report{
		ProfileSummary: ProfileSummary{
			Age:                profile.Age,
			AnnualIncome:       utils.FormatCurrency(profile.AnnualIncome),
			MonthlyExpenses:    utils.FormatCurrency(profile.MonthlyExpenses),
			TotalSavings:       utils.FormatCurrency(profile.TotalSavings),
			StatedRiskAppetite: profile.RiskAppetite,
			FinancialGoals:     profile.Goals,
		},
		RiskAssessment:    result.RiskAssessment,
		RiskCategory:      result.RiskCategory,
		RiskExplanation:   riskExplanation(result.RiskAssessment.RiskScore, result.RiskCategory),
		PortfolioAnalysis: result.PortfolioAnalysis,
		PortfolioSummary:  fmt.Sprintf("Your current portfolio shows %s allocation", result.PortfolioAnalysis.RiskConcentration),
		Recommendation:    result.Recommendation,
		TargetAllocation:  allocation,
		SuggestedProducts: recommend.SuggestProducts(result.RiskCategory.FinalCategory, allocation),
		AgeSpecificAdvice: ageAdvice(profile.Age),
		NextSteps:         nextSteps(result.Recommendation),
	}
}

func riskExplanation(score int, category models.RiskCategory) string {
	explanation := fmt.Sprintf("Your risk assessment indicates you are a %s investor. This is based on your risk score of %d/10",
		strings.ToLower(string(category.FinalCategory)), score)
	if len(category.AdjustmentFactors) > 0 {
		return explanation + " and factors including " + strings.Join(category.AdjustmentFactors, ", ")
	}
	return explanation + "."
}

// ageAdvice returns guidance for the user's age bracket. Empty when age
// was not provided.
func ageAdvice(age int) string {
	switch {
	case age <= 0:
		return ""
	case age < 30:
		return "Given your young age, you have a longer time horizon which allows for more risk-taking and recovery from market downturns. Focus on growth."
	case age < 45:
		return "In your prime earning years, maintain a good balance between growth and stability while maximizing retirement contributions."
	case age < 60:
		return "As retirement approaches, gradually shift toward more conservative investments while still maintaining some growth components."
	default:
		return "In retirement or near-retirement phase, focus on capital preservation and income generation, with a smaller allocation to growth assets."
	}
}

// nextSteps orders concrete actions first (SIP, lumpsum, strategy),
// then the standing review advice.
func nextSteps(rec models.RecommendationResult) []string {
	steps := []string{
		"Review your current investment portfolio compared to the suggested allocation",
		"Consider tax implications before making significant changes",
		"Consult with a financial advisor for personalized advice",
		"Set up automatic contributions to maximize long-term growth",
		"Review and adjust your portfolio 1-2 times per year",
	}

	var lead []string
	if rec.SuggestedSIPAmount > 0 {
		lead = append(lead, fmt.Sprintf("Start a SIP of %s per month based on your income", utils.FormatWholeCurrency(rec.SuggestedSIPAmount)))
	}
	if rec.SuggestedLumpsumAmount > 0 {
		lead = append(lead, fmt.Sprintf("Consider investing %s as lumpsum while maintaining emergency fund", utils.FormatWholeCurrency(rec.SuggestedLumpsumAmount)))
	}
	if rec.PrimaryStrategy != "" {
		lead = append(lead, fmt.Sprintf("Focus on %s as your primary investment strategy", strings.ToLower(rec.PrimaryStrategy)))
	}

	return append(lead, steps...)
}
