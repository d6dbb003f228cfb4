// Package assessment implements the risk-tolerance scoring pipeline.
package assessment

import (
	"math"
	"strings"

	"risk-assessor/internal/models"
)

// Score bounds for the 1-10 risk tolerance scale.
const (
	MinRiskScore = 1
	MaxRiskScore = 10
)

// ProfileScorer computes a risk-tolerance score from demographic and
// financial attributes. Missing numeric fields score as zero; it never
// fails on incomplete input.
type ProfileScorer struct{}

// NewProfileScorer creates a new profile scorer.
func NewProfileScorer() *ProfileScorer {
	return &ProfileScorer{}
}

// Score calculates a 1-10 risk score from the given profile.
func (s *ProfileScorer) Score(profile models.UserProfile) models.RiskAssessment {
	appetite := normalizeAppetite(profile.RiskAppetite)
	base := baseScore(appetite)

	ageFactor := ageFactor(profile.Age)
	incomeFactor := incomeFactor(profile.MonthlyIncome(), profile.MonthlyExpenses)
	savingsFactor := savingsFactor(profile.TotalSavings, profile.MonthlyExpenses)

	score := clampInt(base+ageFactor+incomeFactor+savingsFactor, MinRiskScore, MaxRiskScore)

	return models.RiskAssessment{
		RiskScore:    score,
		RiskCategory: CategoryForScore(score),
		ContributingFactors: models.RiskFactors{
			SelfDescribedRisk: string(appetite),
			AgeFactor:         ageFactor,
			IncomeFactor:      incomeFactor,
			SavingsFactor:     savingsFactor,
		},
	}
}

// CategoryForScore maps a risk score to its first-pass category.
func CategoryForScore(score int) models.RiskCategoryLabel {
	switch {
	case score <= 3:
		return models.CategoryConservative
	case score <= 7:
		return models.CategoryModerate
	default:
		return models.CategoryAggressive
	}
}

// normalizeAppetite lower-cases the stated appetite, defaulting to
// moderate for absent or unrecognized values.
func normalizeAppetite(appetite string) models.RiskAppetite {
	switch models.RiskAppetite(strings.ToLower(strings.TrimSpace(appetite))) {
	case models.AppetiteConservative:
		return models.AppetiteConservative
	case models.AppetiteAggressive:
		return models.AppetiteAggressive
	default:
		return models.AppetiteModerate
	}
}

func baseScore(appetite models.RiskAppetite) int {
	switch appetite {
	case models.AppetiteConservative:
		return 2
	case models.AppetiteAggressive:
		return 8
	default:
		return 5
	}
}

// ageFactor rewards longer recovery horizons: younger investors can
// absorb more risk.
func ageFactor(age int) int {
	switch {
	case age < 30:
		return 2
	case age < 40:
		return 1
	case age < 50:
		return 0
	default:
		return -1
	}
}

// incomeFactor scores income stability relative to expenses. The ratio
// defaults to 1 when expenses are zero, a degenerate but valid case.
func incomeFactor(monthlyIncome, monthlyExpenses float64) int {
	ratio := 1.0
	if monthlyExpenses > 0 {
		ratio = monthlyIncome / monthlyExpenses
	}
	return clampInt(int(math.Round(ratio-2)), -2, 2)
}

// savingsFactor awards a point when savings cover more than six months
// of expenses.
func savingsFactor(totalSavings, monthlyExpenses float64) int {
	months := 0.0
	if monthlyExpenses > 0 {
		months = totalSavings / monthlyExpenses
	}
	if months > 6 {
		return 1
	}
	return 0
}

// clampInt restricts a value to the given range.
func clampInt(value, minVal, maxVal int) int {
	if value < minVal {
		return minVal
	}
	if value > maxVal {
		return maxVal
	}
	return value
}
