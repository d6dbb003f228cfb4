package assessment

import (
	"strings"

	"risk-assessor/internal/models"
)

// diversityCutoff is the diversity score below which a downgrade
// adjustment applies.
const diversityCutoff = 30

// downgradeRule is one guard of the categorization state machine. When
// the predicate holds, the reason is recorded and an Aggressive base
// category is downgraded to the target. Rules only ever downgrade.
type downgradeRule struct {
	reason    string
	target    models.RiskCategoryLabel
	predicate func(base models.RiskCategoryLabel, analysis models.PortfolioAnalysis) bool
}

// RiskCategorizer combines a risk score with portfolio analysis to
// produce the final risk category.
type RiskCategorizer struct {
	rules []downgradeRule
}

// NewRiskCategorizer creates a categorizer with the standard downgrade
// rules, applied in fixed order.
func NewRiskCategorizer() *RiskCategorizer {
	return &RiskCategorizer{
		rules: []downgradeRule{
			{
				reason: "low portfolio diversity",
				target: models.CategoryModerate,
				predicate: func(base models.RiskCategoryLabel, analysis models.PortfolioAnalysis) bool {
					return analysis.DiversityScore < diversityCutoff && base != models.CategoryConservative
				},
			},
			{
				reason: "high concentration risk",
				target: models.CategoryModerate,
				predicate: func(base models.RiskCategoryLabel, analysis models.PortfolioAnalysis) bool {
					return strings.Contains(analysis.RiskConcentration, "concentrated") && base == models.CategoryAggressive
				},
			},
		},
	}
}

// Categorize derives the final risk category from a risk score and the
// portfolio analysis. The final category is never more aggressive than
// the base category; downgrades target Moderate and never stack below it.
func (c *RiskCategorizer) Categorize(riskScore int, analysis models.PortfolioAnalysis) models.RiskCategory {
	base := CategoryForScore(riskScore)
	final := base
	var adjustments []string

	for _, rule := range c.rules {
		if !rule.predicate(base, analysis) {
			continue
		}
		adjustments = append(adjustments, rule.reason)
		if base == models.CategoryAggressive && rule.target.Rank() < final.Rank() {
			final = rule.target
		}
	}

	return models.RiskCategory{
		FinalCategory:     final,
		BaseCategory:      base,
		AdjustmentFactors: adjustments,
	}
}

// EmptyAnalysis is the defaulted analysis used when no portfolio data
// is available: zero diversity and an unknown concentration label. The
// unknown label never matches the concentration rule, but zero
// diversity does trigger the diversity rule.
func EmptyAnalysis() models.PortfolioAnalysis {
	return models.PortfolioAnalysis{
		DiversityScore:    0,
		AssetAllocation:   map[models.AssetType]float64{},
		RiskConcentration: ConcentrationUnknown,
	}
}
