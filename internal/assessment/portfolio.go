package assessment

import (
	"math"
	"sort"
	"strings"

	"risk-assessor/internal/models"
)

const (
	// concentrationThreshold is the allocation percentage above which a
	// single asset type is flagged as a concentration risk.
	concentrationThreshold = 40.0

	// diversityPointsPerType scores each distinct asset type held.
	diversityPointsPerType = 20

	// ConcentrationUnknown labels an empty portfolio.
	ConcentrationUnknown = "unknown"
	// ConcentrationBalanced labels a portfolio with no over-weighted type.
	ConcentrationBalanced = "balanced"
)

// PortfolioAnalyzer computes diversification and concentration metrics
// from a list of holdings.
type PortfolioAnalyzer struct{}

// NewPortfolioAnalyzer creates a new portfolio analyzer.
func NewPortfolioAnalyzer() *PortfolioAnalyzer {
	return &PortfolioAnalyzer{}
}

// Analyze computes metrics for the given portfolio. An empty portfolio
// is a valid input: diversity 0, empty allocation, concentration unknown.
func (a *PortfolioAnalyzer) Analyze(portfolio models.Portfolio) models.PortfolioAnalysis {
	if len(portfolio) == 0 {
		return models.PortfolioAnalysis{
			DiversityScore:    0,
			AssetAllocation:   map[models.AssetType]float64{},
			RiskConcentration: ConcentrationUnknown,
		}
	}

	values := make(map[models.AssetType]float64)
	var total float64
	for _, holding := range portfolio {
		v := holding.Value()
		values[holding.AssetType] += v
		total += v
	}

	allocation := make(map[models.AssetType]float64, len(values))
	for assetType, value := range values {
		if total > 0 {
			allocation[assetType] = round1(value / total * 100)
		} else {
			allocation[assetType] = 0
		}
	}

	diversity := len(values) * diversityPointsPerType
	if diversity > 100 {
		diversity = 100
	}

	return models.PortfolioAnalysis{
		DiversityScore:    diversity,
		AssetCount:        len(portfolio),
		UniqueAssetTypes:  len(values),
		AssetAllocation:   allocation,
		RiskConcentration: concentrationLabel(allocation),
	}
}

// concentrationLabel lists asset types whose allocation exceeds the
// concentration threshold, or reports the portfolio as balanced.
func concentrationLabel(allocation map[models.AssetType]float64) string {
	var concentrated []string
	for assetType, pct := range allocation {
		if pct > concentrationThreshold {
			concentrated = append(concentrated, string(assetType))
		}
	}
	if len(concentrated) == 0 {
		return ConcentrationBalanced
	}
	sort.Strings(concentrated)
	return "concentrated in " + strings.Join(concentrated, ", ")
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
