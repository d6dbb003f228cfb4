package recommend

import (
	"math"

	"risk-assessor/internal/models"
)

// AssetClass names used in the target allocation.
const (
	ClassEquities     = "Equities"
	ClassFixedIncome  = "Fixed Income"
	ClassCash         = "Cash"
	ClassAlternatives = "Alternative Investments"
)

// TargetAllocation is the suggested split across asset classes, with a
// finer breakdown of the equity sleeve.
type TargetAllocation struct {
	MainAllocation  map[string]float64 `json:"main_allocation"`
	EquityBreakdown map[string]float64 `json:"equity_breakdown"`
	AgeAdjusted     bool               `json:"age_adjusted"`
}

// baseAllocations holds the category-level starting splits before age
// tilts are applied.
var baseAllocations = map[models.RiskCategoryLabel]map[string]float64{
	models.CategoryConservative: {
		ClassEquities:     30,
		ClassFixedIncome:  50,
		ClassCash:         15,
		ClassAlternatives: 5,
	},
	models.CategoryModerate: {
		ClassEquities:     50,
		ClassFixedIncome:  35,
		ClassCash:         10,
		ClassAlternatives: 5,
	},
	models.CategoryAggressive: {
		ClassEquities:     70,
		ClassFixedIncome:  20,
		ClassCash:         5,
		ClassAlternatives: 5,
	},
}

// equitySplits breaks the equity sleeve into cap segments per category.
var equitySplits = map[models.RiskCategoryLabel]map[string]float64{
	models.CategoryConservative: {
		"Large-cap MF Equity":         0.70,
		"Mid-cap MF Equity":           0.20,
		"Small-cap MF Equity":         0.00,
		"International MF Equity":     0.10,
	},
	models.CategoryModerate: {
		"Large-cap MF Equity":         0.50,
		"Mid-cap MF Equity":           0.25,
		"Small-cap MF Equity":         0.10,
		"International MF Equity":     0.15,
	},
	models.CategoryAggressive: {
		"Large-cap MF Equity":         0.40,
		"Mid-cap MF Equity":           0.25,
		"Small-cap MF Equity":         0.15,
		"International MF Equity":     0.20,
	},
}

// SuggestAllocation returns the target split for a risk category,
// tilted for age: past 60 equity shifts toward fixed income and cash,
// under 30 fixed income shifts toward equity.
func SuggestAllocation(category models.RiskCategoryLabel, age int) TargetAllocation {
	base, ok := baseAllocations[category]
	if !ok {
		base = baseAllocations[models.CategoryModerate]
		category = models.CategoryModerate
	}

	allocation := make(map[string]float64, len(base))
	for class, pct := range base {
		allocation[class] = pct
	}

	adjusted := false
	switch {
	case age > 60:
		shift := math.Min(15, allocation[ClassEquities]*0.2)
		allocation[ClassEquities] -= shift
		allocation[ClassFixedIncome] += shift * 0.7
		allocation[ClassCash] += shift * 0.3
		adjusted = true
	case age > 0 && age < 30:
		shift := math.Min(10, allocation[ClassFixedIncome]*0.2)
		allocation[ClassFixedIncome] -= shift
		allocation[ClassEquities] += shift
		adjusted = true
	}

	totalEquity := allocation[ClassEquities]
	breakdown := make(map[string]float64, len(equitySplits[category]))
	for segment, share := range equitySplits[category] {
		breakdown[segment] = math.Round(totalEquity*share*10) / 10
	}

	return TargetAllocation{
		MainAllocation:  allocation,
		EquityBreakdown: breakdown,
		AgeAdjusted:     adjusted,
	}
}
