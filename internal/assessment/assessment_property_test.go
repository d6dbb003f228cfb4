package assessment

import (
	"math"
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"risk-assessor/internal/models"
)

// Property: risk scores stay within the 1-10 scale
//
// For any profile, however extreme or incomplete, the computed risk
// score must land inside [1, 10] and the first-pass category must be
// consistent with that score.
func TestPropertyRiskScoreBounds(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	scorer := NewProfileScorer()

	properties.Property("score within bounds and category consistent", prop.ForAll(
		func(age int, income, expenses, savings float64, appetite string) bool {
			result := scorer.Score(models.UserProfile{
				Age:             age,
				AnnualIncome:    income,
				MonthlyExpenses: expenses,
				TotalSavings:    savings,
				RiskAppetite:    appetite,
			})

			if result.RiskScore < MinRiskScore || result.RiskScore > MaxRiskScore {
				t.Logf("score %d out of bounds for age=%d income=%f", result.RiskScore, age, income)
				return false
			}
			if result.RiskCategory != CategoryForScore(result.RiskScore) {
				t.Logf("category %s inconsistent with score %d", result.RiskCategory, result.RiskScore)
				return false
			}
			return true
		},
		gen.IntRange(0, 120),
		gen.Float64Range(0, 1e9),
		gen.Float64Range(0, 1e7),
		gen.Float64Range(0, 1e9),
		gen.OneConstOf("conservative", "moderate", "aggressive", "", "unknown"),
	))

	properties.TestingRun(t)
}

// Property: allocation percentages sum to 100 within rounding tolerance
//
// For any non-empty portfolio with positive total value, the per-type
// allocation percentages must sum to 100 plus or minus 0.5.
func TestPropertyAllocationSumsTo100(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	analyzer := NewPortfolioAnalyzer()

	holdingGen := gen.Struct(reflect.TypeOf(models.InvestmentRecord{}), map[string]gopter.Gen{
		"Amount": gen.Float64Range(1, 1e7),
		"AssetType": gen.OneConstOf(
			models.AssetEquities,
			models.AssetFixedIncome,
			models.AssetCash,
			models.AssetMutualFunds,
			models.AssetPreciousMetals,
		),
	})

	properties.Property("non-empty portfolio allocation sums to 100", prop.ForAll(
		func(holdings []models.InvestmentRecord) bool {
			if len(holdings) == 0 {
				return true
			}

			analysis := analyzer.Analyze(models.Portfolio(holdings))

			var sum float64
			for _, pct := range analysis.AssetAllocation {
				sum += pct
			}
			if math.Abs(sum-100) > 0.5 {
				t.Logf("allocation sum = %f for %d holdings", sum, len(holdings))
				return false
			}

			if analysis.DiversityScore < 0 || analysis.DiversityScore > 100 {
				t.Logf("diversity score %d out of range", analysis.DiversityScore)
				return false
			}
			return true
		},
		gen.SliceOf(holdingGen),
	))

	properties.TestingRun(t)
}

// Property: the final category never upgrades past the base category
func TestPropertyCategorizationOnlyDowngrades(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	categorizer := NewRiskCategorizer()

	properties.Property("final category rank never exceeds base rank", prop.ForAll(
		func(score, diversity int, concentration string) bool {
			analysis := models.PortfolioAnalysis{
				DiversityScore:    diversity,
				RiskConcentration: concentration,
			}
			category := categorizer.Categorize(score, analysis)
			return category.FinalCategory.Rank() <= category.BaseCategory.Rank()
		},
		gen.IntRange(1, 10),
		gen.IntRange(0, 100),
		gen.OneConstOf("unknown", "balanced", "concentrated in Equities (Stocks)"),
	))

	properties.TestingRun(t)
}

// Property: the full pipeline is deterministic
//
// Two runs over identical inputs must produce deeply equal results:
// no hidden state, no randomness, regardless of goroutine scheduling.
func TestPropertyEngineDeterminism(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 50
	properties := gopter.NewProperties(parameters)

	engine := NewEngine(nopLogger())

	properties.Property("identical inputs produce identical results", prop.ForAll(
		func(age int, income, expenses, savings float64, goals string) bool {
			profile := models.UserProfile{
				Age:             age,
				AnnualIncome:    income,
				MonthlyExpenses: expenses,
				TotalSavings:    savings,
				Goals:           goals,
				RiskAppetite:    "moderate",
			}
			portfolio := models.Portfolio{
				{AssetType: models.AssetEquities, Amount: savings / 2, Name: "Index Fund"},
				{AssetType: models.AssetCash, Amount: savings / 4, Name: "Savings"},
			}

			first, err1 := engine.Assess(profile, portfolio)
			second, err2 := engine.Assess(profile, portfolio)
			if err1 != nil || err2 != nil {
				t.Logf("unexpected errors: %v, %v", err1, err2)
				return false
			}
			return reflect.DeepEqual(first, second)
		},
		gen.IntRange(18, 100),
		gen.Float64Range(0, 1e8),
		gen.Float64Range(0, 1e6),
		gen.Float64Range(0, 1e8),
		gen.OneConstOf("retirement planning", "buying a car", "wedding and retirement", "wealth"),
	))

	properties.TestingRun(t)
}
