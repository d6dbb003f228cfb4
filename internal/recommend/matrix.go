package recommend

import (
	"risk-assessor/internal/errors"
	"risk-assessor/internal/models"
)

// MatrixKey identifies one cell of the decision matrix.
type MatrixKey struct {
	Category models.RiskCategoryLabel
	Horizon  models.TimeHorizon
	Lumpsum  bool
}

// StrategyTemplate is the matrix payload: a primary strategy label and
// a product allocation template. Percentages are template-fixed; the
// aggregate amounts are computed later by the assembler.
type StrategyTemplate struct {
	PrimaryStrategy string
	Products        []models.ProductRecommendation
}

// Matrix is the 3x3x2 strategy lookup table. All 18 keys are populated
// at construction; a lookup miss is a programming defect, not a
// recoverable runtime condition.
type Matrix struct {
	entries map[MatrixKey]StrategyTemplate
}

// NewMatrix builds the standard decision matrix from the catalog data.
func NewMatrix() *Matrix {
	return &Matrix{entries: matrixEntries()}
}

// Lookup returns the template for the exact key. There is no fallback:
// a key outside the three closed enumerations aborts the assessment.
func (m *Matrix) Lookup(category models.RiskCategoryLabel, horizon models.TimeHorizon, lumpsum bool) (StrategyTemplate, error) {
	tpl, ok := m.entries[MatrixKey{Category: category, Horizon: horizon, Lumpsum: lumpsum}]
	if !ok {
		return StrategyTemplate{}, errors.NewMatrixError(string(category), string(horizon), lumpsum)
	}
	return tpl, nil
}

// Len returns the number of populated entries.
func (m *Matrix) Len() int {
	return len(m.entries)
}

// Keys returns all populated matrix keys.
func (m *Matrix) Keys() []MatrixKey {
	keys := make([]MatrixKey, 0, len(m.entries))
	for k := range m.entries {
		keys = append(keys, k)
	}
	return keys
}

func matrixEntries() map[MatrixKey]StrategyTemplate {
	cons := models.CategoryConservative
	mod := models.CategoryModerate
	aggr := models.CategoryAggressive

	return map[MatrixKey]StrategyTemplate{
		{cons, models.HorizonShort, true}: {
			PrimaryStrategy: "FD (Lumpsum)",
			Products: []models.ProductRecommendation{
				{Name: "Fixed Deposits", Allocation: 70, Description: "Secure fixed returns for short-term goals", Funds: Funds(cons, "FD")},
				{Name: "Liquid Funds", Allocation: 20, Description: "Easy access with stable returns"},
				{Name: "Ultra Short-term Funds", Allocation: 10, Description: "Slightly higher returns than savings"},
			},
		},
		{cons, models.HorizonShort, false}: {
			PrimaryStrategy: "FD (SIP if possible)",
			Products: []models.ProductRecommendation{
				{Name: "Monthly FD SIP", Allocation: 60, Description: "Regular fixed deposit investments", Funds: Funds(cons, "FD")},
				{Name: "Liquid Fund SIP", Allocation: 30, Description: "Systematic liquid fund investments"},
				{Name: "Savings Account", Allocation: 10, Description: "Emergency liquidity"},
			},
		},
		{cons, models.HorizonMedium, true}: {
			PrimaryStrategy: "FD + Short-term Debt MF (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Fixed Deposits", Allocation: 40, Description: "Stable foundation for medium-term goals", Funds: Funds(cons, "FD")},
				{Name: "Short-term Debt Mutual Funds", Allocation: 35, Description: "Better returns than FDs with moderate risk", Funds: Funds(cons, "Short-term Debt MF")},
				{Name: "Conservative Hybrid Funds", Allocation: 20, Description: "Balanced debt-equity exposure", Funds: Funds(cons, "Conservative Hybrid MF")},
				{Name: "Liquid Funds", Allocation: 5, Description: "Emergency liquidity"},
			},
		},
		{cons, models.HorizonMedium, false}: {
			PrimaryStrategy: "SIP in Short-term Debt / Conservative Hybrid MF",
			Products: []models.ProductRecommendation{
				{Name: "Short-term Debt Fund SIP", Allocation: 50, Description: "Systematic debt fund investments", Funds: Funds(cons, "Short-term Debt MF")},
				{Name: "Conservative Hybrid Fund SIP", Allocation: 30, Description: "Balanced approach with SIP", Funds: Funds(cons, "Conservative Hybrid MF")},
				{Name: "Monthly FD", Allocation: 20, Description: "Fixed component for stability", Funds: Funds(cons, "FD")},
			},
		},
		{cons, models.HorizonLong, true}: {
			PrimaryStrategy: "FD + Conservative Hybrid MF (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Conservative Hybrid Mutual Funds", Allocation: 45, Description: "Long-term balanced growth with capital protection", Funds: Funds(cons, "Conservative Hybrid MF")},
				{Name: "ELSS (Tax Saving)", Allocation: 25, Description: "Tax benefits with equity exposure"},
				{Name: "Fixed Deposits", Allocation: 20, Description: "Stable income component", Funds: Funds(cons, "FD")},
				{Name: "PPF/EPF", Allocation: 10, Description: "Long-term tax-free returns"},
			},
		},
		{cons, models.HorizonLong, false}: {
			PrimaryStrategy: "SIP in Debt Hybrid / Conservative Hybrid MF",
			Products: []models.ProductRecommendation{
				{Name: "Conservative Hybrid Fund SIP", Allocation: 50, Description: "Systematic balanced investments", Funds: Funds(cons, "Conservative Hybrid MF")},
				{Name: "ELSS SIP", Allocation: 30, Description: "Tax-saving equity exposure"},
				{Name: "PPF", Allocation: 20, Description: "Long-term guaranteed returns"},
			},
		},
		{mod, models.HorizonShort, true}: {
			PrimaryStrategy: "FD + Arbitrage / Low Duration Debt MF (Lumpsum)",
			Products: []models.ProductRecommendation{
				{Name: "Fixed Deposits", Allocation: 50, Description: "Capital protection for short-term needs", Funds: Funds(mod, "FD")},
				{Name: "Arbitrage Funds", Allocation: 30, Description: "Equity taxation with debt-like returns", Funds: Funds(mod, "Arbitrage / Low Duration Debt MF")},
				{Name: "Low Duration Debt Funds", Allocation: 15, Description: "Enhanced returns with low interest rate risk"},
				{Name: "Liquid Funds", Allocation: 5, Description: "Immediate liquidity"},
			},
		},
		{mod, models.HorizonShort, false}: {
			PrimaryStrategy: "FD only, avoid equity SIP <3yrs",
			Products: []models.ProductRecommendation{
				{Name: "Monthly FD", Allocation: 70, Description: "Regular fixed deposits for capital safety", Funds: Funds(mod, "FD")},
				{Name: "Ultra Short-term Fund SIP", Allocation: 25, Description: "Slightly enhanced returns"},
				{Name: "Liquid Fund", Allocation: 5, Description: "Emergency access"},
			},
		},
		{mod, models.HorizonMedium, true}: {
			PrimaryStrategy: "Balanced Advantage MF + ELSS + FD (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Balanced Advantage Funds", Allocation: 40, Description: "Dynamic asset allocation based on market conditions", Funds: Funds(mod, "Balanced Advantage MF")},
				{Name: "ELSS Mutual Funds", Allocation: 25, Description: "Tax-saving equity funds for wealth creation", Funds: Funds(mod, "ELSS")},
				{Name: "Fixed Deposits", Allocation: 20, Description: "Stability anchor", Funds: Funds(mod, "FD")},
				{Name: "Medium Duration Debt Funds", Allocation: 15, Description: "Enhanced debt returns"},
			},
		},
		{mod, models.HorizonMedium, false}: {
			PrimaryStrategy: "SIP in Balanced Advantage, Hybrid MF + ELSS",
			Products: []models.ProductRecommendation{
				{Name: "Balanced Advantage Fund SIP", Allocation: 45, Description: "Systematic dynamic allocation", Funds: Funds(mod, "Balanced Advantage MF")},
				{Name: "ELSS SIP", Allocation: 30, Description: "Tax-saving systematic investments", Funds: Funds(mod, "ELSS")},
				{Name: "Hybrid Fund SIP", Allocation: 25, Description: "Balanced debt-equity exposure"},
			},
		},
		{mod, models.HorizonLong, true}: {
			PrimaryStrategy: "Index / Large Cap MF + ELSS (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Index Funds", Allocation: 35, Description: "Low-cost market returns", Funds: Funds(mod, "Index / Large Cap MF")},
				{Name: "Large Cap Mutual Funds", Allocation: 30, Description: "Stable large company exposure"},
				{Name: "ELSS", Allocation: 20, Description: "Tax-saving equity growth", Funds: Funds(mod, "ELSS")},
				{Name: "International Funds", Allocation: 10, Description: "Global diversification"},
				{Name: "PPF/ELSS", Allocation: 5, Description: "Tax-efficient long-term savings"},
			},
		},
		{mod, models.HorizonLong, false}: {
			PrimaryStrategy: "SIP in Index / Large Cap MF + ELSS",
			Products: []models.ProductRecommendation{
				{Name: "Index Fund SIP", Allocation: 40, Description: "Systematic market investment", Funds: Funds(mod, "Index / Large Cap MF")},
				{Name: "Large Cap Fund SIP", Allocation: 30, Description: "Disciplined equity accumulation"},
				{Name: "ELSS SIP", Allocation: 25, Description: "Tax-saving systematic plan", Funds: Funds(mod, "ELSS")},
				{Name: "PPF", Allocation: 5, Description: "Guaranteed long-term component"},
			},
		},
		{aggr, models.HorizonShort, true}: {
			PrimaryStrategy: "FD (Emergency Lumpsum)",
			Products: []models.ProductRecommendation{
				{Name: "Fixed Deposits", Allocation: 80, Description: "Capital preservation for short-term aggressive goals", Funds: Funds(aggr, "FD")},
				{Name: "Liquid Plus Funds", Allocation: 15, Description: "Enhanced liquidity returns"},
				{Name: "Overnight Funds", Allocation: 5, Description: "Ultra-safe parking"},
			},
		},
		{aggr, models.HorizonShort, false}: {
			PrimaryStrategy: "FD (SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Monthly FD", Allocation: 85, Description: "Systematic fixed investments", Funds: Funds(aggr, "FD")},
				{Name: "Liquid Fund SIP", Allocation: 15, Description: "Regular liquid fund accumulation"},
			},
		},
		{aggr, models.HorizonMedium, true}: {
			PrimaryStrategy: "Multi-cap / Flexi-cap MF + ELSS (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Flexi-cap Mutual Funds", Allocation: 40, Description: "Flexible market cap allocation for growth", Funds: Funds(aggr, "Multi-cap / Flexi-cap MF")},
				{Name: "Multi-cap Mutual Funds", Allocation: 30, Description: "Diversified equity exposure"},
				{Name: "ELSS", Allocation: 20, Description: "Tax-saving aggressive growth", Funds: Funds(aggr, "ELSS")},
				{Name: "Mid & Small Cap Funds", Allocation: 10, Description: "Higher growth potential"},
			},
		},
		{aggr, models.HorizonMedium, false}: {
			PrimaryStrategy: "SIP in Flexi-cap / Multi-cap MF + ELSS",
			Products: []models.ProductRecommendation{
				{Name: "Flexi-cap Fund SIP", Allocation: 45, Description: "Systematic aggressive equity investing", Funds: Funds(aggr, "Multi-cap / Flexi-cap MF")},
				{Name: "Multi-cap Fund SIP", Allocation: 30, Description: "Diversified systematic equity"},
				{Name: "ELSS SIP", Allocation: 25, Description: "Tax-efficient aggressive SIP", Funds: Funds(aggr, "ELSS")},
			},
		},
		{aggr, models.HorizonLong, true}: {
			PrimaryStrategy: "Equity MF + ELSS (Lumpsum + SIP)",
			Products: []models.ProductRecommendation{
				{Name: "Large Cap Equity Funds", Allocation: 30, Description: "Stable foundation for long-term growth", Funds: Funds(aggr, "Equity MF")},
				{Name: "Mid Cap Equity Funds", Allocation: 25, Description: "Higher growth potential"},
				{Name: "Small Cap Equity Funds", Allocation: 20, Description: "Maximum growth exposure"},
				{Name: "ELSS", Allocation: 15, Description: "Tax-saving equity component", Funds: Funds(aggr, "ELSS")},
				{Name: "International Equity Funds", Allocation: 10, Description: "Global growth opportunities"},
			},
		},
		{aggr, models.HorizonLong, false}: {
			PrimaryStrategy: "SIP in Equity MF + ELSS",
			Products: []models.ProductRecommendation{
				{Name: "Large Cap Equity SIP", Allocation: 35, Description: "Systematic large cap accumulation", Funds: Funds(aggr, "Equity MF")},
				{Name: "Mid Cap Equity SIP", Allocation: 30, Description: "Growth-focused systematic investing"},
				{Name: "ELSS SIP", Allocation: 20, Description: "Tax-saving equity SIP", Funds: Funds(aggr, "ELSS")},
				{Name: "Small Cap SIP", Allocation: 15, Description: "High-growth systematic investment"},
			},
		},
	}
}
